package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

func readYes() bool {
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	switch strings.TrimSpace(strings.ToLower(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// Confirm asks a yes/no question on stdin, defaulting to no. Commands
// that move funds call this unless --yes was passed.
func Confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", StyleWarning.Render(prompt))
	return readYes()
}

// ConfirmDanger is Confirm in the error style, for irreversible actions
// like deleting a key or printing it to the terminal.
func ConfirmDanger(prompt string) bool {
	fmt.Printf("%s [y/N]: ", StyleError.Render("⚠ "+prompt))
	return readYes()
}
