package main

import "github.com/novanft/mktcli/cmd"

func main() {
	cmd.Execute()
}
