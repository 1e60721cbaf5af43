package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/novanft/mktcli/internal/ui"
)

var accountKeyFlag string

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage signing accounts",
}

var accountNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Generate a fresh account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := newAccountManager()
		a, hexKey, err := mgr.Generate(args[0])
		if err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Account %q created: %s", a.Name, ui.Addr(a.Address))))
		fmt.Println(ui.Warn("Private key (shown once, store it safely):"))
		fmt.Println("  " + hexKey)
		return nil
	},
}

var accountImportCmd = &cobra.Command{
	Use:   "import <name>",
	Short: "Import an account from a private key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if accountKeyFlag == "" {
			return fmt.Errorf("private key required\n  Usage: mktcli account import <name> --key <private-key>")
		}
		mgr := newAccountManager()
		a, err := mgr.Import(args[0], accountKeyFlag)
		if err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Account %q imported: %s", a.Name, ui.Addr(a.Address))))
		fmt.Println(ui.Hint(fmt.Sprintf("Set as default with: mktcli account use %s", a.Name)))
		return nil
	},
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := newAccountManager()
		accounts := mgr.List()
		if len(accounts) == 0 {
			fmt.Println(ui.Meta("No accounts yet."))
			fmt.Println(ui.Hint("Create one with: mktcli account new <name>"))
			return nil
		}

		t := ui.NewTable([]ui.Column{
			{Title: "NAME", Width: 16},
			{Title: "ADDRESS", Width: 44},
			{Title: "DEFAULT", Width: 7},
		})
		for _, a := range accounts {
			def := ""
			if a.IsDefault {
				def = "✓"
			}
			t.AddRow(ui.Row{a.Name, a.Address, def})
		}
		fmt.Print(t.Render())
		return nil
	},
}

var accountUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the default account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := newAccountManager()
		if err := mgr.SetDefault(args[0]); err != nil {
			return err
		}
		cfg.DefaultAccount = args[0]
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Println(ui.Success(fmt.Sprintf("Default account set to %q", args[0])))
		return nil
	},
}

var accountRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an account and its stored key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.ConfirmDanger(fmt.Sprintf("Remove account %q and delete its private key?", args[0])) {
			fmt.Println(ui.Meta("Cancelled."))
			return nil
		}
		mgr := newAccountManager()
		if err := mgr.Remove(args[0]); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Account %q removed", args[0])))
		return nil
	},
}

var accountExportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Print an account's private key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.ConfirmDanger("Print the private key to this terminal?") {
			fmt.Println(ui.Meta("Cancelled."))
			return nil
		}
		mgr := newAccountManager()
		hexKey, err := mgr.ExportKey(args[0])
		if err != nil {
			return err
		}
		fmt.Println(hexKey)
		return nil
	},
}

func init() {
	accountImportCmd.Flags().StringVar(&accountKeyFlag, "key", "", "hex private key")
	accountCmd.AddCommand(
		accountNewCmd,
		accountImportCmd,
		accountListCmd,
		accountUseCmd,
		accountRemoveCmd,
		accountExportCmd,
	)
}
