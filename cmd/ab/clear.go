package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jacksmith/ab/internal/cli"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all contacts",
	Long: `Delete every contact.

Asks for confirmation unless --yes is given or confirm_clear is false
in .abconfig.yaml.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

var clearYes bool

// Replaced in tests.
var (
	confirmInput  io.Reader = os.Stdin
	isInteractive           = cli.StdinIsTerminal
)

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "do not ask for confirmation")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	n := sess.book.Len()
	if n == 0 {
		fmt.Println("No contacts.")
		return nil
	}

	confirmed := clearYes || !sess.cfg.ConfirmClear
	if !confirmed {
		if !isInteractive() {
			return errors.New("refusing to clear without confirmation (use --yes)")
		}
		confirmed, err = cli.Confirm(confirmInput, os.Stdout, fmt.Sprintf("Delete all %d contacts?", n))
		if err != nil {
			return err
		}
	}

	cleared, err := sess.book.ClearAll(confirmed)
	if err != nil {
		return err
	}
	if !cleared {
		fmt.Println("Nothing deleted.")
		return nil
	}

	fmt.Printf("Deleted %d contacts\n", n)
	return nil
}
