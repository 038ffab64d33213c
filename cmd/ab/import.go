package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/ab/internal/book"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import contacts from a text file",
	Long: `Append contacts from a text file with one "name,email,phone" per line.

Lines that do not have exactly three non-empty comma-separated fields are
skipped. There is no quoting: a field containing a comma cannot be
imported. Use - to read from stdin.

Examples:
  ab import contacts.txt
  ab export - | ab --dir ../other import -`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	sess, err := openOrCreateSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	var res book.ImportResult
	if path == "-" {
		res, err = sess.book.ImportReader(os.Stdin)
	} else {
		res, err = sess.book.ImportFile(path)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d contacts", res.Imported)
	if res.Skipped > 0 {
		fmt.Printf(" (%d lines skipped)", res.Skipped)
	}
	fmt.Println()
	return nil
}
