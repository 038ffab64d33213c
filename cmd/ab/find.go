package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Search contacts",
	Long: `Search contacts by keyword.

Performs a case-insensitive substring search in names, emails, and
phone numbers, and highlights the matching text. The # column can be
passed to edit/delete together with --search <query>.`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	query := args[0]

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	entries := sess.book.View(query)
	if len(entries) == 0 {
		fmt.Printf("No results found for %q\n", query)
		return nil
	}

	printEntries(entries, query)
	fmt.Printf("\n%d of %d contacts match\n", len(entries), sess.book.Len())
	return nil
}
