package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jacksmith/ab/internal/book"
	"github.com/jacksmith/ab/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list [query]",
	Aliases: []string{"ls"},
	Short:   "List contacts",
	Long: `List contacts in stored order.

With a query, only contacts whose name, email, or phone contains the
query (case-insensitive) are shown. The # column is the position within
the shown list; pass the same query to edit/delete with --search.

Examples:
  ab list
  ab list example.com`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	var query string
	if len(args) > 0 {
		query = args[0]
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	entries := sess.book.View(query)
	if len(entries) == 0 {
		printNoContacts(query)
		return nil
	}

	printEntries(entries, "")
	return nil
}

func printNoContacts(query string) {
	if query == "" {
		fmt.Println("No contacts.")
		return
	}
	fmt.Printf("No contacts matching %q\n", query)
}

// printEntries writes a numbered table of entries. Matches of highlight
// are colored when it is non-empty.
func printEntries(entries []book.Entry, highlight string) {
	table := cli.NewTable()
	for col := 1; col <= 3; col++ {
		table.SetMaxWidth(col, cli.DefaultMaxFieldWidth)
	}

	for i, e := range entries {
		table.AddRow(
			cli.Gray(strconv.Itoa(i+1)),
			cli.Highlight(e.Contact.Name, highlight),
			cli.Highlight(e.Contact.Email, highlight),
			cli.Highlight(e.Contact.Phone, highlight),
		)
	}
	table.Render(os.Stdout, " | ")
}
