package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <#>",
	Aliases: []string{"rm"},
	Short:   "Delete a contact",
	Long: `Delete the contact at a list position.

Examples:
  ab delete 2
  ab delete 1 --search=lee   # #1 of 'ab list lee'`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

var deleteSearch string

func init() {
	deleteCmd.Flags().StringVarP(&deleteSearch, "search", "s", "", "position refers to the list filtered by this query")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	sel, err := selectContact(sess.book, deleteSearch, args[0])
	if err != nil {
		return err
	}

	if err := sess.book.Delete(sel); err != nil {
		return err
	}

	fmt.Printf("Deleted: %s\n", sel.Contact)
	return nil
}
