package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <email> <phone>",
	Short: "Add a contact",
	Long: `Add a contact to the end of the list.

All three fields are required.

Examples:
  ab add "Ann Lee" ann@example.com 555-0100`,
	Args: cobra.ExactArgs(3),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	sess, err := openOrCreateSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	contacts, err := sess.book.Create(args[0], args[1], args[2])
	if contacts == nil && err != nil {
		return err
	}

	c := contacts[len(contacts)-1]
	fmt.Printf("Added #%d: %s\n", len(contacts), c)
	return err
}
