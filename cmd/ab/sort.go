package main

import (
	"fmt"

	"github.com/jacksmith/ab/internal/cli"
	"github.com/jacksmith/ab/internal/model"
	"github.com/spf13/cobra"
)

var sortCmd = &cobra.Command{
	Use:   "sort <field>",
	Short: "Sort contacts by a field",
	Long: `Sort contacts by name, email, or phone and save the new order.

Sorting is stable and compares bytes, so uppercase sorts before
lowercase. Unique prefixes are accepted (e.g. "e" for email).`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(model.FieldName), string(model.FieldEmail), string(model.FieldPhone)},
	RunE:      runSort,
}

func init() {
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	field, err := cli.MatchField(args[0])
	if err != nil {
		return err
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	contacts, err := sess.book.SortBy(field)
	if err != nil {
		return err
	}

	fmt.Printf("Sorted %d contacts by %s\n", len(contacts), field)
	if len(contacts) > 0 {
		fmt.Println()
		printEntries(sess.book.View(""), "")
	}
	return nil
}
