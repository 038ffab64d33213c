package main

import (
	"errors"
	"fmt"

	"github.com/jacksmith/ab/internal/cli"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <#>",
	Short: "Edit a contact",
	Long: `Replace fields of the contact at a list position.

Fields that are not given keep their current value. Use -i to edit all
three fields in $EDITOR.

Examples:
  ab edit 2 --email=ann@work.example
  ab edit 1 --search=lee --phone=555-0199   # #1 of 'ab list lee'
  ab edit 3 -i                              # open in $EDITOR`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editName        string
	editEmail       string
	editPhone       string
	editSearch      string
	editInteractive bool
)

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "set name")
	editCmd.Flags().StringVar(&editEmail, "email", "", "set email")
	editCmd.Flags().StringVar(&editPhone, "phone", "", "set phone")
	editCmd.Flags().StringVarP(&editSearch, "search", "s", "", "position refers to the list filtered by this query")
	editCmd.Flags().BoolVarP(&editInteractive, "interactive", "i", false, "edit in $EDITOR")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	sel, err := selectContact(sess.book, editSearch, args[0])
	if err != nil {
		return err
	}

	updated := sel.Contact
	if editInteractive {
		updated, err = cli.EditContact(sel.Contact)
		if err != nil {
			return err
		}
	} else {
		changed := false
		if cmd.Flags().Changed("name") {
			updated.Name = editName
			changed = true
		}
		if cmd.Flags().Changed("email") {
			updated.Email = editEmail
			changed = true
		}
		if cmd.Flags().Changed("phone") {
			updated.Phone = editPhone
			changed = true
		}
		if !changed {
			return errors.New("no changes specified (use --name, --email, --phone, or -i)")
		}
	}

	if updated == sel.Contact {
		fmt.Println("No changes made.")
		return nil
	}

	if err := sess.book.Edit(sel, updated.Name, updated.Email, updated.Phone); err != nil {
		return err
	}

	fmt.Printf("Updated: %s\n", updated)
	return nil
}
