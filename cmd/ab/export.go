package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export contacts to a text file",
	Long: `Write every contact as a "name,email,phone" line, in stored order.

The file is created or overwritten. Fields are written as-is, so values
containing commas will not import back cleanly. Use - to write to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	if path == "-" {
		_, err := sess.book.ExportWriter(os.Stdout)
		return err
	}

	n, err := sess.book.ExportFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d contacts to %s\n", n, path)
	return nil
}
