package main

import (
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jacksmith/ab/internal/storage"
	"github.com/jacksmith/ab/internal/tui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive address book",
	Long: `Open a full-screen editor for the address book.

Type in the search box to filter the list. Move through the list with
the arrow keys; the selected contact is copied into the Name, Email,
and Phone inputs. Press ctrl+a to add the inputs as a new contact,
ctrl+e to save them over the selected contact, and ctrl+d to delete it.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !isTTY(os.Stdout) || !isTTY(os.Stdin) {
		return errors.New("tui: requires a terminal (TTY)")
	}

	// Log lines would draw over the screen; only a log file gets them.
	sess, err := openSessionWith(storage.OpenOrInit, io.Discard)
	if err != nil {
		return err
	}
	defer sess.Close()

	prog := tea.NewProgram(tui.NewModel(sess.book), tea.WithAltScreen())
	_, err = prog.Run()
	return err
}

func isTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
