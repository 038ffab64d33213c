// Package main is the entry point for the ab CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/jacksmith/ab/internal/book"
	"github.com/jacksmith/ab/internal/cli"
	"github.com/jacksmith/ab/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	rootDir  string
	logLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ab",
	Short: "ab - a small address book",
	Long: `ab keeps a list of contacts (name, email, phone) in .ab/contacts.yaml.

Contacts are addressed by the # shown in 'ab list'. When a list is
filtered with a search query, pass the same query with --search so the
# refers to the filtered list.

Run 'ab tui' for an interactive editor.`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "C", ".", "directory containing .ab/")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("ab version {{.Version}}\n")
}

// session is an opened address book plus the settings that go with it.
type session struct {
	store    *storage.Storage
	cfg      *storage.Config
	book     *book.Book
	log      *zap.Logger
	closeLog func() error
}

// openSession opens storage in rootDir and restores the saved contacts.
// A snapshot that cannot be read is reported in the log and the session
// starts with an empty list.
func openSession() (*session, error) {
	return openSessionWith(storage.Open, os.Stderr)
}

// openOrCreateSession is openSession for commands that add contacts:
// the address book is created on first use.
func openOrCreateSession() (*session, error) {
	return openSessionWith(storage.OpenOrInit, os.Stderr)
}

// openSessionWith opens storage with open and writes logs to w unless the
// config names a log file.
func openSessionWith(open func(dir string) (*storage.Storage, error), w io.Writer) (*session, error) {
	s, err := open(rootDir)
	if err != nil {
		return nil, err
	}

	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	cli.ApplyColorMode(cfg.Color)

	logger, closeLog, err := cli.NewLogger(cfg.LogLevel, cfg.LogFile, w)
	if err != nil {
		return nil, err
	}

	logger.Debug("address book opened",
		zap.String("root", s.Root()),
		zap.String("config", s.ConfigPath()),
	)

	b := book.New(s, book.WithLogger(logger))
	if _, err := b.Restore(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("starting with an empty address book", zap.String("path", s.ContactsPath()))
	}

	return &session{
		store:    s,
		cfg:      cfg,
		book:     b,
		log:      logger,
		closeLog: closeLog,
	}, nil
}

func (s *session) Close() {
	_ = s.log.Sync()
	_ = s.closeLog()
}

// parsePosition converts a 1-based list position into a 0-based index.
func parsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, &cli.PositionError{Arg: arg}
	}
	return n - 1, nil
}

// selectContact resolves the contact at the 1-based position arg in the
// list filtered by query.
func selectContact(b *book.Book, query, arg string) (book.Selection, error) {
	pos, err := parsePosition(arg)
	if err != nil {
		return book.Selection{}, err
	}
	sel, err := b.Select(query, pos)
	if err != nil {
		return book.Selection{}, &cli.NotFoundError{Position: pos + 1, Query: query}
	}
	return sel, nil
}
