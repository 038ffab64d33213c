package main

import (
	"os"
	"strconv"

	"github.com/jacksmith/ab/internal/book"
	"github.com/jacksmith/ab/internal/cli"
	"github.com/jacksmith/ab/internal/storage"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for ab.

To load completions:

Bash:
  $ source <(ab completion bash)

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  $ ab completion zsh > "${fpath[1]}/_ab"

Fish:
  $ ab completion fish | source
`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletion(os.Stdout)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	rootCmd.AddCommand(completionCmd)

	editCmd.ValidArgsFunction = completePositions
	deleteCmd.ValidArgsFunction = completePositions
}

// completePositions offers list positions, described by their contact.
// The --search flag of the command being completed narrows the list.
func completePositions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	s, err := storage.Open(rootDir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	b := book.New(s)
	if _, err := b.Restore(); err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	query, _ := cmd.Flags().GetString("search")
	return positionCompletions(b.View(query)), cobra.ShellCompDirectiveNoFileComp
}

func positionCompletions(entries []book.Entry) []string {
	completions := make([]string, 0, len(entries))
	for i, e := range entries {
		completions = append(completions, strconv.Itoa(i+1)+"\t"+cli.Truncate(e.Contact.String(), 40))
	}
	return completions
}
