package cmd

import (
	"fmt"

	"github.com/KostasZigo/looseobj/internal/constants"
	"github.com/KostasZigo/looseobj/internal/repository"
	"github.com/KostasZigo/looseobj/utils"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Initialize an empty object database",
	Long: `The 'init' command creates a .gogit directory with an empty objects/ database
and the refs/ layout, in the current directory or the one given.
If a repository already exists, the command will not overwrite existing data.`,
	SilenceUsage: true,
	Args:         maximumArgs(1),
	RunE:         runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// maximumArgs validates command receives at most n positional arguments.
// Returns error with usage help if argument limit exceeded.
func maximumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			cmd.SilenceUsage = false
			return fmt.Errorf("init command accepts at most %d arg(s), received %d", n, len(args))
		}
		return nil
	}
}

// runInit executes repository initialization at specified or current directory.
func runInit(cmd *cobra.Command, args []string) error {
	dirPath := "."
	if len(args) > 0 {
		dirPath = args[0]
	}

	if err := repository.InitRepository(dirPath); err != nil {
		return fmt.Errorf("failed to initialize repository - %w", err)
	}

	cmd.Printf("Initialized empty repository in %s\n", utils.BuildDirPath(dirPath, constants.Gogit))
	return nil
}
