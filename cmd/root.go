package cmd

import (
	"log/slog"
	"os"

	"github.com/KostasZigo/looseobj/internal/constants"
	"github.com/KostasZigo/looseobj/internal/objects"
	"github.com/KostasZigo/looseobj/internal/repository"
	"github.com/spf13/cobra"
)

var (
	verboseFlag   bool
	maxObjectSize int64 = constants.DefaultMaxObjectSize
)

// rootCmd defines the base command for the looseobj CLI.
// All subcommands (init, hash-object, cat-file, ls-tree) register under this root.
var rootCmd = &cobra.Command{
	Use:   "looseobj",
	Short: "Inspect content-addressed loose objects",
	Long: `looseobj reads the loose objects of a GoGit repository: it decompresses them,
decodes blobs and trees, verifies their content addresses and prints them.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Int64Var(&maxObjectSize, "max-object-size", constants.DefaultMaxObjectSize,
		"Refuse objects whose decompressed size exceeds this many bytes")
}

// Execute runs the root command and handles exit codes.
// Called from main.go to start CLI execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openObjectStore returns a store rooted at the repository enclosing the working directory.
func openObjectStore() (*objects.ObjectStore, error) {
	repoPath, err := repository.FindRoot(".")
	if err != nil {
		return nil, err
	}
	return objects.NewObjectStore(repoPath, objects.WithMaxObjectSize(maxObjectSize)), nil
}
