package cmd

import (
	"fmt"
	"log/slog"

	"github.com/KostasZigo/looseobj/internal/objects"
	"github.com/spf13/cobra"
)

var lsTreeCmd = &cobra.Command{
	Use:   "ls-tree [--name-only] <hash>",
	Short: "List the entries of a tree object",
	Long: `List the entries of a tree object in the order they are stored,
one "<mode> <kind> <hash>\t<name>" line per entry.`,
	SilenceUsage: true,
	Args:         exactTreeArgs,
	RunE:         runLsTree,
}

var nameOnlyFlag bool

func init() {
	rootCmd.AddCommand(lsTreeCmd)

	lsTreeCmd.Flags().BoolVar(&nameOnlyFlag, "name-only", false, "List only entry names")
}

func exactTreeArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		cmd.SilenceUsage = false
		return fmt.Errorf("%s command requires exactly 1 argument (tree hash), received %d", cmd.Name(), len(args))
	}
	return nil
}

func runLsTree(cmd *cobra.Command, args []string) error {
	store, err := openObjectStore()
	if err != nil {
		return err
	}

	object, err := store.Read(args[0])
	if err != nil {
		return err
	}

	var tree *objects.Tree
	switch object := object.(type) {
	case *objects.Tree:
		tree = object
	case *objects.Blob:
		return fmt.Errorf("object %s is a %s, not a tree", args[0], object.Type())
	default:
		return fmt.Errorf("unsupported object %T", object)
	}

	out := cmd.OutOrStdout()
	for _, entry := range tree.Entries() {
		if entry.Kind() == objects.KindUnknown {
			slog.Warn("Tree entry has unrecognised mode",
				"tree", args[0],
				"name", entry.Name(),
				"mode", entry.Mode())
		}
		if nameOnlyFlag {
			fmt.Fprintln(out, entry.Name())
			continue
		}
		fmt.Fprintf(out, "%s %s %s\t%s\n", padMode(entry.Mode()), entry.Kind(), entry.Hash(), entry.Name())
	}
	return nil
}
