package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KostasZigo/looseobj/internal/objects"
	"github.com/spf13/cobra"
)

var catFileCmd = &cobra.Command{
	Use:   "cat-file (-t | -s | -p) <hash>...",
	Short: "Print the type, size or content of loose objects",
	Long: `Read, decompress and decode one or more loose objects and print either
their type (-t), their content size in bytes (-s) or their content (-p).
Trees are pretty-printed one entry per line.

Examples:
  looseobj cat-file -t bd9dbf5aae1a3862dd1526723246b20206e5fc37
  looseobj cat-file -p bd9dbf5aae1a3862dd1526723246b20206e5fc37`,
	SilenceUsage: true,
	Args:         minimumArgs(1),
	RunE:         runCatFile,
}

var (
	catTypeFlag   bool
	catSizeFlag   bool
	catPrettyFlag bool
)

func init() {
	rootCmd.AddCommand(catFileCmd)

	catFileCmd.Flags().BoolVarP(&catTypeFlag, "type", "t", false, "Print the object type")
	catFileCmd.Flags().BoolVarP(&catSizeFlag, "size", "s", false, "Print the object content size")
	catFileCmd.Flags().BoolVarP(&catPrettyFlag, "pretty", "p", false, "Pretty-print the object content")
}

// minimumArgs validates command receives at least n positional arguments.
func minimumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			cmd.SilenceUsage = false
			return fmt.Errorf("%s command requires at least %d argument (hash), received %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

func runCatFile(cmd *cobra.Command, args []string) error {
	selected := 0
	for _, flag := range []bool{catTypeFlag, catSizeFlag, catPrettyFlag} {
		if flag {
			selected++
		}
	}
	if selected != 1 {
		cmd.SilenceUsage = false
		return errors.New("exactly one of -t, -s or -p must be given")
	}

	store, err := openObjectStore()
	if err != nil {
		return err
	}

	loaded, err := store.ReadAll(cmd.Context(), args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, object := range loaded {
		switch {
		case catTypeFlag:
			fmt.Fprintln(out, object.Type())
		case catSizeFlag:
			fmt.Fprintln(out, len(object.Content()))
		default:
			if err := printObject(out, object); err != nil {
				return err
			}
		}
	}
	return nil
}

// printObject writes blob content verbatim and trees as "<mode> <kind> <hash>\t<name>" lines.
func printObject(out io.Writer, object objects.Object) error {
	switch object := object.(type) {
	case *objects.Blob:
		_, err := out.Write(object.Content())
		return err
	case *objects.Tree:
		for _, entry := range object.Entries() {
			if _, err := fmt.Fprintf(out, "%s %s %s\t%s\n", padMode(entry.Mode()), entry.Kind(), entry.Hash(), entry.Name()); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported object %T", object)
	}
}

// padMode left-pads modes to six digits, so "40000" prints as "040000".
func padMode(mode objects.FileMode) string {
	if len(mode) >= 6 {
		return string(mode)
	}
	return strings.Repeat("0", 6-len(mode)) + string(mode)
}
