package cmd

import (
	"fmt"
	"os"

	"github.com/KostasZigo/looseobj/internal/objects"
	"github.com/KostasZigo/looseobj/utils"
	"github.com/spf13/cobra"
)

var hashObjectCmd = &cobra.Command{
	Use:   "hash-object [-t <type>] <filepath>",
	Short: "Compute the content address of a file",
	Long: `Compute the object hash (SHA-1 hash) a file's content would be stored under.
The file is hashed as a blob unless another object type is given.

Examples:
  # Compute the blob hash of a file
  looseobj hash-object myfile.txt

  # Hash raw tree records
  looseobj hash-object -t tree tree.bin`,
	SilenceUsage: true,
	Args:         exactArgs(1),
	RunE:         runHashObject,
}

var objectTypeFlag string

func init() {
	rootCmd.AddCommand(hashObjectCmd)

	hashObjectCmd.Flags().StringVarP(&objectTypeFlag, "type", "t", string(utils.BlobObjectType), "Object type to hash the content as")
}

// exactArgs validates command receives exactly n positional arguments.
// enables usage printing in case of error
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			cmd.SilenceUsage = false
			return fmt.Errorf("%s command requires exactly %d argument (filepath), received %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

// runHashObject prints the content address of the file's content.
func runHashObject(cmd *cobra.Command, args []string) error {
	objectType := utils.ObjectType(objectTypeFlag)
	if !objectType.IsValid() {
		cmd.SilenceUsage = false
		return fmt.Errorf("invalid object type %q", objectTypeFlag)
	}

	var hash string
	if objectType == utils.BlobObjectType {
		blob, err := objects.NewBlobFromFile(args[0])
		if err != nil {
			return err
		}
		hash = blob.Hash()
	} else {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		if hash, err = utils.ComputeHash(content, objectType); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}
