package cli

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/wisefood/relkit/pkg/bump"
)

const bumpExample = `  # Increment the patch version in pyproject.toml
  relkit bump patch

  # Preview a minor bump without touching the file
  relkit bump minor --dry-run
`

// NewBumpCmd returns the bump command.
func NewBumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "bump <patch|minor|major>",
		Short:     "Increment the version stored in the project's version file",
		Example:   bumpExample,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(bump.Patch), string(bump.Minor), string(bump.Major)},
		RunE: func(cc *cobra.Command, args []string) error {
			var merr error

			dryRun, err := cc.Flags().GetBool("dry-run")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			level, err := bump.ParseLevel(args[0])
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			if merr != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
			}

			r, err := newRunner(cc, dryRun)
			if err != nil {
				return err
			}

			res, err := r.Bump(cc.Context(), level)
			if err != nil {
				return err
			}

			if dryRun {
				cc.Printf("Would bump to %s\n", res.New)

				return nil
			}

			cc.Printf("Bumped to %s\n", res.New)

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Compute the new version without modifying the file")

	return cmd
}
