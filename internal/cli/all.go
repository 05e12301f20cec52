package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAllCmd returns the all command, the full release sequence.
func NewAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run test, bump patch, build, and upload in sequence",
		RunE: func(cc *cobra.Command, _ []string) error {
			dryRun, err := cc.Flags().GetBool("dry-run")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			r, err := newRunner(cc, dryRun)
			if err != nil {
				return err
			}

			return r.All(cc.Context())
		},
	}

	cmd.Flags().Bool("dry-run", false, "Run the sequence without bumping the version or uploading")

	return cmd
}
