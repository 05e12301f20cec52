package cli

import (
	"github.com/spf13/cobra"
)

// NewTestCmd returns the test command.
func NewTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run the project's test suite",
		RunE: func(cc *cobra.Command, _ []string) error {
			r, err := newRunner(cc, false)
			if err != nil {
				return err
			}

			return r.Test(cc.Context())
		},
	}
}

// NewCleanCmd returns the clean command.
func NewCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove build artifacts",
		RunE: func(cc *cobra.Command, _ []string) error {
			r, err := newRunner(cc, false)
			if err != nil {
				return err
			}

			return r.Clean(cc.Context())
		},
	}
}

// NewBuildCmd returns the build command.
func NewBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Clean, then build a distributable package",
		RunE: func(cc *cobra.Command, _ []string) error {
			r, err := newRunner(cc, false)
			if err != nil {
				return err
			}

			return r.Build(cc.Context())
		},
	}
}

// NewUploadCmd returns the upload command.
func NewUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload",
		Short: "Publish built artifacts to the package registry",
		RunE: func(cc *cobra.Command, _ []string) error {
			r, err := newRunner(cc, false)
			if err != nil {
				return err
			}

			return r.Upload(cc.Context())
		},
	}
}
