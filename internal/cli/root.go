package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/wisefood/relkit/pkg/config"
	"github.com/wisefood/relkit/pkg/log"
	"github.com/wisefood/relkit/pkg/release"
	"github.com/wisefood/relkit/pkg/version"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrLogHandlerFailed = errors.New("log handler failed")
)

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.GetVersionString(),
	}

	cmd.PersistentFlags().StringP("config", "c", config.DefaultPath, "Path to the relkit configuration file")
	if err := cmd.MarkPersistentFlagFilename("config", "yaml", "yml"); err != nil {
		panic(err)
	}

	cmd.PersistentFlags().String("log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", defaultLogFormat(), "Set the log format (text, logfmt, json)")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
		}

		h, err := log.CreateHandlerWithStrings(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(h))

		return nil
	}

	cmd.AddCommand(NewTestCmd())
	cmd.AddCommand(NewCleanCmd())
	cmd.AddCommand(NewBuildCmd())
	cmd.AddCommand(NewUploadCmd())
	cmd.AddCommand(NewBumpCmd())
	cmd.AddCommand(NewAllCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func defaultLogFormat() string {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return "text"
	}

	return "logfmt"
}

// newRunner loads the project configuration and builds a release runner
// whose tool output streams to the command's stdout.
func newRunner(cc *cobra.Command, dryRun bool) (*release.Runner, error) {
	cfgPath, err := cc.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	return release.New(cfg, cc.OutOrStdout(), dryRun), nil
}
