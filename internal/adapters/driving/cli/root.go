// Package cli provides the cobra command tree of the dsctl binary.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/dsctl/internal/core/ports/driving"
	"github.com/custodia-labs/dsctl/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Options are the global flags handed to the bootstrap function.
type Options struct {
	ConfigDir string
	Verbose   bool
}

// Services bundles the driving ports the commands use.
type Services struct {
	Commands driving.CommandService
	History  driving.HistoryService
	Settings driving.SettingsService

	// WatchConfig reloads settings on config file changes until ctx is
	// done. Optional.
	WatchConfig func(ctx context.Context) error

	// Close releases resources held by the services. Optional.
	Close func() error
}

// Bootstrap builds the services for the given global options.
type Bootstrap func(opts Options) (*Services, error)

var (
	commandService  driving.CommandService
	historyService  driving.HistoryService
	settingsService driving.SettingsService
	configWatcher   func(ctx context.Context) error
	closeServices   func() error

	bootstrap Bootstrap
	opts      Options
)

var errNotConfigured = errors.New("command service not configured")

var rootCmd = &cobra.Command{
	Use:   "dsctl",
	Short: "Invoke data-source commands",
	Long: `dsctl invokes commands registered by data-source modules.

Arguments are typed by inference: true/false become booleans, text with a
dot becomes a number, null becomes Nil, integers become integers and
everything else stays text.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.ConfigDir, "config-dir", "", "configuration directory (default ~/.dsctl)")
}

// SetServices injects services directly, bypassing bootstrap.
func SetServices(s *Services) {
	commandService = s.Commands
	historyService = s.History
	settingsService = s.Settings
	configWatcher = s.WatchConfig
	closeServices = s.Close
}

// Execute runs the root command. boot is called once the global flags are
// parsed, before the selected command runs.
func Execute(ctx context.Context, boot Bootstrap) error {
	bootstrap = boot
	err := rootCmd.ExecuteContext(ctx)
	return errors.Join(err, teardown())
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(opts.Verbose)
	if bootstrap == nil || commandService != nil {
		return nil
	}

	services, err := bootstrap(opts)
	if err != nil {
		return err
	}
	SetServices(services)
	logger.Debug("services ready for %s", cmd.CommandPath())
	return nil
}

func teardown() error {
	if closeServices == nil {
		return nil
	}
	closeFn := closeServices
	closeServices = nil
	return closeFn()
}
