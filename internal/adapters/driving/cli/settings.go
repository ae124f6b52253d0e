package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/dsctl/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the shell module, invocation history and rate limits.

Use subcommands to change a single key or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a single setting",
	Long: `Set a single setting by key.

Keys:
  shell.path       - shell binary used by shell_exec
  shell.timeout    - shell_exec timeout (e.g. 30s, 2m)
  shell.allow      - comma separated executables shell_exec may run (empty allows all)
  history.enabled  - record invocations (true/false)
  limits.rate      - invocations per second (0 disables throttling)
  limits.burst     - invocations admitted at once`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

var errSettingsNotConfigured = errors.New("settings service not configured")

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Shell]")
	cmd.Printf("  Path: %s\n", settings.Shell.Path)
	cmd.Printf("  Timeout: %s\n", settings.Shell.Timeout)
	if len(settings.Shell.Allow) > 0 {
		cmd.Printf("  Allow: %s\n", strings.Join(settings.Shell.Allow, ", "))
	} else {
		cmd.Println("  Allow: (any)")
	}
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Enabled: %t\n", settings.History.Enabled)
	cmd.Println()

	cmd.Println("[Limits]")
	if settings.Limits.Rate > 0 {
		cmd.Printf("  Rate: %s/s\n", strconv.FormatFloat(settings.Limits.Rate, 'f', -1, 64))
	} else {
		cmd.Println("  Rate: (unlimited)")
	}
	cmd.Printf("  Burst: %d\n", settings.Limits.Burst)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if err := applySetting(settings, args[0], args[1]); err != nil {
		return err
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("%s updated.\n", args[0])
	return nil
}

// applySetting parses value and assigns it to the field named by key.
func applySetting(settings *domain.AppSettings, key, value string) error {
	switch key {
	case "shell.path":
		if value == "" {
			return fmt.Errorf("%w: shell.path must not be empty", domain.ErrInvalidInput)
		}
		settings.Shell.Path = value
	case "shell.timeout":
		d, err := parseTimeout(value)
		if err != nil {
			return err
		}
		settings.Shell.Timeout = d
	case "shell.allow":
		settings.Shell.Allow = splitList(value)
	case "history.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: history.enabled: %v", domain.ErrInvalidInput, err)
		}
		settings.History.Enabled = b
	case "limits.rate":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("%w: limits.rate must be a non-negative number", domain.ErrInvalidInput)
		}
		settings.Limits.Rate = f
	case "limits.burst":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%w: limits.burst must be a positive integer", domain.ErrInvalidInput)
		}
		settings.Limits.Burst = n
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	return nil
}

// parseTimeout accepts a Go duration or a bare number of seconds. Timeouts
// are stored in whole seconds.
func parseTimeout(value string) (time.Duration, error) {
	if secs, err := strconv.Atoi(value); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 || d%time.Second != 0 {
		return 0, fmt.Errorf("%w: shell.timeout must be whole seconds like 30s", domain.ErrInvalidInput)
	}
	return d, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if err := runWizard(cmd, bufio.NewReader(cmd.InOrStdin()), settings); err != nil {
		return err
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println()
	cmd.Println("Settings saved.")
	return nil
}

// runWizard prompts for every setting. An empty answer keeps the current
// value; an invalid one is reported and the prompt repeats.
func runWizard(cmd *cobra.Command, reader *bufio.Reader, settings *domain.AppSettings) error {
	cmd.Println("dsctl Setup Wizard")
	cmd.Println("==================")
	cmd.Println()

	prompts := []struct {
		key     string
		label   string
		current string
	}{
		{"shell.path", "Shell path", settings.Shell.Path},
		{"shell.timeout", "Shell timeout", settings.Shell.Timeout.String()},
		{"shell.allow", "Allowed executables (comma separated)", strings.Join(settings.Shell.Allow, ",")},
		{"limits.rate", "Invocations per second (0 = unlimited)", strconv.FormatFloat(settings.Limits.Rate, 'f', -1, 64)},
		{"limits.burst", "Burst", strconv.Itoa(settings.Limits.Burst)},
	}

	for _, p := range prompts {
		for {
			cmd.Printf("%s [%s]: ", p.label, p.current)
			input, err := readLine(reader)
			if err != nil {
				return err
			}
			if input == "" {
				break
			}
			if err := applySetting(settings, p.key, input); err != nil {
				cmd.Printf("  %v\n", err)
				continue
			}
			break
		}
	}

	cmd.Println()
	cmd.Println("Record invocation history?")
	cmd.Println("  [1] Yes")
	cmd.Println("  [2] No")
	defaultChoice := 1
	if !settings.History.Enabled {
		defaultChoice = 2
	}
	cmd.Printf("Choice [%d]: ", defaultChoice)
	input, err := readLine(reader)
	if err != nil {
		return err
	}
	settings.History.Enabled = parseChoice(input, 2, defaultChoice) == 1

	return nil
}

// readLine reads one trimmed line. EOF reads as an empty answer.
func readLine(reader *bufio.Reader) (string, error) {
	input, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(input), nil
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
