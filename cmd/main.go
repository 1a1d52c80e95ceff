package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"csv-formatter/internal/config"
	"csv-formatter/internal/logging"
	"csv-formatter/internal/models"
	"csv-formatter/internal/reshape"
	"csv-formatter/internal/tui"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	configPath  string
	outputPath  string
	logFormat   string
	interactive bool
	verbose     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Log.Errorf("%v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "csv-formatter [input.csv] [output.csv]",
		Short: "Unpivot contact-list phone columns into one row per phone number",
		Long: `csv-formatter reshapes a contact-list CSV export.

It keeps the property, owner, mailing and equity columns, turns Phone1_Number..Phone10_Number
into a single Phone_Number column with one row per populated phone, drops rows without a
phone number and writes the phone values as plain integers.

When no output path is given the result is written next to the input as Formatted_<name>.csv.
Run without arguments (or with --interactive) to open the terminal form.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "output CSV path (default Formatted_<input>.csv)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "open the terminal form")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "", "log format: json or text (overrides config)")

	return cmd
}

// loadConfig reads the config file when one is given and applies command-line overrides
func loadConfig(opts *options) (*models.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, fmt.Errorf("error reading configuration file: %w", err)
		}
		cfg = loaded
	}

	if opts.logFormat != "" {
		cfg.Logging.Format = opts.logFormat
	}
	if opts.verbose {
		cfg.Logging.Level = logrus.DebugLevel.String()
	}
	if err := logging.Configure(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	return cfg, nil
}

func run(out io.Writer, opts *options, args []string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	input, output, err := paths(opts, args)
	if err != nil {
		return err
	}

	if opts.interactive || input == "" {
		newFormatter := func(entry *logrus.Entry) tui.Formatter {
			return reshape.FromConfig(cfg, reshape.WithLogger(entry))
		}
		return tui.Run(newFormatter, cfg.Output.Prefix, input, output)
	}

	if output == "" {
		output = reshape.SuggestOutputPath(input, cfg.Output.Prefix)
	}

	result, err := reshape.FromConfig(cfg).Format(input, output)
	if err != nil {
		return fmt.Errorf("%s: %w", reshape.KindOf(err), err)
	}

	printSummary(out, result)
	return nil
}

// paths returns the input and output named on the command line; either may be empty
func paths(opts *options, args []string) (string, string, error) {
	var input string
	output := opts.outputPath
	if len(args) > 0 {
		input = args[0]
	}
	if len(args) == 2 {
		if output != "" && output != args[1] {
			return "", "", fmt.Errorf("output given twice: %q and --output %q", args[1], output)
		}
		output = args[1]
	}
	return input, output, nil
}

func printSummary(out io.Writer, r *models.Result) {
	fmt.Fprintf(out, "Loaded %d rows using %d main columns and %d phone columns.\n",
		r.InputRows, len(r.KeepColumns), len(r.PhoneColumns))
	if r.HasWarnings() {
		if len(r.MissingKeepCols) > 0 {
			fmt.Fprintf(out, "Warning: missing expected columns: %s\n", strings.Join(r.MissingKeepCols, ", "))
		}
		if len(r.MissingPhoneCols) > 0 {
			fmt.Fprintf(out, "Warning: missing phone columns: %s\n", strings.Join(r.MissingPhoneCols, ", "))
		}
	}
	fmt.Fprintf(out, "Removed %d rows with missing phone numbers.\n", r.RowsRemoved)
	fmt.Fprintf(out, "Formatted data saved with %d rows to %s (%s)\n", r.Rows, r.OutputPath, r.Duration.Round(time.Millisecond))
}
