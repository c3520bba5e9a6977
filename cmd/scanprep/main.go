// scanprep is a command-line tool for assembling and validating the configuration of a scanned sheet post-processing run.
//
// The tool decodes every option into its typed form, layers an optional YAML options file
// under the command line flags, and reports each invalid value together with the option it
// belongs to. No image is touched: the output is the effective configuration and, when the
// sheet range is bounded, the per-sheet plan of inputs, outputs, skips and blank sheets.
//
// Configuration:
//
// Options may be kept in a YAML file and loaded with --options (or the SCANPREP_OPTIONS
// environment variable). Keys match the long flag names and values use the same notation;
// options that repeat on the command line take a list:
//
//	layout: double
//	exclude: 3,4
//	wipe:
//	  - 100,100,200,200
//	  - 300,300,400,400
//
// Usage:
//
//	scanprep [OPTIONS] [input-pattern [output-pattern]]
//
// File patterns are printf style with a single numeric placeholder, like scan%03d.pgm.
//
// Exit status:
//
//	0  the configuration is valid
//	2  a flag, option value or file pattern was rejected
//
// Example:
//
//	scanprep --layout double --end-sheet 10 --exclude 3 --pre-wipe 100,100,200,200 scan%03d.pgm out%03d.pgm
//	scanprep --options scanprep.yml -v
//	scanprep --sheet 2,4 --no-deskew 2 --end-sheet 4 scan%03d.pgm

package main

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/template"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"github.com/samber/lo"

	"github.com/scanprep/scanprep/pkg/config"
)

const version = "0.1.0"

//go:embed templates/summary.tmpl
var templateFS embed.FS

type cliOptions struct {
	Processing config.Values  `group:"processing"`
	Program    programOptions `group:"program"`

	Positional struct {
		InputPattern  string `positional-arg-name:"input-pattern" description:"printf style name pattern of the input files"`
		OutputPattern string `positional-arg-name:"output-pattern" description:"printf style name pattern of the output files"`
	} `positional-args:"yes"`
}

type programOptions struct {
	OptionsFile *string `long:"options" value-name:"FILE" env:"SCANPREP_OPTIONS" description:"Read options from a YAML file before applying the command line flags"`
	Verbose     []bool  `short:"v" long:"verbose" description:"Echo the effective configuration, twice for debug logging"`
	Version     bool    `long:"version" description:"Print the version and exit"`
}

// exitError carries the process exit code for run failures
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	// Minimal logger until the flags configure the real one.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		reportError(os.Stderr, err)

		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		os.Exit(1)
	}
}

// run holds the whole program logic so tests can drive it with their
// own writers and arguments
func run(stdout, stderr io.Writer, args []string) error {
	var opts cliOptions
	parser := newParser(&opts)

	rest, err := parser.ParseArgs(args)
	if err != nil {
		if flags.WroteHelp(err) {
			parser.WriteHelp(stdout)
			return nil
		}
		return &exitError{code: 2, err: err}
	}
	if len(rest) > 0 {
		return &exitError{code: 2, err: fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))}
	}

	if opts.Program.Version {
		fmt.Fprintf(stdout, "scanprep %s\n", version)
		return nil
	}

	logger := newLogger(len(opts.Program.Verbose), stderr)

	for _, p := range []struct{ name, pattern string }{
		{"input pattern", opts.Positional.InputPattern},
		{"output pattern", opts.Positional.OutputPattern},
	} {
		if err := checkPattern(p.name, p.pattern); err != nil {
			return &exitError{code: 2, err: err}
		}
	}

	o, skipped, err := assembleOptions(&opts)
	if err != nil {
		return &exitError{code: 2, err: err}
	}
	for _, s := range skipped {
		fmt.Fprintln(stderr, s)
	}
	if opts.Program.OptionsFile != nil {
		logger.Debug("options file applied", "path", *opts.Program.OptionsFile)
	}
	logger.Debug("configuration assembled",
		"sheets", o.Sheets.String(),
		"startSheet", o.StartSheet,
		"endSheet", o.EndSheet)

	if len(opts.Program.Verbose) > 0 {
		if err := writeSummary(stdout, o); err != nil {
			return err
		}
	}

	if o.EndSheet == -1 {
		logger.Info("no end sheet configured, skipping the sheet plan")
		return nil
	}
	return writePlan(stdout, o, opts.Positional.InputPattern, opts.Positional.OutputPattern)
}

func newParser(opts *cliOptions) *flags.Parser {
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "scanprep"
	parser.Usage = "[OPTIONS] [input-pattern [output-pattern]]"
	parser.LongDescription = heredoc.Doc(`
		Assemble and validate the configuration of a scanned sheet post-processing
		run without touching any image file. Options may also come from a YAML file
		whose keys match the long flag names.

		Most numeric values come in pairs like 10,20 for the horizontal and vertical
		axis; a single value applies to both axes.
	`)
	return parser
}

// newLogger maps the repeat count of --verbose to a log level:
// warnings only by default, info at -v, debug at -vv and up
func newLogger(verbosity int, w io.Writer) *slog.Logger {
	var level slog.Level
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	default:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// assembleOptions layers the options file under the command line flags
// and validates the result. Skipped wipe definitions are returned for
// reporting, everything else fails hard.
func assembleOptions(opts *cliOptions) (*config.Options, []error, error) {
	o := config.New()
	var skipped []error

	if opts.Program.OptionsFile != nil {
		fileSkipped, err := o.LoadFile(*opts.Program.OptionsFile)
		if err != nil {
			return nil, nil, err
		}
		skipped = append(skipped, fileSkipped...)
	}

	flagSkipped, err := opts.Processing.Apply(o)
	if err != nil {
		return nil, nil, err
	}
	skipped = append(skipped, flagSkipped...)

	if err := o.Validate(); err != nil {
		return nil, nil, err
	}
	return o, skipped, nil
}

// checkPattern verifies that a file name pattern formats a sheet number
// cleanly, like scan%03d.pgm. Rendering a probe number surfaces both
// missing and surplus placeholders.
func checkPattern(name, pattern string) error {
	if pattern == "" {
		return nil
	}
	if rendered := fmt.Sprintf(pattern, 1); strings.Contains(rendered, "%!") {
		return fmt.Errorf("%s %q must contain a single numeric placeholder such as %%d", name, pattern)
	}
	return nil
}

// writeSummary renders the effective configuration with the embedded
// template
func writeSummary(w io.Writer, o *config.Options) error {
	tmpl, err := template.New("summary.tmpl").ParseFS(templateFS, "templates/summary.tmpl")
	if err != nil {
		return fmt.Errorf("error parsing summary template: %w", err)
	}
	if err := tmpl.Execute(w, o); err != nil {
		return fmt.Errorf("error rendering summary template: %w", err)
	}
	return nil
}

// writePlan prints one line per sheet describing what a processing run
// would do with it. The caller makes sure the sheet range is bounded.
func writePlan(w io.Writer, o *config.Options, inputPattern, outputPattern string) error {
	for n := o.StartSheet; n <= o.EndSheet; n++ {
		switch {
		case o.SheetIgnored(n):
			fmt.Fprintf(w, "sheet %d: passed through untouched\n", n)
		case !o.SheetSelected(n):
			fmt.Fprintf(w, "sheet %d: skipped (%s)\n", n, skipReason(o, n))
		default:
			line := fmt.Sprintf("sheet %d: %s -> %s", n,
				fileNames(inputPattern, o.InputNumbers(n)),
				fileNames(outputPattern, o.OutputNumbers(n)))

			var notes []string
			if o.InsertBlank.Contains(n) {
				notes = append(notes, "blank sheet inserted before")
			}
			if o.ReplaceBlank.Contains(n) {
				notes = append(notes, "replaced by a blank sheet")
			}
			if disabled := o.DisabledFilters(n); len(disabled) > 0 {
				notes = append(notes, "skips "+strings.Join(disabled, ", "))
			}
			if len(notes) > 0 {
				line += " (" + strings.Join(notes, "; ") + ")"
			}
			fmt.Fprintln(w, line)
		}
	}
	return nil
}

func skipReason(o *config.Options, n int) string {
	if o.Exclude.Contains(n) {
		return "excluded"
	}
	return "not selected"
}

// fileNames renders the file names a number sequence maps to. Without
// a pattern the bare sequence numbers are shown.
func fileNames(pattern string, numbers []int) string {
	names := lo.Map(numbers, func(n int, _ int) string {
		if pattern == "" {
			return fmt.Sprintf("#%d", n)
		}
		return fmt.Sprintf(pattern, n)
	})
	return strings.Join(names, " + ")
}

// reportError prints one operator facing error line, with the program
// prefix highlighted when stderr is a terminal
func reportError(w io.Writer, err error) {
	prefix := color.New(color.FgRed, color.Bold).Sprint("scanprep:")
	fmt.Fprintf(w, "%s %s\n", prefix, err)
}
