// Package main provides the queuelog command, a small front end that feeds
// messages from its arguments or stdin into the asynchronous logger.
//
// Usage:
//
//	queuelog [flags] [message...]
//
// Flags:
//
//	    --file string     Log file path (default <executable>.log, or file_path from --config)
//	    --no-file         Disable file output
//	    --color string    Console colors: auto, always or never (default auto)
//	    --debug           Write debug entries
//	    --level string    Level for argument messages and unprefixed lines (default info)
//	    --config string   YAML config file
//	-v, --verbose         Print logger diagnostics to stderr
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Station-Manager/queuelog"
	"github.com/Station-Manager/utils"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type runOptions struct {
	file       string
	noFile     bool
	color      string
	debug      bool
	level      string
	configPath string
	verbose    bool

	// changed reports whether a flag was set on the command line.
	changed func(name string) bool
}

func newRootCmd() *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "queuelog [message...]",
		Short: "Write leveled messages to the console and a log file",
		Long: `Write leveled messages to the console and an append-only log file.

Each argument is written as one entry at --level. Without arguments, lines
are read from stdin; a leading "debug:", "info:", "warn:" or "error:" picks
the level for that line.

Examples:
  queuelog "service started"
  queuelog --level warn --color always "disk almost full"
  tail -f app.out | queuelog --file ./app.log --debug`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts.changed = cmd.Flags().Changed
			return run(ctx, opts, args, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Log file path (default <executable>.log)")
	cmd.Flags().BoolVar(&opts.noFile, "no-file", false, "Disable file output")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "Console colors: auto, always or never")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Write debug entries")
	cmd.Flags().StringVar(&opts.level, "level", "info", "Level for argument messages and unprefixed lines")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML config file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print logger diagnostics to stderr")

	return cmd
}

func run(ctx context.Context, opts runOptions, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	level, err := queuelog.ParseLevel(opts.level)
	if err != nil {
		return fmt.Errorf("--level %q: %w", opts.level, err)
	}

	cfg, err := resolveConfig(opts, stdout)
	if err != nil {
		return err
	}

	diagLevel := zerolog.WarnLevel
	if opts.verbose {
		diagLevel = zerolog.DebugLevel
	}
	diag := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(diagLevel).With().Timestamp().Logger()

	svc := &queuelog.Service{Console: stdout, Diagnostics: &diag}
	if err = svc.SetupWithConfig(cfg); err != nil {
		return err
	}
	defer func() {
		if stopErr := svc.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
		stats := svc.Stats()
		diag.Debug().
			Uint64("enqueued", stats.Enqueued).
			Uint64("written", stats.Written).
			Uint64("dropped", stats.Dropped).
			Msg("logger stopped")
	}()

	if len(args) > 0 {
		for _, msg := range args {
			svc.Emit(level, msg)
		}
		return nil
	}

	return emitLines(ctx, svc, stdin, level)
}

// maxLineSize is the longest stdin line emitLines accepts.
const maxLineSize = 16 << 20

// emitLines queues every stdin line until EOF or ctx is cancelled.
func emitLines(ctx context.Context, svc queuelog.Logger, r io.Reader, def queuelog.Level) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			level, msg := splitLevel(line, def)
			svc.Emit(level, msg)
		}
	}
}

// splitLevel strips a "level:" prefix from line. Lines without a known
// prefix keep def.
func splitLevel(line string, def queuelog.Level) (queuelog.Level, string) {
	idx := strings.IndexByte(line, ':')
	if idx <= 0 {
		return def, line
	}
	level, err := queuelog.ParseLevel(line[:idx])
	if err != nil {
		return def, line
	}
	return level, strings.TrimSpace(line[idx+1:])
}

// resolveConfig layers command line flags over the optional config file.
// The <executable>.log default only applies without a config file; a config
// file with an empty file_path disables file output.
func resolveConfig(opts runOptions, stdout io.Writer) (*queuelog.Config, error) {
	cfg := &queuelog.Config{}
	if opts.configPath != "" {
		loaded, err := queuelog.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	changed := opts.changed
	if changed == nil {
		changed = func(string) bool { return false }
	}

	if opts.file != "" {
		cfg.FilePath = opts.file
	}
	switch {
	case opts.noFile:
		cfg.FilePath = ""
	case cfg.FilePath == "" && opts.configPath == "":
		name, err := utils.ExecName(true)
		if err != nil || name == "" {
			name = "queuelog"
		}
		cfg.FilePath = name + ".log"
	}

	if changed("color") || opts.configPath == "" {
		colored, err := colorEnabled(opts.color, stdout)
		if err != nil {
			return nil, err
		}
		cfg.Colored = colored
	}
	if changed("debug") || opts.configPath == "" {
		cfg.Debug = opts.debug
	}

	return cfg, nil
}

// colorEnabled resolves a --color mode. "auto" enables colors only when out
// is a terminal.
func colorEnabled(mode string, out io.Writer) (bool, error) {
	switch strings.ToLower(mode) {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		f, ok := out.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	}
	return false, fmt.Errorf("--color %q: want auto, always or never", mode)
}
