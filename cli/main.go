// Package cli implements the pasfmt command line: the cobra root command,
// its flags, and the per-mode file-driving logic. cmd/pasfmt's main is a
// thin wrapper that calls Execute and exits with its return code.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pasfmt/pasfmt/internal/walk"
	"github.com/pasfmt/pasfmt/pkgs/config"
	"github.com/pasfmt/pasfmt/pkgs/diag"
	"github.com/pasfmt/pasfmt/pkgs/formatter"
)

var log = logrus.New()

// Execute runs the pasfmt CLI against os.Args and returns the process exit
// code: 0 on success, 1 on any error or check-mode divergence.
func Execute() int {
	var (
		printToStdout bool
		check         bool
		logLevel      string
		configPath    string
		encodingName  string
	)

	rootCmd := &cobra.Command{
		Use:   "pasfmt [paths...]",
		Short: "Format Pascal/Delphi source files",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevelToLogrus(logLevel))
			if err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
			}
			log.SetLevel(level)
			log.SetOutput(os.Stderr)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if encodingName != "" {
				cfg.Encoding = encodingName
			}

			if printToStdout && check {
				return fmt.Errorf("--print and --check are mutually exclusive")
			}

			exitCode, err := dispatch(cmd.Context(), args, cfg, printToStdout, check)
			cmd.SilenceUsage = true
			if err != nil {
				return err
			}
			if exitCode != 0 {
				return exitWithCode{exitCode}
			}
			return nil
		},
	}

	rootCmd.SilenceErrors = true
	rootCmd.Flags().BoolVar(&printToStdout, "print", false, "print formatted output to stdout instead of rewriting files")
	rootCmd.Flags().BoolVar(&check, "check", false, "report files that would change, without rewriting them")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "WARN", "OFF, ERROR, WARN, INFO, DEBUG, or TRACE")
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a pasfmt.toml configuration file")
	rootCmd.Flags().StringVar(&encodingName, "encoding", "", "input/output byte encoding (default windows-1252)")

	if err := rootCmd.Execute(); err != nil {
		if code, ok := err.(exitWithCode); ok {
			return code.code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// exitWithCode carries a non-error exit code (e.g. check-mode divergence)
// through cobra's error-returning RunE without printing a spurious message.
type exitWithCode struct{ code int }

func (e exitWithCode) Error() string { return "" }

func dispatch(ctx context.Context, args []string, cfg config.FormattingConfig, printToStdout, check bool) (int, error) {
	if len(args) == 0 && hasPipedInput() {
		return formatStdin(cfg)
	}
	if len(args) == 0 {
		return 1, fmt.Errorf("no paths given and stdin is not piped")
	}

	files, invalid := walk.Resolve(args)
	for _, p := range invalid {
		log.Warnf("%q is not a valid file path/glob", p)
	}
	if len(files) == 0 {
		return 1, fmt.Errorf("no formattable files found")
	}

	codec := walk.Codec(cfg.Encoding)

	diverged := make([]bool, len(files))
	g, _ := errgroup.WithContext(ctx)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			text, err := walk.Read(path, codec)
			if err != nil {
				log.Errorf("reading %q: %v", path, err)
				return err
			}
			out, diags := formatter.Format(text, cfg)
			logDiagnostics(path, diags)

			switch {
			case check:
				diverged[i] = out != text
			case printToStdout:
				fmt.Printf("%s:\n%s\n", path, out)
			default:
				if out != text {
					if err := walk.Write(path, out, codec); err != nil {
						log.Errorf("writing %q: %v", path, err)
						return err
					}
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 1, err
	}

	if check {
		anyDiverged := false
		for i, d := range diverged {
			if d {
				anyDiverged = true
				fmt.Printf("VERIFY: '%s' has different formatting\n", files[i])
			}
		}
		if anyDiverged {
			return 1, nil
		}
	}
	return 0, nil
}

func formatStdin(cfg config.FormattingConfig) (int, error) {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return 1, fmt.Errorf("reading stdin: %w", err)
	}
	out, diags := formatter.Format(string(input), cfg)
	logDiagnostics("<stdin>", diags)
	fmt.Print(out)
	return 0, nil
}

func logDiagnostics(path string, diags []diag.Diagnostic) {
	for _, d := range diags {
		entry := log.WithFields(logrus.Fields{"file": path, "line": d.Line, "column": d.Column})
		switch d.Severity {
		case diag.SeverityError:
			entry.Error(d.Message)
		case diag.SeverityWarn:
			entry.Warn(d.Message)
		case diag.SeverityInfo:
			entry.Info(d.Message)
		case diag.SeverityDebug:
			entry.Debug(d.Message)
		case diag.SeverityTrace:
			entry.Trace(d.Message)
		}
	}
}

// hasPipedInput detects if there's data piped to stdin.
func hasPipedInput() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

func logLevelToLogrus(level string) string {
	switch level {
	case "OFF":
		return "panic"
	case "ERROR":
		return "error"
	case "WARN":
		return "warn"
	case "INFO":
		return "info"
	case "DEBUG":
		return "debug"
	case "TRACE":
		return "trace"
	default:
		return level
	}
}
