package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

const (
	// DefaultLogLevel keeps retry warnings visible and hides progress.
	DefaultLogLevel = "warn"
	// DefaultLogFormat is human-readable.
	DefaultLogFormat = "text"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "homology",
		Short: "Compute simplicial homology over the integers",
		Long: `homology computes H_n(K; Z) for finite simplicial complexes.

A complex is a list of faces, each a list of non-negative vertex labels.
It is closed under taking faces before the boundary matrices are reduced
to Smith normal form.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&rf.logLevel, "log-level", DefaultLogLevel, "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&rf.logFormat, "log-format", DefaultLogFormat, "log format: text, json")

	cmd.AddCommand(newComputeCmd(rf), newExamplesCmd())

	return cmd
}

// logger builds the slog logger selected by the root flags, writing to w.
func (rf *rootFlags) logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(rf.logLevel)); err != nil {
		return nil, fmt.Errorf("--log-level %q: %w", rf.logLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(rf.logFormat) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("--log-format %q: want text or json", rf.logFormat)
	}
}
