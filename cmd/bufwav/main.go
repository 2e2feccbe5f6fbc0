// This tool inspects, converts and generates WAV files with the bufwav
// package.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)

	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, newStyles(false).Error.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

type rootOptions struct {
	verbose bool
	mem     bool
	noColor bool

	usage *usage
}

func (o *rootOptions) styles() styles {
	return newStyles(o.noColor)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "bufwav",
		Short: "Inspect, convert and generate WAV files",
		Long: `bufwav works on plain RIFF/WAVE files (16/24-bit PCM and 32-bit float).

Examples:
  # Show the format and chunk layout of a file
  bufwav info take1.wav

  # Mix down to mono, normalise and store as 24-bit
  bufwav convert take1.wav take1-mono.wav --mono --normalise --format pcm24

  # Write a one second 440 Hz test tone
  bufwav sine --output a440.wav --length 1
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogging(stderr, opts.verbose)
			opts.usage = startUsage(opts.mem)
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			opts.usage.report(cmd.ErrOrStderr(), cmd.Name(), opts.styles())
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	flags.BoolVar(&opts.mem, "mem", false, "report heap allocations made by the command")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable coloured output")

	cmd.AddCommand(
		newInfoCmd(opts),
		newConvertCmd(opts),
		newSineCmd(opts),
		newAIFFCmd(opts),
	)

	return cmd
}

func configureLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}
