package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newConvertCmd(opts *rootOptions) *cobra.Command {
	var (
		jobPath string
		flagJob Job
	)

	cmd := &cobra.Command{
		Use:   "convert [IN] [OUT]",
		Short: "Re-encode a WAV file, optionally mixing down and normalising",
		Long: `Convert decodes IN, applies the requested transforms and writes OUT.

Settings can come from a YAML job file (--job); flags and positional
arguments take precedence over it:

  input: take1.wav
  output: take1-mono.wav
  format: pcm24
  mono: true
  normalise: true
  level: 0.5
`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			job := &Job{}
			if jobPath != "" {
				loaded, err := loadJob(jobPath)
				if err != nil {
					return err
				}

				job = loaded
			}

			if len(args) > 0 {
				job.Input = args[0]
			}

			if len(args) > 1 {
				job.Output = args[1]
			}

			flags := cmd.Flags()
			if flags.Changed("format") {
				job.Format = flagJob.Format
			}

			if flags.Changed("mono") {
				job.Mono = flagJob.Mono
			}

			if flags.Changed("normalise") {
				job.Normalise = flagJob.Normalise
			}

			if flags.Changed("reduce-only") {
				job.ReduceOnly = flagJob.ReduceOnly
			}

			if flags.Changed("level") {
				job.Level = flagJob.Level
			}

			if flags.Changed("offset") {
				job.Offset = flagJob.Offset
			}

			slog.Debug("converting", "input", job.Input, "output", job.Output, "format", job.Format,
				"mono", job.Mono, "normalise", job.Normalise)

			buf, format, err := job.Run()
			if err != nil {
				return err
			}

			st := opts.styles()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s, %d ch, %d Hz, %s)\n",
				st.Title.Render("wrote"), job.Output, format, buf.Channels(), buf.SampleRate, buf.Duration())

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&jobPath, "job", "", "YAML job file")
	flags.StringVarP(&flagJob.Format, "format", "f", "", "output encoding: pcm16, pcm24 or float32 (default: same as input)")
	flags.BoolVar(&flagJob.Mono, "mono", false, "mix all channels down to one")
	flags.BoolVar(&flagJob.Normalise, "normalise", false, "scale the peak to --level")
	flags.BoolVar(&flagJob.ReduceOnly, "reduce-only", false, "only normalise when the peak is above --level")
	flags.Float64Var(&flagJob.Level, "level", 0, "normalisation target (default 0.9999)")
	flags.IntVar(&flagJob.Offset, "offset", 0, "number of leading frames to drop")

	return cmd
}
