package main

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cwbudde/bufwav"
	"github.com/spf13/cobra"
)

type sineOptions struct {
	output    string
	frequency float64
	length    float64
	rate      int
	channels  int
	format    string
}

func newSineCmd(opts *rootOptions) *cobra.Command {
	so := &sineOptions{}

	cmd := &cobra.Command{
		Use:   "sine",
		Short: "Generate a sine test tone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := bufwav.ParseFormat(so.format)
			if err != nil {
				return err
			}

			slog.Info("generating sine", "seconds", so.length, "hz", so.frequency, "format", format)

			buf, err := generateSine(so.frequency, so.length, so.rate, so.channels)
			if err != nil {
				return err
			}

			err = bufwav.WriteFile(so.output, buf, format)
			if err != nil {
				return fmt.Errorf("error writing %s: %w", so.output, bufwav.Warn(err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d frames)\n",
				opts.styles().Title.Render("wrote"), so.output, buf.Len())

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&so.output, "output", "o", "output.wav", "filename to write to")
	flags.Float64Var(&so.frequency, "frequency", 440, "frequency in hertz to generate")
	flags.Float64Var(&so.length, "length", 5, "length in seconds of output file")
	flags.IntVar(&so.rate, "rate", bufwav.DefaultSampleRate, "sample rate in hertz")
	flags.IntVar(&so.channels, "channels", 1, "number of channels")
	flags.StringVarP(&so.format, "format", "f", bufwav.DefaultFormat.String(), "encoding: pcm16, pcm24 or float32")

	return cmd
}

// generateSine fills every channel with the same full-scale sine.
func generateSine(frequency, seconds float64, rate, channels int) (*bufwav.Buffer, error) {
	if rate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("invalid layout: %d Hz, %d channels", rate, channels)
	}

	if seconds < 0 {
		return nil, fmt.Errorf("length must not be negative, got %g", seconds)
	}

	buf := bufwav.NewBuffer(rate, channels)
	buf.Resize(bufwav.FramesForDuration(time.Duration(seconds*float64(time.Second)), rate))

	for c := range channels {
		ch := buf.Channel(c)
		for i := range ch.Len() {
			ch.Set(i, math.Sin(float64(i)/float64(rate)*frequency*2*math.Pi))
		}
	}

	return buf, nil
}
