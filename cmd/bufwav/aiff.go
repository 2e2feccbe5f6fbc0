package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/bufwav"
	"github.com/go-audio/aiff"
	"github.com/spf13/cobra"
)

func newAIFFCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "aiff FILE",
		Short: "Convert a WAV file to AIFF",
		Long: `Convert a WAV file to AIFF next to the source, or to --output.

16-bit sources stay 16-bit; 24-bit and float sources are written as 24-bit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]

			dst := output
			if dst == "" {
				dst = aiffPath(src)
			}

			err := convertToAIFF(src, dst)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", opts.styles().Title.Render("wav file converted to"), dst)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "destination path (default: source with .aif extension)")

	return cmd
}

func aiffPath(src string) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + ".aif"
}

// aiffFormat picks the integer encoding the AIFF file is written with.
func aiffFormat(src bufwav.Format) bufwav.Format {
	if src == bufwav.PCM16 {
		return bufwav.PCM16
	}

	return bufwav.PCM24
}

func convertToAIFF(src, dst string) (err error) {
	buf, dec, err := decodeFile(src)
	if err != nil {
		return err
	}

	format := aiffFormat(dec.Format())

	outFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", dst, err)
	}

	defer func() {
		closeErr := outFile.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("error closing %s: %w", dst, closeErr)
		}
	}()

	encoder := aiff.NewEncoder(outFile, buf.SampleRate, format.BitDepth(), buf.Channels())

	err = encoder.Write(buf.IntBuffer(format))
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", dst, err)
	}

	err = encoder.Close()
	if err != nil {
		return fmt.Errorf("error finalizing %s: %w", dst, err)
	}

	return nil
}
