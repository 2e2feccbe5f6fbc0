package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/bufwav"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

type chunkEntry struct {
	ID     string `yaml:"id" json:"id"`
	Size   uint32 `yaml:"size" json:"size"`
	Offset int64  `yaml:"offset" json:"offset"`
}

type fileInfo struct {
	Path       string       `yaml:"path" json:"path"`
	Format     string       `yaml:"format" json:"format"`
	Channels   int          `yaml:"channels" json:"channels"`
	SampleRate int          `yaml:"sample_rate" json:"sample_rate"`
	Frames     int          `yaml:"frames" json:"frames"`
	Duration   string       `yaml:"duration" json:"duration"`
	Peak       float64      `yaml:"peak" json:"peak"`
	Chunks     []chunkEntry `yaml:"chunks" json:"chunks"`
}

func newInfoCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "info FILE",
		Short: "Show the format and chunk layout of a WAV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := inspectFile(args[0])
			if err != nil {
				return err
			}

			return printInfo(cmd.OutOrStdout(), info, output, opts.styles())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, yaml or json")

	return cmd
}

// decodeFile opens path and decodes it, keeping the decoder for its
// format and chunk inventory.
func decodeFile(path string) (*bufwav.Buffer, *bufwav.Decoder, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer file.Close()

	dec := bufwav.NewDecoder(file)

	buf, err := dec.Decode()
	if err != nil {
		return nil, nil, fmt.Errorf("error decoding %s: %w", path, bufwav.Warn(err))
	}

	return buf, dec, nil
}

func inspectFile(path string) (*fileInfo, error) {
	buf, dec, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	info := &fileInfo{
		Path:       path,
		Format:     dec.Format().String(),
		Channels:   buf.Channels(),
		SampleRate: buf.SampleRate,
		Frames:     buf.Len(),
		Duration:   buf.Duration().String(),
		Peak:       buf.Peak(),
	}

	for _, c := range dec.Chunks() {
		info.Chunks = append(info.Chunks, chunkEntry{
			ID:     string(c.ID[:]),
			Size:   c.Size,
			Offset: c.Offset,
		})
	}

	return info, nil
}

func printInfo(w io.Writer, info *fileInfo, output string, st styles) error {
	switch strings.ToLower(output) {
	case "yaml":
		data, err := yaml.Marshal(info)
		if err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}

		_, err = w.Write(data)

		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(info)
	case "text", "":
		fmt.Fprintln(w, st.Title.Render(info.Path))
		fmt.Fprintln(w, st.field("format", info.Format))
		fmt.Fprintln(w, st.field("channels", fmt.Sprint(info.Channels)))
		fmt.Fprintln(w, st.field("sample rate", fmt.Sprintf("%d Hz", info.SampleRate)))
		fmt.Fprintln(w, st.field("frames", fmt.Sprint(info.Frames)))
		fmt.Fprintln(w, st.field("duration", info.Duration))
		fmt.Fprintln(w, st.field("peak", fmt.Sprintf("%.6f", info.Peak)))
		fmt.Fprintln(w, st.field("chunks", fmt.Sprint(len(info.Chunks))))

		for _, c := range info.Chunks {
			fmt.Fprintln(w, st.Dim.Render(fmt.Sprintf("  %q size=%d offset=%d", c.ID, c.Size, c.Offset)))
		}

		return nil
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}
