package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cwbudde/bufwav"
	"github.com/goccy/go-yaml"
)

// Job describes one conversion. It can be loaded from a YAML file and is
// then overridden by command line flags.
type Job struct {
	Input      string  `yaml:"input"`
	Output     string  `yaml:"output"`
	Format     string  `yaml:"format,omitempty"`
	Mono       bool    `yaml:"mono,omitempty"`
	Normalise  bool    `yaml:"normalise,omitempty"`
	ReduceOnly bool    `yaml:"reduce_only,omitempty"`
	Level      float64 `yaml:"level,omitempty"`
	Offset     int     `yaml:"offset,omitempty"`
}

var (
	errNoInput  = errors.New("no input file")
	errNoOutput = errors.New("no output file")
)

func loadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading job %s: %w", path, err)
	}

	var job Job

	err = yaml.Unmarshal(data, &job)
	if err != nil {
		return nil, fmt.Errorf("error parsing job %s: %w", path, err)
	}

	return &job, nil
}

func (j *Job) validate() error {
	if j.Input == "" {
		return errNoInput
	}

	if j.Output == "" {
		return errNoOutput
	}

	if j.Format != "" {
		_, err := bufwav.ParseFormat(j.Format)
		if err != nil {
			return err
		}
	}

	if j.Level < 0 {
		return fmt.Errorf("level must not be negative, got %g", j.Level)
	}

	if j.Offset < 0 {
		return fmt.Errorf("offset must not be negative, got %d", j.Offset)
	}

	return nil
}

// level returns the normalisation target, falling back to the default.
func (j *Job) level() float64 {
	if j.Level == 0 {
		return bufwav.DefaultNormaliseLevel
	}

	return j.Level
}

// Run decodes the input, applies the requested transforms and writes the
// output. The output keeps the input encoding unless Format is set.
func (j *Job) Run() (*bufwav.Buffer, bufwav.Format, error) {
	err := j.validate()
	if err != nil {
		return nil, 0, err
	}

	buf, dec, err := decodeFile(j.Input)
	if err != nil {
		return nil, 0, err
	}

	format := dec.Format()
	if j.Format != "" {
		format, _ = bufwav.ParseFormat(j.Format)
	}

	if j.Offset > 0 {
		err = buf.SetOffset(j.Offset)
		if err != nil {
			return nil, 0, fmt.Errorf("error applying offset: %w", bufwav.Warn(err))
		}
	}

	if j.Mono {
		buf.MakeMono()
	}

	if j.Normalise {
		buf.Normalise(j.ReduceOnly, j.level())
	}

	err = bufwav.WriteFile(j.Output, buf, format)
	if err != nil {
		return nil, 0, fmt.Errorf("error writing %s: %w", j.Output, bufwav.Warn(err))
	}

	return buf, format, nil
}
