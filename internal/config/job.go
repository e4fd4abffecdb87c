// Package config loads job files for the resample-trajectory command.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Job modes
const (
	ModeResample    = "resample"
	ModeDerivatives = "derivatives"
)

// Defaults applied by the Get* accessors.
const (
	DefaultMode     = ModeResample
	DefaultStep     = 0.01
	DefaultWAVScale = 1.0
	DefaultWAVBits  = 16

	maxFileSize = 1 * 1024 * 1024 // 1MB
)

// Job describes one trajectory processing run. Fields left out of the JSON
// file stay nil and fall back to defaults or command-line flags.
type Job struct {
	Mode *string `json:"mode,omitempty"` // "resample" or "derivatives"

	// Resampling grid; Start and End default to the spline domain.
	Step  *float64 `json:"step,omitempty"`
	Start *float64 `json:"start,omitempty"`
	End   *float64 `json:"end,omitempty"`

	// Optional chart output
	Plot      *string `json:"plot,omitempty"`
	PlotOrder *string `json:"plot_order,omitempty"` // position, velocity or acceleration

	// WAV conversion
	WAVScale *float64 `json:"wav_scale,omitempty"`
	WAVBits  *int     `json:"wav_bits,omitempty"`

	// Joint names used when the input carries none (WAV input).
	Joints []string `json:"joints,omitempty"`
}

// LoadJob loads a Job from a JSON file.
// The file must have a .json extension and be under 1MB.
func LoadJob(path string) (*Job, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	job := &Job{}
	if err := json.Unmarshal(data, job); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return job, nil
}

// Validate checks the fields that are set.
func (j *Job) Validate() error {
	if j.Mode != nil && *j.Mode != ModeResample && *j.Mode != ModeDerivatives {
		return fmt.Errorf("mode must be %q or %q, got %q", ModeResample, ModeDerivatives, *j.Mode)
	}
	if j.Step != nil && *j.Step <= 0 {
		return fmt.Errorf("step must be positive, got %g", *j.Step)
	}
	if j.Start != nil && j.End != nil && *j.Start >= *j.End {
		return fmt.Errorf("start %g must be before end %g", *j.Start, *j.End)
	}
	if j.PlotOrder != nil {
		switch *j.PlotOrder {
		case "position", "velocity", "acceleration":
		default:
			return fmt.Errorf("plot_order must be position, velocity or acceleration, got %q", *j.PlotOrder)
		}
	}
	if j.WAVScale != nil && *j.WAVScale <= 0 {
		return fmt.Errorf("wav_scale must be positive, got %g", *j.WAVScale)
	}
	if j.WAVBits != nil {
		switch *j.WAVBits {
		case 16, 24, 32:
		default:
			return fmt.Errorf("wav_bits must be 16, 24 or 32, got %d", *j.WAVBits)
		}
	}
	return nil
}

// GetMode returns the mode or the default.
func (j *Job) GetMode() string {
	if j.Mode == nil {
		return DefaultMode
	}
	return *j.Mode
}

// GetStep returns the resampling step or the default.
func (j *Job) GetStep() float64 {
	if j.Step == nil {
		return DefaultStep
	}
	return *j.Step
}

// GetPlotOrder returns the quantity to chart, defaulting to position.
func (j *Job) GetPlotOrder() string {
	if j.PlotOrder == nil {
		return "position"
	}
	return *j.PlotOrder
}

// GetWAVScale returns the WAV full-scale magnitude or the default.
func (j *Job) GetWAVScale() float64 {
	if j.WAVScale == nil {
		return DefaultWAVScale
	}
	return *j.WAVScale
}

// GetWAVBits returns the WAV bit depth or the default.
func (j *Job) GetWAVBits() int {
	if j.WAVBits == nil {
		return DefaultWAVBits
	}
	return *j.WAVBits
}
