package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	trajectory "github.com/tphakala/go-trajectory-spline"
	"github.com/tphakala/go-trajectory-spline/internal/config"
	"github.com/tphakala/go-trajectory-spline/internal/trajio"
)

// File extensions
const (
	extCSV = ".csv"
	extWAV = ".wav"
)

// errUnknownFormat is returned for file extensions other than .csv and .wav.
var errUnknownFormat = errors.New("unknown file format")

// readTrajectory loads a trajectory from a CSV or WAV file.
func readTrajectory(path string, job *config.Job) (trajectory.Trajectory, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case extCSV:
		traj, names, err := trajio.ReadCSV(f)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return traj, names, nil
	case extWAV:
		traj, err := trajio.ReadWAV(f, job.GetWAVScale())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return traj, job.Joints, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", errUnknownFormat, ext)
	}
}

// writeTrajectory stores a trajectory as CSV or WAV.
func writeTrajectory(path string, traj trajectory.Trajectory, names []string, job *config.Job) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != extCSV && ext != extWAV {
		return fmt.Errorf("%w: %q", errUnknownFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if ext == extCSV {
		err = trajio.WriteCSV(f, traj, names)
	} else {
		err = trajio.WriteWAV(f, traj, trajio.WAVOptions{Scale: job.GetWAVScale(), BitDepth: job.GetWAVBits()})
		if errors.Is(err, trajio.ErrNonUniform) {
			log.Printf("WAV output needs a uniform grid; choose end-start as a multiple of step")
		}
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// process runs the job's mode on traj.
func process(traj trajectory.Trajectory, job *config.Job) (trajectory.Trajectory, error) {
	switch job.GetMode() {
	case config.ModeDerivatives:
		return trajectory.ProjectDerivatives(traj)
	case config.ModeResample:
		splines, err := trajectory.FitSplines(traj)
		if err != nil {
			return nil, err
		}
		cfg := resampleConfig(splines, job)
		return trajectory.ResampleWithConfig(splines, cfg)
	default:
		return nil, fmt.Errorf("unknown mode %q", job.GetMode())
	}
}

// resampleConfig fills unset bounds from the spline domain.
func resampleConfig(splines *trajectory.SplineSet, job *config.Job) trajectory.ResampleConfig {
	start, end := splines.Domain()
	if job.Start != nil {
		start = *job.Start
	}
	if job.End != nil {
		end = *job.End
	}
	return trajectory.ResampleConfig{Start: start, End: end, Step: job.GetStep()}
}

// parseOrder converts a quantity name to an evaluation order.
func parseOrder(name string) (trajectory.Order, error) {
	switch strings.ToLower(name) {
	case "position", "pos":
		return trajectory.Position, nil
	case "velocity", "vel":
		return trajectory.Velocity, nil
	case "acceleration", "acc":
		return trajectory.Acceleration, nil
	default:
		return 0, fmt.Errorf("unknown plot order %q", name)
	}
}
