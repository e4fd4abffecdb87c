// Command resample-trajectory fits natural cubic splines to a joint
// trajectory and either fills in velocities and accelerations at the
// original samples or resamples it on a uniform time grid.
//
// Usage:
//
//	resample-trajectory -step 0.01 input.csv output.csv
//	resample-trajectory -mode derivatives input.csv annotated.csv
//	resample-trajectory -step 0.001 -plot velocity.png -plot-order velocity input.csv dense.csv
//	resample-trajectory -step 0.001 -wav-scale 3.1416 input.csv joints.wav
//	resample-trajectory -config job.json capture.wav output.csv
//
// Input and output formats follow the file extension: .csv tables with a
// "time" column and "pos_<joint>" columns, or .wav files with one channel
// per joint.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	trajectory "github.com/tphakala/go-trajectory-spline"
	"github.com/tphakala/go-trajectory-spline/internal/config"
	"github.com/tphakala/go-trajectory-spline/internal/plotting"
)

const (
	// CLI defaults
	minRequiredArgs = 2
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Parse command line flags
	mode := flag.String("mode", config.DefaultMode, "Processing mode: resample or derivatives")
	step := flag.Float64("step", config.DefaultStep, "Resampling time step in seconds")
	start := flag.Float64("start", 0, "Resampling start time (default: first sample)")
	end := flag.Float64("end", 0, "Resampling end time (default: last sample)")
	plotPath := flag.String("plot", "", "Write a chart of the output to this file (.png, .svg, .pdf)")
	plotOrder := flag.String("plot-order", "position", "Quantity to chart: position, velocity, acceleration")
	wavScale := flag.Float64("wav-scale", config.DefaultWAVScale, "Position magnitude mapped to WAV full scale")
	wavBits := flag.Int("wav-bits", config.DefaultWAVBits, "WAV output bit depth: 16, 24, 32")
	configPath := flag.String("config", "", "JSON job file; flags given on the command line override it")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.{csv,wav} output.{csv,wav}\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -step 0.01 in.csv out.csv             # Resample at 100 Hz\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -mode derivatives in.csv out.csv      # Fill velocities/accelerations\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -step 0.001 -plot v.png in.csv out.wav # Resample, chart, export WAV\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}
	inputPath, outputPath := args[0], args[1]

	job := &config.Job{}
	if *configPath != "" {
		loaded, err := config.LoadJob(*configPath)
		if err != nil {
			return err
		}
		job = loaded
	}

	// Flags given explicitly win over the job file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			job.Mode = mode
		case "step":
			job.Step = step
		case "start":
			job.Start = start
		case "end":
			job.End = end
		case "plot":
			job.Plot = plotPath
		case "plot-order":
			job.PlotOrder = plotOrder
		case "wav-scale":
			job.WAVScale = wavScale
		case "wav-bits":
			job.WAVBits = wavBits
		}
	})
	if err := job.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	if *verbose {
		trajectory.SetLogger(log.Printf)
	}

	traj, names, err := readTrajectory(inputPath, job)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("Input: %d points, %d joints", len(traj), traj.DOF())
	}

	result, err := process(traj, job)
	if err != nil {
		return fmt.Errorf("%s failed (%s): %w", job.GetMode(), trajectory.KindOf(err), err)
	}
	if *verbose {
		log.Printf("Output: %d points", len(result))
	}

	if err := writeTrajectory(outputPath, result, names, job); err != nil {
		return err
	}

	if job.Plot != nil && *job.Plot != "" {
		order, err := parseOrder(job.GetPlotOrder())
		if err != nil {
			return err
		}
		if err := plotting.SaveProfile(result, names, order, *job.Plot); err != nil {
			return err
		}
		if *verbose {
			log.Printf("Chart written to %s", *job.Plot)
		}
	}

	return nil
}
