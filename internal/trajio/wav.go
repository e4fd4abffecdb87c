package trajio

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/simd/f64"

	trajectory "github.com/tphakala/go-trajectory-spline"
	"github.com/tphakala/go-trajectory-spline/internal/monitoring"
)

// Errors
var (
	// ErrInvalidWAV is returned for unreadable or empty WAV input.
	ErrInvalidWAV = errors.New("invalid WAV file")

	// ErrNonUniform is returned when a trajectory written to WAV is not
	// uniformly sampled.
	ErrNonUniform = errors.New("trajectory is not uniformly sampled")

	// ErrUnsupportedBitDepth is returned for PCM bit depths other than 16, 24 and 32.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
)

// WAV format constants
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	pcmFormat = 1 // WAV AudioFormat for integer PCM

	// uniformTolerance is the relative deviation of a time step from the
	// mean step that still counts as uniform sampling.
	uniformTolerance = 1e-6
)

// WAVOptions controls trajectory export to WAV.
type WAVOptions struct {
	// Scale is the position magnitude mapped to digital full scale.
	// Zero means 1.
	Scale float64

	// BitDepth is the PCM sample size: 16, 24 or 32. Zero means 16.
	BitDepth int
}

// getMaxValue returns the positive full-scale value for a PCM bit depth.
func getMaxValue(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

// ReadWAV decodes a multi-channel WAV file as a trajectory. Each channel is
// one joint and frame i is sampled at i/sampleRate seconds. Sample values are
// normalized to [-1, 1] and multiplied by scale (zero means 1).
func ReadWAV(r io.ReadSeeker, scale float64) (trajectory.Trajectory, error) {
	if scale == 0 {
		scale = 1
	}

	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, ErrInvalidWAV
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWAV, err)
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels <= 0 || buf.Format.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: missing format", ErrInvalidWAV)
	}

	maxVal, err := getMaxValue(int(decoder.BitDepth))
	if err != nil {
		return nil, err
	}

	channels := buf.Format.NumChannels
	rate := float64(buf.Format.SampleRate)
	frames := len(buf.Data) / channels
	if frames == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrInvalidWAV)
	}

	monitoring.Logf("wav: %d frames, %d channels, %d Hz, %d-bit", frames, channels, buf.Format.SampleRate, decoder.BitDepth)

	traj := make(trajectory.Trajectory, frames)
	for f := range frames {
		pos := make([]float64, channels)
		for ch := range channels {
			pos[ch] = float64(buf.Data[f*channels+ch])
		}
		f64.Scale(pos, pos, scale/maxVal)
		traj[f] = trajectory.Point{Positions: pos, TimeFromStart: float64(f) / rate}
	}
	return traj, nil
}

// WriteWAV encodes the positions of a uniformly sampled trajectory as a
// multi-channel PCM WAV file, one channel per joint. The sample rate is the
// reciprocal of the time step rounded to the nearest hertz. Positions are
// divided by opts.Scale and clipped to [-1, 1].
func WriteWAV(w io.WriteSeeker, traj trajectory.Trajectory, opts WAVOptions) error {
	if opts.Scale == 0 {
		opts.Scale = 1
	}
	if opts.BitDepth == 0 {
		opts.BitDepth = bitsPerSample16
	}
	maxVal, err := getMaxValue(opts.BitDepth)
	if err != nil {
		return err
	}

	rate, err := uniformRate(traj)
	if err != nil {
		return err
	}

	channels := traj.DOF()
	data := make([]int, 0, len(traj)*channels)
	scaled := make([]float64, channels)
	clipped := 0
	for i := range traj {
		if len(traj[i].Positions) != channels {
			return fmt.Errorf("%w: point %d has %d positions, expected %d",
				trajectory.ErrDegenerateInput, i, len(traj[i].Positions), channels)
		}
		f64.Scale(scaled, traj[i].Positions, maxVal/opts.Scale)
		for _, v := range scaled {
			if v > maxVal || v < -maxVal {
				clipped++
				v = math.Max(-maxVal, math.Min(maxVal, v))
			}
			data = append(data, int(math.Round(v)))
		}
	}
	if clipped > 0 {
		monitoring.Logf("wav: clipped %d samples outside ±%g", clipped, opts.Scale)
	}

	enc := wav.NewEncoder(w, rate, opts.BitDepth, channels, pcmFormat)
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		SourceBitDepth: opts.BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	return enc.Close()
}

// uniformRate returns the sample rate of a uniformly sampled trajectory.
func uniformRate(traj trajectory.Trajectory) (int, error) {
	if len(traj) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 points", ErrNonUniform)
	}
	times := traj.Times()
	mean := (times[len(times)-1] - times[0]) / float64(len(times)-1)
	if mean <= 0 {
		return 0, fmt.Errorf("%w: times not increasing", ErrNonUniform)
	}
	for i := 1; i < len(times); i++ {
		if d := times[i] - times[i-1]; math.Abs(d-mean) > mean*uniformTolerance {
			return 0, fmt.Errorf("%w: step %d is %g, mean step %g", ErrNonUniform, i, d, mean)
		}
	}
	rate := int(math.Round(1 / mean))
	if rate <= 0 {
		return 0, fmt.Errorf("%w: step %g too long for a WAV sample rate", ErrNonUniform, mean)
	}
	return rate, nil
}
