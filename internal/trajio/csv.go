// Package trajio reads and writes trajectories as CSV tables and
// multi-channel WAV files.
package trajio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	trajectory "github.com/tphakala/go-trajectory-spline"
)

// Errors
var (
	// ErrBadHeader is returned when a CSV header does not describe a trajectory.
	ErrBadHeader = errors.New("bad trajectory CSV header")

	// ErrBadRecord is returned when a CSV row cannot be parsed.
	ErrBadRecord = errors.New("bad trajectory CSV record")
)

// CSV column naming
const (
	timeColumn   = "time"
	posPrefix    = "pos_"
	velPrefix    = "vel_"
	accPrefix    = "acc_"
	defaultJoint = "j"
)

// columnLayout maps CSV columns to point fields.
type columnLayout struct {
	names []string
	pos   []int
	vel   []int // nil when absent
	acc   []int // nil when absent
}

// ReadCSV parses a trajectory table. The header must start with "time"
// followed by one "pos_<joint>" column per joint and, optionally, matching
// "vel_<joint>" and "acc_<joint>" columns. It returns the trajectory and the
// joint names in column order.
func ReadCSV(r io.Reader) (trajectory.Trajectory, []string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrBadHeader, err)
	}
	layout, err := parseHeader(header)
	if err != nil {
		return nil, nil, err
	}

	var traj trajectory.Trajectory
	for row := 1; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: row %d: %w", ErrBadRecord, row, err)
		}
		p, err := layout.parseRecord(record)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: row %d: %w", ErrBadRecord, row, err)
		}
		traj = append(traj, p)
	}
	return traj, layout.names, nil
}

func parseHeader(header []string) (*columnLayout, error) {
	if len(header) < 2 || strings.TrimSpace(header[0]) != timeColumn {
		return nil, fmt.Errorf("%w: first column must be %q", ErrBadHeader, timeColumn)
	}

	layout := &columnLayout{}
	velIdx := map[string]int{}
	accIdx := map[string]int{}
	for i, col := range header[1:] {
		col = strings.TrimSpace(col)
		idx := i + 1
		switch {
		case strings.HasPrefix(col, posPrefix):
			layout.names = append(layout.names, strings.TrimPrefix(col, posPrefix))
			layout.pos = append(layout.pos, idx)
		case strings.HasPrefix(col, velPrefix):
			velIdx[strings.TrimPrefix(col, velPrefix)] = idx
		case strings.HasPrefix(col, accPrefix):
			accIdx[strings.TrimPrefix(col, accPrefix)] = idx
		default:
			return nil, fmt.Errorf("%w: unknown column %q", ErrBadHeader, col)
		}
	}
	if len(layout.pos) == 0 {
		return nil, fmt.Errorf("%w: no %s columns", ErrBadHeader, posPrefix)
	}

	var err error
	if layout.vel, err = matchColumns(layout.names, velIdx, velPrefix); err != nil {
		return nil, err
	}
	if layout.acc, err = matchColumns(layout.names, accIdx, accPrefix); err != nil {
		return nil, err
	}
	return layout, nil
}

// matchColumns orders derivative columns by joint. Derivative columns are all
// or nothing.
func matchColumns(names []string, idx map[string]int, prefix string) ([]int, error) {
	if len(idx) == 0 {
		return nil, nil
	}
	if len(idx) != len(names) {
		return nil, fmt.Errorf("%w: %d %s columns for %d joints", ErrBadHeader, len(idx), prefix, len(names))
	}
	cols := make([]int, len(names))
	for j, name := range names {
		c, ok := idx[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing column %s%s", ErrBadHeader, prefix, name)
		}
		cols[j] = c
	}
	return cols, nil
}

func (l *columnLayout) parseRecord(record []string) (trajectory.Point, error) {
	var p trajectory.Point
	tm, err := parseFloat(record, 0)
	if err != nil {
		return p, err
	}
	p.TimeFromStart = tm

	if p.Positions, err = parseColumns(record, l.pos); err != nil {
		return p, err
	}
	if p.Velocities, err = parseColumns(record, l.vel); err != nil {
		return p, err
	}
	if p.Accelerations, err = parseColumns(record, l.acc); err != nil {
		return p, err
	}
	return p, nil
}

func parseColumns(record []string, cols []int) ([]float64, error) {
	if cols == nil {
		return nil, nil
	}
	out := make([]float64, len(cols))
	for j, c := range cols {
		v, err := parseFloat(record, c)
		if err != nil {
			return nil, err
		}
		out[j] = v
	}
	return out, nil
}

func parseFloat(record []string, col int) (float64, error) {
	if col >= len(record) {
		return 0, fmt.Errorf("missing column %d", col)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(record[col]), 64)
	if err != nil {
		return 0, fmt.Errorf("column %d: %w", col, err)
	}
	return v, nil
}

// WriteCSV writes traj as a CSV table. Velocity and acceleration columns are
// included only when every point carries them. names may be nil or shorter
// than the DOF count; missing joint names default to j0, j1, ...
func WriteCSV(w io.Writer, traj trajectory.Trajectory, names []string) error {
	dof := traj.DOF()
	names = JointNames(names, dof)
	withVel, withAcc := true, true
	for i := range traj {
		withVel = withVel && len(traj[i].Velocities) == dof
		withAcc = withAcc && len(traj[i].Accelerations) == dof
	}

	header := []string{timeColumn}
	header = appendPrefixed(header, posPrefix, names)
	if withVel {
		header = appendPrefixed(header, velPrefix, names)
	}
	if withAcc {
		header = appendPrefixed(header, accPrefix, names)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, 0, len(header))
	for i := range traj {
		p := &traj[i]
		if len(p.Positions) != dof {
			return fmt.Errorf("%w: point %d has %d positions, expected %d", ErrBadRecord, i, len(p.Positions), dof)
		}
		record = append(record[:0], formatFloat(p.TimeFromStart))
		record = appendFloats(record, p.Positions)
		if withVel {
			record = appendFloats(record, p.Velocities)
		}
		if withAcc {
			record = appendFloats(record, p.Accelerations)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// JointNames returns names padded to dof entries with default names.
func JointNames(names []string, dof int) []string {
	out := make([]string, dof)
	for j := range dof {
		if j < len(names) && names[j] != "" {
			out[j] = names[j]
		} else {
			out[j] = defaultJoint + strconv.Itoa(j)
		}
	}
	return out
}

func appendPrefixed(dst []string, prefix string, names []string) []string {
	for _, n := range names {
		dst = append(dst, prefix+n)
	}
	return dst
}

func appendFloats(dst []string, values []float64) []string {
	for _, v := range values {
		dst = append(dst, formatFloat(v))
	}
	return dst
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
