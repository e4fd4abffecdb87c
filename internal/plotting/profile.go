// Package plotting renders trajectory profiles as charts.
package plotting

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	trajectory "github.com/tphakala/go-trajectory-spline"
	"github.com/tphakala/go-trajectory-spline/internal/trajio"
)

// ErrNoData is returned when the trajectory lacks the requested quantity.
var ErrNoData = errors.New("no data to plot")

// Chart dimensions
const (
	chartWidth  = 14 * vg.Inch
	chartHeight = 6 * vg.Inch
	lineWidth   = 1
	legendOffs  = -10
)

// axisLabels maps an order to the y axis label.
var axisLabels = map[trajectory.Order]string{
	trajectory.Position:     "Position",
	trajectory.Velocity:     "Velocity (/s)",
	trajectory.Acceleration: "Acceleration (/s²)",
}

// NewProfilePlot builds a chart with one line per joint showing the
// requested quantity against time.
func NewProfilePlot(traj trajectory.Trajectory, names []string, order trajectory.Order) (*plot.Plot, error) {
	label, ok := axisLabels[order]
	if !ok {
		return nil, fmt.Errorf("%w: unknown order %s", ErrNoData, order)
	}
	dof := traj.DOF()
	if len(traj) == 0 || dof == 0 {
		return nil, fmt.Errorf("%w: empty trajectory", ErrNoData)
	}
	names = trajio.JointNames(names, dof)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Joint %s profile", order)
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = label

	for j := range dof {
		pts := make(plotter.XYs, 0, len(traj))
		for i := range traj {
			values := quantity(&traj[i], order)
			if len(values) != dof {
				return nil, fmt.Errorf("%w: point %d has no %s for joint %d", ErrNoData, i, order, j)
			}
			pts = append(pts, plotter.XY{X: traj[i].TimeFromStart, Y: values[j]})
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to create line for joint %s: %w", names[j], err)
		}
		line.Color = plotutil.Color(j)
		line.Width = vg.Points(lineWidth)
		p.Add(line)
		p.Legend.Add(names[j], line)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = legendOffs
	p.Legend.YOffs = legendOffs
	return p, nil
}

// SaveProfile renders the requested quantity to path. The image format
// follows the file extension (.png, .svg, .pdf, ...).
func SaveProfile(traj trajectory.Trajectory, names []string, order trajectory.Order, path string) error {
	p, err := NewProfilePlot(traj, names, order)
	if err != nil {
		return err
	}
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("failed to save plot %s: %w", path, err)
	}
	return nil
}

func quantity(p *trajectory.Point, order trajectory.Order) []float64 {
	switch order {
	case trajectory.Velocity:
		return p.Velocities
	case trajectory.Acceleration:
		return p.Accelerations
	default:
		return p.Positions
	}
}
