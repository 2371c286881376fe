// SPDX-License-Identifier: MIT
package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/katalvlaran/drawgraph/config"
	"github.com/katalvlaran/drawgraph/core"
	"github.com/katalvlaran/drawgraph/geom"
	"github.com/katalvlaran/drawgraph/snap"
	"github.com/katalvlaran/drawgraph/style"
)

func TestDefaultMatchesEditor(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	s := cfg.SnapSettings()
	assert.InDelta(t, geom.MMToPx(10), s.UnitLength, 1e-9)
	assert.InDelta(t, math.Pi/12, s.AngleStep, 1e-12)
	assert.Equal(t, 4.0, s.MaxRadius)
	assert.True(t, s.Angle)
	assert.False(t, s.Unit)
	assert.False(t, s.Grid)
	assert.InDelta(t, 10, cfg.UnitLengthMM(), 1e-9)

	assert.Equal(t, core.DefaultHistoryCapacity, cfg.History.Capacity)
	assert.Equal(t, 50.0, cfg.Tools.EraserRadius)
	assert.Equal(t, 1.0, cfg.Tools.SelectRadius)

	styles, err := cfg.Styles()
	require.NoError(t, err)
	assert.Equal(t, style.StockDefaults(), styles)
}

func TestParseOverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := config.Parse([]byte(`
snap:
  unit: true
  angle_step_degrees: 45
history:
  capacity: 20
defaults:
  vertex:
    shape: polygon
    border: "#ff0000"
    fill: "#00ff0080"
    thickness: 2
    radius: 12
    points: 5
  edge:
    dash: dash-dot
    color: "#0000ff"
    thickness: 1.5
    density: dense
    dash_width: 4
    dash_spacing: 2
    destination_cap: arrow
`))
	require.NoError(t, err)

	s := cfg.SnapSettings()
	assert.True(t, s.Unit)
	assert.True(t, s.Angle, "untouched keys keep their defaults")
	assert.InDelta(t, math.Pi/4, s.AngleStep, 1e-12)
	assert.Equal(t, 20, cfg.History.Capacity)
	assert.Equal(t, 50.0, cfg.Tools.EraserRadius)

	styles, err := cfg.Styles()
	require.NoError(t, err)
	assert.Equal(t, style.KindPolygon, styles.Vertex.Kind())
	assert.Equal(t, uint8(0x80), styles.Vertex.Fill().A)
	assert.Equal(t, style.DashDashDot, styles.Edge.Dash())
	assert.Equal(t, style.DensityDense, styles.Edge.Density())
	assert.Equal(t, style.CapArrow, styles.Edge.DestinationCap())
	assert.Equal(t, style.CapNone, styles.Edge.SourceCap())

	opts, err := cfg.GraphOptions()
	require.NoError(t, err)
	g := core.NewGraph(opts...)
	v := g.CreateVertex(geom.Pt(1, 2))
	got, ok := g.Vertex(v)
	require.True(t, ok)
	assert.Equal(t, styles.Vertex, got.Style)
}

func TestParseEmptyYieldsDefaults(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParseRejectsUnknownKeysAndSyntax(t *testing.T) {
	_, err := config.Parse([]byte("snap:\n  unti: true\n"))
	require.ErrorIs(t, err, config.ErrDecode)

	_, err = config.Parse([]byte("snap: [\n"))
	require.ErrorIs(t, err, config.ErrDecode)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := config.Default()
	cfg.Snap.UnitLength = 0
	cfg.History.Capacity = 0
	cfg.Tools.EraserRadius = -1
	cfg.Defaults.Vertex.Shape = "hexagon"
	cfg.Defaults.Edge.Color = "blue"

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, snap.ErrBadUnit)
	assert.ErrorIs(t, err, style.ErrUnknownName)
	assert.ErrorIs(t, err, style.ErrBadColor)
	assert.Len(t, multierr.Errors(err), 5)
}

func TestValidateStyleFamilies(t *testing.T) {
	cfg := config.Default()
	cfg.Defaults.Vertex = config.VertexConfig{Shape: "rectangle", Border: "#000000", Thickness: 1, Width: -30, Height: 20}
	require.ErrorIs(t, cfg.Validate(), style.ErrBadExtent, "negative width")

	cfg.Defaults.Vertex.Width, cfg.Defaults.Vertex.Height = 30, 20
	require.NoError(t, cfg.Validate())

	cfg.Defaults.Edge.Dash = "none"
	require.ErrorIs(t, cfg.Validate(), style.ErrDashConstructor)
}

func TestGraphOptionsRejectsBadCapacity(t *testing.T) {
	cfg := config.Default()
	cfg.History.Capacity = 0
	_, err := cfg.GraphOptions()
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Snap.Grid = true
	cfg.Tools.SelectRadius = 3
	path := filepath.Join(t.TempDir(), "drawgraph.yaml")
	require.NoError(t, cfg.Save(path))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
