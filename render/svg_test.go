// SPDX-License-Identifier: MIT
package render_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drawgraph/core"
	"github.com/katalvlaran/drawgraph/geom"
	"github.com/katalvlaran/drawgraph/render"
	"github.com/katalvlaran/drawgraph/style"
)

func triangle() (*core.Graph, []core.VertexID, []core.EdgeID) {
	g := core.NewGraph()
	a := g.CreateVertex(geom.Pt(0, 0), core.WithLabel("A"))
	b := g.CreateVertex(geom.Pt(100, 0), core.WithLabel("B"))
	c := g.CreateVertex(geom.Pt(0, 100), core.WithLabel("C & D"))

	return g, []core.VertexID{a, b, c}, []core.EdgeID{g.CreateEdge(a, b), g.CreateEdge(b, c), g.CreateEdge(c, a)}
}

func draw(t *testing.T, g *core.Graph, opts ...render.Option) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, render.SVG(&buf, g, opts...))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "<?xml"), "document starts with the XML declaration")
	require.Contains(t, out, "</svg>")

	return out
}

func TestSVGTriangle(t *testing.T) {
	g, _, _ := triangle()
	out := draw(t, g)

	// bounds (-10,-10)..(110,110) plus the default margin
	assert.Contains(t, out, `width="140" height="140"`)
	assert.Equal(t, 3, strings.Count(out, "<line"))
	assert.Equal(t, 3, strings.Count(out, "<circle"))
	assert.Contains(t, out, `<circle cx="20" cy="20" r="10"`)
	assert.NotContains(t, out, "<text", "labels are off by default")
	assert.NotContains(t, out, "stroke-dasharray")
}

func TestSVGLabelsAreEscaped(t *testing.T) {
	g, _, _ := triangle()
	out := draw(t, g, render.WithLabels(true))
	assert.Equal(t, 3, strings.Count(out, "<text"))
	assert.Contains(t, out, "C &amp; D")
}

func TestSVGEmptyGraph(t *testing.T) {
	out := draw(t, core.NewGraph(), render.WithMargin(0))
	assert.Contains(t, out, `width="1" height="1"`)
	assert.NotContains(t, out, "<line")
}

func TestSVGHighlight(t *testing.T) {
	g, vs, _ := triangle()
	sel := g.GetSubgraphTouchingCircle(geom.Pt(0, 0), 1)
	require.True(t, sel.HasVertex(vs[0]))

	out := draw(t, g, render.WithHighlight(sel))
	hex := style.Hex(render.DefaultHighlight)
	assert.Equal(t, 1+2, strings.Count(out, hex), "vertex A and its two edges")
}

func TestSVGShapesAndPatterns(t *testing.T) {
	g := core.NewGraph()
	rect := g.CreateVertex(geom.Pt(0, 0), core.WithVertexStyle(style.MustOblongStyle(style.KindRectangle, style.Black, 1, 40, 20)))
	ell := g.CreateVertex(geom.Pt(100, 0), core.WithVertexStyle(style.MustOblongStyle(style.KindEllipse, style.Black, 1, 40, 20)))
	star := g.CreateVertex(geom.Pt(0, 100), core.WithVertexStyle(style.MustRegularStyle(style.KindStar, style.Black, 1, 15, 5)))
	g.CreateVertex(geom.Pt(100, 100), core.WithVertexStyle(style.MustRoundStyle(style.KindDiamond, style.Black, 1, 10)))
	g.CreateVertex(geom.Pt(200, 100), core.WithVertexStyle(style.MustRoundStyle(style.KindCross, style.Black, 1, 10)))

	dashed, err := style.NewDashedEdgeStyle(style.DashDashDot, style.Black, style.DensityLoose, 6, 3, 1, 2)
	require.NoError(t, err)
	g.CreateEdge(rect, ell, core.WithEdgeStyle(dashed), core.WithCaps(style.CapNone, style.CapArrow))
	g.CreateEdge(ell, star, core.WithCaps(style.CapBar, style.CapCircle))
	g.CreateEdge(rect, star, core.WithEdgeStyle(style.EdgeStyle{}.WithColor(style.Transparent)), core.WithCaps(style.CapStealth, style.CapNone))

	out := draw(t, g)
	assert.Equal(t, 1, strings.Count(out, "<rect"))
	assert.Equal(t, 1, strings.Count(out, "<ellipse"))
	assert.Contains(t, out, "stroke-dasharray:6,6,2,6")
	assert.Contains(t, out, "stroke-dashoffset:1")
	// star, diamond, arrow head and stealth head
	assert.Equal(t, 4, strings.Count(out, "<polygon"))
	assert.Contains(t, out, "stroke:none", "transparent edge")
}

func TestSVGDotPattern(t *testing.T) {
	g := core.NewGraph()
	a := g.CreateVertex(geom.Pt(0, 0))
	b := g.CreateVertex(geom.Pt(50, 0))
	dot, err := style.NewDashedEdgeStyle(style.DashDot, style.Black, style.DensityRegular, 0, 2, 0, 1)
	require.NoError(t, err)
	g.CreateEdge(a, b, core.WithEdgeStyle(dot))

	out := draw(t, g)
	assert.Contains(t, out, "stroke-dasharray:2;")
}

func TestSVGScale(t *testing.T) {
	g, _, _ := triangle()
	out := draw(t, g, render.WithScale(2), render.WithMargin(0), render.WithBackground(style.White))
	assert.Contains(t, out, `width="240" height="240"`)
	assert.Contains(t, out, `<rect x="0" y="0" width="240" height="240" style="fill:#ffffff"`)
}

func TestSVGErrors(t *testing.T) {
	require.ErrorIs(t, render.SVG(&bytes.Buffer{}, nil), render.ErrNilGraph)

	boom := errors.New("disk full")
	g, _, _ := triangle()
	require.ErrorIs(t, render.SVG(failingWriter{boom}, g), boom)

	assert.Panics(t, func() { render.WithScale(0) })
	assert.Panics(t, func() { render.WithMargin(-1) })
}

func TestWriteFile(t *testing.T) {
	g, _, _ := triangle()
	path := filepath.Join(t.TempDir(), "g.svg")
	require.NoError(t, render.WriteFile(path, g))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }
