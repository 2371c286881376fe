// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/drawgraph/core"
	"github.com/katalvlaran/drawgraph/geom"
	"github.com/katalvlaran/drawgraph/style"
)

// Cap geometry in multiples of the edge thickness, plus a fixed minimum.
const (
	capLength = 4.0
	capWidth  = 2.0
	capBase   = 4.0
)

// starInner is the inner-corner ratio of star borders.
const starInner = 0.5

// frame maps graph coordinates onto the canvas.
type frame struct {
	min   geom.Point
	scale float64
}

func (f frame) pt(p geom.Point) (int, int) {
	q := p.Sub(f.min).Scale(f.scale)

	return int(math.Round(q.X)), int(math.Round(q.Y))
}

func (f frame) length(v float64) int { return int(math.Round(v * f.scale)) }

func (f frame) poly(pts []geom.Point) (xs, ys []int) {
	xs, ys = make([]int, len(pts)), make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = f.pt(p)
	}

	return xs, ys
}

// SVG writes g as an SVG document to w.
//
// Edges are drawn first, then vertices, so vertex borders cover edge ends.
// Both layers are emitted in handle order, which makes the output
// deterministic for a given graph.
func SVG(w io.Writer, g *core.Graph, opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}
	o := newOptions(opts...)
	ew := &errWriter{w: w}

	lo, hi := g.GetBounds()
	pad := geom.Pt(o.margin, o.margin)
	f := frame{min: lo.Sub(pad), scale: o.scale}
	width := int(math.Ceil((hi.X - lo.X + 2*o.margin) * o.scale))
	height := int(math.Ceil((hi.Y - lo.Y + 2*o.margin) * o.scale))

	canvas := svg.New(ew)
	canvas.Start(max(width, 1), max(height, 1))
	canvas.Title(o.title)
	if o.background.A != 0 {
		canvas.Rect(0, 0, max(width, 1), max(height, 1), paint("fill", o.background))
	}

	canvas.Gid("edges")
	for _, e := range g.ViewEdges() {
		drawEdge(canvas, f, g, e, o)
	}
	canvas.Gend()

	canvas.Gid("vertices")
	for _, v := range g.ViewVertices() {
		drawVertex(canvas, f, v, o)
	}
	canvas.Gend()

	canvas.End()

	return ew.err
}

// WriteFile renders g into the named file.
func WriteFile(path string, g *core.Graph, opts ...Option) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return SVG(file, g, opts...)
}

func drawEdge(canvas *svg.SVG, f frame, g *core.Graph, e core.Edge, o options) {
	es := e.Style
	if es.Dash() == style.DashNone {
		return
	}
	src, dst, ok := g.EdgeEndpoints(e.ID)
	if !ok {
		return
	}
	c := es.Color()
	thickness := es.Thickness()
	if o.highlight != nil && o.highlight.HasEdge(e.ID) {
		c = o.hiColor
		thickness += 2
	}

	x1, y1 := f.pt(src)
	x2, y2 := f.pt(dst)
	line := []string{
		paint("stroke", c),
		"stroke-width:" + num(thickness*f.scale),
		"fill:none",
	}
	if dash := dashArray(es, f.scale); dash != "" {
		line = append(line, "stroke-dasharray:"+dash, "stroke-dashoffset:"+num(es.PatternOffset()*f.scale))
	}
	canvas.Line(x1, y1, x2, y2, strings.Join(line, ";"))

	drawCap(canvas, f, es.SourceCap(), src, dst, thickness, c)
	drawCap(canvas, f, es.DestinationCap(), dst, src, thickness, c)
}

// dashArray returns the stroke-dasharray for a patterned line: dashes are
// DashWidth long, dots one thickness long, gaps DashSpacing scaled by the
// density.
func dashArray(es style.EdgeStyle, scale float64) string {
	gap := es.DashSpacing()
	switch es.Density() {
	case style.DensityLoose:
		gap *= 2
	case style.DensityDense:
		gap /= 2
	}
	dash, dot, gap := es.DashWidth()*scale, es.Thickness()*scale, gap*scale

	var parts []float64
	switch es.Dash() {
	case style.DashDash:
		parts = []float64{dash, gap}
	case style.DashDot:
		parts = []float64{gap}
	case style.DashDotDash:
		parts = []float64{dot, gap, dash, gap}
	case style.DashDashDot:
		parts = []float64{dash, gap, dot, gap}
	case style.DashDashDotDot:
		parts = []float64{dash, gap, dot, gap, dot, gap}
	default:
		return ""
	}
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = num(p)
	}

	return strings.Join(out, ",")
}

// drawCap decorates the end tip of the segment from → tip.
func drawCap(canvas *svg.SVG, f frame, c style.Cap, tip, from geom.Point, thickness float64, col color.RGBA) {
	if c == style.CapNone || tip.Equal(from) {
		return
	}
	dir := geom.Unit(geom.AngleBetween(tip, from))
	normal := geom.Pt(-dir.Y, dir.X)
	length := capLength*thickness + capBase
	half := capWidth*thickness + capBase/2

	back := tip.Sub(dir.Scale(length))
	switch c {
	case style.CapArrow:
		xs, ys := f.poly([]geom.Point{tip, back.Add(normal.Scale(half)), back.Sub(normal.Scale(half))})
		canvas.Polygon(xs, ys, paint("fill", col))
	case style.CapStealth:
		notch := tip.Sub(dir.Scale(length * 0.6))
		xs, ys := f.poly([]geom.Point{tip, back.Add(normal.Scale(half)), notch, back.Sub(normal.Scale(half))})
		canvas.Polygon(xs, ys, paint("fill", col))
	case style.CapBar:
		x1, y1 := f.pt(tip.Add(normal.Scale(half)))
		x2, y2 := f.pt(tip.Sub(normal.Scale(half)))
		canvas.Line(x1, y1, x2, y2, paint("stroke", col)+";stroke-width:"+num(thickness*f.scale))
	case style.CapCircle:
		cx, cy := f.pt(tip.Sub(dir.Scale(half)))
		canvas.Circle(cx, cy, max(f.length(half), 1), paint("fill", col))
	}
}

func drawVertex(canvas *svg.SVG, f frame, v core.Vertex, o options) {
	vs := v.Style
	border := vs.Border()
	thickness := vs.Thickness()
	if o.highlight != nil && o.highlight.HasVertex(v.ID) {
		border = o.hiColor
		thickness += 2
	}
	attrs := paint("stroke", border) + ";stroke-width:" + num(thickness*f.scale) + ";" + paint("fill", vs.Fill())
	stroke := paint("stroke", border) + ";stroke-width:" + num(thickness*f.scale)
	cx, cy := f.pt(v.Position)

	switch s := vs.Shape().(type) {
	case style.Round:
		r := f.length(s.Radius)
		d := s.Radius / math.Sqrt2
		switch s.K {
		case style.KindCircle:
			canvas.Circle(cx, cy, r, attrs)
		case style.KindCircleSplit:
			canvas.Circle(cx, cy, r, attrs)
			canvas.Line(cx-r, cy, cx+r, cy, stroke)
		case style.KindNoSign:
			canvas.Circle(cx, cy, r, attrs)
			segment(canvas, f, v.Position, geom.Pt(-d, -d), geom.Pt(d, d), stroke)
		case style.KindDiamond:
			xs, ys := f.poly([]geom.Point{
				v.Position.Add(geom.Pt(0, -s.Radius)), v.Position.Add(geom.Pt(s.Radius, 0)),
				v.Position.Add(geom.Pt(0, s.Radius)), v.Position.Add(geom.Pt(-s.Radius, 0)),
			})
			canvas.Polygon(xs, ys, attrs)
		case style.KindCross:
			segment(canvas, f, v.Position, geom.Pt(-d, -d), geom.Pt(d, d), stroke)
			segment(canvas, f, v.Position, geom.Pt(-d, d), geom.Pt(d, -d), stroke)
		case style.KindStrike:
			segment(canvas, f, v.Position, geom.Pt(-d, d), geom.Pt(d, -d), stroke)
		}
	case style.Rectangle:
		x, y := f.pt(v.Position.Sub(geom.Pt(s.HalfW, s.HalfH)))
		canvas.Rect(x, y, f.length(2*s.HalfW), f.length(2*s.HalfH), attrs)
	case style.Ellipse:
		canvas.Ellipse(cx, cy, f.length(s.RX), f.length(s.RY), attrs)
	case style.Regular:
		corners := s.Corners(starInner)
		if len(corners) == 0 {
			break
		}
		for i := range corners {
			corners[i] = corners[i].Add(v.Position)
		}
		xs, ys := f.poly(corners)
		canvas.Polygon(xs, ys, attrs)
	}

	if o.labels && v.Label != "" {
		_, hi := style.Extent(vs.Shape())
		size := DefaultFontSize * f.scale
		canvas.Text(cx, cy+f.length(hi.Y)+int(math.Ceil(size)), v.Label,
			"font-size:"+num(size)+"px;font-family:sans-serif;text-anchor:middle;"+paint("fill", style.Black))
	}
}

func segment(canvas *svg.SVG, f frame, at, a, b geom.Point, s string) {
	x1, y1 := f.pt(at.Add(a))
	x2, y2 := f.pt(at.Add(b))
	canvas.Line(x1, y1, x2, y2, s)
}

// paint renders a CSS color property, with an opacity when c is
// translucent and "none" when it is fully transparent.
func paint(prop string, c color.RGBA) string {
	if c.A == 0 {
		return prop + ":none"
	}
	s := prop + ":" + style.Hex(c)
	if c.A != 0xff {
		s += ";" + prop + "-opacity:" + num(float64(c.A)/0xff)
	}

	return s
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
