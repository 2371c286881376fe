// SPDX-License-Identifier: MIT

package style

// DefaultVertexRadius and DefaultThickness mirror the editor's stock vertex:
// a black circle of radius 10 drawn one unit thick.
const (
	DefaultVertexRadius = 10.0
	DefaultThickness    = 1.0
)

// Provider supplies the styles given to entities created without an
// explicit style.
type Provider interface {
	VertexStyle() VertexStyle
	EdgeStyle() EdgeStyle
}

// Defaults is a fixed Provider.
type Defaults struct {
	Vertex VertexStyle
	Edge   EdgeStyle
}

// VertexStyle implements Provider.
func (d Defaults) VertexStyle() VertexStyle { return d.Vertex }

// EdgeStyle implements Provider.
func (d Defaults) EdgeStyle() EdgeStyle { return d.Edge }

// StockDefaults returns the editor's built-in defaults: a black circle of
// radius 10 with thickness 1 and a solid black edge with thickness 1.
func StockDefaults() Defaults {
	return Defaults{
		Vertex: MustRoundStyle(KindCircle, Black, DefaultThickness, DefaultVertexRadius),
		Edge:   MustSolidEdgeStyle(Black, DefaultThickness),
	}
}
