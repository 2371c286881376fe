// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/drawgraph/core"
	"github.com/katalvlaran/drawgraph/geom"
	"github.com/katalvlaran/drawgraph/snap"
	"github.com/katalvlaran/drawgraph/style"
)

// Tool radii of the original editor, in device units.
const (
	DefaultEraserRadius = 50.0
	DefaultSelectRadius = 1.0
)

// Config is the root of the YAML document.
type Config struct {
	Snap     SnapConfig     `yaml:"snap"`
	History  HistoryConfig  `yaml:"history"`
	Tools    ToolsConfig    `yaml:"tools"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// SnapConfig mirrors snap.Settings with the angle in degrees.
type SnapConfig struct {
	UnitLength       float64 `yaml:"unit_length"`
	AngleStepDegrees float64 `yaml:"angle_step_degrees"`
	MaxRadiusUnits   float64 `yaml:"max_radius_units"`
	Unit             bool    `yaml:"unit"`
	Angle            bool    `yaml:"angle"`
	Grid             bool    `yaml:"grid"`
}

// HistoryConfig sizes the undo ring.
type HistoryConfig struct {
	Capacity int `yaml:"capacity"`
}

// ToolsConfig holds the pick radii of the interactive tools.
type ToolsConfig struct {
	EraserRadius float64 `yaml:"eraser_radius"`
	SelectRadius float64 `yaml:"select_radius"`
}

// DefaultsConfig describes the styles new entities receive.
type DefaultsConfig struct {
	Vertex VertexConfig `yaml:"vertex"`
	Edge   EdgeConfig   `yaml:"edge"`
}

// VertexConfig describes a vertex style. Radius is used by round and
// regular shapes, Width and Height by rectangles and ellipses, Points by
// polygons and stars.
type VertexConfig struct {
	Shape     string  `yaml:"shape"`
	Border    string  `yaml:"border"`
	Fill      string  `yaml:"fill,omitempty"`
	Thickness float64 `yaml:"thickness"`
	Radius    float64 `yaml:"radius,omitempty"`
	Width     float64 `yaml:"width,omitempty"`
	Height    float64 `yaml:"height,omitempty"`
	Points    int     `yaml:"points,omitempty"`
}

// EdgeConfig describes an edge style. The pattern fields apply to dashed
// lines only.
type EdgeConfig struct {
	Dash           string  `yaml:"dash"`
	Color          string  `yaml:"color"`
	Thickness      float64 `yaml:"thickness"`
	Density        string  `yaml:"density,omitempty"`
	DashWidth      float64 `yaml:"dash_width,omitempty"`
	DashSpacing    float64 `yaml:"dash_spacing,omitempty"`
	PatternOffset  float64 `yaml:"pattern_offset,omitempty"`
	SourceCap      string  `yaml:"source_cap,omitempty"`
	DestinationCap string  `yaml:"destination_cap,omitempty"`
}

// Default returns the original editor's settings.
func Default() *Config {
	s := snap.Default()

	return &Config{
		Snap: SnapConfig{
			UnitLength:       s.UnitLength,
			AngleStepDegrees: s.AngleStep * 180 / math.Pi,
			MaxRadiusUnits:   s.MaxRadius,
			Unit:             s.Unit,
			Angle:            s.Angle,
			Grid:             s.Grid,
		},
		History: HistoryConfig{Capacity: core.DefaultHistoryCapacity},
		Tools:   ToolsConfig{EraserRadius: DefaultEraserRadius, SelectRadius: DefaultSelectRadius},
		Defaults: DefaultsConfig{
			Vertex: VertexConfig{
				Shape:     style.KindCircle.String(),
				Border:    style.Hex(style.Black),
				Thickness: style.DefaultThickness,
				Radius:    style.DefaultVertexRadius,
			},
			Edge: EdgeConfig{
				Dash:      style.DashSolid.String(),
				Color:     style.Hex(style.Black),
				Thickness: style.DefaultThickness,
			},
		},
	}
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes data over Default and validates the result. An empty
// document yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %v: %w", err, ErrDecode)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Save writes c to path as YAML.
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate reports every invalid field at once. Each reported error wraps
// ErrInvalid; style parse failures also wrap the style sentinel.
func (c *Config) Validate() error {
	var errs error
	if err := c.SnapSettings().Validate(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: %w", err, ErrInvalid))
	}
	if c.History.Capacity < 1 {
		errs = multierr.Append(errs, fmt.Errorf("history.capacity=%d: %w", c.History.Capacity, ErrInvalid))
	}
	if !(c.Tools.EraserRadius > 0) {
		errs = multierr.Append(errs, fmt.Errorf("tools.eraser_radius=%v: %w", c.Tools.EraserRadius, ErrInvalid))
	}
	if !(c.Tools.SelectRadius > 0) {
		errs = multierr.Append(errs, fmt.Errorf("tools.select_radius=%v: %w", c.Tools.SelectRadius, ErrInvalid))
	}
	if _, err := c.Defaults.Vertex.Style(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("defaults.vertex: %w: %w", err, ErrInvalid))
	}
	if _, err := c.Defaults.Edge.Style(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("defaults.edge: %w: %w", err, ErrInvalid))
	}

	return errs
}

// SnapSettings converts the snap section.
func (c *Config) SnapSettings() snap.Settings {
	return snap.Settings{
		UnitLength: c.Snap.UnitLength,
		AngleStep:  c.Snap.AngleStepDegrees * math.Pi / 180,
		MaxRadius:  c.Snap.MaxRadiusUnits,
		Unit:       c.Snap.Unit,
		Angle:      c.Snap.Angle,
		Grid:       c.Snap.Grid,
	}
}

// Styles builds the default-style provider.
func (c *Config) Styles() (style.Defaults, error) {
	vs, err := c.Defaults.Vertex.Style()
	if err != nil {
		return style.Defaults{}, fmt.Errorf("defaults.vertex: %w", err)
	}
	es, err := c.Defaults.Edge.Style()
	if err != nil {
		return style.Defaults{}, fmt.Errorf("defaults.edge: %w", err)
	}

	return style.Defaults{Vertex: vs, Edge: es}, nil
}

// GraphOptions returns the core options that apply the history depth and
// default styles.
func (c *Config) GraphOptions() ([]core.GraphOption, error) {
	if c.History.Capacity < 1 {
		return nil, fmt.Errorf("history.capacity=%d: %w", c.History.Capacity, ErrInvalid)
	}
	defaults, err := c.Styles()
	if err != nil {
		return nil, err
	}

	return []core.GraphOption{
		core.WithHistoryCapacity(c.History.Capacity),
		core.WithDefaults(defaults),
	}, nil
}

// UnitLengthMM reports the snap unit in millimetres.
func (c *Config) UnitLengthMM() float64 { return geom.PxToMM(c.Snap.UnitLength) }

// Style builds the vertex style, dispatching on the shape family.
func (v VertexConfig) Style() (style.VertexStyle, error) {
	k, err := style.ParseKind(v.Shape)
	if err != nil {
		return style.VertexStyle{}, err
	}
	border, err := style.ParseHex(v.Border)
	if err != nil {
		return style.VertexStyle{}, err
	}

	var vs style.VertexStyle
	switch {
	case k.IsOblong():
		vs, err = style.NewOblongStyle(k, border, v.Thickness, v.Width, v.Height)
	case k.IsRegular():
		vs, err = style.NewRegularStyle(k, border, v.Thickness, v.Radius, v.Points)
	default:
		vs, err = style.NewRoundStyle(k, border, v.Thickness, v.Radius)
	}
	if err != nil {
		return style.VertexStyle{}, err
	}
	if v.Fill != "" {
		fill, err := style.ParseHex(v.Fill)
		if err != nil {
			return style.VertexStyle{}, err
		}
		vs = vs.WithFill(fill)
	}

	return vs, nil
}

// Style builds the edge style with its caps.
func (e EdgeConfig) Style() (style.EdgeStyle, error) {
	d, err := style.ParseDash(e.Dash)
	if err != nil {
		return style.EdgeStyle{}, err
	}
	c, err := style.ParseHex(e.Color)
	if err != nil {
		return style.EdgeStyle{}, err
	}

	var es style.EdgeStyle
	if d == style.DashSolid {
		es, err = style.NewSolidEdgeStyle(c, e.Thickness)
	} else {
		density := style.DensityRegular
		if e.Density != "" {
			if density, err = style.ParseDensity(e.Density); err != nil {
				return style.EdgeStyle{}, err
			}
		}
		es, err = style.NewDashedEdgeStyle(d, c, density, e.DashWidth, e.DashSpacing, e.PatternOffset, e.Thickness)
	}
	if err != nil {
		return style.EdgeStyle{}, err
	}

	if e.SourceCap != "" {
		cp, err := style.ParseCap(e.SourceCap)
		if err != nil {
			return style.EdgeStyle{}, err
		}
		es = es.WithSourceCap(cp)
	}
	if e.DestinationCap != "" {
		cp, err := style.ParseCap(e.DestinationCap)
		if err != nil {
			return style.EdgeStyle{}, err
		}
		es = es.WithDestinationCap(cp)
	}

	return es, nil
}
