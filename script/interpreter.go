// SPDX-License-Identifier: MIT

package script

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/drawgraph/builder"
	"github.com/katalvlaran/drawgraph/config"
	"github.com/katalvlaran/drawgraph/core"
	"github.com/katalvlaran/drawgraph/geom"
	"github.com/katalvlaran/drawgraph/snap"
	"github.com/katalvlaran/drawgraph/style"
)

// Interpreter executes edit commands against one graph. It keeps the
// current selection and the name tables between commands.
//
// Interpreter is not safe for concurrent use.
type Interpreter struct {
	g      *core.Graph
	snap   snap.Settings
	eraser float64
	pick   float64
	log    *zap.Logger
	out    io.Writer

	selection *core.Graph
	vertices  map[string]core.VertexID
	edges     map[string]core.EdgeID
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger traces every executed command at debug level. Nil disables
// tracing.
func WithLogger(l *zap.Logger) Option {
	return func(in *Interpreter) {
		if l == nil {
			l = zap.NewNop()
		}
		in.log = l
	}
}

// WithSnap sets the vertex snapping policy.
func WithSnap(s snap.Settings) Option {
	return func(in *Interpreter) { in.snap = s }
}

// WithToolRadii sets the eraser and click-select radii.
func WithToolRadii(eraser, pick float64) Option {
	return func(in *Interpreter) { in.eraser, in.pick = eraser, pick }
}

// WithOutput receives the output of bounds, info and history.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) { in.out = w }
}

// WithConfig applies the snap policy and tool radii of cfg.
func WithConfig(cfg *config.Config) Option {
	return func(in *Interpreter) {
		in.snap = cfg.SnapSettings()
		in.eraser, in.pick = cfg.Tools.EraserRadius, cfg.Tools.SelectRadius
	}
}

// New returns an interpreter over g with the editor's default snapping and
// tool radii, no tracing and discarded output.
func New(g *core.Graph, opts ...Option) *Interpreter {
	in := &Interpreter{
		g:        g,
		snap:     snap.Default(),
		eraser:   config.DefaultEraserRadius,
		pick:     config.DefaultSelectRadius,
		log:      zap.NewNop(),
		out:      io.Discard,
		vertices: make(map[string]core.VertexID),
		edges:    make(map[string]core.EdgeID),
	}
	for _, opt := range opts {
		opt(in)
	}
	in.selection = g.Subset(nil, nil)

	return in
}

// Graph returns the graph being edited.
func (in *Interpreter) Graph() *core.Graph { return in.g }

// Selection returns the current selection, a detached subgraph.
func (in *Interpreter) Selection() *core.Graph { return in.selection }

// Snap returns the current snapping policy.
func (in *Interpreter) Snap() snap.Settings { return in.snap }

// VertexByName resolves a vertex name.
func (in *Interpreter) VertexByName(name string) (core.VertexID, bool) {
	id, ok := in.vertices[name]
	return id, ok
}

// Run executes r line by line and stops at the first failing line. Errors
// are prefixed with the 1-based line number.
func (in *Interpreter) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		if err := in.Exec(sc.Text()); err != nil {
			in.log.Debug("script failed", zap.Int("line", n), zap.Error(err))
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	return nil
}

// Exec executes one line.
func (in *Interpreter) Exec(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]

	cmd, ok := commands[verb]
	if !ok {
		return fmt.Errorf("%q: %w", verb, ErrUnknownCommand)
	}
	if err := cmd(in, args); err != nil {
		return fmt.Errorf("%s: %w", verb, err)
	}
	in.log.Debug("exec",
		zap.String("cmd", verb),
		zap.Strings("args", args),
		zap.Int("vertices", in.g.VertexCount()),
		zap.Int("edges", in.g.EdgeCount()),
	)

	return nil
}

var commands map[string]func(*Interpreter, []string) error

func init() {
	commands = map[string]func(*Interpreter, []string) error{
		"vertex":  (*Interpreter).vertex,
		"edge":    (*Interpreter).edge,
		"link":    (*Interpreter).link,
		"remove":  (*Interpreter).remove,
		"delete":  (*Interpreter).delete,
		"move":    (*Interpreter).move,
		"select":  (*Interpreter).selectRegion,
		"click":   (*Interpreter).click,
		"erase":   (*Interpreter).erase,
		"cut":     (*Interpreter).cut,
		"shape":   (*Interpreter).shape,
		"cap":     (*Interpreter).cap,
		"snap":    (*Interpreter).toggleSnap,
		"undo":    (*Interpreter).undo,
		"redo":    (*Interpreter).redo,
		"clear":   (*Interpreter).clear,
		"bounds":  (*Interpreter).bounds,
		"info":    (*Interpreter).info,
		"history": (*Interpreter).history,
	}
}

func (in *Interpreter) vertex(args []string) error {
	if len(args) != 3 {
		return arity("NAME X Y", args)
	}
	name := args[0]
	if _, dup := in.vertices[name]; dup {
		return fmt.Errorf("%q: %w", name, ErrDuplicateName)
	}
	if strings.Contains(name, "-") {
		return fmt.Errorf("vertex name %q contains '-': %w", name, ErrSyntax)
	}
	p, err := point(args[1:])
	if err != nil {
		return err
	}
	at := in.snap.Reposition(in.g, p)
	in.vertices[name] = in.g.CreateVertex(at, core.WithLabel(name))

	return nil
}

func (in *Interpreter) edge(args []string) error {
	if len(args) != 2 {
		return arity("A B", args)
	}
	a, err := in.vertex1(args[0])
	if err != nil {
		return err
	}
	b, err := in.vertex1(args[1])
	if err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("loop on %s: %w", args[0], ErrRejected)
	}
	if in.g.IsAdjacentTo(a, b) {
		return fmt.Errorf("%s and %s already adjacent: %w", args[0], args[1], ErrRejected)
	}
	id := in.g.CreateEdge(a, b)
	if id.IsZero() {
		return fmt.Errorf("%s-%s: endpoint not in graph: %w", args[0], args[1], ErrRejected)
	}
	in.edges[args[0]+"-"+args[1]] = id

	return nil
}

// link joins the first vertices found under two points, like the edge
// tool. The new edge is named after the vertex labels.
func (in *Interpreter) link(args []string) error {
	if len(args) != 4 {
		return arity("X1 Y1 X2 Y2", args)
	}
	nums, err := floats(args)
	if err != nil {
		return err
	}
	var names [2]string
	for i := range names {
		p := geom.Pt(nums[2*i], nums[2*i+1])
		hits := in.g.VerticesAt(p)
		if len(hits) == 0 {
			return fmt.Errorf("no vertex at %v: %w", p, ErrRejected)
		}
		v, _ := in.g.Vertex(hits[0])
		if id, ok := in.vertices[v.Label]; !ok || id != hits[0] {
			return fmt.Errorf("vertex at %v is unnamed: %w", p, ErrRejected)
		}
		names[i] = v.Label
	}

	return in.edge(names[:])
}

func (in *Interpreter) remove(args []string) error {
	sub, err := in.subset(args)
	if err != nil {
		return err
	}
	if !in.g.RemoveSubgraph(sub) {
		return fmt.Errorf("nothing to remove: %w", ErrRejected)
	}

	return nil
}

func (in *Interpreter) delete(args []string) error {
	sub, err := in.subset(args)
	if err != nil {
		return err
	}
	if in.purge(sub) == 0 {
		return fmt.Errorf("nothing to delete: %w", ErrRejected)
	}

	return nil
}

// purge permanently deletes sub from the graph and forgets the names of
// everything deleted, cascaded edges included. Removed, undoable entities
// keep their names.
func (in *Interpreter) purge(sub *core.Graph) int {
	var vgone, egone []string
	for name, id := range in.vertices {
		if sub.HasVertex(id) {
			vgone = append(vgone, name)
		}
	}
	for name, id := range in.edges {
		e, ok := in.g.Edge(id)
		if sub.HasEdge(id) || ok && (sub.HasVertex(e.From) || sub.HasVertex(e.To)) {
			egone = append(egone, name)
		}
	}
	n := in.g.DeleteSubgraph(sub)
	for _, name := range vgone {
		delete(in.vertices, name)
	}
	for _, name := range egone {
		delete(in.edges, name)
	}

	return n
}

func (in *Interpreter) move(args []string) error {
	if len(args) != 3 {
		return arity("NAME X Y", args)
	}
	id, err := in.vertex1(args[0])
	if err != nil {
		return err
	}
	p, err := point(args[1:])
	if err != nil {
		return err
	}
	if !in.g.MoveVertex(id, p) {
		return fmt.Errorf("%s not in graph: %w", args[0], ErrRejected)
	}

	return nil
}

func (in *Interpreter) selectRegion(args []string) error {
	if len(args) == 0 {
		return arity("circle|rect|polygon|none ...", args)
	}
	nums, err := floats(args[1:])
	if err != nil {
		return err
	}
	switch strings.ToLower(args[0]) {
	case "circle":
		if len(nums) != 3 {
			return arity("circle X Y R", args[1:])
		}
		in.selection = in.g.GetSubgraphTouchingCircle(geom.Pt(nums[0], nums[1]), nums[2])
	case "rect":
		if len(nums) != 4 {
			return arity("rect X Y W H", args[1:])
		}
		in.selection = in.g.GetSubgraphWithin(geom.Pt(nums[0], nums[1]), nums[2], nums[3])
	case "polygon":
		if len(nums) < 6 || len(nums)%2 != 0 {
			return arity("polygon X Y X Y X Y ...", args[1:])
		}
		ring := make([]geom.Point, 0, len(nums)/2)
		for i := 0; i < len(nums); i += 2 {
			ring = append(ring, geom.Pt(nums[i], nums[i+1]))
		}
		in.selection = in.g.GetSubgraphTouchingPolygon(ring)
	case "none":
		in.selection = in.g.Subset(nil, nil)
	default:
		return fmt.Errorf("region %q: %w", args[0], ErrSyntax)
	}

	return nil
}

func (in *Interpreter) click(args []string) error {
	p, err := point(args)
	if err != nil {
		return err
	}
	in.selection = in.g.GetSubgraphTouchingCircle(p, in.pick)

	return nil
}

// erase permanently deletes what the eraser touches; nothing is recorded,
// so Undo does not bring it back. A miss is not an error.
func (in *Interpreter) erase(args []string) error {
	p, err := point(args)
	if err != nil {
		return err
	}
	if hit := in.g.GetSubgraphTouchingCircle(p, in.eraser); !hit.IsEmpty() {
		in.purge(hit)
	}

	return nil
}

func (in *Interpreter) cut(args []string) error {
	if len(args) != 0 {
		return arity("", args)
	}
	if !in.g.RemoveSubgraph(in.selection) {
		return fmt.Errorf("empty selection: %w", ErrRejected)
	}
	in.selection = in.g.Subset(nil, nil)

	return nil
}

// shape mirrors the shape tool: the drag point is snapped relative to the
// center when a center vertex is requested, and to the nearest vertex
// otherwise.
func (in *Interpreter) shape(args []string) error {
	if len(args) < 5 {
		return arity("N CX CY X Y [norim] [center] [spokes]", args)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("count %q: %w", args[0], ErrSyntax)
	}
	nums, err := floats(args[1:5])
	if err != nil {
		return err
	}
	var opts []builder.Option
	center := false
	for _, flag := range args[5:] {
		switch strings.ToLower(flag) {
		case "norim":
			opts = append(opts, builder.WithOuterRing(false))
		case "center":
			center = true
			opts = append(opts, builder.WithCenter(true))
		case "spokes":
			center = true
			opts = append(opts, builder.WithSpokes(true))
		default:
			return fmt.Errorf("flag %q: %w", flag, ErrSyntax)
		}
	}

	c, drag := geom.Pt(nums[0], nums[1]), geom.Pt(nums[2], nums[3])
	if center {
		drag = in.snap.RepositionFrom(c, drag)
	} else {
		drag = in.snap.Reposition(in.g, drag)
	}
	if _, err := builder.Build(in.g, opts, builder.RingThrough(c, drag, n)); err != nil {
		return err
	}

	return nil
}

func (in *Interpreter) cap(args []string) error {
	if len(args) != 3 {
		return arity("X Y CAP", args)
	}
	p, err := point(args[:2])
	if err != nil {
		return err
	}
	c, err := style.ParseCap(args[2])
	if err != nil {
		return fmt.Errorf("%w: %w", err, ErrSyntax)
	}
	id, end, ok := in.g.NearestEdgeEnd(p, in.eraser)
	if !ok {
		return fmt.Errorf("no edge near %v: %w", p, ErrRejected)
	}
	in.g.SetEdgeCap(id, end, c)

	return nil
}

func (in *Interpreter) toggleSnap(args []string) error {
	if len(args) != 2 {
		return arity("unit|angle|grid on|off", args)
	}
	var on bool
	switch strings.ToLower(args[1]) {
	case "on":
		on = true
	case "off":
	default:
		return fmt.Errorf("%q is not on/off: %w", args[1], ErrSyntax)
	}
	switch strings.ToLower(args[0]) {
	case "unit":
		in.snap.Unit = on
	case "angle":
		in.snap.Angle = on
	case "grid":
		in.snap.Grid = on
	default:
		return fmt.Errorf("policy %q: %w", args[0], ErrSyntax)
	}

	return nil
}

func (in *Interpreter) undo(args []string) error {
	return in.repeat(args, in.g.CanUndo, func() { in.g.Undo() })
}

func (in *Interpreter) redo(args []string) error {
	return in.repeat(args, in.g.CanRedo, func() { in.g.Redo() })
}

// repeat runs step up to N times (default 1), stopping early when can
// reports false.
func (in *Interpreter) repeat(args []string, can func() bool, step func()) error {
	n := 1
	if len(args) > 1 {
		return arity("[N]", args)
	}
	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			return fmt.Errorf("count %q: %w", args[0], ErrSyntax)
		}
		n = v
	}
	for i := 0; i < n && can(); i++ {
		step()
	}

	return nil
}

func (in *Interpreter) clear(args []string) error {
	if len(args) != 0 {
		return arity("", args)
	}
	in.g.Clear()
	in.selection = in.g.Subset(nil, nil)

	return nil
}

func (in *Interpreter) bounds([]string) error {
	lo, hi := in.g.GetBounds()
	_, err := fmt.Fprintf(in.out, "%s..%s\n", lo, hi)

	return err
}

func (in *Interpreter) info([]string) error {
	_, err := fmt.Fprintln(in.out, in.g.Stats())

	return err
}

func (in *Interpreter) history([]string) error {
	for i, d := range in.g.HistoryDescriptions() {
		if _, err := fmt.Fprintf(in.out, "%d. %s\n", i+1, d); err != nil {
			return err
		}
	}

	return nil
}

// subset resolves names into a detached subgraph of the graph.
func (in *Interpreter) subset(names []string) (*core.Graph, error) {
	if len(names) == 0 {
		return nil, arity("NAME...", names)
	}
	var (
		vs []core.VertexID
		es []core.EdgeID
	)
	for _, name := range names {
		if v, ok := in.vertices[name]; ok {
			vs = append(vs, v)
			continue
		}
		e, err := in.edge1(name)
		if err != nil {
			return nil, err
		}
		es = append(es, e)
	}

	return in.g.Subset(vs, es), nil
}

func (in *Interpreter) vertex1(name string) (core.VertexID, error) {
	v, ok := in.vertices[name]
	if !ok {
		return core.VertexID{}, fmt.Errorf("vertex %q: %w", name, ErrUnknownName)
	}

	return v, nil
}

// edge1 resolves "A-B", accepting either direction.
func (in *Interpreter) edge1(name string) (core.EdgeID, error) {
	if e, ok := in.edges[name]; ok {
		return e, nil
	}
	if a, b, ok := strings.Cut(name, "-"); ok {
		if e, ok := in.edges[b+"-"+a]; ok {
			return e, nil
		}
	}

	return core.EdgeID{}, fmt.Errorf("%q: %w", name, ErrUnknownName)
}

func arity(usage string, args []string) error {
	return fmt.Errorf("want %q, got %d argument(s): %w", usage, len(args), ErrSyntax)
}

func point(args []string) (geom.Point, error) {
	if len(args) != 2 {
		return geom.Point{}, arity("X Y", args)
	}
	nums, err := floats(args)
	if err != nil {
		return geom.Point{}, err
	}

	return geom.Pt(nums[0], nums[1]), nil
}

func floats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("number %q: %w", a, ErrSyntax)
		}
		out[i] = v
	}

	return out, nil
}
