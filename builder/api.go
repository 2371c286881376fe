// SPDX-License-Identifier: MIT
// Package: drawgraph/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(parent, opts, cons...). Creates a scratch
//     subgraph over parent's arena, runs cons in order, merges the result.
//   - Functional options resolve into an immutable builderConfig.
//   - Determinism: same inputs, options and constructor order ⇒ identical
//     shapes.
//   - Safety: constructors never panic; they return sentinel errors.
//
// AI-Hints:
//   - Compose several constructors in one Build to get a single undo step.
//   - Constructors see the scratch subgraph only; they cannot touch parent.

package builder

import (
	"github.com/katalvlaran/drawgraph/core"
)

// Constructor emits vertices and edges into a scratch subgraph using the
// resolved builderConfig. Constructors validate before creating anything.
type Constructor func(g *core.Graph, cfg builderConfig) error

// Build runs cons in a fresh parent.NewSubgraph() and merges it into
// parent with AddSubgraph, which records one undoable step. It returns a
// detached snapshot whose members are the created entities.
//
// On error, every entity created so far is deleted and parent is left
// untouched. The error is wrapped as "Build: %w".
//
// Complexity: Σ cost of cons, plus O((V+E) log(V+E)) for the merge.
func Build(parent *core.Graph, opts []Option, cons ...Constructor) (*core.Graph, error) {
	if parent == nil {
		return nil, builderErrorf(MethodBuild, "nil parent: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	sub := parent.NewSubgraph()

	for i, fn := range cons {
		if fn == nil {
			sub.DeleteSubgraph(sub)
			return nil, builderErrorf(MethodBuild, "nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(sub, cfg); err != nil {
			sub.DeleteSubgraph(sub)
			return nil, builderErrorf(MethodBuild, "%w", err)
		}
	}
	parent.AddSubgraph(sub)

	return sub.Snapshot(), nil
}

// BuildGraph is Build over a new core.Graph created with gopts. The graph's
// history holds the single merge step.
func BuildGraph(gopts []core.GraphOption, opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if _, err := Build(g, opts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}
