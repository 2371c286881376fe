// SPDX-License-Identifier: MIT
package script_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drawgraph/builder"
	"github.com/katalvlaran/drawgraph/core"
	"github.com/katalvlaran/drawgraph/script"
)

var builderTooFew = builder.ErrTooFewVertices

func newGraph() *core.Graph { return core.NewGraph() }

func mustVertex(t *testing.T, in *script.Interpreter, name string) core.VertexID {
	t.Helper()
	id, ok := in.VertexByName(name)
	require.True(t, ok, name)

	return id
}
