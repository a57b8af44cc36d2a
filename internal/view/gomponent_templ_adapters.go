package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// Layouts speak templ.Component, pages and fragments are gomponents nodes.
// These two adapters let either side host the other.

type nodeComponent struct {
	node gomponents.Node
}

func (a nodeComponent) Render(_ context.Context, w io.Writer) error {
	return a.node.Render(w)
}

// Component wraps a gomponents node as a templ.Component.
func Component(node gomponents.Node) templ.Component {
	return nodeComponent{node: node}
}

type componentNode struct {
	ctx       context.Context
	component templ.Component
}

func (a componentNode) Render(w io.Writer) error {
	return a.component.Render(a.ctx, w)
}

// Node wraps a templ.Component as a gomponents node rendered with ctx.
func Node(ctx context.Context, component templ.Component) gomponents.Node {
	if ctx == nil {
		ctx = context.Background()
	}
	return componentNode{ctx: ctx, component: component}
}
