package editor

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/scenedit/scene"
	"github.com/plus3/scenedit/undo"
)

func nodeField[V any](label string, get func(*scene.Node) V, set func(*scene.Node, V)) *NodeField[V] {
	return &NodeField[V]{
		Label: label,
		Get: func(ctx *Context, h scene.NodeHandle) V {
			return get(ctx.Graph().At(h))
		},
		Set: func(ctx *Context, h scene.NodeHandle, v V) {
			set(ctx.Graph().At(h), v)
		},
	}
}

var (
	NameField = nodeField("Set Node Name",
		func(n *scene.Node) string { return n.Name },
		func(n *scene.Node, v string) { n.Name = v })
	VisibleField = nodeField("Set Node Visible",
		func(n *scene.Node) bool { return n.Visible },
		func(n *scene.Node, v bool) { n.Visible = v })
	PositionField = nodeField("Set Node Position",
		func(n *scene.Node) mgl32.Vec3 { return n.Local.Position },
		func(n *scene.Node, v mgl32.Vec3) { n.Local.Position = v })
	RotationField = nodeField("Set Node Rotation",
		func(n *scene.Node) mgl32.Quat { return n.Local.Rotation },
		func(n *scene.Node, v mgl32.Quat) { n.Local.Rotation = v })
	ScaleField = nodeField("Set Node Scale",
		func(n *scene.Node) mgl32.Vec3 { return n.Local.Scale },
		func(n *scene.Node, v mgl32.Vec3) { n.Local.Scale = v })
)

func NewSetNameCommand(node scene.NodeHandle, name string) *NodeProperty[string] {
	return NameField.Edit(node, name)
}

func NewSetVisibleCommand(node scene.NodeHandle, visible bool) *NodeProperty[bool] {
	return VisibleField.Edit(node, visible)
}

func NewSetPositionCommand(node scene.NodeHandle, position mgl32.Vec3) *NodeProperty[mgl32.Vec3] {
	return PositionField.Edit(node, position)
}

func NewSetRotationCommand(node scene.NodeHandle, rotation mgl32.Quat) *NodeProperty[mgl32.Quat] {
	return RotationField.Edit(node, rotation)
}

func NewSetScaleCommand(node scene.NodeHandle, scale mgl32.Vec3) *NodeProperty[mgl32.Vec3] {
	return ScaleField.Edit(node, scale)
}

// AddNodeCommand adds a node to the graph. The handle assigned by the first Execute is
// reused on redo so later commands referring to it stay valid.
type AddNodeCommand struct {
	node   scene.Node
	handle scene.NodeHandle
	undo.NoFinalize[*Context]
}

func NewAddNodeCommand(node scene.Node) *AddNodeCommand {
	return &AddNodeCommand{node: node}
}

func (c *AddNodeCommand) Name(*Context) string {
	return "Add Node"
}

func (c *AddNodeCommand) Execute(ctx *Context) {
	if c.handle.IsNone() {
		c.handle = ctx.Graph().Add(c.node)
		return
	}
	ctx.Graph().Restore(c.handle, c.node)
}

func (c *AddNodeCommand) Revert(ctx *Context) {
	c.node = ctx.Graph().Remove(c.handle)
}

// Handle returns the handle of the added node, or the none handle before Execute.
func (c *AddNodeCommand) Handle() scene.NodeHandle {
	return c.handle
}

type removedNode struct {
	handle scene.NodeHandle
	node   scene.Node
}

type removedCollider struct {
	handle   scene.ColliderHandle
	owner    scene.NodeHandle
	collider scene.Collider
}

// DeleteNodeCommand removes a node together with its descendants and the colliders
// attached to any of them.
type DeleteNodeCommand struct {
	handle    scene.NodeHandle
	nodes     []removedNode
	colliders []removedCollider
	undo.NoFinalize[*Context]
}

func NewDeleteNodeCommand(node scene.NodeHandle) *DeleteNodeCommand {
	return &DeleteNodeCommand{handle: node}
}

func (c *DeleteNodeCommand) Name(*Context) string {
	return "Delete Node"
}

func (c *DeleteNodeCommand) Execute(ctx *Context) {
	graph := ctx.Graph()
	physics := ctx.Scene.Physics

	c.nodes = nil
	c.colliders = nil

	// Parents are collected before their children, removal runs leaves first.
	subtree := []scene.NodeHandle{c.handle}
	for i := 0; i < len(subtree); i++ {
		subtree = append(subtree, graph.Children(subtree[i])...)
	}

	for i := len(subtree) - 1; i >= 0; i-- {
		h := subtree[i]
		for _, ch := range physics.CollidersOf(h) {
			collider, owner := physics.RemoveCollider(ch)
			c.colliders = append(c.colliders, removedCollider{handle: ch, owner: owner, collider: collider})
		}
		c.nodes = append(c.nodes, removedNode{handle: h, node: graph.Remove(h)})
	}
}

func (c *DeleteNodeCommand) Revert(ctx *Context) {
	graph := ctx.Graph()
	physics := ctx.Scene.Physics

	for i := len(c.nodes) - 1; i >= 0; i-- {
		graph.Restore(c.nodes[i].handle, c.nodes[i].node)
	}
	for i := len(c.colliders) - 1; i >= 0; i-- {
		rc := c.colliders[i]
		physics.RestoreCollider(rc.handle, rc.owner, rc.collider)
	}
}

// Removed returns the handles removed by the last Execute, leaves first.
func (c *DeleteNodeCommand) Removed() []scene.NodeHandle {
	out := make([]scene.NodeHandle, len(c.nodes))
	for i, rn := range c.nodes {
		out[i] = rn.handle
	}
	return out
}
