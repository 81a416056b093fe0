package editor_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/scenedit/editor"
	"github.com/plus3/scenedit/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodePropertyRoundTrip(t *testing.T) {
	ctx := newTestContext()
	h := ctx.Graph().Add(scene.NewBaseNode("crate"))
	before := *ctx.Graph().At(h)

	cmds := []editor.Command{
		editor.NewSetNameCommand(h, "barrel"),
		editor.NewSetVisibleCommand(h, false),
		editor.NewSetPositionCommand(h, mgl32.Vec3{1, 2, 3}),
		editor.NewSetRotationCommand(h, mgl32.QuatRotate(1, mgl32.Vec3{0, 1, 0})),
		editor.NewSetScaleCommand(h, mgl32.Vec3{2, 2, 2}),
	}
	for _, cmd := range cmds {
		cmd.Execute(ctx)
	}

	node := ctx.Graph().At(h)
	assert.Equal(t, "barrel", node.Name)
	assert.False(t, node.Visible)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, node.Local.Position)
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, node.Local.Scale)

	for i := len(cmds) - 1; i >= 0; i-- {
		cmds[i].Revert(ctx)
	}
	assert.Equal(t, before, *ctx.Graph().At(h))
}

func TestNodePropertyOnRemovedNodePanics(t *testing.T) {
	ctx := newTestContext()
	h := ctx.Graph().Add(scene.NewBaseNode("crate"))
	ctx.Graph().Remove(h)

	assert.Panics(t, func() { editor.NewSetNameCommand(h, "x").Execute(ctx) })
}

func TestAddNodeKeepsHandleAcrossRedo(t *testing.T) {
	ctx := newTestContext()
	cmd := editor.NewAddNodeCommand(scene.NewBaseNode("crate"))
	assert.True(t, cmd.Handle().IsNone())

	cmd.Execute(ctx)
	h := cmd.Handle()
	require.True(t, ctx.Graph().Has(h))

	rename := editor.NewSetNameCommand(h, "barrel")
	rename.Execute(ctx)
	rename.Revert(ctx)

	cmd.Revert(ctx)
	assert.False(t, ctx.Graph().Has(h))

	cmd.Execute(ctx)
	assert.Equal(t, h, cmd.Handle())

	rename.Execute(ctx)
	assert.Equal(t, "barrel", ctx.Graph().At(h).Name)
}

func TestDeleteNodeRemovesSubtreeAndColliders(t *testing.T) {
	ctx := newTestContext()
	g := ctx.Graph()

	root := g.Add(scene.NewBaseNode("root"))
	child := scene.NewBaseNode("child")
	child.Parent = root
	c := g.Add(child)
	grandchild := scene.NewBaseNode("grandchild")
	grandchild.Parent = c
	gc := g.Add(grandchild)
	other := g.Add(scene.NewBaseNode("other"))

	rootCollider := ctx.Scene.Physics.AddCollider(root, scene.NewBallCollider(1))
	leafCollider := ctx.Scene.Physics.AddCollider(gc, scene.NewBallCollider(0.5))
	otherCollider := ctx.Scene.Physics.AddCollider(other, scene.NewBallCollider(2))
	nodes := g.Len()

	cmd := editor.NewDeleteNodeCommand(root)
	cmd.Execute(ctx)

	assert.Equal(t, []scene.NodeHandle{gc, c, root}, cmd.Removed())
	assert.Equal(t, nodes-3, g.Len())
	assert.Equal(t, 1, ctx.Scene.Physics.Colliders().Len())
	assert.True(t, ctx.Scene.Physics.Colliders().Has(otherCollider))

	cmd.Revert(ctx)

	assert.Equal(t, nodes, g.Len())
	assert.Equal(t, root, g.At(c).Parent)
	assert.Equal(t, c, g.At(gc).Parent)
	owner, ok := ctx.Scene.Physics.AttachedTo(rootCollider)
	require.True(t, ok)
	assert.Equal(t, root, owner)
	owner, ok = ctx.Scene.Physics.AttachedTo(leafCollider)
	require.True(t, ok)
	assert.Equal(t, gc, owner)
	assert.Equal(t, float32(0.5), ctx.Scene.Physics.Collider(leafCollider).AsBall().Radius)
}

func TestDeleteNodeRedoAfterUndo(t *testing.T) {
	ctx := newTestContext()
	h := ctx.Graph().Add(scene.NewBaseNode("crate"))

	history := editor.NewSession(ctx, editor.DefaultConfig(), nil).History()
	history.Do(ctx, editor.NewDeleteNodeCommand(h))
	assert.False(t, ctx.Graph().Has(h))

	history.Undo(ctx)
	assert.True(t, ctx.Graph().Has(h))

	history.Redo(ctx)
	assert.False(t, ctx.Graph().Has(h))
}
