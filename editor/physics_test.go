package editor_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/scenedit/editor"
	"github.com/plus3/scenedit/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColliderPropertyRoundTrip(t *testing.T) {
	ctx := newTestContext()
	body := ctx.Graph().Add(scene.NewBaseNode("body"))
	physics := ctx.Scene.Physics

	capsule := physics.AddCollider(body, scene.NewCapsuleCollider(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, 0.5))
	ball := physics.AddCollider(body, scene.NewBallCollider(1))
	cuboid := physics.AddCollider(body, scene.NewCuboidCollider(mgl32.Vec3{1, 1, 1}))

	snapshot := func() []scene.Collider {
		return []scene.Collider{*physics.Collider(capsule), *physics.Collider(ball), *physics.Collider(cuboid)}
	}
	before := snapshot()

	cmds := []editor.Command{
		editor.NewSetCapsuleBeginCommand(capsule, mgl32.Vec3{0, -1, 0}),
		editor.NewSetCapsuleEndCommand(capsule, mgl32.Vec3{0, 2, 0}),
		editor.NewSetCapsuleRadiusCommand(capsule, 0.25),
		editor.NewSetBallRadiusCommand(ball, 3),
		editor.NewSetCuboidHalfExtentsCommand(cuboid, mgl32.Vec3{2, 1, 2}),
		editor.NewSetColliderFrictionCommand(ball, 0.9),
		editor.NewSetColliderRestitutionCommand(ball, 0.3),
		editor.NewSetColliderIsSensorCommand(cuboid, true),
		editor.NewSetColliderTranslationCommand(capsule, mgl32.Vec3{0, 0, 1}),
	}
	for _, cmd := range cmds {
		cmd.Execute(ctx)
	}

	shape := physics.Collider(capsule).AsCapsule()
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, shape.Begin)
	assert.Equal(t, mgl32.Vec3{0, 2, 0}, shape.End)
	assert.Equal(t, float32(0.25), shape.Radius)
	assert.Equal(t, float32(3), physics.Collider(ball).AsBall().Radius)
	assert.Equal(t, float32(0.9), physics.Collider(ball).Friction)
	assert.True(t, physics.Collider(cuboid).IsSensor)

	for i := len(cmds) - 1; i >= 0; i-- {
		cmds[i].Revert(ctx)
	}
	assert.Equal(t, before, snapshot())
}

func TestShapeFieldOnWrongShapePanics(t *testing.T) {
	ctx := newTestContext()
	body := ctx.Graph().Add(scene.NewBaseNode("body"))
	ball := ctx.Scene.Physics.AddCollider(body, scene.NewBallCollider(1))

	cmd := editor.NewSetCapsuleRadiusCommand(ball, 2)
	assert.Panics(t, func() { cmd.Execute(ctx) })
}

func TestJointAnchorRoundTrip(t *testing.T) {
	ctx := newTestContext()
	a := ctx.Graph().Add(scene.NewBaseNode("a"))
	b := ctx.Graph().Add(scene.NewBaseNode("b"))
	physics := ctx.Scene.Physics

	ball := physics.AddJoint(scene.NewBallJoint(a, b, scene.BallJoint{}))
	fixed := physics.AddJoint(scene.NewFixedJoint(a, b, scene.FixedJoint{}))

	cmds := []editor.Command{
		editor.NewSetBallJointAnchor1Command(ball, mgl32.Vec3{1, 0, 0}),
		editor.NewSetBallJointAnchor2Command(ball, mgl32.Vec3{-1, 0, 0}),
		editor.NewSetFixedJointAnchor1Command(fixed, mgl32.Vec3{0, 1, 0}),
		editor.NewSetFixedJointAnchor2Command(fixed, mgl32.Vec3{0, -1, 0}),
	}
	for _, cmd := range cmds {
		cmd.Execute(ctx)
	}
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, physics.Joint(ball).AsBall().LocalAnchor1)
	assert.Equal(t, mgl32.Vec3{-1, 0, 0}, physics.Joint(ball).AsBall().LocalAnchor2)
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, physics.Joint(fixed).AsFixed().LocalAnchor2Translation)

	for i := len(cmds) - 1; i >= 0; i-- {
		cmds[i].Revert(ctx)
	}
	assert.Equal(t, scene.BallJoint{}, *physics.Joint(ball).AsBall())
	assert.Equal(t, scene.FixedJoint{}, *physics.Joint(fixed).AsFixed())
}

func TestAddAndDeleteCollider(t *testing.T) {
	ctx := newTestContext()
	body := ctx.Graph().Add(scene.NewBaseNode("body"))
	physics := ctx.Scene.Physics

	add := editor.NewAddColliderCommand(body, scene.NewBallCollider(1))
	add.Execute(ctx)
	h := add.Handle()
	assert.Equal(t, []scene.ColliderHandle{h}, physics.CollidersOf(body))

	radius := editor.NewSetBallRadiusCommand(h, 4)
	radius.Execute(ctx)

	del := editor.NewDeleteColliderCommand(h)
	del.Execute(ctx)
	assert.Empty(t, physics.CollidersOf(body))

	del.Revert(ctx)
	assert.Equal(t, float32(4), physics.Collider(h).AsBall().Radius)

	radius.Revert(ctx)
	add.Revert(ctx)
	assert.Equal(t, 0, physics.Colliders().Len())

	add.Execute(ctx)
	assert.Equal(t, h, add.Handle())
	owner, ok := physics.AttachedTo(h)
	require.True(t, ok)
	assert.Equal(t, body, owner)
	assert.Equal(t, float32(1), physics.Collider(h).AsBall().Radius)
}

func TestAddColliderToMissingNodePanics(t *testing.T) {
	ctx := newTestContext()
	body := ctx.Graph().Add(scene.NewBaseNode("body"))
	ctx.Graph().Remove(body)

	assert.Panics(t, func() { editor.NewAddColliderCommand(body, scene.NewBallCollider(1)).Execute(ctx) })
}
