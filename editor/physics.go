package editor

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/scenedit/scene"
	"github.com/plus3/scenedit/undo"
)

// ColliderField is a Field addressed by collider handle.
type ColliderField[V any] = undo.Field[*Context, scene.ColliderHandle, V]

// ColliderProperty is the command produced by a ColliderField.
type ColliderProperty[V any] = undo.Property[*Context, scene.ColliderHandle, V]

// JointField is a Field addressed by joint handle.
type JointField[V any] = undo.Field[*Context, scene.JointHandle, V]

// JointProperty is the command produced by a JointField.
type JointProperty[V any] = undo.Property[*Context, scene.JointHandle, V]

func colliderField[V any](label string, field func(*scene.Collider) *V) *ColliderField[V] {
	return &ColliderField[V]{
		Label: label,
		Get: func(ctx *Context, h scene.ColliderHandle) V {
			return *field(ctx.Scene.Physics.Collider(h))
		},
		Set: func(ctx *Context, h scene.ColliderHandle, v V) {
			*field(ctx.Scene.Physics.Collider(h)) = v
		},
	}
}

func jointField[V any](label string, field func(*scene.Joint) *V) *JointField[V] {
	return &JointField[V]{
		Label: label,
		Get: func(ctx *Context, h scene.JointHandle) V {
			return *field(ctx.Scene.Physics.Joint(h))
		},
		Set: func(ctx *Context, h scene.JointHandle, v V) {
			*field(ctx.Scene.Physics.Joint(h)) = v
		},
	}
}

var (
	ColliderTranslationField = colliderField("Set Collider Translation",
		func(c *scene.Collider) *mgl32.Vec3 { return &c.Translation })
	ColliderFrictionField = colliderField("Set Collider Friction",
		func(c *scene.Collider) *float32 { return &c.Friction })
	ColliderRestitutionField = colliderField("Set Collider Restitution",
		func(c *scene.Collider) *float32 { return &c.Restitution })
	ColliderIsSensorField = colliderField("Set Collider Is Sensor",
		func(c *scene.Collider) *bool { return &c.IsSensor })

	BallRadiusField = colliderField("Set Ball Radius",
		func(c *scene.Collider) *float32 { return &c.AsBall().Radius })
	CuboidHalfExtentsField = colliderField("Set Cuboid Half Extents",
		func(c *scene.Collider) *mgl32.Vec3 { return &c.AsCuboid().HalfExtents })
	CapsuleBeginField = colliderField("Set Capsule Begin",
		func(c *scene.Collider) *mgl32.Vec3 { return &c.AsCapsule().Begin })
	CapsuleEndField = colliderField("Set Capsule End",
		func(c *scene.Collider) *mgl32.Vec3 { return &c.AsCapsule().End })
	CapsuleRadiusField = colliderField("Set Capsule Radius",
		func(c *scene.Collider) *float32 { return &c.AsCapsule().Radius })

	BallJointAnchor1Field = jointField("Set Ball Joint Anchor 1",
		func(j *scene.Joint) *mgl32.Vec3 { return &j.AsBall().LocalAnchor1 })
	BallJointAnchor2Field = jointField("Set Ball Joint Anchor 2",
		func(j *scene.Joint) *mgl32.Vec3 { return &j.AsBall().LocalAnchor2 })
	FixedJointAnchor1Field = jointField("Set Fixed Joint Anchor 1 Translation",
		func(j *scene.Joint) *mgl32.Vec3 { return &j.AsFixed().LocalAnchor1Translation })
	FixedJointAnchor2Field = jointField("Set Fixed Joint Anchor 2 Translation",
		func(j *scene.Joint) *mgl32.Vec3 { return &j.AsFixed().LocalAnchor2Translation })
)

func NewSetCapsuleBeginCommand(collider scene.ColliderHandle, begin mgl32.Vec3) *ColliderProperty[mgl32.Vec3] {
	return CapsuleBeginField.Edit(collider, begin)
}

func NewSetCapsuleEndCommand(collider scene.ColliderHandle, end mgl32.Vec3) *ColliderProperty[mgl32.Vec3] {
	return CapsuleEndField.Edit(collider, end)
}

func NewSetCapsuleRadiusCommand(collider scene.ColliderHandle, radius float32) *ColliderProperty[float32] {
	return CapsuleRadiusField.Edit(collider, radius)
}

func NewSetBallRadiusCommand(collider scene.ColliderHandle, radius float32) *ColliderProperty[float32] {
	return BallRadiusField.Edit(collider, radius)
}

func NewSetCuboidHalfExtentsCommand(collider scene.ColliderHandle, halfExtents mgl32.Vec3) *ColliderProperty[mgl32.Vec3] {
	return CuboidHalfExtentsField.Edit(collider, halfExtents)
}

func NewSetColliderFrictionCommand(collider scene.ColliderHandle, friction float32) *ColliderProperty[float32] {
	return ColliderFrictionField.Edit(collider, friction)
}

func NewSetColliderRestitutionCommand(collider scene.ColliderHandle, restitution float32) *ColliderProperty[float32] {
	return ColliderRestitutionField.Edit(collider, restitution)
}

func NewSetColliderIsSensorCommand(collider scene.ColliderHandle, isSensor bool) *ColliderProperty[bool] {
	return ColliderIsSensorField.Edit(collider, isSensor)
}

func NewSetColliderTranslationCommand(collider scene.ColliderHandle, translation mgl32.Vec3) *ColliderProperty[mgl32.Vec3] {
	return ColliderTranslationField.Edit(collider, translation)
}

func NewSetBallJointAnchor1Command(joint scene.JointHandle, anchor mgl32.Vec3) *JointProperty[mgl32.Vec3] {
	return BallJointAnchor1Field.Edit(joint, anchor)
}

func NewSetBallJointAnchor2Command(joint scene.JointHandle, anchor mgl32.Vec3) *JointProperty[mgl32.Vec3] {
	return BallJointAnchor2Field.Edit(joint, anchor)
}

func NewSetFixedJointAnchor1Command(joint scene.JointHandle, anchor mgl32.Vec3) *JointProperty[mgl32.Vec3] {
	return FixedJointAnchor1Field.Edit(joint, anchor)
}

func NewSetFixedJointAnchor2Command(joint scene.JointHandle, anchor mgl32.Vec3) *JointProperty[mgl32.Vec3] {
	return FixedJointAnchor2Field.Edit(joint, anchor)
}

// AddColliderCommand attaches a new collider to a node.
type AddColliderCommand struct {
	owner    scene.NodeHandle
	collider scene.Collider
	handle   scene.ColliderHandle
	undo.NoFinalize[*Context]
}

func NewAddColliderCommand(owner scene.NodeHandle, collider scene.Collider) *AddColliderCommand {
	return &AddColliderCommand{owner: owner, collider: collider}
}

func (c *AddColliderCommand) Name(*Context) string {
	return "Add Collider"
}

func (c *AddColliderCommand) Execute(ctx *Context) {
	// The owner must still exist; resolving it catches commands outliving their node.
	ctx.Graph().At(c.owner)

	if c.handle.IsNone() {
		c.handle = ctx.Scene.Physics.AddCollider(c.owner, c.collider)
		return
	}
	ctx.Scene.Physics.RestoreCollider(c.handle, c.owner, c.collider)
}

func (c *AddColliderCommand) Revert(ctx *Context) {
	c.collider, _ = ctx.Scene.Physics.RemoveCollider(c.handle)
}

// Handle returns the collider handle, or the none handle before Execute.
func (c *AddColliderCommand) Handle() scene.ColliderHandle {
	return c.handle
}

// DeleteColliderCommand detaches and removes a collider.
type DeleteColliderCommand struct {
	handle   scene.ColliderHandle
	owner    scene.NodeHandle
	collider scene.Collider
	undo.NoFinalize[*Context]
}

func NewDeleteColliderCommand(collider scene.ColliderHandle) *DeleteColliderCommand {
	return &DeleteColliderCommand{handle: collider}
}

func (c *DeleteColliderCommand) Name(*Context) string {
	return "Delete Collider"
}

func (c *DeleteColliderCommand) Execute(ctx *Context) {
	c.collider, c.owner = ctx.Scene.Physics.RemoveCollider(c.handle)
}

func (c *DeleteColliderCommand) Revert(ctx *Context) {
	ctx.Scene.Physics.RestoreCollider(c.handle, c.owner, c.collider)
}
