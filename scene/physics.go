package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/kamstrup/intmap"
	"github.com/plus3/scenedit/pool"
)

type ColliderHandle = pool.Handle[Collider]
type JointHandle = pool.Handle[Joint]

// ShapeKind identifies the collision shape carried by a Collider.
type ShapeKind int

const (
	ShapeBall ShapeKind = iota
	ShapeCuboid
	ShapeCapsule
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeBall:
		return "ball"
	case ShapeCuboid:
		return "cuboid"
	case ShapeCapsule:
		return "capsule"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

type BallShape struct {
	Radius float32
}

type CuboidShape struct {
	HalfExtents mgl32.Vec3
}

type CapsuleShape struct {
	Begin  mgl32.Vec3
	End    mgl32.Vec3
	Radius float32
}

// Collider is the editor-side description of a collision shape.
type Collider struct {
	Translation mgl32.Vec3
	Friction    float32
	Restitution float32
	IsSensor    bool

	kind    ShapeKind
	ball    BallShape
	cuboid  CuboidShape
	capsule CapsuleShape
}

func newCollider(kind ShapeKind) Collider {
	return Collider{
		Friction: 0.5,
		kind:     kind,
	}
}

func NewBallCollider(radius float32) Collider {
	c := newCollider(ShapeBall)
	c.ball = BallShape{Radius: radius}
	return c
}

func NewCuboidCollider(halfExtents mgl32.Vec3) Collider {
	c := newCollider(ShapeCuboid)
	c.cuboid = CuboidShape{HalfExtents: halfExtents}
	return c
}

func NewCapsuleCollider(begin, end mgl32.Vec3, radius float32) Collider {
	c := newCollider(ShapeCapsule)
	c.capsule = CapsuleShape{Begin: begin, End: end, Radius: radius}
	return c
}

func (c *Collider) Shape() ShapeKind {
	return c.kind
}

func (c *Collider) AsBall() *BallShape {
	c.mustBe(ShapeBall)
	return &c.ball
}

func (c *Collider) AsCuboid() *CuboidShape {
	c.mustBe(ShapeCuboid)
	return &c.cuboid
}

func (c *Collider) AsCapsule() *CapsuleShape {
	c.mustBe(ShapeCapsule)
	return &c.capsule
}

func (c *Collider) mustBe(kind ShapeKind) {
	if c.kind != kind {
		panic(fmt.Errorf("%w: collider is a %s, not a %s", ErrKindMismatch, c.kind, kind))
	}
}

// JointKind identifies the parameters carried by a Joint.
type JointKind int

const (
	JointBall JointKind = iota
	JointFixed
)

func (k JointKind) String() string {
	switch k {
	case JointBall:
		return "ball"
	case JointFixed:
		return "fixed"
	default:
		return fmt.Sprintf("JointKind(%d)", int(k))
	}
}

type BallJoint struct {
	LocalAnchor1 mgl32.Vec3
	LocalAnchor2 mgl32.Vec3
}

type FixedJoint struct {
	LocalAnchor1Translation mgl32.Vec3
	LocalAnchor2Translation mgl32.Vec3
}

// Joint links two bodies, which are identified by the nodes they are attached to.
type Joint struct {
	Body1 NodeHandle
	Body2 NodeHandle

	kind  JointKind
	ball  BallJoint
	fixed FixedJoint
}

func NewBallJoint(body1, body2 NodeHandle, params BallJoint) Joint {
	return Joint{Body1: body1, Body2: body2, kind: JointBall, ball: params}
}

func NewFixedJoint(body1, body2 NodeHandle, params FixedJoint) Joint {
	return Joint{Body1: body1, Body2: body2, kind: JointFixed, fixed: params}
}

func (j *Joint) Kind() JointKind {
	return j.kind
}

func (j *Joint) AsBall() *BallJoint {
	j.mustBe(JointBall)
	return &j.ball
}

func (j *Joint) AsFixed() *FixedJoint {
	j.mustBe(JointFixed)
	return &j.fixed
}

func (j *Joint) mustBe(kind JointKind) {
	if j.kind != kind {
		panic(fmt.Errorf("%w: joint is a %s, not a %s", ErrKindMismatch, j.kind, kind))
	}
}

// Physics holds the colliders and joints edited alongside the graph. Each collider is
// attached to the node that owns its rigid body.
type Physics struct {
	colliders *pool.Pool[Collider]
	joints    *pool.Pool[Joint]
	owners    *intmap.Map[ColliderHandle, NodeHandle]
}

func NewPhysics() *Physics {
	return &Physics{
		colliders: pool.New[Collider](),
		joints:    pool.New[Joint](),
		owners:    intmap.New[ColliderHandle, NodeHandle](64),
	}
}

// AddCollider stores c attached to owner.
func (p *Physics) AddCollider(owner NodeHandle, c Collider) ColliderHandle {
	h := p.colliders.Spawn(c)
	p.owners.Put(h, owner)
	return h
}

// RemoveCollider removes the collider and returns it with the node it was attached to.
func (p *Physics) RemoveCollider(h ColliderHandle) (Collider, NodeHandle) {
	c, ok := p.colliders.Free(h)
	if !ok {
		// At panics with the reason the handle failed to resolve.
		p.colliders.At(h)
	}
	owner, _ := p.owners.Get(h)
	p.owners.Del(h)
	return c, owner
}

// RestoreCollider puts a removed collider back under its original handle.
func (p *Physics) RestoreCollider(h ColliderHandle, owner NodeHandle, c Collider) {
	p.colliders.Restore(h, c)
	p.owners.Put(h, owner)
}

// Collider resolves h, panicking if it is stale.
func (p *Physics) Collider(h ColliderHandle) *Collider {
	return p.colliders.At(h)
}

// AttachedTo returns the node a collider belongs to.
func (p *Physics) AttachedTo(h ColliderHandle) (NodeHandle, bool) {
	return p.owners.Get(h)
}

// CollidersOf lists the colliders attached to node in storage order.
func (p *Physics) CollidersOf(node NodeHandle) []ColliderHandle {
	var out []ColliderHandle
	for h := range p.colliders.Handles() {
		if owner, ok := p.owners.Get(h); ok && owner == node {
			out = append(out, h)
		}
	}
	return out
}

func (p *Physics) Colliders() *pool.Pool[Collider] {
	return p.colliders
}

func (p *Physics) AddJoint(j Joint) JointHandle {
	return p.joints.Spawn(j)
}

// RemoveJoint removes the joint, panicking if h is stale.
func (p *Physics) RemoveJoint(h JointHandle) Joint {
	j, ok := p.joints.Free(h)
	if !ok {
		p.joints.At(h)
	}
	return j
}

func (p *Physics) RestoreJoint(h JointHandle, j Joint) {
	p.joints.Restore(h, j)
}

// Joint resolves h, panicking if it is stale.
func (p *Physics) Joint(h JointHandle) *Joint {
	return p.joints.At(h)
}

func (p *Physics) Joints() *pool.Pool[Joint] {
	return p.joints
}
