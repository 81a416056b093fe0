package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/scenedit/pool"
)

// ErrKindMismatch is wrapped into the panic raised when an entity is accessed as a kind
// it is not, e.g. a mesh node as a camera.
var ErrKindMismatch = errors.New("scene: entity kind mismatch")

type NodeHandle = pool.Handle[Node]

// NodeKind identifies the payload carried by a Node.
type NodeKind int

const (
	NodeBase NodeKind = iota
	NodeCamera
	NodeTerrain
	NodeMesh
)

func (k NodeKind) String() string {
	switch k {
	case NodeBase:
		return "base"
	case NodeCamera:
		return "camera"
	case NodeTerrain:
		return "terrain"
	case NodeMesh:
		return "mesh"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// Transform is a node's local position, rotation and scale.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// IdentityTransform returns a transform at the origin with unit scale.
func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Matrix returns the local transform as T * R * S.
func (t Transform) Matrix() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translate.Mul4(t.Rotation.Mat4()).Mul4(scale)
}

// Mesh is the payload of a mesh node. Geometry itself is owned by the renderer.
type Mesh struct {
	Surface ResourceId
}

// Node is an entry of the scene graph. Kind-specific data is reached through the As*
// accessors, which panic when the node is of another kind.
type Node struct {
	Name    string
	Local   Transform
	Visible bool
	Parent  NodeHandle

	kind    NodeKind
	camera  Camera
	terrain Terrain
	mesh    Mesh
}

// NewBaseNode creates an empty grouping node.
func NewBaseNode(name string) Node {
	return Node{
		Name:    name,
		Local:   IdentityTransform(),
		Visible: true,
		kind:    NodeBase,
	}
}

// NewCameraNode creates a camera node.
func NewCameraNode(name string, camera Camera) Node {
	n := NewBaseNode(name)
	n.kind = NodeCamera
	n.camera = camera
	return n
}

// NewTerrainNode creates a terrain node.
func NewTerrainNode(name string, terrain Terrain) Node {
	n := NewBaseNode(name)
	n.kind = NodeTerrain
	n.terrain = terrain
	return n
}

// NewMeshNode creates a mesh node.
func NewMeshNode(name string, mesh Mesh) Node {
	n := NewBaseNode(name)
	n.kind = NodeMesh
	n.mesh = mesh
	return n
}

func (n *Node) Kind() NodeKind {
	return n.kind
}

func (n *Node) IsCamera() bool {
	return n.kind == NodeCamera
}

func (n *Node) IsTerrain() bool {
	return n.kind == NodeTerrain
}

func (n *Node) AsCamera() *Camera {
	n.mustBe(NodeCamera)
	return &n.camera
}

func (n *Node) AsTerrain() *Terrain {
	n.mustBe(NodeTerrain)
	return &n.terrain
}

func (n *Node) AsMesh() *Mesh {
	n.mustBe(NodeMesh)
	return &n.mesh
}

func (n *Node) mustBe(kind NodeKind) {
	if n.kind != kind {
		panic(fmt.Errorf("%w: node %q is a %s, not a %s", ErrKindMismatch, n.Name, n.kind, kind))
	}
}
