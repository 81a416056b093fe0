package editor

import (
	"errors"
	"slices"

	"github.com/plus3/scenedit/scene"
	"github.com/plus3/scenedit/undo"
)

// ErrPreviewEditorCamera is returned by SetCameraPreviewCommand.Check when the target is
// the editor camera itself.
var ErrPreviewEditorCamera = errors.New("editor: cannot preview through the editor camera")

// NodeField is a Field addressed by node handle.
type NodeField[V any] = undo.Field[*Context, scene.NodeHandle, V]

// NodeProperty is the command produced by a NodeField.
type NodeProperty[V any] = undo.Property[*Context, scene.NodeHandle, V]

func cameraField(label string, get func(*scene.Camera) float32, set func(*scene.Camera, float32)) *NodeField[float32] {
	return &NodeField[float32]{
		Label: label,
		Get: func(ctx *Context, h scene.NodeHandle) float32 {
			return get(ctx.Graph().At(h).AsCamera())
		},
		Set: func(ctx *Context, h scene.NodeHandle, v float32) {
			set(ctx.Graph().At(h).AsCamera(), v)
		},
	}
}

var (
	FovField   = cameraField("Set Fov", (*scene.Camera).Fov, (*scene.Camera).SetFov)
	ZNearField = cameraField("Set Camera Z Near", (*scene.Camera).ZNear, (*scene.Camera).SetZNear)
	ZFarField  = cameraField("Set Camera Z Far", (*scene.Camera).ZFar, (*scene.Camera).SetZFar)
)

func NewSetFovCommand(node scene.NodeHandle, fov float32) *NodeProperty[float32] {
	return FovField.Edit(node, fov)
}

func NewSetZNearCommand(node scene.NodeHandle, z float32) *NodeProperty[float32] {
	return ZNearField.Edit(node, z)
}

func NewSetZFarCommand(node scene.NodeHandle, z float32) *NodeProperty[float32] {
	return ZFarField.Edit(node, z)
}

// SetCameraPreviewCommand turns the preview of a scene camera on or off.
//
// At most one scene camera is enabled at a time: executing disables every other enabled
// scene camera and remembers which ones it touched so that Revert can re-enable exactly
// those. The editor camera is enabled exactly when the target is not previewing.
type SetCameraPreviewCommand struct {
	node       scene.NodeHandle
	value      bool
	oldValue   bool
	lastActive []scene.NodeHandle
	undo.NoFinalize[*Context]
}

func NewSetCameraPreviewCommand(node scene.NodeHandle, value bool) *SetCameraPreviewCommand {
	return &SetCameraPreviewCommand{
		node:  node,
		value: value,
	}
}

func (c *SetCameraPreviewCommand) Name(*Context) string {
	return "Set Camera Preview"
}

// Check rejects previews targeting the editor camera.
func (c *SetCameraPreviewCommand) Check(ctx *Context) error {
	if c.node == ctx.EditorCameraHandle() {
		return ErrPreviewEditorCamera
	}
	return nil
}

func (c *SetCameraPreviewCommand) Execute(ctx *Context) {
	graph := ctx.Graph()

	// The target changes first so the scan below sees its new state.
	camera := graph.At(c.node).AsCamera()
	c.oldValue = camera.IsEnabled()
	camera.SetEnabled(c.value)

	editorCamera := ctx.EditorCameraHandle()
	c.lastActive = nil
	for h, cam := range graph.Cameras() {
		if h == c.node || h == editorCamera {
			continue
		}
		if cam.IsEnabled() {
			cam.SetEnabled(false)
			c.lastActive = append(c.lastActive, h)
		}
	}

	ctx.EditorCamera().SetEnabled(!c.value)
}

func (c *SetCameraPreviewCommand) Revert(ctx *Context) {
	graph := ctx.Graph()

	for _, h := range c.lastActive {
		graph.At(h).AsCamera().SetEnabled(true)
	}

	graph.At(c.node).AsCamera().SetEnabled(c.oldValue)
	ctx.EditorCamera().SetEnabled(!c.oldValue)
}

// Target returns the camera node being previewed.
func (c *SetCameraPreviewCommand) Target() scene.NodeHandle {
	return c.node
}

// LastActive returns the cameras disabled by the last Execute.
func (c *SetCameraPreviewCommand) LastActive() []scene.NodeHandle {
	return slices.Clone(c.lastActive)
}
