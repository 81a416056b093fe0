package editor

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/scenedit/scene"
)

// Sender accepts commands produced by the inspector sections. *Session implements it.
type Sender interface {
	Submit(cmd Command) error
}

// submitIf sends cmd only when the edited value differs from the model, so that
// re-syncing a widget to the model does not record a command.
func submitIf[V comparable](sender Sender, model, value V, cmd func() Command) error {
	if model == value {
		return nil
	}
	return sender.Submit(cmd())
}

// NodeSection edits the common properties of any node.
type NodeSection struct {
	sender Sender
}

func NewNodeSection(sender Sender) *NodeSection {
	return &NodeSection{sender: sender}
}

func (s *NodeSection) SetName(model *scene.Node, h scene.NodeHandle, name string) error {
	return submitIf(s.sender, model.Name, name, func() Command { return NewSetNameCommand(h, name) })
}

func (s *NodeSection) SetVisible(model *scene.Node, h scene.NodeHandle, visible bool) error {
	return submitIf(s.sender, model.Visible, visible, func() Command { return NewSetVisibleCommand(h, visible) })
}

func (s *NodeSection) SetPosition(model *scene.Node, h scene.NodeHandle, position mgl32.Vec3) error {
	return submitIf(s.sender, model.Local.Position, position, func() Command { return NewSetPositionCommand(h, position) })
}

func (s *NodeSection) SetScale(model *scene.Node, h scene.NodeHandle, scale mgl32.Vec3) error {
	return submitIf(s.sender, model.Local.Scale, scale, func() Command { return NewSetScaleCommand(h, scale) })
}

// CameraSection edits a camera node.
type CameraSection struct {
	sender Sender
}

func NewCameraSection(sender Sender) *CameraSection {
	return &CameraSection{sender: sender}
}

func (s *CameraSection) SetFov(model *scene.Camera, h scene.NodeHandle, fov float32) error {
	return submitIf(s.sender, model.Fov(), fov, func() Command { return NewSetFovCommand(h, fov) })
}

func (s *CameraSection) SetZNear(model *scene.Camera, h scene.NodeHandle, z float32) error {
	return submitIf(s.sender, model.ZNear(), z, func() Command { return NewSetZNearCommand(h, z) })
}

func (s *CameraSection) SetZFar(model *scene.Camera, h scene.NodeHandle, z float32) error {
	return submitIf(s.sender, model.ZFar(), z, func() Command { return NewSetZFarCommand(h, z) })
}

// SetPreview toggles previewing the scene through the camera.
func (s *CameraSection) SetPreview(model *scene.Camera, h scene.NodeHandle, preview bool) error {
	return submitIf(s.sender, model.IsEnabled(), preview, func() Command { return NewSetCameraPreviewCommand(h, preview) })
}

// CapsuleSection edits a capsule collider.
type CapsuleSection struct {
	sender Sender
}

func NewCapsuleSection(sender Sender) *CapsuleSection {
	return &CapsuleSection{sender: sender}
}

func (s *CapsuleSection) SetRadius(model scene.CapsuleShape, h scene.ColliderHandle, radius float32) error {
	return submitIf(s.sender, model.Radius, radius, func() Command { return NewSetCapsuleRadiusCommand(h, radius) })
}

func (s *CapsuleSection) SetBegin(model scene.CapsuleShape, h scene.ColliderHandle, begin mgl32.Vec3) error {
	return submitIf(s.sender, model.Begin, begin, func() Command { return NewSetCapsuleBeginCommand(h, begin) })
}

func (s *CapsuleSection) SetEnd(model scene.CapsuleShape, h scene.ColliderHandle, end mgl32.Vec3) error {
	return submitIf(s.sender, model.End, end, func() Command { return NewSetCapsuleEndCommand(h, end) })
}

// BallJointSection edits the anchors of a ball joint.
type BallJointSection struct {
	sender Sender
}

func NewBallJointSection(sender Sender) *BallJointSection {
	return &BallJointSection{sender: sender}
}

func (s *BallJointSection) SetAnchor1(model scene.BallJoint, h scene.JointHandle, anchor mgl32.Vec3) error {
	return submitIf(s.sender, model.LocalAnchor1, anchor, func() Command { return NewSetBallJointAnchor1Command(h, anchor) })
}

func (s *BallJointSection) SetAnchor2(model scene.BallJoint, h scene.JointHandle, anchor mgl32.Vec3) error {
	return submitIf(s.sender, model.LocalAnchor2, anchor, func() Command { return NewSetBallJointAnchor2Command(h, anchor) })
}

// TerrainSection tracks the selected layer of a terrain and keeps the brush pointed at it.
type TerrainSection struct {
	sender  Sender
	brush   *Brush
	current int
}

func NewTerrainSection(sender Sender, brush *Brush) *TerrainSection {
	return &TerrainSection{sender: sender, brush: brush, current: -1}
}

// CurrentLayer returns the selected layer index.
func (s *TerrainSection) CurrentLayer() (int, bool) {
	return s.current, s.current >= 0
}

// SelectLayer changes the selected layer; a negative index clears the selection.
func (s *TerrainSection) SelectLayer(index int) {
	if index < 0 {
		index = -1
	}
	s.current = index
	s.syncBrush()
}

// SyncToModel drops a selection that no longer exists after the terrain changed.
func (s *TerrainSection) SyncToModel(terrain *scene.Terrain) {
	if s.current >= terrain.LayerCount() {
		s.current = terrain.LayerCount() - 1
	}
	s.syncBrush()
}

func (s *TerrainSection) syncBrush() {
	layer := max(s.current, 0)
	s.brush.With(func(b *BrushState) {
		if b.Mode == BrushDrawOnMask {
			b.Layer = layer
		}
	})
}

// AddLayer requests a new layer. A non-empty texture must carry a reference for the
// layer; it is released here when the command cannot be sent.
func (s *TerrainSection) AddLayer(ctx *Context, h scene.NodeHandle, texture scene.ResourceId) error {
	if err := s.sender.Submit(NewAddTerrainLayerCommand(h, texture)); err != nil {
		ctx.Scene.Resources.Release(texture)
		return err
	}
	return nil
}

// RemoveLayer requests removal of the selected layer. Nothing is sent without a selection.
func (s *TerrainSection) RemoveLayer(h scene.NodeHandle) error {
	if s.current < 0 {
		return nil
	}
	return s.sender.Submit(NewDeleteTerrainLayerCommand(h, s.current))
}

// SetLayerTexture requests a texture change on the selected layer. The caller hands over
// one reference to texture; it is released here when nothing is sent.
func (s *TerrainSection) SetLayerTexture(ctx *Context, h scene.NodeHandle, texture scene.ResourceId) error {
	if s.current < 0 {
		ctx.Scene.Resources.Release(texture)
		return nil
	}
	if err := s.sender.Submit(NewSetTerrainLayerTextureCommand(h, s.current, texture)); err != nil {
		ctx.Scene.Resources.Release(texture)
		return err
	}
	return nil
}
