package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/scenedit/editor"
	"github.com/plus3/scenedit/scene"
)

// Inspector edits the selected node. Widgets are re-synced from the model every frame and
// only send a command when the user changes a value.
type Inspector struct {
	session *editor.Session
	brush   *editor.Brush

	node      *editor.NodeSection
	camera    *editor.CameraSection
	capsule   *editor.CapsuleSection
	ballJoint *editor.BallJointSection
	terrain   *editor.TerrainSection
	texture   string
}

func NewInspector(session *editor.Session, brush *editor.Brush) *Inspector {
	return &Inspector{
		session:   session,
		brush:     brush,
		node:      editor.NewNodeSection(session),
		camera:    editor.NewCameraSection(session),
		capsule:   editor.NewCapsuleSection(session),
		ballJoint: editor.NewBallJointSection(session),
		terrain:   editor.NewTerrainSection(session, brush),
	}
}

func (in *Inspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(340, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(400, 500), imgui.CondOnce)

	if !imgui.BeginV("Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ctx := in.session.Context()
	selection := ctx.EditorScene.Selection
	if len(selection) == 0 {
		imgui.Text("Nothing selected")
		imgui.End()
		return
	}

	h := selection[0]
	node, ok := ctx.Graph().Get(h)
	if !ok {
		imgui.Text(fmt.Sprintf("Node %s no longer exists", h))
		imgui.End()
		return
	}

	in.renderNode(node, h)

	switch node.Kind() {
	case scene.NodeCamera:
		in.renderCamera(node.AsCamera(), h)
	case scene.NodeTerrain:
		in.renderTerrain(ctx, node.AsTerrain(), h)
	}

	in.renderColliders(ctx, h)
	in.renderJoints(ctx, h)

	imgui.End()
}

func (in *Inspector) renderNode(node *scene.Node, h scene.NodeHandle) {
	name := node.Name
	imgui.Text("Name:")
	imgui.SameLine()
	imgui.SetNextItemWidth(200)
	if imgui.InputTextWithHint("##name", "", &name, imgui.InputTextFlagsNone, nil) {
		submit(in.session, in.node.SetName(node, h, name))
	}

	visible := node.Visible
	if imgui.Checkbox("Visible", &visible) {
		submit(in.session, in.node.SetVisible(node, h, visible))
	}

	position := node.Local.Position
	if inputVec3("Position", &position) {
		submit(in.session, in.node.SetPosition(node, h, position))
	}

	scale := node.Local.Scale
	if inputVec3("Scale", &scale) {
		submit(in.session, in.node.SetScale(node, h, scale))
	}
}

func (in *Inspector) renderCamera(cam *scene.Camera, h scene.NodeHandle) {
	if !imgui.TreeNodeStr("Camera") {
		return
	}

	fov := mgl32.RadToDeg(cam.Fov())
	if inputFloat("Fov", &fov) {
		submit(in.session, in.camera.SetFov(cam, h, mgl32.DegToRad(fov)))
	}

	zNear := cam.ZNear()
	if inputFloat("Z Near", &zNear) {
		submit(in.session, in.camera.SetZNear(cam, h, zNear))
	}

	zFar := cam.ZFar()
	if inputFloat("Z Far", &zFar) {
		submit(in.session, in.camera.SetZFar(cam, h, zFar))
	}

	preview := cam.IsEnabled()
	if imgui.Checkbox("Preview", &preview) {
		submit(in.session, in.camera.SetPreview(cam, h, preview))
	}

	imgui.TreePop()
}

func (in *Inspector) renderTerrain(ctx *editor.Context, terrain *scene.Terrain, h scene.NodeHandle) {
	if !imgui.TreeNodeStr("Terrain") {
		return
	}

	in.terrain.SyncToModel(terrain)
	current, _ := in.terrain.CurrentLayer()

	for i, layer := range terrain.Layers() {
		label := fmt.Sprintf("Layer %d##layer%d", i, i)
		if imgui.SelectableBoolV(label, i == current, imgui.SelectableFlagsNone, imgui.NewVec2(0, 0)) && i != current {
			in.terrain.SelectLayer(i)
		}
		if tex, ok := ctx.Scene.Resources.Texture(layer.Texture); ok && tex.Path != "" {
			imgui.SameLine()
			imgui.Text(tex.Path)
		}
	}

	if imgui.Button("Add Layer") {
		submit(in.session, in.terrain.AddLayer(ctx, h, ""))
	}
	imgui.SameLine()
	if imgui.Button("Remove Layer") {
		submit(in.session, in.terrain.RemoveLayer(h))
	}

	imgui.SetNextItemWidth(200)
	imgui.InputTextWithHint("##texture", "texture path", &in.texture, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Set Texture") && in.texture != "" {
		id := ctx.Scene.Resources.LoadTexture(in.texture)
		submit(in.session, in.terrain.SetLayerTexture(ctx, h, id))
	}

	imgui.Separator()
	in.renderBrush()

	imgui.TreePop()
}

func (in *Inspector) renderBrush() {
	state := in.brush.Snapshot()
	imgui.Text(fmt.Sprintf("Brush: %s", state.Mode))

	for _, mode := range []editor.BrushMode{editor.BrushRaise, editor.BrushLower, editor.BrushFlatten, editor.BrushDrawOnMask} {
		imgui.SameLine()
		if imgui.Button(mode.String()) {
			layer, _ := in.terrain.CurrentLayer()
			in.brush.With(func(b *editor.BrushState) {
				b.Mode = mode
				b.Layer = max(layer, 0)
			})
		}
	}

	radius := state.Radius
	if inputFloat("Radius", &radius) && radius > 0 {
		in.brush.With(func(b *editor.BrushState) { b.Radius = radius })
	}
}

func (in *Inspector) renderColliders(ctx *editor.Context, owner scene.NodeHandle) {
	colliders := ctx.Scene.Physics.CollidersOf(owner)
	if len(colliders) == 0 {
		return
	}
	if !imgui.TreeNodeStr("Colliders") {
		return
	}

	for _, ch := range colliders {
		collider := ctx.Scene.Physics.Collider(ch)
		imgui.Text(fmt.Sprintf("%s %s", collider.Shape(), ch))
		imgui.Indent()

		switch collider.Shape() {
		case scene.ShapeCapsule:
			capsule := *collider.AsCapsule()
			begin, end, radius := capsule.Begin, capsule.End, capsule.Radius
			if inputVec3(fmt.Sprintf("Begin##%d", uint64(ch)), &begin) {
				submit(in.session, in.capsule.SetBegin(capsule, ch, begin))
			}
			if inputVec3(fmt.Sprintf("End##%d", uint64(ch)), &end) {
				submit(in.session, in.capsule.SetEnd(capsule, ch, end))
			}
			if inputFloat(fmt.Sprintf("Radius##%d", uint64(ch)), &radius) {
				submit(in.session, in.capsule.SetRadius(capsule, ch, radius))
			}
		case scene.ShapeBall:
			radius := collider.AsBall().Radius
			if inputFloat(fmt.Sprintf("Radius##%d", uint64(ch)), &radius) && radius != collider.AsBall().Radius {
				submit(in.session, in.session.Submit(editor.NewSetBallRadiusCommand(ch, radius)))
			}
		case scene.ShapeCuboid:
			extents := collider.AsCuboid().HalfExtents
			if inputVec3(fmt.Sprintf("Half Extents##%d", uint64(ch)), &extents) && extents != collider.AsCuboid().HalfExtents {
				submit(in.session, in.session.Submit(editor.NewSetCuboidHalfExtentsCommand(ch, extents)))
			}
		}

		sensor := collider.IsSensor
		if imgui.Checkbox(fmt.Sprintf("Sensor##%d", uint64(ch)), &sensor) {
			submit(in.session, in.session.Submit(editor.NewSetColliderIsSensorCommand(ch, sensor)))
		}

		imgui.Unindent()
	}

	imgui.TreePop()
}

func (in *Inspector) renderJoints(ctx *editor.Context, body scene.NodeHandle) {
	for jh, joint := range ctx.Scene.Physics.Joints().All() {
		if joint.Body1 != body || joint.Kind() != scene.JointBall {
			continue
		}

		imgui.Text(fmt.Sprintf("Ball Joint %s", jh))
		imgui.Indent()

		ball := *joint.AsBall()
		anchor1, anchor2 := ball.LocalAnchor1, ball.LocalAnchor2
		if inputVec3(fmt.Sprintf("Anchor 1##%d", uint64(jh)), &anchor1) {
			submit(in.session, in.ballJoint.SetAnchor1(ball, jh, anchor1))
		}
		if inputVec3(fmt.Sprintf("Anchor 2##%d", uint64(jh)), &anchor2) {
			submit(in.session, in.ballJoint.SetAnchor2(ball, jh, anchor2))
		}

		imgui.Unindent()
	}
}

func inputFloat(label string, v *float32) bool {
	imgui.Text(fmt.Sprintf("%s:", visibleLabel(label)))
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
	return imgui.InputFloat(fmt.Sprintf("##%s", label), v)
}

func inputVec3(label string, v *mgl32.Vec3) bool {
	imgui.Text(fmt.Sprintf("%s:", visibleLabel(label)))
	changed := false
	for i, axis := range [...]string{"x", "y", "z"} {
		imgui.SameLine()
		imgui.SetNextItemWidth(70)
		if imgui.InputFloat(fmt.Sprintf("##%s.%s", label, axis), &v[i]) {
			changed = true
		}
	}
	return changed
}

// visibleLabel strips the ImGui id suffix from a label.
func visibleLabel(label string) string {
	visible, _, _ := strings.Cut(label, "##")
	return visible
}
