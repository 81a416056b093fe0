package editor_test

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/scenedit/editor"
	"github.com/plus3/scenedit/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []editor.Command
	err  error
}

func (r *recordingSender) Submit(cmd editor.Command) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, cmd)
	return nil
}

func TestSectionsSendOnlyChanges(t *testing.T) {
	ctx := newTestContext()
	sender := &recordingSender{}

	body := ctx.Graph().Add(scene.NewBaseNode("body"))
	capsule := ctx.Scene.Physics.AddCollider(body, scene.NewCapsuleCollider(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, 0.5))
	model := *ctx.Scene.Physics.Collider(capsule).AsCapsule()

	section := editor.NewCapsuleSection(sender)
	require.NoError(t, section.SetRadius(model, capsule, 0.5))
	require.NoError(t, section.SetBegin(model, capsule, mgl32.Vec3{}))
	assert.Empty(t, sender.sent)

	require.NoError(t, section.SetRadius(model, capsule, 0.75))
	require.NoError(t, section.SetEnd(model, capsule, mgl32.Vec3{0, 2, 0}))
	require.Len(t, sender.sent, 2)
	assert.Equal(t, "Set Capsule Radius", sender.sent[0].Name(ctx))
	assert.Equal(t, "Set Capsule End", sender.sent[1].Name(ctx))
}

func TestBallJointSection(t *testing.T) {
	ctx := newTestContext()
	sender := &recordingSender{}
	a := ctx.Graph().Add(scene.NewBaseNode("a"))
	b := ctx.Graph().Add(scene.NewBaseNode("b"))
	joint := ctx.Scene.Physics.AddJoint(scene.NewBallJoint(a, b, scene.BallJoint{}))
	model := *ctx.Scene.Physics.Joint(joint).AsBall()

	section := editor.NewBallJointSection(sender)
	require.NoError(t, section.SetAnchor1(model, joint, mgl32.Vec3{}))
	require.NoError(t, section.SetAnchor2(model, joint, mgl32.Vec3{0, 0, 1}))

	require.Len(t, sender.sent, 1)
	sender.sent[0].Execute(ctx)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, ctx.Scene.Physics.Joint(joint).AsBall().LocalAnchor2)
}

func TestCameraSectionPreview(t *testing.T) {
	ctx := newTestContext()
	sender := &recordingSender{}
	cam := addCamera(ctx, "A", false)
	model := ctx.Graph().At(cam).AsCamera()

	section := editor.NewCameraSection(sender)
	require.NoError(t, section.SetPreview(model, cam, false))
	require.NoError(t, section.SetFov(model, cam, model.Fov()))
	assert.Empty(t, sender.sent)

	require.NoError(t, section.SetPreview(model, cam, true))
	require.Len(t, sender.sent, 1)
	preview, ok := sender.sent[0].(*editor.SetCameraPreviewCommand)
	require.True(t, ok)
	assert.Equal(t, cam, preview.Target())
}

func TestTerrainSectionFollowsSelection(t *testing.T) {
	ctx := newTestContext()
	sender := &recordingSender{}
	brush := editor.NewBrush()
	brush.With(func(b *editor.BrushState) { b.Mode = editor.BrushDrawOnMask })

	h := addTerrain(ctx)
	section := editor.NewTerrainSection(sender, brush)

	_, ok := section.CurrentLayer()
	assert.False(t, ok)
	require.NoError(t, section.RemoveLayer(h))
	assert.Empty(t, sender.sent)

	section.SelectLayer(2)
	assert.Equal(t, 2, brush.Snapshot().Layer)

	require.NoError(t, section.RemoveLayer(h))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Delete Terrain Layer 2", sender.sent[0].Name(ctx))

	terrain(ctx, h).AddLayer(scene.Layer{})
	section.SyncToModel(terrain(ctx, h))
	index, ok := section.CurrentLayer()
	assert.True(t, ok)
	assert.Equal(t, 0, index)
	assert.Equal(t, 0, brush.Snapshot().Layer)
}

func TestTerrainSectionReleasesUnsentTexture(t *testing.T) {
	ctx := newTestContext()
	sender := &recordingSender{err: errors.New("boom")}
	h := addTerrain(ctx)
	section := editor.NewTerrainSection(sender, editor.NewBrush())

	grass := ctx.Scene.Resources.LoadTexture("grass.png")
	assert.Error(t, section.AddLayer(ctx, h, grass))
	assert.Equal(t, 0, ctx.Scene.Resources.RefCount(grass))

	rock := ctx.Scene.Resources.LoadTexture("rock.png")
	require.NoError(t, section.SetLayerTexture(ctx, h, rock))
	assert.Equal(t, 0, ctx.Scene.Resources.RefCount(rock))
}

func TestBrushKeepsLayerOutsideMaskMode(t *testing.T) {
	sender := &recordingSender{}
	brush := editor.NewBrush()
	section := editor.NewTerrainSection(sender, brush)

	section.SelectLayer(3)
	state := brush.Snapshot()
	assert.Equal(t, editor.BrushRaise, state.Mode)
	assert.Equal(t, 0, state.Layer)
	assert.Equal(t, "Raise", state.Mode.String())
}
