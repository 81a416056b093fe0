package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/scenedit/editor"
	"github.com/plus3/scenedit/editor/debugui"
	debugui_ebiten "github.com/plus3/scenedit/editor/debugui/ebiten"
	"github.com/plus3/scenedit/scene"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

// Game adds keyboard shortcuts on top of the ImGui host.
type Game struct {
	*debugui_ebiten.Game
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	input := g.UI.InputState()
	if !input.WantCaptureKeyboard && ebiten.IsKeyPressed(ebiten.KeyControl) {
		var err error
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyZ) && ebiten.IsKeyPressed(ebiten.KeyShift):
			err = g.Session.Redo()
		case inpututil.IsKeyJustPressed(ebiten.KeyZ):
			err = g.Session.Undo()
		case inpututil.IsKeyJustPressed(ebiten.KeyY):
			err = g.Session.Redo()
		}
		if err != nil {
			g.Session.Logger().Warnf("shortcut: %v", err)
		}
	}

	return g.Game.Update()
}

func main() {
	width := flag.Int("width", ScreenWidth, "Window width")
	height := flag.Int("height", ScreenHeight, "Window height")
	debug := flag.Bool("debug", false, "Enable debug logging (overrides SCENEDIT_DEBUG)")
	flag.Parse()

	cfg, err := editor.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Debug = true
	}

	logger := editor.NewDefaultLogger(cfg.LogPrefix, cfg.Debug)

	ctx := editor.NewContext(demoScene())
	session := editor.NewSession(ctx, cfg, logger)
	session.OnChange(func(ev editor.Event) {
		logger.Infof("%s %q (%d/%d)", ev.Kind, ev.Name, ev.Cursor, ev.Len)
	})

	backend := debugui_ebiten.NewImguiBackend("Scene Editor", *width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := &Game{
		Game: &debugui_ebiten.Game{
			Backend: backend,
			Session: session,
			UI:      debugui.New(session, editor.NewBrush()),
		},
	}

	logger.Infof("history limit %d, queue size %d", cfg.HistoryLimit, cfg.QueueSize)
	if err := ebiten.RunGame(game); err != nil {
		logger.Errorf("run: %v", err)
		os.Exit(1)
	}
}

// demoScene builds a small scene touching every kind of node the inspector edits.
func demoScene() *scene.Scene {
	s := scene.New()

	ground := scene.NewTerrain(256, 256, 128)
	ground.AddLayer(scene.Layer{
		Texture: s.Resources.LoadTexture("textures/grass.png"),
		Mask:    s.Resources.CreateTexture(ground.MaskSize, ground.MaskSize),
	})
	terrain := s.Graph.Add(scene.NewTerrainNode("Ground", ground))
	s.Physics.AddCollider(terrain, scene.NewCuboidCollider(mgl32.Vec3{128, 0.5, 128}))

	for i, name := range []string{"Main Camera", "Cutscene Camera"} {
		cam := scene.NewCamera()
		cam.SetEnabled(false)
		node := scene.NewCameraNode(name, cam)
		node.Local.Position = mgl32.Vec3{float32(i) * 10, 5, -10}
		s.Graph.Add(node)
	}

	player := scene.NewBaseNode("Player")
	player.Local.Position = mgl32.Vec3{0, 1, 0}
	body := s.Graph.Add(player)
	s.Physics.AddCollider(body, scene.NewCapsuleCollider(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1.8, 0}, 0.4))

	lantern := scene.NewBaseNode("Lantern")
	lantern.Parent = body
	lamp := s.Graph.Add(lantern)
	s.Physics.AddCollider(lamp, scene.NewBallCollider(0.2))
	s.Physics.AddJoint(scene.NewBallJoint(body, lamp, scene.BallJoint{
		LocalAnchor1: mgl32.Vec3{0.5, 1.5, 0},
	}))

	return s
}
