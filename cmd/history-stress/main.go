package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"reflect"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/scenedit/editor"
	"github.com/plus3/scenedit/scene"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	nodeCount := flag.Int("nodes", 1000, "The initial number of nodes to create.")
	cameraCount := flag.Int("cameras", 8, "The number of scene cameras.")
	historyLimit := flag.Int("history", 0, "History limit, 0 keeps every command so the final round trip can be verified.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed.")
	debug := flag.Bool("debug", false, "Log every applied message.")
	flag.Parse()

	log.Println("Starting history stress test...")

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))

	// 1. Build the scene
	log.Printf("Populating scene with %d nodes and %d cameras...\n", *nodeCount, *cameraCount)
	ctx := editor.NewContext(populate(rng, *nodeCount, *cameraCount))
	initial := snapshot(ctx)

	cfg := editor.DefaultConfig()
	cfg.HistoryLimit = *historyLimit
	cfg.QueueSize = 16
	cfg.Debug = *debug
	session := editor.NewSession(ctx, cfg, editor.NewDefaultLogger("history-stress", *debug))

	report := &Report{
		Duration:     *duration,
		Nodes:        *nodeCount,
		Cameras:      *cameraCount,
		HistoryLimit: *historyLimit,
		Seed:         *seed,
		StepTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}
	session.OnChange(func(ev editor.Event) {
		switch ev.Kind {
		case editor.EventDo:
			report.Executed++
		case editor.EventUndo:
			report.Undone++
		case editor.EventRedo:
			report.Redone++
		}
	})

	runtime.ReadMemStats(&report.MemStatsStart)

	// 2. Run random edits, undos and redos
	log.Printf("Running for %s...\n", *duration)
	runCtx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
Loop:
	for {
		select {
		case <-runCtx.Done():
			break Loop
		default:
			stepStart := time.Now()
			if err := step(rng, session); err != nil {
				log.Fatalf("step: %v", err)
			}
			session.Flush()
			report.StepTime.Samples = append(report.StepTime.Samples, time.Since(stepStart))
			report.TotalSteps++
		}
	}
	report.TotalTime = time.Since(startTime)

	// 3. Undo everything and compare with the initial scene
	history := session.History()
	report.FinalLen = history.Len()
	for history.CanUndo() {
		if err := session.Undo(); err != nil {
			log.Fatalf("undo: %v", err)
		}
		session.Flush()
	}
	if *historyLimit == 0 {
		report.RoundTripChecked = true
		report.RoundTripOK = reflect.DeepEqual(initial, snapshot(ctx))
	}

	report.StepTime.Finalize()
	report.History = *history.Stats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Run finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- History Stress Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if report.RoundTripChecked && !report.RoundTripOK {
		log.Fatal("scene differs from its initial state after undoing every command")
	}
}

func populate(rng *rand.Rand, nodes, cameras int) *scene.Scene {
	s := scene.New()

	for i := range cameras {
		cam := scene.NewCamera()
		cam.SetEnabled(false)
		s.Graph.Add(scene.NewCameraNode(fmt.Sprintf("Camera %d", i), cam))
	}

	for i := range nodes {
		node := scene.NewBaseNode(fmt.Sprintf("Node %d", i))
		node.Local.Position = randomVec3(rng, 100)
		h := s.Graph.Add(node)

		switch rng.IntN(3) {
		case 0:
			s.Physics.AddCollider(h, scene.NewBallCollider(rng.Float32()+0.1))
		case 1:
			s.Physics.AddCollider(h, scene.NewCapsuleCollider(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, 0.5))
		}
	}

	return s
}

// step sends one random message built against the current scene.
func step(rng *rand.Rand, session *editor.Session) error {
	ctx := session.Context()

	switch n := rng.IntN(100); {
	case n < 15:
		return session.Undo()
	case n < 25:
		return session.Redo()
	case n < 45:
		h, ok := randomNode(rng, ctx, scene.NodeBase)
		if !ok {
			return nil
		}
		return session.Submit(editor.NewSetPositionCommand(h, randomVec3(rng, 100)))
	case n < 55:
		h, ok := randomNode(rng, ctx, scene.NodeCamera)
		if !ok {
			return nil
		}
		return session.Submit(editor.NewSetFovCommand(h, mgl32.DegToRad(30+rng.Float32()*60)))
	case n < 70:
		h, ok := randomNode(rng, ctx, scene.NodeCamera)
		if !ok {
			return nil
		}
		return session.Submit(editor.NewSetCameraPreviewCommand(h, rng.IntN(2) == 0))
	case n < 80:
		colliders := ctx.Scene.Physics.Colliders()
		for h, c := range colliders.All() {
			if c.Shape() == scene.ShapeCapsule && rng.IntN(4) == 0 {
				return session.Submit(editor.NewSetCapsuleRadiusCommand(h, rng.Float32()+0.1))
			}
		}
		return nil
	case n < 90:
		node := scene.NewBaseNode("Spawned")
		node.Local.Position = randomVec3(rng, 100)
		return session.Submit(editor.NewAddNodeCommand(node))
	default:
		h, ok := randomNode(rng, ctx, scene.NodeBase)
		if !ok {
			return nil
		}
		return session.Submit(editor.NewDeleteNodeCommand(h))
	}
}

// randomNode picks a live node of the given kind, never the editor camera.
func randomNode(rng *rand.Rand, ctx *editor.Context, kind scene.NodeKind) (scene.NodeHandle, bool) {
	var picked scene.NodeHandle
	seen := 0
	for h, node := range ctx.Graph().Pairs() {
		if node.Kind() != kind || h == ctx.EditorCameraHandle() {
			continue
		}
		seen++
		if rng.IntN(seen) == 0 {
			picked = h
		}
	}
	return picked, seen > 0
}

func randomVec3(rng *rand.Rand, extent float32) mgl32.Vec3 {
	return mgl32.Vec3{
		(rng.Float32()*2 - 1) * extent,
		(rng.Float32()*2 - 1) * extent,
		(rng.Float32()*2 - 1) * extent,
	}
}

type sceneSnapshot struct {
	Nodes     map[scene.NodeHandle]scene.Node
	Colliders map[scene.ColliderHandle]scene.Collider
	Owners    map[scene.ColliderHandle]scene.NodeHandle
}

func snapshot(ctx *editor.Context) sceneSnapshot {
	snap := sceneSnapshot{
		Nodes:     make(map[scene.NodeHandle]scene.Node),
		Colliders: make(map[scene.ColliderHandle]scene.Collider),
		Owners:    make(map[scene.ColliderHandle]scene.NodeHandle),
	}
	for h, node := range ctx.Graph().Pairs() {
		snap.Nodes[h] = *node
	}
	for h, c := range ctx.Scene.Physics.Colliders().All() {
		snap.Colliders[h] = *c
		snap.Owners[h], _ = ctx.Scene.Physics.AttachedTo(h)
	}
	return snap
}
