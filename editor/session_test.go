package editor_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/plus3/scenedit/editor"
	"github.com/plus3/scenedit/scene"
	"github.com/plus3/scenedit/undo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, cfg editor.Config) (*editor.Session, *editor.Context) {
	t.Helper()
	ctx := newTestContext()
	return editor.NewSession(ctx, cfg, nil), ctx
}

func TestSessionFlushAppliesInOrder(t *testing.T) {
	s, ctx := newTestSession(t, editor.DefaultConfig())
	h := ctx.Graph().Add(scene.NewBaseNode("crate"))

	var events []editor.Event
	s.OnChange(func(ev editor.Event) { events = append(events, ev) })

	require.NoError(t, s.Submit(editor.NewSetNameCommand(h, "a")))
	require.NoError(t, s.Submit(editor.NewSetNameCommand(h, "b")))
	require.NoError(t, s.Undo())
	require.NoError(t, s.Submit(editor.NewSetNameCommand(h, "c")))
	require.NoError(t, s.Undo())
	require.NoError(t, s.Redo())

	assert.Equal(t, "crate", ctx.Graph().At(h).Name)
	assert.Equal(t, 6, s.Flush())
	assert.Equal(t, "c", ctx.Graph().At(h).Name)

	assert.Equal(t, 2, s.History().Len())
	assert.Equal(t, 2, s.History().Cursor())

	kinds := make([]editor.EventKind, len(events))
	for i, ev := range events {
		kinds[i] = ev.Kind
	}
	assert.Equal(t, []editor.EventKind{
		editor.EventDo, editor.EventDo, editor.EventUndo, editor.EventDo, editor.EventUndo, editor.EventRedo,
	}, kinds)
	assert.Equal(t, editor.Event{Kind: editor.EventRedo, Name: "Set Node Name", Cursor: 2, Len: 2}, events[5])
}

func TestSessionBoundariesEmitNothing(t *testing.T) {
	s, _ := newTestSession(t, editor.DefaultConfig())

	var events []editor.Event
	s.OnChange(func(ev editor.Event) { events = append(events, ev) })

	require.NoError(t, s.Undo())
	require.NoError(t, s.Redo())
	assert.Equal(t, 2, s.Flush())
	assert.Empty(t, events)
}

func TestSessionRejectsPreviewOfEditorCamera(t *testing.T) {
	var out, errs bytes.Buffer
	ctx := newTestContext()
	s := editor.NewSession(ctx, editor.DefaultConfig(), editor.NewWriterLogger("test", false, &out, &errs))

	require.NoError(t, s.Submit(editor.NewSetCameraPreviewCommand(ctx.EditorCameraHandle(), true)))
	s.Flush()

	assert.Equal(t, 0, s.History().Len())
	assert.True(t, ctx.EditorCamera().IsEnabled())
	assert.Contains(t, errs.String(), "[test] WARN: rejecting \"Set Camera Preview\"")
}

func TestSessionDropsEmptyGroup(t *testing.T) {
	s, _ := newTestSession(t, editor.DefaultConfig())

	require.NoError(t, s.Submit(undo.NewGroup[*editor.Context]("Nothing")))
	require.NoError(t, s.Submit(nil))
	s.Flush()

	assert.Equal(t, 0, s.History().Len())
}

func TestSessionClear(t *testing.T) {
	s, ctx := newTestSession(t, editor.DefaultConfig())
	h := ctx.Graph().Add(scene.NewBaseNode("crate"))

	var last editor.Event
	s.OnChange(func(ev editor.Event) { last = ev })

	require.NoError(t, s.Submit(editor.NewSetNameCommand(h, "a")))
	require.NoError(t, s.Clear())
	s.Flush()

	assert.Equal(t, editor.Event{Kind: editor.EventClear}, last)
	assert.Equal(t, 0, s.History().Len())
	assert.Equal(t, "a", ctx.Graph().At(h).Name)
}

func TestSessionHistoryLimit(t *testing.T) {
	cfg := editor.DefaultConfig()
	cfg.HistoryLimit = 2
	s, ctx := newTestSession(t, cfg)
	h := ctx.Graph().Add(scene.NewBaseNode("crate"))

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, s.Submit(editor.NewSetNameCommand(h, name)))
	}
	s.Flush()

	assert.Equal(t, 2, s.History().Len())
	assert.Equal(t, int64(1), s.History().Stats().Evicted)
}

func TestSessionQueueFull(t *testing.T) {
	cfg := editor.DefaultConfig()
	cfg.QueueSize = 1
	s, _ := newTestSession(t, cfg)

	require.NoError(t, s.Undo())
	assert.ErrorIs(t, s.Undo(), editor.ErrQueueFull)
}

func TestSessionClosed(t *testing.T) {
	s, ctx := newTestSession(t, editor.DefaultConfig())
	h := ctx.Graph().Add(scene.NewBaseNode("crate"))

	require.NoError(t, s.Submit(editor.NewSetNameCommand(h, "a")))
	s.Close()
	s.Close()

	assert.ErrorIs(t, s.Undo(), editor.ErrSessionClosed)
	assert.NoError(t, s.Run(context.Background()))
	assert.Equal(t, "a", ctx.Graph().At(h).Name)
}

func TestSessionRun(t *testing.T) {
	s, ctx := newTestSession(t, editor.DefaultConfig())
	h := ctx.Graph().Add(scene.NewBaseNode("crate"))

	applied := make(chan editor.Event, 8)
	s.OnChange(func(ev editor.Event) { applied <- ev })

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(runCtx) }()

	require.NoError(t, s.Submit(editor.NewSetNameCommand(h, "a")))
	require.NoError(t, s.Submit(editor.NewSetNameCommand(h, "b")))

	for range 2 {
		select {
		case <-applied:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for session")
		}
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Equal(t, "b", ctx.Graph().At(h).Name)
}
