// Package debugui provides Dear ImGui windows for inspecting and editing a scene through
// an editor.Session. Windows only read the context and send commands; every change goes
// through the session's history.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/scenedit/editor"
)

// Item is a window rendered once per frame.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input this frame.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// UI renders a set of windows and records the input capture state.
type UI struct {
	items []Item
	input InputState
}

// New creates the default editor windows for session.
func New(session *editor.Session, brush *editor.Brush) *UI {
	browser := NewSceneBrowser(session)
	inspector := NewInspector(session, brush)
	history := NewHistoryPanel(session)

	ui := &UI{}
	ui.Add(Item{Render: browser.Render})
	ui.Add(Item{Render: inspector.Render})
	ui.Add(Item{Render: history.Render})
	return ui
}

func (ui *UI) Add(item Item) {
	ui.items = append(ui.items, item)
}

// Render draws every window. It must be called between the backend's BeginFrame and
// EndFrame.
func (ui *UI) Render() {
	io := imgui.CurrentIO()
	ui.input.WantCaptureMouse = io.WantCaptureMouse()
	ui.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range ui.items {
		item.Render()
	}
}

// InputState returns the capture state recorded by the last Render.
func (ui *UI) InputState() InputState {
	return ui.input
}

func submit(session *editor.Session, err error) {
	if err != nil {
		session.Logger().Warnf("debugui: %v", err)
	}
}
