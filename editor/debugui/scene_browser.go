package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/scenedit/editor"
	"github.com/plus3/scenedit/scene"
)

type NodeInfo struct {
	Handle    scene.NodeHandle
	Name      string
	Kind      scene.NodeKind
	Parent    scene.NodeHandle
	Colliders int
}

// CollectNodes lists the nodes of the context's graph in storage order, leaving out the
// editor camera.
func CollectNodes(ctx *editor.Context) []NodeInfo {
	nodes := make([]NodeInfo, 0, ctx.Graph().Len())
	for h, node := range ctx.Graph().Pairs() {
		if h == ctx.EditorCameraHandle() {
			continue
		}
		nodes = append(nodes, NodeInfo{
			Handle:    h,
			Name:      node.Name,
			Kind:      node.Kind(),
			Parent:    node.Parent,
			Colliders: len(ctx.Scene.Physics.CollidersOf(h)),
		})
	}
	return nodes
}

// FilterNodes keeps the nodes whose name or kind contains text, ignoring case.
func FilterNodes(nodes []NodeInfo, text string) []NodeInfo {
	if text == "" {
		return nodes
	}

	filterLower := strings.ToLower(text)
	filtered := make([]NodeInfo, 0, len(nodes))
	for _, n := range nodes {
		if strings.Contains(strings.ToLower(n.Name), filterLower) ||
			strings.Contains(strings.ToLower(n.Kind.String()), filterLower) {
			filtered = append(filtered, n)
		}
	}
	return filtered
}

// SceneBrowser lists the nodes of the scene and sets the editor selection.
type SceneBrowser struct {
	session    *editor.Session
	filterText string
	nodes      []NodeInfo
}

// NewSceneBrowser creates the browser. Its node list is rebuilt after every history change.
func NewSceneBrowser(session *editor.Session) *SceneBrowser {
	sb := &SceneBrowser{session: session}
	session.OnChange(func(editor.Event) { sb.nodes = nil })
	return sb
}

func (sb *SceneBrowser) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 400), imgui.CondOnce)

	if !imgui.BeginV("Scene", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ctx := sb.session.Context()
	if sb.nodes == nil {
		sb.nodes = CollectNodes(ctx)
	}

	imgui.InputTextWithHint("##search", "Search...", &sb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		sb.filterText = ""
	}

	selection := ctx.EditorScene.Selection
	var selected scene.NodeHandle
	if len(selection) > 0 {
		selected = selection[0]
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("NodeTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Parent")
		imgui.TableSetupColumn("Colliders")
		imgui.TableHeadersRow()

		for _, n := range FilterNodes(sb.nodes, sb.filterText) {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			label := fmt.Sprintf("%s##%d", n.Name, uint64(n.Handle))
			if imgui.SelectableBoolV(label, n.Handle == selected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				ctx.EditorScene.Selection = []scene.NodeHandle{n.Handle}
			}

			imgui.TableNextColumn()
			imgui.Text(n.Kind.String())

			imgui.TableNextColumn()
			imgui.Text(n.Parent.String())

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", n.Colliders))
		}

		imgui.EndTable()
	}

	imgui.End()
}
