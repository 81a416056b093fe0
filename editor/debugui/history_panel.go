package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/scenedit/editor"
	"github.com/plus3/scenedit/undo"
)

type HistoryRow struct {
	Marker string
	Label  string
	Done   bool
}

// HistoryRows formats history entries for display. The cursor marker sits on the most
// recently done entry.
func HistoryRows(entries []undo.Entry) []HistoryRow {
	rows := make([]HistoryRow, len(entries))
	for i, e := range entries {
		rows[i] = HistoryRow{Label: e.Name, Done: e.Done}
		if e.Done && (i == len(entries)-1 || !entries[i+1].Done) {
			rows[i].Marker = ">"
		}
	}
	return rows
}

type HistoryPanel struct {
	session *editor.Session
}

func NewHistoryPanel(session *editor.Session) *HistoryPanel {
	return &HistoryPanel{session: session}
}

func (hp *HistoryPanel) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(960, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 400), imgui.CondOnce)

	if !imgui.BeginV("History", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	history := hp.session.History()
	ctx := hp.session.Context()

	if imgui.Button("Undo") {
		submit(hp.session, hp.session.Undo())
	}
	imgui.SameLine()
	if imgui.Button("Redo") {
		submit(hp.session, hp.session.Redo())
	}
	imgui.SameLine()
	if imgui.Button("Clear") {
		submit(hp.session, hp.session.Clear())
	}

	imgui.Text(fmt.Sprintf("%d / %d", history.Cursor(), history.Len()))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("HistoryTable", 2, tableFlags, imgui.NewVec2(0, 250), 0) {
		imgui.TableSetupColumn("")
		imgui.TableSetupColumn("Command")
		imgui.TableHeadersRow()

		for _, row := range HistoryRows(history.Entries(ctx)) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(row.Marker)
			imgui.TableNextColumn()
			if row.Done {
				imgui.Text(row.Label)
			} else {
				imgui.TextColored(imgui.NewVec4(0.5, 0.5, 0.5, 1.0), row.Label)
			}
		}

		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Statistics") {
		hp.renderStats(history.Stats())
		imgui.TreePop()
	}

	imgui.End()
}

func (hp *HistoryPanel) renderStats(stats *undo.HistoryStats) {
	imgui.Text(fmt.Sprintf("Executions: %d | Reverts: %d | Redos: %d", stats.Executions, stats.Reverts, stats.Redos))
	imgui.Text(fmt.Sprintf("Finalized: %d | Truncated: %d | Evicted: %d", stats.Finalized, stats.Truncated, stats.Evicted))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("HistoryStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Command")
		imgui.TableSetupColumn("Count")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, cs := range stats.Commands {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(cs.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", cs.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(cs.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(cs.MaxDuration.String())
		}

		imgui.EndTable()
	}
}
