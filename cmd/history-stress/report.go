package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/scenedit/undo"
)

type Report struct {
	// Configuration
	Duration     time.Duration
	Nodes        int
	Cameras      int
	HistoryLimit int
	Seed         uint64

	// Results
	TotalSteps       int64
	TotalTime        time.Duration
	StepTime         Stats
	Executed         int64
	Undone           int64
	Redone           int64
	FinalLen         int
	RoundTripChecked bool
	RoundTripOK      bool
	History          undo.HistoryStats
	MemStatsStart    runtime.MemStats
	MemStatsEnd      runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# History Stress Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Initial Nodes:** {{.Nodes}}
- **Scene Cameras:** {{.Cameras}}
- **History Limit:** {{if .HistoryLimit}}{{.HistoryLimit}}{{else}}unbounded{{end}}
- **Seed:** {{.Seed}}

## Results
- **Total Steps:** {{.TotalSteps}}
- **Total Test Time:** {{.TotalTime}}
- **Step Time:**
  - **Avg:** {{.StepTime.Avg}}
  - **Min:** {{.StepTime.Min}}
  - **Max:** {{.StepTime.Max}}
- **Executed / Undone / Redone:** {{.Executed}} / {{.Undone}} / {{.Redone}}
- **Commands Left In History:** {{.FinalLen}}
- **Round Trip:** {{if not .RoundTripChecked}}skipped (history is bounded){{else if .RoundTripOK}}ok{{else}}FAILED{{end}}

## History
- Finalized: {{.History.Finalized}}
- Truncated: {{.History.Truncated}}
- Evicted:   {{.History.Evicted}}

| Command | Executions | Avg | Min | Max |
|---|---|---|---|---|
{{- range .History.Commands}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
