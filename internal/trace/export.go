// Package trace exports recorded step histories and persists completed
// runs.
package trace

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/step"
)

// WriteCSV writes one row per step in history order with columns
// index, op, i, j, payload. i and j are blank when the step has fewer
// indices; payload is blank when absent.
func WriteCSV(w io.Writer, steps []step.Step) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "op", "i", "j", "payload"}); err != nil {
		return err
	}
	for idx, s := range steps {
		i, j := "", ""
		if len(s.Indices) > 0 {
			i = strconv.Itoa(s.Indices[0])
		}
		if len(s.Indices) > 1 {
			j = strconv.Itoa(s.Indices[1])
		}
		payload := ""
		if s.Payload != nil {
			if s.Payload.Pair {
				payload = fmt.Sprintf("(%d, %d)", s.Payload.A, s.Payload.B)
			} else {
				payload = strconv.Itoa(s.Payload.Value)
			}
		}
		if err := cw.Write([]string{strconv.Itoa(idx), string(s.Op), i, j, payload}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportData is the JSON shape of one completed run.
type ExportData struct {
	Algorithm   string       `json:"algorithm"`
	Info        algo.Info    `json:"info"`
	Input       []int        `json:"input"`
	Sorted      []int        `json:"sorted"`
	Steps       int          `json:"steps"`
	Comparisons int          `json:"comparisons"`
	Swaps       int          `json:"swaps"`
	Trace       []exportStep `json:"trace,omitempty"`
}

type exportStep struct {
	Op      string `json:"op"`
	Indices []int  `json:"indices"`
	Payload any    `json:"payload,omitempty"`
}

// ExportJSON writes the full run, including the trace, as indented JSON.
func ExportJSON(w io.Writer, info algo.Info, input, sorted []int, c step.Counters, steps []step.Step) error {
	data := ExportData{
		Algorithm:   info.Name,
		Info:        info,
		Input:       input,
		Sorted:      sorted,
		Steps:       len(steps),
		Comparisons: c.Comparisons,
		Swaps:       c.Swaps,
		Trace:       make([]exportStep, len(steps)),
	}
	for i, s := range steps {
		es := exportStep{Op: string(s.Op), Indices: s.Indices}
		if s.Payload != nil {
			if s.Payload.Pair {
				es.Payload = []int{s.Payload.A, s.Payload.B}
			} else {
				es.Payload = s.Payload.Value
			}
		}
		data.Trace[i] = es
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
