package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/crates-lurey-io/proc-result/pkg/lib"
)

// report is the printed form of a ProcResult.
type report struct {
	Result      lib.ProcResult `json:"result" yaml:"result"`
	Platform    string         `json:"platform" yaml:"platform"`
	State       string         `json:"state" yaml:"state"`
	Name        string         `json:"name,omitempty" yaml:"name,omitempty"`
	Signal      string         `json:"signal,omitempty" yaml:"signal,omitempty"`
	CoreDump    bool           `json:"core_dump,omitempty" yaml:"core_dump,omitempty"`
	Success     bool           `json:"success" yaml:"success"`
	Description string         `json:"description" yaml:"description"`
}

func newReport(result lib.ProcResult) report {
	rep := report{
		Result:      result,
		Platform:    result.Platform().String(),
		Success:     result.IsSuccess(),
		Description: result.Description(),
	}

	if status, ok := result.Unix(); ok {
		state := status.State()
		rep.State = state.Kind().String()
		if code, ok := state.ExitCode(); ok {
			rep.Name, _ = code.Name()
		}
		if sig, ok := state.Signal(); ok {
			rep.Signal = sig.String()
			rep.CoreDump = state.CoreDump()
		}
	}
	if code, ok := result.Windows(); ok {
		rep.State = "Exited"
		rep.Name, _ = code.Name()
	}
	return rep
}

func (r report) raw() string {
	if status, ok := r.Result.Unix(); ok {
		return fmt.Sprintf("%d (%#06x)", status.ToRaw(), uint32(status.ToRaw()))
	}
	code, _ := r.Result.Windows()
	return fmt.Sprintf("%d (%s)", code.ToRaw(), code.Hex())
}

func printResult(w io.Writer, format string, result lib.ProcResult) error {
	rep := newReport(result)
	switch format {
	case outputJSON:
		return printJSON(w, rep)
	case outputYAML:
		return printYAML(w, rep)
	}

	detail := rep.Name
	if rep.Signal != "" {
		detail = rep.Signal
		if rep.CoreDump {
			detail += " (core dumped)"
		}
	}
	printTable(w,
		[]string{"PLATFORM", "RAW", "STATE", "DETAIL", "SUCCESS"},
		[][]string{{rep.Platform, rep.raw(), rep.State, detail, strconv.FormatBool(rep.Success)}},
	)
	return nil
}

func printCatalog(w io.Writer, format string, entries []catalogEntry) error {
	switch format {
	case outputJSON:
		return printJSON(w, entries)
	case outputYAML:
		return printYAML(w, entries)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Catalog, e.Name, strconv.FormatUint(uint64(e.Code), 10)})
	}
	printTable(w, []string{"CATALOG", "NAME", "CODE"}, rows)
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func printTable(w io.Writer, headers []string, rows [][]string) {
	// Determine column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = maxInt(widths[i], len(cell))
		}
	}

	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat("-", width)
	}
	sep := "+-" + strings.Join(parts, "-+-") + "-+\n"

	printRow := func(cells []string) {
		padded := make([]string, len(cells))
		for i, cell := range cells {
			padded[i] = pad(cell, widths[i])
		}
		fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	}

	fmt.Fprint(w, sep)
	printRow(headers)
	fmt.Fprint(w, sep)
	for _, row := range rows {
		printRow(row)
	}
	fmt.Fprint(w, sep)
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
