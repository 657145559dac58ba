package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Output formats accepted by --output.
const (
	FormatCSV   = "csv"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatTable = "table"
)

// Stats counts the records read and the results written.
type Stats struct {
	Input  int
	Output int
	Failed int
}

type Writer interface {
	Write(out io.Writer, results []Result) error
}

// NewWriter returns the writer for format, defaulting to a table.
func NewWriter(format string, stats *Stats) Writer {
	switch format {
	case FormatCSV:
		return &CsvWriter{Stats: stats}
	case FormatTSV:
		return &CsvWriter{isTSV: true, Stats: stats}
	case FormatJSON:
		return &JsonWriter{Stats: stats}
	default:
		return &TableWriter{Stats: stats}
	}
}

var headers = []string{"source", "op", "key", "value", "ok", "size", "error"}

func (r Result) row() []string {
	return []string{r.Source, r.Op, r.Key, r.Value, strconv.FormatBool(r.OK), strconv.Itoa(r.Size), r.Error}
}

type JsonWriter struct {
	Stats *Stats
}

type jsonResult struct {
	Source string `json:"source"`
	Op     string `json:"op"`
	Key    string `json:"key"`
	Value  string `json:"value,omitempty"`
	OK     bool   `json:"ok"`
	Size   int    `json:"size"`
	Error  string `json:"error,omitempty"`
}

func (w JsonWriter) Write(out io.Writer, results []Result) error {
	encoder := json.NewEncoder(out)

	if _, err := out.Write([]byte("[")); err != nil {
		return err
	}
	for i, result := range results {
		if i > 0 {
			if _, err := out.Write([]byte(",")); err != nil {
				return err
			}
		}
		if err := encoder.Encode(jsonResult(result)); err != nil {
			return err
		}
		w.Stats.Output++
	}
	if _, err := out.Write([]byte("]\n")); err != nil {
		return err
	}
	return nil
}

type CsvWriter struct {
	isTSV bool
	Stats *Stats
}

// Write writes the results as CSV, or TSV, with a header line.
func (w CsvWriter) Write(out io.Writer, results []Result) error {
	// Create a CSV writer
	writer := csv.NewWriter(out)
	if w.isTSV {
		writer.Comma = '\t'
	}

	if err := writer.Write(headers); err != nil {
		return err
	}
	for _, result := range results {
		if err := writer.Write(result.row()); err != nil {
			return err
		}
		w.Stats.Output++
	}

	writer.Flush()
	return writer.Error()
}

type TableWriter struct {
	Stats *Stats
}

func (w TableWriter) Write(out io.Writer, results []Result) error {
	outputTable := table.NewWriter()
	outputTable.SetOutputMirror(out)

	header := table.Row{}
	for _, h := range headers {
		header = append(header, h)
	}
	outputTable.AppendHeader(header)

	for _, result := range results {
		row := table.Row{}
		for _, cell := range result.row() {
			row = append(row, cell)
		}
		outputTable.AppendRow(row)
		w.Stats.Output++
	}
	outputTable.AppendFooter(table.Row{"", "", "", "", "", "failed", fmt.Sprint(w.Stats.Failed)})
	outputTable.Render()
	return nil
}
