package cli

import (
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/khalid-nowaf/tried/pkg/tried"
)

// Context is bound to every command when it runs.
type Context struct {
	Out    io.Writer
	Logger *slog.Logger
}

// NewContext writes results to out and logs to stderr.
func NewContext(out io.Writer, verbose bool) *Context {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return &Context{
		Out:    out,
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}
}

var CLI struct {
	Verbose bool      `help:"Log debug events" short:"v"`
	Apply   ApplyCmd  `cmd:"" help:"Apply insert, find, erase, set and size operations read from files"`
	Lookup  LookupCmd `cmd:"" help:"Load a dictionary file and look keys up in it"`
}

func newContainer(ctx *Context, fields *Fields) *tried.Container[rune, string] {
	return tried.New[rune, string](
		tried.WithNodeLimit(fields.NodeLimit),
		tried.WithLogger(ctx.Logger),
	)
}

type ApplyCmd struct {
	Files  []string `arg:"" type:"existingfile" help:"Input files containing operations in CSV, TSV, JSON or YAML format"`
	Fields `embed:""`
	Output string `help:"Output format" enum:"table,csv,tsv,json" default:"table"`
	Report bool   `help:"Report only failed operations"`
}

// Run executes the apply command.
func (cmd *ApplyCmd) Run(ctx *Context) error {
	container := newContainer(ctx, &cmd.Fields)
	stats := &Stats{}

	results, err := loadRecords(&cmd.Fields, cmd.Files, func(source string, record Record) Result {
		stats.Input++
		result := applyRecord(container, &cmd.Fields, source, record)
		if result.Failed() {
			stats.Failed++
		}
		ctx.Logger.Debug(result.String())
		return result
	})
	if err != nil {
		return err
	}

	if cmd.Report {
		results = failedOnly(results)
	}
	ctx.Logger.Info("Operations applied", "input", stats.Input, "failed", stats.Failed, "size", container.Size())
	return NewWriter(cmd.Output, stats).Write(ctx.Out, results)
}

type LookupCmd struct {
	Dict   string   `required:"" type:"existingfile" help:"Dictionary file of key and value records in CSV, TSV, JSON or YAML format"`
	Keys   []string `arg:"" help:"Keys to look up"`
	Fields `embed:""`
	Output string `help:"Output format" enum:"table,csv,tsv,json" default:"table"`
}

// Run executes the lookup command.
func (cmd *LookupCmd) Run(ctx *Context) error {
	container := newContainer(ctx, &cmd.Fields)
	stats := &Stats{}

	loaded, err := loadRecords(&cmd.Fields, []string{cmd.Dict}, func(source string, record Record) Result {
		record[cmd.OpField] = OpInsert
		return applyRecord(container, &cmd.Fields, source, record)
	})
	if err != nil {
		return err
	}
	for _, result := range failedOnly(loaded) {
		ctx.Logger.Warn("Dictionary entry skipped", "source", result.Source, "key", result.Key, "error", result.Error)
	}

	results := make([]Result, 0, len(cmd.Keys))
	for i, key := range cmd.Keys {
		stats.Input++
		result := applyRecord(container, &cmd.Fields, "arg:"+strconv.Itoa(i+1), Record{
			cmd.OpField:  OpFind,
			cmd.KeyField: key,
		})
		if result.Failed() {
			stats.Failed++
		}
		results = append(results, result)
	}
	return NewWriter(cmd.Output, stats).Write(ctx.Out, results)
}

func failedOnly(results []Result) []Result {
	failed := []Result{}
	for _, result := range results {
		if result.Failed() {
			failed = append(failed, result)
		}
	}
	return failed
}
