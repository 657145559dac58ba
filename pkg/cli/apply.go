package cli

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/khalid-nowaf/tried/pkg/tried"
)

// Operations understood in the op field of a record.
const (
	OpInsert = "insert"
	OpFind   = "find"
	OpErase  = "erase"
	OpSet    = "set"
	OpSize   = "size"
)

// Fields tells where each part of an operation lives in a record, and how keys
// are turned into sequences.
type Fields struct {
	OpField     string `help:"Field holding the operation (insert, find, erase, set, size)" default:"op"`
	KeyField    string `help:"Field holding the key" default:"key"`
	ValueField  string `help:"Field holding the value" default:"value"`
	LengthField string `help:"Field holding an optional key length, only that many leading characters are used" default:"length"`
	Normalize   bool   `help:"Apply Unicode NFC normalization to keys"`
	Latin1      bool   `name:"latin1" help:"Input files are ISO-8859-1 encoded"`
	NodeLimit   int    `help:"Maximum number of trie nodes, 0 means unbounded" default:"0"`
}

// Result is the outcome of one operation.
type Result struct {
	Source string // file and record number the operation came from
	Op     string
	Key    string
	Value  string // inserted or set value, or the value found
	OK     bool   // found, inserted, erased or updated
	Size   int    // container size after the operation
	Error  string
}

// Failed reports results that did not succeed.
func (r Result) Failed() bool {
	return !r.OK
}

func (r Result) String() string {
	str := fmt.Sprintf("%s %s %q", r.Source, r.Op, r.Key)
	if r.Value != "" {
		str += fmt.Sprintf(" => %q", r.Value)
	}
	str += fmt.Sprintf(" ok=%t size=%d", r.OK, r.Size)
	if r.Error != "" {
		str += " error: " + r.Error
	}
	return str
}

// sequencer turns the key of a record into the sequence stored in the trie.
type sequencer struct {
	fields *Fields
}

func (s sequencer) Sequence(record Record) ([]rune, error) {
	key := record[s.fields.KeyField]
	if s.fields.Normalize {
		key = norm.NFC.String(key)
	}
	seq := []rune(key)

	lengthStr := strings.TrimSpace(record[s.fields.LengthField])
	if lengthStr == "" {
		return seq, nil
	}
	length, err := strconv.Atoi(lengthStr)
	if err != nil {
		return nil, fmt.Errorf("length %q is not a number: %w", lengthStr, tried.ErrInvalidArgument)
	}
	return tried.Prefix(seq, length)
}

// applyRecord runs the operation described by record against container.
func applyRecord(container *tried.Container[rune, string], fields *Fields, source string, record Record) (result Result) {
	result = Result{
		Source: source,
		Op:     strings.ToLower(strings.TrimSpace(record[fields.OpField])),
		Key:    record[fields.KeyField],
	}
	defer func() {
		result.Size = container.Size()
	}()

	seq, err := sequencer{fields: fields}.Sequence(record)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	switch result.Op {
	case OpInsert:
		result.Value = record[fields.ValueField]
		if err := container.TryInsert(seq, result.Value); err != nil {
			result.Error = err.Error()
		} else {
			result.OK = true
		}
	case OpFind:
		result.Value, result.OK = container.Find(seq, "")
	case OpErase:
		report := container.EraseReport(seq)
		result.OK = report.Erased()
	case OpSet:
		result.Value = record[fields.ValueField]
		result.OK = container.SetDatum(seq, result.Value)
	case OpSize:
		result.OK = true
	default:
		result.Error = fmt.Errorf("unknown operation %q: %w", result.Op, tried.ErrInvalidArgument).Error()
	}
	return result
}

// loadRecords hands the records of every file, in order, to onEachRecord.
func loadRecords(fields *Fields, files []string, onEachRecord func(source string, record Record) Result) ([]Result, error) {
	results := []Result{}
	for _, file := range files {
		n := 0
		err := parseFile(file, fields.Latin1, func(record Record) error {
			n++
			results = append(results, onEachRecord(fmt.Sprintf("%s:%d", file, n), record))
			return nil
		})
		if err != nil {
			return results, fmt.Errorf("reading %s: %w", file, err)
		}
	}
	return results, nil
}
