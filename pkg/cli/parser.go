package cli

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"gopkg.in/yaml.v3"
)

// Record is one row of an input file, keyed by field name.
type Record map[string]string

// parseFile streams the records of a CSV, TSV, JSON or YAML file to onEachRecord,
// picking the format from the file extension.
func parseFile(filePath string, latin1 bool, onEachRecord func(record Record) error) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	var reader io.Reader = file
	if latin1 {
		reader = charmap.ISO8859_1.NewDecoder().Reader(file)
	}

	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".csv":
		return parseCsv(reader, ',', onEachRecord)
	case ".tsv":
		return parseCsv(reader, '\t', onEachRecord)
	case ".json":
		return parseJson(reader, onEachRecord)
	case ".yaml", ".yml":
		return parseYaml(reader, onEachRecord)
	default:
		return fmt.Errorf("unsupported file extension %q for %s", ext, filePath)
	}
}

func parseJson(reader io.Reader, onEachRecord func(record Record) error) error {
	// Create a JSON Decoder
	decoder := json.NewDecoder(reader)
	// keep numbers as their literal text, float64 would turn 12345678 into 1.2345678e+07
	decoder.UseNumber()

	// Read opening bracket of the array
	if _, err := decoder.Token(); err != nil {
		return err
	}

	// Decode each element of the array
	for decoder.More() {
		data := map[string]any{}
		if err := decoder.Decode(&data); err != nil {
			return err
		}
		if err := onEachRecord(toRecord(data)); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	if _, err := decoder.Token(); err != nil {
		return err
	}

	return nil
}

func parseCsv(reader io.Reader, separator rune, onEachRecord func(record Record) error) error {
	// Create a CSV Reader
	csvReader := csv.NewReader(reader)
	csvReader.Comma = separator

	// Read the header to build the key mapping (assuming first line is the header)
	headers, err := csvReader.Read()
	if err != nil {
		return err
	}

	// Read each record from the CSV
	for {
		recordData, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		record := make(Record)
		for i, value := range recordData {
			record[headers[i]] = value
		}

		if err := onEachRecord(record); err != nil {
			return err
		}
	}
}

// parseYaml reads a top level sequence of mappings.
func parseYaml(reader io.Reader, onEachRecord func(record Record) error) error {
	var documents []map[string]any
	if err := yaml.NewDecoder(reader).Decode(&documents); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	for _, data := range documents {
		if err := onEachRecord(toRecord(data)); err != nil {
			return err
		}
	}
	return nil
}

// JSON and YAML values may be numbers or booleans, records only hold strings.
func toRecord(data map[string]any) Record {
	record := make(Record, len(data))
	for key, value := range data {
		if value == nil {
			continue
		}
		record[key] = fmt.Sprint(value)
	}
	return record
}
