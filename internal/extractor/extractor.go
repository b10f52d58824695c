package extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/nguyentantai21042004/caption-summary/internal/pathcheck"
	"github.com/tidwall/gjson"
)

var (
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")
	ErrInvalidJSON     = errors.New("file is not valid JSON")
	ErrNotArray        = errors.New("JSON root is not an array")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Extract validates and parses path, joins the text field of every record and
// writes the result next to the input file.
func (e *implExtractor) Extract(ctx context.Context, path string) *Result {
	if ok, msg := pathcheck.Validate(path, "JSON"); !ok {
		e.logger.Error(ctx, "Invalid input: %s", msg)
		return nil
	}

	res, err := e.extract(ctx, path)
	if err != nil {
		e.logger.Error(ctx, "Failed to extract %s: %v", path, err)
		return nil
	}

	e.logger.Info(ctx, "Transcript written: %s (%d records, %d skipped)", res.OutputPath, res.Records, res.Skipped)
	return res
}

func (e *implExtractor) extract(ctx context.Context, path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	if !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, ErrNotArray
	}

	var texts []string
	skipped := 0
	index := 0
	root.ForEach(func(_, record gjson.Result) bool {
		if value, ok := lookupField(record, e.field); ok {
			texts = append(texts, stringify(value))
		} else {
			e.logger.Warn(ctx, "Skipping record %d without %q field: %s", index, e.field, record.Raw)
			skipped++
		}
		index++
		return true
	})

	combined := strings.Join(texts, e.separator)
	outputPath := siblingPath(path, e.outputExt)
	if err := os.WriteFile(outputPath, []byte(combined), 0644); err != nil {
		return nil, fmt.Errorf("write transcript: %w", err)
	}

	return &Result{
		Prompt:     e.instruction + combined,
		Combined:   combined,
		OutputPath: outputPath,
		Records:    len(texts),
		Skipped:    skipped,
	}, nil
}

// lookupField returns the value stored under name when record is an object.
// Duplicate keys resolve to the last occurrence.
func lookupField(record gjson.Result, name string) (gjson.Result, bool) {
	if !record.IsObject() {
		return gjson.Result{}, false
	}

	var found gjson.Result
	ok := false
	record.ForEach(func(key, value gjson.Result) bool {
		if key.String() == name {
			found, ok = value, true
		}
		return true
	})
	return found, ok
}

// stringify renders a JSON value as text: strings unquoted, numbers and
// booleans as written, null as empty, arrays and objects as compact JSON.
// Values keep their JSON spelling, so true stays "true" (not "True") and
// null becomes "" rather than a "None"-style placeholder.
func stringify(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		return v.Raw
	case gjson.True, gjson.False:
		return v.String()
	case gjson.Null:
		return ""
	default:
		return v.Get("@ugly").Raw
	}
}

// siblingPath swaps the extension of path for ext. Leading dots of the file
// name do not start an extension, so ".json" becomes ".json.txt".
func siblingPath(path, ext string) string {
	stem := strings.TrimLeft(filepath.Base(path), ".")
	if !strings.Contains(stem, ".") {
		return path + ext
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
