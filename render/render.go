// Package render writes an assembled forest of records as an indented text
// tree, JSON or YAML.
package render

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtree/record"
)

// ErrUnknownFormat is returned by Write for unsupported formats.
var ErrUnknownFormat = errors.New("render: unknown format")

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Write renders forest to w in the named format.
func Write(w io.Writer, format string, forest []*record.Record) error {
	switch format {
	case FormatText:
		return Text(w, forest)
	case FormatJSON:
		return JSON(w, forest)
	case FormatYAML:
		return YAML(w, forest)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Text draws each tree with box-drawing branches:
//
//	11 Head office
//	├── 2 Research
//	└── 32 Sales
//	    ├── 5 Retail
//	    └── 4 Wholesale
func Text(w io.Writer, forest []*record.Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range forest {
		fmt.Fprintln(bw, label(r))
		writeBranches(bw, r.Children, "")
	}

	return bw.Flush()
}

func writeBranches(w io.Writer, kids []*record.Record, prefix string) {
	for i, c := range kids {
		branch, indent := "├── ", "│   "
		if i == len(kids)-1 {
			branch, indent = "└── ", "    "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, label(c))
		writeBranches(w, c.Children, prefix+indent)
	}
}

func label(r *record.Record) string {
	if r.Name == "" {
		return r.Key
	}

	return r.Key + " " + r.Name
}

// JSON writes forest as an indented JSON array. An empty forest is "[]".
func JSON(w io.Writer, forest []*record.Record) error {
	if forest == nil {
		forest = []*record.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(forest); err != nil {
		return fmt.Errorf("render: json: %w", err)
	}

	return nil
}

// YAML writes forest as a YAML sequence.
func YAML(w io.Writer, forest []*record.Record) error {
	if forest == nil {
		forest = []*record.Record{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(forest); err != nil {
		return fmt.Errorf("render: yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("render: yaml: %w", err)
	}

	return nil
}
