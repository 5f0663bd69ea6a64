package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names an input encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// flexID accepts string, number and null ids.
type flexID string

// UnmarshalJSON keeps strings as-is, stringifies numbers and maps null to "".
func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*f = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("%w: %s", ErrBadID, b)
		}
		*f = flexID(n.String())
	}

	return nil
}

// UnmarshalYAML takes the scalar text; an explicit null becomes "".
// A quoted "null" stays the literal string.
func (f *flexID) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d", ErrBadID, n.Line)
	}
	if n.ShortTag() == "!!null" {
		*f = ""
		return nil
	}
	*f = flexID(n.Value)

	return nil
}

// wireRecord is the on-disk shape of a flat record.
type wireRecord struct {
	Key       flexID         `json:"id" yaml:"id"`
	ParentKey flexID         `json:"parentId" yaml:"parentId"`
	Name      string         `json:"name" yaml:"name"`
	Order     int64          `json:"order" yaml:"order"`
	Attrs     map[string]any `json:"attrs" yaml:"attrs"`
}

func fromWire(ws []wireRecord) ([]*Record, error) {
	out := make([]*Record, 0, len(ws))
	for i, w := range ws {
		if strings.TrimSpace(string(w.Key)) == "" {
			return nil, fmt.Errorf("%w: record #%d", ErrEmptyID, i)
		}
		out = append(out, &Record{
			Key:       string(w.Key),
			ParentKey: string(w.ParentKey),
			Name:      w.Name,
			Order:     w.Order,
			Attrs:     w.Attrs,
		})
	}

	return out, nil
}

// DecodeJSON reads a JSON array of flat records.
func DecodeJSON(r io.Reader) ([]*Record, error) {
	var ws []wireRecord
	if err := json.NewDecoder(r).Decode(&ws); err != nil {
		return nil, fmt.Errorf("record: decode json: %w", err)
	}

	return fromWire(ws)
}

// DecodeYAML reads a YAML sequence of flat records. An empty document
// yields no records.
func DecodeYAML(r io.Reader) ([]*Record, error) {
	var ws []wireRecord
	if err := yaml.NewDecoder(r).Decode(&ws); err != nil && err != io.EOF {
		return nil, fmt.Errorf("record: decode yaml: %w", err)
	}

	return fromWire(ws)
}

// LoadReader decodes r in the given format.
func LoadReader(r io.Reader, format Format) ([]*Record, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(r)
	case FormatYAML:
		return DecodeYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// LoadFile reads records from path, choosing the decoder by extension.
func LoadFile(path string) ([]*Record, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("record: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadReader(f, format)
}
