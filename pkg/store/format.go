package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/marquee/pkg/catalogs"
)

// Format is a serialization format for the catalog file.
type Format int

// Format constants.
const (
	FormatJSON Format = iota
	FormatYAML
)

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// FormatFromPath picks YAML for .yaml and .yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Marshal encodes c. JSON uses a four-space indent.
func (f Format) Marshal(c catalogs.Catalog) ([]byte, error) {
	if c == nil {
		c = catalogs.New()
	}
	switch f {
	case FormatYAML:
		return yaml.Marshal(c)
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "    ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(c); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}

// storedRecord is the on-disk shape of a record. Pointer fields tell a
// missing key apart from a zero value.
type storedRecord struct {
	Year   *int     `json:"year" yaml:"year"`
	Rating *float64 `json:"rating" yaml:"rating"`
}

// Unmarshal decodes data into a catalog. Every record needs both a year
// and a rating, and unknown record fields are rejected, so a file of some
// other shape does not load as zero-valued movies.
func (f Format) Unmarshal(data []byte) (catalogs.Catalog, error) {
	var stored map[string]*storedRecord
	switch f {
	case FormatYAML:
		if err := yaml.UnmarshalWithOptions(data, &stored, yaml.Strict()); err != nil {
			return nil, err
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&stored); err != nil {
			return nil, err
		}
	}

	c := catalogs.New()
	for title, rec := range stored {
		switch {
		case rec == nil:
			return nil, fmt.Errorf("movie %q has no record", title)
		case rec.Year == nil:
			return nil, fmt.Errorf("movie %q is missing year", title)
		case rec.Rating == nil:
			return nil, fmt.Errorf("movie %q is missing rating", title)
		}
		c[title] = catalogs.Record{Year: *rec.Year, Rating: *rec.Rating}
	}
	return c, nil
}
