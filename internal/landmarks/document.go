// Package landmarks implements sniffing and reading of dental landmark JSON
// files and their conversion into a points layer.
package landmarks

import (
	"encoding/json"
	"os"
)

// Defaults substituted for absent object fields.
const (
	DefaultKey        = "unknown"
	DefaultClass      = "unknown"
	DefaultScore      = 0.0
	DefaultInstanceID = 0
)

// Document is the top-level landmark file structure.
type Document struct {
	Objects []Object `json:"objects"`
}

// Object is one detected landmark. Pointer fields distinguish an absent field
// from an explicit zero value; defaults are applied during extraction.
type Object struct {
	Key        *string   `json:"key"`
	Class      *string   `json:"class"`
	Score      *float64  `json:"score"`
	InstanceID *int      `json:"instance_id"`
	Coord      []float64 `json:"coord"`
}

// Load reads and parses a landmark document from the specified path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}
