package landmarks

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/toothkit/landmarks/internal/layer"

	"github.com/rs/zerolog/log"
)

// ErrNoObjects is returned by Read for a document whose objects sequence is
// absent or empty. Sniffing already guarantees non-emptiness, so hitting it
// means the file changed between detection and reading.
var ErrNoObjects = errors.New("no objects found")

// ReadFunc is the reader capability handed to the host by Detect. It returns
// a list of exactly one layer tuple.
type ReadFunc func(path string) ([]layer.Data, error)

// Fixed display attributes of the produced layer.
const (
	pointSize   = 1.0
	borderColor = "white"
	borderWidth = 0.1
)

// Read loads the landmark document at path and converts it into a points
// layer. Unlike sniffing, failures here are loud: load, validation and
// extraction errors propagate to the host.
func Read(path string) ([]layer.Data, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}

	points, props, err := extract(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	props.Labels = composeLabels(props)

	meta := layer.Meta{
		Name:        fmt.Sprintf("Landmarks [%s]", filepath.Base(path)),
		Size:        pointSize,
		FaceColor:   assignColors(props.Classes),
		BorderColor: borderColor,
		BorderWidth: borderWidth,
		Properties:  props,
	}

	log.Debug().
		Str("path", path).
		Int("points", len(points)).
		Msg("Landmark file converted to points layer")

	return []layer.Data{{Points: points, Meta: meta, Kind: layer.KindPoints}}, nil
}

// extract pulls coordinates and the per-point attribute table out of the
// document, applying field defaults. Input order is preserved; coordinate
// rows are passed through as-is, including ragged lengths.
func extract(doc *Document) ([][]float64, layer.Properties, error) {
	if len(doc.Objects) == 0 {
		return nil, layer.Properties{}, ErrNoObjects
	}

	n := len(doc.Objects)
	points := make([][]float64, 0, n)
	props := layer.Properties{
		Keys:        make([]string, 0, n),
		Classes:     make([]string, 0, n),
		Scores:      make([]float64, 0, n),
		InstanceIDs: make([]int, 0, n),
	}

	for _, obj := range doc.Objects {
		coord := obj.Coord
		if coord == nil {
			coord = []float64{0, 0, 0}
		}
		points = append(points, coord)

		props.Keys = append(props.Keys, stringOr(obj.Key, DefaultKey))
		props.Classes = append(props.Classes, stringOr(obj.Class, DefaultClass))
		props.Scores = append(props.Scores, floatOr(obj.Score, DefaultScore))
		props.InstanceIDs = append(props.InstanceIDs, intOr(obj.InstanceID, DefaultInstanceID))
	}

	return points, props, nil
}

// composeLabels builds the tooltip text for each point.
func composeLabels(props layer.Properties) []string {
	labels := make([]string, 0, len(props.Keys))

	for i := range props.Keys {
		lines := []string{
			fmt.Sprintf("Key: %s", props.Keys[i]),
			fmt.Sprintf("Class: %s", props.Classes[i]),
			fmt.Sprintf("Score: %.4f", props.Scores[i]),
			fmt.Sprintf("Instance ID: %d", props.InstanceIDs[i]),
		}
		labels = append(labels, strings.Join(lines, "\n"))
	}

	return labels
}

func stringOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
