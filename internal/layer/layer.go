// Package layer defines the generic points-layer structures consumed by the
// visualization host.
package layer

// KindPoints is the layer kind reported for landmark data.
const KindPoints = "points"

// Palette is the fixed color cycle used for class-based point coloring.
// Classes beyond the palette length wrap around (index modulo 8).
var Palette = []string{"red", "blue", "green", "yellow", "magenta", "cyan", "orange", "purple"}

// Data is a single layer tuple as expected by the host: point coordinates,
// display metadata and the layer kind.
type Data struct {
	Meta   Meta        `json:"meta" yaml:"meta"`
	Kind   string      `json:"kind" yaml:"kind"`
	Points [][]float64 `json:"points" yaml:"points"`
}

// Meta carries the display attributes of a points layer.
type Meta struct {
	Name        string     `json:"name" yaml:"name"`
	BorderColor string     `json:"border_color" yaml:"border_color"`
	FaceColor   []string   `json:"face_color" yaml:"face_color"`
	Properties  Properties `json:"properties" yaml:"properties"`
	Size        float64    `json:"size" yaml:"size"`
	BorderWidth float64    `json:"border_width" yaml:"border_width"`
}

// Properties holds the per-point attribute table. All slices are parallel,
// aligned by index with the Points matrix of the owning Data.
type Properties struct {
	Keys        []string  `json:"key" yaml:"key"`
	Classes     []string  `json:"class" yaml:"class"`
	Scores      []float64 `json:"score" yaml:"score"`
	InstanceIDs []int     `json:"instance_id" yaml:"instance_id"`
	Labels      []string  `json:"label" yaml:"label"`
}
