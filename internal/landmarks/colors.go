package landmarks

import "github.com/toothkit/landmarks/internal/layer"

// ColorMap assigns a palette color to every distinct class, in order of first
// appearance. The palette wraps: with more than len(layer.Palette) distinct
// classes, colors repeat.
func ColorMap(classes []string) map[string]string {
	colorMap := make(map[string]string)

	i := 0
	for _, class := range classes {
		if _, ok := colorMap[class]; ok {
			continue
		}
		colorMap[class] = layer.Palette[i%len(layer.Palette)]
		i++
	}

	return colorMap
}

// assignColors maps each point to its class color.
func assignColors(classes []string) []string {
	colorMap := ColorMap(classes)

	colors := make([]string, 0, len(classes))
	for _, class := range classes {
		colors = append(colors, colorMap[class])
	}

	return colors
}
