package landmarks

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Loose structure for structural probing; elements stay uninterpreted so
// sniffing only inspects as much as the structural checks need.
type sniffProbe struct {
	Objects []json.RawMessage `json:"objects"`
}

// Detect checks whether the file at path is a recognized landmark file and
// returns the reader capability, or nil if the format is not recognized.
// Sniffing is silent: parse and structural failures are logged at trace level
// and reported as "not recognized", never as errors.
func Detect(path string) ReadFunc {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		log.Trace().
			Str("path", path).
			Msg("Sniff rejected: extension is not .json")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Trace().Err(err).Str("path", path).Msg("Sniff rejected: unreadable file")
		return nil
	}

	var probe sniffProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		log.Trace().Err(err).Str("path", path).Msg("Sniff rejected: not a landmark JSON structure")
		return nil
	}

	if len(probe.Objects) == 0 {
		log.Trace().Str("path", path).Msg("Sniff rejected: no objects")
		return nil
	}

	// only the first object is probed; problems further down the array are
	// the reader's to report
	var first map[string]json.RawMessage
	if err := json.Unmarshal(probe.Objects[0], &first); err != nil {
		log.Trace().Err(err).Str("path", path).Msg("Sniff rejected: first object is not a mapping")
		return nil
	}

	if _, ok := first["coord"]; !ok {
		log.Trace().Str("path", path).Msg("Sniff rejected: first object has no coord")
		return nil
	}

	log.Debug().
		Str("path", path).
		Int("objects", len(probe.Objects)).
		Msg("Landmark file recognized")

	return Read
}

// DetectBatch is the sniff entry point for a list of candidate paths.
// Multi-file landmark sets are not supported, so it always reports
// "not recognized" regardless of length or content.
func DetectBatch(paths []string) ReadFunc {
	log.Trace().Int("paths", len(paths)).Msg("Sniff rejected: batch input not supported")
	return nil
}
