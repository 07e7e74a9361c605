package timecode

import (
	"encoding/json"
	"fmt"

	"github.com/vidmark-cli/vidmark/filesystem"
	"github.com/vidmark-cli/vidmark/log"
)

// Load reads and validates an annotation sidecar file.
//
// The file must contain a JSON array of entries ordered ascending by their
// numeric time. A malformed Time is a load error; a malformed bounding box is
// not — such objects are simply never rendered.
func Load(path string) (List, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read annotations: %w", err)
	}

	var list List
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse annotations: %w", err)
	}

	if err := Normalize(list); err != nil {
		return nil, err
	}

	log.Infof("loaded %d annotation entries from %s", len(list), path)
	return list, nil
}

// Normalize derives Seconds for every entry and verifies ascending order.
func Normalize(list List) error {
	var prev float64

	for i, entry := range list {
		seconds, err := ParseClock(entry.Time)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		entry.Seconds = seconds

		if i > 0 && seconds < prev {
			return fmt.Errorf("entry %d (%s): list must be ascending by time", i, entry.Time)
		}
		prev = seconds
	}

	return nil
}
