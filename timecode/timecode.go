// Package timecode defines the time-indexed annotation data model and the
// lookup index that resolves which annotation applies at a given playback position.
package timecode

// Object is a single detected object attached to an annotation entry.
// Box holds normalized [ymin, xmin, ymax, xmax] coordinates, each in [0, 1].
type Object struct {
	Name       string      `json:"name"`
	Box        *[4]float64 `json:"box_2d,omitempty" jsonschema:"description=Normalized [ymin xmin ymax xmax] coordinates; each in [0;1]"`
	Confidence *float64    `json:"confidence,omitempty"`
}

// Renderable reports whether the object carries a well-formed bounding box.
// Entries with malformed boxes stay eligible for caption selection; only the
// overlay rendering skips them.
func (o *Object) Renderable() bool {
	if o.Box == nil {
		return false
	}

	for _, coord := range o.Box {
		if coord < 0 || coord > 1 {
			return false
		}
	}

	// ymin < ymax, xmin < xmax
	return o.Box[0] < o.Box[2] && o.Box[1] < o.Box[3]
}

// Entry is a single time-stamped annotation: a caption, a numeric chart value,
// detected objects, or any combination of the three.
type Entry struct {
	// Time is the formatted position the annotation applies from, e.g. "1:23".
	Time string `json:"time" jsonschema:"required,description=Formatted position such as 1:23 or 0:05:10"`

	Text    string   `json:"text,omitempty"`
	Value   *float64 `json:"value,omitempty"`
	Objects []Object `json:"objects,omitempty"`

	// Seconds is derived from Time at load time and is not part of the wire format.
	Seconds float64 `json:"-"`
}

// List is an ascending-by-Seconds sequence of annotation entries.
type List []*Entry
