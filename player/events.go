package player

// Event is a confirmed state notification emitted by the playback engine.
// Each variant carries exactly the property that changed; consumers dispatch
// on the concrete type.
type Event interface {
	isEvent()
}

// DurationChanged reports the total media length in seconds.
// A zero value means metadata has not loaded yet.
type DurationChanged struct {
	Seconds float64
}

// TimeChanged reports the current playback position in seconds.
type TimeChanged struct {
	Seconds float64
}

// PauseChanged is the authoritative play/pause notification.
type PauseChanged struct {
	Paused bool
}

// FullscreenChanged is the authoritative fullscreen notification, emitted both
// for toggle confirmations and for system-initiated exits.
type FullscreenChanged struct {
	Enabled bool
}

// RateChanged reports the confirmed playback speed multiplier.
type RateChanged struct {
	Rate float64
}

// EndReached signals that playback hit the end of the media.
type EndReached struct{}

// Exited signals that the playback process terminated.
type Exited struct{}

func (DurationChanged) isEvent()   {}
func (TimeChanged) isEvent()       {}
func (PauseChanged) isEvent()      {}
func (FullscreenChanged) isEvent() {}
func (RateChanged) isEvent()       {}
func (EndReached) isEvent()        {}
func (Exited) isEvent()            {}

// eventFromProperty translates a single observed mpv property change into a
// typed Event. Properties arrive with nil data while no file is loaded; those
// notifications carry no state and are dropped.
func eventFromProperty(name string, data interface{}) (Event, bool) {
	switch name {
	case "time-pos":
		if v, ok := data.(float64); ok {
			return TimeChanged{Seconds: v}, true
		}
	case "duration":
		if v, ok := data.(float64); ok {
			return DurationChanged{Seconds: v}, true
		}
	case "pause":
		if v, ok := data.(bool); ok {
			return PauseChanged{Paused: v}, true
		}
	case "fullscreen":
		if v, ok := data.(bool); ok {
			return FullscreenChanged{Enabled: v}, true
		}
	case "speed":
		if v, ok := data.(float64); ok {
			return RateChanged{Rate: v}, true
		}
	case "eof-reached":
		if v, ok := data.(bool); ok && v {
			return EndReached{}, true
		}
	}

	return nil, false
}
