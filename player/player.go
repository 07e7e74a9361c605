// Package player defines the media-clock abstraction over external playback engines.
// The primary implementation targets 'mpv' via its JSON-IPC interface.
package player

// Clock encapsulates the required capabilities of a playback backend.
//
// Commands are asynchronous-fire: issuing one never blocks waiting for the
// corresponding state change. Confirmed state arrives later on the Events
// channel, which is the sole authority for play/pause and fullscreen flags.
type Clock interface {
	// Load starts playback of the given URL with the specified title.
	// If a player instance is already running, it loads the new file into it.
	Load(url string, title string) error

	// Play resumes playback. The playing flag flips only when the
	// corresponding PauseChanged event is observed.
	Play() error

	// Pause suspends playback. Same eventual-consistency contract as Play.
	Pause() error

	// Seek transitions the playback position to an absolute timestamp in seconds.
	Seek(seconds float64) error

	// SetVolume applies a volume in [0, 1].
	SetVolume(v float64) error

	// SetMuted toggles the independent mute flag without touching the stored volume.
	SetMuted(muted bool) error

	// SetRate applies a playback speed multiplier.
	SetRate(rate float64) error

	// SetFullscreen requests the engine enter or leave fullscreen. The
	// confirmed state arrives as a FullscreenChanged event, since the engine
	// (or the windowing system) may exit fullscreen on its own.
	SetFullscreen(on bool) error

	// Events returns the stream of confirmed state notifications.
	Events() <-chan Event

	// IsRunning validates the liveness of the underlying playback process.
	IsRunning() bool

	// Close terminates the playback engine and releases all associated system resources.
	Close() error
}
