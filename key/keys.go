// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Media Playback - these keys maintain the state and configuration for the external playback engine.
const (
	PlayerBinary = "player.default"
	PlayerVolume = "player.volume"
)

// Annotation Sidecars - these keys govern discovery and rendering of time-indexed annotation files.
const (
	AnnotationsAutoload = "annotations.autoload"
)

// Terminal User Interface (TUI) - these keys define the widget's rendering behavior.
const (
	TUIShowObjects = "tui.show_objects"
	TUIShowValues  = "tui.show_values"
	TUICaptionRows = "tui.caption_rows"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
