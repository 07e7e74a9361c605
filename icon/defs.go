package icon

// Icon identifies a single renderable UI symbol.
type Icon int

const (
	Play Icon = iota + 1
	Pause
	Volume
	Muted
	Fullscreen
	Rate
	Marker
	Progress
	Success
	Fail
)

// icons is the global registry mapping identifiers to their variant definitions.
var icons = map[Icon]iconDef{
	Play:       {emoji: "▶️", nerd: "", plain: ">"},
	Pause:      {emoji: "⏸️", nerd: "", plain: "||"},
	Volume:     {emoji: "🔊", nerd: "墳", plain: "vol"},
	Muted:      {emoji: "🔇", nerd: "婢", plain: "mute"},
	Fullscreen: {emoji: "🖵", nerd: "", plain: "[fs]"},
	Rate:       {emoji: "⏩", nerd: "", plain: "x"},
	Marker:     {emoji: "📍", nerd: "", plain: "@"},
	Progress:   {emoji: "⏳", nerd: "", plain: "..."},
	Success:    {emoji: "✅", nerd: "", plain: "+"},
	Fail:       {emoji: "❌", nerd: "", plain: "x"},
}
