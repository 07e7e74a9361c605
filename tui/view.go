// Package tui implements the interactive playback widget.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
	"github.com/vidmark-cli/vidmark/color"
	"github.com/vidmark-cli/vidmark/icon"
	"github.com/vidmark-cli/vidmark/key"
	"github.com/vidmark-cli/vidmark/style"
	"github.com/vidmark-cli/vidmark/timecode"
	"github.com/vidmark-cli/vidmark/util"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *widgetBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case playingState:
		output = b.viewPlaying()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *widgetBubble) viewLoading() string {
	return paddingStyle.Render(strings.Join([]string{
		style.Title("Loading"),
		"",
		b.spinnerC.View() + " Spawning playback engine...",
	}, "\n"))
}

func (b *widgetBubble) viewError() string {
	msg := "unknown error"
	if b.lastError != nil {
		msg = b.lastError.Error()
	}

	return paddingStyle.Render(strings.Join([]string{
		style.ErrorTitle("Playback Failed"),
		"",
		style.Fg(color.Red)(wrap.String(msg, util.Max(b.width-4, 20))),
		"",
		style.Faint("The widget does not retry; press q to quit."),
	}, "\n"))
}

func (b *widgetBubble) viewPlaying() string {
	s := b.engine.State()

	lines := []string{
		style.Title(b.options.Title),
		"",
		b.viewTransport(),
		b.scrubC.ViewAs(s.Fraction()),
		"",
	}

	lines = append(lines, b.viewAnnotation()...)

	if b.jumpInputC.Focused() {
		lines = append(lines, "", icon.Get(icon.Marker)+" "+b.jumpInputC.View())
	}

	lines = append(lines, "", b.helpC.View(b.keymap))

	return paddingStyle.Render(strings.Join(lines, "\n"))
}

// viewTransport renders the one-line transport bar: play state, position,
// rate, volume, and fullscreen flag.
func (b *widgetBubble) viewTransport() string {
	s := b.engine.State()

	playIcon := icon.Get(icon.Play)
	if s.Playing {
		playIcon = icon.Get(icon.Pause)
	}

	position := fmt.Sprintf("%s / %s",
		timecode.FormatClock(s.CurrentTime),
		timecode.FormatClock(s.Duration),
	)
	if s.Duration == 0 {
		position = style.Faint("metadata loading...")
	}

	volumeIcon := icon.Get(icon.Volume)
	if s.Muted {
		volumeIcon = style.Fg(color.Red)(icon.Get(icon.Muted))
	}

	parts := []string{
		style.Bold(playIcon),
		position,
		style.Fg(color.Orange)(fmt.Sprintf("%g%s", s.Rate, icon.Get(icon.Rate))),
		fmt.Sprintf("%s %d%%", volumeIcon, int(s.EffectiveVolume()*100)),
	}

	if s.Fullscreen {
		parts = append(parts, style.Fg(color.Cyan)(icon.Get(icon.Fullscreen)))
	}

	if s.Scrubbing {
		parts = append(parts, style.Fg(color.Yellow)("scrubbing"))
	}

	return strings.Join(parts, "  ")
}

// viewAnnotation renders the caption, detected objects, and value gauge for
// the annotation applicable right now. Objects with malformed boxes are
// skipped here and only here.
func (b *widgetBubble) viewAnnotation() []string {
	entry, ok := b.engine.Active().Get()
	if !ok {
		if b.engine.Annotations().Len() == 0 {
			return []string{style.Faint("no annotations")}
		}
		return []string{style.Faint("no annotation yet")}
	}

	var lines []string

	marker := style.Fg(color.Purple)(icon.Get(icon.Marker) + " " + entry.Time)
	lines = append(lines, marker)

	if entry.Text != "" {
		width := util.Max(b.width-4, 20)
		caption := wrap.String(entry.Text, width)

		rows := strings.Split(caption, "\n")
		if max := viper.GetInt(key.TUICaptionRows); max > 0 && len(rows) > max {
			rows = append(rows[:max-1], rows[max-1]+"…")
		}
		lines = append(lines, style.Caption(strings.Join(rows, "\n")))
	}

	if entry.Value != nil && viper.GetBool(key.TUIShowValues) {
		lines = append(lines, b.viewValueGauge(*entry.Value))
	}

	if len(entry.Objects) > 0 && viper.GetBool(key.TUIShowObjects) {
		lines = append(lines, b.viewObjects(entry.Objects)...)
	}

	return lines
}

// viewValueGauge renders the numeric annotation scaled against the list maximum.
func (b *widgetBubble) viewValueGauge(value float64) string {
	const cells = 20

	fraction := 0.0
	if b.maxValue > 0 {
		fraction = util.Clamp(value/b.maxValue, 0, 1)
	}

	filled := int(fraction * cells)
	bar := strings.Repeat("▮", filled) + strings.Repeat("▯", cells-filled)

	return fmt.Sprintf("%s %g", style.Fg(color.Green)(bar), value)
}

// viewObjects renders one row per renderable detected object.
func (b *widgetBubble) viewObjects(objects []timecode.Object) []string {
	lines := []string{style.Faint(util.Quantify(len(objects), "object", "objects"))}

	for i := range objects {
		o := &objects[i]
		if !o.Renderable() {
			continue
		}

		box := fmt.Sprintf("[%.2f %.2f %.2f %.2f]", o.Box[0], o.Box[1], o.Box[2], o.Box[3])

		row := fmt.Sprintf("  %s %s", style.Bold(o.Name), style.Faint(box))
		if o.Confidence != nil {
			row += " " + style.Fg(color.Cyan)(fmt.Sprintf("%.0f%%", *o.Confidence*100))
		}

		lines = append(lines, row)
	}

	return lines
}
