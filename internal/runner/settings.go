package runner

import "github.com/vovakirdan/playcell/internal/buffer"

// DefaultFPS is the target frame rate used when none is configured.
const DefaultFPS = 30

// Settings is the resolved runner configuration. It is assembled from three
// layers, each key overriding the previous: framework defaults, then
// caller-supplied settings, then the program's exported settings. After the
// merge it is read-only.
type Settings struct {
	FPS          int    `yaml:"fps"`
	Cols         int    `yaml:"cols"`
	Rows         int    `yaml:"rows"`
	Once         bool   `yaml:"once"`
	Renderer     string `yaml:"renderer"`
	RestoreState bool   `yaml:"restore_state"`
	AllowSelect  bool   `yaml:"allow_select"`

	// Style passthrough, applied to the default cell of every (re)allocated
	// buffer.
	Color      string `yaml:"color"`
	Background string `yaml:"background"`
	Weight     string `yaml:"weight"`
}

// DefaultSettings returns the framework defaults, the lowest merge layer.
func DefaultSettings() Settings {
	return Settings{
		FPS:      DefaultFPS,
		Renderer: "text",
	}
}

// MergeSettings returns base with every non-zero field of overlay overriding
// the corresponding field. Boolean fields override only when true, since
// false is indistinguishable from "not set".
func MergeSettings(base, overlay Settings) Settings {
	if overlay.FPS != 0 {
		base.FPS = overlay.FPS
	}
	if overlay.Cols != 0 {
		base.Cols = overlay.Cols
	}
	if overlay.Rows != 0 {
		base.Rows = overlay.Rows
	}
	if overlay.Once {
		base.Once = true
	}
	if overlay.Renderer != "" {
		base.Renderer = overlay.Renderer
	}
	if overlay.RestoreState {
		base.RestoreState = true
	}
	if overlay.AllowSelect {
		base.AllowSelect = true
	}
	if overlay.Color != "" {
		base.Color = overlay.Color
	}
	if overlay.Background != "" {
		base.Background = overlay.Background
	}
	if overlay.Weight != "" {
		base.Weight = overlay.Weight
	}
	return base
}

// baseCell returns the default cell seeded from the settings' style fields.
func (s Settings) baseCell() buffer.Cell {
	return buffer.Cell{
		Char:       ' ',
		Color:      s.Color,
		Background: s.Background,
		Weight:     s.Weight,
	}
}
