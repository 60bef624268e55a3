package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/citywalk/internal/core"
)

//go:embed defaults/citywalk.yaml
var defaultSceneYAML []byte

// DefaultHelpText is shown on the bottom row unless configured otherwise.
const DefaultHelpText = "Press 'q' to quit"

// DefaultSceneConfig returns the built-in scene configuration.
// It matches the embedded defaults/citywalk.yaml.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Tick:     200 * time.Millisecond,
		HelpText: DefaultHelpText,
		Palette: Palette{
			Sky:           core.ColorNavy,
			Building:      core.ColorSlate,
			Accent:        core.ColorBrightYellow,
			Figure:        core.ColorBrightGreen,
			Ground:        core.ColorDarkGray,
			GroundTexture: core.ColorGray,
			Help:          core.ColorGray,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultSceneYAML
}
