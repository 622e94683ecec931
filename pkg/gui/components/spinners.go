package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// LaunchDots animates while a command is being started
var LaunchDots = spinner.Spinner{
	Frames: []string{"·  ", "·· ", "···", " ··", "  ·", "   "},
	FPS:    time.Second / 8,
}
