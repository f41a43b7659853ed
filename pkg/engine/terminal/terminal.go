package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24

	// MinStageSize is the smallest stage dimension StageSize will return.
	MinStageSize = 5
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// StageSize derives stage dimensions that fit the current terminal, leaving
// room for the renderer's border and the shell prompt. Both results are odd.
func StageSize() (width, height int) {
	width, height = GetSize()
	width -= 2  // border columns
	height -= 4 // border rows plus prompt

	return oddClamp(width), oddClamp(height)
}

func oddClamp(n int) int {
	if n < MinStageSize {
		return MinStageSize
	}
	if n%2 == 0 {
		n--
	}
	return n
}
