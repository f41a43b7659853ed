// Package renderer renders stages as diagnostic text. The output is for
// human eyes only and carries no parseable contract.
package renderer

import (
	"strings"

	"github.com/gookit/color"

	"warrengen/pkg/engine/world"
)

// Tile glyphs
const (
	GlyphWall       = " "
	GlyphOpenDoor   = "/"
	GlyphClosedDoor = "+"
	GlyphFloor      = "█"
)

var (
	ColorFloor  color.Style
	ColorDoor   color.Style
	ColorBorder color.Style
)

// InitColors initializes the color styles
func InitColors() {
	ColorFloor = color.Style{color.FgGray}
	ColorDoor = color.Style{color.FgMagenta, color.OpBold}
	ColorBorder = color.Style{color.FgBlue}
}

// Glyph returns the plain glyph for a tile.
func Glyph(tile world.Tile) string {
	switch tile {
	case world.OpenDoor:
		return GlyphOpenDoor
	case world.ClosedDoor:
		return GlyphClosedDoor
	case world.Floor:
		return GlyphFloor
	default:
		return GlyphWall
	}
}

// Plain renders the stage without color: one glyph per cell inside a
// one-cell dashed border.
func Plain(stage *world.Stage) string {
	return render(stage, Glyph, func(s string) string { return s })
}

// Colored renders the stage with the package color styles. InitColors must
// have been called.
func Colored(stage *world.Stage) string {
	return render(stage, coloredGlyph, func(s string) string { return ColorBorder.Sprint(s) })
}

func coloredGlyph(tile world.Tile) string {
	switch tile {
	case world.OpenDoor, world.ClosedDoor:
		return ColorDoor.Sprint(Glyph(tile))
	case world.Floor:
		return ColorFloor.Sprint(Glyph(tile))
	default:
		return GlyphWall
	}
}

func render(stage *world.Stage, glyph func(world.Tile) string, border func(string) string) string {
	var b strings.Builder

	dashes := border(strings.Repeat("-", stage.Width()+2))
	wall := border("|")

	b.WriteString(dashes)
	b.WriteString("\n")

	for y := 0; y < stage.Height(); y++ {
		b.WriteString(wall)
		for x := 0; x < stage.Width(); x++ {
			tile, _ := stage.Get(world.Vector{X: x, Y: y})
			b.WriteString(glyph(tile))
		}
		b.WriteString(wall)
		b.WriteString("\n")
	}

	b.WriteString(dashes)

	return b.String()
}
