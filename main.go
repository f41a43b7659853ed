package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"warrengen/pkg/engine/terminal"
	"warrengen/pkg/engine/world"
	"warrengen/pkg/game/generator"
	"warrengen/pkg/game/renderer"
)

// phaseCaptions maps generator progress phases to printable captions.
// The captions are translation keys; gotext returns them unchanged when no
// catalog is installed.
var phaseCaptions = map[string]string{
	"rooms":       "Added rooms",
	"mazes":       "Added mazes",
	"connections": "Connected regions",
	"dead ends":   "Removed dead ends",
}

func initGotext() {
	gotext.Configure("mo", "en_GB.utf8", "default")
}

func main() {
	width := flag.Int("width", 0, "stage width, must be odd (0 = fit terminal)")
	height := flag.Int("height", 0, "stage height, must be odd (0 = fit terminal)")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	tries := flag.Int("tries", 0, "room placement attempts (0 = default)")
	winding := flag.Int("winding", 0, "corridor winding percent")
	verbose := flag.Bool("verbose", false, "print the stage after each generation phase")
	flag.Parse()

	initGotext()
	renderer.InitColors()

	w, h := *width, *height
	if w == 0 || h == 0 {
		tw, th := terminal.StageSize()
		if w == 0 {
			w = tw
		}
		if h == 0 {
			h = th
		}
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	stage := world.NewStage(w, h)

	fmt.Println(renderer.Colored(stage))
	fmt.Println()

	opts := generator.DefaultOptions()
	if *tries > 0 {
		opts.RoomTries = *tries
	}
	opts.WindingPercent = *winding
	if *verbose {
		opts.Progress = func(phase string) {
			fmt.Println(gotext.Get(phaseCaptions[phase]))
			fmt.Println(renderer.Colored(stage))
			fmt.Println()
		}
	}

	dungeon := generator.New(stage, rng, opts)
	if err := dungeon.Generate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", gotext.Get("Cannot generate dungeon:"), err)
		os.Exit(1)
	}

	if !*verbose {
		fmt.Println(renderer.Colored(stage))
	}
	fmt.Println(gotext.Get("Placed %d rooms on a %dx%d stage (seed %d)", len(dungeon.Rooms()), w, h, s))
}
