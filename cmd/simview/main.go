// simview renders a running battle in the terminal. It is a host-side
// observer only: all simulation math happens in the deterministic core, the
// view just projects world coordinates onto character cells each tick.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/scrapforge/tanksim/sim"
	"github.com/scrapforge/tanksim/state"
)

var (
	configFlag = flag.String("config", "", "arena config YAML (default built-in arena)")
	seedFlag   = flag.Uint64("seed", 1, "simulation seed")
	tanksFlag  = flag.Int("tanks", 4, "tanks per team")
)

var teamStyles = []tcell.Style{
	tcell.StyleDefault.Foreground(tcell.ColorGreen),
	tcell.StyleDefault.Foreground(tcell.ColorRed),
	tcell.StyleDefault.Foreground(tcell.ColorBlue),
}

func main() {
	flag.Parse()

	cfg := sim.DefaultConfig()
	if *configFlag != "" {
		var err error
		if cfg, err = sim.LoadConfig(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
	}

	world, err := sim.NewWorld(cfg, *seedFlag, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "world: %v\n", err)
		os.Exit(1)
	}
	world.SpawnBattle(*tanksFlag)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			world.Step()
			draw(screen, cfg, world.State())
		}
	}
}

func draw(screen tcell.Screen, cfg sim.Config, st *state.SimState) {
	screen.Clear()
	width, height := screen.Size()
	if height > 1 {
		height-- // status line
	}

	toCell := func(p, mapDim float64, cells int) int {
		c := int(p / mapDim * float64(cells))
		if c < 0 {
			c = 0
		}
		if c >= cells {
			c = cells - 1
		}
		return c
	}

	for i := range st.Bullets {
		b := &st.Bullets[i]
		x := toCell(b.Position.X.Float(), cfg.MapWidth, width)
		y := toCell(b.Position.Y.Float(), cfg.MapHeight, height)
		screen.SetContent(x, y, '*', nil, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
	for i := range st.Tanks {
		t := &st.Tanks[i]
		x := toCell(t.Position.X.Float(), cfg.MapWidth, width)
		y := toCell(t.Position.Y.Float(), cfg.MapHeight, height)
		style := teamStyles[int(t.TeamID)%len(teamStyles)]
		screen.SetContent(x, y, 'T', nil, style)
	}

	status := fmt.Sprintf(" tick %d  tanks %d  bullets %d  digest %016x  [q to quit]",
		st.Time, len(st.Tanks), len(st.Bullets), st.Digest())
	for i, r := range status {
		if i >= width {
			break
		}
		screen.SetContent(i, height, r, nil, tcell.StyleDefault.Reverse(true))
	}

	screen.Show()
}
