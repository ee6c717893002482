// Command falling is a small driver for the inkan library: a screenful of
// colored blocks rains down the terminal at a fixed frame rate. Each block is
// an entity with a Transform and a Physics component; a physics system moves
// them, a render system draws them, and blocks leaving the screen are wrapped
// back to the top through the world's event bus.
//
// Keys: q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/soramimi-dev/inkan"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Transform places a block on screen.
type Transform struct {
	X, Y  float64
	Color tcell.Color
}

// Physics is a block's downward velocity in cells per second.
type Physics struct {
	Velocity float64
}

// Bounds is the current screen size, shared with systems as a resource.
type Bounds struct {
	W, H int
}

// blockFell fires when a block crosses the bottom edge.
type blockFell struct {
	Entity inkan.Entity
}

func main() {
	configPath := flag.String("config", "falling.toml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	w := inkan.NewWorld(cfg.World.Capacity)
	transforms, err := inkan.RegisterComponent[Transform](w)
	if err != nil {
		return err
	}
	physics, err := inkan.RegisterComponent[Physics](w)
	if err != nil {
		return err
	}

	width, height := screen.Size()
	inkan.AddResource(w.Resources(), &Bounds{W: width, H: height})

	w.RegisterSystem(&renderSystem{screen: screen, transforms: transforms},
		inkan.MakeSignature(transforms.ID()))
	w.RegisterSystem(&physicsSystem{transforms: transforms, physics: physics},
		inkan.MakeSignature(transforms.ID(), physics.ID()))

	// Fallen blocks respawn at the top edge with a fresh column.
	inkan.Subscribe(w.Events(), func(ev blockFell) {
		t, ok := transforms.Get(ev.Entity)
		if !ok {
			return
		}
		b, _ := inkan.GetResource[Bounds](w.Resources())
		t.Y = 0
		t.X = float64(rand.Intn(max(b.W, 1)))
	})

	if err := seed(w, cfg.World, width, height); err != nil {
		return fmt.Errorf("seed world: %w", err)
	}
	logger.Info("world seeded",
		zap.Int("capacity", cfg.World.Capacity),
		zap.Int("blocks", cfg.World.Blocks),
		zap.Int("fps", cfg.Display.FPS))

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	dt := 1.0 / float64(cfg.Display.FPS)
	ticker := time.NewTicker(time.Second / time.Duration(cfg.Display.FPS))
	defer ticker.Stop()

	frames := 0
	statStart := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					logger.Info("quit requested")
					return nil
				}
			case *tcell.EventResize:
				nw, nh := ev.Size()
				b, _ := inkan.GetResource[Bounds](w.Resources())
				b.W, b.H = nw, nh
				screen.Sync()
			}
		case <-ticker.C:
			screen.Clear()
			w.Update(dt)
			screen.Show()
			frames++
			if elapsed := time.Since(statStart); elapsed >= time.Second {
				logger.Info("frame stats",
					zap.Float64("fps", float64(frames)/elapsed.Seconds()),
					zap.Int("entities", w.EntityCount()))
				frames = 0
				statStart = time.Now()
			}
		}
	}
}

// seed creates the initial blocks at random positions, colors and speeds.
func seed(w *inkan.World, cfg WorldConfig, width, height int) error {
	width = max(width, 1)
	height = max(height, 1)
	for i := 0; i < cfg.Blocks; i++ {
		_, err := inkan.Spawn2(w,
			Transform{
				X: float64(rand.Intn(width)),
				Y: float64(rand.Intn(height)),
				Color: tcell.NewRGBColor(
					int32(rand.Intn(256)),
					int32(rand.Intn(256)),
					int32(rand.Intn(256))),
			},
			Physics{
				Velocity: cfg.MinSpeed + rand.Float64()*(cfg.MaxSpeed-cfg.MinSpeed),
			})
		if err != nil {
			return err
		}
	}
	return nil
}

// physicsSystem advances each block and reports the ones that fell off.
type physicsSystem struct {
	transforms *inkan.Pool[Transform]
	physics    *inkan.Pool[Physics]
}

func (s *physicsSystem) Update(w *inkan.World, dt float64, entities []inkan.Entity) {
	b, _ := inkan.GetResource[Bounds](w.Resources())
	for _, e := range entities {
		t, _ := s.transforms.Get(e)
		p, _ := s.physics.Get(e)
		t.Y += p.Velocity * dt
		if int(t.Y) >= b.H {
			inkan.Publish(w.Events(), blockFell{Entity: e})
		}
	}
}

// renderSystem draws every block as a solid cell in its color.
type renderSystem struct {
	screen     tcell.Screen
	transforms *inkan.Pool[Transform]
}

func (s *renderSystem) Update(w *inkan.World, dt float64, entities []inkan.Entity) {
	for _, e := range entities {
		t, _ := s.transforms.Get(e)
		style := tcell.StyleDefault.Foreground(t.Color)
		s.screen.SetContent(int(t.X), int(t.Y), '█', nil, style)
	}
}

func newLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	// The terminal belongs to tcell while the demo runs; logs go to a file.
	zapCfg.OutputPaths = []string{cfg.Path}
	zapCfg.ErrorOutputPaths = []string{cfg.Path}

	return zapCfg.Build()
}
