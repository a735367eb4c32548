package inks

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// game adapts an Engine to ebiten.Game. Update feeds the wall clock to
// Engine.Step; Draw renders through an EbitenCanvas.
type game struct {
	engine *Engine
	canvas *EbitenCanvas
	epoch  time.Time
}

func (g *game) Update() error {
	e := g.engine
	now := time.Since(g.epoch)
	if !e.Started() {
		if err := e.Start(now); err != nil {
			return err
		}
	}
	e.Step(now)
	updateCursorShape(e.CursorHover())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = NewEbitenCanvas(screen)
	} else {
		g.canvas.Reset(screen)
	}
	g.engine.Render(g.canvas)
	g.engine.flushScreenshots(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	cfg := g.engine.cfg
	return cfg.Width, cfg.Height
}

// Run opens a window sized by the engine config and drives the engine until
// the window closes. Device input is polled unless WithInput replaced it.
func Run(e *Engine) error {
	if e.scene == nil {
		return ErrNoScene
	}
	if e.poll == nil {
		e.poll = newEbitenInput().poll
	}
	cfg := e.cfg
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Timestep == TimestepFixed {
		ebiten.SetTPS(cfg.Framerate)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}
	e.log.Debug("window opened", zap.String("title", cfg.Title))
	if err := ebiten.RunGame(&game{engine: e, epoch: time.Now()}); err != nil {
		return fmt.Errorf("run %q: %w", cfg.Title, err)
	}
	return nil
}
