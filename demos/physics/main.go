// physics drops a crowd of balls into a box. Balls collide reactively,
// broad-phased through a spatial grid, and a press blasts them away from
// the pointer.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/inks2d/inks"
)

const (
	screenW    = 960
	screenH    = 540
	ballCount  = 120
	cellSize   = 60
	blastRange = 250.0
	blastForce = 12.0
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg := inks.DefaultConfig()
	cfg.Title = "inks - Physics Demo"
	cfg.Width, cfg.Height = screenW, screenH
	cfg.Background = inks.Color{R: 0.06, G: 0.06, B: 0.09, A: 1}
	if *configPath != "" {
		loaded, err := inks.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	logger, err := inks.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	e, err := inks.New(cfg, inks.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	var balls []*inks.Node
	cols := int(math.Ceil(float64(cfg.Width) / cellSize))
	rows := int(math.Ceil(float64(cfg.Height) / cellSize))
	area := inks.Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}

	scene := inks.NewScene("physics")
	scene.OnStart = func(s *inks.Scene) {
		rng := s.Registry().Rand()
		for i := 0; i < ballCount; i++ {
			b := inks.NewCircle("ball", inks.RandomFloat(rng, 16, 36))
			b.Fill = inks.Color{
				R: inks.RandomFloat(rng, 0.3, 1),
				G: inks.RandomFloat(rng, 0.3, 1),
				B: inks.RandomFloat(rng, 0.3, 1),
				A: 1,
			}
			b.Mass = 1 + b.Radius()/20
			b.Gravity = inks.Vec2{Y: 0.2}
			b.Friction = inks.Vec2{X: 0.99, Y: 0.99}
			b.SetPosition(inks.RandomFloat(rng, 20, area.Width-20), inks.RandomFloat(rng, 20, area.Height/2))
			s.Stage().AddChild(b)
			balls = append(balls, b)
		}

		e.Pointer().OnPress = func(c *inks.Cursor) {
			for _, b := range balls {
				d := b.Position.Sub(c.Position)
				dist := d.Len()
				if dist > blastRange || dist == 0 {
					continue
				}
				b.Velocity = b.Velocity.Add(d.Normalize().Scale(blastForce * (1 - dist/blastRange) / b.Mass))
				s.Registry().Shake(b, 8, 3, false)
			}
		}
	}
	scene.OnUpdate = func(s *inks.Scene) {
		for _, b := range balls {
			b.Move()
			inks.Contain(b, area, true)
		}
		grid := inks.SpatialGrid(balls, cols, rows, cellSize, cellSize)
		for i, cell := range grid {
			cx, cy := i%cols, i/cols
			for _, a := range cell {
				for dy := 0; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dy == 0 && dx < 0 {
							continue
						}
						nx, ny := cx+dx, cy+dy
						if nx < 0 || nx >= cols || ny >= rows {
							continue
						}
						for _, b := range grid[nx+ny*cols] {
							if a == b || (dx == 0 && dy == 0 && a.ID > b.ID) {
								continue
							}
							inks.HitTestCircle(a, b, inks.HitOptions{Reactive: true})
						}
					}
				}
			}
		}
		e.Print(inks.FormatTimer(e.Elapsed(), false, true))
	}
	e.SetScene(scene)

	if err := inks.Run(e); err != nil {
		log.Fatal(err)
	}
}
