// Package inks is a 2D canvas-style game engine for [Ebitengine]: a scene
// graph drawn in immediate mode, a fixed or variable timestep loop, and a
// geometric collision library that separates, slides and bounces nodes.
//
// # Quick start
//
// Build an [Engine] from a [Config], give it a [Scene] and call [Run]:
//
//	e, err := inks.New(inks.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	scene := inks.NewScene("main")
//	scene.OnStart = func(s *inks.Scene) {
//		ball := inks.NewCircle("ball", 32)
//		ball.SetPosition(128, 128)
//		s.Stage().AddChild(ball)
//	}
//	e.SetScene(scene)
//	log.Fatal(inks.Run(e))
//
// For headless use, drive the engine yourself with [Engine.Start],
// [Engine.Step] and [Engine.Render] on any [Canvas].
//
// # Scene graph
//
// Every element is a [Node]. Nodes form a tree rooted at [Scene.Stage].
// Only translation composes across the tree: a node's global position is
// the sum of its ancestors' positions. Rotation and scale are local
// rendering effects. Children are kept sorted by layer; within a layer the
// most recently added child draws last.
//
// # Collision
//
// [HitTest] dispatches on the node types of a pair. The typed functions
// ([HitTestCircle], [HitTestRectangle], [HitTestCircleRectangle],
// [HitTestLineCircle] and the rest) take [HitOptions] that control whether
// the first node is pushed out (Solid), bounced (Bounce), slid along lines
// (Slope) or whether both nodes react (Reactive). Collisions mutate the
// nodes immediately; the order of tests within a tick is up to the caller.
//
// # Behaviors
//
// Each engine owns a [Registry] of draggable nodes, buttons, particles,
// shaking nodes, tweens and emitters. Removing a node from the tree drops
// it from every registry list before its OnDestroy hook runs. A [Keyboard]
// registered with [Registry.AddKeyboard] reports key presses, and a
// [Transition] fades the stage out and back in around a scene swap.
//
// # Sprites and text
//
// Sprites draw frames of an image resolved through the engine's
// [AssetStore]. [LoadAtlas] reads TexturePacker JSON and [GridFrames] cuts a
// uniform sheet; an [Animator] steps a sprite through named frame runs.
// [NewText] lays out lines with the debug font or a [TTFFont].
//
// [Ebitengine]: https://ebitengine.org
package inks
