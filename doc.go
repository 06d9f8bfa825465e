// Package spotlight draws guided "spotlight" walkthroughs for [Ebitengine]
// games and tools.
//
// A [Spotlight] darkens the window with a translucent mask, cuts a circular
// hole in it over a point of interest, shows a caption or any other view next
// to the hole and waits for a tap before moving on to the next target.
// Cutouts grow and shrink with tweens (via [gween]), and the mask fades in
// before the first target and out after the last.
//
// # Quick start
//
//	win := spotlight.NewWindow(800, 600)
//	// ... add your own views to win.Root() ...
//
//	target, err := spotlight.NewCaptionTarget(
//		spotlight.TargetConfig{Host: win, Point: spotlight.Vec2{X: 400, Y: 200}, Radius: 80},
//		spotlight.CaptionConfig{Title: "Inventory", Description: "Your items live here."},
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	s := spotlight.New(spotlight.Config{
//		Host:    win,
//		Targets: []*spotlight.Target{target},
//		OnSequenceEnded: func() { log.Println("done") },
//	})
//	if err := s.Start(); err != nil {
//		log.Fatal(err)
//	}
//	spotlight.Run(win, spotlight.RunConfig{Title: "Tour"})
//
// For full control, implement [ebiten.Game] yourself and call
// [Window.Update] and [Window.Draw] directly, or implement [Host] on top of
// your own view system.
//
// # Sequence
//
// A sequence moves through the [State] values
//
//	Idle -> MaskFadeIn -> TargetRevealing -> TargetShown -> TargetConcealing
//	     -> TargetRevealing (next target) | MaskFadeOut -> Idle
//
// Taps are only honoured in TargetShown; taps during any animation are
// dropped. [Spotlight.Finish] skips the remaining targets and
// [Spotlight.Detach] tears the overlay down without notifying listeners.
//
// # Targets
//
// [NewTarget] shows any view as the decoration. [NewCaptionTarget] builds a
// title and description that are placed above or below the cutout, on
// whichever side has more room, after their first layout pass. A target can
// be anchored to a laid-out view, in which case the cutout covers the view's
// bounds.
//
// # Configuration
//
// Zero-valued [Config] fields take the package defaults. Themes can also be
// loaded from YAML with [LoadConfigFile] and applied with [FileConfig.Apply].
//
// # Testing
//
// [Window.Advance] steps a frame with an explicit timestep, and
// [Window.InjectTap] feeds synthetic taps through the normal input path.
// [TestRunner] replays JSON scripts of taps, waits and screenshots.
//
// Lifecycle events can be mirrored into a [Donburi] world with the
// spotlight/ecs sub-package.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package spotlight
