// Package stickr turns a stream of touch events into the transform of a
// single on-screen element and renders it with [Ebitengine].
//
// One pointer moves the element. Two pointers rotate it by the change in the
// angle between them and, depending on how far apart they are vertically,
// either scale it by the change in their distance or tilt it in perspective
// along the dominant axis of the first pointer's motion. Four corner handles
// let the element's corners be dragged independently.
//
// # Quick start
//
// Create an [Engine], tell it where the element sits, and feed it events
// from a [TouchSource] inside your own [ebiten.Game]:
//
//	engine, err := stickr.New(stickr.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	engine.SetBounds(stickr.Rect{X: 100, Y: 100, Width: 256, Height: 256})
//
//	source := stickr.NewTouchSource(true)
//	renderer := stickr.NewRenderer(img)
//
//	func (g *Game) Update() error {
//		g.source.Feed(g.engine)
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.renderer.Draw(screen, g.engine.Quad())
//		g.renderer.DrawHandles(screen, g.engine.Handles())
//	}
//
// Apps built on golang.org/x/mobile translate their touch events with a
// [MobileTranslator] instead.
//
// # Pipeline
//
// Events pass through the [Tracker], which keeps the first and second
// pointers and their previous positions. Each resulting [Frame] goes to the
// estimators ([EstimateScale], [PointerAngle], [EstimateTilt]) whose output
// the [Accumulator] clamps into a [TransformState]. The [Compositor] turns
// that state into a [Matrix] combining translation, scale and rotation about
// the element center with a camera-style perspective tilt, and maps the
// element's corners into the [Quad] that gets drawn.
//
// # Gesture scripts
//
// [LoadScript] compiles a JSON description of pointer presses, moves and
// eased drags (via [gween]) into per-frame events. Scripts drive the engine
// headlessly in tests and from the stickr command's replay mode.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package stickr
