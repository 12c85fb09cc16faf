// Package polynest generates animations of nested regular polygons.
//
// Each inner polygon is rotated so its vertices just touch the edges of the
// polygon enclosing it, producing a spiral pattern that tightens as the
// per-frame rotation grows. The package computes the full geometric state for
// every frame and ships two presentation paths on top of it.
//
// # Geometry core
//
// Three entry points cover the math:
//
//	pts := polynest.Vertices(6, 1.0, 0)    // closed hexagon vertex loop
//	r := polynest.NextRadius(0.1, 1.0, 6)  // radius of the touching inner hexagon
//	fr := polynest.BuildFrame(50, cfg)     // the whole nesting stack for frame 50
//
// [BuildFrame] is a pure function of the frame index and an immutable
// [Config]; frames can be computed in any order and in parallel.
//
// # Rendering and export
//
// [Export] renders every frame on a CPU [Canvas] using a worker pool and
// writes an animated GIF, an MP4 (via ffmpeg), or a PNG sequence:
//
//	err := polynest.Export(cfg, polynest.ExportOptions{Out: "spiral.gif"})
//
// [Player] opens an interactive window instead, driving the timeline with a
// tween and rendering through the GPU mesh [Renderer]:
//
//	p, err := polynest.NewPlayer(cfg, polynest.PlayerConfig{})
//	err = p.Run()
package polynest
