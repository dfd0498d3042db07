// Package layerfx composes video frames from ordered stacks of layers.
//
// # Overview
//
// A [Stage] hosts one or more [Scene] values. Each scene holds two ordered
// sets of [Node] values: displays, which produce visual content, and
// effects, which post-process it. Every node may contribute a
// [render.Pass]; the scene keeps a [render.Composer] whose pass chain is
// always
//
//	[2D base, 3D base] ++ display passes ++ effect passes
//
// and rebuilds it before any structural mutation returns.
//
// # Quick Start
//
//	stage := layerfx.NewStage(800, 600)
//	scene := layerfx.NewScene(layerfx.WithName("intro"))
//	if err := stage.AddScene(scene); err != nil {
//	    return err
//	}
//	img := display.NewImage(logo, layerfx.Options{"blendMode": "Screen"})
//	if err := scene.AddElement(img.Node); err != nil {
//	    return err
//	}
//	frame, err := stage.Render(layerfx.FrameData{Delta: time.Second / 60})
//
// # 3D Geometry
//
// Each attached scene owns a [graph.Graph] with one perspective camera and
// three point lights. Displays that report HasGeometry add meshes to it;
// the graph is only rendered on frames where at least one enabled display
// does so.
//
// # Logging
//
// layerfx produces no log output by default. Call [SetLogger] to enable it.
//
// # Thread Safety
//
// Stages, scenes and nodes are driven from a single render goroutine.
// Render is not reentrant, and structural mutations must happen between
// frames. Independent scenes share no mutable state.
package layerfx
