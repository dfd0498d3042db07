// Package display provides the built-in display layers.
//
// Every display wraps a *layerfx.Node of kind KindDisplay; add it to a
// scene with scene.AddElement(d.Node).
//
//   - Image draws a picture into its own buffer and blends it onto the
//     chain with its blendMode and opacity options.
//   - Text draws a line of text into the scene's shared 2D buffer.
//   - Geometry adds a mesh to the scene's 3D graph.
package display
