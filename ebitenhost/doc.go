// Package ebitenhost runs a flow field in an [Ebitengine] window.
//
// The window's logical size is the drawing surface size. The surface is an
// offscreen image that keeps its content between frames; frame callbacks run
// once per Draw with a millisecond clock, and the cursor is read every Update.
// Resizing the window rebuilds the animator through [flowfield.Host].
//
//	err := ebitenhost.Run(ebitenhost.RunConfig{
//		Title: "flowfield", Width: 800, Height: 600, ShowFPS: true,
//	})
//
// [Ebitengine]: https://ebitengine.org
package ebitenhost
