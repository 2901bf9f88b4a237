// Package tui provides immediate-mode widgets on top of the screen package.
//
// Core abstraction is Region, a rectangular window into a screen.Buffer.
// All drawing operations are relative to region bounds with automatic
// clipping, and all text placement is display-width aware.
//
// Design principles:
//   - Immediate mode: no retained widget state, app owns the render loop
//   - Composable: regions nest via Sub(), layout helpers split regions
//   - Themed: widgets take styles, Theme supplies a consistent set
//
// Usage pattern:
//
//	buf := screen.New(term)
//	th := tui.DefaultTheme
//
//	buf.BeginFrame()
//	root := tui.NewRegion(buf)
//	root.Clear(th.Base())
//
//	panels := tui.SplitHEqual(root, 2, 0)
//	inner := panels[0].Card("/home/user", tui.LineDouble, th.BorderStyle())
//	inner.List(items, cursor, scroll, tui.DefaultListOpts(th))
//	root.KeyBar(root.H-1, reg.ByCategory("fkeys"), tui.DefaultKeyBarOpts(th))
//	buf.EndFrame()
//
// Loop ties the pieces together: a fixed-timestep tick that drains input,
// reports resize, and renders one frame per tick.
package tui
