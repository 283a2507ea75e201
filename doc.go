// Package canopy is a declarative terminal-UI engine. Application code
// describes a tree of immutable view values; the engine renders that tree,
// on demand, into a Buffer of styled lines ready to hand to the terminal.
//
// Core abstractions:
//   - View: a node in the tree, either a Primitive (renders itself into a
//     Buffer) or a Composite (resolves to exactly one child view)
//   - Context: the per-call render state passed down the walk — available
//     size, Environment, identity path, and the frame's interaction handles
//   - Buffer: lines of text with embedded ANSI styling; all layout math uses
//     visible width, never byte or rune count
//   - FocusManager: named sections of focusable elements with a single
//     active section; selection persists across render passes
//   - Dispatcher: a frame-scoped key handler chain dispatched newest-first,
//     so overlays rendered later intercept keys before the base layer
//   - Program: a Bubble Tea model that owns the render loop, routing resize
//     and key messages into the engine
//
// Rendering is single-threaded and synchronous: one render pass is one
// ordinary call-tree evaluation, never re-entered.
package canopy
