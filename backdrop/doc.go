// Package backdrop is the animated portfolio background: a fixed cloud of 40 translucent
// polyhedra drifting inside a ±25 unit box, lit by an ambient and a directional light and
// viewed through a perspective camera that eases toward the pointer.
//
// Build constructs a State once per view. A host then calls Loop.Frame once per display
// frame and forwards pointer and resize events to State.PointerMove and State.Resize, all
// from the same goroutine. Loop.Stop tears the view down.
package backdrop
