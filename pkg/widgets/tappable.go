package widgets

import (
	"github.com/nextcore/tally/pkg/core"
)

// Tappable wraps a child widget with a tap handler. The renderer registers
// the subtree as an activation target; when the target is activated, OnTap
// is invoked exactly as provided, with no arguments and no wrapping.
//
// A nil OnTap renders the child without registering a target.
//
// Example:
//
//	Tappable{
//	    OnTap: func() { handleTap() },
//	    Child: Text{Content: "press me"},
//	}
//
// For labeled action buttons, prefer [Button], which pairs a callback with
// a display label.
type Tappable struct {
	core.NodeBase
	// Child is the widget rendered inside the tappable region.
	Child core.Widget
	// OnTap is invoked on activation. It receives no arguments and its
	// return value (if any) is never consumed.
	OnTap func()
}

// ChildWidget exposes the child for tree inflation.
func (t Tappable) ChildWidget() core.Widget {
	return t.Child
}

// Tap wraps a child with a tap handler.
func Tap(onTap func(), child core.Widget) Tappable {
	return Tappable{OnTap: onTap, Child: child}
}
