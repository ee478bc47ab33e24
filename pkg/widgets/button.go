package widgets

import (
	"github.com/nextcore/tally/pkg/core"
)

// Button is an actionable widget pairing a tap callback with a display label.
//
// Button is stateless and holds no state of its own: its build output is a
// pure function of the (OnTap, Label) pair it was constructed with. The label
// is displayed verbatim and the callback is handed to the activation target
// exactly as provided, never wrapped or inspected.
//
// The (callback, label) pair is a caller contract: OnTap must be invocable
// with zero arguments and Label must be the string to display. Button does
// not validate either; a nil callback on an enabled button simply renders a
// dead control, surfacing the programming error as a broken interaction.
//
// Example using struct literal:
//
//	Button{
//	    Label: "+1",
//	    OnTap: s.increment,
//	}
//
// Example using the helper:
//
//	ButtonOf("+1", s.increment)
type Button struct {
	core.StatelessBase
	// Label is the text displayed on the button, verbatim.
	Label string
	// OnTap is called when the button is activated.
	OnTap func()
	// Disabled suppresses activation when true.
	Disabled bool
}

// ButtonOf creates a button with the given label and tap handler.
//
// This is a convenience helper equivalent to:
//
//	Button{Label: label, OnTap: onTap}
func ButtonOf(label string, onTap func()) Button {
	return Button{Label: label, OnTap: onTap}
}

// WithDisabled returns a copy of the button with the specified disabled state.
func (b Button) WithDisabled(disabled bool) Button {
	b.Disabled = disabled
	return b
}

func (b Button) Build(ctx core.BuildContext) core.Widget {
	onTap := b.OnTap
	if b.Disabled {
		onTap = nil
	}
	return Tappable{
		OnTap: onTap,
		Child: Text{Content: b.Label},
	}
}
