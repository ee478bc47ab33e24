// Package counter implements the Tally reference widget: a parent that owns
// a single integer count and exposes it through three labeled action buttons.
//
// The Counter widget demonstrates the framework's composition model. State
// lives in one place (the counter's state record); the buttons are stateless
// children that each receive a (callback, label) pair and nothing else. All
// mutation flows through the transitions the counter itself constructs, so
// the count has exactly one writer.
package counter

import (
	"strconv"

	"github.com/nextcore/tally/pkg/core"
	"github.com/nextcore/tally/pkg/widgets"
)

// Default display strings.
const (
	DefaultTitle          = "Counter"
	DefaultIncrementLabel = "+1"
	DefaultScaleLabel     = "x5"
	DefaultResetLabel     = "reset"
)

// Labels configures the button labels. Zero-value fields use the defaults.
type Labels struct {
	Increment string
	Scale     string
	Reset     string
}

func (l Labels) withDefaults() Labels {
	if l.Increment == "" {
		l.Increment = DefaultIncrementLabel
	}
	if l.Scale == "" {
		l.Scale = DefaultScaleLabel
	}
	if l.Reset == "" {
		l.Reset = DefaultResetLabel
	}
	return l
}

// Counter displays an integer count with increment, scale, and reset buttons.
//
// The count is Go's native int. It is unbounded in either direction up to the
// machine word; overflow wraps per two's-complement arithmetic and is not
// guarded.
type Counter struct {
	core.StatefulBase
	// Title is the heading shown above the count. Defaults to DefaultTitle.
	Title string
	// Initial is the starting count.
	Initial int
	// Labels overrides the button labels.
	Labels Labels
	// OnChange, if set, is called with the new count after each transition.
	OnChange func(count int)
}

func (c Counter) CreateState() core.State {
	return &counterState{}
}

// counterState owns the count. The transitions below are read-modify-write
// against the live field at activation time, so rapid successive activations
// fold correctly even before a rebuild happens.
type counterState struct {
	core.StateBase
	count int
}

func (s *counterState) InitState() {
	s.count = s.widget().Initial
}

func (s *counterState) widget() Counter {
	return s.Element().Widget().(Counter)
}

func (s *counterState) increment() {
	s.apply(func(v int) int { return v + 1 })
}

func (s *counterState) scale() {
	s.apply(func(v int) int { return v * 5 })
}

func (s *counterState) reset() {
	s.apply(func(int) int { return 0 })
}

// apply commits one transition and notifies the observer. Each call is fully
// applied before the event loop hands over the next activation.
func (s *counterState) apply(transition func(int) int) {
	if s.IsDisposed() {
		return
	}
	s.SetState(func() {
		s.count = transition(s.count)
	})
	if onChange := s.widget().OnChange; onChange != nil {
		onChange(s.count)
	}
}

func (s *counterState) Build(ctx core.BuildContext) core.Widget {
	w := ctx.Widget().(Counter)
	title := w.Title
	if title == "" {
		title = DefaultTitle
	}
	labels := w.Labels.withDefaults()

	return widgets.ColumnOf(
		widgets.Text{Content: title, Style: widgets.TextStyle{Heading: true}},
		widgets.Text{Content: strconv.Itoa(s.count)},
		widgets.RowOf(
			widgets.ButtonOf(labels.Increment, s.increment),
			widgets.ButtonOf(labels.Scale, s.scale),
			widgets.ButtonOf(labels.Reset, s.reset),
		),
	)
}
