package widgets

import (
	"github.com/nextcore/tally/pkg/core"
	"github.com/nextcore/tally/pkg/errors"
)

// ErrorBoundary catches build errors from descendant widgets and displays
// a fallback widget instead of crashing the app. This provides scoped error
// handling for subtrees of the widget tree.
//
// Example:
//
//	ErrorBoundary{
//	    OnError: func(err *errors.BuildError) {
//	        log.Printf("widget error: %v", err)
//	    },
//	    FallbackBuilder: func(err *errors.BuildError) core.Widget {
//	        return Text{Content: "failed to load"}
//	    },
//	    ChildWidget: RiskyContent{},
//	}
type ErrorBoundary struct {
	// ChildWidget is the widget tree to wrap with error handling.
	ChildWidget core.Widget
	// FallbackBuilder creates a widget to show when an error is caught.
	// If nil, a plain error line is shown.
	FallbackBuilder core.ErrorWidgetBuilder
	// OnError is called when an error is caught. Use for logging.
	OnError func(*errors.BuildError)
	// WidgetKey is an optional key for the widget. Changing the key forces
	// the ErrorBoundary to recreate its state, clearing any captured error.
	WidgetKey any
}

func (e ErrorBoundary) CreateElement() core.Element {
	return core.NewStatefulElement()
}

func (e ErrorBoundary) Key() any {
	return e.WidgetKey
}

func (e ErrorBoundary) CreateState() core.State {
	return &errorBoundaryState{}
}

type errorBoundaryState struct {
	core.StateBase
	capturedError *errors.BuildError
}

func (s *errorBoundaryState) Build(ctx core.BuildContext) core.Widget {
	widget := ctx.Widget().(ErrorBoundary)

	if s.capturedError != nil {
		if widget.FallbackBuilder != nil {
			return widget.FallbackBuilder(s.capturedError)
		}
		return Text{Content: "error: " + s.capturedError.Error()}
	}

	return widget.ChildWidget
}

// CaptureError records a descendant build error and rebuilds with the
// fallback. Implements core.ErrorBoundaryCapture.
func (s *errorBoundaryState) CaptureError(err *errors.BuildError) bool {
	if widget, ok := s.Element().Widget().(ErrorBoundary); ok && widget.OnError != nil {
		widget.OnError(err)
	}
	s.SetState(func() {
		s.capturedError = err
	})
	return true
}

// Reset clears the captured error and rebuilds the child.
// Use this to retry rendering after an error.
func (s *errorBoundaryState) Reset() {
	s.SetState(func() {
		s.capturedError = nil
	})
}
