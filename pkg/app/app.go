// Package app runs a widget tree on a single-threaded event loop.
//
// All element mutation happens on the loop goroutine. Events are processed
// strictly in FIFO order: each event's state changes are fully applied and
// the tree rebuilt before the next event is taken, so activations never
// interleave. Other goroutines interact with the loop only through Dispatch.
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/nextcore/tally/pkg/core"
	"github.com/nextcore/tally/pkg/errors"
	"github.com/nextcore/tally/pkg/render"
)

// FrameSink receives each rendered frame. Called on the loop goroutine.
type FrameSink func(render.Frame)

// Option configures an App.
type Option func(*App)

// WithFrameSink registers a sink for rendered frames.
func WithFrameSink(sink FrameSink) Option {
	return func(a *App) {
		a.sink = sink
	}
}

// WithQueueSize sets the event queue capacity. Dispatch blocks when the
// queue is full. The default is 64.
func WithQueueSize(n int) Option {
	return func(a *App) {
		if n > 0 {
			a.queueSize = n
		}
	}
}

// App owns a widget tree, its build owner, and the event loop driving it.
type App struct {
	rootWidget core.Widget
	owner      *core.BuildOwner
	sink       FrameSink
	queueSize  int

	events chan func()

	stopOnce sync.Once
	quit     chan struct{}

	frameMu sync.RWMutex
	frame   render.Frame
}

// New creates an app that will mount rootWidget when Run is called.
func New(rootWidget core.Widget, opts ...Option) *App {
	a := &App{
		rootWidget: rootWidget,
		owner:      core.NewBuildOwner(),
		queueSize:  64,
		quit:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.events = make(chan func(), a.queueSize)
	return a
}

// Dispatch queues fn for execution on the loop goroutine. Safe to call from
// any goroutine. Events run in the order they were dispatched.
func (a *App) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	select {
	case a.events <- fn:
	case <-a.quit:
	}
}

// Activate dispatches a tap on the frame target at index. Target indices
// follow the traversal order of the latest frame. An out-of-range index is
// reported through the error handler, not delivered to the tree.
func (a *App) Activate(index int) {
	a.Dispatch(func() {
		targets := a.currentFrame().Targets
		if index < 0 || index >= len(targets) {
			errors.Report(&errors.TallyError{
				Op:   "app.Activate",
				Kind: errors.KindDispatch,
				Err:  fmt.Errorf("no target at index %d (have %d)", index, len(targets)),
			})
			return
		}
		targets[index].OnTap()
	})
}

// ActivateLabel dispatches a tap on the first frame target whose label
// matches exactly. An unknown label is reported through the error handler.
func (a *App) ActivateLabel(label string) {
	a.Dispatch(func() {
		for _, target := range a.currentFrame().Targets {
			if target.Label == label {
				target.OnTap()
				return
			}
		}
		errors.Report(&errors.TallyError{
			Op:   "app.ActivateLabel",
			Kind: errors.KindDispatch,
			Err:  fmt.Errorf("no target labeled %q", label),
		})
	})
}

// Frame returns the most recently rendered frame.
func (a *App) Frame() render.Frame {
	a.frameMu.RLock()
	defer a.frameMu.RUnlock()
	return a.frame
}

func (a *App) currentFrame() render.Frame {
	return a.Frame()
}

func (a *App) setFrame(f render.Frame) {
	a.frameMu.Lock()
	a.frame = f
	a.frameMu.Unlock()
}

// Stop shuts the loop down after the event being processed completes.
// Safe to call multiple times and from any goroutine.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		close(a.quit)
	})
}

// Run mounts the root widget, renders the initial frame, and processes
// events until Stop is called or ctx is cancelled. Returns ctx.Err() on
// cancellation, nil on Stop. Must not be called more than once.
func (a *App) Run(ctx context.Context) error {
	root := core.MountRoot(a.rootWidget, a.owner)
	if root == nil {
		return &errors.TallyError{
			Op:   "app.Run",
			Kind: errors.KindInit,
			Err:  fmt.Errorf("root widget inflated to nil element"),
		}
	}
	defer root.Unmount()

	a.owner.FlushBuild()
	a.produceFrame(root)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.quit:
			return nil
		case event := <-a.events:
			a.processEvent(event)
			a.owner.FlushBuild()
			a.produceFrame(root)
		}
	}
}

// processEvent runs one event with panic recovery so a misbehaving handler
// cannot take down the loop.
func (a *App) processEvent(event func()) {
	defer errors.Recover("app.processEvent")
	event()
}

func (a *App) produceFrame(root core.Element) {
	frame := render.Snapshot(root)
	a.setFrame(frame)
	if a.sink != nil {
		a.sink(frame)
	}
}
