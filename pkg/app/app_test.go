package app

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nextcore/tally/pkg/core"
	"github.com/nextcore/tally/pkg/errors"
	"github.com/nextcore/tally/pkg/render"
	"github.com/nextcore/tally/pkg/widgets"
)

// tallyWidget is a minimal stateful root with one labeled control.
func tallyWidget() core.Widget {
	return core.Stateful(
		func() int { return 0 },
		func(state int, _ core.BuildContext, setState func(func(int) int)) core.Widget {
			return widgets.ColumnOf(
				widgets.Text{Content: strconv.Itoa(state)},
				widgets.ButtonOf("inc", func() {
					setState(func(v int) int { return v + 1 })
				}),
			)
		},
	)
}

// frameCollector funnels sink frames to a channel for synchronization.
type frameCollector struct {
	frames chan render.Frame
}

func newFrameCollector() *frameCollector {
	return &frameCollector{frames: make(chan render.Frame, 64)}
}

func (c *frameCollector) sink(f render.Frame) {
	c.frames <- f
}

func (c *frameCollector) next(t *testing.T) render.Frame {
	t.Helper()
	select {
	case f := <-c.frames:
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for frame")
		return render.Frame{}
	}
}

func startApp(t *testing.T, a *App) {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- a.Run(context.Background())
	}()
	t.Cleanup(func() {
		a.Stop()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for app to stop")
		}
	})
}

func TestRun_RendersInitialFrame(t *testing.T) {
	collector := newFrameCollector()
	a := New(tallyWidget(), WithFrameSink(collector.sink))
	startApp(t, a)

	frame := collector.next(t)
	if !strings.Contains(frame.String(), "0") {
		t.Errorf("initial frame = %q, want initial value rendered", frame.String())
	}
	if len(frame.Targets) != 1 || frame.Targets[0].Label != "inc" {
		t.Errorf("targets = %+v, want single %q target", frame.Targets, "inc")
	}
}

func TestDispatch_EventsRunInOrder(t *testing.T) {
	collector := newFrameCollector()
	a := New(tallyWidget(), WithFrameSink(collector.sink))
	startApp(t, a)
	collector.next(t)

	var mu sync.Mutex
	var order []int
	for i := 0; i < 10; i++ {
		i := i
		a.Dispatch(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}
	for i := 0; i < 10; i++ {
		collector.next(t)
	}

	mu.Lock()
	defer mu.Unlock()
	for i, got := range order {
		if got != i {
			t.Fatalf("event order = %v, want ascending", order)
		}
	}
}

func TestActivate_TapsTargetAndRerenders(t *testing.T) {
	collector := newFrameCollector()
	a := New(tallyWidget(), WithFrameSink(collector.sink))
	startApp(t, a)
	collector.next(t)

	a.Activate(0)
	frame := collector.next(t)
	if !strings.Contains(frame.String(), "1") {
		t.Errorf("frame after activation = %q, want updated value", frame.String())
	}

	a.Activate(0)
	frame = collector.next(t)
	if !strings.Contains(frame.String(), "2") {
		t.Errorf("frame after second activation = %q, want updated value", frame.String())
	}
}

func TestActivateLabel_FindsTargetByLabel(t *testing.T) {
	collector := newFrameCollector()
	a := New(tallyWidget(), WithFrameSink(collector.sink))
	startApp(t, a)
	collector.next(t)

	a.ActivateLabel("inc")
	frame := collector.next(t)
	if !strings.Contains(frame.String(), "1") {
		t.Errorf("frame = %q, want updated value", frame.String())
	}
}

// captureHandler records reported errors for assertions.
type captureHandler struct {
	errors.LogHandler
	mu     sync.Mutex
	errs   []*errors.TallyError
	panics []*errors.PanicError
}

func (h *captureHandler) HandleError(err *errors.TallyError) {
	h.mu.Lock()
	h.errs = append(h.errs, err)
	h.mu.Unlock()
}

func (h *captureHandler) HandlePanic(p *errors.PanicError) {
	h.mu.Lock()
	h.panics = append(h.panics, p)
	h.mu.Unlock()
}

func (h *captureHandler) lastError() *errors.TallyError {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.errs) == 0 {
		return nil
	}
	return h.errs[len(h.errs)-1]
}

func (h *captureHandler) panicCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.panics)
}

func TestActivate_OutOfRangeIsReported(t *testing.T) {
	handler := &captureHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	collector := newFrameCollector()
	a := New(tallyWidget(), WithFrameSink(collector.sink))
	startApp(t, a)
	collector.next(t)

	a.Activate(99)
	collector.next(t)

	err := handler.lastError()
	if err == nil {
		t.Fatal("expected an error report for out-of-range target")
	}
	if err.Kind != errors.KindDispatch {
		t.Errorf("Kind = %v, want KindDispatch", err.Kind)
	}
}

func TestActivateLabel_UnknownLabelIsReported(t *testing.T) {
	handler := &captureHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	collector := newFrameCollector()
	a := New(tallyWidget(), WithFrameSink(collector.sink))
	startApp(t, a)
	collector.next(t)

	a.ActivateLabel("no-such-label")
	collector.next(t)

	err := handler.lastError()
	if err == nil {
		t.Fatal("expected an error report for unknown label")
	}
	if err.Op != "app.ActivateLabel" {
		t.Errorf("Op = %q, want %q", err.Op, "app.ActivateLabel")
	}
}

func TestProcessEvent_RecoversPanicAndLoopSurvives(t *testing.T) {
	handler := &captureHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	collector := newFrameCollector()
	a := New(tallyWidget(), WithFrameSink(collector.sink))
	startApp(t, a)
	collector.next(t)

	a.Dispatch(func() { panic("boom") })
	collector.next(t)

	if handler.panicCount() != 1 {
		t.Fatalf("panic reports = %d, want 1", handler.panicCount())
	}

	// Loop still processes events.
	a.Activate(0)
	frame := collector.next(t)
	if !strings.Contains(frame.String(), "1") {
		t.Errorf("frame after recovery = %q, want updated value", frame.String())
	}
}

func TestRun_ReturnsNilOnStop(t *testing.T) {
	a := New(tallyWidget())
	done := make(chan error, 1)
	go func() {
		done <- a.Run(context.Background())
	}()

	a.Stop()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v, want nil after Stop", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for Run to return")
	}
}

func TestRun_ReturnsContextError(t *testing.T) {
	a := New(tallyWidget())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- a.Run(ctx)
	}()

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for Run to return")
	}
}

func TestFrame_ReflectsLatestRender(t *testing.T) {
	collector := newFrameCollector()
	a := New(tallyWidget(), WithFrameSink(collector.sink))
	startApp(t, a)
	collector.next(t)

	a.Activate(0)
	collector.next(t)

	if !strings.Contains(a.Frame().String(), "1") {
		t.Errorf("Frame() = %q, want latest rendered value", a.Frame().String())
	}
}
