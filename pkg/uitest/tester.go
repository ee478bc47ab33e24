package uitest

import (
	"fmt"
	"testing"

	"github.com/nextcore/tally/pkg/core"
	"github.com/nextcore/tally/pkg/render"
	"github.com/nextcore/tally/pkg/widgets"
)

// Tester provides isolated widget testing without an event loop. It drives
// the same build and render phases as the app loop, but synchronously and
// under test control.
type Tester struct {
	buildOwner *core.BuildOwner
	root       core.Element
	dispatches []func()
}

// NewTester creates a tester. Call Cleanup() when done, or use
// NewTesterWithT() instead.
func NewTester() *Tester {
	return &Tester{
		buildOwner: core.NewBuildOwner(),
	}
}

// NewTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree. Must be called if not using NewTesterWithT.
func (t *Tester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
}

// PumpWidget mounts (or remounts) a widget and runs one build pass.
func (t *Tester) PumpWidget(widget core.Widget) {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
	t.root = core.MountRoot(widget, t.buildOwner)
	t.Pump()
}

// Pump runs a single frame cycle: queued dispatches, then dirty rebuilds.
func (t *Tester) Pump() {
	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}
	t.buildOwner.FlushBuild()
}

// Dispatch queues a callback for the next Pump, mirroring app.Dispatch.
func (t *Tester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// RootElement returns the root element of the mounted tree.
func (t *Tester) RootElement() core.Element {
	return t.root
}

// Frame renders the current tree to a frame.
func (t *Tester) Frame() render.Frame {
	if t.root == nil {
		return render.Frame{}
	}
	return render.Snapshot(t.root)
}

// Find evaluates a finder against the current element tree.
func (t *Tester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}

// Tap activates the first element matched by finder. If the matched element
// is not itself a tappable region, its subtree and then its ancestors are
// searched for one. The handler runs immediately; call Pump to rebuild.
func (t *Tester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no elements: %s", finder.Description())
	}

	handler := findTapHandler(result.First())
	if handler == nil {
		return fmt.Errorf("Tap: no tap handler reachable from: %s", finder.Description())
	}
	handler()
	return nil
}

// TapTarget activates the frame target at index, in frame traversal order.
func (t *Tester) TapTarget(index int) error {
	targets := t.Frame().Targets
	if index < 0 || index >= len(targets) {
		return fmt.Errorf("TapTarget: no target at index %d (have %d)", index, len(targets))
	}
	targets[index].OnTap()
	return nil
}

// findTapHandler locates the handler of the nearest Tappable: the element
// itself, the first one in its subtree, or the nearest ancestor.
func findTapHandler(e core.Element) func() {
	var handler func()
	walkTree(e, func(candidate core.Element) bool {
		if handler != nil {
			return false
		}
		if tappable, ok := candidate.Widget().(widgets.Tappable); ok && tappable.OnTap != nil {
			handler = tappable.OnTap
			return false
		}
		return true
	})
	if handler != nil {
		return handler
	}
	ancestor := e.FindAncestor(func(a core.Element) bool {
		tappable, ok := a.Widget().(widgets.Tappable)
		return ok && tappable.OnTap != nil
	})
	if ancestor != nil {
		return ancestor.Widget().(widgets.Tappable).OnTap
	}
	return nil
}
