package core

// Widget is an immutable description of part of the UI. Widgets are cheap
// configuration values; the framework instantiates an Element to give a
// widget identity and lifecycle at a position in the tree.
type Widget interface {
	// CreateElement returns a fresh, unconfigured element for this widget.
	// The framework wires the widget, build owner, and tree position in
	// during inflation; user code never calls this directly.
	CreateElement() Element
	// Key distinguishes widgets of the same type during tree updates.
	// Widgets with equal keys (and equal types) update in place; otherwise
	// the old element is unmounted and a new one inflated.
	Key() any
}

// StatelessWidget composes other widgets as a pure function of its own
// configuration. Build must not mutate anything; it only describes.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns mutable state across rebuilds. The widget itself stays
// immutable; all mutation lives in the State created by CreateState.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State holds the mutable state for a StatefulWidget and builds its subtree.
// Embed StateBase to get SetState, disposer registration, and no-op defaults.
type State interface {
	// InitState is called once after the state is attached to its element
	// and before the first Build.
	InitState()
	// Build describes the subtree for the current state. It must be a pure
	// function of the state and widget configuration.
	Build(ctx BuildContext) Widget
	// DidUpdateWidget is called when the element's widget is replaced by a
	// new widget of the same type and key.
	DidUpdateWidget(oldWidget StatefulWidget)
	// Dispose releases resources when the element is unmounted.
	Dispose()
}

// BuildContext gives Build access to the element hosting the widget.
type BuildContext interface {
	// Widget returns the widget currently configured on this element.
	Widget() Widget
	// FindAncestor walks up the tree and returns the first ancestor element
	// satisfying the predicate, or nil.
	FindAncestor(predicate func(Element) bool) Element
}

// Element is the instantiation of a Widget at a position in the tree.
// Elements manage identity, lifecycle, and rebuild scheduling.
type Element interface {
	BuildContext
	// Mount attaches the element under parent and performs the first build.
	Mount(parent Element, slot any)
	// Update replaces the element's widget with a compatible new widget.
	Update(newWidget Widget)
	// Unmount detaches the element and disposes any owned state.
	Unmount()
	// RebuildIfNeeded rebuilds the subtree if the element is dirty.
	RebuildIfNeeded()
	// MarkNeedsBuild flags the element dirty and schedules it with the
	// build owner.
	MarkNeedsBuild()
	// VisitChildren calls visitor for each child until it returns false.
	VisitChildren(visitor func(Element) bool)
	// Depth is the distance from the root; the build owner rebuilds
	// shallower elements first.
	Depth() int
}

// Listenable notifies registered listeners of changes. AddListener returns
// an unsubscribe function.
type Listenable interface {
	AddListener(listener func()) func()
}

// Disposable releases resources when no longer needed.
type Disposable interface {
	Dispose()
}
