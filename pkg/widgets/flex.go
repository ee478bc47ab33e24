package widgets

import (
	"github.com/nextcore/tally/pkg/core"
)

// Column stacks children vertically in order.
type Column struct {
	core.NodeBase
	ChildrenWidgets []core.Widget
}

// ColumnOf creates a vertical layout with the given children.
func ColumnOf(children ...core.Widget) Column {
	return Column{ChildrenWidgets: children}
}

// Children exposes the child widgets for tree inflation.
func (c Column) Children() []core.Widget {
	return c.ChildrenWidgets
}

// Row places children horizontally in order.
type Row struct {
	core.NodeBase
	ChildrenWidgets []core.Widget
}

// RowOf creates a horizontal layout with the given children.
func RowOf(children ...core.Widget) Row {
	return Row{ChildrenWidgets: children}
}

// Children exposes the child widgets for tree inflation.
func (r Row) Children() []core.Widget {
	return r.ChildrenWidgets
}
