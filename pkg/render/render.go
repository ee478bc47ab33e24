// Package render turns a mounted element tree into a text frame.
//
// Rendering is a pure read of the tree: it produces a Frame describing the
// visible lines and the ordered activation targets, and never mutates the
// elements it visits. The same tree always renders to the same frame.
package render

import (
	"strings"

	"github.com/nextcore/tally/pkg/core"
	"github.com/nextcore/tally/pkg/widgets"
)

// Target is an activatable region of a frame. Index order follows
// depth-first pre-order traversal of the tree, so target indices are stable
// for a given tree shape.
type Target struct {
	// Label is the plain text content of the target's subtree.
	Label string
	// OnTap is the handler registered by the Tappable that produced this
	// target, exactly as the widget supplied it.
	OnTap func()
}

// Frame is the rendered description of an element tree.
type Frame struct {
	// Lines are the visible text lines, top to bottom.
	Lines []string
	// Targets are the activation targets in traversal order.
	Targets []Target
}

// String joins the frame's lines with newlines.
func (f Frame) String() string {
	return strings.Join(f.Lines, "\n")
}

// Snapshot renders the element tree rooted at root into a Frame.
func Snapshot(root core.Element) Frame {
	r := &renderer{}
	lines := r.renderElement(root)
	return Frame{Lines: lines, Targets: r.targets}
}

type renderer struct {
	targets []Target
}

// renderElement returns the block of lines for an element's subtree,
// collecting activation targets along the way.
func (r *renderer) renderElement(e core.Element) []string {
	if e == nil {
		return nil
	}

	switch w := e.Widget().(type) {
	case widgets.Text:
		return renderText(w)

	case widgets.Row:
		var cells []string
		e.VisitChildren(func(child core.Element) bool {
			block := r.renderElement(child)
			if len(block) > 0 {
				cells = append(cells, strings.Join(block, " "))
			}
			return true
		})
		if len(cells) == 0 {
			return nil
		}
		return []string{strings.Join(cells, "  ")}

	case widgets.Column:
		var lines []string
		e.VisitChildren(func(child core.Element) bool {
			lines = append(lines, r.renderElement(child)...)
			return true
		})
		return lines

	case widgets.Tappable:
		var block []string
		e.VisitChildren(func(child core.Element) bool {
			block = append(block, r.renderElement(child)...)
			return true
		})
		if w.OnTap == nil {
			return block
		}
		r.targets = append(r.targets, Target{
			Label: strings.Join(block, " "),
			OnTap: w.OnTap,
		})
		if len(block) == 0 {
			return nil
		}
		bracketed := make([]string, len(block))
		copy(bracketed, block)
		bracketed[0] = "[" + bracketed[0] + "]"
		return bracketed

	default:
		// Composed widgets: descend into whatever they built.
		var lines []string
		e.VisitChildren(func(child core.Element) bool {
			lines = append(lines, r.renderElement(child)...)
			return true
		})
		return lines
	}
}

func renderText(t widgets.Text) []string {
	lines := strings.Split(t.Content, "\n")
	if t.Style.Heading && len(lines) > 0 {
		underlined := make([]string, 0, len(lines)+1)
		underlined = append(underlined, lines[0], strings.Repeat("=", len([]rune(lines[0]))))
		underlined = append(underlined, lines[1:]...)
		return underlined
	}
	return lines
}
