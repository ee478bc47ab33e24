package widgets

import (
	"github.com/nextcore/tally/pkg/core"
)

// TextStyle controls how a Text widget is presented by a renderer.
type TextStyle struct {
	// Heading renders the text as a heading (underlined on text surfaces).
	Heading bool
}

// Text displays a string. The content is rendered verbatim; the renderer
// applies no transformation beyond the presentation in Style.
//
//	Text{Content: "Count: 3"}
//	Text{Content: "Tally", Style: TextStyle{Heading: true}}
type Text struct {
	core.NodeBase
	// Content is the text string to display.
	Content string
	// Style controls presentation.
	Style TextStyle
}
