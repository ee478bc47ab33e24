// Package widgets provides the built-in widget set for Tally.
//
// Leaf and container view nodes (Text, Row, Column, Tappable) are consumed
// directly by a renderer. Composed widgets (Button, ErrorBoundary) expand
// into view nodes through Build.
package widgets
