// Package widget provides the small retained-mode primitives the list is
// built from: labels, frames and a titled scroll frame.
//
// Widgets render to strings with Lip Gloss and never draw on their own. A
// ScrollFrame owns the packing order of its children and re-renders them into
// a bubbles viewport whenever it is refreshed or viewed, so style changes on a
// packed frame show up on the next render without re-packing.
//
// Mouse input arrives as coordinates relative to the scroll frame. The frame
// maps the row to a content line using the viewport offset and dispatches the
// click to whichever packed widget covers that line. Frames forward the click
// to the child label on that line when the label has handlers bound, and to
// their own handlers otherwise, so a click anywhere on a row is observed once.
package widget
