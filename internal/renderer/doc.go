// Package renderer paints the editor onto a VT100-compatible terminal.
//
// The editor never owns the screen. It redraws a single terminal row, the
// current line, after every key, and prints a full listing of the document
// on demand:
//
//	    12 some text on the current line_
//
// Every line is prefixed with a gutter holding its number, right-aligned
// and drawn in the gutter style (underlined by default). Output is built in
// memory and handed to the writer in one call per operation.
//
// Usage:
//
//	p := renderer.New(os.Stdout, renderer.WithGutterStyle(style))
//	p.Start()
//	p.Listing(eng.Cursor())
//	p.DrawLine(eng.Cursor())
package renderer
