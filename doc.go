// Vgplot drives gnuplot as a subprocess from Go.
//
//
// Sessions
//
// All plotting goes through a SessionManager. Each session wraps one
// gnuplot process plus the temporary data files backing the current
// plot. Sessions form a stack: NewPlot pushes a fresh one, Close pops
// back to the previous one.
//      m := vgplot.New()
//      defer m.CloseAll()
//      m.Plot(x, y, "r-;speed;")
//
//
// Labels
//
// The string following a series pair carries both the style and the
// title, separated by semicolons: "r+;measured;" draws red points
// titled "measured". Style characters are - : . + o for the draw mode
// and r g b c m y k w for the color; #rrggbb picks an arbitrary color.
// Text after the closing semicolon is passed to gnuplot verbatim
// instead: ";raw;with impulses".
//
//
// Responses
//
// Replies from gnuplot are drained best effort after a short timeout
// and may be incomplete; nothing in this package waits for gnuplot to
// finish rendering.
package vgplot
