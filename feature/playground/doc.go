/*
Package playground serves a live section adapter over HTTP.

The adapter renders into a headless view and both live on a mainloop.Loop: every
request is marshalled onto the loop goroutine, the way a UI toolkit requires all widget
work to run on its main thread. With deferred completions, a request made while a render
is in flight shows the queueing behaviour of the adapter until POST /playground/flush
releases the pending frame.

Routes:

	GET  /playground/layout
	PUT  /playground/groups/:id?animated=true
	POST /playground/reload?animated=true
	POST /playground/flush
	POST /playground/restore/:name?animated=true

The service also implements archive.Source, so the archive feature can store the live
layout.
*/
package playground
