// Package mainloop runs functions on one dedicated goroutine.
//
// Widgets and the section adapter are bound to the goroutine that created them. A Loop
// owns such a goroutine: HTTP handlers and other callers hand their work to it with Do
// or Post instead of touching the adapter directly.
//
//	loop := mainloop.New(log)
//	defer loop.Close()
//
//	var a *adapter.Adapter
//	_ = loop.Do(ctx, func() { a = adapter.New(view, view, cfg, log) })
//	_ = loop.Do(ctx, func() { a.ReloadData(true, nil) })
package mainloop

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/petermattis/goid"
	"go.uber.org/zap"
)

// ErrClosed is returned when work is submitted to a closed loop.
var ErrClosed = errors.New("main loop closed")

// Loop executes submitted functions one at a time, in submission order, on the goroutine
// it started.
type Loop struct {
	log   *zap.Logger
	tasks chan func()
	done  chan struct{}
	ready chan struct{}
	id    int64

	mu     sync.RWMutex
	closed bool
	once   sync.Once
}

// New starts a loop.
func New(log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Loop{
		log:   log.Named("mainloop"),
		tasks: make(chan func(), 64),
		done:  make(chan struct{}),
		ready: make(chan struct{}),
	}
	go l.run()
	<-l.ready
	return l
}

func (l *Loop) run() {
	defer close(l.done)
	l.id = goid.Get()
	close(l.ready)

	for task := range l.tasks {
		l.execute(task)
	}
}

// execute runs task, converting a panic into a logged error so that the loop survives.
func (l *Loop) execute(task func()) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("task panicked", zap.Any("panic", r))
		}
	}()
	task()
}

// ID returns the goroutine id of the loop.
func (l *Loop) ID() int64 {
	return l.id
}

// OnLoop reports whether the caller runs on the loop goroutine.
func (l *Loop) OnLoop() bool {
	return goid.Get() == l.id
}

// Post queues fn without waiting for it.
func (l *Loop) Post(fn func()) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return ErrClosed
	}
	l.tasks <- fn
	return nil
}

// Do runs fn on the loop and waits for it to return. Called from the loop itself, fn
// runs inline. A panic in fn is returned as an error.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	if l.OnLoop() {
		return call(fn)
	}

	result := make(chan error, 1)
	if err := l.Post(func() { result <- call(fn) }); err != nil {
		return err
	}

	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func call(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("task panicked: %w", e)
				return
			}
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	fn()
	return nil
}

// Close stops accepting work, runs the queued tasks and waits for the loop to exit.
func (l *Loop) Close() {
	l.once.Do(func() {
		l.mu.Lock()
		l.closed = true
		close(l.tasks)
		l.mu.Unlock()
	})
	<-l.done
}
