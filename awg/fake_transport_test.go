package awg

import (
	"context"
	"fmt"
	"sync"
)

// fakeTransport is an in-memory node store used as the Transport in tests.
// Queued values are returned by Get ahead of the stored value, one per call,
// which lets tests script changing reads such as compiler status polls.
type fakeTransport struct {
	mu     sync.Mutex
	nodes  map[string]Value
	queued map[string][]Value
	gets   map[string]int
	sets   []string
	setErr error
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		nodes:  make(map[string]Value),
		queued: make(map[string][]Value),
		gets:   make(map[string]int),
	}
}

func (f *fakeTransport) seed(path string, value Value) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nodes[path] = value
}

func (f *fakeTransport) queue(path string, values ...Value) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queued[path] = append(f.queued[path], values...)
}

func (f *fakeTransport) value(path string) (Value, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.nodes[path]
	return value, ok
}

func (f *fakeTransport) getCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gets[path]
}

func (f *fakeTransport) setPaths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	paths := make([]string, len(f.sets))
	copy(paths, f.sets)
	return paths
}

func (f *fakeTransport) Get(_ context.Context, path string) (Value, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets[path]++
	if queued := f.queued[path]; len(queued) > 0 {
		value := queued[0]
		f.queued[path] = queued[1:]
		return value, nil
	}
	value, ok := f.nodes[path]
	if !ok {
		return Value{}, fmt.Errorf("no such node: %s", path)
	}
	return value, nil
}

func (f *fakeTransport) Set(_ context.Context, path string, value Value) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.sets = append(f.sets, path)
	f.nodes[path] = value
	return nil
}
