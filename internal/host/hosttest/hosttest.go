// Package hosttest provides a recording Host for tests.
package hosttest

import (
	"context"
	"os"
	"sync"

	"github.com/xll-gen/filepacker/internal/host"
	"github.com/xll-gen/filepacker/internal/resx"
)

type item string

func (i item) Path() string { return string(i) }

// Message is one notification the host received.
type Message struct {
	Kind  string
	Title string
	Text  string
}

// Recorder records every call. FindItem succeeds once the file exists and
// MissLookups lookups have been answered negatively; Regenerate writes the
// designer file the same way the CLI host does.
type Recorder struct {
	mu sync.Mutex

	// MissLookups makes the first n FindItem calls report an unknown item.
	MissLookups int
	// ResourceNamespace is passed to the designer generator.
	ResourceNamespace string

	Messages    []Message
	Reloads     []string
	Lookups     []string
	Regenerated []string
}

var _ host.Host = (*Recorder)(nil)

func (r *Recorder) Progress(text string) { r.add(Message{Kind: "progress", Text: text}) }

func (r *Recorder) Error(title, text string) { r.add(Message{Kind: "error", Title: title, Text: text}) }

func (r *Recorder) Info(title, text string) { r.add(Message{Kind: "info", Title: title, Text: text}) }

func (r *Recorder) add(m Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, m)
}

func (r *Recorder) ReloadProject(_ context.Context, projectName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Reloads = append(r.Reloads, projectName)
	return nil
}

func (r *Recorder) FindItem(_ context.Context, path string) (host.Item, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Lookups = append(r.Lookups, path)
	if r.MissLookups > 0 {
		r.MissLookups--
		return nil, false, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, false, nil
	}
	return item(path), true, nil
}

func (r *Recorder) Regenerate(_ context.Context, it host.Item) error {
	r.mu.Lock()
	r.Regenerated = append(r.Regenerated, it.Path())
	ns := r.ResourceNamespace
	r.mu.Unlock()

	if ns == "" {
		ns = "Test.Properties"
	}
	_, err := resx.GenerateDesigner(it.Path(), ns)
	return err
}

// Kinds returns the kinds of all recorded messages in order.
func (r *Recorder) Kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.Messages))
	for _, m := range r.Messages {
		out = append(out, m.Kind)
	}
	return out
}
