// Package host describes what the generator needs from the environment it runs
// in (an IDE, or the command line) and provides the command-line implementation.
package host

import (
	"context"
	"log/slog"
	"time"

	"github.com/xll-gen/filepacker/internal/fperrors"
)

// Item is a host-side handle for a file that belongs to the project.
type Item interface {
	Path() string
}

// Host is the set of actions the generator asks its environment to perform.
type Host interface {
	// Progress shows a short status line.
	Progress(text string)
	// Error reports a failed run.
	Error(title, text string)
	// Info reports a finished run.
	Info(title, text string)
	// ReloadProject makes the host pick up a changed project manifest.
	ReloadProject(ctx context.Context, projectName string) error
	// FindItem looks path up among the project's items once.
	// ok is false when the host does not know the file (yet).
	FindItem(ctx context.Context, path string) (item Item, ok bool, err error)
	// Regenerate runs the code generator attached to item.
	Regenerate(ctx context.Context, item Item) error
}

// Retry bounds WaitForItem.
type Retry struct {
	Attempts int
	Delay    time.Duration
}

// DefaultRetry matches the pace at which an IDE project system registers new files.
var DefaultRetry = Retry{Attempts: 10, Delay: time.Second}

// WaitForItem polls h until it knows path, at most r.Attempts times with r.Delay
// between lookups. Running out of attempts fails with ResourceRegistrationTimeout.
func WaitForItem(ctx context.Context, h Host, path string, r Retry) (Item, error) {
	attempts := r.Attempts
	if attempts < 1 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		item, ok, err := h.FindItem(ctx, path)
		if err != nil {
			return nil, err
		}
		if ok {
			return item, nil
		}
		if i == attempts-1 {
			break
		}

		slog.Debug("project item not registered yet", "path", path, "attempt", i+1)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.Delay):
		}
	}
	return nil, fperrors.ResourceRegistrationTimeout(path, attempts)
}
