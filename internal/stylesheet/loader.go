package stylesheet

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/css-class-hints/css-class-hints/internal/classname"
)

// ErrSuperseded is reported by a load that finished after a newer load was started
var ErrSuperseded = errors.New("load superseded by a newer request")

// Notifier shows messages to the user
type Notifier interface {
	ShowInfo(ctx context.Context, message string)
	ShowError(ctx context.Context, message string)
}

// LogNotifier writes messages to the process log only
type LogNotifier struct{}

func (LogNotifier) ShowInfo(_ context.Context, message string)  { log.Print(message) }
func (LogNotifier) ShowError(_ context.Context, message string) { log.Print(message) }

// Options control how loaded stylesheets are turned into class names
type Options struct {
	Extractor   Extractor
	Deduplicate bool
}

// Loader reads stylesheets in the background and replaces the store contents
// with the extracted class names. Every Load supersedes the previous one.
type Loader struct {
	store    *classname.Store
	notifier Notifier

	mu         sync.Mutex
	options    Options
	generation uint64
	cancel     context.CancelFunc
	lastPath   string
}

// NewLoader creates a loader writing into store. A nil notifier logs messages.
func NewLoader(store *classname.Store, notifier Notifier) *Loader {
	if notifier == nil {
		notifier = LogNotifier{}
	}

	return &Loader{
		store:    store,
		notifier: notifier,
		options:  Options{Extractor: RegexExtractor{}},
	}
}

// SetOptions changes the options used by subsequent loads
func (l *Loader) SetOptions(options Options) {
	if options.Extractor == nil {
		options.Extractor = RegexExtractor{}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.options = options
}

// Generation returns the generation of the most recently started load
func (l *Loader) Generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.generation
}

// Path returns the path of the most recently started load
func (l *Loader) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastPath
}

// Load starts reading path and returns without waiting for the read. Any load
// still in flight is cancelled and its result is discarded.
func (l *Loader) Load(ctx context.Context, path string) *Task {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.generation++
	taskCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.lastPath = path

	task := &Task{
		Path:       path,
		Generation: l.generation,
		done:       make(chan struct{}),
	}
	options := l.options
	l.mu.Unlock()

	go l.run(ctx, taskCtx, cancel, task, options)

	return task
}

// Cancel stops the load in flight, if any. Its result will be discarded.
func (l *Loader) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.generation++
}

func (l *Loader) run(notifyCtx, ctx context.Context, cancel context.CancelFunc, task *Task, options Options) {
	defer close(task.done)
	defer cancel()

	content, readErr := os.ReadFile(task.Path)

	var names []string
	if readErr == nil && ctx.Err() == nil {
		names = options.Extractor.Extract(content)
		if options.Deduplicate {
			names = classname.Deduplicate(names)
		}
	}

	if err := l.commit(ctx, task, names, readErr); err != nil {
		task.err = err
		if readErr != nil && !errors.Is(err, ErrSuperseded) {
			l.notifier.ShowError(notifyCtx, fmt.Sprintf("Could not read CSS file: %v", readErr))
		}
		return
	}

	task.names = names
	log.Printf("Loaded %d class names from %s", len(names), task.Path)
}

// commit publishes the result of task unless a newer load was started meanwhile
func (l *Loader) commit(ctx context.Context, task *Task, names []string, readErr error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if task.Generation != l.generation {
		return ErrSuperseded
	}
	if readErr != nil {
		return fmt.Errorf("could not read CSS file: %w", readErr)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	l.store.Replace(names)
	return nil
}

// Task is the handle of a single Load call
type Task struct {
	Path       string
	Generation uint64

	done  chan struct{}
	err   error
	names []string
}

// Done is closed once the task finished, successfully or not
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finished or ctx is done
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the error of a finished task
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// ClassNames returns the names the task stored, nil unless it succeeded
func (t *Task) ClassNames() []string {
	select {
	case <-t.done:
		return t.names
	default:
		return nil
	}
}
