package hints

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/css-class-hints/css-class-hints/internal/classname"
	"github.com/css-class-hints/css-class-hints/internal/config"
	"github.com/css-class-hints/css-class-hints/internal/lsp"
	"github.com/css-class-hints/css-class-hints/internal/lsp/protocol"
	"github.com/css-class-hints/css-class-hints/internal/stylesheet"
	"github.com/spf13/pflag"
)

const (
	MessageActivated     = "CSS Class Name Hints activated."
	MessageDeactivated   = "CSS Class Name Hints deactivated."
	MessageNotConfigured = "CSS file path is not configured."
)

// ErrNotConfigured is returned when an operation needs the stylesheet path but none is set
var ErrNotConfigured = errors.New("css file path is not configured")

// Extension ties configuration, the stylesheet loader and the class name store
// together and follows the lifecycle of the editor session.
type Extension struct {
	store    *classname.Store
	loader   *stylesheet.Loader
	notifier stylesheet.Notifier
	flags    *pflag.FlagSet

	mu       sync.Mutex
	rootPath string
	client   map[string]interface{}
	config   config.Config
	options  string
	path     string
	watcher  *stylesheet.Watcher
	active   bool
}

// NewExtension creates the extension writing into store. notifier and flags
// may be nil.
func NewExtension(store *classname.Store, notifier stylesheet.Notifier, flags *pflag.FlagSet) *Extension {
	if notifier == nil {
		notifier = stylesheet.LogNotifier{}
	}

	return &Extension{
		store:    store,
		loader:   stylesheet.NewLoader(store, notifier),
		notifier: notifier,
		flags:    flags,
		config:   config.Default(),
	}
}

// Store returns the class name store the extension loads into
func (e *Extension) Store() *classname.Store {
	return e.store
}

// Loader returns the stylesheet loader
func (e *Extension) Loader() *stylesheet.Loader {
	return e.loader
}

// Config returns the configuration currently in effect
func (e *Extension) Config() config.Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.config
}

// Path returns the resolved stylesheet path, empty when none is configured
func (e *Extension) Path() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.path
}

// AppliesTo reports whether class names are completed in the given document
func (e *Extension) AppliesTo(uri, languageID string) bool {
	return e.Config().AppliesTo(uri, languageID)
}

// Activate reads the configuration and starts loading the configured
// stylesheet. Without a configured path nothing is loaded and the store stays
// as it is.
func (e *Extension) Activate(ctx context.Context, rootPath string, clientSettings map[string]interface{}) *stylesheet.Task {
	e.notifier.ShowInfo(ctx, MessageActivated)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.active = true
	e.rootPath = rootPath
	e.client = clientSettings
	e.applyConfig(ctx, e.loadConfig(ctx))

	if e.path == "" {
		e.notifier.ShowError(ctx, MessageNotConfigured)
		return nil
	}

	e.notifier.ShowInfo(ctx, fmt.Sprintf("Loading CSS file from %s", e.path))
	return e.loader.Load(ctx, e.path)
}

// UpdateSettings re-reads the configuration and reloads the stylesheet when its
// path or the extraction options changed. An empty path is ignored. A nil
// settings map keeps the previous client settings.
func (e *Extension) UpdateSettings(ctx context.Context, settings map[string]interface{}) *stylesheet.Task {
	e.mu.Lock()
	defer e.mu.Unlock()

	if settings != nil {
		e.client = settings
	}

	return e.reconfigure(ctx)
}

// reconfigure must be called with e.mu held
func (e *Extension) reconfigure(ctx context.Context) *stylesheet.Task {
	previousPath, previousOptions := e.path, e.options
	e.applyConfig(ctx, e.loadConfig(ctx))

	// Clearing the path keeps serving, watching and reloading the current stylesheet
	if e.path == "" {
		e.path = previousPath
		e.updateWatcher()
		return nil
	}
	if e.path == previousPath && e.options == previousOptions {
		return nil
	}

	e.notifier.ShowInfo(ctx, fmt.Sprintf("Reloading CSS file from %s", e.path))
	return e.loader.Load(ctx, e.path)
}

// FilesChanged reloads the stylesheet when the changes report it as created or
// changed
func (e *Extension) FilesChanged(ctx context.Context, changes []protocol.FileEvent) *stylesheet.Task {
	path := e.Path()
	if path == "" {
		return nil
	}

	for _, change := range changes {
		if change.Type != int(protocol.FileCreated) && change.Type != int(protocol.FileChanged) {
			continue
		}
		if filepath.Clean(lsp.URIToPath(change.URI)) != path {
			continue
		}

		log.Printf("Client reported change of %s", path)
		task, err := e.Reload(ctx)
		if err != nil {
			log.Printf("Failed to reload %s: %v", path, err)
		}
		return task
	}

	return nil
}

// Reload loads the configured stylesheet again
func (e *Extension) Reload(ctx context.Context) (*stylesheet.Task, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.path == "" {
		return nil, ErrNotConfigured
	}

	return e.loader.Load(ctx, e.path), nil
}

// Deactivate stops watching, abandons loads in flight and keeps the store as is
func (e *Extension) Deactivate(ctx context.Context) {
	e.mu.Lock()
	if !e.active {
		e.mu.Unlock()
		return
	}
	e.active = false
	watcher := e.watcher
	e.watcher = nil
	e.mu.Unlock()

	// The watcher callback takes e.mu, close without holding it
	if watcher != nil {
		if err := watcher.Close(); err != nil {
			log.Printf("Failed to close stylesheet watcher: %v", err)
		}
	}
	e.loader.Cancel()

	e.notifier.ShowInfo(ctx, MessageDeactivated)
}

// Initialized implements lsp.WorkspaceHandler
func (e *Extension) Initialized(ctx context.Context, rootPath string, options map[string]interface{}) {
	e.Activate(ctx, rootPath, options)
}

// ConfigurationChanged implements lsp.WorkspaceHandler
func (e *Extension) ConfigurationChanged(ctx context.Context, settings map[string]interface{}) {
	e.UpdateSettings(ctx, settings)
}

// WatchedFilesChanged implements lsp.WorkspaceHandler
func (e *Extension) WatchedFilesChanged(ctx context.Context, changes []protocol.FileEvent) {
	e.FilesChanged(ctx, changes)
}

// Shutdown implements lsp.WorkspaceHandler
func (e *Extension) Shutdown(ctx context.Context) {
	e.Deactivate(ctx)
}

// loadConfig must be called with e.mu held
func (e *Extension) loadConfig(ctx context.Context) config.Config {
	cfg, err := config.Load(config.Sources{
		RootPath: e.rootPath,
		Flags:    e.flags,
		Client:   e.client,
	})
	if err != nil {
		e.notifier.ShowError(ctx, fmt.Sprintf("Could not load configuration: %v", err))
		return e.config
	}

	return cfg
}

// applyConfig must be called with e.mu held
func (e *Extension) applyConfig(ctx context.Context, cfg config.Config) {
	extractor, err := stylesheet.NewExtractor(cfg.Extractor)
	if err != nil {
		e.notifier.ShowError(ctx, fmt.Sprintf("%v, using %s", err, stylesheet.ExtractorRegex))
		cfg.Extractor = stylesheet.ExtractorRegex
		extractor = stylesheet.RegexExtractor{}
	}

	e.loader.SetOptions(stylesheet.Options{
		Extractor:   extractor,
		Deduplicate: cfg.Deduplicate,
	})

	e.config = cfg
	e.options = fmt.Sprintf("%s/%t", cfg.Extractor, cfg.Deduplicate)
	e.path = cfg.ResolvePath(e.rootPath)

	e.updateWatcher()
}

// updateWatcher must be called with e.mu held
func (e *Extension) updateWatcher() {
	if !e.active || !e.config.Watch || e.path == "" {
		if e.watcher != nil {
			if err := e.watcher.Watch(""); err != nil {
				log.Printf("Failed to stop watching: %v", err)
			}
		}
		return
	}

	if e.watcher == nil {
		watcher, err := stylesheet.NewWatcher(e.stylesheetChanged)
		if err != nil {
			log.Printf("Failed to create stylesheet watcher: %v", err)
			return
		}
		e.watcher = watcher
	}

	if err := e.watcher.Watch(e.path); err != nil {
		log.Printf("Failed to watch %s: %v", e.path, err)
	}
}

func (e *Extension) stylesheetChanged(path string) {
	if path != e.Path() {
		return
	}

	log.Printf("Reloading changed stylesheet %s", path)
	if _, err := e.Reload(context.Background()); err != nil {
		log.Printf("Failed to reload %s: %v", path, err)
	}
}
