package hints

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/css-class-hints/css-class-hints/internal/config"
	"github.com/css-class-hints/css-class-hints/internal/lsp"
	"github.com/css-class-hints/css-class-hints/internal/settings"
)

const (
	CommandReload         = "cssClassNameHints/reload"
	CommandClassNames     = "cssClassNameHints/classNames"
	CommandSetCSSFilePath = "cssClassNameHints/setCssFilePath"
)

// ClassNamesResult is returned by the reload and classNames commands
type ClassNamesResult struct {
	Path       string   `json:"path"`
	Generation uint64   `json:"generation"`
	ClassNames []string `json:"classNames"`
}

// GetCommands implements lsp.CommandProvider
func (e *Extension) GetCommands(ctx context.Context) map[string]lsp.CommandFunc {
	return map[string]lsp.CommandFunc{
		CommandReload:         e.reloadCommand,
		CommandClassNames:     e.classNamesCommand,
		CommandSetCSSFilePath: e.setCSSFilePathCommand,
	}
}

func (e *Extension) reloadCommand(ctx context.Context, args *json.RawMessage) (interface{}, error) {
	task, err := e.Reload(ctx)
	if errors.Is(err, ErrNotConfigured) {
		e.notifier.ShowError(ctx, MessageNotConfigured)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if err := task.Wait(ctx); err != nil {
		return nil, err
	}

	return ClassNamesResult{
		Path:       task.Path,
		Generation: task.Generation,
		ClassNames: task.ClassNames(),
	}, nil
}

func (e *Extension) classNamesCommand(ctx context.Context, args *json.RawMessage) (interface{}, error) {
	return ClassNamesResult{
		Path:       e.Path(),
		Generation: e.loader.Generation(),
		ClassNames: e.store.Names(),
	}, nil
}

func (e *Extension) setCSSFilePathCommand(ctx context.Context, args *json.RawMessage) (interface{}, error) {
	var params struct {
		Path string `json:"path"`
	}

	if args == nil {
		return nil, fmt.Errorf("missing arguments for setCssFilePath")
	}
	if err := json.Unmarshal(*args, &params); err != nil {
		return nil, fmt.Errorf("invalid arguments for setCssFilePath: %w", err)
	}

	params.Path = strings.TrimSpace(params.Path)
	if params.Path == "" {
		return nil, fmt.Errorf("invalid arguments for setCssFilePath: path is empty")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := settings.Write(e.rootPath, config.KeyCSSFilePath, params.Path); err != nil {
		return nil, err
	}

	task := e.reconfigure(ctx)

	result := map[string]interface{}{
		"path": e.path,
	}
	if task != nil {
		result["generation"] = task.Generation
	}

	return result, nil
}
