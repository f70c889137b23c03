package hints

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/css-class-hints/css-class-hints/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func rawArgs(t *testing.T, v interface{}) *json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	raw := json.RawMessage(data)
	return &raw
}

func TestGetCommands(t *testing.T) {
	extension, _ := newExtension(t)

	commands := extension.GetCommands(context.Background())
	assert.Contains(t, commands, CommandReload)
	assert.Contains(t, commands, CommandClassNames)
	assert.Contains(t, commands, CommandSetCSSFilePath)
}

func TestReloadCommand(t *testing.T) {
	root := t.TempDir()
	stylesheetPath := filepath.Join(root, "styles.css")
	writeFile(t, stylesheetPath, ".a { }")

	extension, _ := newExtension(t)
	require.NoError(t, waitTask(t, extension.Activate(context.Background(), root, clientSettings(map[string]interface{}{
		"cssFilePath": "styles.css",
		"watch":       false,
	}))))

	writeFile(t, stylesheetPath, ".a { } .b { }")

	result, err := extension.GetCommands(context.Background())[CommandReload](context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, ClassNamesResult{
		Path:       stylesheetPath,
		Generation: 2,
		ClassNames: []string{"a", "b"},
	}, result)
	assert.Equal(t, []string{"a", "b"}, extension.Store().Names())
}

func TestReloadCommand_NotConfigured(t *testing.T) {
	extension, notifier := newExtension(t)
	extension.Activate(context.Background(), t.TempDir(), nil)

	_, err := extension.GetCommands(context.Background())[CommandReload](context.Background(), nil)

	assert.ErrorIs(t, err, ErrNotConfigured)
	messages := notifier.Messages()
	assert.Equal(t, errorMessage(MessageNotConfigured), messages[len(messages)-1])
}

func TestClassNamesCommand(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "styles.css"), ".x { } .y { }")

	extension, _ := newExtension(t)
	require.NoError(t, waitTask(t, extension.Activate(context.Background(), root, clientSettings(map[string]interface{}{
		"cssFilePath": "styles.css",
	}))))

	result, err := extension.GetCommands(context.Background())[CommandClassNames](context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, ClassNamesResult{
		Path:       filepath.Join(root, "styles.css"),
		Generation: 1,
		ClassNames: []string{"x", "y"},
	}, result)
}

func TestSetCSSFilePathCommand(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "dist", "app.css"), ".configured { }")

	extension, _ := newExtension(t)
	extension.Activate(context.Background(), root, nil)

	command := extension.GetCommands(context.Background())[CommandSetCSSFilePath]
	result, err := command(context.Background(), rawArgs(t, map[string]string{"path": "dist/app.css"}))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "dist", "app.css"), result.(map[string]interface{})["path"])

	data, err := os.ReadFile(settings.Path(root))
	require.NoError(t, err)
	assert.Equal(t, "dist/app.css", gjson.GetBytes(data, `cssClassNameHints\.cssFilePath`).String())

	require.Eventually(t, func() bool {
		names := extension.Store().Names()
		return len(names) == 1 && names[0] == "configured"
	}, 5*time.Second, 20*time.Millisecond)
}

func TestSetCSSFilePathCommand_InvalidArguments(t *testing.T) {
	extension, _ := newExtension(t)
	command := extension.GetCommands(context.Background())[CommandSetCSSFilePath]

	_, err := command(context.Background(), nil)
	assert.Error(t, err)

	_, err = command(context.Background(), rawArgs(t, map[string]string{"path": " "}))
	assert.Error(t, err)

	_, err = command(context.Background(), rawArgs(t, []string{"dist/app.css"}))
	assert.Error(t, err)
}
