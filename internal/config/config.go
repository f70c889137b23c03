package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/css-class-hints/css-class-hints/internal/settings"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	// Section is the settings section all options live in
	Section = "cssClassNameHints"
	// FileName is the optional per-workspace config file
	FileName = ".cssclasshints.yaml"
	// EnvPrefix prefixes all environment variables read by Load
	EnvPrefix = "CSS_CLASS_HINTS_"
)

const (
	KeyCSSFilePath      = Section + ".cssFilePath"
	KeyExtractor        = Section + ".extractor"
	KeyDeduplicate      = Section + ".deduplicate"
	KeyWatch            = Section + ".watch"
	KeyLanguages        = Section + ".languages"
	KeyDocumentPatterns = Section + ".documentPatterns"
)

// Config holds the resolved options of the server
type Config struct {
	CSSFilePath      string
	Extractor        string
	Deduplicate      bool
	Watch            bool
	Languages        []string
	DocumentPatterns []string
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		CSSFilePath:      "",
		Extractor:        "regex",
		Deduplicate:      false,
		Watch:            true,
		Languages:        []string{"html", "typescriptreact", "javascriptreact"},
		DocumentPatterns: []string{"**/*.html", "**/*.jsx", "**/*.tsx"},
	}
}

// Sources are the inputs configuration is layered from
type Sources struct {
	// RootPath is the workspace root, used to find the settings and config
	// files. Empty means the working directory.
	RootPath string
	// Flags are the command line flags, only explicitly set flags are used
	Flags *pflag.FlagSet
	// Client holds settings sent by the editor, either nested under Section or bare
	Client map[string]interface{}
}

// envKeys maps environment variables (without prefix) to config keys
var envKeys = map[string]string{
	"CSS_FILE_PATH":     KeyCSSFilePath,
	"EXTRACTOR":         KeyExtractor,
	"DEDUPLICATE":       KeyDeduplicate,
	"WATCH":             KeyWatch,
	"LANGUAGES":         KeyLanguages,
	"DOCUMENT_PATTERNS": KeyDocumentPatterns,
}

// flagKeys maps command line flags to config keys
var flagKeys = map[string]string{
	"css-file-path": KeyCSSFilePath,
	"extractor":     KeyExtractor,
	"deduplicate":   KeyDeduplicate,
	"watch":         KeyWatch,
}

// Load layers configuration with precedence:
// client > flags > env > config file > workspace settings > defaults.
func Load(sources Sources) (Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaultValues(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("loading defaults: %w", err)
	}

	// 2. Workspace settings (.vscode/settings.json), skipped when unreadable
	values, err := settings.Read(sources.RootPath, Section)
	if err != nil {
		log.Printf("Ignoring workspace settings: %v", err)
	} else if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return Config{}, fmt.Errorf("loading workspace settings: %w", err)
	}

	// 3. Config file
	configPath := filepath.Join(sources.RootPath, FileName)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 4. Environment variables (CSS_CLASS_HINTS_* prefix)
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return Config{}, fmt.Errorf("loading environment variables: %w", err)
	}

	// 5. CLI flags (only flags that were explicitly set)
	if sources.Flags != nil {
		provider := posflag.ProviderWithFlag(sources.Flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(sources.Flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return Config{}, fmt.Errorf("loading command flags: %w", err)
		}
	}

	// 6. Settings sent by the editor
	if len(sources.Client) > 0 {
		if err := k.Load(confmap.Provider(clientValues(sources.Client), "."), nil); err != nil {
			return Config{}, fmt.Errorf("loading client settings: %w", err)
		}
	}

	return build(k), nil
}

// envValue turns CSS_CLASS_HINTS_CSS_FILE_PATH into cssClassNameHints.cssFilePath.
// Unknown variables are ignored, list values are comma separated.
func envValue(name, value string) (string, interface{}) {
	key, ok := envKeys[strings.TrimPrefix(name, EnvPrefix)]
	if !ok {
		return "", nil
	}

	if key == KeyLanguages || key == KeyDocumentPatterns {
		return key, splitList(value)
	}

	return key, value
}

func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func clientValues(client map[string]interface{}) map[string]interface{} {
	if nested, ok := client[Section].(map[string]interface{}); ok {
		return map[string]interface{}{Section: nested}
	}

	for key := range client {
		if strings.HasPrefix(key, Section+".") {
			return client
		}
	}

	return map[string]interface{}{Section: client}
}

func defaultValues() map[string]interface{} {
	defaults := Default()

	return map[string]interface{}{
		KeyCSSFilePath:      defaults.CSSFilePath,
		KeyExtractor:        defaults.Extractor,
		KeyDeduplicate:      defaults.Deduplicate,
		KeyWatch:            defaults.Watch,
		KeyLanguages:        defaults.Languages,
		KeyDocumentPatterns: defaults.DocumentPatterns,
	}
}

func build(k *koanf.Koanf) Config {
	defaults := Default()

	config := Config{
		CSSFilePath:      strings.TrimSpace(k.String(KeyCSSFilePath)),
		Extractor:        k.String(KeyExtractor),
		Deduplicate:      k.Bool(KeyDeduplicate),
		Watch:            k.Bool(KeyWatch),
		Languages:        k.Strings(KeyLanguages),
		DocumentPatterns: k.Strings(KeyDocumentPatterns),
	}

	if config.Extractor == "" {
		config.Extractor = defaults.Extractor
	}

	return config
}

// ResolvePath returns the absolute stylesheet path. Relative paths are resolved
// against root, or the working directory when root is empty. An unset path
// resolves to "".
func (c Config) ResolvePath(root string) string {
	if c.CSSFilePath == "" {
		return ""
	}

	path := c.CSSFilePath
	if !filepath.IsAbs(path) && root != "" {
		path = filepath.Join(root, path)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}

	return absPath
}

// AppliesTo reports whether completions are offered in the given document.
// The language id decides when the client sent one, otherwise the path of the
// document URI is matched against the document patterns.
func (c Config) AppliesTo(uri, languageID string) bool {
	if languageID != "" {
		for _, language := range c.Languages {
			if language == languageID {
				return true
			}
		}
		return false
	}

	path := filepath.ToSlash(strings.TrimPrefix(uri, "file://"))
	for _, pattern := range c.DocumentPatterns {
		if matched, _ := doublestar.Match(pattern, strings.TrimPrefix(path, "/")); matched {
			return true
		}
	}

	return false
}
