package highlight

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/bethropolis/kilo/internal/logger"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/python"
)

// Language binds a tree-sitter grammar to the files it highlights.
type Language struct {
	Name       string
	Extensions []string
	Grammar    func() *sitter.Language
	Query      string
}

var (
	registry struct {
		sync.RWMutex
		languages []*Language
		byExt     map[string]*Language
	}
	initOnce sync.Once
)

const goQuery = `
(comment) @comment
(interpreted_string_literal) @string
(raw_string_literal) @string
(rune_literal) @string
(int_literal) @number
(float_literal) @number
(type_identifier) @type
(function_declaration name: (identifier) @function)
(method_declaration name: (field_identifier) @function)
(call_expression function: (identifier) @function.call)
[
  "break" "case" "chan" "const" "continue" "default" "defer" "else"
  "for" "func" "go" "goto" "if" "import" "interface" "map" "package"
  "range" "return" "select" "struct" "switch" "type" "var"
] @keyword
`

const pythonQuery = `
(comment) @comment
(string) @string
(integer) @number
(float) @number
(function_definition name: (identifier) @function)
(class_definition name: (identifier) @type)
[
  "def" "class" "return" "if" "elif" "else" "for" "while" "import"
  "from" "in" "with" "as" "try" "except" "finally" "raise" "lambda"
] @keyword
`

func registerBuiltins() {
	register(&Language{Name: "Go", Extensions: []string{".go"}, Grammar: golang.GetLanguage, Query: goQuery})
	register(&Language{Name: "Python", Extensions: []string{".py", ".pyw"}, Grammar: python.GetLanguage, Query: pythonQuery})
}

func ensureRegistry() {
	initOnce.Do(func() {
		registry.Lock()
		registry.byExt = make(map[string]*Language)
		registry.Unlock()
		registerBuiltins()
	})
}

// Register adds a language. A later registration wins for a shared extension.
func Register(lang *Language) {
	ensureRegistry()
	register(lang)
}

// register must not call ensureRegistry: it runs inside initOnce.
func register(lang *Language) {
	registry.Lock()
	defer registry.Unlock()

	registry.languages = append(registry.languages, lang)
	for _, ext := range lang.Extensions {
		ext = strings.ToLower(ext)
		if existing, ok := registry.byExt[ext]; ok {
			logger.WarnTagf("highlight", "extension %s already registered to %s, overriding with %s", ext, existing.Name, lang.Name)
		}
		registry.byExt[ext] = lang
	}
}

// ForFile returns the language for path, or nil.
func ForFile(path string) *Language {
	ensureRegistry()
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil
	}
	registry.RLock()
	defer registry.RUnlock()
	return registry.byExt[ext]
}
