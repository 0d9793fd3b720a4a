// Package highlight computes syntax highlight ranges with tree-sitter.
package highlight

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bethropolis/kilo/internal/logger"
	"github.com/bethropolis/kilo/internal/utils"
	sitter "github.com/smacker/go-tree-sitter"
)

// Kind classifies a highlighted range.
type Kind int

const (
	KindNone Kind = iota
	KindComment
	KindString
	KindNumber
	KindType
	KindFunction
	KindKeyword
)

var kindNames = map[string]Kind{
	"comment":  KindComment,
	"string":   KindString,
	"number":   KindNumber,
	"type":     KindType,
	"function": KindFunction,
	"keyword":  KindKeyword,
}

func (k Kind) String() string {
	for name, kind := range kindNames {
		if kind == k {
			return name
		}
	}
	return "none"
}

// kindForCapture maps "function.call" and friends to their base kind.
func kindForCapture(name string) Kind {
	name = strings.TrimPrefix(name, "@")
	if i := strings.IndexByte(name, '.'); i != -1 {
		name = name[:i]
	}
	return kindNames[name]
}

// Range is a highlighted span [Start, End) in rune offsets.
type Range struct {
	Start, End int
	Kind       Kind
}

// Highlighter parses documents and runs highlight queries. It is safe for
// concurrent use.
type Highlighter struct {
	mu      sync.Mutex
	parser  *sitter.Parser
	queries map[*Language]*sitter.Query
}

// NewHighlighter creates a highlighter.
func NewHighlighter() *Highlighter {
	return &Highlighter{
		parser:  sitter.NewParser(),
		queries: make(map[*Language]*sitter.Query),
	}
}

func (h *Highlighter) query(lang *Language) (*sitter.Query, error) {
	if q, ok := h.queries[lang]; ok {
		return q, nil
	}
	q, err := sitter.NewQuery([]byte(lang.Query), lang.Grammar())
	if err != nil {
		return nil, fmt.Errorf("highlight query for %s: %w", lang.Name, err)
	}
	h.queries[lang] = q
	return q, nil
}

// Highlight returns the ranges for text, chosen by the extension of path.
// Files without a registered language produce no ranges.
func (h *Highlighter) Highlight(ctx context.Context, path, text string) ([]Range, error) {
	lang := ForFile(path)
	if lang == nil {
		return nil, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	q, err := h.query(lang)
	if err != nil {
		return nil, err
	}
	h.parser.SetLanguage(lang.Grammar())
	src := []byte(text)
	tree, err := h.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	defer tree.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, tree.RootNode())

	offsets := utils.RuneOffsets(src)
	var ranges []Range
	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range match.Captures {
			kind := kindForCapture(q.CaptureNameForId(c.Index))
			if kind == KindNone {
				continue
			}
			start, end := int(c.Node.StartByte()), int(c.Node.EndByte())
			if end > len(src) {
				end = len(src)
			}
			if start >= end {
				continue
			}
			ranges = append(ranges, Range{Start: offsets[start], End: offsets[end], Kind: kind})
		}
	}
	sort.SliceStable(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })
	logger.DebugTagf("highlight", "%s: %d ranges", lang.Name, len(ranges))
	return ranges, nil
}

// Spans expands ranges into a per-rune kind slice of length n. Later ranges
// win where they overlap.
func Spans(ranges []Range, n int) []Kind {
	kinds := make([]Kind, n)
	for _, r := range ranges {
		end := min(r.End, n)
		for i := max(r.Start, 0); i < end; i++ {
			kinds[i] = r.Kind
		}
	}
	return kinds
}
