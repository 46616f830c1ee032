package lsp

import (
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/leapstack-labs/namelint/pkg/lint"
)

// Document represents an open text document in the editor.
type Document struct {
	URI     string // Document URI (file:///path/to/file.tsx)
	Content string // Full document content
	Version int    // Version number, incremented on each change
	Lines   []int  // Byte offsets of line starts for fast position lookups

	// Diagnostics from the last check of this version
	Diagnostics []lint.Diagnostic
}

// DocumentStore manages open documents in memory.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]*Document
}

// NewDocumentStore creates a new document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]*Document),
	}
}

// Open adds or replaces a document in the store.
func (s *DocumentStore) Open(uri string, content string, version int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.documents[uri] = &Document{
		URI:     uri,
		Content: content,
		Version: version,
		Lines:   computeLineOffsets(content),
	}
}

// Close removes a document from the store.
func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.documents, uri)
}

// Get returns a snapshot of the document, or nil when it is not open.
func (s *DocumentStore) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[uri]
	if !ok {
		return nil
	}
	snapshot := *doc
	return &snapshot
}

// Update replaces the content of an open document. Stale versions are ignored.
func (s *DocumentStore) Update(uri string, content string, version int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc, ok := s.documents[uri]; ok && version >= doc.Version {
		doc.Content = content
		doc.Version = version
		doc.Lines = computeLineOffsets(content)
		doc.Diagnostics = nil
	}
}

// SetDiagnostics records the diagnostics computed for a document version.
// Results for an outdated version are dropped.
func (s *DocumentStore) SetDiagnostics(uri string, version int, diags []lint.Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc, ok := s.documents[uri]; ok && doc.Version == version {
		doc.Diagnostics = diags
	}
}

// List returns all open document URIs.
func (s *DocumentStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	uris := make([]string, 0, len(s.documents))
	for uri := range s.documents {
		uris = append(uris, uri)
	}
	return uris
}

// computeLineOffsets calculates byte offsets for each line start.
func computeLineOffsets(content string) []int {
	offsets := []int{0}

	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}

	return offsets
}

// GetLine returns the content of a specific zero-based line.
func (d *Document) GetLine(line int) string {
	if d == nil || line < 0 || line >= len(d.Lines) {
		return ""
	}

	start := d.Lines[line]
	end := len(d.Content)

	if line+1 < len(d.Lines) {
		end = d.Lines[line+1] - 1 // Exclude newline
		if end < start {
			end = start
		}
	}

	return strings.TrimSuffix(d.Content[start:end], "\r")
}

// ToPosition converts a 1-based line and 1-based byte column, as reported by
// the extractor, to an LSP position counted in UTF-16 code units.
func (d *Document) ToPosition(line, column int) Position {
	if line <= 0 {
		return Position{}
	}
	text := d.GetLine(line - 1)
	byteCol := max(column-1, 0)
	if byteCol > len(text) {
		byteCol = len(text)
	}
	return Position{
		Line:      uint32(line - 1),
		Character: uint32(utf16Len(text[:byteCol])),
	}
}

// ByteColumn converts an LSP position to a 1-based line and 1-based byte column.
func (d *Document) ByteColumn(pos Position) (int, int) {
	text := d.GetLine(int(pos.Line))
	units := 0
	for i, r := range text {
		if units >= int(pos.Character) {
			return int(pos.Line) + 1, i + 1
		}
		units += utf16RuneLen(r)
	}
	return int(pos.Line) + 1, len(text) + 1
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16RuneLen(r)
	}
	return n
}

func utf16RuneLen(r rune) int {
	if r >= 0x10000 && r <= utf8.MaxRune {
		return 2
	}
	return 1
}

// URIToPath converts a file:// URI to a file system path.
func URIToPath(uri string) string {
	if !strings.HasPrefix(uri, "file://") {
		return uri
	}
	u, err := url.Parse(uri)
	if err != nil {
		return strings.TrimPrefix(uri, "file://")
	}
	return filepath.FromSlash(u.Path)
}

// PathToURI converts a file system path to a file:// URI.
func PathToURI(path string) string {
	if strings.HasPrefix(path, "file://") {
		return path
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}
