package lsp

import (
	"net/url"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dhamidi/pcomb/diag"
)

// Store holds the open documents of a session, keyed by URI.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

type Document struct {
	URI         string
	Content     string
	Diagnostics []diag.Diagnostic
}

func NewStore() *Store {
	return &Store{
		docs: make(map[string]*Document),
	}
}

// Update replaces the content of uri and rechecks it.
func (s *Store) Update(uri, content string) *Document {
	doc := &Document{
		URI:         uri,
		Content:     content,
		Diagnostics: diag.Check(displayName(uri), content),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = doc
	return doc
}

func (s *Store) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

func (s *Store) Remove(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// URIs returns the open documents in sorted order.
func (s *Store) URIs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	uris := make([]string, 0, len(s.docs))
	for uri := range s.docs {
		uris = append(uris, uri)
	}
	sort.Strings(uris)
	return uris
}

func displayName(uri string) string {
	if path, err := uriToPath(uri); err == nil {
		return filepath.Base(path)
	}
	return uri
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}
