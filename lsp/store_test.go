package lsp

import (
	"reflect"
	"sync"
	"testing"
)

func TestStoreUpdate(t *testing.T) {
	s := NewStore()

	doc := s.Update("file:///tmp/a.datum", "a = 1;")
	if len(doc.Diagnostics) != 0 {
		t.Errorf("Diagnostics = %v, want none", doc.Diagnostics)
	}

	doc = s.Update("file:///tmp/a.datum", "a = ;")
	if len(doc.Diagnostics) != 1 {
		t.Fatalf("len(Diagnostics) = %d, want 1", len(doc.Diagnostics))
	}
	if got := doc.Diagnostics[0].Position.Filename; got != "a.datum" {
		t.Errorf("Filename = %q, want a.datum", got)
	}
	if got := s.Get("file:///tmp/a.datum"); got != doc {
		t.Error("Get() did not return the latest document")
	}
}

func TestStoreRemove(t *testing.T) {
	s := NewStore()
	s.Update("file:///b", "b = 1;")
	s.Update("file:///a", "a = 1;")

	if got, want := s.URIs(), []string{"file:///a", "file:///b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("URIs() = %v, want %v", got, want)
	}

	s.Remove("file:///a")
	if s.Get("file:///a") != nil {
		t.Error("Get() after Remove() != nil")
	}
	if got, want := s.URIs(), []string{"file:///b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("URIs() = %v, want %v", got, want)
	}
}

func TestStoreConcurrentUpdates(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update("file:///shared", "a = [1, 2];")
			s.Get("file:///shared")
		}()
	}
	wg.Wait()

	if len(s.URIs()) != 1 {
		t.Errorf("URIs() = %v, want one document", s.URIs())
	}
}

func TestURIToPath(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"file:///home/user/a.datum", "/home/user/a.datum"},
		{"file:///home/user/with%20space.datum", "/home/user/with space.datum"},
		{"untitled:1", "untitled:1"},
	}

	for _, tt := range tests {
		got, err := uriToPath(tt.uri)
		if err != nil {
			t.Fatalf("uriToPath(%q) error = %v", tt.uri, err)
		}
		if got != tt.want {
			t.Errorf("uriToPath(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}
