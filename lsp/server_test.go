package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/pcomb/diag"
)

func TestToProtocol(t *testing.T) {
	tests := []struct {
		name     string
		d        diag.Diagnostic
		line     protocol.UInteger
		char     protocol.UInteger
		severity protocol.DiagnosticSeverity
	}{
		{
			name:     "error",
			d:        diag.Diagnostic{Position: diag.Position{Line: 1, Column: 1}, Message: "boom"},
			line:     0,
			char:     0,
			severity: protocol.DiagnosticSeverityError,
		},
		{
			name:     "warning",
			d:        diag.Diagnostic{Position: diag.Position{Line: 3, Column: 7}, Severity: diag.SeverityWarning, Message: "odd"},
			line:     2,
			char:     6,
			severity: protocol.DiagnosticSeverityWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToProtocol(tt.d)
			if got.Range.Start.Line != tt.line || got.Range.Start.Character != tt.char {
				t.Errorf("Start = %d:%d, want %d:%d", got.Range.Start.Line, got.Range.Start.Character, tt.line, tt.char)
			}
			if got.Range.End.Character != tt.char+1 {
				t.Errorf("End.Character = %d, want %d", got.Range.End.Character, tt.char+1)
			}
			if got.Severity == nil || *got.Severity != tt.severity {
				t.Errorf("Severity = %v, want %v", got.Severity, tt.severity)
			}
			if got.Message != tt.d.Message {
				t.Errorf("Message = %q, want %q", got.Message, tt.d.Message)
			}
		})
	}
}

func TestPublishParams(t *testing.T) {
	s := NewStore()
	doc := s.Update("file:///x.datum", "a = [1, 1-2];\nb = ;")

	params := PublishParams(doc)
	if params.URI != "file:///x.datum" {
		t.Errorf("URI = %q", params.URI)
	}
	if len(params.Diagnostics) != 1 {
		t.Fatalf("len(Diagnostics) = %d, want 1", len(params.Diagnostics))
	}
	if got := params.Diagnostics[0].Range.Start; got.Line != 1 || got.Character != 4 {
		t.Errorf("Start = %d:%d, want 1:4", got.Line, got.Character)
	}

	clean := PublishParams(s.Update("file:///x.datum", "a = 1;"))
	if clean.Diagnostics == nil || len(clean.Diagnostics) != 0 {
		t.Errorf("Diagnostics = %#v, want empty non-nil slice", clean.Diagnostics)
	}
}

func TestNewServer(t *testing.T) {
	s := NewServer("pcomb", "test")
	if s.Store() == nil {
		t.Fatal("Store() = nil")
	}
	if s.handler.TextDocumentDidOpen == nil || s.handler.TextDocumentDidClose == nil {
		t.Error("document handlers not registered")
	}
}
