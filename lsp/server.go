// Package lsp serves datum diagnostics over the Language Server Protocol.
package lsp

import (
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/pcomb/diag"
)

type Server struct {
	name    string
	version string
	store   *Store
	handler protocol.Handler
	server  *server.Server
	log     commonlog.Logger
}

func NewServer(name, version string) *Server {
	s := &Server{
		name:    name,
		version: version,
		store:   NewStore(),
		log:     commonlog.GetLogger("pcomb.lsp"),
	}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,
		TextDocumentDidSave:   s.textDocumentDidSave,
	}

	s.server = server.NewServer(&s.handler, name, false)

	return s
}

func (s *Server) Store() *Store {
	return s.store
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    s.name,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	s.log.Infof("%s %s initialized", s.name, s.version)
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.check(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.check(ctx, params.TextDocument.URI, whole.Text)
	}
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		s.check(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.store.Remove(params.TextDocument.URI)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (s *Server) check(ctx *glsp.Context, uri protocol.DocumentUri, content string) {
	doc := s.store.Update(uri, content)
	s.log.Debugf("%s: %d diagnostics", uri, len(doc.Diagnostics))
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, PublishParams(doc))
}

// PublishParams converts the diagnostics of doc into a
// textDocument/publishDiagnostics notification.
func PublishParams(doc *Document) protocol.PublishDiagnosticsParams {
	diagnostics := make([]protocol.Diagnostic, 0, len(doc.Diagnostics))
	for _, d := range doc.Diagnostics {
		diagnostics = append(diagnostics, ToProtocol(d))
	}
	return protocol.PublishDiagnosticsParams{
		URI:         doc.URI,
		Diagnostics: diagnostics,
	}
}

// ToProtocol converts a diagnostic to LSP form. LSP positions are 0-based;
// the diagnostic covers one character.
func ToProtocol(d diag.Diagnostic) protocol.Diagnostic {
	start := protocol.Position{
		Line:      protocol.UInteger(d.Position.Line - 1),
		Character: protocol.UInteger(d.Position.Column - 1),
	}
	end := start
	end.Character++

	severity := protocol.DiagnosticSeverityError
	if d.Severity == diag.SeverityWarning {
		severity = protocol.DiagnosticSeverityWarning
	}
	source := "pcomb"

	return protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: end},
		Severity: &severity,
		Source:   &source,
		Message:  d.Message,
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
