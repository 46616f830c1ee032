package lsp

import (
	"context"
	"errors"

	"github.com/leapstack-labs/namelint/internal/extract"
	"github.com/leapstack-labs/namelint/pkg/core"
	"github.com/leapstack-labs/namelint/pkg/lint"
	"github.com/leapstack-labs/namelint/pkg/naming"
)

// diagnosticSource is reported as the source of every diagnostic.
const diagnosticSource = "namelint"

// publishDiagnostics checks an open document and publishes the result.
// Documents the project would not lint get an empty diagnostic list.
func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.documents.Get(uri)
	if doc == nil {
		return
	}

	path := URIToPath(uri)
	eng := s.getEngine()

	var diags []lint.Diagnostic
	if extract.IsTargetFile(path) && eng.Selected(path) {
		var err error
		diags, err = eng.LintSource(ctx, path, []byte(doc.Content))
		if err != nil {
			s.logger.Warn("Check failed", "uri", uri, "error", err)
			if errors.Is(err, naming.ErrUnknownCategory) {
				s.sendNotification("window/showMessage", &ShowMessageParams{
					Type:    MessageTypeError,
					Message: "namelint: " + err.Error(),
				})
			}
			return
		}
	}

	s.documents.SetDiagnostics(uri, doc.Version, diags)

	version := doc.Version
	s.sendNotification("textDocument/publishDiagnostics", &PublishDiagnosticsParams{
		URI:         uri,
		Version:     &version,
		Diagnostics: toLSPDiagnostics(doc, diags),
	})
	s.logger.Debug("Published diagnostics", "uri", uri, "count", len(diags))
}

// clearDiagnostics removes all diagnostics for a document.
func (s *Server) clearDiagnostics(uri string) {
	s.sendNotification("textDocument/publishDiagnostics", &PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []Diagnostic{},
	})
}

// toLSPDiagnostics converts lint diagnostics to protocol diagnostics.
func toLSPDiagnostics(doc *Document, diags []lint.Diagnostic) []Diagnostic {
	out := make([]Diagnostic, 0, len(diags))
	for _, d := range diags {
		diag := Diagnostic{
			Range:    diagnosticRange(doc, d),
			Severity: toLSPSeverity(d.Severity),
			Code:     d.RuleID,
			Source:   diagnosticSource,
			Message:  d.Message,
		}
		if d.Suggestion != "" {
			diag.Message += " (did you mean " + d.Suggestion + "?)"
		}
		if d.DocumentationURL != "" {
			diag.CodeDescription = &CodeDescription{Href: d.DocumentationURL}
		}
		out = append(out, diag)
	}
	return out
}

// diagnosticRange covers the identifier span.
func diagnosticRange(doc *Document, d lint.Diagnostic) Range {
	start := doc.ToPosition(d.Pos.Line, d.Pos.Column)
	end := start
	if d.EndPos.Line > 0 {
		end = doc.ToPosition(d.EndPos.Line, d.EndPos.Column)
	}
	return Range{Start: start, End: end}
}

func toLSPSeverity(sev core.Severity) DiagnosticSeverity {
	switch sev {
	case core.SeverityError:
		return DiagnosticSeverityError
	case core.SeverityWarning:
		return DiagnosticSeverityWarning
	case core.SeverityInfo:
		return DiagnosticSeverityInformation
	default:
		return DiagnosticSeverityHint
	}
}
