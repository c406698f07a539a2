package diag

import (
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func TestRenderTextIncludesArgsAndNotes(t *testing.T) {
	d := New("sema_err_cyclic_dependency", SeverityError, 0, 0).WithArg(ArgSymbol, "Foo")
	d.AddNote("sema_note_cyclic_dependency_link").WithArg(ArgSymbol, "Bar")

	text := RenderText(*d)
	if !strings.Contains(text, "sema_err_cyclic_dependency") || !strings.Contains(text, "Foo") {
		t.Fatalf("missing id/arg in text: %q", text)
	}
	if !strings.Contains(text, "sema_note_cyclic_dependency_link") {
		t.Fatalf("missing note in text: %q", text)
	}
}

func TestRenderJSONShape(t *testing.T) {
	d := New("sema_err_unknown_symbol", SeverityError, 0, 0).WithArg(ArgSymbol, "Qux")
	out, err := RenderJSON([]Diagnostic{*d})
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	if got := gjson.Get(out, "0.id").String(); got != "sema_err_unknown_symbol" {
		t.Fatalf("id = %q", got)
	}
	if got := gjson.Get(out, "0.arguments.sym").String(); got != "Qux" {
		t.Fatalf("arguments.sym = %q", got)
	}
}

func TestSinkHasErrors(t *testing.T) {
	s := NewSink()
	if s.HasErrors() {
		t.Fatalf("empty sink must report no errors")
	}
	s.Report(New("sema_warn_unused", SeverityWarning, 0, 0))
	if s.HasErrors() {
		t.Fatalf("warning-only sink must not report errors")
	}
	s.Report(New("sema_err_internal", SeverityError, 0, 0))
	if !s.HasErrors() || s.Count() != 2 {
		t.Fatalf("expected HasErrors true and Count 2, got %v/%d", s.HasErrors(), s.Count())
	}
}
