package diag

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestRenderTextSnapshots golden-tests RenderText's output across the
// severity/kind combinations spec §6.4/§7 define, so a future change to
// the "severity: id [kind] arg=value" layout (or to a note's rendering)
// shows up as a diff against a committed snapshot instead of silently
// changing driver output — grounded on the teacher's go-snaps usage in
// internal/interp/fixture_test.go. Each diagnostic here carries at most
// one argument, since Diagnostic.Arguments is a map and writeArgs
// iterates it in map order — anything with multiple args would make
// the snapshot flaky across runs.
func TestRenderTextSnapshots(t *testing.T) {
	cases := map[string]*Diagnostic{
		"plain_error": New("sema_err_unknown_symbol", SeverityError, 0, 0).
			WithArg(ArgSymbol, "Foo"),
		"warning_no_args": New("sema_warn_unused", SeverityWarning, 0, 0),
		"help_with_note": func() *Diagnostic {
			d := New("sema_help_consider_cast", SeverityHelp, 0, 0)
			d.AddNote("sema_note_origin").WithArg(ArgSymbol, "Bar")
			return d
		}(),
		"internal_with_kind": New("sema_err_internal", SeverityError, 0, 0).
			WithKind(KindInternal).
			WithArg(ArgValue, "nil pointer"),
		"overflow_kind": New("sema_err_number_too_big", SeverityError, 0, 0).
			WithKind(KindOverflow),
	}

	for name, d := range cases {
		d := d
		t.Run(name, func(t *testing.T) {
			snaps.MatchSnapshot(t, RenderText(*d))
		})
	}
}
