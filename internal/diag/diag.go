// Package diag implements the diagnostic taxonomy of spec §6: typed,
// data-carrying diagnostics (never raw strings) with stable IDs,
// structured arguments, and attached spans/notes, rendered either as
// human text or as JSON (tidwall/sjson) for tooling consumption.
package diag

import "github.com/swglang/swc/internal/arena"

// Severity is the diagnostic class (spec §6.1/§6.4).
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
	SeverityHelp
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityHelp:
		return "help"
	default:
		return "note"
	}
}

// Kind classifies *why* a diagnostic was raised (spec §7), independent
// of Severity (how loudly it's reported): two errors can share a
// Severity while coming from entirely different stages of the
// pipeline. The zero value, KindUnclassified, is what every
// diagnostic built before this taxonomy existed still carries —
// callers that care about §7's kinds set it explicitly via New's
// WithKind or by constructing through internal/errors.
type Kind uint8

const (
	KindUnclassified Kind = iota
	KindSyntax
	KindResolution
	KindType
	KindOverflow
	KindCycle
	KindCompilerDirective
	KindIO
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindResolution:
		return "resolution"
	case KindType:
		return "type"
	case KindOverflow:
		return "overflow"
	case KindCycle:
		return "cycle"
	case KindCompilerDirective:
		return "compiler-directive"
	case KindIO:
		return "io"
	case KindInternal:
		return "internal"
	default:
		return "unclassified"
	}
}

// Well-known argument keys, matching spec §6.1's Diagnostic::ARG_* family.
const (
	ArgSymbol = "sym"
	ArgType   = "type"
	ArgValue  = "value"
)

// Span anchors a diagnostic (or one of its notes) to a source location.
type Span struct {
	SrcView  arena.SourceViewRef
	Tok      arena.TokenRef
	Message  string
	Severity Severity
}

// Diagnostic is one reported problem: a stable ID, a primary location,
// structured arguments for message formatting, and zero or more notes
// (each itself ID + arguments + an additional span) — grounded on the
// teacher's single-struct diagnostic shape generalized to spec §6's
// richer note/span chaining (needed for cyclic-dependency reports,
// spec §4.3).
type Diagnostic struct {
	ID        string
	Severity  Severity
	Kind      Kind
	SrcView   arena.SourceViewRef
	Tok       arena.TokenRef
	Arguments map[string]string
	Notes     []Note
}

// Note is a secondary diagnostic entry chained onto a Diagnostic (e.g.
// one per edge in a reported dependency cycle).
type Note struct {
	ID        string
	Arguments map[string]string
	Spans     []Span
}

// New starts a Diagnostic with no arguments or notes yet.
func New(id string, sev Severity, srcView arena.SourceViewRef, tok arena.TokenRef) *Diagnostic {
	return &Diagnostic{ID: id, Severity: sev, SrcView: srcView, Tok: tok}
}

// WithKind tags d with its spec §7 kind and returns the receiver, for
// chaining: diag.New(...).WithKind(diag.KindCycle).
func (d *Diagnostic) WithKind(k Kind) *Diagnostic {
	d.Kind = k
	return d
}

// WithArg attaches a formatting argument and returns the receiver, for
// chaining: diag.New(...).WithArg(diag.ArgSymbol, name).
func (d *Diagnostic) WithArg(key, value string) *Diagnostic {
	if d.Arguments == nil {
		d.Arguments = make(map[string]string)
	}
	d.Arguments[key] = value
	return d
}

// AddNote appends a note and returns it so the caller can attach spans.
func (d *Diagnostic) AddNote(id string) *Note {
	d.Notes = append(d.Notes, Note{ID: id})
	return &d.Notes[len(d.Notes)-1]
}

// WithArg mirrors Diagnostic.WithArg for a Note.
func (n *Note) WithArg(key, value string) *Note {
	if n.Arguments == nil {
		n.Arguments = make(map[string]string)
	}
	n.Arguments[key] = value
	return n
}

// AddSpan appends a location to a note (spec §4.3 cyclic-dependency
// notes: one span per edge in the cycle).
func (n *Note) AddSpan(srcView arena.SourceViewRef, tok arena.TokenRef, message string, sev Severity) {
	n.Spans = append(n.Spans, Span{SrcView: srcView, Tok: tok, Message: message, Severity: sev})
}
