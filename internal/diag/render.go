package diag

import (
	"bytes"
	"fmt"

	"github.com/tidwall/sjson"
)

// RenderText formats a diagnostic the way the driver CLI prints to
// stderr: "severity: id [kind] arg=value,arg=value" (the "[kind]" part
// only when Kind is set), then one note line per chained note, each
// followed by its span messages, matching the teacher's terse
// single-line error style.
func RenderText(d Diagnostic) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s: %s", d.Severity, d.ID)
	if d.Kind != KindUnclassified {
		fmt.Fprintf(&buf, " [%s]", d.Kind)
	}
	writeArgs(&buf, d.Arguments)
	buf.WriteByte('\n')
	for _, n := range d.Notes {
		fmt.Fprintf(&buf, "  note: %s", n.ID)
		writeArgs(&buf, n.Arguments)
		buf.WriteByte('\n')
		for _, sp := range n.Spans {
			fmt.Fprintf(&buf, "    %s\n", sp.Message)
		}
	}
	return buf.String()
}

func writeArgs(buf *bytes.Buffer, args map[string]string) {
	if len(args) == 0 {
		return
	}
	first := true
	buf.WriteByte(' ')
	for k, v := range args {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		fmt.Fprintf(buf, "%s=%s", k, v)
	}
}

// RenderJSON encodes a batch of diagnostics for `--json` CLI output
// (spec §6.2), built incrementally with tidwall/sjson rather than a
// struct tag walk, so arguments/notes stay flat JSON objects instead
// of Go-map key-order churn.
func RenderJSON(diags []Diagnostic) (string, error) {
	doc := "[]"
	var err error
	for i, d := range diags {
		base := fmt.Sprintf("%d", i)
		doc, err = sjson.Set(doc, base+".id", d.ID)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, base+".severity", d.Severity.String())
		if err != nil {
			return "", err
		}
		if d.Kind != KindUnclassified {
			doc, err = sjson.Set(doc, base+".kind", d.Kind.String())
			if err != nil {
				return "", err
			}
		}
		for k, v := range d.Arguments {
			doc, err = sjson.Set(doc, base+".arguments."+k, v)
			if err != nil {
				return "", err
			}
		}
		for j, n := range d.Notes {
			nbase := fmt.Sprintf("%s.notes.%d", base, j)
			doc, err = sjson.Set(doc, nbase+".id", n.ID)
			if err != nil {
				return "", err
			}
			for k, v := range n.Arguments {
				doc, err = sjson.Set(doc, nbase+".arguments."+k, v)
				if err != nil {
					return "", err
				}
			}
			for k, sp := range n.Spans {
				doc, err = sjson.Set(doc, fmt.Sprintf("%s.spans.%d.message", nbase, k), sp.Message)
				if err != nil {
					return "", err
				}
			}
		}
	}
	return doc, nil
}
