package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/config"
	"github.com/swglang/swc/internal/diag"
	"github.com/swglang/swc/internal/sourceview"
)

// svRegistry hands out SourceViewRefs for files registered with the
// driver and remembers which *sourceview.SourceView each backs, so a
// reported diagnostic's Tok/SrcView can be turned back into a
// "path:line:col" location for text output.
type svRegistry struct {
	paths []string
	views []*sourceview.SourceView
}

func newSVRegistry() *svRegistry {
	return &svRegistry{}
}

// add registers sv (read from path) and returns its ref. Refs are
// handed out in registration order starting at 1, matching
// arena.SourceViewRef's 1-based, zero-is-invalid convention.
func (r *svRegistry) add(path string, sv *sourceview.SourceView) arena.SourceViewRef {
	r.paths = append(r.paths, path)
	r.views = append(r.views, sv)
	return arena.SourceViewRef(len(r.views))
}

// locate resolves a diagnostic's SrcView/Tok into a human-readable
// "path:line:col" prefix. Returns "" if the ref doesn't resolve (e.g.
// a lexer-time diagnostic reported before this file was registered).
func (r *svRegistry) locate(svRef arena.SourceViewRef, tok arena.TokenRef) string {
	idx := int(svRef) - 1
	if idx < 0 || idx >= len(r.views) {
		return ""
	}
	sv := r.views[idx]
	t := sv.Token(int(tok))
	line, col := sv.Location(t.ByteStart)
	return fmt.Sprintf("%s:%d:%d: ", r.paths[idx], line, col)
}

// report prints diags to stderr (text, each prefixed with its source
// location when the registry can resolve one) or stdout (--json, via
// diag.RenderJSON as-is) and reports whether any SeverityError fired.
func report(diags []diag.Diagnostic, reg *svRegistry) bool {
	if jsonOutput {
		out, err := diag.RenderJSON(diags)
		if err != nil {
			fmt.Fprintf(os.Stderr, "swc: rendering diagnostics: %v\n", err)
		} else {
			fmt.Println(out)
		}
	} else {
		for _, d := range diags {
			fmt.Fprint(os.Stderr, reg.locate(d.SrcView, d.Tok))
			fmt.Fprint(os.Stderr, diag.RenderText(d))
		}
	}
	hasErrors := false
	for _, d := range diags {
		if d.Severity == diag.SeverityError {
			hasErrors = true
			break
		}
	}
	return hasErrors
}

// resolveJobs picks the job.Manager worker count: the --jobs flag if
// set, else the loaded config's Jobs, else one worker per CPU.
func resolveJobs(cfg config.Config) int {
	switch {
	case jobCount > 0:
		return jobCount
	case cfg.Jobs > 0:
		return cfg.Jobs
	default:
		return runtime.NumCPU()
	}
}

func loadConfig() config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "swc: %v\n", err)
		return config.Default()
	}
	return cfg
}
