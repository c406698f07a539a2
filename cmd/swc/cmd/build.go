package cmd

import (
	"fmt"
	"os"

	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/diag"
	"github.com/swglang/swc/internal/job"
	"github.com/swglang/swc/internal/lexer"
	"github.com/swglang/swc/internal/parser"
	"github.com/swglang/swc/internal/sema"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build <file>...",
	Short: "Lex, parse, and run the two-pass semantic analyzer over the given files",
	Long: `build runs the full frontend pipeline over every given file as one
compilation: lexing and parsing happen per file, then the two-pass
semantic analyzer runs all files' decl and use passes concurrently
across the job scheduler's worker pool, so a forward reference or a
constant dependency in one file can resolve against a declaration in
another (spec-level cross-file scope).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBuild,
}

// semaCmd is an alias of build: "sema" names the same pipeline for
// callers who only care about semantic diagnostics, not a future
// codegen step this frontend doesn't implement.
var semaCmd = &cobra.Command{
	Use:   "sema <file>...",
	Short: "Alias of build: lex, parse, and semantically analyze the given files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(semaCmd)
}

func runBuild(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	workers := resolveJobs(cfg)

	mgr := job.NewManager(workers)
	mgr.Start()
	defer mgr.Shutdown()

	prog := sema.NewProgram(mgr)
	reg := newSVRegistry()
	const clientID = job.ClientID(1)

	var allDiags []diag.Diagnostic
	for i, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		sv, lexDiags := lexer.Lex(path, src)
		svRef := reg.add(path, sv)
		for _, d := range lexDiags {
			d.SrcView = svRef
			allDiags = append(allDiags, d)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "%s: lexed %d tokens\n", path, len(sv.Tokens()))
		}

		root, parseDiags := parser.Parse(prog.Ast, prog.Idents, svRef, sv, uint32(i)%arena.ShardCount)
		allDiags = append(allDiags, parseDiags...)

		fileRef := arena.FileRef(i + 1)
		file := sema.NewFileCtx(fileRef, svRef, sv, root)
		sema.ScheduleFile(prog, clientID, file)
	}

	resolveFixedPoint(mgr, prog, clientID)
	job.NewCycleDetector().Check(mgr, clientID, prog.Diags)

	allDiags = append(allDiags, prog.Diags.All()...)

	if report(allDiags, reg) {
		return fmt.Errorf("build failed")
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "build succeeded: %d file(s)\n", len(args))
	}
	return nil
}

// resolveFixedPoint drives the scheduler to a true fixed point before
// cycle detection runs (spec §4.3's 5-step resolution): WaitAll alone
// only guarantees no job is presently Ready/Running, not that every
// Waiting job is stuck — a job parked on a wait key can become
// resolvable once another job elsewhere advances, which itself only
// happens inside a later WaitAll round. So: (1) wake every currently
// Waiting job, (2) wait for the scheduler to quiesce again, (3) if the
// waiting set shrank, loop; once a round makes no progress, (4)
// default every still-waiting `#defined(x)` query to false via
// ResolveDefinedBarrier and wake once more, then (5) settle. Only a
// genuinely stuck wait survives that — cycle detection's job.
func resolveFixedPoint(mgr *job.Manager, prog *sema.Program, clientID job.ClientID) {
	mgr.WaitAll()
	for {
		waiting := mgr.WaitingJobs(clientID)
		if len(waiting) == 0 {
			return
		}
		for _, j := range waiting {
			mgr.Wake(j)
		}
		mgr.WaitAll()
		if after := len(mgr.WaitingJobs(clientID)); after < len(waiting) {
			continue // progress was made; another round may unstick more
		}

		resolvedAny := false
		for _, j := range waiting {
			if j.WaitKind == job.WaitCompilerDefined {
				prog.ResolveDefinedBarrier()
				mgr.Wake(j)
				resolvedAny = true
			}
		}
		if !resolvedAny {
			return // no progress and nothing left to default: genuinely stuck
		}
		mgr.WaitAll()
	}
}
