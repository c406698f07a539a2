package printer_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/swglang/swc/internal/printer"
)

// TestPrintSnapshots golden-tests the printer's full rendering of a
// handful of representative programs, covering struct/enum/alias
// declarations, compiler-if branches, and bitwise/arithmetic operator
// mixes together rather than one assertion per shape — grounded on the
// teacher's internal/interp/fixture_test.go, which drives go-snaps the
// same way: feed a real program through the pipeline and let the
// snapshot capture the whole rendered shape instead of a hand-written
// expected string.
func TestPrintSnapshots(t *testing.T) {
	programs := map[string]string{
		"struct_and_enum": `
struct Point { x: s32; y: s32; }
enum Color { Red, Green, Blue }
func origin() -> Point { return Point{0, 0}; }
`,
		"compiler_if": `
#if DEBUG
func trace(msg: string) { print(msg); }
#else
func trace(msg: string) {}
#endif
`,
		"bitwise_and_arithmetic": `
func pack(a: u32, b: u32) -> u32 { return (a << 16) | (b & 0xFFFF); }
`,
		"alias_and_union": `
alias Id = u64;
union Value { asInt: s32; asFloat: f32; }
`,
	}

	for name, src := range programs {
		src := src
		t.Run(name, func(t *testing.T) {
			out := printSource(t, src, detailed())
			snaps.MatchSnapshot(t, out)
		})
	}
}
