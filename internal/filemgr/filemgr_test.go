package filemgr

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPutIsIdempotentByName(t *testing.T) {
	c := NewCache()
	r1 := c.Put("Main", "main.swg", []byte("unit Main;"))
	r2 := c.Put("Main", "main.swg", []byte("unit Main;"))
	if r1 != r2 {
		t.Fatalf("expected same ref for repeated Put, got %v and %v", r1, r2)
	}
	if c.Size() != 1 {
		t.Fatalf("expected 1 unit, got %d", c.Size())
	}
}

func TestResolveWalksSearchPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Helper.swg")
	if err := os.WriteFile(path, []byte("unit Helper;"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := NewCache(dir)
	ref, err := c.Resolve("Helper")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	unit, ok := c.Get(ref)
	if !ok || unit.Name != "Helper" {
		t.Fatalf("unexpected unit: %+v ok=%v", unit, ok)
	}
}

func TestResolveMissingUnit(t *testing.T) {
	c := NewCache(t.TempDir())
	if _, err := c.Resolve("DoesNotExist"); err == nil {
		t.Fatalf("expected error for missing unit")
	}
}
