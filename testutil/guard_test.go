package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type recordingT struct {
	testing.TB
	failed  bool
	message string
}

func (r *recordingT) Helper() {}

func (r *recordingT) Fatalf(format string, args ...any) {
	r.failed = true
	r.message = format
	for _, a := range args {
		if s, ok := a.(string); ok {
			r.message += " " + s
		}
	}
}

func TestPredicates(t *testing.T) {
	if !DomainImportForbidden("starcore/pkg/domain") {
		t.Fatalf("domain path not matched")
	}
	if DomainImportForbidden("starcore/pkg/domainext") {
		t.Fatalf("near-miss path matched")
	}
	if !InternalImportForbidden("starcore/internal/core") {
		t.Fatalf("internal path not matched")
	}
	if InternalImportForbidden("starcore/pkg/domain") {
		t.Fatalf("non-internal path matched")
	}
}

func TestAssertNoDirectImports(t *testing.T) {
	dir := t.TempDir()
	src := `package sample

import (
	"fmt"

	"starcore/internal/core"
)

var _ = fmt.Sprint(core.SeverityBlock)
`
	if err := os.WriteFile(filepath.Join(dir, "sample.go"), []byte(src), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	// Test files must be skipped even when they violate the boundary.
	if err := os.WriteFile(filepath.Join(dir, "sample_test.go"), []byte(src), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	rec := &recordingT{TB: t}
	AssertNoDirectImports(rec, dir, InternalImportForbidden, "sample boundary")
	if !rec.failed {
		t.Fatalf("expected violation to be reported")
	}

	rec = &recordingT{TB: t}
	AssertNoDirectImports(rec, dir, DomainImportForbidden, "sample boundary")
	if rec.failed {
		t.Fatalf("unexpected violation: %s", rec.message)
	}
}

func TestAssertNoTransitiveDependency(t *testing.T) {
	orig := goListDeps
	defer func() { goListDeps = orig }()
	goListDeps = func(string) ([]byte, error) {
		return []byte("fmt\nstarcore/internal/core\n"), nil
	}

	rec := &recordingT{TB: t}
	AssertNoTransitiveDependency(rec, "./...", InternalImportForbidden, "no internal deps")
	if !rec.failed || !strings.Contains(rec.message, "no internal deps") {
		t.Fatalf("expected violation, got failed=%v message=%q", rec.failed, rec.message)
	}

	rec = &recordingT{TB: t}
	AssertNoTransitiveDependency(rec, "./...", DomainImportForbidden, "no domain deps")
	if rec.failed {
		t.Fatalf("unexpected violation: %s", rec.message)
	}
}
