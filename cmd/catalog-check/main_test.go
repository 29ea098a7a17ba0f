package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing catalog fixture: %v", err)
	}
	// cli rejects absolute paths, so run relative to the fixture dir.
	t.Chdir(dir)
	return "catalog.json"
}

const validCatalog = `{
  "designs": [
    {"type": "colony_ship", "kind": "ship", "display_name": "Colony Ship", "speed": 16, "fuel_cost_per_unit": 10, "build_cost": 1000},
    {"type": "scout", "kind": "ship", "display_name": "Scout", "speed": 128, "fuel_cost_per_unit": 2, "build_cost": 50},
    {"type": "shipyard", "kind": "building", "display_name": "Shipyard", "build_cost": 500}
  ]
}`

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := cli(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestValidCatalogPasses(t *testing.T) {
	path := writeCatalogFile(t, validCatalog)
	code, out, _ := runCLI(t, "-catalog", path)
	if code != 0 {
		t.Fatalf("expected success, got exit %d", code)
	}
	if !strings.Contains(out, "Catalog validation passed (3 designs).") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestBuiltinCatalogPasses(t *testing.T) {
	code, out, _ := runCLI(t, "-builtin")
	if code != 0 {
		t.Fatalf("expected success, got exit %d", code)
	}
	if !strings.Contains(out, "colony_ship") || !strings.Contains(out, "shipyard") {
		t.Fatalf("expected design listing, got %q", out)
	}
}

func TestMissingRequiredDesignFails(t *testing.T) {
	path := writeCatalogFile(t, `{
  "designs": [
    {"type": "scout", "kind": "ship", "display_name": "Scout", "speed": 128, "build_cost": 50}
  ]
}`)
	code, _, errOut := runCLI(t, "-catalog", path)
	if code != 1 {
		t.Fatalf("expected failure, got exit %d", code)
	}
	if !strings.Contains(errOut, `required design "colony_ship" missing`) {
		t.Fatalf("unexpected error output: %q", errOut)
	}
}

func TestDuplicateDesignFails(t *testing.T) {
	path := writeCatalogFile(t, `{
  "designs": [
    {"type": "scout", "kind": "ship", "display_name": "Scout", "speed": 128, "build_cost": 50},
    {"type": "scout", "kind": "ship", "display_name": "Scout II", "speed": 140, "build_cost": 60}
  ]
}`)
	code, _, errOut := runCLI(t, "-catalog", path)
	if code != 1 || !strings.Contains(errOut, "duplicate design") {
		t.Fatalf("expected duplicate rejection, got exit %d, stderr %q", code, errOut)
	}
}

func TestShipWithoutSpeedFails(t *testing.T) {
	path := writeCatalogFile(t, `{
  "designs": [
    {"type": "colony_ship", "kind": "ship", "display_name": "Colony Ship", "build_cost": 1000}
  ]
}`)
	code, _, errOut := runCLI(t, "-catalog", path)
	if code != 1 || !strings.Contains(errOut, "non-positive speed") {
		t.Fatalf("expected speed rejection, got exit %d, stderr %q", code, errOut)
	}
}

func TestUnknownFieldFails(t *testing.T) {
	path := writeCatalogFile(t, `{"designs": [{"type": "scout", "kind": "ship", "display_name": "Scout", "speed": 1, "build_cost": 1, "warp": true}]}`)
	code, _, errOut := runCLI(t, "-catalog", path)
	if code != 1 || !strings.Contains(errOut, "parse catalog") {
		t.Fatalf("expected parse failure, got exit %d, stderr %q", code, errOut)
	}
}

func TestMissingFileFails(t *testing.T) {
	t.Chdir(t.TempDir())
	code, _, errOut := runCLI(t, "-catalog", "absent.json")
	if code != 1 || !strings.Contains(errOut, "read catalog") {
		t.Fatalf("expected read failure, got exit %d, stderr %q", code, errOut)
	}
}

func TestPathValidation(t *testing.T) {
	for _, p := range []string{"/etc/catalog.json", "../outside.json", "  "} {
		code, _, _ := runCLI(t, "-catalog", p)
		if code != 1 {
			t.Fatalf("path %q must be rejected, got exit %d", p, code)
		}
	}
}

func TestBadFlagExitsTwo(t *testing.T) {
	code, _, _ := runCLI(t, "-definitely-not-a-flag")
	if code != 2 {
		t.Fatalf("expected usage exit 2, got %d", code)
	}
}
