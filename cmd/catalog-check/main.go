// Command catalog-check validates a design catalog JSON file against the
// engine's catalog rules and verifies the designs the engine depends on are
// present.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"starcore/internal/catalog"
	"starcore/pkg/domain"
)

var exitFunc = os.Exit

// designFile is the on-disk catalog format.
type designFile struct {
	Designs []designEntry `json:"designs"`
}

type designEntry struct {
	Type            string  `json:"type"`
	Kind            string  `json:"kind"`
	DisplayName     string  `json:"display_name"`
	Speed           float64 `json:"speed,omitempty"`
	FuelCostPerUnit float64 `json:"fuel_cost_per_unit,omitempty"`
	BuildCost       float64 `json:"build_cost"`
}

// requiredDesigns are the types the modification engine references directly:
// colonization consumes colony ships and ship builds require a shipyard.
var requiredDesigns = []domain.DesignType{
	domain.DesignColonyShip,
	domain.DesignShipyard,
}

func main() {
	exitFunc(cli(os.Args[1:], os.Stdout, os.Stderr))
}

func cli(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("catalog-check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var catalogPath string
	var builtin bool
	fs.StringVar(&catalogPath, "catalog", "catalog.json", "path to catalog json")
	fs.BoolVar(&builtin, "builtin", false, "validate the embedded default catalog instead of a file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var c *catalog.Catalog
	var err error
	if builtin {
		c = catalog.Default()
	} else {
		c, err = loadCatalog(catalogPath)
	}
	if err == nil {
		err = checkRequired(c)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Catalog validation failed: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Catalog validation passed (%d designs).\n", len(c.Designs()))
	for _, d := range c.Designs() {
		fmt.Fprintf(stdout, "  %-14s %-9s build_cost=%.0f\n", d.Type, d.Kind, d.BuildCost)
	}
	return 0
}

// validatePath rejects absolute and traversing paths so the command only reads
// inside the working tree.
func validatePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", fmt.Errorf("empty path")
	}
	if filepath.IsAbs(p) {
		return "", fmt.Errorf("absolute paths not allowed: %s", p)
	}
	clean := filepath.Clean(p)
	if strings.Contains(clean, "..") {
		return "", fmt.Errorf("path traversal not allowed: %s", p)
	}
	return clean, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	safePath, err := validatePath(path)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(safePath) // #nosec G304: path validated by validatePath
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var file designFile
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.Designs) == 0 {
		return nil, fmt.Errorf("designs entry is empty")
	}

	designs := make([]catalog.Design, 0, len(file.Designs))
	for i, e := range file.Designs {
		if e.DisplayName == "" {
			return nil, fmt.Errorf("designs[%d]: missing display_name", i)
		}
		if e.BuildCost < 0 {
			return nil, fmt.Errorf("designs[%d]: negative build_cost", i)
		}
		if e.FuelCostPerUnit < 0 {
			return nil, fmt.Errorf("designs[%d]: negative fuel_cost_per_unit", i)
		}
		designs = append(designs, catalog.Design{
			Type:            domain.DesignType(e.Type),
			Kind:            domain.DesignKind(e.Kind),
			DisplayName:     e.DisplayName,
			Speed:           e.Speed,
			FuelCostPerUnit: e.FuelCostPerUnit,
			BuildCost:       e.BuildCost,
		})
	}
	return catalog.New(designs...)
}

func checkRequired(c *catalog.Catalog) error {
	for _, t := range requiredDesigns {
		if _, ok := c.Get(t); !ok {
			return fmt.Errorf("required design %q missing", t)
		}
	}
	return nil
}
