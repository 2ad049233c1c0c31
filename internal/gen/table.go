package gen

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/itohio/napdelay/cycles"
)

var (
	ErrNoPackage     = errors.New("table has no package")
	ErrBadName       = errors.New("delay name must be an exported Go identifier")
	ErrDuplicateName = errors.New("duplicate delay name")
)

// Delay is one row of a delay table: a function that blocks for at least
// Value Unit.
type Delay struct {
	Name  string      `yaml:"name"`
	Value uint32      `yaml:"value"`
	Unit  cycles.Unit `yaml:"unit"`
}

func (d Delay) String() string {
	if d.Unit == cycles.Cycles {
		return fmt.Sprintf("%d cycles", d.Value)
	}
	return fmt.Sprintf("%d%s", d.Value, d.Unit)
}

// Table lists the delays of one generated file.
//
//	package: main
//	build: avr
//	delays:
//	  - name: Blink
//	    value: 200
//	    unit: ms
type Table struct {
	Package string `yaml:"package"`
	// Build is an optional //go:build expression for the generated file.
	Build  string  `yaml:"build,omitempty"`
	Delays []Delay `yaml:"delays"`
}

// Parse decodes a table. Unknown keys and negative values are rejected.
func Parse(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var t Table
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("decode delay table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Load reads and parses the table at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func (t *Table) Validate() error {
	if !token.IsIdentifier(t.Package) {
		return ErrNoPackage
	}
	seen := make(map[string]bool, len(t.Delays))
	for i, d := range t.Delays {
		if !token.IsIdentifier(d.Name) || !token.IsExported(d.Name) {
			return fmt.Errorf("delay %d %q: %w", i, d.Name, ErrBadName)
		}
		if seen[d.Name] {
			return fmt.Errorf("delay %d %q: %w", i, d.Name, ErrDuplicateName)
		}
		seen[d.Name] = true
		if !d.Unit.Valid() {
			return fmt.Errorf("delay %q unit %q: %w", d.Name, d.Unit, cycles.ErrUnknownUnit)
		}
	}
	return nil
}
