// Package gen renders delay tables into Go constants.
//
// Go has no compile-time function evaluation, so the solver runs here, on the
// build host, and the firmware only ever sees the resulting nap counts. The
// rendered file also pins the clock and loop costs it was solved against;
// building it against a different config or dev fails to compile.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
	"time"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/itohio/napdelay/cycles"
	"github.com/itohio/napdelay/dev"
)

const (
	DefaultSolver       = "exact"
	DefaultConfigImport = "github.com/itohio/napdelay/config"
	DefaultDevImport    = "github.com/itohio/napdelay/dev"
)

type Options struct {
	Model        cycles.Model
	Solver       string
	ConfigImport string
	DevImport    string
	Logger       *zap.Logger
}

// DefaultOptions solves for the target this module is built for.
func DefaultOptions() Options {
	return Options{
		Model:        dev.Model(),
		Solver:       DefaultSolver,
		ConfigImport: DefaultConfigImport,
		DevImport:    DefaultDevImport,
		Logger:       zap.NewNop(),
	}
}

// Row is a solved delay.
type Row struct {
	Delay
	Const    string
	Cycles   uint32
	Naps     uint32
	Realized uint64
	// Length is Realized as wall time.
	Length time.Duration
	// Nop rows are a single cycle and render as one nop instead of a loop.
	Nop bool
}

// Short reports whether the solved loop ends before the requested delay.
func (r Row) Short() bool {
	return r.Realized < uint64(r.Cycles)
}

func lowerFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}

func constName(name string) string {
	return lowerFirst(name) + "Naps"
}

// LengthConst names the constant holding the realized length of the row.
func (r Row) LengthConst() string {
	return lowerFirst(r.Name) + "Length"
}

// Solve converts and solves every delay in t. Durations that overflow the
// cycle counter fail the whole table.
func Solve(t *Table, opts Options) ([]Row, error) {
	if err := opts.Model.Validate(); err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}
	solver, err := cycles.LookupSolver(opts.Solver)
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	rows := make([]Row, 0, len(t.Delays))
	for _, d := range t.Delays {
		c, err := opts.Model.Cycles(d.Value, d.Unit)
		if err != nil {
			return nil, fmt.Errorf("delay %s: %w", d.Name, err)
		}
		r := Row{
			Delay:  d,
			Const:  constName(d.Name),
			Cycles: c,
		}
		switch c {
		case 0:
		case 1:
			r.Nop = true
			r.Realized = 1
		default:
			r.Naps = solver(opts.Model, c)
			r.Realized = opts.Model.Realized(r.Naps)
		}
		r.Length = opts.Model.CyclesDuration(r.Realized)
		log.Debug("solved delay",
			zap.String("name", d.Name),
			zap.Stringer("duration", d),
			zap.Uint32("cycles", r.Cycles),
			zap.Uint32("naps", r.Naps),
			zap.Uint64("realized", r.Realized),
			zap.Duration("length", r.Length),
			zap.Bool("nop", r.Nop),
		)
		if r.Short() {
			log.Warn("delay runs short of its request",
				zap.String("name", d.Name),
				zap.String("solver", opts.Solver),
				zap.Uint64("missing_cycles", uint64(r.Cycles)-r.Realized),
			)
		}
		rows = append(rows, r)
	}
	return rows, nil
}

var fileTemplate = template.Must(template.New("delays").Parse(`// Code generated by delaygen. DO NOT EDIT.
{{- if .Table.Build}}

//go:build {{.Table.Build}}
{{- end}}

package {{.Table.Package}}

import (
{{- if .HasNop}}
	"device"
{{- end}}
	"time"

	"{{.ConfigImport}}"
	"{{.DevImport}}"
)

// Solved by the {{.Solver}} solver for a {{.Model.ClockHz}} Hz clock, a {{.Model.AtomCycles}} cycle nap
// and {{.Model.Loop.PerIteration}}/{{.Model.Loop.Final}} cycles of loop overhead. Builds that drift from these
// values fail here.
const (
	_ = config.ClockHz - {{.Model.ClockHz}}
	_ = {{.Model.ClockHz}} - config.ClockHz
	_ = dev.AtomCycles - {{.Model.AtomCycles}}
	_ = {{.Model.AtomCycles}} - dev.AtomCycles
	_ = dev.PerIterationCycles - {{.Model.Loop.PerIteration}}
	_ = {{.Model.Loop.PerIteration}} - dev.PerIterationCycles
	_ = dev.FinalIterationCycles - {{.Model.Loop.Final}}
	_ = {{.Model.Loop.Final}} - dev.FinalIterationCycles
)
{{- range .Rows}}

// {{.LengthConst}} is the realized length of {{.Name}}.
const {{.LengthConst}} time.Duration = {{.Length.Nanoseconds}}
{{- if .Nop}}

// {{.Name}} blocks for a single cycle.
func {{.Name}}() {
	device.Asm("nop")
}
{{- else if .Cycles}}

// {{.Const}} covers {{.Delay}}: {{.Cycles}} cycles requested, {{.Realized}} realized.
const {{.Const}} uint32 = {{.Naps}}

// {{.Name}} blocks for at least {{.Delay}}.
func {{.Name}}() {
	dev.Naps({{.Const}})
}
{{- else}}

// {{.Name}} is a zero-length delay and never enters the nap loop.
func {{.Name}}() {}
{{- end}}
{{- end}}
`))

// Generate solves t and renders it as a gofmt-ed Go source file.
func Generate(t *Table, opts Options) ([]byte, error) {
	rows, err := Solve(t, opts)
	if err != nil {
		return nil, err
	}
	if opts.ConfigImport == "" {
		opts.ConfigImport = DefaultConfigImport
	}
	if opts.DevImport == "" {
		opts.DevImport = DefaultDevImport
	}

	hasNop := false
	for _, r := range rows {
		hasNop = hasNop || r.Nop
	}

	var buf bytes.Buffer
	err = fileTemplate.Execute(&buf, struct {
		Options
		Table  *Table
		Rows   []Row
		HasNop bool
	}{opts, t, rows, hasNop})
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}
