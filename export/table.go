package export

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/stormnet/core"
	"github.com/katalvlaran/stormnet/solver"
)

// ErrColumnClash indicates two columns of the flattened table would share a
// name, e.g. a pollutant called "id".
var ErrColumnClash = errors.New("export: duplicate column name")

// Row types.
const (
	TypeNode = "node"
	TypeLink = "link"
)

// Column describes one table column.
type Column struct {
	Name    string
	Numeric bool
}

// Table is a flattened network. Cells hold string, float64, int or nil.
type Table struct {
	Columns []Column
	Rows    [][]any

	index map[string]int
}

// Index returns the position of column name, or -1.
func (t *Table) Index(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}

	return -1
}

// Value returns the cell of column name in row, or nil.
func (t *Table) Value(row int, name string) any {
	i := t.Index(name)
	if i < 0 || row < 0 || row >= len(t.Rows) {
		return nil
	}

	return t.Rows[row][i]
}

// Find returns the first row whose type, from and to columns match, or -1.
func (t *Table) Find(typ, from, to string) int {
	for r := range t.Rows {
		if t.Value(r, "type") == typ && t.Value(r, "from") == from && t.Value(r, "to") == to {
			return r
		}
	}

	return -1
}

// builder accumulates columns and the cells of the current row. The first
// column clash is kept in err.
type builder struct {
	t   *Table
	row []any
	err error
}

func (b *builder) col(name string, numeric bool) {
	if _, dup := b.t.index[name]; dup {
		if b.err == nil {
			b.err = fmt.Errorf("%w: %q", ErrColumnClash, name)
		}
		return
	}
	b.t.index[name] = len(b.t.Columns)
	b.t.Columns = append(b.t.Columns, Column{Name: name, Numeric: numeric})
}

func (b *builder) start() { b.row = make([]any, len(b.t.Columns)) }

func (b *builder) set(name string, v any) { b.row[b.t.index[name]] = v }

func (b *builder) end() { b.t.Rows = append(b.t.Rows, b.row) }

// Flatten converts g into a Table using the column naming of cfg. Nodes come
// first sorted by ID, then links in insertion order. Unsolved nodes and links
// contribute only their raw attributes.
//
// Errors: ErrColumnClash when a pollutant name equals another column, such as
// "id", "treatment" or a derived volume column.
func Flatten(g *core.Graph, cfg solver.Config) (*Table, error) {
	vol := cfg.VolumeColumn
	if vol == "" {
		vol = solver.DefaultVolumeColumn
	}
	checked := cfg.CheckVolumeColumn != ""

	b := &builder{t: &Table{index: make(map[string]int)}}

	// 1) Columns
	for _, c := range []string{"type", "from", "to"} {
		b.col(c, false)
	}
	b.col("key", true)
	b.col("id", false)
	b.col("xtype", false)
	b.col(vol, true)
	if checked {
		b.col(cfg.CheckVolumeColumn, true)
	}
	for _, suffix := range volumeSuffixes {
		b.col(vol+suffix, true)
	}
	b.col("node_"+vol+"_gain", true)
	if checked {
		b.col(vol+"_diff_ck", true)
	}
	for _, p := range cfg.Pollutants {
		b.col(string(p), true)
		for _, suffix := range loadSuffixes {
			b.col(string(p)+suffix, true)
		}
	}
	b.col("treatment", false)
	labelCols, labels := labelColumns(g, b.t.index)
	for _, l := range labels {
		b.col(l, false)
	}
	if b.err != nil {
		return nil, b.err
	}

	// 2) Node rows
	for _, n := range g.Nodes() {
		succ, err := g.Successors(n.ID)
		if err != nil {
			return nil, fmt.Errorf("export: node %q: %w", n.ID, err)
		}
		b.start()
		b.set("type", TypeNode)
		b.set("from", n.ID)
		b.set("to", "["+strings.Join(succ, " ")+"]")
		b.set("id", n.ID)
		if n.Kind != "" {
			b.set("xtype", n.Kind)
		}
		b.set(vol, n.Volume)
		if checked && n.CheckVolume != nil {
			b.set(cfg.CheckVolumeColumn, *n.CheckVolume)
		}
		for _, p := range cfg.Pollutants {
			b.set(string(p), n.Load(p))
		}
		if r := n.Result; r != nil {
			values := []float64{r.VolumeIn, r.VolumeOut, r.VolumeEff, r.VolumeReduced, r.PctVolumeReduced,
				r.VolumeTreated, r.PctVolumeTreated, r.VolumeCapture, r.PctVolumeCapture}
			for i, suffix := range volumeSuffixes {
				b.set(vol+suffix, values[i])
			}
			b.set("node_"+vol+"_gain", r.VolumeGain)
			if checked && r.VolumeDiffCheck != nil {
				b.set(vol+"_diff_ck", *r.VolumeDiffCheck)
			}
			for _, p := range cfg.Pollutants {
				if l, ok := r.Pollutants[p]; ok {
					setLoad(b, p, l.LoadIn, l.LoadEff, l.LoadReduced, l.PctLoadReduced, l.ConcIn, l.ConcEff, l.PctConcReduced)
				}
			}
		}
		b.end()
	}

	// 3) Link rows
	for _, e := range g.Edges() {
		b.start()
		b.set("type", TypeLink)
		b.set("from", e.From)
		b.set("to", e.To)
		b.set("key", e.Key)
		b.set("id", e.ID)
		b.set(vol, e.Volume)
		for k, v := range e.Labels {
			b.set(labelCols[k], v)
		}
		if e.Result != nil {
			for _, p := range cfg.Pollutants {
				if l := e.Result.Pollutants[p]; l != nil {
					setLoad(b, p, l.LoadIn, l.LoadEff, l.LoadReduced, l.PctLoadReduced, l.ConcIn, l.ConcEff, l.PctConcReduced)
				}
			}
			if tags := treatmentText(e.Result.Treatment); tags != "" {
				b.set("treatment", tags)
			}
		}
		b.end()
	}

	return b.t, nil
}

// volumeSuffixes are the node water balance columns, in output order.
var volumeSuffixes = []string{
	"_in", "_out", "_eff", "_reduced", "_pct_reduced",
	"_treated", "_pct_treated", "_capture", "_pct_capture",
}

// loadSuffixes are the per-pollutant columns, in output order.
var loadSuffixes = []string{
	"_load_in", "_load_eff", "_load_reduced", "_load_pct_reduced",
	"_conc_in", "_conc_eff", "_conc_pct_reduced",
}

func setLoad(b *builder, p core.Pollutant, values ...float64) {
	for i, suffix := range loadSuffixes {
		b.set(string(p)+suffix, values[i])
	}
}

// labelColumns maps every link label key to its column and returns the new
// columns sorted. Keys colliding with a fixed column get a "label_" prefix;
// "xtype" shares the node kind column.
func labelColumns(g *core.Graph, fixed map[string]int) (map[string]string, []string) {
	cols := map[string]string{"xtype": "xtype"}
	var added []string
	for _, e := range g.Edges() {
		for k := range e.Labels {
			if _, done := cols[k]; done {
				continue
			}
			name := k
			if _, clash := fixed[k]; clash {
				name = "label_" + k
			}
			cols[k] = name
			added = append(added, name)
		}
	}
	sort.Strings(added)

	return cols, added
}

// treatmentText renders the audit trail as "BR:tss|tp;_no_tmnt_fxn:tss",
// flags sorted.
func treatmentText(tags map[string][]core.Pollutant) string {
	flags := make([]string, 0, len(tags))
	for f := range tags {
		flags = append(flags, f)
	}
	sort.Strings(flags)
	parts := make([]string, len(flags))
	for i, f := range flags {
		pocs := make([]string, len(tags[f]))
		for j, p := range tags[f] {
			pocs[j] = string(p)
		}
		parts[i] = f + ":" + strings.Join(pocs, "|")
	}

	return strings.Join(parts, ";")
}
