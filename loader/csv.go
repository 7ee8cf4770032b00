package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/stormnet/core"
	"github.com/katalvlaran/stormnet/solver"
)

// Columns names the CSV columns read by ReadNodesCSV and ReadEdgesCSV.
type Columns struct {
	NodeID      string // node table key
	Kind        string // optional node type
	From, To    string // link endpoints
	EdgeID      string // flag-bearing link identifier
	Volume      string // node source volume and link volume
	CheckVolume string // optional node check volume
	Pollutants  []core.Pollutant
}

// DefaultColumns returns the column names used when none are configured.
func DefaultColumns() Columns {
	return Columns{
		NodeID: "id",
		Kind:   "xtype",
		From:   "from",
		To:     "to",
		EdgeID: "id",
		Volume: solver.DefaultVolumeColumn,
	}
}

// ColumnsFor returns DefaultColumns with the volume, check-volume and
// pollutant columns taken from cfg.
func ColumnsFor(cfg solver.Config) Columns {
	c := DefaultColumns()
	if cfg.VolumeColumn != "" {
		c.Volume = cfg.VolumeColumn
	}
	c.CheckVolume = cfg.CheckVolumeColumn
	c.Pollutants = append([]core.Pollutant(nil), cfg.Pollutants...)

	return c
}

// table is a CSV file with a header row.
type table struct {
	r      *csv.Reader
	header map[string]int
	names  []string
	line   int
}

func openTable(r io.Reader) (*table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	names, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("loader: read header: %w", err)
	}
	t := &table{r: cr, header: make(map[string]int, len(names)), names: names, line: 1}
	for i, n := range names {
		t.header[strings.TrimSpace(n)] = i
	}

	return t, nil
}

// require reports the first missing column among names.
func (t *table) require(names ...string) error {
	for _, n := range names {
		if _, ok := t.header[n]; !ok {
			return fmt.Errorf("%w: column %q", ErrMissingField, n)
		}
	}

	return nil
}

// next returns the next record, or io.EOF.
func (t *table) next() ([]string, error) {
	rec, err := t.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("loader: line %d: %w", t.line+1, err)
	}
	t.line++

	return rec, nil
}

// text returns the trimmed cell of column name, "" when the column is absent.
func (t *table) text(rec []string, name string) string {
	i, ok := t.header[name]
	if !ok || name == "" || i >= len(rec) {
		return ""
	}

	return strings.TrimSpace(rec[i])
}

// number parses the cell of column name; blank cells are absent.
func (t *table) number(rec []string, name string) (float64, bool, error) {
	s := t.text(rec, name)
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: line %d column %q: %q", ErrBadValue, t.line, name, s)
	}

	return v, true, nil
}

// ReadNodesCSV adds the node rows of r to g, setting kind, volume, check
// volume and pollutant loads. Blank numeric cells read as absent.
func ReadNodesCSV(g *core.Graph, r io.Reader, cols Columns) error {
	t, err := openTable(r)
	if err != nil {
		return err
	}
	if err = t.require(cols.NodeID); err != nil {
		return err
	}

	seen := make(map[string]int)
	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		id := t.text(rec, cols.NodeID)
		if id == "" {
			return fmt.Errorf("%w: line %d column %q", ErrMissingField, t.line, cols.NodeID)
		}
		if first, dup := seen[id]; dup {
			return fmt.Errorf("%w: line %d node %q already given on line %d", ErrBadValue, t.line, id, first)
		}
		seen[id] = t.line
		n, err := g.AddNode(id)
		if err != nil {
			return fmt.Errorf("loader: line %d: %w", t.line, err)
		}
		n.Kind = t.text(rec, cols.Kind)
		if v, ok, err := t.number(rec, cols.Volume); err != nil {
			return err
		} else if ok {
			n.Volume = v
		}
		if v, ok, err := t.number(rec, cols.CheckVolume); err != nil {
			return err
		} else if ok {
			n.CheckVolume = &v
		}
		for _, p := range cols.Pollutants {
			v, ok, err := t.number(rec, string(p))
			if err != nil {
				return err
			}
			if ok {
				n.SetLoad(p, v)
			}
		}
	}
}

// ReadEdgesCSV adds the link rows of r to g. Columns other than the
// endpoints, identifier and volume become link labels.
func ReadEdgesCSV(g *core.Graph, r io.Reader, cols Columns) error {
	t, err := openTable(r)
	if err != nil {
		return err
	}
	if err = t.require(cols.From, cols.To); err != nil {
		return err
	}
	reserved := map[string]bool{cols.From: true, cols.To: true, cols.EdgeID: true, cols.Volume: true}

	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		from, to := t.text(rec, cols.From), t.text(rec, cols.To)
		if from == "" || to == "" {
			return fmt.Errorf("%w: line %d needs %q and %q", ErrMissingField, t.line, cols.From, cols.To)
		}
		vol, _, err := t.number(rec, cols.Volume)
		if err != nil {
			return err
		}
		var opts []core.EdgeOption
		for _, name := range t.names {
			name = strings.TrimSpace(name)
			if reserved[name] {
				continue
			}
			if v := t.text(rec, name); v != "" {
				opts = append(opts, core.WithLabel(name, v))
			}
		}
		if _, err = g.AddEdge(from, to, t.text(rec, cols.EdgeID), vol, opts...); err != nil {
			return fmt.Errorf("loader: line %d: %w", t.line, err)
		}
	}
}

// ReadCSV builds a graph from a node table (may be nil) and a link table.
func ReadCSV(nodes, edges io.Reader, cols Columns) (*core.Graph, error) {
	g := core.NewGraph(core.WithLoops())
	if nodes != nil {
		if err := ReadNodesCSV(g, nodes, cols); err != nil {
			return nil, err
		}
	}
	if err := ReadEdgesCSV(g, edges, cols); err != nil {
		return nil, err
	}

	return g, nil
}
