package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stormnet/core"
)

var (
	// ErrMissingField indicates a required field or column is absent.
	ErrMissingField = errors.New("loader: missing field")

	// ErrBadValue indicates a value that cannot be parsed.
	ErrBadValue = errors.New("loader: bad value")
)

// document is the YAML network document.
type document struct {
	Nodes []yamlNode `yaml:"nodes"`
	Edges []yamlEdge `yaml:"edges"`
}

type yamlNode struct {
	ID          string             `yaml:"id"`
	Kind        string             `yaml:"kind,omitempty"`
	Volume      float64            `yaml:"volume,omitempty"`
	CheckVolume *float64           `yaml:"check_volume,omitempty"`
	Loads       map[string]float64 `yaml:"loads,omitempty"`
}

type yamlEdge struct {
	From   string            `yaml:"from"`
	To     string            `yaml:"to"`
	ID     string            `yaml:"id"`
	Volume float64           `yaml:"volume,omitempty"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

// ParseYAML reads a network document:
//
//	nodes:
//	  - {id: S1, kind: subcatchment, volume: 9, loads: {tss: 3}}
//	edges:
//	  - {from: S1, to: J1, id: C-1, volume: 9, labels: {xtype: conduit}}
//
// Nodes referenced only by edges are created with zero attributes. A node id
// listed twice is rejected with ErrBadValue.
//
// Keys are fixed: volume, check_volume and loads are read by these names
// whatever solver.Config.VolumeColumn or CheckVolumeColumn say. Those names
// only select CSV columns (see ColumnsFor) and label the exported table.
func ParseYAML(r io.Reader) (*core.Graph, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("loader: parse yaml: %w", err)
	}

	g := core.NewGraph(core.WithLoops())
	for i, yn := range doc.Nodes {
		if yn.ID == "" {
			return nil, fmt.Errorf("%w: nodes[%d].id", ErrMissingField, i)
		}
		if g.HasNode(yn.ID) {
			return nil, fmt.Errorf("%w: nodes[%d].id %q listed twice", ErrBadValue, i, yn.ID)
		}
		n, err := g.AddNode(yn.ID)
		if err != nil {
			return nil, fmt.Errorf("loader: nodes[%d]: %w", i, err)
		}
		n.Kind = yn.Kind
		n.Volume = yn.Volume
		n.CheckVolume = yn.CheckVolume
		for p, l := range yn.Loads {
			n.SetLoad(core.Pollutant(p), l)
		}
	}
	for i, ye := range doc.Edges {
		if ye.From == "" || ye.To == "" {
			return nil, fmt.Errorf("%w: edges[%d] needs from and to", ErrMissingField, i)
		}
		opts := make([]core.EdgeOption, 0, len(ye.Labels))
		for k, v := range ye.Labels {
			opts = append(opts, core.WithLabel(k, v))
		}
		if _, err := g.AddEdge(ye.From, ye.To, ye.ID, ye.Volume, opts...); err != nil {
			return nil, fmt.Errorf("loader: edges[%d]: %w", i, err)
		}
	}

	return g, nil
}

// LoadYAML reads the network document at path.
func LoadYAML(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	return ParseYAML(f)
}
