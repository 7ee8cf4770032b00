package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/stormnet/bfs"
	"github.com/katalvlaran/stormnet/core"
	"github.com/katalvlaran/stormnet/export"
	"github.com/katalvlaran/stormnet/solver"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// sig renders x to four significant figures.
func sig(x float64) string {
	return strconv.FormatFloat(export.SigFigs(x, 4), 'g', -1, 64)
}

// renderSummary tabulates the inflow and loads reaching each outfall, with the
// number of nodes draining to it, followed by any warnings.
func renderSummary(g *core.Graph, cfg solver.Config, rep *solver.Report) string {
	headers := []string{"outfall", "contributing", cfg.VolumeColumn + "_in"}
	for _, p := range cfg.Pollutants {
		headers = append(headers, string(p)+"_load_in", string(p)+"_conc_in")
	}

	var rows [][]string
	for _, n := range g.Nodes() {
		if terminal, err := g.Terminal(n.ID); err != nil || !terminal || n.Result == nil {
			continue
		}
		upstream, err := bfs.Trace(g, n.ID, bfs.WithDirection(bfs.Upstream))
		if err != nil {
			continue
		}
		row := []string{n.ID, strconv.Itoa(len(upstream.Reached())), sig(n.Result.VolumeIn)}
		for _, p := range cfg.Pollutants {
			l := n.Result.Pollutant(p)
			row = append(row, sig(l.LoadIn), sig(l.ConcIn))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("solved %d nodes, %d links in %s", rep.Nodes, rep.Edges, rep.Elapsed)))
	b.WriteString("\n")
	b.WriteString(t.Render())
	for _, w := range rep.Warnings {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render("warning: " + w.String()))
	}

	return b.String()
}
