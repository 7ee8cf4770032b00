// Command stormnet solves a drainage network and reports the outfall loads.
//
// Usage:
//
//	stormnet -network net.yaml -config settings.yaml [-csv out.csv] [-sqlite out.db] [-metrics out.prom] [-v]
//	stormnet -edges links.csv [-nodes nodes.csv] -config settings.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/stormnet/config"
	"github.com/katalvlaran/stormnet/core"
	"github.com/katalvlaran/stormnet/export"
	"github.com/katalvlaran/stormnet/loader"
	"github.com/katalvlaran/stormnet/solver"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "stormnet:", err)
		}
		os.Exit(1)
	}
}

// run parses args, solves the network and writes the requested outputs.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("stormnet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	networkPath := fs.String("network", "", "YAML network document")
	nodesPath := fs.String("nodes", "", "CSV node table")
	edgesPath := fs.String("edges", "", "CSV link table")
	configPath := fs.String("config", "", "YAML settings document (defaults when empty)")
	csvPath := fs.String("csv", "", "write the results table as CSV")
	sqlitePath := fs.String("sqlite", "", "write the results table into a SQLite database")
	metricsPath := fs.String("metrics", "", "write solve metrics in Prometheus text format")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// 1) Settings
	settings := config.Default()
	if *configPath != "" {
		var err error
		if settings, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	cfg, err := settings.SolverConfig()
	if err != nil {
		return err
	}

	// 2) Network
	g, err := loadNetwork(*networkPath, *nodesPath, *edgesPath, cfg)
	if err != nil {
		return err
	}
	logger.Debug("network loaded", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	// 3) Solve
	reg := prometheus.NewRegistry()
	net := solver.NewNetwork(g, cfg, solver.WithLogger(logger), solver.WithMetrics(solver.NewMetrics(reg)))
	rep, err := net.Results()
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintln(stdout, renderSummary(g, cfg, rep)); err != nil {
		return err
	}

	// 4) Outputs
	if *csvPath != "" || *sqlitePath != "" {
		tbl, err := export.Flatten(g, cfg)
		if err != nil {
			return err
		}
		if *csvPath != "" {
			if err = writeCSV(tbl, *csvPath); err != nil {
				return err
			}
			logger.Info("results written", "csv", *csvPath)
		}
		if *sqlitePath != "" {
			if err = tbl.WriteSQLite(ctx, *sqlitePath); err != nil {
				return err
			}
			logger.Info("results written", "sqlite", *sqlitePath)
		}
	}
	if *metricsPath != "" {
		if err = prometheus.WriteToTextfile(*metricsPath, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

// loadNetwork reads the YAML document or the CSV tables.
func loadNetwork(networkPath, nodesPath, edgesPath string, cfg solver.Config) (*core.Graph, error) {
	switch {
	case networkPath != "" && edgesPath != "":
		return nil, errors.New("use either -network or -edges, not both")
	case networkPath != "":
		return loader.LoadYAML(networkPath)
	case edgesPath != "":
		edges, err := os.Open(edgesPath)
		if err != nil {
			return nil, err
		}
		defer edges.Close()
		var nodes io.Reader
		if nodesPath != "" {
			f, err := os.Open(nodesPath)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			nodes = f
		}
		return loader.ReadCSV(nodes, edges, loader.ColumnsFor(cfg))
	default:
		return nil, errors.New("no network given: pass -network or -edges")
	}
}

func writeCSV(tbl *export.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = tbl.WriteCSV(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
