// Package export flattens a solved drainage network into one table with a row
// per node (type "node") and per link (type "link"), and writes it as CSV or
// into a SQLite database.
//
// Column names follow the configured volume column and pollutant names: with
// volume column "vol" and pollutant "tss" a node row carries vol_in, vol_eff,
// vol_pct_reduced, node_vol_gain, tss_load_in, tss_conc_eff, and so on. Cells
// that do not apply to a row are empty.
package export
