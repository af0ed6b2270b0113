package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nickwells/col.mod/v6/col"
	"github.com/nickwells/col.mod/v6/colfmt"
)

const (
	tableStyleBox     = "box"
	tableStyleColumns = "columns"

	colHdrLocation = "Location"
	colHdrDiff     = "Time Difference"
)

// report prints the entries in the chosen table style
func (prog *prog) report(w io.Writer, entries []entry) error {
	if prog.tableStyle == tableStyleColumns {
		return reportColumns(w, entries)
	}

	return reportBox(w, entries)
}

// reportBox prints the entries as a bordered table
func reportBox(w io.Writer, entries []entry) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleDefault)
	tw.Style().Format.Header = text.FormatDefault
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
		{Number: 2, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
	})

	tw.AppendHeader(table.Row{colHdrLocation, colHdrDiff})

	for _, e := range entries {
		tw.AppendRow(table.Row{e.name, e.diff})
	}

	_, err := fmt.Fprintln(w, tw.Render())

	return err
}

// reportColumns prints the entries as plain columns with an underlined
// header
func reportColumns(w io.Writer, entries []entry) error {
	nameWidth := len(colHdrLocation)
	diffWidth := len(colHdrDiff)

	for _, e := range entries {
		nameWidth = max(nameWidth, len(e.name))
		diffWidth = max(diffWidth, len(e.diff))
	}

	h, err := col.NewHeader()
	if err != nil {
		return fmt.Errorf("couldn't create the table header: %w", err)
	}

	rpt, err := col.NewReport(h, w,
		col.New(&colfmt.String{W: nameWidth}, colHdrLocation),
		col.New(&colfmt.String{W: diffWidth}, colHdrDiff))
	if err != nil {
		return fmt.Errorf("couldn't construct the report: %w", err)
	}

	for _, e := range entries {
		if err := rpt.PrintRow(e.name, e.diff); err != nil {
			return fmt.Errorf("couldn't print the row for %q: %w", e.name, err)
		}
	}

	return nil
}
