package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"typecore/internal/fixture"
	"typecore/internal/names"
)

var namesCmd = &cobra.Command{
	Use:   "names [flags] [fixture.toml]",
	Short: "List the name table built from a fixture or stored in a snapshot",
	Long:  `Load a fixture and list every interned name with its kind, debug and display form. --save writes the table as a snapshot, --load lists a snapshot instead of a fixture`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNames,
}

func init() {
	namesCmd.Flags().String("save", "", "write the name table to a snapshot file")
	namesCmd.Flags().String("load", "", "list a snapshot file instead of a fixture")
	namesCmd.Flags().Bool("all", false, "include well-known names")
	namesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type nameRow struct {
	ID    uint32 `json:"id"`
	Kind  string `json:"kind"`
	Debug string `json:"debug"`
	Show  string `json:"show"`
}

func runNames(cmd *cobra.Command, args []string) error {
	savePath, err := cmd.Flags().GetString("save")
	if err != nil {
		return fmt.Errorf("failed to get save flag: %w", err)
	}
	loadPath, err := cmd.Flags().GetString("load")
	if err != nil {
		return fmt.Errorf("failed to get load flag: %w", err)
	}
	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return fmt.Errorf("failed to get all flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(format)
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	var table *names.Table
	switch {
	case loadPath != "" && len(args) > 0:
		return fmt.Errorf("--load and a fixture argument cannot be used together")
	case loadPath != "":
		f, err := os.Open(loadPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if table, err = names.ReadSnapshot(cmd.Context(), f); err != nil {
			return fmt.Errorf("%s: %w", loadPath, err)
		}
	case len(args) == 1:
		file, err := fixture.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		table = file.Session.Names
	default:
		return fmt.Errorf("expected a fixture argument or --load")
	}

	if savePath != "" {
		if err := saveSnapshot(cmd.Context(), table, savePath); err != nil {
			return err
		}
	}

	rows := nameRows(table, all)
	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	printNamesPretty(out, rows)
	return nil
}

func saveSnapshot(ctx context.Context, table *names.Table, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := table.WriteSnapshot(ctx, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func nameRows(table *names.Table, all bool) []nameRow {
	rows := []nameRow{}
	for _, ref := range table.Refs() {
		if ref.IsWellKnown() && !all {
			continue
		}
		rows = append(rows, nameRow{
			ID:    ref.ID(),
			Kind:  table.Resolve(ref).Kind().String(),
			Debug: table.Debug(ref),
			Show:  table.Show(ref),
		})
	}
	return rows
}

func printNamesPretty(out io.Writer, rows []nameRow) {
	header := lipgloss.NewStyle()
	if !color.NoColor {
		header = header.Bold(true).Underline(true)
	}
	cols := [3]int{runewidth.StringWidth("id"), runewidth.StringWidth("kind"), runewidth.StringWidth("debug")}
	for _, r := range rows {
		cols[0] = max(cols[0], len(strconv.FormatUint(uint64(r.ID), 10)))
		cols[1] = max(cols[1], runewidth.StringWidth(r.Kind))
		cols[2] = max(cols[2], runewidth.StringWidth(r.Debug))
	}
	fmt.Fprintf(out, "%s  %s  %s  %s\n",
		header.Render(runewidth.FillLeft("id", cols[0])),
		header.Render(runewidth.FillRight("kind", cols[1])),
		header.Render(runewidth.FillRight("debug", cols[2])),
		header.Render("show"))
	for _, r := range rows {
		fmt.Fprintf(out, "%s  %s  %s  %s\n",
			runewidth.FillLeft(strconv.FormatUint(uint64(r.ID), 10), cols[0]),
			runewidth.FillRight(r.Kind, cols[1]),
			runewidth.FillRight(r.Debug, cols[2]),
			r.Show)
	}
}
