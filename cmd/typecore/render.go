package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"typecore/internal/fixture"
	"typecore/internal/observ"
	"typecore/internal/trace"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] <fixture.toml>...",
	Short: "Render the types declared in fixture files",
	Long:  `Load each fixture into its own session and print every declared type in display form, optionally with its debug form`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().Bool("debug", false, "also print the debug form of each type")
	renderCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	renderCmd.Flags().Int("jobs", 0, "max files loaded in parallel (0=auto)")
}

// renderedType is one row of render output.
type renderedType struct {
	File  string `json:"file"`
	Name  string `json:"name"`
	Show  string `json:"show"`
	Debug string `json:"debug,omitempty"`
}

func runRender(cmd *cobra.Command, args []string) error {
	withDebug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return fmt.Errorf("failed to get debug flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(format)
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	timer := observ.NewTimer()
	var files []*fixture.File
	err = timer.Measure("load", func() (string, error) {
		files, err = loadFixtures(cmd.Context(), args, jobs)
		return strconv.Itoa(len(args)) + " files", err
	})
	if err != nil {
		return err
	}

	var rows []renderedType
	_ = timer.Measure("render", func() (string, error) {
		rows = renderFiles(files, withDebug)
		return strconv.Itoa(len(rows)) + " types", nil
	})

	out := cmd.OutOrStdout()
	if format == "json" {
		if rows == nil {
			rows = []renderedType{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			return err
		}
	} else {
		printRenderPretty(out, rows, withDebug)
	}
	if showTimings {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
	return nil
}

// loadFixtures loads every path in parallel, each into its own session, and
// returns the files in argument order.
func loadFixtures(ctx context.Context, paths []string, jobs int) ([]*fixture.File, error) {
	ctx, span := trace.Start(ctx, trace.ScopePass, "load")
	defer span.End("")

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	files := make([]*fixture.File, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, err := fixture.Load(gctx, path)
			if err != nil {
				return err
			}
			files[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

func renderFiles(files []*fixture.File, withDebug bool) []renderedType {
	var rows []renderedType
	for _, f := range files {
		p := f.Session.Printer
		for _, d := range f.Decls {
			row := renderedType{File: f.Path, Name: d.Name, Show: p.Show(d.Type)}
			if withDebug {
				row.Debug = p.Debug(d.Type)
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func printRenderPretty(out io.Writer, rows []renderedType, withDebug bool) {
	fileStyle := lipgloss.NewStyle()
	nameStyle := lipgloss.NewStyle()
	debugStyle := lipgloss.NewStyle()
	if !color.NoColor {
		fileStyle = fileStyle.Bold(true).Foreground(lipgloss.Color("6"))
		nameStyle = nameStyle.Foreground(lipgloss.Color("3"))
		debugStyle = debugStyle.Foreground(lipgloss.Color("8"))
	}

	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r.Name))
	}
	file := ""
	for _, r := range rows {
		if r.File != file {
			if file != "" {
				fmt.Fprintln(out)
			}
			file = r.File
			fmt.Fprintln(out, fileStyle.Render(file))
		}
		fmt.Fprintf(out, "  %s  %s\n", nameStyle.Render(runewidth.FillRight(r.Name, width)), r.Show)
		if withDebug {
			for _, line := range strings.Split(strings.TrimRight(r.Debug, "\n"), "\n") {
				fmt.Fprintln(out, "    "+debugStyle.Render(line))
			}
		}
	}
}
