package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jimezsa/oppcli/internal/catalog"
	"github.com/jimezsa/oppcli/internal/export"
	"github.com/jimezsa/oppcli/internal/models"
	"github.com/jimezsa/oppcli/internal/saved"
	"github.com/jimezsa/oppcli/internal/ui"
	"github.com/jimezsa/oppcli/internal/view"
	"github.com/muesli/termenv"
)

type TabCmd struct {
	Query string `arg:"" optional:"" help:"Free-text search over the listing."`
	ListOptions
	Tab catalog.Tab `kong:"-"`
}

type ListCmd struct {
	Query string `arg:"" optional:"" help:"Free-text search over the listing."`
	ListOptions
}

// Run lists the tab configured as default_tab, falling back to jobs for
// unrecognized values.
func (c *ListCmd) Run(ctx *Context) error {
	tab, ok := catalog.ParseTab(ctx.Config.DefaultTab)
	if !ok {
		tab = catalog.TabJobs
	}
	return runList(ctx, tab, c.Query, c.ListOptions)
}

type OffersCmd struct {
	TabCmd
	Watch bool `help:"Keep rendering, refreshing the expiry countdown every minute."`
}

type ListOptions struct {
	Location   string `help:"Location filter (substring match)."`
	Experience string `help:"Experience bracket filter." enum:",0-1,1-3,3-5,5+" default:""`
	Type       string `help:"Employment type filter." enum:",Full-time,Internship,Contract" default:""`
	Remote     bool   `help:"Remote-only listings."`
	Format     string `help:"Output format: csv, json, md, tsv, table." enum:",csv,json,md,tsv,table" default:""`
	Links      string `help:"Table link display: short or full." enum:"short,full" default:"full"`
	Output     string `name:"output" short:"o" help:"Write output to a file."`
}

func (c *TabCmd) Run(ctx *Context) error {
	return runList(ctx, c.Tab, c.Query, c.ListOptions)
}

func (c *OffersCmd) Run(ctx *Context) error {
	if c.Watch {
		return runWatch(ctx, c.Query, c.ListOptions)
	}
	return runList(ctx, c.Tab, c.Query, c.ListOptions)
}

func runList(ctx *Context, tab catalog.Tab, query string, opts ListOptions) error {
	criteria, err := buildCriteria(tab, query, opts, ctx.Config.DefaultLocation)
	if err != nil {
		return err
	}

	savedSet, err := saved.Load(ctx.Store)
	if err != nil {
		return err
	}

	selected := view.Default().Select(tab, criteria, savedSet)
	ctx.Logger.Debug().
		Str("tab", string(tab)).
		Int("results", selected.Len()).
		Msg("view selected")

	format, err := resolveFormat(ctx, opts)
	if err != nil {
		return err
	}

	writer := ctx.Out
	var file *os.File
	if opts.Output != "" {
		file, err = os.Create(opts.Output)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	if err := writeView(ctx, writer, selected, format, opts); err != nil {
		return err
	}

	if selected.Len() == 0 && ctx.UI != nil && opts.Output == "" {
		if tab == catalog.TabSaved && criteria.IsZero() {
			ctx.UI.Warnf("No saved jobs yet. Save one with: oppcli save <id>")
		} else {
			ctx.UI.Warnf("No results. Try adjusting your search or filters.")
		}
	}

	printListSummary(ctx, selected)
	return nil
}

// runWatch re-renders the offers table on a fixed cadence so the expiry
// countdown stays current, until interrupted.
func runWatch(ctx *Context, query string, opts ListOptions) error {
	if opts.Output != "" {
		return fmt.Errorf("--watch does not support --output")
	}
	format, err := resolveFormat(ctx, opts)
	if err != nil {
		return err
	}
	if format != export.FormatTable {
		return fmt.Errorf("--watch only supports table output")
	}

	criteria, err := buildCriteria(catalog.TabOffers, query, opts, ctx.Config.DefaultLocation)
	if err != nil {
		return err
	}

	interval := time.Duration(ctx.Config.WatchSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}

	render := func() error {
		if ctx.UI != nil {
			ctx.UI.ClearScreen()
		}
		selected := view.Default().Select(catalog.TabOffers, criteria, nil)
		return writeView(ctx, ctx.Out, selected, export.FormatTable, opts)
	}

	if err := render(); err != nil {
		return err
	}

	watchCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-watchCtx.Done():
			return nil
		case <-ticker.C:
			if err := render(); err != nil {
				return err
			}
		}
	}
}

func writeView(ctx *Context, writer io.Writer, selected view.View, format export.Format, opts ListOptions) error {
	colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled
	hyperlinks := colorEnabled && (ctx.ColorMode == ui.ColorAlways || isTTY(writer))
	linkStyle := export.LinkStyleFull
	if strings.EqualFold(opts.Links, string(export.LinkStyleShort)) {
		linkStyle = export.LinkStyleShort
	}
	return export.Write(writer, selected, format, export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   hyperlinks,
		LinkStyle:    linkStyle,
	})
}

// buildCriteria assembles the filter criteria for a tab, rejecting
// facet flags on tabs that only expose the search box. The configured
// default location only applies on tabs that expose the location
// filter, and an explicit --location wins over it.
func buildCriteria(tab catalog.Tab, query string, opts ListOptions, defaultLocation string) (models.Criteria, error) {
	criteria := models.Criteria{
		Search:     query,
		Location:   opts.Location,
		Experience: opts.Experience,
		Type:       opts.Type,
		Remote:     opts.Remote,
	}
	if !view.ShowFilterControls(tab) {
		facets := criteria
		facets.Search = ""
		if !facets.IsZero() {
			return models.Criteria{}, fmt.Errorf("%s listings only support free-text search", tab)
		}
		return criteria, nil
	}
	if criteria.Location == "" {
		criteria.Location = defaultLocation
	}
	return criteria, nil
}

func printListSummary(ctx *Context, selected view.View) {
	if ctx == nil || ctx.Err == nil {
		return
	}
	fmt.Fprintf(ctx.Err, "summary: tab=%s results=%d catalog_updated=%s\n",
		selected.Tab, selected.Len(), humanize.Time(catalog.UpdatedAt))
}

func resolveFormat(ctx *Context, opts ListOptions) (export.Format, error) {
	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	if opts.Format != "" {
		return parseFormat(opts.Format)
	}
	if opts.Output != "" {
		return export.FormatCSV, nil
	}
	if isTTY(ctx.Out) {
		return export.FormatTable, nil
	}
	return export.FormatCSV, nil
}

func parseFormat(value string) (export.Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return export.FormatCSV, nil
	case "json":
		return export.FormatJSON, nil
	case "md", "markdown":
		return export.FormatMarkdown, nil
	case "tsv":
		return export.FormatTSV, nil
	case "table", "":
		return export.FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}
