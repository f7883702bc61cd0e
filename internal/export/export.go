package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jimezsa/oppcli/internal/catalog"
	"github.com/jimezsa/oppcli/internal/models"
	"github.com/jimezsa/oppcli/internal/timefmt"
	"github.com/jimezsa/oppcli/internal/view"
	"github.com/muesli/termenv"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
)

type WriteOptions struct {
	ColorEnabled bool
	Hyperlinks   bool
	LinkStyle    LinkStyle
	// Now anchors the posted/countdown labels; the zero value means the
	// wall clock.
	Now time.Time
}

type LinkStyle string

const (
	LinkStyleShort LinkStyle = "short"
	LinkStyleFull  LinkStyle = "full"
)

// Write renders the view in the requested format.
func Write(w io.Writer, v view.View, format Format, opts WriteOptions) error {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	switch format {
	case FormatJSON:
		return writeJSON(w, v)
	case FormatCSV:
		return writeCSV(w, v, ',', opts.Now)
	case FormatTSV:
		return writeCSV(w, v, '\t', opts.Now)
	case FormatMarkdown:
		return writeMarkdown(w, v, opts.Now)
	default:
		return writeTable(w, v, opts)
	}
}

func writeJSON(w io.Writer, v view.View) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	switch v.Tab {
	case catalog.TabResources:
		return enc.Encode(orEmptyResources(v.Resources))
	case catalog.TabOffers:
		return enc.Encode(orEmptyOffers(v.Offers))
	default:
		return enc.Encode(orEmptyJobs(v.Jobs))
	}
}

func writeCSV(w io.Writer, v view.View, delim rune, now time.Time) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim

	var rows [][]string
	switch v.Tab {
	case catalog.TabResources:
		rows = append(rows, resourceHeader())
		for _, r := range v.Resources {
			rows = append(rows, resourceRow(r))
		}
	case catalog.TabOffers:
		rows = append(rows, offerHeader())
		for _, o := range v.Offers {
			rows = append(rows, offerRow(o, now))
		}
	default:
		rows = append(rows, jobHeader())
		for _, j := range v.Jobs {
			rows = append(rows, jobRow(j, now))
		}
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, v view.View, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	output := termenv.NewOutput(w)

	switch v.Tab {
	case catalog.TabResources:
		fmt.Fprintln(tw, strings.Join([]string{"title", "type", "level", "provider", "url"}, "\t"))
		for _, r := range v.Resources {
			row := []string{
				safe(r.Title),
				safe(r.Type),
				safe(r.Level),
				dash(r.Provider),
				linkCell(r.URL, output, opts),
			}
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
	case catalog.TabOffers:
		fmt.Fprintln(tw, strings.Join([]string{"provider", "course", "deal", "expires", "url"}, "\t"))
		for _, o := range v.Offers {
			expires := timefmt.CountdownLabel(o.ExpiresAt, opts.Now)
			if opts.ColorEnabled && timefmt.ExpiringSoon(o.ExpiresAt, opts.Now) {
				expires = output.String(expires).Foreground(output.Color("3")).String()
			}
			row := []string{
				safe(o.Provider),
				safe(o.Course),
				dealCell(o, output, opts.ColorEnabled),
				expires,
				linkCell(o.URL, output, opts),
			}
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
	default:
		fmt.Fprintln(tw, strings.Join([]string{"id", "role", "company", "location", "pay", "posted", "url"}, "\t"))
		for _, j := range v.Jobs {
			role := safe(j.Role)
			if j.Featured {
				role += " " + featuredBadge(output, opts.ColorEnabled)
			}
			row := []string{
				safe(j.ID),
				role,
				safe(j.Company),
				safe(j.Location),
				dash(j.Compensation()),
				timefmt.PostedLabel(j.PostedAt, opts.Now),
				linkCell(j.ApplyURL, output, opts),
			}
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
	}
	return tw.Flush()
}

func writeMarkdown(w io.Writer, v view.View, now time.Time) error {
	if v.Len() == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}

	switch v.Tab {
	case catalog.TabResources:
		for _, r := range v.Resources {
			lines := []string{
				fmt.Sprintf("- **%s** (%s, %s)", safe(r.Title), safe(r.Type), safe(r.Level)),
				fmt.Sprintf("  %s", safe(r.Description)),
			}
			if r.Provider != "" {
				lines = append(lines, fmt.Sprintf("  Provider: %s", safe(r.Provider)))
			}
			lines = append(lines, markdownLink(r.URL))
			if err := writeLines(w, lines); err != nil {
				return err
			}
		}
	case catalog.TabOffers:
		for _, o := range v.Offers {
			lines := []string{
				fmt.Sprintf("- **%s** (%s)", safe(o.Course), safe(o.Provider)),
				fmt.Sprintf("  Deal: %s", dealText(o)),
				fmt.Sprintf("  Expires: %s", timefmt.CountdownLabel(o.ExpiresAt, now)),
			}
			if timefmt.ExpiringSoon(o.ExpiresAt, now) {
				lines = append(lines, "  Offer ending soon!")
			}
			lines = append(lines, markdownLink(o.URL))
			if err := writeLines(w, lines); err != nil {
				return err
			}
		}
	default:
		for _, j := range v.Jobs {
			lines := []string{
				fmt.Sprintf("- **%s** (%s)", safe(j.Role), safe(j.Company)),
				fmt.Sprintf("  Location: %s", safe(j.Location)),
				fmt.Sprintf("  Pay: %s", dash(j.Compensation())),
				fmt.Sprintf("  %s", timefmt.PostedLabel(j.PostedAt, now)),
			}
			if len(j.Tags) > 0 {
				lines = append(lines, fmt.Sprintf("  Tags: %s", strings.Join(j.Tags, ", ")))
			}
			if j.HasDeadline() {
				lines = append(lines, fmt.Sprintf("  %s", timefmt.DeadlineLabel(*j.Deadline, now)))
			}
			if j.Featured {
				lines = append(lines, "  Featured")
			}
			lines = append(lines, markdownLink(j.ApplyURL))
			if err := writeLines(w, lines); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func markdownLink(target string) string {
	if safe(target) == "" {
		return "  URL: -"
	}
	return fmt.Sprintf("  URL: [Open listing](<%s>)", safe(target))
}

func jobHeader() []string {
	return []string{
		"id",
		"role",
		"company",
		"location",
		"type",
		"experience",
		"pay",
		"posted",
		"deadline",
		"tags",
		"featured",
		"url",
	}
}

func jobRow(j models.Job, now time.Time) []string {
	deadline := ""
	if j.HasDeadline() {
		deadline = j.Deadline.Format(time.RFC3339)
	}
	return []string{
		j.ID,
		j.Role,
		j.Company,
		j.Location,
		j.Type,
		j.Experience,
		j.Compensation(),
		timefmt.PostedLabel(j.PostedAt, now),
		deadline,
		strings.Join(j.Tags, "|"),
		boolString(j.Featured),
		j.ApplyURL,
	}
}

func resourceHeader() []string {
	return []string{
		"id",
		"title",
		"type",
		"level",
		"provider",
		"description",
		"featured",
		"url",
	}
}

func resourceRow(r models.Resource) []string {
	return []string{
		r.ID,
		r.Title,
		r.Type,
		r.Level,
		r.Provider,
		r.Description,
		boolString(r.Featured),
		r.URL,
	}
}

func offerHeader() []string {
	return []string{
		"id",
		"provider",
		"course",
		"deal",
		"expires",
		"featured",
		"url",
	}
}

func offerRow(o models.Offer, now time.Time) []string {
	return []string{
		o.ID,
		o.Provider,
		o.Course,
		dealText(o),
		timefmt.CountdownLabel(o.ExpiresAt, now),
		boolString(o.Featured),
		o.URL,
	}
}

// dealText summarizes the offer pricing: "FREE", "75% OFF", or the
// bare price when no discount is derivable.
func dealText(o models.Offer) string {
	if o.IsFree {
		return "FREE"
	}
	if pct, ok := o.DiscountPercent(); ok {
		return strconv.Itoa(pct) + "% OFF"
	}
	if o.DiscountedPrice != "" {
		return o.DiscountedPrice
	}
	return dash(o.OriginalPrice)
}

func dealCell(o models.Offer, output *termenv.Output, colorEnabled bool) string {
	text := dealText(o)
	if !colorEnabled {
		return text
	}
	switch {
	case o.IsFree:
		return output.String(text).Foreground(output.Color("2")).Bold().String()
	case strings.HasSuffix(text, "% OFF"):
		return output.String(text).Foreground(output.Color("3")).Bold().String()
	default:
		return text
	}
}

func featuredBadge(output *termenv.Output, colorEnabled bool) string {
	const text = "[featured]"
	if !colorEnabled {
		return text
	}
	return output.String(text).Foreground(output.Color("5")).String()
}

func linkCell(target string, output *termenv.Output, opts WriteOptions) string {
	const linkColor = "#87CEEB"

	target = safe(target)
	if target == "" {
		return "-"
	}
	display := target
	if opts.LinkStyle == LinkStyleShort && opts.Hyperlinks {
		display = shortURLLabel(target)
	}
	if opts.ColorEnabled {
		display = output.String(display).Foreground(output.Color(linkColor)).String()
	}
	if opts.Hyperlinks {
		display = hyperlink(target, display)
	}
	return display
}

func boolString(value bool) string {
	if value {
		return "true"
	}
	return "false"
}

func safe(value string) string {
	return strings.TrimSpace(value)
}

func dash(value string) string {
	if safe(value) == "" {
		return "-"
	}
	return safe(value)
}

func orEmptyJobs(jobs []models.Job) []models.Job {
	if jobs == nil {
		return []models.Job{}
	}
	return jobs
}

func orEmptyResources(resources []models.Resource) []models.Resource {
	if resources == nil {
		return []models.Resource{}
	}
	return resources
}

func orEmptyOffers(offers []models.Offer) []models.Offer {
	if offers == nil {
		return []models.Offer{}
	}
	return offers
}

func hyperlink(target string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + target + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}

func shortURLLabel(raw string) string {
	const maxLen = 60
	label := strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil {
		host := strings.TrimPrefix(parsed.Host, "www.")
		if host != "" {
			label = host + parsed.Path
		}
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = raw
	}
	if len(label) > maxLen {
		label = label[:maxLen-3] + "..."
	}
	return label
}
