package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/jimezsa/oppcli/internal/catalog"
	"github.com/jimezsa/oppcli/internal/saved"
	"github.com/jimezsa/oppcli/internal/view"
)

type TabsCmd struct{}

func (c *TabsCmd) Run(ctx *Context) error {
	set, err := saved.Load(ctx.Store)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join([]string{"tab", "label", "count", "filters"}, "\t"))
	for _, tab := range catalog.Tabs(set.Size()) {
		filters := "search"
		if view.ShowFilterControls(tab.ID) {
			filters = "full"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", tab.ID, tab.Label, tab.Count, filters)
	}
	return tw.Flush()
}
