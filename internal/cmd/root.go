package cmd

import (
	"github.com/alecthomas/kong"
	"github.com/jimezsa/oppcli/internal/catalog"
)

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Plain   bool   `help:"TSV output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version     VersionCmd   `cmd:"" help:"Print version."`
	Config      ConfigCmd    `cmd:"" help:"Manage configuration."`
	List        ListCmd      `cmd:"" default:"withargs" help:"List the configured default tab."`
	Jobs        TabCmd       `cmd:"" help:"List full-time jobs."`
	Internships TabCmd       `cmd:"" help:"List internships."`
	Resources   TabCmd       `cmd:"" help:"List learning resources."`
	Offers      OffersCmd    `cmd:"" help:"List promotional offers."`
	Saved       TabCmd       `cmd:"" help:"List saved jobs."`
	Save        SaveCmd      `cmd:"" help:"Toggle a job in the saved list."`
	Subscribe   SubscribeCmd `cmd:"" help:"Subscribe an email for listing updates."`
	Tabs        TabsCmd      `cmd:"" help:"Print tabs with listing counts."`
}

func NewCLI() *CLI {
	return &CLI{
		Jobs:        TabCmd{Tab: catalog.TabJobs},
		Internships: TabCmd{Tab: catalog.TabInternships},
		Resources:   TabCmd{Tab: catalog.TabResources},
		Offers:      OffersCmd{TabCmd: TabCmd{Tab: catalog.TabOffers}},
		Saved:       TabCmd{Tab: catalog.TabSaved},
	}
}
