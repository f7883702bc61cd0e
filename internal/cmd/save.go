package cmd

import (
	"fmt"
	"strings"

	"github.com/jimezsa/oppcli/internal/saved"
)

type SaveCmd struct {
	ID string `arg:"" help:"Job id to toggle in the saved list."`
}

func (c *SaveCmd) Run(ctx *Context) error {
	id := strings.TrimSpace(c.ID)
	if id == "" {
		return fmt.Errorf("a job id is required")
	}

	set, err := saved.Load(ctx.Store)
	if err != nil {
		return err
	}

	nowSaved, err := set.Toggle(id)
	if err != nil {
		return err
	}

	ctx.Logger.Debug().
		Str("id", id).
		Bool("saved", nowSaved).
		Int("size", set.Size()).
		Msg("saved list toggled")

	if nowSaved {
		ctx.UI.Successf("Saved %s (%d saved)", id, set.Size())
	} else {
		ctx.UI.Infof("Removed %s from saved list (%d saved)", id, set.Size())
	}
	return nil
}
