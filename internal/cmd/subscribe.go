package cmd

import (
	"fmt"
	"strings"
)

// subscribeKey is the storage key the subscribed address lives under.
const subscribeKey = "subscribedEmail"

type SubscribeCmd struct {
	Email string `arg:"" help:"Email address to receive listing updates."`
}

func (c *SubscribeCmd) Run(ctx *Context) error {
	email := strings.TrimSpace(c.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address: %q", c.Email)
	}

	if err := ctx.Store.Set(subscribeKey, email); err != nil {
		return fmt.Errorf("store subscription: %w", err)
	}

	ctx.UI.Successf("Subscribed %s for listing updates", email)
	return nil
}
