package cmd

import (
	"io"

	"github.com/jimezsa/oppcli/internal/config"
	"github.com/jimezsa/oppcli/internal/store"
	"github.com/jimezsa/oppcli/internal/ui"
	"github.com/rs/zerolog"
)

type Context struct {
	Out        io.Writer
	Err        io.Writer
	UI         *ui.UI
	Config     config.Config
	ConfigDir  string
	Store      store.KV
	Logger     zerolog.Logger
	JSONOutput bool
	PlainText  bool
	Version    string
	ColorMode  ui.ColorMode
}
