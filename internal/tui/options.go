package tui

import (
	"github.com/pablasso/kanban/internal/config"
	"github.com/sirupsen/logrus"
)

// Options configures TUI startup behavior.
type Options struct {
	Variant config.Variant
	Window  config.Window
	Logger  logrus.FieldLogger
}
