package app

import (
	"context"
	"fmt"

	"github.com/stacksapp/stacks/internal/catalog"
	"github.com/stacksapp/stacks/internal/config"
	"github.com/stacksapp/stacks/internal/mutation"
	"github.com/stacksapp/stacks/internal/prefs"
	"github.com/stacksapp/stacks/internal/state"
	"github.com/stacksapp/stacks/internal/ui"
)

// Options configure the stacks application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/stacks/prefs.toml
	APIURL     string // overrides the configured record store URL
}

// Run boots the stacks TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.APIURL != "" {
		cfg.APIURL = opts.APIURL
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := catalog.NewClient(cfg.APIURL)
	if err != nil {
		return fmt.Errorf("init record store client: %w", err)
	}

	session := state.NewStore()
	coordinator := mutation.New(client, session)

	uiOpts := ui.Options{
		Context:     ctx,
		Coordinator: coordinator,
		Session:     session,
		ThemeName:   userPrefs.Theme,
		PrefsPath:   opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
