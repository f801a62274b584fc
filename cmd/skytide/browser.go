package main

import (
	"github.com/pkg/browser"
)

// openURL opens the URL in the system browser when the session was started
// with --browser; otherwise it does nothing and the printed URL stands alone.
func (app *App) openURL(url string) {
	if !app.opts.OpenBrowser || url == "" {
		return
	}
	if err := browser.OpenURL(url); err != nil {
		app.logger.Warn("failed to open browser", "url", url, "error", err)
	}
}
