package scraper

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Navigation budgets. Index pages get a longer idle grace because ad
// and analytics traffic keeps many news sites from ever going fully idle.
const (
	// DefaultNavTimeout applies when a source carries no timeout of its own
	DefaultNavTimeout = 60 * time.Second

	indexIdleGrace   = 10 * time.Second
	articleIdleGrace = 8 * time.Second
)

// Browser wraps a single headless Chromium instance shared by the whole
// scraping run. Sources get isolated incognito contexts on top of it.
type Browser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// NewBrowser launches headless Chromium with the flags Lambda requires
// and connects to it. BROWSER_BIN overrides the binary path (set by the
// container image); without it rod resolves a local browser.
func NewBrowser() (*Browser, error) {
	l := launcher.New().
		Headless(true).
		NoSandbox(true).
		Set("disable-gpu").
		Set("disable-dev-shm-usage").
		Set("single-process")

	if bin := os.Getenv("BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return &Browser{browser: browser, launcher: l}, nil
}

// NewContext creates an isolated incognito context so cookies and
// storage never leak between sources.
func (b *Browser) NewContext() (*rod.Browser, error) {
	ctx, err := b.browser.Incognito()
	if err != nil {
		return nil, fmt.Errorf("failed to create incognito context: %w", err)
	}
	return ctx, nil
}

// CloseContext disposes an incognito context and every page in it.
func (b *Browser) CloseContext(ctx *rod.Browser) {
	err := proto.TargetDisposeBrowserContext{
		BrowserContextID: ctx.BrowserContextID,
	}.Call(b.browser)
	if err != nil {
		log.Printf("Warning: failed to dispose browser context: %v", err)
	}
}

// NewPage opens a blank page in the given context
func (b *Browser) NewPage(ctx *rod.Browser) (*rod.Page, error) {
	page, err := ctx.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	return page, nil
}

// Close shuts down the browser and kills the Chromium process
func (b *Browser) Close() {
	if err := b.browser.Close(); err != nil {
		log.Printf("Warning: failed to close browser: %v", err)
	}
	b.launcher.Kill()
}

// navigate loads a URL waiting for DOMContentLoaded within timeout,
// then gives the page a bounded grace period to approach network idle.
// The idle wait is best effort: running out of grace is not an error.
func navigate(page *rod.Page, url string, timeout, idleGrace time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultNavTimeout
	}
	timed := page.Timeout(timeout)
	wait := timed.WaitNavigation(proto.PageLifecycleEventNameDOMContentLoaded)
	if err := timed.Navigate(url); err != nil {
		return fmt.Errorf("navigation to %s failed: %w", url, err)
	}
	wait()

	idle := page.Timeout(idleGrace).WaitNavigation(proto.PageLifecycleEventNameNetworkAlmostIdle)
	idle()

	return nil
}
