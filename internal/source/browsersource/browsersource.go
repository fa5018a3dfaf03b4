package browsersource

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/orgball2608/linkedin-posts-exporter/internal/domain"
	"github.com/orgball2608/linkedin-posts-exporter/internal/extract"
	"github.com/orgball2608/linkedin-posts-exporter/internal/source"
	"github.com/orgball2608/linkedin-posts-exporter/pkg/config"
	"github.com/orgball2608/linkedin-posts-exporter/pkg/logger"
	"github.com/orgball2608/linkedin-posts-exporter/pkg/retry"
	"go.uber.org/fx"
)

// Dismiss selectors for the login interstitial, tried in order. All of them
// are best-effort: a missing overlay is not an error.
var overlayDismissSelectors = []string{
	`button.modal__dismiss`,
	`.artdeco-modal__dismiss`,
	`button[aria-label="Dismiss"]`,
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type BrowserImpl struct {
	Config *config.Config
	Logger logger.Logger
}

func New(opts Opts) *BrowserImpl {
	return &BrowserImpl{
		Config: opts.Config,
		Logger: opts.Logger.WithComponent("BrowserSource"),
	}
}

var _ source.Client = (*BrowserImpl)(nil)

func (b *BrowserImpl) Name() string {
	return config.SourceBrowser
}

// FetchPosts drives an isolated headless browser session: inject cookies if
// configured, navigate to the profile's posts page, dismiss the login
// interstitial, scroll on a fixed cadence for the configured bound, then
// snapshot the DOM and extract posts from the HTML.
//
// The scroll bound is a tunable timeout, not a completion signal: the
// snapshot may miss content that had not loaded yet, and scrolling may
// continue after the feed is exhausted.
func (b *BrowserImpl) FetchPosts(ctx context.Context) (*domain.Export, error) {
	scrollBound := time.Duration(b.Config.Browser.ScrollSeconds) * time.Second

	ctx, cancel := context.WithTimeout(ctx, scrollBound+2*time.Minute)
	defer cancel()

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", b.Config.Browser.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.WindowSize(1280, 1600),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	if b.Config.Browser.CookiesFile != "" {
		if err := b.injectCookies(taskCtx); err != nil {
			return nil, fmt.Errorf("failed to inject session cookies: %w", err)
		}
	}

	if err := b.navigate(taskCtx); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", b.Config.Browser.ProfileURL, err)
	}

	b.dismissOverlay(taskCtx)

	if err := b.scroll(taskCtx, scrollBound); err != nil {
		return nil, fmt.Errorf("scroll loop aborted: %w", err)
	}

	var html string
	if err := chromedp.Run(taskCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return nil, fmt.Errorf("failed to snapshot document: %w", err)
	}

	result, err := extract.FromHTML(html, extract.Options{})
	if err != nil {
		return nil, err
	}

	if len(result.Skips) > 0 {
		b.Logger.Warn("Skipped candidate nodes during extraction",
			"skipped", len(result.Skips),
			"extracted", len(result.Posts))
	}

	return &domain.Export{
		Source:    b.Name(),
		FetchedAt: time.Now(),
		Posts:     extract.Truncate(result.Posts, b.Config.Browser.MaxPosts),
		Skips:     result.Skips,
	}, nil
}

func (b *BrowserImpl) navigate(ctx context.Context) error {
	b.Logger.Info("Navigating to profile", "url", b.Config.Browser.ProfileURL)
	return retry.Do(ctx, b.Logger, "navigate", func() error {
		return chromedp.Run(ctx,
			chromedp.Navigate(b.Config.Browser.ProfileURL),
			chromedp.WaitReady("body", chromedp.ByQuery),
		)
	}, retry.DefaultConfig())
}

// dismissOverlay clicks the first known interstitial dismiss button it can
// find within a short window. Failure is swallowed: the overlay is often not
// there at all.
func (b *BrowserImpl) dismissOverlay(ctx context.Context) {
	for _, selector := range overlayDismissSelectors {
		clickCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := chromedp.Run(clickCtx, chromedp.Click(selector, chromedp.ByQuery))
		cancel()
		if err == nil {
			b.Logger.Info("Dismissed interstitial overlay", "selector", selector)
			return
		}
	}
	b.Logger.Debug("No dismissible overlay found")
}

// scroll keeps scrolling to the bottom of the page at one-second intervals
// until the bound elapses, to trigger lazy loading of feed content.
func (b *BrowserImpl) scroll(ctx context.Context, bound time.Duration) error {
	b.Logger.Info("Scrolling to load feed content", "bound", bound.String())

	deadline := time.Now().Add(bound)
	for time.Now().Before(deadline) {
		err := chromedp.Run(ctx,
			chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
		)
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}
	return nil
}
