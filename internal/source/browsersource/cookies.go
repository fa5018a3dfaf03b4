package browsersource

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// Cookie mirrors the shape of a browser-exported cookie array, the usual way
// a pre-captured LinkedIn session is handed to the job.
type Cookie struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Domain   string `json:"domain"`
	Path     string `json:"path"`
	Secure   bool   `json:"secure"`
	HTTPOnly bool   `json:"httpOnly"`
}

func loadCookies(path string) ([]Cookie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cookies file: %w", err)
	}

	var cookies []Cookie
	if err := json.Unmarshal(data, &cookies); err != nil {
		return nil, fmt.Errorf("failed to parse cookies file: %w", err)
	}
	return cookies, nil
}

func (b *BrowserImpl) injectCookies(ctx context.Context) error {
	cookies, err := loadCookies(b.Config.Browser.CookiesFile)
	if err != nil {
		return err
	}

	b.Logger.Info("Injecting session cookies", "count", len(cookies))

	return chromedp.Run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		expires := cdp.TimeSinceEpoch(time.Now().Add(30 * 24 * time.Hour))
		for _, c := range cookies {
			path := c.Path
			if path == "" {
				path = "/"
			}
			err := network.SetCookie(c.Name, c.Value).
				WithDomain(c.Domain).
				WithPath(path).
				WithSecure(c.Secure).
				WithHTTPOnly(c.HTTPOnly).
				WithExpires(&expires).
				Do(ctx)
			if err != nil {
				return fmt.Errorf("failed to set cookie %q: %w", c.Name, err)
			}
		}
		return nil
	}))
}
