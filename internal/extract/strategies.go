package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// strategy resolves one field from a candidate node. Strategies for a field
// are tried in order; the first one that succeeds wins. Each is a pure
// function of the node so the fallback chain stays explicit and testable.
type strategy func(*goquery.Selection) (string, bool)

func firstMatch(sel *goquery.Selection, strategies []strategy) string {
	for _, s := range strategies {
		if v, ok := s(sel); ok {
			return v
		}
	}
	return ""
}

// textOf resolves to the normalized text of the first element matching the
// selector.
func textOf(selector string) strategy {
	return func(sel *goquery.Selection) (string, bool) {
		t := normalizeSpace(sel.Find(selector).First().Text())
		return t, t != ""
	}
}

// attrOf resolves to the named attribute of the first element matching the
// selector.
func attrOf(selector, attr string) strategy {
	return func(sel *goquery.Selection) (string, bool) {
		v, ok := sel.Find(selector).First().Attr(attr)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}
}

// selfAttr resolves to the named attribute of the candidate node itself.
func selfAttr(attr string) strategy {
	return func(sel *goquery.Selection) (string, bool) {
		v, ok := sel.Attr(attr)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}
}

// LinkedIn renders the same logical field under several class names depending
// on page variant and rollout stage. These lists are ordered from the most
// current markup to the oldest still observed in the wild.
var (
	authorNameStrategies = []strategy{
		textOf(`.update-components-actor__title span[aria-hidden="true"]`),
		textOf(`.update-components-actor__name`),
		textOf(`.feed-shared-actor__name`),
		textOf(`[data-test-id="main-feed-activity-card__entity-lockup"] a`),
	}

	authorAvatarStrategies = []strategy{
		attrOf(`.update-components-actor__avatar-image`, "src"),
		attrOf(`img.feed-shared-actor__avatar-image`, "src"),
		attrOf(`.update-components-actor__container img`, "src"),
	}

	dateStrategies = []strategy{
		textOf(`.update-components-actor__sub-description span[aria-hidden="true"]`),
		textOf(`.update-components-actor__sub-description`),
		textOf(`.feed-shared-actor__sub-description`),
		textOf(`time`),
	}

	textStrategies = []strategy{
		textOf(`.update-components-text`),
		textOf(`.feed-shared-update-v2__description`),
		textOf(`.feed-shared-text`),
		textOf(`[data-test-id="main-feed-activity-card__commentary"]`),
	}

	likesStrategies = []strategy{
		textOf(`.social-details-social-counts__reactions-count`),
		attrOf(`[aria-label*="reaction"]`, "aria-label"),
		textOf(`[data-test-id="social-actions__reaction-count"]`),
	}

	commentsStrategies = []strategy{
		textOf(`.social-details-social-counts__comments`),
		attrOf(`[aria-label*="comment"]`, "aria-label"),
		textOf(`[data-test-id="social-actions__comments"]`),
	}

	repostsStrategies = []strategy{
		textOf(`.social-details-social-counts__item--right-aligned`),
		attrOf(`[aria-label*="repost"]`, "aria-label"),
	}

	linkURLStrategies = []strategy{
		attrOf(`.update-components-article a`, "href"),
		attrOf(`[data-test-id="feed-article"] a`, "href"),
		attrOf(`a.app-aware-link[href*="lnkd.in"]`, "href"),
	}

	linkTitleStrategies = []strategy{
		textOf(`.update-components-article__title`),
		textOf(`[data-test-id="feed-article-title"]`),
	}

	linkDescriptionStrategies = []strategy{
		textOf(`.update-components-article__description`),
		textOf(`[data-test-id="feed-article-subtitle"]`),
	}

	linkImageStrategies = []strategy{
		attrOf(`.update-components-article img`, "src"),
		attrOf(`[data-test-id="feed-article"] img`, "src"),
	}
)

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
