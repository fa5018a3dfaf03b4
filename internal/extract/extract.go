package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/orgball2608/linkedin-posts-exporter/internal/domain"
)

// DefaultAuthorName is used when no author strategy resolves. The feed being
// scraped belongs to a single known organization, so a fixed label is an
// acceptable fallback.
const DefaultAuthorName = "LinkedIn"

const permalinkPrefix = "https://www.linkedin.com/feed/update/urn:li:activity:"

var activityIDPattern = regexp.MustCompile(`urn:li:activity:(\d+)`)

type Options struct {
	// DefaultAuthor overrides DefaultAuthorName when set.
	DefaultAuthor string
}

// Result is the outcome of one extraction pass: the posts that could be
// normalized plus a skip record per candidate node that could not.
type Result struct {
	Posts []domain.Post
	Skips []domain.Skip
}

// FromHTML parses a rendered feed snapshot and maps every candidate node into
// a Post. A malformed candidate never aborts the batch; it is recorded as a
// Skip and processing continues with the next node.
func FromHTML(html string, opts Options) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	candidates := doc.Find(`[data-urn*="activity"]`)
	if candidates.Length() == 0 {
		candidates = doc.Find("article")
	}

	result := &Result{}
	candidates.Each(func(i int, sel *goquery.Selection) {
		// A reshared post nests another activity node inside its wrapper;
		// only the outermost node of a card is a candidate.
		if sel.ParentsFiltered(`[data-urn*="activity"]`).Length() > 0 {
			return
		}

		post, err := extractPost(sel, opts)
		if err != nil {
			result.Skips = append(result.Skips, domain.Skip{Index: i, Reason: err.Error()})
			return
		}
		result.Posts = append(result.Posts, *post)
	})

	return result, nil
}

// Truncate caps posts to max, preserving the relative order of the retained
// prefix. A max of zero or less means no cap.
func Truncate(posts []domain.Post, max int) []domain.Post {
	if max > 0 && len(posts) > max {
		return posts[:max]
	}
	return posts
}

func extractPost(sel *goquery.Selection, opts Options) (*domain.Post, error) {
	post := &domain.Post{
		ID:     extractActivityID(sel),
		Date:   firstMatch(sel, dateStrategies),
		Text:   firstMatch(sel, textStrategies),
		Images: extractImages(sel),
		Link:   extractLinkPreview(sel),
		Counts: extractCounts(sel),
	}

	post.Author = domain.Author{
		Name:   firstMatch(sel, authorNameStrategies),
		Avatar: firstMatch(sel, authorAvatarStrategies),
	}
	if post.Author.Name == "" {
		if opts.DefaultAuthor != "" {
			post.Author.Name = opts.DefaultAuthor
		} else {
			post.Author.Name = DefaultAuthorName
		}
	}

	if post.ID != "" {
		post.URL = permalinkPrefix + post.ID
	} else {
		post.URL = extractPermalink(sel)
	}

	if !post.HasContent() {
		return nil, fmt.Errorf("no text or images")
	}
	return post, nil
}

func extractActivityID(sel *goquery.Selection) string {
	if urn, ok := sel.Attr("data-urn"); ok {
		if m := activityIDPattern.FindStringSubmatch(urn); m != nil {
			return m[1]
		}
	}
	if urn, ok := sel.Find(`[data-urn*="activity"]`).First().Attr("data-urn"); ok {
		if m := activityIDPattern.FindStringSubmatch(urn); m != nil {
			return m[1]
		}
	}
	if href, ok := sel.Find(`a[href*="urn:li:activity:"]`).First().Attr("href"); ok {
		if m := activityIDPattern.FindStringSubmatch(href); m != nil {
			return m[1]
		}
	}
	return ""
}

func extractPermalink(sel *goquery.Selection) string {
	href, _ := sel.Find(`a[href*="/feed/update/"]`).First().Attr("href")
	return strings.TrimSpace(href)
}
