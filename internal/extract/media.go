package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/orgball2608/linkedin-posts-exporter/internal/domain"
	"github.com/orgball2608/linkedin-posts-exporter/pkg/formatter"
)

// Substrings that mark an img as decorative or tracking rather than post
// content: avatars, reaction icons, emoji, ghost placeholders, pixels.
var decorativeMarkers = []string{
	"avatar",
	"actor__",
	"profile-displayphoto",
	"profile-framedphoto",
	"company-logo",
	"reactions-icon",
	"emoji",
	"ghost",
	"pixel",
	"spacer",
	"data:image",
}

// extractImages collects content image URLs with set semantics: de-duplicated
// by URL, insertion order preserved. The result is never nil so the field
// always serializes as an array.
func extractImages(sel *goquery.Selection) []string {
	images := []string{}
	seen := make(map[string]struct{})

	sel.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr("src")
		if !ok {
			return
		}
		src = strings.TrimSpace(src)
		if src == "" || isDecorative(img, src) {
			return
		}
		if _, dup := seen[src]; dup {
			return
		}
		seen[src] = struct{}{}
		images = append(images, src)
	})

	return images
}

func isDecorative(img *goquery.Selection, src string) bool {
	class, _ := img.Attr("class")
	haystack := strings.ToLower(src + " " + class)
	for _, marker := range decorativeMarkers {
		if strings.Contains(haystack, marker) {
			return true
		}
	}
	// 1x1 images are tracking pixels regardless of naming, whichever
	// dimension declares it.
	if w, ok := img.Attr("width"); ok && w == "1" {
		return true
	}
	if h, ok := img.Attr("height"); ok && h == "1" {
		return true
	}
	return false
}

// extractLinkPreview returns the shared-article preview if the node carries
// one, nil otherwise.
func extractLinkPreview(sel *goquery.Selection) *domain.LinkPreview {
	url := firstMatch(sel, linkURLStrategies)
	if url == "" {
		return nil
	}
	return &domain.LinkPreview{
		URL:         url,
		Title:       firstMatch(sel, linkTitleStrategies),
		Description: firstMatch(sel, linkDescriptionStrategies),
		Image:       firstMatch(sel, linkImageStrategies),
	}
}

func extractCounts(sel *goquery.Selection) domain.Counts {
	return domain.Counts{
		Likes:    formatter.ParseCount(firstMatch(sel, likesStrategies)),
		Comments: formatter.ParseCount(firstMatch(sel, commentsStrategies)),
		Reposts:  formatter.ParseCount(firstMatch(sel, repostsStrategies)),
	}
}
