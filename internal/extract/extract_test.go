package extract

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/orgball2608/linkedin-posts-exporter/internal/domain"
	"github.com/stretchr/testify/require"
)

const feedFixture = `
<html><body>
<div data-urn="urn:li:activity:7123456789012345678">
  <div class="update-components-actor">
    <img class="update-components-actor__avatar-image" src="https://media.licdn.com/avatar.jpg"/>
    <span class="update-components-actor__title"><span aria-hidden="true">Acme Corp</span></span>
    <span class="update-components-actor__sub-description"><span aria-hidden="true">2w • Edited</span></span>
  </div>
  <div class="update-components-text">  We are   hiring!
     Join our team.  </div>
  <div class="update-components-image">
    <img src="https://media.licdn.com/image-1.jpg"/>
    <img src="https://media.licdn.com/image-2.jpg"/>
    <img src="https://media.licdn.com/image-1.jpg"/>
    <img src="https://www.linkedin.com/px.gif" width="1" height="1"/>
  </div>
  <div class="social-details-social-counts">
    <span class="social-details-social-counts__reactions-count">1,234</span>
    <span class="social-details-social-counts__comments">56 comments</span>
    <span class="social-details-social-counts__item--right-aligned">7 reposts</span>
  </div>
</div>
<div data-urn="urn:li:activity:8888888888888888888">
  <div class="unknown-markup"></div>
</div>
</body></html>`

func TestFromHTMLWellFormedAndMalformed(t *testing.T) {
	result, err := FromHTML(feedFixture, Options{})
	require.NoError(t, err)

	require.Len(t, result.Posts, 1, "the malformed node must not abort the batch")
	require.Len(t, result.Skips, 1)
	require.Equal(t, 1, result.Skips[0].Index)
	require.Equal(t, "no text or images", result.Skips[0].Reason)

	post := result.Posts[0]
	require.Equal(t, "7123456789012345678", post.ID)
	require.Equal(t, "https://www.linkedin.com/feed/update/urn:li:activity:7123456789012345678", post.URL)
	require.Equal(t, "Acme Corp", post.Author.Name)
	require.Equal(t, "https://media.licdn.com/avatar.jpg", post.Author.Avatar)
	require.Equal(t, "2w • Edited", post.Date)
	require.Equal(t, "We are hiring! Join our team.", post.Text)
	require.Equal(t, domain.Counts{Likes: 1234, Comments: 56, Reposts: 7}, post.Counts)
}

func TestImageSetSemantics(t *testing.T) {
	result, err := FromHTML(feedFixture, Options{})
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)

	// De-duplicated, first-occurrence order, decorative images excluded.
	require.Equal(t, []string{
		"https://media.licdn.com/image-1.jpg",
		"https://media.licdn.com/image-2.jpg",
	}, result.Posts[0].Images)
}

func TestTextOnlyPostImagesSerializeAsArray(t *testing.T) {
	html := `<div data-urn="urn:li:activity:7000000000000000003">
	  <div class="update-components-text">Words only, no pictures</div>
	</div>`

	result, err := FromHTML(html, Options{})
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	require.NotNil(t, result.Posts[0].Images)
	require.Empty(t, result.Posts[0].Images)

	data, err := json.Marshal(result.Posts[0])
	require.NoError(t, err)
	require.Contains(t, string(data), `"images":[]`)
	require.NotContains(t, string(data), `"images":null`)
}

func TestResharedPostYieldsOneRecordPerCard(t *testing.T) {
	html := `
	<div data-urn="urn:li:activity:7100000000000000001">
	  <div class="update-components-text">Sharing this great post</div>
	  <div data-urn="urn:li:activity:7100000000000000002">
	    <div class="update-components-text">The original post</div>
	  </div>
	</div>`

	result, err := FromHTML(html, Options{})
	require.NoError(t, err)

	require.Len(t, result.Posts, 1, "nested activity nodes belong to the same card")
	require.Empty(t, result.Skips)
	require.Equal(t, "7100000000000000001", result.Posts[0].ID)
}

func TestHeightDeclaredPixelExcluded(t *testing.T) {
	html := `<div data-urn="urn:li:activity:7000000000000000004">
	  <div class="update-components-image">
	    <img src="https://media.licdn.com/real-photo.jpg"/>
	    <img src="https://www.linkedin.com/beacon.gif" height="1"/>
	  </div>
	</div>`

	result, err := FromHTML(html, Options{})
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	require.Equal(t, []string{"https://media.licdn.com/real-photo.jpg"}, result.Posts[0].Images)
}

func TestLinkPreview(t *testing.T) {
	html := `
	<div data-urn="urn:li:activity:7000000000000000001">
	  <div class="update-components-text">Check this out</div>
	  <div class="update-components-article">
	    <a href="https://example.com/article">read</a>
	    <div class="update-components-article__title">Example Title</div>
	    <div class="update-components-article__description">Example description</div>
	    <img src="https://media.licdn.com/preview.jpg"/>
	  </div>
	</div>`

	result, err := FromHTML(html, Options{})
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)

	link := result.Posts[0].Link
	require.NotNil(t, link)
	require.Equal(t, "https://example.com/article", link.URL)
	require.Equal(t, "Example Title", link.Title)
	require.Equal(t, "Example description", link.Description)
	require.Equal(t, "https://media.licdn.com/preview.jpg", link.Image)
}

func TestNoLinkPreview(t *testing.T) {
	html := `<div data-urn="urn:li:activity:7000000000000000002">
	  <div class="update-components-text">Plain text post</div>
	</div>`

	result, err := FromHTML(html, Options{})
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	require.Nil(t, result.Posts[0].Link)
	require.Equal(t, domain.Counts{}, result.Posts[0].Counts)
}

func TestArticleFallbackAndDefaultAuthor(t *testing.T) {
	html := `
	<article>
	  <div class="feed-shared-text">Legacy markup post</div>
	</article>`

	result, err := FromHTML(html, Options{})
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)

	post := result.Posts[0]
	require.Empty(t, post.ID)
	require.Equal(t, DefaultAuthorName, post.Author.Name)
	require.Equal(t, "Legacy markup post", post.Text)
}

func TestDefaultAuthorOverride(t *testing.T) {
	html := `<article><div class="feed-shared-text">hello</div></article>`

	result, err := FromHTML(html, Options{DefaultAuthor: "Acme"})
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	require.Equal(t, "Acme", result.Posts[0].Author.Name)
}

func TestTruncate(t *testing.T) {
	var posts []domain.Post
	for i := 0; i < 5; i++ {
		posts = append(posts, domain.Post{ID: fmt.Sprintf("%d", i)})
	}

	capped := Truncate(posts, 3)
	require.Len(t, capped, 3)
	for i, post := range capped {
		require.Equal(t, fmt.Sprintf("%d", i), post.ID, "relative order of the retained prefix must hold")
	}

	require.Len(t, Truncate(posts, 0), 5, "zero means no cap")
	require.Len(t, Truncate(posts, 10), 5)
}
