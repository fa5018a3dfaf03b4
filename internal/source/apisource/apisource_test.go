package apisource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orgball2608/linkedin-posts-exporter/pkg/config"
	apperrors "github.com/orgball2608/linkedin-posts-exporter/pkg/errors"
	"github.com/orgball2608/linkedin-posts-exporter/pkg/logger"
	"github.com/stretchr/testify/require"
)

func testConfig(tokenURL, apiURL string) *config.Config {
	cfg := &config.Config{}
	cfg.App.Source = config.SourceAPI
	cfg.LinkedIn.OrgURN = "urn:li:organization:12345"
	cfg.LinkedIn.ClientID = "client-id"
	cfg.LinkedIn.ClientSecret = "client-secret"
	cfg.LinkedIn.TokenURL = tokenURL
	cfg.LinkedIn.APIBaseURL = apiURL
	cfg.LinkedIn.Version = "202405"
	cfg.LinkedIn.PageSize = 50
	return cfg
}

func TestFetchPostsTokenExchangeFailure(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("the posts endpoint must not be reached when the token exchange fails")
	}))
	defer apiSrv.Close()

	src := New(Opts{Config: testConfig(tokenSrv.URL, apiSrv.URL), Logger: logger.New(logger.Opts{})})

	_, err := src.FetchPosts(context.Background())
	require.Error(t, err)

	var upstream *apperrors.UpstreamError
	require.True(t, apperrors.As(err, &upstream), "token failure should surface status and body: %v", err)
	require.Equal(t, http.StatusUnauthorized, upstream.Status)
	require.Contains(t, upstream.Body, "invalid_client")
}

func TestFetchPostsRetrievalFailure(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"abc","token_type":"Bearer","expires_in":3600}`))
	}))
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer apiSrv.Close()

	src := New(Opts{Config: testConfig(tokenSrv.URL, apiSrv.URL), Logger: logger.New(logger.Opts{})})

	_, err := src.FetchPosts(context.Background())
	require.Error(t, err)

	var upstream *apperrors.UpstreamError
	require.True(t, apperrors.As(err, &upstream))
	require.Equal(t, http.StatusInternalServerError, upstream.Status)
	require.Contains(t, upstream.Body, "upstream exploded")
}

func TestFetchPostsPassthrough(t *testing.T) {
	payload := `{"elements":[{"id":"urn:li:share:1"},{"id":"urn:li:share:2"}],"paging":{"count":50}}`

	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"abc","token_type":"Bearer","expires_in":3600}`))
	}))
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/posts", r.URL.Path)
		require.Equal(t, "urn:li:organization:12345", r.URL.Query().Get("author"))
		require.Equal(t, "author", r.URL.Query().Get("q"))
		require.Equal(t, "LAST_MODIFIED", r.URL.Query().Get("sortBy"))
		require.Equal(t, "50", r.URL.Query().Get("count"))
		require.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		require.Equal(t, "202405", r.Header.Get("LinkedIn-Version"))
		require.Equal(t, "2.0.0", r.Header.Get("X-Restli-Protocol-Version"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer apiSrv.Close()

	src := New(Opts{Config: testConfig(tokenSrv.URL, apiSrv.URL), Logger: logger.New(logger.Opts{})})

	export, err := src.FetchPosts(context.Background())
	require.NoError(t, err)
	require.Equal(t, config.SourceAPI, export.Source)
	require.JSONEq(t, payload, string(export.Raw), "the upstream payload is passed through verbatim")
	require.Empty(t, export.Posts)
}

func TestFetchPostsPreIssuedTokenSkipsExchange(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("the token endpoint must not be hit when a token is pre-issued")
	}))
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer pre-issued", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"elements":[]}`))
	}))
	defer apiSrv.Close()

	cfg := testConfig(tokenSrv.URL, apiSrv.URL)
	cfg.LinkedIn.AccessToken = "pre-issued"

	src := New(Opts{Config: cfg, Logger: logger.New(logger.Opts{})})

	export, err := src.FetchPosts(context.Background())
	require.NoError(t, err)
	require.JSONEq(t, `{"elements":[]}`, string(export.Raw))
}
