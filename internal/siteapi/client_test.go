package siteapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibrahimlogs/folio/internal/logger"
	"github.com/ibrahimlogs/folio/internal/theme"
	apperrors "github.com/ibrahimlogs/folio/pkg/errors"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(logger.Options{Level: "error"})
	require.NoError(t, err)
	return log
}

func newClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	return New(Options{BaseURL: baseURL, Logger: testLogger(t)})
}

func TestFetchSiteDataUnwrapsEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/public/site-data", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"siteConfig": {"site_name": "Ada"}}}`))
	}))
	defer srv.Close()

	doc := newClient(t, srv.URL).FetchSiteData(context.Background())
	require.Equal(t, "Ada", doc.Get("siteConfig", "site_name").Str(""))
}

func TestFetchSiteDataFallsBackOnServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	doc := newClient(t, srv.URL).FetchSiteData(context.Background())
	require.Equal(t, "Portfolio", doc.Get("siteConfig", "site_name").Str(""))
	require.Equal(t, theme.V1, theme.ResolveFromDocument(doc))
}

func TestFetchSiteDataFallsBackOnConnectionRefused(t *testing.T) {
	t.Parallel()

	doc := newClient(t, "http://127.0.0.1:1").FetchSiteData(context.Background())
	require.Equal(t, "Full-stack Developer", doc.Get("siteConfig", "tagline").Str(""))
}

func TestFetchSiteDataFallsBackOnMalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	doc := newClient(t, srv.URL).FetchSiteData(context.Background())
	require.Equal(t, "Portfolio", doc.Get("siteConfig", "site_name").Str(""))
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/public/site-data", r.URL.Path)
		_, _ = w.Write([]byte(`{"data": {}}`))
	}))
	defer srv.Close()

	newClient(t, srv.URL+"/").FetchSiteData(context.Background())
}

func TestSubmitContactSendsPayload(t *testing.T) {
	t.Parallel()

	var got Message
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/public/contact", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message": "thanks"}`))
	}))
	defer srv.Close()

	msg := Message{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Building something fun."}
	require.NoError(t, newClient(t, srv.URL).SubmitContact(context.Background(), msg))
	require.Equal(t, msg, got)
	require.Equal(t, 1, calls)
}

func TestSubmitContactTreats204AsSuccess(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, newClient(t, srv.URL).SubmitContact(context.Background(), Message{Email: "a@b.c", Message: "0123456789"}))
}

func TestSubmitContactSurfacesFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := newClient(t, srv.URL).SubmitContact(context.Background(), Message{Email: "a@b.c", Message: "0123456789"})
	require.Error(t, err)

	var requestErr *apperrors.RequestError
	require.True(t, errors.As(err, &requestErr))
	require.Equal(t, http.StatusBadGateway, requestErr.Status)
}

func TestFallbackDocumentIsIndependentPerCall(t *testing.T) {
	t.Parallel()

	a := FallbackDocument()
	b := FallbackDocument()

	obj, ok := a.Raw().(map[string]any)
	require.True(t, ok)
	obj["siteConfig"] = nil

	require.Equal(t, "Portfolio", b.Get("siteConfig", "site_name").Str(""))
}
