// Package siteapi talks to the remote portfolio content API.
package siteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ibrahimlogs/folio/internal/jsondoc"
	"github.com/ibrahimlogs/folio/internal/logger"
	apperrors "github.com/ibrahimlogs/folio/pkg/errors"
)

const (
	siteDataPath = "/api/public/site-data"
	contactPath  = "/api/public/contact"
)

// Message is a contact-form submission payload.
type Message struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// Client calls the content API. Fetch failures never surface to callers;
// they degrade to the canned fallback document.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     *logger.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Logger  *logger.Logger
}

// New creates a Client. A trailing slash on the base URL is trimmed.
func New(opts Options) *Client {
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		httpc:   &http.Client{Timeout: opts.Timeout},
		log:     opts.Logger.WithComponent("siteapi"),
	}
}

// FetchSiteData retrieves the raw site document. Transport failures, bad
// status codes, and undecodable bodies are absorbed: the method logs a
// warning and returns the fallback document instead of an error, so mappers
// only ever see a document.
func (c *Client) FetchSiteData(ctx context.Context) jsondoc.Value {
	doc, err := c.getSiteData(ctx)
	if err != nil {
		c.log.WithFields(map[string]any{"path": siteDataPath}).Error(err, "site data fetch failed, using fallback content")
		return FallbackDocument()
	}
	return doc
}

func (c *Client) getSiteData(ctx context.Context) (jsondoc.Value, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+siteDataPath, nil)
	if err != nil {
		return jsondoc.Value{}, apperrors.NewRequestError(http.MethodGet, siteDataPath, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpc.Do(req)
	if err != nil {
		return jsondoc.Value{}, apperrors.NewRequestError(http.MethodGet, siteDataPath, 0, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return jsondoc.Value{}, apperrors.NewRequestError(http.MethodGet, siteDataPath, res.StatusCode, nil)
	}
	if res.StatusCode == http.StatusNoContent {
		return jsondoc.Wrap(map[string]any{}), nil
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return jsondoc.Value{}, apperrors.NewRequestError(http.MethodGet, siteDataPath, 0, err)
	}

	doc, err := jsondoc.Decode(body)
	if err != nil {
		return jsondoc.Value{}, apperrors.NewDecodeError(siteDataPath, err)
	}

	// The API wraps the document in a data envelope.
	if inner := doc.Get("data"); inner.Exists() {
		doc = inner
	}
	return doc, nil
}

// SubmitContact posts one contact message. Unlike fetching, failures are
// surfaced: the caller shows a transient error and the user may resubmit.
// A 204 response counts as success with an empty body.
func (c *Client) SubmitContact(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode contact payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+contactPath, bytes.NewReader(payload))
	if err != nil {
		return apperrors.NewRequestError(http.MethodPost, contactPath, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpc.Do(req)
	if err != nil {
		return apperrors.NewRequestError(http.MethodPost, contactPath, 0, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return apperrors.NewRequestError(http.MethodPost, contactPath, res.StatusCode, nil)
	}

	c.log.Debug("contact message accepted")
	return nil
}
