package googlebooks

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mateuszwwwrobel/bookstore/pkg/config"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"golang.org/x/time/rate"
)

// volumeFields narrows the provider response down to the fields the importer
// actually reads.
const volumeFields = "items(volumeInfo(title,authors,publishedDate,industryIdentifiers,pageCount,imageLinks(thumbnail),language))"

// Identifier kinds used by the volumes API.
const (
	IdentifierISBN13 = "ISBN_13"
	IdentifierISBN10 = "ISBN_10"
	IdentifierOther  = "OTHER"
)

type searchResponse struct {
	Items []Volume `json:"items"`
}

type Volume struct {
	VolumeInfo VolumeInfo `json:"volumeInfo"`
}

type VolumeInfo struct {
	Title               string               `json:"title"`
	Authors             []string             `json:"authors"`
	PublishedDate       string               `json:"publishedDate"`
	IndustryIdentifiers []IndustryIdentifier `json:"industryIdentifiers"`
	PageCount           int                  `json:"pageCount"`
	ImageLinks          *ImageLinks          `json:"imageLinks"`
	Language            string               `json:"language"`
}

type IndustryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

type ImageLinks struct {
	Thumbnail string `json:"thumbnail"`
}

// Client talks to the Google Books volumes API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.GoogleBooksBaseURL,
		apiKey:  cfg.GoogleBooksAPIKey,
		httpClient: &http.Client{
			Timeout: cfg.GoogleBooksTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.GoogleBooksRateLimit), 1),
	}
}

// SearchVolumes performs one volumes search for the given free-text phrase.
// A response without an items list is a miss, not an error: it comes back as
// an empty slice.
func (c *Client) SearchVolumes(ctx context.Context, phrase string) ([]Volume, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.WithStack(err)
	}

	q := url.Values{}
	q.Set("q", phrase)
	q.Set("fields", volumeFields)
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	reqURL := fmt.Sprintf("%s/volumes?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create volumes request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "volumes request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("volumes request returned status %d", resp.StatusCode)
	}

	result := searchResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "failed to decode volumes response")
	}

	return result.Items, nil
}
