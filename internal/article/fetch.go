package article

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	readability "github.com/go-shiori/go-readability"
	"resty.dev/v3"
)

//go:generate mockgen -source=fetch.go -destination=../mocks/article/mock_fetcher.go -package=mock_article

// Fetcher retrieves the readable content of a web page.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (title string, text string, err error)
}

// ReadabilityFetcher downloads a page and extracts its main article text,
// stripping navigation, ads, and boilerplate.
type ReadabilityFetcher struct {
	httpClient *resty.Client
}

var _ Fetcher = (*ReadabilityFetcher)(nil)

func NewReadabilityFetcher() *ReadabilityFetcher {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetHeader("User-Agent", "Mozilla/5.0 (compatible; ankai/1.0)")

	return &ReadabilityFetcher{
		httpClient: client,
	}
}

func (fetcher *ReadabilityFetcher) Close() error {
	return fetcher.httpClient.Close()
}

func (fetcher *ReadabilityFetcher) Fetch(ctx context.Context, pageURL string) (string, string, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return "", "", fmt.Errorf("url.Parse(%s) > %w", pageURL, err)
	}

	response, err := fetcher.httpClient.R().
		SetContext(ctx).
		Get(pageURL)
	if err != nil {
		return "", "", fmt.Errorf("httpClient.Get(%s) > %w", pageURL, err)
	}
	if response.IsError() {
		return "", "", fmt.Errorf("response error %d fetching %s", response.StatusCode(), pageURL)
	}

	page, err := readability.FromReader(bytes.NewReader(response.Bytes()), parsedURL)
	if err != nil {
		return "", "", fmt.Errorf("readability.FromReader(%s) > %w", pageURL, err)
	}
	return page.Title, page.TextContent, nil
}
