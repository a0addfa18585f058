package unsplash

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.unsplash.com"

// placeholders are served when no access key is configured, so the product
// form keeps working in local setups.
var placeholders = []string{
	"https://images.unsplash.com/photo-1505740420928-5e560c06d30e",
	"https://images.unsplash.com/photo-1523275335684-37898b6baf30",
	"https://images.unsplash.com/photo-1526170375885-4d8ecf77b99f",
	"https://images.unsplash.com/photo-1503602642458-232111445657",
	"https://images.unsplash.com/photo-1542291026-7eec264c27ff",
	"https://images.unsplash.com/photo-1560343090-f0409e92791a",
	"https://images.unsplash.com/photo-1572635196237-14b3f281503f",
	"https://images.unsplash.com/photo-1507035895480-2b3156c31fc8",
}

type Client struct {
	baseURL    string
	accessKey  string
	httpClient *http.Client
}

func NewClient(accessKey string) *Client {
	return &Client{
		baseURL:   defaultBaseURL,
		accessKey: accessKey,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type Image struct {
	ID      string `json:"id"`
	Regular string `json:"regular"`
	Thumb   string `json:"thumb"`
}

// SearchPhotos looks up candidate product images by keyword. Without an
// access key it falls back to the fixed placeholder set.
func (c *Client) SearchPhotos(ctx context.Context, query string, perPage int) ([]Image, error) {
	if perPage < 1 {
		perPage = 12
	}

	if c.accessKey == "" {
		out := make([]Image, 0, len(placeholders))
		for _, u := range placeholders {
			out = append(out, Image{ID: u, Regular: u, Thumb: u})
		}
		return out, nil
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", strconv.Itoa(perPage))

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"/search/photos?"+q.Encode(),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image search failed with status: %d", resp.StatusCode)
	}

	var result struct {
		Results []struct {
			ID   string `json:"id"`
			URLs struct {
				Regular string `json:"regular"`
				Thumb   string `json:"thumb"`
			} `json:"urls"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	images := make([]Image, 0, len(result.Results))
	for _, r := range result.Results {
		images = append(images, Image{ID: r.ID, Regular: r.URLs.Regular, Thumb: r.URLs.Thumb})
	}
	return images, nil
}
