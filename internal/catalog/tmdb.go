package catalog

import (
	"context"
	"fmt"

	"resty.dev/v3"
)

// Movie is the subset of a TMDB movie record this service uses.
type Movie struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Client queries The Movie Database (TMDB) discover API.
type Client struct {
	http    *resty.Client
	baseURL string
	apiKey  string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		http:    resty.New(),
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

func (c *Client) Close() error {
	return c.http.Close()
}

type discoverMoviesResponse struct {
	Results []Movie `json:"results"`
}

// DiscoverByReleaseDate returns the movies whose primary release date equals
// date (YYYY-MM-DD). One call covers a whole scheduled run, so the external
// query volume stays constant regardless of user count.
func (c *Client) DiscoverByReleaseDate(ctx context.Context, date string) ([]Movie, error) {
	result := new(discoverMoviesResponse)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api_key":                  c.apiKey,
			"primary_release_date.gte": date,
			"primary_release_date.lte": date,
		}).
		SetResult(result).
		Get(c.baseURL + "/discover/movie")
	if err != nil {
		return nil, fmt.Errorf("failed to query movie catalog: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("movie catalog returned %s", resp.Status())
	}

	return result.Results, nil
}
