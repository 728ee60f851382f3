// Package crates provides a client for the crates.io package registry.
package crates

import (
	"context"
	"errors"
	"fmt"

	"github.com/matzehuels/cargoadd/pkg/httputil"
	"github.com/matzehuels/cargoadd/pkg/registry"
)

// CrateInfo holds metadata for a crate from crates.io.
// Version contains max_version (the highest published version).
type CrateInfo struct {
	Name        string // Crate name (e.g., "serde")
	Version     string // Latest version (e.g., "1.0.193")
	Description string // Crate description (may be empty)
	License     string // License identifier(s) (may be empty)
	Repository  string // Repository URL (may be empty)
	Downloads   int    // Total download count across all versions
}

// Client provides access to the crates.io registry API, with response
// caching and automatic retries.
//
// crates.io requires a User-Agent header; the client sets one automatically.
type Client struct {
	*registry.Client
	baseURL string
}

// NewClient creates a crates.io client backed by the given cache.
// Responses are cached under the "crates:" namespace.
func NewClient(cache *httputil.Cache) *Client {
	headers := map[string]string{
		"User-Agent": "cargo-add/1.0 (https://github.com/matzehuels/cargoadd)",
	}
	return &Client{
		Client:  registry.NewClient(cache.Namespace("crates:"), headers),
		baseURL: "https://crates.io/api/v1",
	}
}

// FetchCrate retrieves metadata for a crate from crates.io in a single
// API call. If refresh is true the cache is bypassed.
//
// Returns [registry.ErrNotFound] (wrapped) if the crate doesn't exist and
// [registry.ErrNetwork] for HTTP failures.
func (c *Client) FetchCrate(ctx context.Context, crate string, refresh bool) (*CrateInfo, error) {
	var info CrateInfo
	err := c.Cached(ctx, crate, refresh, &info, func() error {
		return c.fetch(ctx, crate, &info)
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) fetch(ctx context.Context, crate string, info *CrateInfo) error {
	var data crateResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/crates/%s", c.baseURL, crate), &data); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return fmt.Errorf("%w: crate %s", err, crate)
		}
		return err
	}

	*info = CrateInfo{
		Name:        data.Crate.Name,
		Version:     data.Crate.MaxVersion,
		Description: data.Crate.Description,
		License:     data.Crate.License,
		Repository:  data.Crate.Repository,
		Downloads:   data.Crate.Downloads,
	}
	return nil
}

type crateResponse struct {
	Crate struct {
		Name        string `json:"name"`
		MaxVersion  string `json:"max_version"`
		Description string `json:"description"`
		License     string `json:"license"`
		Repository  string `json:"repository"`
		Downloads   int    `json:"downloads"`
	} `json:"crate"`
}
