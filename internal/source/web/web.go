// Package web reads the employee table from a hosted spreadsheet's CSV
// export endpoint.
package web

import (
	"context"
	"fmt"

	"github.com/crimson-sun/orgchart/internal/source"
	"github.com/crimson-sun/orgchart/internal/source/httpclient"
)

func init() {
	source.Register("web", func(cfg source.Config) (source.Source, error) {
		if cfg.URL == "" {
			return nil, fmt.Errorf("web source: url is required")
		}
		return New(cfg.URL, cfg.Token), nil
	})
}

// Source fetches a CSV export URL once per invocation.
type Source struct {
	url    string
	client *httpclient.Client
}

// New creates a web source for the given CSV export URL.
// An empty token disables authentication.
func New(url, token string) *Source {
	return &Source{url: url, client: httpclient.New(token)}
}

func (s *Source) Rows(ctx context.Context) ([][]string, error) {
	rows, err := s.client.GetCSV(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("web source: fetch %s: %w", s.url, err)
	}
	return rows, nil
}
