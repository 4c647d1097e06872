package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/starford/sitekit/internal/apperr"
)

// atomFeed covers the subset of a YouTube channel Atom feed we read.
type atomFeed struct {
	Entries []atomEntry `xml:"http://www.w3.org/2005/Atom entry"`
}

type atomEntry struct {
	ID        string     `xml:"http://www.w3.org/2005/Atom id"`
	VideoID   string     `xml:"http://www.youtube.com/xml/schemas/2015 videoId"`
	Title     string     `xml:"http://www.w3.org/2005/Atom title"`
	Published string     `xml:"http://www.w3.org/2005/Atom published"`
	Links     []atomLink `xml:"http://www.w3.org/2005/Atom link"`
	Media     mediaGroup `xml:"http://search.yahoo.com/mrss/ group"`
}

type atomLink struct {
	Rel  string `xml:"rel,attr"`
	Href string `xml:"href,attr"`
}

type mediaGroup struct {
	Description string `xml:"http://search.yahoo.com/mrss/ description"`
	Thumbnail   struct {
		URL string `xml:"url,attr"`
	} `xml:"http://search.yahoo.com/mrss/ thumbnail"`
}

// Parse decodes an Atom video feed into episodes, newest first.
func Parse(r io.Reader) ([]Episode, error) {
	var f atomFeed
	if err := xml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("feed: parse atom: %w", err)
	}

	eps := make([]Episode, 0, len(f.Entries))
	for _, e := range f.Entries {
		ep := Episode{
			ID:          e.VideoID,
			Title:       strings.TrimSpace(e.Title),
			Thumbnail:   e.Media.Thumbnail.URL,
			Description: firstParagraph(e.Media.Description),
		}
		if ep.ID == "" {
			ep.ID = e.ID
		}
		for _, l := range e.Links {
			if l.Rel == "" || l.Rel == "alternate" {
				ep.URL = l.Href
				break
			}
		}
		if t, err := time.Parse(time.RFC3339, e.Published); err == nil {
			ep.Published = t.UTC()
		}
		if ep.Title == "" || ep.URL == "" {
			continue
		}
		eps = append(eps, ep)
	}
	sortNewest(eps)
	return eps, nil
}

// Scrape fetches the feed at url and parses it.
func Scrape(ctx context.Context, client *http.Client, url string) ([]Episode, error) {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("feed: build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: feed: %v", apperr.ErrUpstream, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: feed: status %d", apperr.ErrUpstream, resp.StatusCode)
	}
	return Parse(io.LimitReader(resp.Body, 8<<20))
}

func firstParagraph(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "\n\n"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
