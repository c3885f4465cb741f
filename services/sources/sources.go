// Package sources fetches daily cause-list documents from the configured
// court endpoints.
package sources

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"court_watch_go/models"
)

// Source describes one cause-list endpoint and the court it belongs to. The
// prefix and district feed case identity derivation, so they must stay stable
// across runs.
type Source struct {
	Name         string
	Endpoint     string
	FileExt      string
	Prefix       string
	CourtLevel   string
	State        string
	District     string
	CourtComplex string
}

// CauseListURL builds the per-date request URL, e.g.
// ".../result.php?file=cause_05092025.xml".
func (s Source) CauseListURL(date time.Time) string {
	return fmt.Sprintf("%s?file=cause_%s.%s", s.Endpoint, date.Format("02012006"), s.FileExt)
}

// Defaults returns the Madras High Court bench endpoints this service ships
// with.
func Defaults() []Source {
	return []Source{
		{
			Name:         "madurai-bench",
			Endpoint:     "https://mhc.tn.gov.in/judis/clists/clists-madurai/api/result.php",
			FileExt:      "xml",
			Prefix:       "TN-HC",
			CourtLevel:   models.CourtLevelHigh,
			State:        "Tamil Nadu",
			District:     "Madurai",
			CourtComplex: "Madurai High Court",
		},
		{
			Name:         "madras-bench",
			Endpoint:     "https://mhc.tn.gov.in/judis/clists/clists-madras/api/result.php",
			FileExt:      "xml",
			Prefix:       "TN-HC",
			CourtLevel:   models.CourtLevelHigh,
			State:        "Tamil Nadu",
			District:     "Chennai",
			CourtComplex: "Chennai High Court",
		},
	}
}

// Client fetches cause-list documents over HTTP.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchCauseList downloads the document for a source and date. An empty body
// means the court published nothing for that date and is not an error.
func (c *Client) FetchCauseList(src Source, date time.Time) ([]byte, error) {
	resp, err := c.httpClient.Get(src.CauseListURL(date))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
