// Package content serves the static copy of the public site, embedded in the binary.
package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed site.json
var siteData []byte

type Item struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Section struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Items    []Item   `json:"items"`
	About    []string `json:"about,omitempty"`
}

type Site struct {
	Experiences Section `json:"experiences"`
	Highlights  Section `json:"highlights"`
}

var (
	site    Site
	loadErr error
	once    sync.Once
)

// Get decodes the embedded document once.
func Get() (*Site, error) {
	once.Do(func() {
		if err := json.Unmarshal(siteData, &site); err != nil {
			loadErr = fmt.Errorf("failed to decode embedded site content: %w", err)

			return
		}

		log.Debug().
			Int("experiences", len(site.Experiences.Items)).
			Int("highlights", len(site.Highlights.Items)).
			Msg("Loaded embedded site content")
	})

	if loadErr != nil {
		return nil, loadErr
	}

	return &site, nil
}
