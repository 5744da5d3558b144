// internal/app/system/pagenames/pagenames.go
//
// Package pagenames maps page codes recorded by the view counter to the
// labels printed on reports.
package pagenames

import (
	"embed"
	"encoding/json"
	"sync"
)

//go:embed pagenamedata/pagenames.json
var FS embed.FS

// Page is one known page code.
type Page struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Group string `json:"group,omitempty"`
}

var (
	loadOnce sync.Once
	pages    []Page
	byCode   map[string]Page
	loadErr  error
)

func load() {
	loadOnce.Do(func() {
		data, err := FS.ReadFile("pagenamedata/pagenames.json")
		if err != nil {
			loadErr = err
			return
		}

		var list []Page
		if err := json.Unmarshal(data, &list); err != nil {
			loadErr = err
			return
		}

		pages = list
		byCode = make(map[string]Page, len(list))
		for _, p := range list {
			byCode[p.Code] = p
		}
	})
}

// Load is optional: call it at startup to fail fast on a bad table.
func Load() error {
	load()
	return loadErr
}

// All returns the known pages in table order.
func All() ([]Page, error) {
	load()
	if loadErr != nil {
		return nil, loadErr
	}
	return pages, nil
}

// Label returns the display label for code, or code itself if unknown.
func Label(code string) string {
	load()
	if loadErr != nil {
		return code
	}
	if p, ok := byCode[code]; ok && p.Label != "" {
		return p.Label
	}
	return code
}

// Known reports whether code is in the table.
func Known(code string) bool {
	load()
	_, ok := byCode[code]
	return ok
}
