package services

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"sync"
)

//go:embed data/court_reference.json
var refFS embed.FS

// referenceData holds the lookup tables the pipeline depends on: the raw
// case-type code map, the legal-boilerplate word list used by name cleaning,
// the procedural noise words used by fuzzy matching, and the month-name map
// used by hearing time extraction. The tables are data, not logic: the
// embedded defaults can be replaced wholesale from a file at startup.
type referenceData struct {
	CaseTypes        map[string]string `json:"case_types"`
	BoilerplateWords []string          `json:"boilerplate_words"`
	NoiseWords       []string          `json:"noise_words"`
	Months           map[string]int    `json:"months"`

	boilerplateRe *regexp.Regexp
	noiseRe       *regexp.Regexp
	noiseSet      map[string]bool
}

var (
	refMu   sync.RWMutex
	refOnce sync.Once
	ref     *referenceData
)

// LoadReferenceData loads the lookup tables, from path if non-empty or from
// the embedded defaults otherwise. Safe to call more than once; the most
// recent successful load wins.
func LoadReferenceData(path string) error {
	var content []byte
	var err error

	if path != "" {
		content, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read reference data %s: %w", path, err)
		}
	} else {
		content, err = refFS.ReadFile("data/court_reference.json")
		if err != nil {
			return fmt.Errorf("failed to read embedded reference data: %w", err)
		}
	}

	loaded := &referenceData{}
	if err := json.Unmarshal(content, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal reference data: %w", err)
	}
	if err := loaded.compile(); err != nil {
		return err
	}

	refMu.Lock()
	ref = loaded
	refMu.Unlock()

	log.Printf("Loaded court reference data: %d case types, %d boilerplate words, %d noise words",
		len(loaded.CaseTypes), len(loaded.BoilerplateWords), len(loaded.NoiseWords))
	return nil
}

func (r *referenceData) compile() error {
	if len(r.BoilerplateWords) > 0 {
		quoted := make([]string, 0, len(r.BoilerplateWords))
		for _, w := range r.BoilerplateWords {
			quoted = append(quoted, regexp.QuoteMeta(w))
		}
		re, err := regexp.Compile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
		if err != nil {
			return fmt.Errorf("failed to compile boilerplate pattern: %w", err)
		}
		r.boilerplateRe = re
	}

	r.noiseSet = make(map[string]bool, len(r.NoiseWords))
	if len(r.NoiseWords) > 0 {
		quoted := make([]string, 0, len(r.NoiseWords))
		for _, w := range r.NoiseWords {
			lw := strings.ToLower(w)
			r.noiseSet[lw] = true
			quoted = append(quoted, regexp.QuoteMeta(lw))
		}
		re, err := regexp.Compile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
		if err != nil {
			return fmt.Errorf("failed to compile noise word pattern: %w", err)
		}
		r.noiseRe = re
	}

	return nil
}

// reference returns the active tables, lazily loading the embedded defaults
// so library callers and tests work without an explicit Load.
func reference() *referenceData {
	refOnce.Do(func() {
		refMu.RLock()
		loaded := ref != nil
		refMu.RUnlock()
		if !loaded {
			if err := LoadReferenceData(""); err != nil {
				log.Fatalf("failed to load embedded reference data: %v", err)
			}
		}
	})

	refMu.RLock()
	defer refMu.RUnlock()
	return ref
}
