package guideline

import (
	"Genie-Expiry-Tracker/domain"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gopkg.in/yaml.v2"
)

//go:embed guidelines.yaml
var guidelinesYAML []byte

const DefaultCacheSize = 256

var (
	lookupCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "genie_guideline_cache_hits_total",
		Help: "Guideline lookups served from the LRU cache.",
	})
	lookupCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "genie_guideline_cache_misses_total",
		Help: "Guideline lookups that scanned the table.",
	})

	ErrEmptyTable = errors.New("guideline table has no entries")
)

type (
	GuidelineRepository interface {
		Lookup(name string) (Match, bool)
		Search(term string) []domain.GuidelineEntry
		Entries() []domain.GuidelineEntry
		Version() int
	}

	// Match is a resolved lookup. Exact is false for substring matches.
	Match struct {
		Entry domain.GuidelineEntry
		Exact bool
	}

	table struct {
		Version    int                     `yaml:"version"`
		Guidelines []domain.GuidelineEntry `yaml:"guidelines"`
	}

	lookupResult struct {
		match Match
		found bool
	}

	guidelineRepository struct {
		version int
		entries []domain.GuidelineEntry
		keys    []string
		cache   *lru.Cache[string, lookupResult]
	}
)

// NewGuidelineRepository loads the embedded guideline table.
func NewGuidelineRepository(cacheSize int) (GuidelineRepository, error) {
	return NewGuidelineRepositoryFromYAML(guidelinesYAML, cacheSize)
}

func NewGuidelineRepositoryFromYAML(data []byte, cacheSize int) (GuidelineRepository, error) {
	var t table
	if err := yaml.UnmarshalStrict(data, &t); err != nil {
		return nil, fmt.Errorf("parse guideline table: %w", err)
	}
	if len(t.Guidelines) == 0 {
		return nil, ErrEmptyTable
	}

	keys := make([]string, len(t.Guidelines))
	seen := make(map[string]struct{}, len(t.Guidelines))
	for i, entry := range t.Guidelines {
		key := normalize(entry.Name)
		if key == "" {
			return nil, fmt.Errorf("guideline entry %d has no name", i)
		}
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("duplicate guideline entry %q", entry.Name)
		}
		seen[key] = struct{}{}
		keys[i] = key
	}

	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, lookupResult](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create lookup cache: %w", err)
	}

	return &guidelineRepository{
		version: t.Version,
		entries: t.Guidelines,
		keys:    keys,
		cache:   cache,
	}, nil
}

// Lookup tries an exact case-insensitive match first, then a substring
// match in either direction. Among substring matches the longest key wins;
// keys of equal length resolve to the one defined first.
func (r *guidelineRepository) Lookup(name string) (Match, bool) {
	query := normalize(name)
	if query == "" {
		return Match{}, false
	}

	if res, ok := r.cache.Get(query); ok {
		lookupCacheHits.Inc()
		return res.match.clone(), res.found
	}
	lookupCacheMisses.Inc()

	res := r.scan(query)
	r.cache.Add(query, res)
	return res.match.clone(), res.found
}

func (r *guidelineRepository) scan(query string) lookupResult {
	for i, key := range r.keys {
		if key == query {
			return lookupResult{match: Match{Entry: r.entries[i], Exact: true}, found: true}
		}
	}

	best := -1
	for i, key := range r.keys {
		if !strings.Contains(key, query) && !strings.Contains(query, key) {
			continue
		}
		if best == -1 || len(key) > len(r.keys[best]) {
			best = i
		}
	}
	if best == -1 {
		return lookupResult{}
	}
	return lookupResult{match: Match{Entry: r.entries[best]}, found: true}
}

func (r *guidelineRepository) Search(term string) []domain.GuidelineEntry {
	term = normalize(term)
	result := make([]domain.GuidelineEntry, 0)
	for i, key := range r.keys {
		if strings.Contains(key, term) {
			result = append(result, r.entries[i].Clone())
		}
	}
	return result
}

func (r *guidelineRepository) Entries() []domain.GuidelineEntry {
	result := make([]domain.GuidelineEntry, len(r.entries))
	for i, entry := range r.entries {
		result[i] = entry.Clone()
	}
	return result
}

func (r *guidelineRepository) Version() int {
	return r.version
}

func (m Match) clone() Match {
	m.Entry = m.Entry.Clone()
	return m
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
