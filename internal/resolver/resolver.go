// Package resolver implements the BEL Resource Resolver (spec.md §4.3): a
// rate-limited, caching lookup of namespace/annotation resources into
// Validators.
//
// Grounded on the teacher's internal/asta.Client: a rate.Limiter-guarded
// HTTP client (here reused for outbound .belns/.belanno fetches instead
// of an academic-paper search API), the only synchronous blocking point
// in the compiler (spec.md §5).
package resolver

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"golang.org/x/time/rate"

	"github.com/pybel/belgo/internal/compileerr"
	"github.com/pybel/belgo/internal/rescache"
)

// Kind is the closed tag of Validator variants (spec.md §4.3).
type Kind string

const (
	KindEnumerated   Kind = "Enumerated"
	KindRegex        Kind = "Regex"
	KindHierarchical Kind = "Hierarchical"
)

// Validator is a tagged variant over the three resource shapes a
// namespace or annotation definition may resolve to (spec.md §4.3).
type Validator struct {
	Kind Kind

	// Names backs Enumerated and Hierarchical. For Enumerated, Encoding
	// (if non-nil) maps a name to the set of BEL function abbreviations
	// it is legal in (e.g. "G" for Gene, "P" for Protein).
	Names    map[string]bool
	Encoding map[string]map[string]bool

	// Parent backs Hierarchical: child name -> parent name.
	Parent map[string]string

	// Pattern backs Regex.
	Pattern *regexp.Regexp
}

// Contains reports whether name is accepted by v, optionally restricted
// to the given BEL function abbreviation.
func (v Validator) Contains(name string, function string) bool {
	switch v.Kind {
	case KindRegex:
		return v.Pattern != nil && v.Pattern.MatchString(name)
	case KindEnumerated, KindHierarchical:
		if !v.Names[name] {
			return false
		}
		if function == "" || v.Encoding == nil {
			return true
		}
		allowed, ok := v.Encoding[name]
		return !ok || allowed[function]
	default:
		return false
	}
}

// EnumeratedValidator builds a Validator over an explicit name set.
func EnumeratedValidator(names map[string]bool, encoding map[string]map[string]bool) Validator {
	return Validator{Kind: KindEnumerated, Names: names, Encoding: encoding}
}

// RegexValidator builds a Validator backed by a compiled pattern.
func RegexValidator(pattern *regexp.Regexp) Validator {
	return Validator{Kind: KindRegex, Pattern: pattern}
}

// HierarchicalValidator builds a Validator over a name set with a
// child->parent map, for annotations such as species taxonomy trees.
func HierarchicalValidator(names map[string]bool, parent map[string]string) Validator {
	return Validator{Kind: KindHierarchical, Names: names, Parent: parent}
}

// Resolver fetches and caches Validators by URL (spec.md §4.3's "caching
// black box: identical URLs yield identical validators").
type Resolver struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *rescache.Cache
}

// New builds a Resolver rate-limited to hz requests per second, backed by
// cache for cross-invocation reuse within the same working directory.
func New(cache *rescache.Cache, timeout time.Duration, hz float64) *Resolver {
	return &Resolver{
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(hz), 1),
		cache:      cache,
	}
}

// Resolve returns the Validator for url, fetching and parsing it as a
// line-oriented `[Values]`-sectioned .belns/.belanno resource if it is
// not already cached. Fetch failures become compileerr.ErrResourceUnavailable.
func (r *Resolver) Resolve(ctx context.Context, url string) (Validator, error) {
	if cached, ok := r.cache.Get(url); ok {
		return parseBelnsBody(cached)
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return Validator{}, compileerr.New(0, compileerr.ErrResourceUnavailable, "rate limiter: %s", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Validator{}, compileerr.New(0, compileerr.ErrResourceUnavailable, "%s", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return Validator{}, compileerr.New(0, compileerr.ErrResourceUnavailable, "fetching %s: %s", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Validator{}, compileerr.New(0, compileerr.ErrResourceUnavailable, "fetching %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Validator{}, compileerr.New(0, compileerr.ErrResourceUnavailable, "reading %s: %s", url, err)
	}

	if err := r.cache.Put(url, body); err != nil {
		return Validator{}, fmt.Errorf("caching %s: %w", url, err)
	}

	return parseBelnsBody(body)
}

// parseBelnsBody parses the OpenBEL namespace file format: an optional
// `[Values]` section header followed by `Name|EncodingLetters` lines, and
// an optional `[Hierarchy]` section of `Child|Parent` lines (spec.md
// §4.3's Hierarchical validator — used by taxonomy-style resources such
// as anatomy or disease ontologies). A resource carrying a non-empty
// `[Hierarchy]` section resolves to a Hierarchical validator instead of an
// Enumerated one; the parent links are recorded, but Contains still
// matches on the name set alone and does not consult them;
// files without function-encoding letters are treated as a bare name set.
func parseBelnsBody(body []byte) (Validator, error) {
	names := make(map[string]bool)
	encoding := make(map[string]map[string]bool)
	parent := make(map[string]string)

	scanner := bufio.NewScanner(bytes.NewReader(body))
	section := ""
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "[Values]" || line == "[Hierarchy]":
			section = line
			continue
		case len(line) > 0 && line[0] == '[':
			section = ""
			continue
		case section == "" || line == "":
			continue
		}

		if section == "[Hierarchy]" {
			child, par, ok := cutLast(line, '|')
			if ok {
				names[child] = true
				names[par] = true
				parent[child] = par
			}
			continue
		}

		name, letters, hasLetters := cutLast(line, '|')
		names[name] = true
		if hasLetters && letters != "" {
			allowed := make(map[string]bool, len(letters))
			for _, l := range letters {
				allowed[string(l)] = true
			}
			encoding[name] = allowed
		}
	}
	if err := scanner.Err(); err != nil {
		return Validator{}, err
	}
	if len(parent) > 0 {
		return HierarchicalValidator(names, parent), nil
	}
	if len(encoding) == 0 {
		encoding = nil
	}
	return EnumeratedValidator(names, encoding), nil
}

func cutLast(s string, sep byte) (before, after string, found bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}
