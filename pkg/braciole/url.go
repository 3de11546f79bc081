package braciole

import (
	"fmt"
	"net/url"
	"strings"
)

// URLResolver maps an externally supplied URL to a route. Implementations
// report false when the URL matches nothing they know; the router treats
// that as a silent no-op rather than an error, since arbitrary URLs arrive
// from outside the app (deep links, other processes, the launcher) and an
// unmatched one is not a navigation that failed.
type URLResolver interface {
	ResolveURL(rawURL string) (Route, bool)
}

// NavigateURL resolves rawURL through the router's URLResolver and, on a
// match, navigates to the resolved route exactly as Navigate would. It
// reports whether a navigation was started. When no resolver is installed,
// the URL is malformed, or nothing matches, NavigateURL returns false, the
// completion is never invoked, and nothing else happens.
func (rt *Router) NavigateURL(rawURL string, animated bool, completion func(error)) bool {
	if rt.resolver == nil {
		rt.log.Debug("url ignored, no resolver installed", "url", rawURL)
		return false
	}
	route, ok := rt.resolver.ResolveURL(rawURL)
	if !ok || route == nil {
		rt.log.Debug("url ignored, no matching route", "url", rawURL)
		return false
	}
	rt.Navigate(route, animated, completion)
	return true
}

// RouteBuilder constructs a route from the parameters captured while
// matching a pattern. Returning nil turns the match into a no-op.
type RouteBuilder func(params map[string]string) Route

// Patterns is a small URL pattern table implementing URLResolver. Patterns
// look like URLs with :name placeholders:
//
//	brick://library/games/:id
//
// The host counts as the first segment, so it can be a placeholder too.
// Matching is exact on segment count and literal segments; captured
// placeholders and query parameters land in the params map, with
// placeholders winning on a name collision. The first registered pattern
// that matches owns the URL.
type Patterns struct {
	entries []patternEntry
}

type patternEntry struct {
	scheme   string
	segments []string
	build    RouteBuilder
}

// NewPatterns creates an empty pattern table.
func NewPatterns() *Patterns {
	return &Patterns{}
}

// Register adds pattern to the table. Patterns are split by hand rather
// than url.Parse, which would reject a placeholder in host position as an
// invalid port.
func (p *Patterns) Register(pattern string, build RouteBuilder) error {
	if build == nil {
		return fmt.Errorf("braciole: pattern %q registered without a builder", pattern)
	}
	scheme, rest, ok := strings.Cut(pattern, "://")
	if !ok || scheme == "" {
		return fmt.Errorf("braciole: pattern %q has no scheme", pattern)
	}
	segments := make([]string, 0, 4)
	for _, part := range strings.Split(rest, "/") {
		if part == "" {
			continue
		}
		segments = append(segments, part)
	}
	p.entries = append(p.entries, patternEntry{
		scheme:   strings.ToLower(scheme),
		segments: segments,
		build:    build,
	})
	return nil
}

// ResolveURL implements URLResolver.
func (p *Patterns) ResolveURL(rawURL string) (Route, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, false
	}
	segments := urlSegments(u)
	for _, entry := range p.entries {
		params, ok := entry.match(u.Scheme, segments)
		if !ok {
			continue
		}
		for key, values := range u.Query() {
			if _, taken := params[key]; taken || len(values) == 0 {
				continue
			}
			params[key] = values[0]
		}
		route := entry.build(params)
		if route == nil {
			return nil, false
		}
		return route, true
	}
	return nil, false
}

func (e *patternEntry) match(scheme string, segments []string) (map[string]string, bool) {
	if scheme != e.scheme || len(segments) != len(e.segments) {
		return nil, false
	}
	params := make(map[string]string)
	for i, want := range e.segments {
		if name, isCapture := strings.CutPrefix(want, ":"); isCapture && name != "" {
			params[name] = segments[i]
			continue
		}
		if segments[i] != want {
			return nil, false
		}
	}
	return params, true
}

// urlSegments flattens a parsed URL into path segments, counting the host
// as the first one. Empty segments from doubled or trailing slashes are
// dropped.
func urlSegments(u *url.URL) []string {
	segments := make([]string, 0, 4)
	if u.Host != "" {
		segments = append(segments, u.Host)
	}
	for _, part := range strings.Split(u.Path, "/") {
		if part == "" {
			continue
		}
		segments = append(segments, part)
	}
	return segments
}
