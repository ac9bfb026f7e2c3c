package jsonld

import (
	"crypto/md5" // #nosec G501 -- keyed fallback naming only, not security
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// Abbreviator assigns short, collision-free prefixes to namespace IRIs.
//
// An Abbreviator is scoped to a single serialization call: prefixes chosen
// for one document never constrain an unrelated document, so two
// independent calls may legitimately reuse the same prefix for different
// namespaces. Instances are not safe for concurrent use.
type Abbreviator struct {
	prefixToNS map[string]string
	nsToPrefix map[string]string
}

// NewAbbreviator creates an empty abbreviator.
func NewAbbreviator() *Abbreviator {
	return &Abbreviator{
		prefixToNS: make(map[string]string),
		nsToPrefix: make(map[string]string),
	}
}

// ForNamespaces creates an abbreviator seeded with every namespace in
// lexicographically sorted order. Sorted seeding makes prefix assignment
// deterministic for a fixed namespace set, regardless of the order the
// caller discovered the namespaces in.
func ForNamespaces(namespaces []string) *Abbreviator {
	sorted := make([]string, len(namespaces))
	copy(sorted, namespaces)
	sort.Strings(sorted)

	a := NewAbbreviator()
	for _, ns := range sorted {
		a.Abbreviation(ns)
	}
	return a
}

// Abbreviation returns the prefix assigned to namespace, assigning one on
// first call. Idempotent within one instance: the same namespace always
// gets the same prefix, and two distinct namespaces never share one.
func (a *Abbreviator) Abbreviation(namespace string) string {
	if prefix, ok := a.nsToPrefix[namespace]; ok {
		return prefix
	}

	for _, candidate := range candidatePrefixes(namespace) {
		if _, taken := a.prefixToNS[candidate]; !taken {
			a.assign(namespace, candidate)
			return candidate
		}
	}

	// Every readable candidate is taken: derive a hash-qualified prefix.
	fallback := hashedPrefix(namespace)
	if _, taken := a.prefixToNS[fallback]; !taken {
		a.assign(namespace, fallback)
		return fallback
	}

	// Hash collision on top of candidate exhaustion. The namespace itself
	// is the one always-unique terminal prefix.
	a.assign(namespace, namespace)
	return namespace
}

// Prefixes returns a copy of the prefix to namespace assignments, in the
// shape a JSON-LD @context expects.
func (a *Abbreviator) Prefixes() map[string]string {
	out := make(map[string]string, len(a.prefixToNS))
	for prefix, ns := range a.prefixToNS {
		out[prefix] = ns
	}
	return out
}

func (a *Abbreviator) assign(namespace, prefix string) {
	a.prefixToNS[prefix] = namespace
	a.nsToPrefix[namespace] = prefix
}

// candidatePrefixes generates readable prefix candidates for a namespace,
// best first, duplicates removed while preserving generation order:
//
//  1. the last path segment truncated to lengths 4, 2, 3, 1
//  2. the first DNS label of the host truncated to lengths 4, 2, 3
//  3. host and path truncations joined with a hyphen
//  4. the initials of all path segments
func candidatePrefixes(namespace string) []string {
	host, segments := splitNamespace(namespace)

	var lastSegment string
	if len(segments) > 0 {
		lastSegment = segments[len(segments)-1]
	}

	var firstLabel string
	if host != "" {
		firstLabel = strings.SplitN(host, ".", 2)[0]
	}

	var candidates []string
	if lastSegment != "" {
		for _, n := range []int{4, 2, 3, 1} {
			candidates = append(candidates, truncate(lastSegment, n))
		}
	}
	if firstLabel != "" {
		for _, n := range []int{4, 2, 3} {
			candidates = append(candidates, truncate(firstLabel, n))
		}
	}
	if firstLabel != "" && lastSegment != "" {
		candidates = append(candidates,
			truncate(firstLabel, 2)+"-"+truncate(lastSegment, 2),
			truncate(firstLabel, 2)+"-"+truncate(lastSegment, 4),
			truncate(firstLabel, 4)+"-"+truncate(lastSegment, 2),
		)
	}
	if len(segments) > 1 {
		var initials strings.Builder
		for _, seg := range segments {
			initials.WriteString(truncate(seg, 1))
		}
		if initials.Len() > 1 {
			candidates = append(candidates, initials.String())
		}
	}

	return dedupe(candidates)
}

// hashedPrefix builds the exhaustion fallback: the first three characters
// of the meaningful segment plus the first four hex characters of the
// namespace's MD5. MD5 is used for stable naming, not security.
func hashedPrefix(namespace string) string {
	sum := md5.Sum([]byte(namespace)) // #nosec G401
	digest := hex.EncodeToString(sum[:])

	seg := meaningfulSegment(namespace)
	return truncate(seg, 3) + "-" + digest[:4]
}

// meaningfulSegment picks the most descriptive part of a namespace: its
// last path segment, falling back to the host's first DNS label, falling
// back to the namespace itself.
func meaningfulSegment(namespace string) string {
	host, segments := splitNamespace(namespace)
	if len(segments) > 0 && segments[len(segments)-1] != "" {
		return segments[len(segments)-1]
	}
	if host != "" {
		return strings.SplitN(host, ".", 2)[0]
	}
	return namespace
}

// splitNamespace parses a namespace IRI into its host and non-empty path
// segments. Fragment-terminated namespaces ("…/vocab#") keep "vocab" as
// their final segment. Unparseable namespaces are treated as a bare path.
func splitNamespace(namespace string) (host string, segments []string) {
	trimmed := strings.TrimSuffix(namespace, "#")

	u, err := url.Parse(trimmed)
	var path string
	if err == nil && u.Host != "" {
		host = u.Hostname()
		path = u.Path
	} else {
		path = trimmed
	}

	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return host, segments
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func dedupe(candidates []string) []string {
	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
