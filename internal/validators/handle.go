package validators

import (
	"net/url"
	"regexp"
	"strings"
)

// HandleMaxLength is the longest screen name accepted.
const HandleMaxLength = 20

var handlePattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,20}$`)

// Handle validates account screen names.
var Handle handleValidator

type handleValidator struct{}

// Trim removes surrounding whitespace and a leading @ or fullwidth ＠ marker.
func (handleValidator) Trim(input string) string {
	return trimMarkers(input, "@", "＠")
}

// IsValid reports whether candidate is a canonical screen name.
func (handleValidator) IsValid(candidate string) bool {
	return handlePattern.MatchString(candidate)
}

// Sanitize accepts raw screen names, @-prefixed names, and profile URLs such as
// https://twitter.com/jack/ and returns the canonical screen name or "".
func (v handleValidator) Sanitize(input string) string {
	candidate := strings.TrimSpace(input)
	if candidate == "" {
		return ""
	}
	if strings.Contains(candidate, "/") {
		candidate = lastPathSegment(candidate)
	}
	candidate = v.Trim(candidate)
	if !v.IsValid(candidate) {
		return ""
	}
	return candidate
}

func lastPathSegment(raw string) string {
	path := raw
	if parsed, err := url.Parse(raw); err == nil {
		path = parsed.Path
	}
	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment = strings.TrimSpace(segment); segment != "" {
			segments = append(segments, segment)
		}
	}
	if len(segments) == 0 {
		return ""
	}
	// Status links end in a tweet id, not a screen name.
	for _, segment := range segments[:len(segments)-1] {
		if strings.EqualFold(segment, "status") || strings.EqualFold(segment, "statuses") {
			return ""
		}
	}
	return segments[len(segments)-1]
}
