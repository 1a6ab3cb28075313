// Package validators normalizes user supplied identifiers such as screen names,
// hashtags, short tags, and numeric ids. Every Sanitize function fails closed:
// rejected input yields an empty string and never an error.
package validators

import (
	"regexp"
	"strings"
)

// Validator is the contract shared by every format validator.
type Validator interface {
	Trim(input string) string
	IsValid(candidate string) bool
	Sanitize(input string) string
}

var (
	_ Validator = Handle
	_ Validator = Hashtag
	_ Validator = ShortTag
	_ Validator = NumericID
)

func trimMarkers(input string, markers ...string) string {
	trimmed := strings.TrimSpace(input)
	for {
		stripped := false
		for _, marker := range markers {
			if strings.HasPrefix(trimmed, marker) {
				trimmed = strings.TrimPrefix(trimmed, marker)
				stripped = true
			}
		}
		if !stripped {
			break
		}
	}
	return strings.TrimSpace(trimmed)
}

// Hashtag validates hashtags. Any character is accepted once the leading
// # or fullwidth ＃ marker is removed.
var Hashtag hashtagValidator

type hashtagValidator struct{}

func (hashtagValidator) Trim(input string) string {
	return trimMarkers(input, "#", "＃")
}

func (hashtagValidator) IsValid(candidate string) bool {
	return strings.TrimSpace(candidate) != ""
}

func (v hashtagValidator) Sanitize(input string) string {
	candidate := v.Trim(input)
	if !v.IsValid(candidate) {
		return ""
	}
	return candidate
}

// ShortTagMaxLength bounds short tags such as conversion tracking ids.
const ShortTagMaxLength = 5

var shortTagPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,5}$`)

// ShortTag validates short lowercase alphanumeric tags (tracking ids, language codes).
var ShortTag shortTagValidator

type shortTagValidator struct{}

func (shortTagValidator) Trim(input string) string {
	return strings.TrimSpace(input)
}

func (shortTagValidator) IsValid(candidate string) bool {
	return shortTagPattern.MatchString(candidate)
}

func (v shortTagValidator) Sanitize(input string) string {
	candidate := strings.ToLower(v.Trim(input))
	if !v.IsValid(candidate) {
		return ""
	}
	return candidate
}

var numericIDPattern = regexp.MustCompile(`^[0-9]+$`)

// NumericID validates numeric identifiers (tweet ids, user ids, widget ids).
var NumericID numericIDValidator

type numericIDValidator struct{}

func (numericIDValidator) Trim(input string) string {
	return strings.TrimSpace(input)
}

func (numericIDValidator) IsValid(candidate string) bool {
	return numericIDPattern.MatchString(candidate)
}

func (v numericIDValidator) Sanitize(input string) string {
	candidate := v.Trim(input)
	if !v.IsValid(candidate) {
		return ""
	}
	return candidate
}
