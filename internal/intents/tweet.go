package intents

import (
	"net/url"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/goliatone/go-cms-social/internal/options"
	"github.com/goliatone/go-cms-social/internal/properties"
	"github.com/goliatone/go-cms-social/internal/validators"
)

// Tweet is the compose-tweet web intent.
type Tweet struct {
	validate bool

	text      string
	url       string
	inReplyTo string

	hashtags    []string
	hashtagKeys map[string]struct{}

	via     string
	related []Related
}

// Related is a suggested account shown after the tweet is posted.
type Related struct {
	Username string
	Label    string
}

// NewTweet returns an empty tweet intent. Validation is on unless
// WithoutValidation is passed.
func NewTweet(opts ...Option) *Tweet {
	cfg := resolve(opts)
	return &Tweet{validate: cfg.validate}
}

// SetText stores the prefilled tweet text. Blank input clears nothing.
func (t *Tweet) SetText(text string) *Tweet {
	if text = strings.TrimSpace(text); text != "" {
		t.text = text
	}
	return t
}

// SetURL stores the shared URL. Non http(s) URLs are ignored while validating.
func (t *Tweet) SetURL(raw string) *Tweet {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return t
	}
	if t.validate && !isWebURL(raw) {
		return t
	}
	t.url = raw
	return t
}

// SetInReplyTo stores the id of the tweet being replied to.
func (t *Tweet) SetInReplyTo(id string) *Tweet {
	if id = validators.NumericID.Sanitize(id); id != "" {
		t.inReplyTo = id
	}
	return t
}

// AddHashtag appends tag without its marker. Tags are deduplicated by their
// case folded form; the first spelling seen is kept.
func (t *Tweet) AddHashtag(tag string) *Tweet {
	tag = validators.Hashtag.Sanitize(tag)
	if tag == "" || strings.Contains(tag, ",") {
		return t
	}
	key := cases.Fold().String(tag)
	if t.hashtagKeys == nil {
		t.hashtagKeys = make(map[string]struct{})
	}
	if _, seen := t.hashtagKeys[key]; seen {
		return t
	}
	t.hashtagKeys[key] = struct{}{}
	t.hashtags = append(t.hashtags, tag)
	return t
}

// SetVia attributes the tweet to username.
func (t *Tweet) SetVia(username string) *Tweet {
	if username = t.handle(username); username != "" {
		t.via = username
	}
	return t
}

// AddRelated suggests username with an optional label. Duplicate usernames are
// ignored regardless of case.
func (t *Tweet) AddRelated(username, label string) *Tweet {
	username = t.handle(username)
	if username == "" {
		return t
	}
	key := strings.ToLower(username)
	for _, existing := range t.related {
		if strings.ToLower(existing.Username) == key {
			return t
		}
	}
	t.related = append(t.related, Related{Username: username, Label: strings.TrimSpace(label)})
	return t
}

func (t *Tweet) handle(raw string) string {
	if t.validate {
		return validators.Handle.Sanitize(raw)
	}
	trimmed := validators.Handle.Trim(raw)
	if strings.ContainsAny(trimmed, " ,:") {
		return ""
	}
	return trimmed
}

func (t *Tweet) Text() string { return t.text }

// Link returns the shared URL.
func (t *Tweet) Link() string { return t.url }

func (t *Tweet) InReplyTo() string { return t.inReplyTo }

func (t *Tweet) Via() string { return t.via }

func (t *Tweet) Hashtags() []string { return append([]string(nil), t.hashtags...) }

func (t *Tweet) Related() []Related { return append([]Related(nil), t.related...) }

// QueryParameters returns the populated intent parameters in wire order:
// in_reply_to, text, url, hashtags, via, related.
func (t *Tweet) QueryParameters() properties.Properties {
	var params properties.Properties
	if t.inReplyTo != "" {
		params.Set("in_reply_to", t.inReplyTo)
	}
	if t.text != "" {
		params.Set("text", t.text)
	}
	if t.url != "" {
		params.Set("url", t.url)
	}
	if len(t.hashtags) > 0 {
		params.Set("hashtags", strings.Join(t.hashtags, ","))
	}
	if t.via != "" {
		params.Set("via", t.via)
	}
	if len(t.related) > 0 {
		tokens := make([]string, 0, len(t.related))
		for _, r := range t.related {
			token := r.Username
			if r.Label != "" {
				token += ":" + Escape(r.Label)
			}
			tokens = append(tokens, token)
		}
		params.Set("related", strings.Join(tokens, ","))
	}
	return params
}

// URL returns the intent URL, or the bare endpoint when nothing is set.
func (t *Tweet) URL() string {
	return buildURL("tweet", t.QueryParameters())
}

// TweetFromValues rebuilds an intent from query parameters or shortcode
// attributes. hashtags may be a list or a comma separated string; related may
// be a username to label map or a comma separated list of user:label tokens
// whose labels are percent-encoded.
func TweetFromValues(values map[string]any, opts ...Option) *Tweet {
	t := NewTweet(opts...)
	if v, ok := options.String(values["in_reply_to"]); ok {
		t.SetInReplyTo(v)
	}
	if v, ok := options.String(values["text"]); ok {
		t.SetText(v)
	}
	if v, ok := options.String(values["url"]); ok {
		t.SetURL(v)
	}
	for _, tag := range options.StringList(values["hashtags"]) {
		t.AddHashtag(tag)
	}
	if v, ok := options.String(values["via"]); ok {
		t.SetVia(v)
	}
	for _, r := range relatedFromValue(values["related"]) {
		t.AddRelated(r.Username, r.Label)
	}
	return t
}

func relatedFromValue(value any) []Related {
	switch v := value.(type) {
	case map[string]string:
		out := make([]Related, 0, len(v))
		for _, username := range sortedKeys(v) {
			out = append(out, Related{Username: username, Label: v[username]})
		}
		return out
	case map[string]any:
		flat := make(map[string]string, len(v))
		for username, label := range v {
			s, _ := options.String(label)
			flat[username] = s
		}
		return relatedFromValue(flat)
	case []Related:
		return v
	}

	var out []Related
	for _, token := range options.StringList(value) {
		username, label, _ := strings.Cut(token, ":")
		out = append(out, Related{Username: username, Label: Unescape(label)})
	}
	return out
}

func isWebURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return true
	default:
		return false
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
