package shortcode

import (
	"errors"
	"html/template"
	"strings"
	"time"

	"github.com/goliatone/go-cms-social/internal/accounts"
	"github.com/goliatone/go-cms-social/internal/buttons"
	"github.com/goliatone/go-cms-social/internal/embeds"
	"github.com/goliatone/go-cms-social/internal/features"
	"github.com/goliatone/go-cms-social/internal/intents"
	"github.com/goliatone/go-cms-social/internal/timelines"
	"github.com/goliatone/go-cms-social/internal/tracking"
	"github.com/goliatone/go-cms-social/internal/util"
	"github.com/goliatone/go-cms-social/internal/validators"
	"github.com/goliatone/go-cms-social/pkg/interfaces"
)

// BuiltInOptions carries site defaults applied by the built-in handlers.
type BuiltInOptions struct {
	// Site is the default account for follow buttons and the share "via".
	Site *accounts.Account
	// TrustedInput skips URL and handle validation on share intents.
	TrustedInput bool
	Lang         string
	Theme        string
	LinkColor    string
	BorderColor  string
}

func (o BuiltInOptions) defaults(keys ...string) map[string]any {
	values := map[string]any{
		"lang":         o.Lang,
		"theme":        o.Theme,
		"link_color":   o.LinkColor,
		"border_color": o.BorderColor,
	}
	out := make(map[string]any, len(keys))
	for _, key := range keys {
		if v, _ := values[key].(string); strings.TrimSpace(v) != "" {
			out[key] = v
		}
	}
	return out
}

// BuiltInDefinitions returns the Twitter shortcode catalogue.
func BuiltInDefinitions(opts ...BuiltInOptions) []interfaces.ShortcodeDefinition {
	var o BuiltInOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	return []interfaces.ShortcodeDefinition{
		followDefinition(o),
		shareDefinition(o),
		hashtagDefinition(),
		tweetDefinition(o),
		profileTimelineDefinition(o),
		listTimelineDefinition(o),
		searchTimelineDefinition(o),
		collectionTimelineDefinition(o),
		trackingDefinition(),
	}
}

func stringParams(names ...string) []interfaces.ShortcodeParam {
	out := make([]interfaces.ShortcodeParam, 0, len(names))
	for _, name := range names {
		out = append(out, interfaces.ShortcodeParam{Name: name, Type: interfaces.ShortcodeParamString})
	}
	return out
}

func boolParams(names ...string) []interfaces.ShortcodeParam {
	out := make([]interfaces.ShortcodeParam, 0, len(names))
	for _, name := range names {
		out = append(out, interfaces.ShortcodeParam{Name: name, Type: interfaces.ShortcodeParamBool})
	}
	return out
}

func intParams(names ...string) []interfaces.ShortcodeParam {
	out := make([]interfaces.ShortcodeParam, 0, len(names))
	for _, name := range names {
		out = append(out, interfaces.ShortcodeParam{Name: name, Type: interfaces.ShortcodeParamInt})
	}
	return out
}

func timelineParams(identity ...interfaces.ShortcodeParam) []interfaces.ShortcodeParam {
	params := append([]interfaces.ShortcodeParam{}, identity...)
	params = append(params, intParams("limit", "width", "height")...)
	params = append(params, interfaces.ShortcodeParam{Name: "chrome", Type: interfaces.ShortcodeParamArray})
	params = append(params, boolParams(
		timelines.ChromeNoHeader,
		timelines.ChromeNoFooter,
		timelines.ChromeNoBorders,
		timelines.ChromeNoScrollbar,
		timelines.ChromeTransparent,
	)...)
	params = append(params, stringParams("theme", "link_color", "border_color", "lang")...)
	return params
}

func followDefinition(o BuiltInOptions) interfaces.ShortcodeDefinition {
	params := stringParams("screen_name", "user_id", "size", "lang")
	params = append(params, boolParams("show_count", "show_screen_name")...)
	return interfaces.ShortcodeDefinition{
		Name:        "twitter_follow",
		Version:     "1.0.0",
		Description: "Follow button for an account, defaulting to the site account",
		Category:    "social",
		Feature:     features.FollowButton,
		Schema: interfaces.ShortcodeSchema{
			Params:   params,
			Defaults: o.defaults("lang"),
		},
		Handler: func(_ interfaces.ShortcodeContext, raw map[string]any, _ string) (template.HTML, error) {
			params := util.CloneAnyMap(raw)
			if _, ok := params["screen_name"]; !ok && params["user_id"] == nil && o.Site.IsValid() {
				params["screen_name"] = o.Site.ScreenName()
				if o.Site.ID() != "" {
					params["user_id"] = o.Site.ID()
				}
			}
			return buttons.FollowButtonFromValues(params).Markup(), nil
		},
	}
}

func shareDefinition(o BuiltInOptions) interfaces.ShortcodeDefinition {
	params := stringParams("text", "url", "in_reply_to", "via", "related", "size", "lang")
	params = append(params, interfaces.ShortcodeParam{Name: "hashtags", Type: interfaces.ShortcodeParamArray})
	return interfaces.ShortcodeDefinition{
		Name:        "twitter_share",
		Version:     "1.0.0",
		Description: "Tweet button backed by a prefilled web intent",
		Category:    "social",
		Feature:     features.TweetButton,
		Schema: interfaces.ShortcodeSchema{
			Params:   params,
			Defaults: o.defaults("lang"),
		},
		Handler: func(_ interfaces.ShortcodeContext, raw map[string]any, _ string) (template.HTML, error) {
			params := util.CloneAnyMap(raw)
			if _, ok := params["via"]; !ok && o.Site.ScreenName() != "" {
				params["via"] = o.Site.ScreenName()
			}
			var opts []intents.Option
			if o.TrustedInput {
				opts = append(opts, intents.WithoutValidation())
			}
			return buttons.TweetButtonFromValues(params, opts...).Markup(), nil
		},
	}
}

var errInvalidHashtag = errors.New("hashtag must be a single word")

func hashtagDefinition() interfaces.ShortcodeDefinition {
	return interfaces.ShortcodeDefinition{
		Name:        "twitter_hashtag",
		Version:     "1.0.0",
		Description: "Links a hashtag to its Twitter search page",
		Category:    "social",
		Feature:     features.TweetButton,
		Schema: interfaces.ShortcodeSchema{
			Params: []interfaces.ShortcodeParam{{
				Name:     "tag",
				Type:     interfaces.ShortcodeParamString,
				Required: true,
				Validate: func(value any) error {
					tag, _ := value.(string)
					tag = validators.Hashtag.Sanitize(tag)
					if tag == "" || strings.ContainsAny(tag, " \t,") {
						return errInvalidHashtag
					}
					return nil
				},
			}},
		},
		Template: `{{- $tag := hashtag .tag -}}<a class="twitter-hashtag" href="https://twitter.com/hashtag/{{ urlpath $tag }}">#{{ $tag }}</a>`,
	}
}

func tweetDefinition(o BuiltInOptions) interfaces.ShortcodeDefinition {
	params := stringParams("id", "url", "align", "theme", "link_color", "lang", "cards", "conversation")
	params = append(params, boolParams("hide_media", "hide_thread")...)
	params = append(params, intParams("width")...)
	return interfaces.ShortcodeDefinition{
		Name:        "tweet",
		Version:     "1.0.0",
		Description: "Embedded tweet by id or status URL",
		Category:    "social",
		Feature:     features.EmbeddedTweet,
		CacheTTL:    time.Hour,
		Schema: interfaces.ShortcodeSchema{
			Params:   params,
			Defaults: o.defaults("theme", "link_color", "lang"),
		},
		Handler: func(_ interfaces.ShortcodeContext, params map[string]any, _ string) (template.HTML, error) {
			return embeds.FromValues(params).Markup(), nil
		},
	}
}

func profileTimelineDefinition(o BuiltInOptions) interfaces.ShortcodeDefinition {
	return interfaces.ShortcodeDefinition{
		Name:        "twitter_profile",
		Version:     "1.0.0",
		Description: "Embedded profile timeline",
		Category:    "social",
		Feature:     features.EmbeddedTimeline,
		CacheTTL:    time.Hour,
		Schema: interfaces.ShortcodeSchema{
			Params:   timelineParams(stringParams("screen_name")...),
			Defaults: o.defaults("theme", "link_color", "border_color", "lang"),
		},
		Handler: func(_ interfaces.ShortcodeContext, raw map[string]any, _ string) (template.HTML, error) {
			params := util.CloneAnyMap(raw)
			if _, ok := params["screen_name"]; !ok && o.Site.ScreenName() != "" {
				params["screen_name"] = o.Site.ScreenName()
			}
			return timelines.ProfileFromValues(params).Markup(), nil
		},
	}
}

func listTimelineDefinition(o BuiltInOptions) interfaces.ShortcodeDefinition {
	return interfaces.ShortcodeDefinition{
		Name:        "twitter_list",
		Version:     "1.0.0",
		Description: "Embedded list timeline by owner and slug or by list id",
		Category:    "social",
		Feature:     features.EmbeddedTimeline,
		CacheTTL:    time.Hour,
		Schema: interfaces.ShortcodeSchema{
			Params:   timelineParams(stringParams("screen_name", "slug", "id")...),
			Defaults: o.defaults("theme", "link_color", "border_color", "lang"),
		},
		Handler: func(_ interfaces.ShortcodeContext, params map[string]any, _ string) (template.HTML, error) {
			return timelines.ListFromValues(params).Markup(), nil
		},
	}
}

func searchTimelineDefinition(o BuiltInOptions) interfaces.ShortcodeDefinition {
	identity := []interfaces.ShortcodeParam{
		{Name: "widget_id", Type: interfaces.ShortcodeParamString, Required: true},
		{Name: "query", Type: interfaces.ShortcodeParamString},
	}
	return interfaces.ShortcodeDefinition{
		Name:        "twitter_search",
		Version:     "1.0.0",
		Description: "Embedded search timeline backed by a configured widget",
		Category:    "social",
		Feature:     features.EmbeddedTimeline,
		CacheTTL:    time.Hour,
		Schema: interfaces.ShortcodeSchema{
			Params:   timelineParams(identity...),
			Defaults: o.defaults("theme", "link_color", "border_color", "lang"),
		},
		Handler: func(_ interfaces.ShortcodeContext, params map[string]any, _ string) (template.HTML, error) {
			return timelines.SearchFromValues(params).Markup(), nil
		},
	}
}

func collectionTimelineDefinition(o BuiltInOptions) interfaces.ShortcodeDefinition {
	identity := []interfaces.ShortcodeParam{
		{Name: "id", Type: interfaces.ShortcodeParamString, Required: true},
		{Name: "display", Type: interfaces.ShortcodeParamString},
		{Name: "grid", Type: interfaces.ShortcodeParamBool},
	}
	return interfaces.ShortcodeDefinition{
		Name:        "twitter_collection",
		Version:     "1.0.0",
		Description: "Embedded collection as a timeline or grid",
		Category:    "social",
		Feature:     features.EmbeddedTimeline,
		CacheTTL:    time.Hour,
		Schema: interfaces.ShortcodeSchema{
			Params:   timelineParams(identity...),
			Defaults: o.defaults("theme", "link_color", "border_color", "lang"),
		},
		Handler: func(_ interfaces.ShortcodeContext, params map[string]any, _ string) (template.HTML, error) {
			return timelines.CollectionFromValues(params).Markup(), nil
		},
	}
}

func trackingDefinition() interfaces.ShortcodeDefinition {
	return interfaces.ShortcodeDefinition{
		Name:        "twitter_tracking",
		Version:     "1.0.0",
		Description: "Website conversion tracking pixels",
		Category:    "social",
		Feature:     features.Tracking,
		Schema: interfaces.ShortcodeSchema{
			Params: []interfaces.ShortcodeParam{
				{Name: "ids", Type: interfaces.ShortcodeParamArray},
				{Name: "id", Type: interfaces.ShortcodeParamString},
			},
		},
		Handler: func(_ interfaces.ShortcodeContext, params map[string]any, _ string) (template.HTML, error) {
			pixel := tracking.NewPixel()
			if id, ok := params["id"].(string); ok {
				pixel.AddID(id)
			}
			if ids, ok := params["ids"].([]string); ok {
				for _, id := range ids {
					pixel.AddID(id)
				}
			}
			return pixel.Markup(), nil
		},
	}
}
