// Package buttons renders the follow and share buttons as progressively
// enhanced intent links.
package buttons

import (
	"html/template"

	"github.com/goliatone/go-cms-social/internal/accounts"
	"github.com/goliatone/go-cms-social/internal/intents"
	"github.com/goliatone/go-cms-social/internal/markup"
	"github.com/goliatone/go-cms-social/internal/options"
	"github.com/goliatone/go-cms-social/internal/util"
	"github.com/goliatone/go-cms-social/internal/validators"
)

// SizeLarge is the only non-default button size.
const SizeLarge = "large"

// common holds the options shared by both buttons.
type common struct {
	large bool
	lang  string
}

// setSize accepts "large"; any other value restores the default size.
func (c *common) setSize(size string) {
	v, ok := options.Enum(size, SizeLarge)
	c.large = ok && v == SizeLarge
}

func (c *common) setLang(lang string) {
	if lang = validators.ShortTag.Sanitize(lang); lang != "" {
		c.lang = lang
	}
}

func (c common) data(d markup.DataAttributes) {
	if c.large {
		d.Set("size", SizeLarge)
	}
	d.Set("lang", c.lang)
}

// FollowButton links to the follow intent of an account.
type FollowButton struct {
	common
	account        *accounts.Account
	showCount      *bool
	showScreenName *bool
}

// NewFollowButton returns a follow button for account.
func NewFollowButton(account *accounts.Account) *FollowButton {
	return &FollowButton{account: account}
}

func (b *FollowButton) Account() *accounts.Account { return b.account }

// SetShowCount toggles the follower count. Unset leaves the widget default.
func (b *FollowButton) SetShowCount(show bool) *FollowButton {
	b.showCount = &show
	return b
}

// SetShowScreenName toggles the screen name in the button label.
func (b *FollowButton) SetShowScreenName(show bool) *FollowButton {
	b.showScreenName = &show
	return b
}

func (b *FollowButton) SetSize(size string) *FollowButton {
	b.setSize(size)
	return b
}

func (b *FollowButton) SetLang(lang string) *FollowButton {
	b.setLang(lang)
	return b
}

// DataAttributes returns the widget options. Only values that differ from the
// widget defaults are emitted.
func (b *FollowButton) DataAttributes() markup.DataAttributes {
	d := markup.DataAttributes{}
	if !b.account.IsValid() {
		return d
	}
	if b.showCount != nil && !*b.showCount {
		d.Set("show-count", "false")
	}
	if b.showScreenName != nil && !*b.showScreenName {
		d.Set("show-screen-name", "false")
	}
	b.data(d)
	return d
}

// Markup renders the button, or nothing when the account is missing.
func (b *FollowButton) Markup() template.HTML {
	if !b.account.IsValid() {
		return ""
	}
	text := "Follow"
	if mention := b.account.Mention(); mention != "" {
		text += " " + mention
	}
	return markup.AnchorElement(
		intents.NewFollow(b.account).URL(),
		text,
		markup.Attributes{Class: "twitter-follow-button"},
		b.DataAttributes(),
	)
}

// FollowButtonFromValues reads screen_name or user_id, show_count,
// show_screen_name, size, and lang.
func FollowButtonFromValues(values map[string]any) *FollowButton {
	screenName, _ := options.String(util.FirstValue(values, "screen_name", "username", "account"))
	id, _ := options.String(values["user_id"])
	b := NewFollowButton(accounts.New(screenName, id))
	if v, ok := options.Bool(values["show_count"]); ok {
		b.SetShowCount(v)
	}
	if v, ok := options.Bool(values["show_screen_name"]); ok {
		b.SetShowScreenName(v)
	}
	if v, ok := options.String(values["size"]); ok {
		b.SetSize(v)
	}
	if v, ok := options.String(values["lang"]); ok {
		b.SetLang(v)
	}
	return b
}

// TweetButton links to a prefilled compose-tweet intent.
type TweetButton struct {
	common
	intent *intents.Tweet
}

// NewTweetButton wraps intent. A nil intent shares nothing but still renders.
func NewTweetButton(intent *intents.Tweet) *TweetButton {
	if intent == nil {
		intent = intents.NewTweet()
	}
	return &TweetButton{intent: intent}
}

func (b *TweetButton) Intent() *intents.Tweet { return b.intent }

func (b *TweetButton) SetSize(size string) *TweetButton {
	b.setSize(size)
	return b
}

func (b *TweetButton) SetLang(lang string) *TweetButton {
	b.setLang(lang)
	return b
}

func (b *TweetButton) DataAttributes() markup.DataAttributes {
	d := markup.DataAttributes{}
	b.data(d)
	return d
}

// Markup renders the share link.
func (b *TweetButton) Markup() template.HTML {
	return markup.AnchorElement(
		b.intent.URL(),
		"Tweet",
		markup.Attributes{Class: "twitter-share-button"},
		b.DataAttributes(),
	)
}

// TweetButtonFromValues reads the tweet intent fields plus size and lang.
func TweetButtonFromValues(values map[string]any, opts ...intents.Option) *TweetButton {
	b := NewTweetButton(intents.TweetFromValues(values, opts...))
	if v, ok := options.String(values["size"]); ok {
		b.SetSize(v)
	}
	if v, ok := options.String(values["lang"]); ok {
		b.SetLang(v)
	}
	return b
}
