package accounts

import (
	"github.com/goliatone/go-cms-social/internal/properties"
	"github.com/goliatone/go-cms-social/internal/validators"
)

// Account identifies a Twitter account by screen name or numeric id. At most
// one identity is populated and instances are immutable once constructed.
type Account struct {
	screenName string
	id         string
}

// FromScreenName builds an account from a raw screen name, @-prefixed name, or
// profile URL. It returns nil when the input does not validate.
func FromScreenName(raw string) *Account {
	screenName := validators.Handle.Sanitize(raw)
	if screenName == "" {
		return nil
	}
	return &Account{screenName: screenName}
}

// FromID builds an account from a numeric user id, returning nil when invalid.
func FromID(raw string) *Account {
	id := validators.NumericID.Sanitize(raw)
	if id == "" {
		return nil
	}
	return &Account{id: id}
}

// New builds an account from whichever identity validates. The id wins when
// both are valid.
func New(screenName, id string) *Account {
	if account := FromID(id); account != nil {
		return account
	}
	return FromScreenName(screenName)
}

// FromValue accepts an *Account, or a string holding either a numeric id
// prefixed with "id:" or a screen name.
func FromValue(value any) *Account {
	switch v := value.(type) {
	case *Account:
		return v
	case Account:
		if v.IsValid() {
			copied := v
			return &copied
		}
	case string:
		if len(v) > 3 && v[:3] == "id:" {
			return FromID(v[3:])
		}
		return FromScreenName(v)
	case map[string]any:
		screenName, _ := v["screen_name"].(string)
		id, _ := v["id"].(string)
		return New(screenName, id)
	case map[string]string:
		return New(v["screen_name"], v["id"])
	}
	return nil
}

// ScreenName returns the canonical screen name without the @ marker.
func (a *Account) ScreenName() string {
	if a == nil {
		return ""
	}
	return a.screenName
}

// ID returns the numeric user id.
func (a *Account) ID() string {
	if a == nil {
		return ""
	}
	return a.id
}

// IsValid reports whether an identity is populated.
func (a *Account) IsValid() bool {
	return a != nil && (a.screenName != "" || a.id != "")
}

// Mention returns "@name" for screen-name accounts.
func (a *Account) Mention() string {
	if a == nil || a.screenName == "" {
		return ""
	}
	return "@" + a.screenName
}

// CardValue returns the card property value: "@name" for screen names or a
// nested {id} set for numeric ids. Invalid accounts return nil.
func (a *Account) CardValue() any {
	switch {
	case a == nil:
		return nil
	case a.id != "":
		return properties.Of("id", a.id)
	case a.screenName != "":
		return "@" + a.screenName
	default:
		return nil
	}
}

// IntentParameters returns the query key and value identifying the account in
// web intent URLs.
func (a *Account) IntentParameters() (key, value string) {
	switch {
	case a == nil:
		return "", ""
	case a.id != "":
		return "user_id", a.id
	default:
		return "screen_name", a.screenName
	}
}

// ProfileURL returns the public profile URL for screen-name accounts.
func (a *Account) ProfileURL() string {
	if a == nil || a.screenName == "" {
		return ""
	}
	return "https://twitter.com/" + a.screenName
}
