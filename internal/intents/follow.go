package intents

import (
	"github.com/goliatone/go-cms-social/internal/accounts"
	"github.com/goliatone/go-cms-social/internal/properties"
)

// Follow is the follow-account web intent.
type Follow struct {
	account *accounts.Account
}

// NewFollow returns the follow intent for account.
func NewFollow(account *accounts.Account) *Follow {
	return &Follow{account: account}
}

// Account returns the account to follow.
func (f *Follow) Account() *accounts.Account {
	return f.account
}

// QueryParameters returns screen_name or user_id, or nothing when the account
// is invalid.
func (f *Follow) QueryParameters() properties.Properties {
	var params properties.Properties
	if f == nil || !f.account.IsValid() {
		return params
	}
	key, value := f.account.IntentParameters()
	params.Set(key, value)
	return params
}

// URL returns the intent URL, or an empty string when the account is invalid.
func (f *Follow) URL() string {
	params := f.QueryParameters()
	if params.IsEmpty() {
		return ""
	}
	return buildURL("follow", params)
}
