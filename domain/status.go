package domain

import "time"

// DefaultLimit is the page size used when a caller does not pick one.
const DefaultLimit = 20

// Status is a single post as returned by the Mastodon API.
type Status struct {
	ID               string            `json:"id"`
	URL              string            `json:"url"`
	Account          Account           `json:"account"`
	Content          string            `json:"content"` // HTML
	SpoilerText      string            `json:"spoiler_text"`
	CreatedAt        string            `json:"created_at"` // ISO-8601, kept verbatim
	RepliesCount     int               `json:"replies_count"`
	ReblogsCount     int               `json:"reblogs_count"`
	FavouritesCount  int               `json:"favourites_count"`
	Sensitive        bool              `json:"sensitive"`
	MediaAttachments []MediaAttachment `json:"media_attachments"`
	Emojis           []CustomEmoji     `json:"emojis"`
	EmojiReactions   []EmojiReaction   `json:"emoji_reactions"`
	Reblog           *Status           `json:"reblog"`
	Card             *Card             `json:"card"`
}

// Displayed returns the status whose content should be shown: the boosted
// status for a reblog, otherwise s itself.
func (s Status) Displayed() Status {
	if s.Reblog != nil {
		return *s.Reblog
	}
	return s
}

// IsReblog reports whether s wraps another status.
func (s Status) IsReblog() bool {
	return s.Reblog != nil
}

// CreatedTime parses CreatedAt. ok is false when the timestamp is malformed.
func (s Status) CreatedTime() (t time.Time, ok bool) {
	t, err := time.Parse(time.RFC3339, s.CreatedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Reaction returns the emoji reaction with the given name, if any.
func (s Status) Reaction(name string) (EmojiReaction, bool) {
	for _, r := range s.EmojiReactions {
		if r.Name == name {
			return r, true
		}
	}
	return EmojiReaction{}, false
}

// Account is a user profile.
type Account struct {
	ID          string        `json:"id"`
	Username    string        `json:"username"`
	Acct        string        `json:"acct"` // webfinger handle without the leading '@'
	DisplayName string        `json:"display_name"`
	URL         string        `json:"url"`
	Avatar      string        `json:"avatar"`
	Emojis      []CustomEmoji `json:"emojis"`
}

// Name returns the display name, falling back to the username.
func (a Account) Name() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return a.Username
}

// CustomEmoji is an instance-specific image referenced as :shortcode: in text.
type CustomEmoji struct {
	Shortcode string `json:"shortcode"`
	URL       string `json:"url"`
	StaticURL string `json:"static_url"`
}

// MediaAttachment is an image, video or audio file attached to a status.
type MediaAttachment struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	PreviewURL  string `json:"preview_url"`
	Description string `json:"description"`
}

// Card is a link preview.
type Card struct {
	URL          string `json:"url"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	ProviderName string `json:"provider_name"`
}

// EmojiReaction is a Fedibird emoji reaction tally on a status.
type EmojiReaction struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Me    bool   `json:"me"`
	URL   string `json:"url"` // empty for unicode emoji
}

// PageParams selects a timeline page. Empty cursors are omitted from the request.
type PageParams struct {
	MaxID   string
	SinceID string
	Limit   int
}

// EffectiveLimit returns Limit, or DefaultLimit when Limit is not positive.
func (p PageParams) EffectiveLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}
	return p.Limit
}
