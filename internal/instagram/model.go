package instagram

import "time"

// OwnerKey is the single logical token owner: the artist's account. The
// upsert in the repository keeps at most one token under it.
const OwnerKey = "henna_artist"

type Token struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	AccessToken string    `bson:"access_token" json:"-"`
	TokenType   string    `bson:"token_type" json:"token_type"`
	ExpiresAt   time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

func (t Token) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

type Post struct {
	ID        string `json:"id"`
	MediaURL  string `json:"media_url"`
	MediaType string `json:"media_type"`
	Caption   string `json:"caption,omitempty"`
	Timestamp string `json:"timestamp"`
	Permalink string `json:"permalink"`
}

type AuthRequest struct {
	Code string `json:"code" validate:"required"`
}
