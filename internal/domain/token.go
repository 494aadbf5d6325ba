package domain

import (
	"time"

	"github.com/google/uuid"

	"golang.org/x/oauth2"
)

// GoogleToken is the persisted OAuth2 token for a linked Google account.
// Stored per user instead of the in-memory token map the product started
// with, so tokens survive restarts and are injectable in tests.
type GoogleToken struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	AccessToken  string    `gorm:"type:text;not null" json:"-"`
	RefreshToken string    `gorm:"type:text" json:"-"`
	TokenType    string    `gorm:"type:varchar(32);not null;default:'Bearer'" json:"-"`
	Expiry       time.Time `json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (GoogleToken) TableName() string {
	return "google_tokens"
}

// ToOAuth2 converts the stored token into the oauth2 package's form.
func (t *GoogleToken) ToOAuth2() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
		Expiry:       t.Expiry,
	}
}

// FromOAuth2 copies token material from the oauth2 package's form.
func (t *GoogleToken) FromOAuth2(tok *oauth2.Token) {
	t.AccessToken = tok.AccessToken
	if tok.RefreshToken != "" {
		t.RefreshToken = tok.RefreshToken
	}
	t.TokenType = tok.TokenType
	t.Expiry = tok.Expiry
}
