package domain

import "time"

// RefreshToken is a persisted session record. Validity is revalidated on
// every refresh rather than consumed; revocation is the kill switch.
type RefreshToken struct {
	ID int64 `json:"id" gorm:"primaryKey"`

	UserID int64 `json:"user_id" gorm:"index;not null"`
	User   User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	Token     string `json:"-" gorm:"size:512;uniqueIndex;not null"`
	UserAgent string `json:"user_agent"`
	IPAddress string `json:"ip_address"`

	ExpiresAt time.Time `json:"expires_at" gorm:"index;not null"`
	Revoked   bool      `json:"revoked" gorm:"index;not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *RefreshToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
