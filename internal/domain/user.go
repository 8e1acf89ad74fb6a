package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultAvatarPath = "/uploads/default-avatar.png"

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Name         string    `json:"name" gorm:"not null;default:''"`
	Phone        string    `json:"phone" gorm:"not null;default:''"`
	AvatarPath   string    `json:"avatarPath" gorm:"not null;default:''"`
	IsAdmin      bool      `json:"isAdmin" gorm:"not null;default:false"`
	Favorites    []Product `json:"favorites,omitempty" gorm:"many2many:user_favorites;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// HasFavorite reports whether productID is in the user's loaded favorites.
func (u *User) HasFavorite(productID uuid.UUID) bool {
	for _, p := range u.Favorites {
		if p.ID == productID {
			return true
		}
	}
	return false
}
