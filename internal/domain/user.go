package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Handle       string    `json:"handle"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Links        string    `json:"links"`
	Image        string    `json:"image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicProfile is the projection exposed on the public handle page.
// It carries no id, email, or credential material.
type PublicProfile struct {
	Handle      string `json:"handle"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Links       string `json:"links"`
	Image       string `json:"image"`
}

// Public returns the public projection of the user.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		Handle:      u.Handle,
		Name:        u.Name,
		Description: u.Description,
		Links:       u.Links,
		Image:       u.Image,
	}
}
