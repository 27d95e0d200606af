package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"id" db:"user_id"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"`
	Username       string    `json:"username" db:"username"`
	PasswordHash   string    `json:"-" db:"password_hash"`
	ProfilePicture *string   `json:"profile_picture,omitempty" db:"profile_picture"`
	Country        *string   `json:"country,omitempty" db:"country"`
	Sex            *string   `json:"sex,omitempty" db:"sex"`
	Hobbies        *string   `json:"hobbies,omitempty" db:"hobbies"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Profile is the public projection of a user, safe to embed in group and
// discussion payloads.
type Profile struct {
	ID             uuid.UUID `json:"id" db:"user_id"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"`
	Username       string    `json:"username" db:"username"`
	ProfilePicture *string   `json:"profile_picture" db:"profile_picture"`
	Country        *string   `json:"country" db:"country"`
	Sex            *string   `json:"sex" db:"sex"`
	Hobbies        *string   `json:"hobbies" db:"hobbies"`
}

func (u *User) Profile() Profile {
	return Profile{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Username:       u.Username,
		ProfilePicture: u.ProfilePicture,
		Country:        u.Country,
		Sex:            u.Sex,
		Hobbies:        u.Hobbies,
	}
}

type RegisterInput struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Username string  `json:"username"`
	Password string  `json:"password"`
	Country  *string `json:"country,omitempty"`
	Sex      *string `json:"sex,omitempty"`
	Hobbies  *string `json:"hobbies,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserInput struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Username string  `json:"username"`
	Country  *string `json:"country,omitempty"`
	Sex      *string `json:"sex,omitempty"`
	Hobbies  *string `json:"hobbies,omitempty"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
