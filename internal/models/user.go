package models

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// User is an account holder. AccessToken and ProfileID belong to the
// external code-hosting integrations and are unused elsewhere.
type User struct {
	Model
	Username    string `gorm:"not null;uniqueIndex" json:"username" mapstructure:"username"`
	Password    string `gorm:"not null" json:"-" mapstructure:"password"`
	DisplayName string `json:"displayName"`
	AccessToken string `json:"-"`
	ProfileID   string `json:"profileid"`
}

// Profile is the public subset of a user rendered into views.
type Profile struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// GetProfile returns the renderable identity for a user.
func GetProfile(u *User) *Profile {
	if u == nil {
		return nil
	}
	name := u.DisplayName
	if name == "" {
		name = u.Username
	}
	return &Profile{ID: u.ID, Name: name}
}

func Hash(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// Prepare normalizes user input before validation.
func (u *User) Prepare() {
	u.Username = strings.TrimSpace(u.Username)
}

// Validate checks the minimal login invariants.
func (u *User) Validate() error {
	if u.Username == "" {
		return errors.New("username is required")
	}
	if u.Password == "" {
		return errors.New("password is required")
	}
	return nil
}
