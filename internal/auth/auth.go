package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"notehub/internal/environment"
	"notehub/internal/models"
)

const usernamePasswordFalse = "username or password false"

type AuthService struct {
	*environment.Env
}

// DoLogin verifies the login credentials for <user> and fills in its id.
func (c *AuthService) DoLogin(ctx context.Context, user *models.User) error {
	var foundUser models.User

	err := c.FindUserLoginCredentials(ctx, user.Username, &foundUser)
	if err != nil {
		return errors.New(usernamePasswordFalse)
	}
	err = models.VerifyPassword(foundUser.Password, user.Password)
	if err != nil && errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return errors.New(usernamePasswordFalse)
	}
	user.ID = foundUser.ID
	return nil
}
