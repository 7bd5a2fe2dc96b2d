package service

import (
	"context"
	"errors"

	"github.com/spf13/viper"
	"google.golang.org/api/idtoken"
)

var ErrMissingClaims = errors.New("google token is missing required claims")

// GoogleClaims is the identity extracted from a verified Google ID token
type GoogleClaims struct {
	Email string
	Name  string
	Sub   string
}

// GoogleVerifier checks a Google ID token signature and audience and
// returns the identity claims it carries.
type GoogleVerifier interface {
	Verify(ctx context.Context, credential string) (*GoogleClaims, error)
}

type IDTokenVerifier struct {
	audience string
}

func NewIDTokenVerifier() *IDTokenVerifier {
	return &IDTokenVerifier{audience: viper.GetString("google.client_id")}
}

func (v *IDTokenVerifier) Verify(ctx context.Context, credential string) (*GoogleClaims, error) {
	payload, err := idtoken.Validate(ctx, credential, v.audience)
	if err != nil {
		return nil, err
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)

	if email == "" || name == "" || payload.Subject == "" {
		return nil, ErrMissingClaims
	}

	return &GoogleClaims{
		Email: email,
		Name:  name,
		Sub:   payload.Subject,
	}, nil
}
