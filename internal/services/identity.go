package services

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/harentsoaR/doctors-portal-api/internal/utils"
)

var ErrVerifierDisabled = errors.New("no identity provider configured")

// TokenVerifier exchanges a bearer token for the caller's verified email.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, token string) (string, error)
}

// FirebaseVerifier checks Firebase Auth ID tokens.
type FirebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier initializes a Firebase app from a service-account
// JSON document (not a path).
func NewFirebaseVerifier(ctx context.Context, serviceAccountJSON string) (*FirebaseVerifier, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) VerifyIDToken(ctx context.Context, token string) (string, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}
	email, _ := decoded.Claims["email"].(string)
	if email == "" {
		return "", errors.New("token carries no email claim")
	}
	return email, nil
}

// JWTVerifier accepts HS256 tokens signed with a shared secret. Used for
// local development when no Firebase project is configured.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) VerifyIDToken(_ context.Context, token string) (string, error) {
	claims, err := utils.ValidateJWT(token, v.secret)
	if err != nil {
		return "", err
	}
	return claims.Email, nil
}

// DisabledVerifier rejects every token.
type DisabledVerifier struct{}

func (DisabledVerifier) VerifyIDToken(context.Context, string) (string, error) {
	return "", ErrVerifierDisabled
}
