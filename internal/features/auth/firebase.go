package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"

	"github.com/huddleapp/huddle/internal/config"
)

// InitFirebase initializes the Firebase Admin SDK and returns the Auth
// client. Returns (nil, nil) when no service account is configured, in which
// case the Firebase sign-in route is not registered.
func InitFirebase(cfg *config.Config) (*fbauth.Client, error) {
	if cfg.FirebaseServiceAccountPath == "" {
		return nil, nil
	}

	opt := option.WithCredentialsFile(cfg.FirebaseServiceAccountPath)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	client, err := app.Auth(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting firebase auth client: %w", err)
	}

	return client, nil
}

// ProviderIdentity is the information extracted from a validated identity
// token, regardless of which provider issued it.
type ProviderIdentity struct {
	Subject       string
	Email         string
	Name          string
	Picture       string
	EmailVerified bool
}

// VerifyGoogleToken validates a Google ID token against the configured OAuth
// client id and extracts the standard profile claims.
func VerifyGoogleToken(ctx context.Context, token, clientID string) (*ProviderIdentity, error) {
	payload, err := idtoken.Validate(ctx, token, clientID)
	if err != nil {
		return nil, fmt.Errorf("invalid google token: %w", err)
	}

	identity := &ProviderIdentity{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		identity.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		identity.Picture = picture
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		identity.EmailVerified = verified
	}

	return identity, nil
}

// VerifyFirebaseToken validates a Firebase ID token via the Admin SDK and
// extracts the same profile claims.
func VerifyFirebaseToken(ctx context.Context, client *fbauth.Client, token string) (*ProviderIdentity, error) {
	decoded, err := client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("invalid firebase token: %w", err)
	}

	identity := &ProviderIdentity{Subject: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		identity.Name = name
	}
	if picture, ok := decoded.Claims["picture"].(string); ok {
		identity.Picture = picture
	}
	if verified, ok := decoded.Claims["email_verified"].(bool); ok {
		identity.EmailVerified = verified
	}

	return identity, nil
}
