package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the internal directory record behind an identity-provider subject.
// Everything except the subject itself is display metadata captured from the
// provider's token at sign-in.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Subject   string             `bson:"subject" json:"-"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image" json:"image"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserSummary is the projection attached wherever a list references a user.
// Full records never leave the directory endpoints.
type UserSummary struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
	Image string             `json:"image"`
}

// Summary returns the displayable projection of u.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Image: u.Image,
	}
}

// GoogleAuthRequest is the payload for Google sign-in.
type GoogleAuthRequest struct {
	GoogleIDToken string `json:"googleIdToken" binding:"required"`
}

// FirebaseAuthRequest is the payload for Firebase sign-in (mobile clients).
type FirebaseAuthRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// AuthResponse is returned after a successful sign-in.
type AuthResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"accessToken"`
}
