package auth

import (
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/huddleapp/huddle/internal/config"
	"github.com/huddleapp/huddle/internal/pkg/jwt"
	"github.com/huddleapp/huddle/internal/pkg/logger"
	"github.com/huddleapp/huddle/internal/pkg/response"
)

type Handler struct {
	repo     *Repository
	firebase *fbauth.Client
	jwtCfg   *jwt.Config
	config   *config.Config
}

func NewHandler(repo *Repository, firebase *fbauth.Client, cfg *config.Config) *Handler {
	return &Handler{
		repo:     repo,
		firebase: firebase,
		jwtCfg:   jwt.DefaultConfig(cfg.JWTSecret, cfg.JWTExpire),
		config:   cfg,
	}
}

// GoogleLogin godoc
// @Summary Sign in with a Google ID token
// @Description Verifies the token, creates the user record on first sign-in, and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body GoogleAuthRequest true "Google ID token"
// @Success 200 {object} response.Envelope{data=AuthResponse}
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/google [post]
func (h *Handler) GoogleLogin(c *gin.Context) {
	var req GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "googleIdToken is required")
		return
	}

	identity, err := VerifyGoogleToken(c.Request.Context(), req.GoogleIDToken, h.config.GoogleClientID)
	if err != nil {
		response.Unauthorized(c, "Invalid Google token")
		return
	}

	h.completeLogin(c, identity)
}

// FirebaseLogin godoc
// @Summary Sign in with a Firebase ID token
// @Description Verifies the token via the Firebase Admin SDK, creates the user record on first sign-in, and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body FirebaseAuthRequest true "Firebase ID token"
// @Success 200 {object} response.Envelope{data=AuthResponse}
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/firebase [post]
func (h *Handler) FirebaseLogin(c *gin.Context) {
	var req FirebaseAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "idToken is required")
		return
	}

	identity, err := VerifyFirebaseToken(c.Request.Context(), h.firebase, req.IDToken)
	if err != nil {
		response.Unauthorized(c, "Invalid Firebase token")
		return
	}

	h.completeLogin(c, identity)
}

func (h *Handler) completeLogin(c *gin.Context, identity *ProviderIdentity) {
	if identity.Email == "" || !identity.EmailVerified {
		response.Unauthorized(c, "A verified email address is required")
		return
	}

	user, err := h.repo.Upsert(c.Request.Context(), identity.Subject, identity.Email, identity.Name, identity.Picture)
	if err != nil {
		logger.Error("user upsert failed: %v", err)
		response.InternalServerError(c, "Failed to sign in", err)
		return
	}

	token, err := jwt.GenerateToken(user.Subject, user.Email, h.jwtCfg)
	if err != nil {
		logger.Error("token issue failed: %v", err)
		response.InternalServerError(c, "Failed to sign in", err)
		return
	}

	response.SuccessMessage(c, "Signed in successfully", AuthResponse{
		User:        user,
		AccessToken: token,
	})
}
