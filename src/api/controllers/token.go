package controllers

import (
	"context"
	"time"

	"assettrack/src/models"
	"assettrack/src/schemas"
	"assettrack/src/utils"
	redis_utils "assettrack/src/utils/redis"

	"github.com/go-chi/jwtauth"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const invalidCredentialsMsg = "Invalid email or password"

type TokenControllerI interface {
	PostToken(ctx context.Context, email, password string) (*schemas.TokenResponse, error)
	GetProfile(ctx context.Context, sessionID string) (*schemas.UserProfile, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// TokenController verifies credentials server side and issues signed session
// tokens. Password hashes never leave the database and the client only ever
// holds the token.
type TokenController struct {
	DB        *gorm.DB
	Sessions  *redis_utils.SessionStore
	TokenAuth *jwtauth.JWTAuth
	TokenTTL  time.Duration
}

func NewTokenController(db *gorm.DB, sessions *redis_utils.SessionStore, tokenAuth *jwtauth.JWTAuth, tokenTTL time.Duration) *TokenController {
	return &TokenController{DB: db, Sessions: sessions, TokenAuth: tokenAuth, TokenTTL: tokenTTL}
}

func (tc *TokenController) PostToken(ctx context.Context, email, password string) (*schemas.TokenResponse, error) {
	var user models.User
	err := tc.DB.WithContext(ctx).Where("email = ? AND active = ?", email, true).First(&user).Error
	if err != nil {
		// Same message for unknown user and bad password.
		return nil, utils.Unauthorized(invalidCredentialsMsg)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, utils.Unauthorized(invalidCredentialsMsg)
	}

	sessionID := uuid.NewString()
	profile := &schemas.UserProfile{
		UserID:     user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Department: user.Department,
	}
	if err := tc.Sessions.SaveProfile(ctx, sessionID, profile, tc.TokenTTL); err != nil {
		return nil, utils.InternalServerError("failed to create session")
	}

	claims := map[string]interface{}{
		"sub":  user.Email,
		"sid":  sessionID,
		"role": user.Role,
		"exp":  time.Now().Add(tc.TokenTTL).Unix(),
	}
	_, tokenString, err := tc.TokenAuth.Encode(claims)
	if err != nil {
		return nil, utils.InternalServerError("failed to sign session token")
	}

	return &schemas.TokenResponse{
		AccessToken: tokenString,
		TokenType:   "Bearer",
		ExpiresIn:   int(tc.TokenTTL.Seconds()),
	}, nil
}

func (tc *TokenController) GetProfile(ctx context.Context, sessionID string) (*schemas.UserProfile, error) {
	profile, err := tc.Sessions.GetProfile(ctx, sessionID)
	if err != nil {
		return nil, utils.Unauthorized("session expired")
	}
	return profile, nil
}

func (tc *TokenController) DeleteSession(ctx context.Context, sessionID string) error {
	return tc.Sessions.DeleteProfile(ctx, sessionID)
}
