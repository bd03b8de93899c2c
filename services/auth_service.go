package services

import (
	"context"
	"encoding/json"
	"net/http"
	"recipe-box/models"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// IDTokenValidator verifies a Google ID token for the given audience
type IDTokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// AuthService handles authentication business logic
type AuthService struct {
	repo         AuthRepository
	sessionStore SessionStore
	oauthConfig  *oauth2.Config

	httpClient      *http.Client
	userInfoURL     string
	validateIDToken IDTokenValidator
}

// NewAuthService creates a new auth service
func NewAuthService(repo AuthRepository, sessionStore SessionStore, oauthConfig *oauth2.Config) *AuthService {
	return &AuthService{
		repo:            repo,
		sessionStore:    sessionStore,
		oauthConfig:     oauthConfig,
		httpClient:      &http.Client{Timeout: 10 * time.Second},
		userInfoURL:     googleUserInfoURL,
		validateIDToken: idtoken.Validate,
	}
}

// UserInfo represents user information from Google
type UserInfo struct {
	GoogleID string
	Email    string
	Name     string
	Picture  string
}

// LoginResponse contains the session and additional login metadata
type LoginResponse struct {
	Session   *models.Session
	IsNewUser bool
}

// AuthCodeURL returns the Google consent screen URL for the authorization code flow
func (as *AuthService) AuthCodeURL(state string) string {
	return as.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// LoginWithCode handles login via OAuth authorization code
func (as *AuthService) LoginWithCode(ctx context.Context, code string) (*LoginResponse, error) {
	token, err := as.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, ErrInvalidAuthCode
	}

	userInfo, err := as.getUserInfo(ctx, token.AccessToken)
	if err != nil {
		return nil, err
	}

	return as.signIn(userInfo)
}

// LoginWithToken handles login via an access token obtained by the client
func (as *AuthService) LoginWithToken(ctx context.Context, accessToken string) (*LoginResponse, error) {
	if accessToken == "" {
		return nil, ErrInvalidToken
	}

	userInfo, err := as.getUserInfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	return as.signIn(userInfo)
}

// LoginWithIDToken handles login via a Google ID token (One Tap)
func (as *AuthService) LoginWithIDToken(ctx context.Context, idToken string) (*LoginResponse, error) {
	userInfo, err := as.verifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	return as.signIn(userInfo)
}

// AuthenticateIDToken verifies a bearer ID token and returns a request-scoped session.
// Nothing is persisted besides the user record.
func (as *AuthService) AuthenticateIDToken(ctx context.Context, idToken string) (*models.Session, error) {
	userInfo, err := as.verifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	if _, err := as.createOrUpdateUser(userInfo); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &models.Session{
		UserID:     userInfo.GoogleID,
		Email:      userInfo.Email,
		Name:       userInfo.Name,
		Picture:    userInfo.Picture,
		ExpiresAt:  now.Add(time.Hour),
		CreatedAt:  now,
		LastUsedAt: now,
	}, nil
}

// Logout handles user logout
func (as *AuthService) Logout(sessionID string) error {
	return as.sessionStore.Delete(sessionID)
}

// GetSessionInfo returns current session information
func (as *AuthService) GetSessionInfo(sessionID string) (*models.Session, error) {
	sess, err := as.sessionStore.Get(sessionID)
	if err != nil || sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// CurrentUser returns the stored user record
func (as *AuthService) CurrentUser(userID string) (*models.User, error) {
	user, err := as.repo.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthorized
	}
	return user, nil
}

func (as *AuthService) signIn(userInfo *UserInfo) (*LoginResponse, error) {
	isNew, err := as.createOrUpdateUser(userInfo)
	if err != nil {
		return nil, err
	}

	sess, err := as.sessionStore.Create(
		userInfo.GoogleID,
		userInfo.Email,
		userInfo.Name,
		userInfo.Picture,
	)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Session: sess, IsNewUser: isNew}, nil
}

func (as *AuthService) verifyIDToken(ctx context.Context, idToken string) (*UserInfo, error) {
	if idToken == "" {
		return nil, ErrInvalidToken
	}

	payload, err := as.validateIDToken(ctx, idToken, as.oauthConfig.ClientID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	if payload.Subject == "" || email == "" {
		return nil, ErrInvalidUserInfo
	}

	return &UserInfo{
		GoogleID: payload.Subject,
		Email:    email,
		Name:     name,
		Picture:  picture,
	}, nil
}

// getUserInfo fetches user information from Google
func (as *AuthService) getUserInfo(ctx context.Context, accessToken string) (*UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, as.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := as.httpClient.Do(req)
	if err != nil {
		return nil, ErrInvalidToken
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidToken
	}

	var data struct {
		Sub     string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, ErrInvalidToken
	}

	if data.Sub == "" || data.Email == "" {
		return nil, ErrInvalidUserInfo
	}

	return &UserInfo{
		GoogleID: data.Sub,
		Email:    data.Email,
		Name:     data.Name,
		Picture:  data.Picture,
	}, nil
}

// createOrUpdateUser saves the user and reports whether this was their first sign-in
func (as *AuthService) createOrUpdateUser(userInfo *UserInfo) (bool, error) {
	existing, err := as.repo.GetUser(userInfo.GoogleID)
	if err != nil {
		return false, err
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:          userInfo.GoogleID,
		GoogleID:    userInfo.GoogleID,
		Email:       userInfo.Email,
		Name:        userInfo.Name,
		Picture:     userInfo.Picture,
		CreatedAt:   now,
		LastLoginAt: now,
	}

	if err := as.repo.UpsertUser(user); err != nil {
		return false, err
	}

	return existing == nil, nil
}
