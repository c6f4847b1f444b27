package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kaanc/movie-api/internal/domain"
)

const (
	// AccessTokenTTL bounds how long an access token authorizes API calls.
	AccessTokenTTL = 30 * time.Minute
	// RefreshTokenTTL bounds how long a refresh token can mint new access
	// tokens. It is also the retention horizon for blacklist pruning.
	RefreshTokenTTL = 7 * 24 * time.Hour

	refreshTokenType = "refresh"
)

// TokenPair is the credential pair issued on login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService handles registration, login, and the token lifecycle:
// issuing, verifying, refreshing, and revoking JWTs.
type AuthService struct {
	users      domain.UserRepository
	blacklist  domain.TokenBlacklist
	jwtSecret  []byte
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, blacklist domain.TokenBlacklist, jwtSecret string, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		blacklist:  blacklist,
		jwtSecret:  []byte(jwtSecret),
		bcryptCost: bcryptCost,
	}
}

// Register creates a new user account after validating inputs.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email, and password are required", domain.ErrInvalidInput)
	}

	// Explicit username check first so a taken username wins over a taken
	// email when both collide.
	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return nil, domain.ErrDuplicateUsername
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues an access/refresh token pair.
// Unknown email and wrong password collapse into the same ErrUnauthorized
// so responses cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return TokenPair{}, domain.ErrUnauthorized
		}
		return TokenPair{}, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return TokenPair{}, domain.ErrUnauthorized
	}

	access, err := s.IssueAccessToken(user.Email)
	if err != nil {
		return TokenPair{}, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.IssueRefreshToken(user.Email)
	if err != nil {
		return TokenPair{}, fmt.Errorf("issue refresh token: %w", err)
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// IssueAccessToken mints a signed access token for the subject.
func (s *AuthService) IssueAccessToken(subject string) (string, error) {
	return s.signToken(jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(AccessTokenTTL).Unix(),
	})
}

// IssueRefreshToken mints a signed refresh token for the subject. Refresh
// tokens carry an explicit type tag so the access verification path can
// reject them.
func (s *AuthService) IssueRefreshToken(subject string) (string, error) {
	return s.signToken(jwt.MapClaims{
		"sub":  subject,
		"exp":  time.Now().Add(RefreshTokenTTL).Unix(),
		"type": refreshTokenType,
	})
}

// VerifyAccessToken validates an access token and returns its subject.
// It fails with ErrUnauthorized when the signature is invalid, the token is
// expired, the token is typed "refresh", or the token has been revoked.
// The revocation list is consulted live on every call, so a just-revoked
// token is rejected on the very next request.
func (s *AuthService) VerifyAccessToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return "", err
	}

	if tokenType, _ := claims["type"].(string); tokenType == refreshTokenType {
		return "", domain.ErrUnauthorized
	}

	if err := s.checkRevoked(ctx, tokenString); err != nil {
		return "", err
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", domain.ErrUnauthorized
	}
	return subject, nil
}

// Refresh validates a refresh token and issues a new access token for the
// same subject. The refresh token itself is unchanged; there is no rotation.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.parseToken(refreshToken)
	if err != nil {
		return "", err
	}

	if tokenType, _ := claims["type"].(string); tokenType != refreshTokenType {
		return "", domain.ErrUnauthorized
	}

	if err := s.checkRevoked(ctx, refreshToken); err != nil {
		return "", err
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", domain.ErrUnauthorized
	}

	access, err := s.IssueAccessToken(subject)
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}
	return access, nil
}

// Logout revokes the presented access token. The refresh token issued
// alongside it stays valid until it expires.
func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	if err := s.blacklist.Revoke(ctx, accessToken); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	return nil
}

// Authenticate verifies a bearer token and resolves its subject to a user.
// A valid token whose subject no longer exists yields ErrNotFound.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	subject, err := s.VerifyAccessToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("resolve subject: %w", err)
	}
	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdatePhoto sets the user's profile photo URL.
func (s *AuthService) UpdatePhoto(ctx context.Context, userID int64, photoURL string) error {
	if photoURL == "" {
		return fmt.Errorf("%w: photo_url is required", domain.ErrInvalidInput)
	}
	return s.users.UpdatePhotoURL(ctx, userID, photoURL)
}

// PruneBlacklist removes blacklist entries older than the refresh token
// lifetime. Anything older fails expiry validation before the blacklist is
// consulted, so pruning cannot resurrect a revoked token.
func (s *AuthService) PruneBlacklist(ctx context.Context) (int64, error) {
	return s.blacklist.DeleteOlderThan(ctx, time.Now().Add(-RefreshTokenTTL))
}

func (s *AuthService) signToken(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

// checkRevoked consults the revocation list. A store failure surfaces as
// ErrUnavailable, distinct from ErrUnauthorized.
func (s *AuthService) checkRevoked(ctx context.Context, tokenString string) error {
	revoked, err := s.blacklist.Contains(ctx, tokenString)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	if revoked {
		return domain.ErrUnauthorized
	}
	return nil
}
