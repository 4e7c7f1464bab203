package services

import (
	"errors"
	"fmt"
	"time"

	"rentledger/config"
	"rentledger/internal/models"
	"rentledger/internal/types"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	jwt.RegisteredClaims
	Role models.Role `json:"role"`
}

type IssuedToken struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type TokenService struct {
	secret     []byte
	issuer     string
	expiration time.Duration
	now        func() time.Time
}

func NewTokenService(config config.Config) *TokenService {
	return &TokenService{
		secret:     []byte(config.JWTSecret),
		issuer:     config.JWTIssuer,
		expiration: config.JWTExpiry(),
		now:        time.Now,
	}
}

func (s *TokenService) Issue(user *models.User) (IssuedToken, error) {
	now := s.now()
	expiresAt := now.Add(s.expiration)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: user.Role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return IssuedToken{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return IssuedToken{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// Verify returns the acting user id and role carried by a token. Every
// failure is reported as types.ErrUnauthenticated.
func (s *TokenService) Verify(tokenString string) (uuid.UUID, models.Role, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, "", fmt.Errorf("%w: token expired", types.ErrUnauthenticated)
		}
		return uuid.Nil, "", fmt.Errorf("%w: invalid token", types.ErrUnauthenticated)
	}
	if !token.Valid {
		return uuid.Nil, "", fmt.Errorf("%w: invalid token", types.ErrUnauthenticated)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: invalid subject", types.ErrUnauthenticated)
	}

	return userID, claims.Role, nil
}
