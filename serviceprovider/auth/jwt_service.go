package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"inventory/models"
	"inventory/providers"
)

type jwtService struct {
	jwtSecret   []byte
	tokenExpiry time.Duration
}

func NewJWTService(secret string, expiry time.Duration) providers.TokenProvider {
	return &jwtService{
		jwtSecret:   []byte(secret),
		tokenExpiry: expiry,
	}
}

func (j *jwtService) GenerateJWT(identity models.Identity) (string, error) {
	if len(j.jwtSecret) == 0 {
		return "", errors.New("jwt secret is not configured")
	}
	claims := jwt.MapClaims{
		"sub":      identity.UserID.String(),
		"role":     string(identity.Role),
		"location": identity.Location,
		"typ":      "access",
		"exp":      time.Now().Add(j.tokenExpiry).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.jwtSecret)
}

func (j *jwtService) ParseJWT(tokenStr string) (models.Identity, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return j.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return models.Identity{}, fmt.Errorf("invalid or expired token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["typ"] != "access" {
		return models.Identity{}, errors.New("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return models.Identity{}, errors.New("invalid 'sub' claim")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return models.Identity{}, errors.New("invalid 'sub' claim")
	}

	role, ok := claims["role"].(string)
	if !ok {
		return models.Identity{}, errors.New("invalid 'role' claim")
	}
	location, _ := claims["location"].(string)

	return models.Identity{UserID: userID, Role: models.Role(role), Location: location}, nil
}
