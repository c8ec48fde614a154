package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the verified token payload.
type Claims struct {
	MedicoID int64
	Subject  string
}

// JWTService issues and verifies bearer tokens.
type JWTService interface {
	Generate(medicoID int64) (string, error)
	Verify(token string) (*Claims, error)
}

// Config holds token signing configuration.
type Config struct {
	Secret        string
	Algorithm     string
	ExpiryMinutes int
}

type jwtService struct {
	secret []byte
	method jwt.SigningMethod
	expiry time.Duration
}

// NewJWTService creates a token service. The algorithm defaults to HS256
// when unset or unknown.
func NewJWTService(cfg Config) JWTService {
	method := jwt.GetSigningMethod(cfg.Algorithm)
	if method == nil {
		method = jwt.SigningMethodHS256
	}
	return &jwtService{
		secret: []byte(cfg.Secret),
		method: method,
		expiry: time.Duration(cfg.ExpiryMinutes) * time.Minute,
	}
}

func (s *jwtService) Generate(medicoID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(medicoID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *jwtService) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token missing subject claim")
	}

	medicoID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid subject in token: %w", err)
	}

	return &Claims{MedicoID: medicoID, Subject: claims.Subject}, nil
}
