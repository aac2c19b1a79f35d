package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"backoffice/internal/domain/invoicing"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidAPIKey = errors.New("invalid api key")
)

// Claims are the bearer-token claims of a back-office user.
type Claims struct {
	UserID     string         `json:"uid"`
	Role       invoicing.Role `json:"role"`
	CompanyID  string         `json:"cid"`
	Freelancer bool           `json:"fl,omitempty"`
	jwt.RegisteredClaims
}

func (c Claims) Requester() invoicing.Requester {
	return invoicing.Requester{
		UserID:     c.UserID,
		Role:       c.Role,
		CompanyID:  c.CompanyID,
		Freelancer: c.Freelancer,
	}
}

// ServiceRequester is the identity of calls authenticated with the API key.
func ServiceRequester() invoicing.Requester {
	return invoicing.Requester{UserID: "service", Role: invoicing.RoleAdmin}
}

func HashAPIKey(key string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckAPIKey(hash, key string) error {
	if strings.TrimSpace(hash) == "" || key == "" {
		return ErrInvalidAPIKey
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)); err != nil {
		return ErrInvalidAPIKey
	}
	return nil
}

func GenerateToken(secret string, claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.UserID,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
