package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what the access token says about itself. It is display-only:
// nothing in the client gates on it.
type TokenInfo struct {
	UserId    string
	ExpiresAt *time.Time
}

func (i *TokenInfo) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && now.After(*i.ExpiresAt)
}

// InspectToken decodes the claims of a JWT access token without verifying
// its signature.
func InspectToken(token string) (*TokenInfo, error) {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return nil, fmt.Errorf("error parsing access token: %v", err)
	}

	info := &TokenInfo{}

	if userId, ok := claims["user_id"]; ok {
		info.UserId = fmt.Sprint(userId)
	} else if sub, err := claims.GetSubject(); err == nil {
		info.UserId = sub
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("error reading token expiry: %v", err)
	}
	if exp != nil {
		t := exp.Time
		info.ExpiresAt = &t
	}

	return info, nil
}
