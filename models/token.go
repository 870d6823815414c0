package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is an issued or parsed session token.
//
// It doubles as the claims type for jwt parsing: the embedded
// [jwt.RegisteredClaims] satisfies [jwt.Claims].
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact serialized token.
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as an int64 user id.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Bearer returns the value of an Authorization header carrying the token.
func (t *Token) Bearer() string {
	return "Bearer " + t.SignedString
}

// String implements [fmt.Stringer].
func (t *Token) String() string {
	return t.SignedString
}
