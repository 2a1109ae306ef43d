// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/danielhkuo/livepoll/cliparse"
)

var (
	ErrMissingHeader       = errors.New("missing authorization header")
	ErrMissingBearerPrefix = errors.New("authorization header must use the Bearer scheme")
	ErrInvalidToken        = errors.New("invalid token")
)

const (
	// TokenTTL is the lifetime of tokens issued at login
	TokenTTL = 2 * time.Hour

	// ConnectionTokenTTL is the lifetime of realtime connection tokens
	ConnectionTokenTTL = 1 * time.Hour

	// SubjectConnection is the subject claim on connection tokens
	SubjectConnection = "connection"
)

// IssueToken creates a signed HS256 token for the given username.
// Subject = username, issuer and audience from config, 2-hour expiry.
func IssueToken(username string, cfg cliparse.Config) (string, error) {
	return issue(username, TokenTTL, cfg)
}

// IssueConnectionToken creates a short-lived token granting access to the
// realtime channel. Handed out anonymously by the negotiate endpoint.
func IssueConnectionToken(cfg cliparse.Config) (string, error) {
	return issue(SubjectConnection, ConnectionTokenTTL, cfg)
}

func issue(subject string, ttl time.Duration, cfg cliparse.Config) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    cfg.JWTIssuer,
		Audience:  jwt.ClaimStrings{cfg.JWTAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// FromHeader extracts the raw token from an Authorization header value
func FromHeader(header string) (string, error) {
	if header == "" {
		return "", ErrMissingHeader
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", ErrMissingBearerPrefix
	}

	return strings.TrimSpace(header[len(prefix):]), nil
}

// VerifyToken parses and validates a raw token: HS256 signature, issuer,
// audience, and expiry. Every failure collapses to ErrInvalidToken so the
// caller can't leak which check tripped.
func VerifyToken(raw string, cfg cliparse.Config) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.JWTIssuer),
		jwt.WithAudience(cfg.JWTAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return claims, nil
}

// Authorize combines header extraction and token verification.
// This is the full bearer check used by protected endpoints.
func Authorize(header string, cfg cliparse.Config) (*jwt.RegisteredClaims, error) {
	raw, err := FromHeader(header)
	if err != nil {
		return nil, err
	}
	return VerifyToken(raw, cfg)
}
