// Copyright (c) 2026 Astrodaily Authors.
// All rights reserved. See LICENSE for details.

// Package auth implements passwordless magic-link login. A login request
// issues a single-use token whose secret half is bcrypt-hashed before it
// is stored in Valkey; possession of the emailed link is the credential.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const (
	// tokenKeyPrefix namespaces login tokens in Valkey.
	tokenKeyPrefix = "login_token:"

	// DefaultTokenTTL is how long a magic link stays valid.
	DefaultTokenTTL = 15 * time.Minute

	// secretLength is the byte length of the token's random secret half.
	secretLength = 32
)

// ErrInvalidToken covers every failed verification: unknown ID, expired,
// already used, or a secret that does not match the stored hash. Callers
// show one generic message for all of them.
var ErrInvalidToken = errors.New("auth: invalid or expired login token")

// tokenRecord is the payload stored in Valkey for a pending login.
type tokenRecord struct {
	Email      string    `json:"email"`
	SecretHash string    `json:"secret_hash"`
	CreatedAt  time.Time `json:"created_at"`
}

// TokenStore issues and consumes single-use magic-link tokens in Valkey.
type TokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTokenStore creates a token store backed by the given Valkey client.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client, ttl: DefaultTokenTTL}
}

// Issue creates a pending login token for an email address and returns
// the opaque "<id>.<secret>" value to embed in the link. Only the bcrypt
// hash of the secret is stored, so a Valkey dump alone cannot be replayed.
func (s *TokenStore) Issue(ctx context.Context, email string) (string, error) {
	secret := make([]byte, secretLength)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("token secret: %w", err)
	}
	secretHex := hex.EncodeToString(secret)

	hash, err := bcrypt.GenerateFromPassword([]byte(secretHex), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("token hash: %w", err)
	}

	id := uuid.NewString()
	payload, err := json.Marshal(tokenRecord{
		Email:      email,
		SecretHash: string(hash),
		CreatedAt:  time.Now(),
	})
	if err != nil {
		return "", fmt.Errorf("token marshal: %w", err)
	}

	if err := s.client.Set(ctx, tokenKeyPrefix+id, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("token store: %w", err)
	}

	return id + "." + secretHex, nil
}

// Consume validates a token value and returns the email it was issued
// for. The token is deleted before the hash check, so a token can only
// ever be attempted once regardless of outcome.
func (s *TokenStore) Consume(ctx context.Context, token string) (string, error) {
	id, secret, ok := strings.Cut(token, ".")
	if !ok || id == "" || secret == "" {
		return "", ErrInvalidToken
	}

	key := tokenKeyPrefix + id
	payload, err := s.client.GetDel(ctx, key).Bytes()
	if err == redis.Nil {
		return "", ErrInvalidToken
	}
	if err != nil {
		return "", fmt.Errorf("token fetch: %w", err)
	}

	var rec tokenRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return "", fmt.Errorf("token unmarshal: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(rec.SecretHash), []byte(secret)) != nil {
		return "", ErrInvalidToken
	}

	return rec.Email, nil
}
