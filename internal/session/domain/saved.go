package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/tnl-dmg-calc/internal/platform/id"
)

var (
	// ErrEmptyToken indicates a saved session without state.
	ErrEmptyToken = errors.New("session token is required")
	// ErrSessionNotFound indicates a missing saved session.
	ErrSessionNotFound = errors.New("session not found")
)

// DefaultSessionName names saved sessions created without a name.
const DefaultSessionName = "Untitled session"

// Saved is a persisted session. Token is the share token of its state.
type Saved struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SaveInput describes the metadata needed to save a session.
type SaveInput struct {
	Name  string
	Token string
}

// NewSaved creates a saved session with a generated ID and timestamps.
func NewSaved(input SaveInput, now func() time.Time, idGenerator func() (string, error)) (Saved, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeSaveInput(input)
	if err != nil {
		return Saved{}, err
	}

	sessionID, err := idGenerator()
	if err != nil {
		return Saved{}, fmt.Errorf("generate session id: %w", err)
	}

	createdAt := now().UTC()
	return Saved{
		ID:        sessionID,
		Name:      normalized.Name,
		Token:     normalized.Token,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}, nil
}

// NormalizeSaveInput trims and validates save input.
func NormalizeSaveInput(input SaveInput) (SaveInput, error) {
	input.Token = strings.TrimSpace(input.Token)
	if input.Token == "" {
		return SaveInput{}, ErrEmptyToken
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		input.Name = DefaultSessionName
	}
	return input, nil
}
