package models

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"strings"

	"github.com/samborkent/uuidv7"
)

// ErrInvalidNoteToken reports a URL token that cannot name any note: empty,
// too long, or containing characters outside the alias/short-id alphabet.
var ErrInvalidNoteToken = errors.New("invalid note token")

const maxNoteTokenLength = 64

// NoteRef is the internal lookup key produced from an external URL token.
// Token carries the raw value for alias/short-id matching; ID is set when the
// token also parses as an encoded internal id.
type NoteRef struct {
	Token string
	ID    uint
	HasID bool
}

// ParseNoteToken validates an external token and derives the lookup key.
func ParseNoteToken(token string) (NoteRef, error) {
	if token == "" || len(token) > maxNoteTokenLength {
		return NoteRef{}, ErrInvalidNoteToken
	}
	for _, r := range token {
		if !isTokenRune(r) {
			return NoteRef{}, ErrInvalidNoteToken
		}
	}
	ref := NoteRef{Token: token}
	if id, err := DecodeNoteID(token); err == nil {
		ref.ID = id
		ref.HasID = true
	}
	return ref, nil
}

func isTokenRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	}
	return false
}

// EncodeNoteID renders an internal note id as a URL-safe token.
func EncodeNoteID(id uint) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))
	return base64.RawURLEncoding.EncodeToString(buf[:])
}

// DecodeNoteID is the inverse of EncodeNoteID.
func DecodeNoteID(token string) (uint, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || len(raw) != 8 {
		return 0, ErrInvalidNoteToken
	}
	return uint(binary.BigEndian.Uint64(raw)), nil
}

// NewShortID derives a fresh short identifier from a v7 UUID. The random
// tail keeps tokens unguessable while staying time-sortable at creation.
func NewShortID() string {
	hex := strings.ReplaceAll(uuidv7.New().String(), "-", "")
	return hex[len(hex)-12:]
}
