package services

import (
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// TokenSource hands out random artifact names that are unique within one run.
// Tokens are not derived from the source file, so two runs name the same
// input differently.
type TokenSource struct {
	issued *cache.Cache
	newID  func() string
}

// NewTokenSource returns a TokenSource backed by UUID v4 values
func NewTokenSource() *TokenSource {
	return &TokenSource{
		issued: cache.New(cache.NoExpiration, 0),
		newID:  uuid.NewString,
	}
}

// Next returns a token that has not been issued by this source before
func (t *TokenSource) Next() string {
	for {
		id := t.newID()
		if err := t.issued.Add(id, struct{}{}, cache.NoExpiration); err == nil {
			return id
		}
	}
}

// Issued returns the number of tokens handed out so far
func (t *TokenSource) Issued() int {
	return t.issued.ItemCount()
}
