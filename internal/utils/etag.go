package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strconv"
	"sync"
)

// ETagHasher derives change-tokens from per-user revisions with a keyed
// HMAC-SHA256. Hashers are pooled; an ETagHasher is safe for concurrent use.
type ETagHasher struct {
	pool sync.Pool
}

// NewETagHasher returns an [ETagHasher] keyed with hashKey.
func NewETagHasher(hashKey string) *ETagHasher {
	key := []byte(hashKey)
	return &ETagHasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// ChangeToken returns the opaque change-token of a user at a revision.
// Equal inputs always give equal tokens.
func (e *ETagHasher) ChangeToken(userID, revision int64) string {
	h := e.pool.Get().(hash.Hash)
	h.Reset()

	h.Write([]byte(strconv.FormatInt(userID, 10)))
	h.Write([]byte{':'})
	h.Write([]byte(strconv.FormatInt(revision, 10)))
	sum := h.Sum(nil)

	h.Reset()
	e.pool.Put(h)

	return hex.EncodeToString(sum)
}

// VersionETag renders a row version as an entity tag.
func VersionETag(version int64) string {
	return strconv.FormatInt(version, 10)
}

// ParseVersionETag is the inverse of [VersionETag]. Surrounding quotes and a
// weak prefix, as some HTTP clients send them, are ignored.
func ParseVersionETag(etag string) (int64, error) {
	if len(etag) > 2 && etag[:2] == "W/" {
		etag = etag[2:]
	}
	if n := len(etag); n >= 2 && etag[0] == '"' && etag[n-1] == '"' {
		etag = etag[1 : n-1]
	}
	return strconv.ParseInt(etag, 10, 64)
}
