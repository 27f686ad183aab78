package middleware

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// ClientHasher turns client IPs into salted, truncated hashes so request
// logs can correlate visits without holding addresses. The salt lives only
// in memory, so hashes do not survive a restart.
type ClientHasher struct {
	salt string
}

func NewClientHasher() (*ClientHasher, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, errors.Wrap(err, "generate client salt")
	}
	return &ClientHasher{salt: hex.EncodeToString(b)}, nil
}

func (h *ClientHasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Client returns the hashed client for c, or "" when the request asks not
// to be tracked.
func (h *ClientHasher) Client(c *gin.Context) string {
	if h == nil || c.GetHeader("DNT") == "1" {
		return ""
	}
	return h.Hash(c.ClientIP())
}
