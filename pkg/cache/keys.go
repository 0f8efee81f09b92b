package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// LayoutKey generates a cache key for a layout computed over root with
// the given options. Any JSON-encodable options value works; two runs
// with identical root and options collide on purpose.
func LayoutKey(root string, opts any) string {
	data, _ := json.Marshal([]any{root, opts})
	sum := sha256.Sum256(data)
	return fmt.Sprintf("layout:%s", hex.EncodeToString(sum[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
