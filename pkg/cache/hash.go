package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// graphKeyVersion changes whenever the serialized graph format changes, so
// stale cache entries from older builds are never decoded.
const graphKeyVersion = 1

// GraphKey builds the cache key for a parsed graph from the content hash of
// its source XML file.
func GraphKey(sourceHash string) string {
	return fmt.Sprintf("graph:v%d:%s", graphKeyVersion, sourceHash)
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// HashFile computes the SHA-256 hash of a file's contents without reading
// it fully into memory. Title XML files run to hundreds of megabytes.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
