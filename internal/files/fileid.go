package files

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// newFileID generates a public file identifier: a base-36 millisecond
// timestamp joined with 6 bytes of cryptographically random data encoded
// base-36. Keys stay roughly sortable by upload time while being hard
// enough to guess to prevent casual enumeration.
func newFileID(now time.Time) (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate file id: %w", err)
	}
	ts := strconv.FormatInt(now.UnixMilli(), 36)
	return ts + "-" + new(big.Int).SetBytes(buf).Text(36), nil
}

// validFileID rejects identifiers that could escape the flat key namespace.
// File IDs never contain dots (the extension is not part of the public ID)
// or path separators.
func validFileID(id string) bool {
	return id != "" && !strings.ContainsAny(id, "./\\")
}
