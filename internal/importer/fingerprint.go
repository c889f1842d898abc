package importer

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// Fingerprint calculates the SHA256 hash of a raw CSV record and returns its string representation.
//
// The fields are joined with a comma before hashing, independent of the delimiter
// of the source file, so the same row in a comma and a semicolon separated file
// produces the same fingerprint.
func Fingerprint(record []string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(strings.Join(record, ","))))
}
