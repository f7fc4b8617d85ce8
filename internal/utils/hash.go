package utils

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/zeebo/blake3"
)

// revisionHashLen is the number of hex characters kept from the blake3 sum
// when building a revision identifier. 16 bytes is plenty to make collisions
// between two bodies of the same document practically impossible.
const revisionHashLen = 32

// RevisionHash builds a revision identifier in "<generation>-<hash>" form.
// The hash part is a truncated blake3 digest of the document body, so the
// same body at the same generation always produces the same revision,
// regardless of which replica wrote it.
func RevisionHash(generation int64, body []byte) string {
	sum := blake3.Sum256(body)
	return strconv.FormatInt(generation, 10) + "-" + hex.EncodeToString(sum[:])[:revisionHashLen]
}

// RevisionGeneration extracts the numeric generation prefix from a revision
// identifier produced by RevisionHash.
//
// Returns an error when the revision does not have a "<generation>-<hash>"
// shape or the generation is not a positive integer.
func RevisionGeneration(revision string) (int64, error) {
	idx := strings.IndexByte(revision, '-')
	if idx <= 0 {
		return 0, fmt.Errorf("malformed revision %q: missing generation prefix", revision)
	}

	gen, err := strconv.ParseInt(revision[:idx], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed revision %q: %w", revision, err)
	}
	if gen <= 0 {
		return 0, fmt.Errorf("malformed revision %q: generation must be positive", revision)
	}

	return gen, nil
}

// NextRevision computes the revision a document body receives when written
// on top of an existing revision. An empty current revision starts the
// history at generation 1.
func NextRevision(current string, body []byte) (string, error) {
	if current == "" {
		return RevisionHash(1, body), nil
	}

	gen, err := RevisionGeneration(current)
	if err != nil {
		return "", err
	}

	return RevisionHash(gen+1, body), nil
}
