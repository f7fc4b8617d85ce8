package models

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"
)

// RemoteEndpoint describes one remote replication target for one local
// collection. Its hash namespaces every piece of per-endpoint replication
// state, so several remotes can sync the same collection without trampling
// each other's checkpoints.
type RemoteEndpoint struct {
	// URL is the base address of the remote replication endpoint.
	URL string `json:"url"`

	// Collection is the name of the replicated collection on both sides.
	Collection string `json:"collection"`

	// Token is an optional bearer token presented on every request.
	Token string `json:"-"`
}

// NewRemoteEndpoint validates and constructs a RemoteEndpoint.
func NewRemoteEndpoint(url, collection, token string) (RemoteEndpoint, error) {
	if strings.TrimSpace(url) == "" {
		return RemoteEndpoint{}, fmt.Errorf("remote endpoint: %w: url", ErrMissingField)
	}
	if strings.TrimSpace(collection) == "" {
		return RemoteEndpoint{}, fmt.Errorf("remote endpoint: %w: collection", ErrMissingField)
	}

	return RemoteEndpoint{URL: url, Collection: collection, Token: token}, nil
}

// Hash returns the stable endpoint hash used to key checkpoint records.
// The hash depends only on the endpoint identity (URL and collection), never
// on credentials, so rotating a token does not orphan existing checkpoints.
func (e RemoteEndpoint) Hash() string {
	sum := blake3.Sum256([]byte(e.URL + "|" + e.Collection))
	return hex.EncodeToString(sum[:16])
}
