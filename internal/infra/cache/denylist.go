package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// DenyList remembers revoked access tokens. Its store must never drop an
// entry before the entry's TTL, so it is not shared with the search memo.
type DenyList struct {
	store Cache
}

func NewDenyList(store Cache) *DenyList {
	return &DenyList{store: store}
}

func (d *DenyList) Add(ctx context.Context, token string, ttl time.Duration) error {
	return d.store.Set(ctx, denyKey(token), []byte{1}, ttl)
}

func (d *DenyList) Contains(ctx context.Context, token string) (bool, error) {
	_, found, err := d.store.Get(ctx, denyKey(token))
	return found, err
}

// denyKey hashes the token so raw credentials never reach the store.
func denyKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "revoked:" + hex.EncodeToString(sum[:])
}
