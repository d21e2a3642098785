package resource

import (
	"encoding/hex"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"
)

// ContentHash returns a hex-encoded blake2b-256 digest of the file at path.
// Watcher calls this on every write event before deciding whether to
// actually re-queue a path for reload, so an editor save-without-edit (or a
// touch) doesn't trigger a full reparse of an unchanged geometry or
// heightfield payload.
func ContentHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// CachedByHash reports whether path's current content hash matches
// prevHash ("" if never hashed before), alongside the freshly computed
// hash. Callers record the returned hash and pass it back in as prevHash
// next time; Watcher uses this to skip re-queuing a reload when a write
// event fires but the bytes didn't actually change (editor save-without-
// edit, touch).
func CachedByHash(path, prevHash string) (hash string, unchanged bool, err error) {
	hash, err = ContentHash(path)
	if err != nil {
		return "", false, err
	}
	return hash, prevHash != "" && hash == prevHash, nil
}
