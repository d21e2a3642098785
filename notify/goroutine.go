package notify

import (
	"bytes"
	"runtime"
	"strconv"
)

// goroutineID extracts the calling goroutine's numeric id from its stack
// trace header ("goroutine 123 [running]:"). This is the well-known,
// if informal, way to get a goroutine identity in Go without adding a
// per-goroutine context value everywhere; used only to let
// recursiveMutex recognize re-entry from the same goroutine.
func goroutineID() int64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	buf = buf[:n]
	buf = bytes.TrimPrefix(buf, []byte("goroutine "))
	if i := bytes.IndexByte(buf, ' '); i >= 0 {
		buf = buf[:i]
	}
	id, err := strconv.ParseInt(string(buf), 10, 64)
	if err != nil {
		return -1
	}
	return id
}
