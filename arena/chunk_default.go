//go:build !linux

package arena

func allocChunkBuf(n int) ([]byte, bool) {
	return make([]byte, n), false
}

func freeChunkBuf(buf []byte, mapped bool) {
}
