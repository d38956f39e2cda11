package arena

import (
	"golang.org/x/sys/unix"
)

// 大chunk走匿名映射，Free时整体归还内核
const mmapThreshold = 1 << 18

func allocChunkBuf(n int) ([]byte, bool) {
	if n < mmapThreshold {
		return make([]byte, n), false
	}
	buf, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		// 映射失败退回堆上
		return make([]byte, n), false
	}
	return buf, true
}

func freeChunkBuf(buf []byte, mapped bool) {
	if !mapped {
		return
	}
	_ = unix.Munmap(buf)
}
