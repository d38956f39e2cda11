package arena

import (
	"memkit/utils"
)

const (
	defaultChunkSize = 1 << 20
	maxChunkSize     = 1 << 30
)

type chunk struct {
	buf    []byte
	used   int
	mapped bool
}

// Arena 链式bump分配器，chunk只追加不搬移，
// 返回的切片在Reset/Free前一直有效
type Arena struct {
	chunks []*chunk
	cur    int // 当前chunk下标
	freed  bool
}

func newChunk(n int) *chunk {
	buf, mapped := allocChunkBuf(n)
	return &chunk{buf: buf, mapped: mapped}
}

// New size为0时默认1MiB，超过单chunk上限会被截断
func New(size int) *Arena {
	if size <= 0 {
		size = defaultChunkSize
	} else if size > maxChunkSize {
		size = maxChunkSize
	}
	return &Arena{
		chunks: []*chunk{newChunk(size)},
		cur:    0,
	}
}

// Alloc 对齐后从当前chunk切size字节。放不下时先尝试后续已有chunk，
// 都放不下再追加一个max(2*当前容量, size+align)的新chunk，
// 新chunk从offset 0开始，天然对齐
func (a *Arena) Alloc(size, align int) []byte {
	if a == nil || a.freed {
		return nil
	}
	utils.CondPanic(align <= 0 || align&(align-1) != 0, utils.ErrBadAlign)
	if size <= 0 || size > maxChunkSize {
		return nil
	}

	for {
		c := a.chunks[a.cur]
		aligned := (c.used + align - 1) &^ (align - 1)
		if aligned+size <= len(c.buf) {
			c.used = aligned + size
			return c.buf[aligned : aligned+size : aligned+size]
		}
		if a.cur+1 < len(a.chunks) {
			// Reset后链上还有旧chunk，先用起来
			a.cur++
			continue
		}
		newSize := len(c.buf) * 2
		if newSize < size+align {
			newSize = size + align
		}
		if newSize > maxChunkSize {
			newSize = maxChunkSize
			if size > newSize {
				return nil
			}
		}
		a.chunks = append(a.chunks, newChunk(newSize))
		a.cur++
	}
}

// Reset 所有cursor归零，回到第一个chunk，之前返回的切片全部失效
func (a *Arena) Reset() {
	if a == nil || a.freed {
		return
	}
	for _, c := range a.chunks {
		c.used = 0
	}
	a.cur = 0
}

// Free 释放全部chunk，之后任何Alloc都是缺陷
func (a *Arena) Free() {
	if a == nil || a.freed {
		return
	}
	for _, c := range a.chunks {
		freeChunkBuf(c.buf, c.mapped)
		c.buf = nil
	}
	a.chunks = nil
	a.freed = true
}

// Cap 当前链上全部chunk的总容量
func (a *Arena) Cap() int {
	if a == nil || a.freed {
		return 0
	}
	total := 0
	for _, c := range a.chunks {
		total += len(c.buf)
	}
	return total
}

// Used 已分配的字节数（含对齐空洞）
func (a *Arena) Used() int {
	if a == nil || a.freed {
		return 0
	}
	total := 0
	for _, c := range a.chunks {
		total += c.used
	}
	return total
}

// Chunks chunk个数
func (a *Arena) Chunks() int {
	if a == nil || a.freed {
		return 0
	}
	return len(a.chunks)
}
