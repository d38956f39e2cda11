package utils

import (
	"github.com/cespare/xxhash/v2"
)

// FNV-1a参数
const (
	fnvOffset32 = 0x811C9DC5
	fnvPrime32  = 0x01000193
)

// intern和table共用的32位哈希，插入和查找必须走同一个函数
func Hash32(data []byte) uint32 {
	h := uint32(fnvOffset32)
	for _, b := range data {
		h ^= uint32(b)
		h *= fnvPrime32
	}
	return h
}

// 64位指纹，先于逐字节比较做冲突判断
func Fingerprint64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
