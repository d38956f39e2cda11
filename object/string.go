package object

import (
	"bytes"

	"memkit/utils"
)

// String 引用计数的字节串堆值，table key与intern结果都是它。
// data构造后不可变，hash与fingerprint随构造缓存
type String struct {
	Ref
	data        []byte
	hash        uint32
	fingerprint uint64
}

// 覆盖Ref的提升方法，typed-nil的*String也按no-op处理
func (s *String) header() *Ref {
	if s == nil {
		return nil
	}
	return &s.Ref
}

func build(data []byte) *String {
	s := &String{
		data:        data,
		hash:        utils.Hash32(data),
		fingerprint: utils.Fingerprint64(data),
	}
	s.init()
	return s
}

// NewString 拷贝b构造，refcount为1
func NewString(b []byte) *String {
	return build(append([]byte(nil), b...))
}

// NewStringFrom 同NewString，入参为string
func NewStringFrom(s string) *String {
	return build([]byte(s))
}

// WrapBytes 不拷贝，直接包装b。调用方保证b稳定不再改写，
// intern用它包装arena里的payload
func WrapBytes(b []byte) *String {
	return build(b)
}

func (s *String) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.data
}

func (s *String) String() string {
	if s == nil {
		return ""
	}
	return string(s.data)
}

func (s *String) Len() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

// Hash32 构造时缓存的32位哈希
func (s *String) Hash32() uint32 {
	if s == nil {
		return 0
	}
	return s.hash
}

// Fingerprint 构造时缓存的64位指纹
func (s *String) Fingerprint() uint64 {
	if s == nil {
		return 0
	}
	return s.fingerprint
}

// Eq 长度加逐字节相等
func (s *String) Eq(o *String) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s == o {
		return true
	}
	if s.hash != o.hash || s.fingerprint != o.fingerprint {
		return false
	}
	return bytes.Equal(s.data, o.data)
}

// EqBytes 与裸字节串比较
func (s *String) EqBytes(b []byte) bool {
	if s == nil {
		return false
	}
	return bytes.Equal(s.data, b)
}
