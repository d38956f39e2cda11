package object

import (
	"testing"

	"memkit/utils"

	"github.com/stretchr/testify/assert"
)

func TestAllocZeroedBlock(t *testing.T) {
	b := Alloc(64)
	assert.Equal(t, int32(1), b.Refs())
	assert.Equal(t, 64, len(b.Data))
	for _, v := range b.Data {
		assert.Zero(t, v)
	}
	Retain(b)
	Release(b)
	Release(b)
	assert.True(t, b.Dead())
}

func TestRefcountStartsAtOne(t *testing.T) {
	s := NewString([]byte("hello"))
	assert.Equal(t, int32(1), s.Refs())
	assert.False(t, s.Dead())
}

func TestRetainReleaseBalanced(t *testing.T) {
	s := NewStringFrom("obj")
	n := 7
	for i := 0; i < n; i++ {
		Retain(s)
	}
	assert.Equal(t, int32(n+1), s.Refs())
	for i := 0; i < n; i++ {
		Release(s)
	}
	// n个retain加n个release后仍存活
	assert.Equal(t, int32(1), s.Refs())
	assert.False(t, s.Dead())

	// 恰好retains+1次release后死亡
	Release(s)
	assert.True(t, s.Dead())
	assert.Equal(t, int32(0), s.Refs())
}

func TestReleasePastZero(t *testing.T) {
	s := NewStringFrom("x")
	Release(s)
	Release(s) // 死后再release是no-op
	assert.Equal(t, int32(0), s.Refs())
}

func TestRetainReleaseNil(t *testing.T) {
	Retain(nil)
	Release(nil)
	var s *String
	Retain(s)
	Release(s)
	assert.Nil(t, s.Bytes())
}

func TestStringEq(t *testing.T) {
	a := NewString(utils.RandBytesChar(12))
	b := NewString(a.Bytes())
	c := NewString(utils.RandBytesInt(12))

	assert.True(t, a.Eq(b))
	assert.True(t, a.Eq(a))
	assert.False(t, a.Eq(c))
	assert.True(t, a.EqBytes(b.Bytes()))
	assert.Equal(t, a.Hash32(), b.Hash32())
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestStringCopies(t *testing.T) {
	src := []byte("mutable")
	s := NewString(src)
	src[0] = 'X'
	assert.Equal(t, "mutable", s.String())
}
