package intern

import (
	"fmt"
	"testing"

	"memkit/arena"
	"memkit/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternPointerIdentity(t *testing.T) {
	a := arena.New(0)
	defer a.Free()
	tbl := NewTable(a)
	defer tbl.Free()

	s1 := tbl.Intern([]byte("canonical"))
	s2 := tbl.Intern([]byte("canonical"))
	s3 := tbl.InternString("canonical")
	require.NotNil(t, s1)
	// 内容相等，指针恒等
	assert.True(t, s1 == s2)
	assert.True(t, s1 == s3)

	other := tbl.Intern([]byte("different"))
	assert.False(t, s1 == other)
}

func TestInternCopyOfInput(t *testing.T) {
	a := arena.New(0)
	defer a.Free()
	tbl := NewTable(a)

	src := []byte("payload")
	s := tbl.Intern(src)
	src[0] = 'X'
	// payload进了arena，和入参脱钩
	assert.Equal(t, "payload", s.String())
	assert.True(t, s == tbl.Intern([]byte("payload")))
}

func TestInternDistinctCount(t *testing.T) {
	a := arena.New(0)
	defer a.Free()
	tbl := NewTable(a)

	// 1万条带约30%重复，目录占用等于去重数
	const total = 10000
	distinct := make(map[string]struct{})
	for i := 0; i < total; i++ {
		k := i
		if i%10 >= 7 {
			k = i % 700 // 制造重复
		}
		key := []byte(fmt.Sprintf("key-%06d", k))
		distinct[string(key)] = struct{}{}
		require.NotNil(t, tbl.Intern(key))
	}
	assert.Equal(t, len(distinct), tbl.Count())
}

func TestInternGrowKeepsIdentity(t *testing.T) {
	a := arena.New(0)
	defer a.Free()
	tbl := NewTable(a)

	// 越过75%负载触发翻倍，旧指针不变
	pinned := make(map[string]interface{})
	for i := 0; i < 2000; i++ {
		key := []byte(fmt.Sprintf("grow-%05d", i))
		pinned[string(key)] = tbl.Intern(key)
	}
	assert.Greater(t, tbl.Cap(), 256)
	for k, p := range pinned {
		assert.True(t, p == interface{}(tbl.Intern([]byte(k))), "identity lost for %s", k)
	}
}

func TestInternRandomized(t *testing.T) {
	a := arena.New(1 << 12)
	defer a.Free()
	tbl := NewTable(a)

	seen := make(map[string]interface{})
	for i := 0; i < 3000; i++ {
		key := utils.RandBytesChar(3)
		s := tbl.Intern(key)
		require.NotNil(t, s)
		if prev, ok := seen[string(key)]; ok {
			assert.True(t, prev == interface{}(s))
		} else {
			seen[string(key)] = s
		}
	}
	assert.Equal(t, len(seen), tbl.Count())
}

func TestInternEmptyAndNil(t *testing.T) {
	a := arena.New(0)
	defer a.Free()
	tbl := NewTable(a)

	assert.Nil(t, tbl.Intern(nil))
	e1 := tbl.Intern([]byte{})
	e2 := tbl.Intern([]byte{})
	require.NotNil(t, e1)
	assert.True(t, e1 == e2)
	assert.Equal(t, 0, e1.Len())
}

func TestInternFreeKeepsPayload(t *testing.T) {
	a := arena.New(0)
	defer a.Free()
	tbl := NewTable(a)

	s := tbl.Intern([]byte("survivor"))
	tbl.Free()
	// 目录没了，payload还在arena里
	assert.Equal(t, "survivor", s.String())
	assert.Nil(t, tbl.Intern([]byte("survivor")))
	assert.Equal(t, 0, tbl.Count())
}
