// Package intern 基于Arena的hash-consing目录：
// 内容相等的字节串在表生命周期内恒定返回同一个指针。
package intern

import (
	"memkit/arena"
	"memkit/object"
	"memkit/utils"
)

const (
	initialCap = 256
	loadFactor = 75 // percent
)

type entry struct {
	str  *object.String // payload在绑定的arena里
	hash uint32
}

// Table 开放寻址目录，payload写入绑定的arena。
// 目录独立释放，payload随arena消亡
type Table struct {
	arena   *arena.Arena
	entries []entry
	count   int
}

func NewTable(a *arena.Arena) *Table {
	utils.CondPanic(a == nil, utils.ErrNilArena)
	return &Table{
		arena:   a,
		entries: make([]entry, initialCap),
	}
}

// Intern 返回b的规范指针；已存在直接复用，否则拷贝进arena后登记。
// 返回nil仅当arena分配失败
func (t *Table) Intern(b []byte) *object.String {
	if t == nil || t.entries == nil || b == nil {
		return nil
	}

	h := utils.Hash32(b)
	mask := uint32(len(t.entries) - 1)
	idx := h & mask

	// 线性探测找现有项
	for {
		e := &t.entries[idx]
		if e.str == nil {
			break
		}
		if e.hash == h && e.str.Len() == len(b) && e.str.EqBytes(b) {
			return e.str
		}
		idx = (idx + 1) & mask
	}

	// 超过75%先翻倍，槽位要重算
	if (t.count+1)*100 > len(t.entries)*loadFactor {
		t.grow()
		mask = uint32(len(t.entries) - 1)
		idx = h & mask
		for t.entries[idx].str != nil {
			idx = (idx + 1) & mask
		}
	}

	payload := t.arena.Alloc(len(b), 1)
	if payload == nil && len(b) > 0 {
		return nil
	}
	copy(payload, b)
	s := object.WrapBytes(payload)

	t.entries[idx] = entry{str: s, hash: h}
	t.count++
	return s
}

// InternString string入口，列表/表的调用方常用
func (t *Table) InternString(s string) *object.String {
	return t.Intern([]byte(s))
}

// 按旧目录顺序重插，保持相对探测顺序
func (t *Table) grow() {
	old := t.entries
	t.entries = make([]entry, len(old)*2)
	mask := uint32(len(t.entries) - 1)
	for i := range old {
		if old[i].str == nil {
			continue
		}
		idx := old[i].hash & mask
		for t.entries[idx].str != nil {
			idx = (idx + 1) & mask
		}
		t.entries[idx] = old[i]
	}
}

// Count 去重后的登记数
func (t *Table) Count() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Cap 目录槽位数
func (t *Table) Cap() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Free 只丢目录，payload由arena管
func (t *Table) Free() {
	if t == nil {
		return
	}
	t.entries = nil
	t.count = 0
}
