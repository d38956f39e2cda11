// Package table 开放寻址哈希表：String key到调用方自管value的映射。
// 线性探测，70%负载翻倍，删除做backward-shift重插，不留tombstone。
package table

import (
	"memkit/list"
	"memkit/object"
	"memkit/utils"
)

const (
	initialCap = 16
	loadFactor = 70 // percent
	minEnumCap = 4  // nil表枚举结果的容量下限
)

type entry struct {
	key         *object.String
	hash        uint32
	fingerprint uint64
	value       interface{}
}

// Table key被表retain共享持有，value的生命周期归调用方
type Table struct {
	entries []entry
	count   int
}

func New() *Table {
	return &Table{
		entries: make([]entry, initialCap),
	}
}

// 探测到key所在槽或第一个空槽。容量恒为2的幂，
// 负载因子保证表永远有空槽，探测必然终止
func findSlot(entries []entry, key *object.String, hash uint32, fp uint64) int {
	mask := uint32(len(entries) - 1)
	idx := hash & mask
	for {
		e := &entries[idx]
		if e.key == nil {
			return int(idx)
		}
		// 哈希相同还要指纹加全量比较，不同key绝不混淆
		if e.hash == hash && e.fingerprint == fp && e.key.Eq(key) {
			return int(idx)
		}
		idx = (idx + 1) & mask
	}
}

// 翻倍后每个槽按新容量重算重插
func (t *Table) resize() {
	grown := make([]entry, len(t.entries)*2)
	for i := range t.entries {
		e := &t.entries[i]
		if e.key == nil {
			continue
		}
		slot := findSlot(grown, e.key, e.hash, e.fingerprint)
		grown[slot] = *e
	}
	t.entries = grown
}

// Add 命中只换value，key的引用不动；新增先按需扩容再retain key入表。
// nil表或nil key是调用方缺陷
func (t *Table) Add(key *object.String, value interface{}) *Table {
	utils.AssertTruef(t != nil, "Table.Add: nil table")
	utils.AssertTruef(key != nil, "Table.Add: nil key")

	if (t.count+1)*100 > len(t.entries)*loadFactor {
		t.resize()
	}

	slot := findSlot(t.entries, key, key.Hash32(), key.Fingerprint())
	e := &t.entries[slot]
	if e.key != nil {
		e.value = value
		return t
	}

	object.Retain(key)
	t.entries[slot] = entry{
		key:         key,
		hash:        key.Hash32(),
		fingerprint: key.Fingerprint(),
		value:       value,
	}
	t.count++
	return t
}

// Has nil表、nil key、空表都按不存在处理
func (t *Table) Has(key *object.String) bool {
	if t == nil || key == nil || t.count == 0 {
		return false
	}
	slot := findSlot(t.entries, key, key.Hash32(), key.Fingerprint())
	return t.entries[slot].key != nil
}

// Get 显式的(value, ok)，缺席不是错误
func (t *Table) Get(key *object.String) (interface{}, bool) {
	if t == nil || key == nil || t.count == 0 {
		return nil, false
	}
	slot := findSlot(t.entries, key, key.Hash32(), key.Fingerprint())
	e := &t.entries[slot]
	if e.key == nil {
		return nil, false
	}
	return e.value, true
}

// Remove 缺席no-op；命中release表对key的引用并清槽，
// 随后把紧跟的连续占用段逐个摘下按当前容量重插。
// 线性探测下后面的项可能依赖被删槽位，不重插会查不到
func (t *Table) Remove(key *object.String) *Table {
	utils.AssertTruef(t != nil, "Table.Remove: nil table")
	utils.AssertTruef(key != nil, "Table.Remove: nil key")
	if t.count == 0 {
		return t
	}

	slot := findSlot(t.entries, key, key.Hash32(), key.Fingerprint())
	if t.entries[slot].key == nil {
		return t
	}

	object.Release(t.entries[slot].key)
	t.entries[slot] = entry{}
	t.count--

	mask := uint32(len(t.entries) - 1)
	idx := (uint32(slot) + 1) & mask
	for t.entries[idx].key != nil {
		displaced := t.entries[idx]
		t.entries[idx] = entry{}
		t.count--

		next := findSlot(t.entries, displaced.key, displaced.hash, displaced.fingerprint)
		t.entries[next] = displaced
		t.count++

		idx = (idx + 1) & mask
	}
	return t
}

// Keys 按物理槽位顺序（不是插入顺序）枚举
func (t *Table) Keys() *list.List[*object.String] {
	capacity := minCapFor(t)
	keys := list.New[*object.String](capacity)
	if t == nil {
		return keys
	}
	for i := range t.entries {
		if t.entries[i].key != nil {
			keys.Push(t.entries[i].key)
		}
	}
	return keys
}

// Values 同Keys，槽位顺序
func (t *Table) Values() *list.List[interface{}] {
	capacity := minCapFor(t)
	values := list.New[interface{}](capacity)
	if t == nil {
		return values
	}
	for i := range t.entries {
		if t.entries[i].key != nil {
			values.Push(t.entries[i].value)
		}
	}
	return values
}

func minCapFor(t *Table) int {
	if t == nil {
		return minEnumCap
	}
	return t.count + 1
}

// Length nil或空表为0
func (t *Table) Length() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Cap 当前槽位数
func (t *Table) Cap() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
