// Package list 自增长同构序列，容量翻倍，严格保持插入顺序。
package list

import (
	"memkit/utils"
)

const minCap = 4

// List 扩容时整体搬移存储，元素按值拷入
type List[T any] struct {
	elems  []T
	length int
}

// New 容量下限为4
func New[T any](capacity int) *List[T] {
	if capacity < minCap {
		capacity = minCap
	}
	return &List[T]{
		elems: make([]T, capacity),
	}
}

// Push 满了翻倍搬移再写入
func (l *List[T]) Push(elem T) {
	utils.CondPanic(l == nil, utils.ErrNilList)
	if l.length >= len(l.elems) {
		grown := make([]T, len(l.elems)*2)
		copy(grown, l.elems)
		l.elems = grown
	}
	l.elems[l.length] = elem
	l.length++
}

// Get 越界是调用方缺陷，直接终止
func (l *List[T]) Get(i int) T {
	utils.AssertTruef(l != nil && i >= 0 && i < l.length,
		"list index %d out of bounds", i)
	return l.elems[i]
}

// Len nil时为0
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Cap 当前容量
func (l *List[T]) Cap() int {
	if l == nil {
		return 0
	}
	return len(l.elems)
}
