// Package object 为堆值提供引用计数头，alloc/retain/release三件套。
// 非原子计数，单线程或外部加锁。
package object

import (
	"memkit/utils"
)

// Ref 嵌入到每个堆值头部的引用计数，构造时置1
type Ref struct {
	count int32
}

func (r *Ref) init() {
	r.count = 1
}

// Refs 当前存活引用数
func (r *Ref) Refs() int32 {
	if r == nil {
		return 0
	}
	return r.count
}

// Dead 计数归零后为true，此后不应再访问该值
func (r *Ref) Dead() bool {
	return r == nil || r.count <= 0
}

// Object 所有引用计数堆值实现的接口
type Object interface {
	header() *Ref
}

// Block 无类型的引用计数字节块
type Block struct {
	Ref
	Data []byte
}

func (b *Block) header() *Ref {
	if b == nil {
		return nil
	}
	return &b.Ref
}

// Alloc 零初始化的size字节块，refcount为1。
// Go里系统分配失败由runtime终止进程，不存在半成品对象图
func Alloc(size int) *Block {
	utils.AssertTruef(size >= 0, "Alloc: negative size %d", size)
	b := &Block{Data: make([]byte, size)}
	b.init()
	return b
}

func (r *Ref) header() *Ref {
	return r
}

// Retain 计数加一，nil为no-op
func Retain(o Object) {
	if o == nil {
		return
	}
	h := o.header()
	if h == nil || h.count <= 0 {
		return
	}
	h.count++
}

// Release 计数减一，归零即死，由GC回收字节。nil为no-op
func Release(o Object) {
	if o == nil {
		return
	}
	h := o.header()
	if h == nil || h.count <= 0 {
		return
	}
	h.count--
}
