// memkit 语言运行时的内存与核心集合层：
// 引用计数对象模型、bump arena、字符串intern、动态list和开放寻址table。
// 全部单线程语义，并发调用需要外部互斥。
package memkit

import (
	"memkit/arena"
	"memkit/intern"
	"memkit/object"
)

// Runtime 显式上下文对象，持有一个arena和绑定它的intern表。
// 一个进程可以开多个互相隔离的Runtime（测试里尤其有用）
type Runtime struct {
	arena  *arena.Arena
	intern *intern.Table
}

// New 默认arena尺寸（1MiB首chunk）
func New() *Runtime {
	return NewWithSize(0)
}

func NewWithSize(size int) *Runtime {
	a := arena.New(size)
	return &Runtime{
		arena:  a,
		intern: intern.NewTable(a),
	}
}

// Arena 暴露给需要批量/临时存储的调用方
func (r *Runtime) Arena() *arena.Arena {
	if r == nil {
		return nil
	}
	return r.arena
}

// Intern 规范化b，内容相等恒返回同一指针
func (r *Runtime) Intern(b []byte) *object.String {
	if r == nil {
		return nil
	}
	return r.intern.Intern(b)
}

func (r *Runtime) InternString(s string) *object.String {
	if r == nil {
		return nil
	}
	return r.intern.InternString(s)
}

// Reset 清空intern目录并rewind arena，之前intern的指针全部作废。
// 隔离的批处理之间复用内存
func (r *Runtime) Reset() {
	if r == nil {
		return
	}
	r.intern.Free()
	r.arena.Reset()
	r.intern = intern.NewTable(r.arena)
}

// Close 对应原先的进程退出清理：丢目录，释放arena
func (r *Runtime) Close() {
	if r == nil {
		return
	}
	r.intern.Free()
	r.arena.Free()
	r.intern = nil
	r.arena = nil
}
