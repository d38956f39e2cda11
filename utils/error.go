package utils

import (
	"log"

	"github.com/pkg/errors"
)

var (
	ErrNilArena = errors.New("arena is nil")
	ErrNilList  = errors.New("list is nil")
	ErrBadAlign = errors.New("alignment must be a power of two")
)

// err非空panic
func Panic(err error) {
	if err != nil {
		panic(err)
	}
}

// condition true中断err
func CondPanic(condition bool, err error) {
	if condition {
		Panic(err)
	}
}

// false终止进程，表示调用方缺陷，不可恢复
func AssertTrue(b bool) {
	if !b {
		log.Fatalf("%+v", errors.Errorf("Assert failed"))
	}
}

func AssertTruef(b bool, format string, args ...interface{}) {
	if !b {
		log.Fatalf("%+v", errors.Errorf(format, args...))
	}
}
