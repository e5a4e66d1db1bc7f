package utils

import (
	"fmt"
	"reflect"
)

var ErrNilParam = fmt.Errorf("cast error: got nil param")

// SafeCast is a type assertion that reports what it got instead of
// panicking.
func SafeCast[T any](param any) (T, error) {
	var zero T

	if param == nil {
		return zero, ErrNilParam
	}

	v, ok := param.(T)
	if !ok {
		return v, fmt.Errorf("cast error: got type: %s, want type: %s", reflect.TypeOf(param).String(), reflect.TypeOf(zero).String())
	}

	return v, nil
}
