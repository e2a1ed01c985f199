package seq

import (
	"fmt"
	"reflect"
)

// checkHashable returns ErrUnhashableKey when k would panic as a map key.
func checkHashable(k any) error {
	if k == nil {
		return nil
	}
	if !reflect.ValueOf(k).Comparable() {
		return fmt.Errorf("%w: %T", ErrUnhashableKey, k)
	}
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func isZero(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}
