package value

import (
	"github.com/wippyai/wasm-values/registry"
)

// ResolveFunc returns the function instance a funcref value denotes. It
// fails on a wrong tag, on the null reference, and on a handle whose
// generation no longer matches its table slot (the referent was dropped).
func ResolveFunc(tbl *registry.FuncTable, v Value) (*registry.FuncInstance, error) {
	r, err := v.FuncRef()
	if err != nil {
		return nil, err
	}
	h, err := r.Func()
	if err != nil {
		return nil, err
	}
	return tbl.Resolve(h)
}

// ResolveExtern returns the host object an externref value denotes, asserted
// to type T. The registry stores host objects untyped; supplying the wrong T
// is the caller's error and is reported, not trusted.
func ResolveExtern[T any](tbl *registry.ExternTable, v Value) (T, error) {
	var zero T
	r, err := v.ExternRef()
	if err != nil {
		return zero, err
	}
	h, err := r.Extern()
	if err != nil {
		return zero, err
	}
	return registry.Extern[T](tbl, h)
}
