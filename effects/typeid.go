package effects

// TypeID marks values built by a constructor of this module. Wrappers store
// their TypeID at construction and expose it through a TypeID() method, so
// a value can be discriminated without comparing concrete types.
type TypeID string

// TypeIDOf returns the TypeID a value carries, or "" if it carries none.
// Zero-value wrappers carry none.
func TypeIDOf(u any) TypeID {
	if t, ok := u.(interface{ TypeID() TypeID }); ok {
		return t.TypeID()
	}
	return ""
}

// HasTypeID reports whether u carries id. It never panics.
func HasTypeID(u any, id TypeID) bool {
	return id != "" && TypeIDOf(u) == id
}

// YieldWrap is the one-layer carrier some generator bodies put around a step.
// Drivers strip it before looking at the step.
type YieldWrap[A any] struct {
	value A
}

func NewYieldWrap[A any](value A) YieldWrap[A] {
	return YieldWrap[A]{value: value}
}

func (w YieldWrap[A]) Unwrap() A {
	return w.value
}

func (w YieldWrap[A]) unwrapYield() any {
	return w.value
}

// YieldWrapGet strips one carrier layer. It reports false if u is not a carrier.
func YieldWrapGet(u any) (any, bool) {
	if w, ok := u.(interface{ unwrapYield() any }); ok {
		return w.unwrapYield(), true
	}
	return nil, false
}
