package option

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

const (
	markNil byte = iota + 1
	markCycle
	markFunc
)

// hashValue hashes v so that values equalValues reports equal hash alike.
//
// A value with its own Equal is hashed by its Hash when it has one, and by A
// alone otherwise. Everything else is walked structurally the way
// reflect.DeepEqual compares: through pointers and interfaces, with map
// entries combined in any order and negative zero folded into zero.
func hashValue[A any](a A) uint64 {
	v := any(a)
	if _, ok := v.(interface{ Equal(any) bool }); ok {
		if h, ok := v.(interface{ Hash() uint64 }); ok {
			return h.Hash()
		}
		return xxhash.Sum64String(reflect.TypeFor[A]().String())
	}
	h := newHasher(map[visit]struct{}{})
	rv := reflect.ValueOf(v)
	if rv.IsValid() {
		_, _ = h.d.WriteString(rv.Type().String())
	}
	h.value(rv)
	return h.d.Sum64()
}

// visit identifies a reference on the path being walked.
type visit struct {
	ptr uintptr
	typ reflect.Type
}

type hasher struct {
	d    *xxhash.Digest
	path map[visit]struct{}
	buf  [8]byte
}

func newHasher(path map[visit]struct{}) *hasher {
	return &hasher{d: xxhash.New(), path: path}
}

func (h *hasher) mark(b byte) {
	h.buf[0] = b
	_, _ = h.d.Write(h.buf[:1])
}

func (h *hasher) uint(u uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], u)
	_, _ = h.d.Write(h.buf[:])
}

func (h *hasher) float(f float64) {
	if f == 0 {
		f = 0
	}
	h.uint(math.Float64bits(f))
}

// enter reports whether v is already on the path, writing a cycle mark if so.
// Otherwise it puts v on the path until leave.
func (h *hasher) enter(v reflect.Value) (visit, bool) {
	key := visit{ptr: v.Pointer(), typ: v.Type()}
	if _, ok := h.path[key]; ok {
		h.mark(markCycle)
		return key, true
	}
	h.path[key] = struct{}{}
	return key, false
}

func (h *hasher) leave(key visit) {
	delete(h.path, key)
}

func (h *hasher) value(v reflect.Value) {
	if !v.IsValid() {
		h.mark(markNil)
		return
	}
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			h.uint(1)
		} else {
			h.uint(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		h.uint(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		h.uint(v.Uint())
	case reflect.Float32, reflect.Float64:
		h.float(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		h.float(real(c))
		h.float(imag(c))
	case reflect.String:
		h.uint(uint64(v.Len()))
		_, _ = h.d.WriteString(v.String())
	case reflect.Array:
		for i := range v.Len() {
			h.value(v.Index(i))
		}
	case reflect.Struct:
		for i := range v.NumField() {
			h.value(v.Field(i))
		}
	case reflect.Slice:
		if v.IsNil() {
			h.mark(markNil)
			return
		}
		key, cycle := h.enter(v)
		if cycle {
			return
		}
		defer h.leave(key)
		h.uint(uint64(v.Len()))
		for i := range v.Len() {
			h.value(v.Index(i))
		}
	case reflect.Pointer:
		if v.IsNil() {
			h.mark(markNil)
			return
		}
		key, cycle := h.enter(v)
		if cycle {
			return
		}
		defer h.leave(key)
		h.value(v.Elem())
	case reflect.Interface:
		if v.IsNil() {
			h.mark(markNil)
			return
		}
		elem := v.Elem()
		_, _ = h.d.WriteString(elem.Type().String())
		h.value(elem)
	case reflect.Map:
		if v.IsNil() {
			h.mark(markNil)
			return
		}
		key, cycle := h.enter(v)
		if cycle {
			return
		}
		defer h.leave(key)
		h.uint(uint64(v.Len()))
		var sum uint64
		entries := v.MapRange()
		for entries.Next() {
			entry := newHasher(h.path)
			entry.value(entries.Key())
			entry.value(entries.Value())
			sum += entry.d.Sum64()
		}
		h.uint(sum)
	case reflect.Func:
		// only nil funcs are deeply equal
		if v.IsNil() {
			h.mark(markNil)
		} else {
			h.mark(markFunc)
		}
	case reflect.Chan, reflect.UnsafePointer:
		h.uint(uint64(v.Pointer()))
	}
}
