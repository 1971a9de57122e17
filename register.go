package volreg

import "unsafe"

// Scalar is the set of payload types a register can hold. Each of them is
// loaded and stored as a single memory transaction.
type Scalar interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64
}

// noCopy makes go vet's copylocks check report registers copied by value. It
// has zero size and an alignment of one, so it doesn't change the layout.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// RO is a read-only register.
type RO[T Scalar] struct {
	_ noCopy
	r T
}

// Load reads the register.
func (r *RO[T]) Load() T {
	return load(&r.r)
}

// LoadBits reads the register and returns the bits selected by mask.
func (r *RO[T]) LoadBits(mask T) T {
	return load(&r.r) & mask
}

// Addr returns the address of the register.
func (r *RO[T]) Addr() uintptr {
	return uintptr(unsafe.Pointer(&r.r))
}

// RW is a read-write register.
//
// Store and all read-modify-write methods expect the caller to be the only
// writer of the register at that time, i.e. a single goroutine owns the
// register block or access is serialized externally. Load may be called
// concurrently.
type RW[T Scalar] struct {
	_ noCopy
	r T
}

// Load reads the register.
func (r *RW[T]) Load() T {
	return load(&r.r)
}

// LoadBits reads the register and returns the bits selected by mask.
func (r *RW[T]) LoadBits(mask T) T {
	return load(&r.r) & mask
}

// Store writes v to the register.
func (r *RW[T]) Store(v T) {
	store(&r.r, v)
}

// Modify loads the register, passes the value to f and stores the result.
// This is one load and one store, not an atomic operation. f must not access
// registers itself.
func (r *RW[T]) Modify(f func(T) T) {
	store(&r.r, f(load(&r.r)))
}

// SetBits sets the bits selected by mask, using Modify.
func (r *RW[T]) SetBits(mask T) {
	r.Modify(func(v T) T { return v | mask })
}

// ClearBits clears the bits selected by mask, using Modify.
func (r *RW[T]) ClearBits(mask T) {
	r.Modify(func(v T) T { return v &^ mask })
}

// StoreBits replaces the bits selected by mask with the corresponding bits of
// bits, using Modify.
func (r *RW[T]) StoreBits(mask, bits T) {
	r.Modify(func(v T) T { return v&^mask | bits&mask })
}

// Addr returns the address of the register.
func (r *RW[T]) Addr() uintptr {
	return uintptr(unsafe.Pointer(&r.r))
}

// WO is a write-only register.
//
// Since it can't be read there is no read-modify-write hazard, and Store is
// safe to call from several goroutines through the same pointer. The hardware
// sees each store as one transaction; which one lands last is up to the
// caller's scheduling.
type WO[T Scalar] struct {
	_ noCopy
	r T
}

// Store writes v to the register.
func (r *WO[T]) Store(v T) {
	store(&r.r, v)
}

// Addr returns the address of the register.
func (r *WO[T]) Addr() uintptr {
	return uintptr(unsafe.Pointer(&r.r))
}
