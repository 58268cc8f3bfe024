package secrets

import "runtime"

// Wipe overwrites b with zero bytes. The KeepAlive call keeps the
// compiler from eliminating the writes as dead stores.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// Material holds key or plaintext bytes for the duration of one
// operation. Bytes are reachable only through the accessor and are
// zero-overwritten by Destroy, which every owner is expected to defer as
// soon as the material is created.
type Material struct {
	b []byte
}

// NewMaterial wraps b, taking ownership. The caller must not retain or
// mutate b afterwards.
func NewMaterial(b []byte) *Material {
	return &Material{b: b}
}

// Bytes exposes the underlying bytes. The slice is only valid until
// Destroy is called.
func (m *Material) Bytes() []byte {
	return m.b
}

// Len returns the number of bytes held.
func (m *Material) Len() int {
	return len(m.b)
}

// Destroy zero-overwrites the held bytes and releases them. Safe to call
// more than once.
func (m *Material) Destroy() {
	if m == nil || m.b == nil {
		return
	}
	Wipe(m.b)
	m.b = nil
}
