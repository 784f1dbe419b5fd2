package registry

import "github.com/wippyai/wasm-values/types"

// Handle is an opaque reference to a referent in a table.
// It packs a slot index in the low 32 bits and a generation counter in the
// high 32 bits. Generations start at 1, so handle 0 is reserved: it is the
// null sentinel shared by all reference kinds.
type Handle uint64

// NullHandle is the reserved null sentinel.
const NullHandle Handle = 0

func makeHandle(index, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(index))
}

// Index returns the slot index encoded in the handle.
func (h Handle) Index() uint32 {
	return uint32(h)
}

// Generation returns the generation counter encoded in the handle.
func (h Handle) Generation() uint32 {
	return uint32(h >> 32)
}

// IsNull reports whether the handle is the null sentinel.
func (h Handle) IsNull() bool {
	return h == NullHandle
}

// FuncInstance describes a function instance owned by a module instance.
// The table entry, not the reference value, bounds its lifetime.
type FuncInstance struct {
	Type     *types.FuncType
	Name     string
	Module   string
	TypeIdx  uint32
	FuncIdx  uint32
	Imported bool
}

// Event types for referent lifecycle notifications.
type EventType uint8

const (
	EventInserted EventType = iota
	EventDropped
)

// Event represents a referent lifecycle event.
type Event struct {
	Value  any
	Handle Handle
	Type   EventType
}

// Observer receives notifications about referent lifecycle events.
type Observer interface {
	OnRegistryEvent(Event)
}
