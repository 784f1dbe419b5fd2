package registry

import (
	stderrors "errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-values/errors"
)

var (
	// ErrClosed is returned for operations on a closed table.
	ErrClosed = stderrors.New("registry table closed")

	// ErrStaleReference is returned when a handle's generation no longer
	// matches its slot: the referent was dropped, and possibly replaced,
	// after the handle was issued.
	ErrStaleReference = stderrors.New("stale reference")

	// ErrNullHandle is returned when resolving the null sentinel.
	ErrNullHandle = stderrors.New("null handle")
)

type entry[T any] struct {
	value T
	gen   uint32
	valid bool
}

// Table is a generation-checked referent table. The zero Table is not usable;
// construct with NewTable.
type Table[T any] struct {
	entries   []entry[T]
	freeList  []uint32
	observers []Observer
	log       *zap.Logger
	mu        sync.RWMutex
	obsMu     sync.RWMutex
	closed    bool
}

// NewTable creates an empty table. The logger may be nil; a no-op logger is
// used then.
func NewTable[T any](log *zap.Logger) *Table[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Table[T]{
		entries:  make([]entry[T], 0, 64),
		freeList: make([]uint32, 0, 16),
		log:      log,
	}
}

// FuncTable holds function instances referenced by funcref values.
type FuncTable = Table[*FuncInstance]

// NewFuncTable creates an empty function-instance table.
func NewFuncTable() *FuncTable {
	return NewTable[*FuncInstance](nil)
}

// ExternTable holds opaque host objects referenced by externref values.
type ExternTable = Table[any]

// NewExternTable creates an empty host-object table.
func NewExternTable() *ExternTable {
	return NewTable[any](nil)
}

// Insert stores a referent and returns its handle.
func (t *Table[T]) Insert(value T) (Handle, error) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return NullHandle, ErrClosed
	}

	var h Handle
	if len(t.freeList) > 0 {
		idx := t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		e := &t.entries[idx]
		e.value = value
		e.valid = true
		h = makeHandle(idx, e.gen)
	} else {
		idx := uint32(len(t.entries))
		t.entries = append(t.entries, entry[T]{value: value, gen: 1, valid: true})
		h = makeHandle(idx, 1)
	}
	t.mu.Unlock()

	t.log.Debug("referent inserted",
		zap.Uint32("index", h.Index()),
		zap.Uint32("generation", h.Generation()))
	t.notify(Event{Type: EventInserted, Handle: h, Value: value})
	return h, nil
}

// Resolve returns the referent for a handle. A dropped or reused slot fails
// with ErrStaleReference; the null sentinel fails with ErrNullHandle.
func (t *Table[T]) Resolve(h Handle) (T, error) {
	var zero T
	if h.IsNull() {
		return zero, ErrNullHandle
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := h.Index()
	if int(idx) >= len(t.entries) {
		return zero, ErrStaleReference
	}
	e := &t.entries[idx]
	if !e.valid || e.gen != h.Generation() {
		return zero, ErrStaleReference
	}
	return e.value, nil
}

// Alive reports whether the handle still resolves.
func (t *Table[T]) Alive(h Handle) bool {
	_, err := t.Resolve(h)
	return err == nil
}

// Drop removes a referent. The slot's generation is bumped so outstanding
// handles become stale. Returns the dropped value.
func (t *Table[T]) Drop(h Handle) (T, error) {
	var zero T
	if h.IsNull() {
		return zero, ErrNullHandle
	}

	t.mu.Lock()
	idx := h.Index()
	if int(idx) >= len(t.entries) {
		t.mu.Unlock()
		return zero, ErrStaleReference
	}
	e := &t.entries[idx]
	if !e.valid || e.gen != h.Generation() {
		t.mu.Unlock()
		return zero, ErrStaleReference
	}

	value := e.value
	e.value = zero
	e.valid = false
	e.gen++
	t.freeList = append(t.freeList, idx)
	t.mu.Unlock()

	t.log.Debug("referent dropped",
		zap.Uint32("index", idx),
		zap.Uint32("generation", h.Generation()))
	t.notify(Event{Type: EventDropped, Handle: h, Value: value})
	return value, nil
}

// Len returns the number of live referents.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for i := range t.entries {
		if t.entries[i].valid {
			count++
		}
	}
	return count
}

// Each iterates over all live referents.
func (t *Table[T]) Each(fn func(Handle, T) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i := range t.entries {
		e := &t.entries[i]
		if e.valid {
			if !fn(makeHandle(uint32(i), e.gen), e.value) {
				break
			}
		}
	}
}

// Clear drops all referents.
func (t *Table[T]) Clear() {
	var handles []Handle
	t.Each(func(h Handle, _ T) bool {
		handles = append(handles, h)
		return true
	})
	for _, h := range handles {
		t.Drop(h) //nolint:errcheck // handles were just enumerated
	}
}

// Close invalidates all referents and stops accepting operations.
func (t *Table[T]) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true

	var zero T
	for i := range t.entries {
		if t.entries[i].valid {
			t.entries[i].valid = false
			t.entries[i].value = zero
			t.entries[i].gen++
		}
	}
	t.entries = nil
	t.freeList = nil
	return nil
}

// Subscribe adds an observer for lifecycle events.
func (t *Table[T]) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table[T]) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

func (t *Table[T]) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnRegistryEvent(e)
	}
}

// Extern retrieves a host object as type T. The table never type-checks what
// the host stored; the caller asserts the expected type and a wrong T is
// reported as a tag mismatch.
func Extern[T any](t *ExternTable, h Handle) (T, error) {
	var zero T
	v, err := t.Resolve(h)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, errors.New(errors.PhaseRegistry, errors.KindTagMismatch).
			Got(fmt.Sprintf("%T", v)).
			Detail("host object does not have the requested type").
			Build()
	}
	return typed, nil
}
