package registry

import (
	"sync"
	"testing"

	"github.com/wippyai/wasm-values/types"
)

func TestInsertResolve(t *testing.T) {
	tbl := NewFuncTable()

	inst := &FuncInstance{
		Type:    &types.FuncType{Params: []types.ValType{types.ValI32}},
		Name:    "add",
		Module:  "math",
		FuncIdx: 7,
	}
	h, err := tbl.Insert(inst)
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if h.IsNull() {
		t.Fatal("Insert() returned the null handle")
	}
	if h.Generation() == 0 {
		t.Error("live handle should never carry generation zero")
	}

	got, err := tbl.Resolve(h)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != inst {
		t.Errorf("Resolve() = %p, want %p", got, inst)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tbl.Len())
	}
}

func TestResolveNull(t *testing.T) {
	tbl := NewFuncTable()
	if _, err := tbl.Resolve(NullHandle); err != ErrNullHandle {
		t.Errorf("Resolve(NullHandle) error = %v, want ErrNullHandle", err)
	}
}

func TestDropMakesHandleStale(t *testing.T) {
	tbl := NewFuncTable()
	h, _ := tbl.Insert(&FuncInstance{Name: "f"})

	if _, err := tbl.Drop(h); err != nil {
		t.Fatalf("Drop() error = %v", err)
	}
	if _, err := tbl.Resolve(h); err != ErrStaleReference {
		t.Errorf("Resolve after drop error = %v, want ErrStaleReference", err)
	}
	if tbl.Alive(h) {
		t.Error("Alive() should be false after drop")
	}
	// Double drop is stale too.
	if _, err := tbl.Drop(h); err != ErrStaleReference {
		t.Errorf("second Drop() error = %v, want ErrStaleReference", err)
	}
}

func TestSlotReuseKeepsOldHandleStale(t *testing.T) {
	tbl := NewFuncTable()
	old, _ := tbl.Insert(&FuncInstance{Name: "old"})
	tbl.Drop(old)

	fresh, err := tbl.Insert(&FuncInstance{Name: "fresh"})
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if fresh.Index() != old.Index() {
		t.Fatalf("expected slot reuse, got index %d and %d", old.Index(), fresh.Index())
	}
	if fresh.Generation() == old.Generation() {
		t.Fatal("reused slot must carry a new generation")
	}

	// The stale handle must not see the new occupant.
	if _, err := tbl.Resolve(old); err != ErrStaleReference {
		t.Errorf("Resolve(old) error = %v, want ErrStaleReference", err)
	}
	got, err := tbl.Resolve(fresh)
	if err != nil || got.Name != "fresh" {
		t.Errorf("Resolve(fresh) = %v, %v", got, err)
	}
}

func TestExternTyped(t *testing.T) {
	tbl := NewExternTable()

	type session struct{ id int }
	h, _ := tbl.Insert(&session{id: 42})

	got, err := Extern[*session](tbl, h)
	if err != nil {
		t.Fatalf("Extern() error = %v", err)
	}
	if got.id != 42 {
		t.Errorf("Extern().id = %d, want 42", got.id)
	}

	if _, err := Extern[string](tbl, h); err == nil {
		t.Error("Extern with the wrong type should fail")
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingObserver) OnRegistryEvent(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func TestObservers(t *testing.T) {
	tbl := NewExternTable()
	obs := &recordingObserver{}
	tbl.Subscribe(obs)

	h, _ := tbl.Insert("payload")
	tbl.Drop(h)

	if len(obs.events) != 2 {
		t.Fatalf("observed %d events, want 2", len(obs.events))
	}
	if obs.events[0].Type != EventInserted || obs.events[0].Handle != h {
		t.Errorf("first event = %+v", obs.events[0])
	}
	if obs.events[1].Type != EventDropped {
		t.Errorf("second event = %+v", obs.events[1])
	}

	tbl.Unsubscribe(obs)
	tbl.Insert("more")
	if len(obs.events) != 2 {
		t.Errorf("unsubscribed observer received events")
	}
}

func TestClear(t *testing.T) {
	tbl := NewExternTable()
	h1, _ := tbl.Insert(1)
	h2, _ := tbl.Insert(2)

	tbl.Clear()
	if tbl.Len() != 0 {
		t.Errorf("Len() after Clear = %d", tbl.Len())
	}
	if tbl.Alive(h1) || tbl.Alive(h2) {
		t.Error("handles should be stale after Clear")
	}

	// The table stays usable after Clear.
	if _, err := tbl.Insert(3); err != nil {
		t.Errorf("Insert after Clear error = %v", err)
	}
}

func TestClose(t *testing.T) {
	tbl := NewExternTable()
	h, _ := tbl.Insert("x")

	if err := tbl.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if tbl.Alive(h) {
		t.Error("handles should not resolve after Close")
	}
	if _, err := tbl.Insert("y"); err != ErrClosed {
		t.Errorf("Insert after Close error = %v, want ErrClosed", err)
	}
	// Close is idempotent.
	if err := tbl.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestHandlePacking(t *testing.T) {
	h := makeHandle(0xDEADBEEF, 0x0BADF00D)
	if h.Index() != 0xDEADBEEF {
		t.Errorf("Index() = %#x", h.Index())
	}
	if h.Generation() != 0x0BADF00D {
		t.Errorf("Generation() = %#x", h.Generation())
	}
	if h.IsNull() {
		t.Error("packed handle should not be null")
	}
	if !NullHandle.IsNull() {
		t.Error("NullHandle must be null")
	}
}

func TestConcurrentInsertResolve(t *testing.T) {
	tbl := NewExternTable()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h, err := tbl.Insert(n)
				if err != nil {
					t.Errorf("Insert() error = %v", err)
					return
				}
				got, err := tbl.Resolve(h)
				if err != nil {
					t.Errorf("Resolve() error = %v", err)
					return
				}
				if got.(int) != n {
					t.Errorf("Resolve() = %v, want %d", got, n)
					return
				}
				tbl.Drop(h)
			}
		}(i)
	}
	wg.Wait()
}
