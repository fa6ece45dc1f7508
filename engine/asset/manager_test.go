package asset

import (
	"errors"
	"io/fs"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"
)

type blobCodec struct {
	decodes  atomic.Int64
	disposed []any
	mu       sync.Mutex
	// block, when non-nil, is closed to release pending decodes
	block chan struct{}
}

func (c *blobCodec) Decode(req Request, data []byte) (any, error) {
	c.decodes.Add(1)
	if c.block != nil {
		<-c.block
	}
	return string(data), nil
}

func (c *blobCodec) Dispose(payload any) {
	c.mu.Lock()
	c.disposed = append(c.disposed, payload)
	c.mu.Unlock()
}

func newTestManager(t *testing.T, codec Codec) *Manager {
	t.Helper()
	fsys := fstest.MapFS{
		"sprites/coin.png": {Data: []byte("coin-bytes")},
		"sprites/cart.png": {Data: []byte("cart-bytes")},
		"data/waves.json":  {Data: []byte(`{"interval": 40}`)},
	}
	m, err := NewManager(fsys, map[Type]Codec{
		TypeImage: codec,
		TypeJSON:  JSONCodec{},
	})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	t.Cleanup(m.Close)
	return m
}

func TestLoadCachesAndRecordsFailures(t *testing.T) {
	cases := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"image_ok", Request{ID: "coin", Type: TypeImage, Path: "sprites/coin.png"}, false},
		{"json_ok", Request{ID: "waves", Type: TypeJSON, Path: "data/waves.json"}, false},
		{"missing_file", Request{ID: "ghost", Type: TypeImage, Path: "sprites/ghost.png"}, true},
		{"unknown_type", Request{ID: "odd", Type: "model", Path: "sprites/coin.png"}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := newTestManager(t, &blobCodec{})
			a, err := m.Load(c.req)
			if c.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if a == nil || a.Loaded || a.Err == nil {
					t.Fatalf("failed asset should carry its error: %+v", a)
				}
				if got := m.Progress(); got.Failed != 1 {
					t.Fatalf("expected failed=1, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !a.Loaded || a.ID != c.req.ID {
				t.Fatalf("unexpected asset: %+v", a)
			}
		})
	}
}

func TestBatchIsolatesFailures(t *testing.T) {
	m := newTestManager(t, &blobCodec{})
	reqs := []Request{
		{ID: "coin", Type: TypeImage, Path: "sprites/coin.png"},
		{ID: "ghost", Type: TypeImage, Path: "sprites/ghost.png"},
		{ID: "cart", Type: TypeImage, Path: "sprites/cart.png"},
	}

	got := m.LoadBatch(reqs)
	if len(got) != 2 {
		t.Fatalf("expected 2 successful assets, got %d", len(got))
	}
	if got[0].ID != "coin" || got[1].ID != "cart" {
		t.Fatalf("batch order not preserved: %v, %v", got[0].ID, got[1].ID)
	}

	p := m.Progress()
	if p.Total != 3 || p.Loaded != 2 || p.Failed != 1 {
		t.Fatalf("unexpected progress: %+v", p)
	}
	if p.Percentage != 100 {
		t.Fatalf("all resolved, expected 100%%, got %v", p.Percentage)
	}
}

func TestConcurrentLoadsShareOneDecode(t *testing.T) {
	codec := &blobCodec{block: make(chan struct{})}
	m := newTestManager(t, codec)
	req := Request{ID: "coin", Type: TypeImage, Path: "sprites/coin.png"}

	const callers = 8
	var wg sync.WaitGroup
	results := make([]*Asset, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, err := m.Load(req)
			if err != nil {
				t.Errorf("Load: %v", err)
			}
			results[i] = a
		}(i)
	}
	close(codec.block)
	wg.Wait()

	if n := codec.decodes.Load(); n != 1 {
		t.Fatalf("expected a single decode for concurrent loads, got %d", n)
	}
	for _, a := range results {
		if a != results[0] {
			t.Fatal("all callers should get the same asset record")
		}
	}
	if p := m.Progress(); p.Total != 1 || p.Loaded != 1 {
		t.Fatalf("dedup should count one request: %+v", p)
	}
}

func TestUnloadDisposesAndAdjustsCounters(t *testing.T) {
	codec := &blobCodec{}
	m := newTestManager(t, codec)

	if _, err := m.Load(Request{ID: "coin", Type: TypeImage, Path: "sprites/coin.png"}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	m.Unload("coin")

	if len(codec.disposed) != 1 || codec.disposed[0] != "coin-bytes" {
		t.Fatalf("payload not disposed: %v", codec.disposed)
	}
	if p := m.Progress(); p.Total != 0 || p.Loaded != 0 {
		t.Fatalf("counters not adjusted: %+v", p)
	}
	if m.Get("coin") != nil {
		t.Fatal("record should be removed")
	}
}

func TestUnloadAllResetsCounters(t *testing.T) {
	m := newTestManager(t, &blobCodec{})
	m.LoadBatch([]Request{
		{ID: "coin", Type: TypeImage, Path: "sprites/coin.png"},
		{ID: "ghost", Type: TypeImage, Path: "sprites/ghost.png"},
	})

	m.UnloadAll()
	p := m.Progress()
	if p.Total != 0 || p.Loaded != 0 || p.Failed != 0 || p.Percentage != 0 {
		t.Fatalf("expected zeroed progress, got %+v", p)
	}
}

func TestInvalidateForcesReload(t *testing.T) {
	codec := &blobCodec{}
	m := newTestManager(t, codec)
	req := Request{ID: "coin", Type: TypeImage, Path: "sprites/coin.png"}

	if _, err := m.Load(req); err != nil {
		t.Fatalf("Load: %v", err)
	}
	m.Invalidate("sprites/coin.png")
	if _, err := m.Load(req); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if n := codec.decodes.Load(); n != 2 {
		t.Fatalf("expected 2 decodes after invalidate, got %d", n)
	}
}

func TestFailedAssetErrorIsInspectable(t *testing.T) {
	m := newTestManager(t, &blobCodec{})
	_, err := m.Load(Request{ID: "ghost", Type: TypeImage, Path: "sprites/ghost.png"})
	if err == nil {
		t.Fatal("expected error")
	}
	a := m.Get("ghost")
	if a == nil || a.Err == nil || !errors.Is(err, a.Err) {
		t.Fatalf("asset should carry the load error, got %+v", a)
	}
	if errors.Is(a.Err, fs.ErrNotExist) == false {
		t.Fatalf("expected a not-exist error, got %v", a.Err)
	}
}
