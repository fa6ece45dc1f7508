package asset

import (
	"fmt"
	"io/fs"
	"log"
	"sync"

	"github.com/panjf2000/ants/v2"
)

const defaultPoolSize = 4

type inflight struct {
	done  chan struct{}
	asset *Asset
	err   error
}

// Manager loads assets from an fs.FS through per-type codecs. All state
// behind one mutex; batch loads fan out on a worker pool.
type Manager struct {
	fsys   fs.FS
	codecs map[Type]Codec
	pool   *ants.Pool

	mu       sync.Mutex
	assets   map[string]*Asset
	inflight map[string]*inflight
	total    int
	loaded   int
	failed   int
}

func NewManager(fsys fs.FS, codecs map[Type]Codec) (*Manager, error) {
	pool, err := ants.NewPool(defaultPoolSize)
	if err != nil {
		return nil, fmt.Errorf("asset: worker pool: %w", err)
	}
	return &Manager{
		fsys:     fsys,
		codecs:   codecs,
		pool:     pool,
		assets:   map[string]*Asset{},
		inflight: map[string]*inflight{},
	}, nil
}

// Load returns the cached asset when already loaded, joins an in-flight
// load of the same id, or performs the load itself. Failures are
// recorded on the asset and returned to the caller.
func (m *Manager) Load(req Request) (*Asset, error) {
	m.mu.Lock()
	if a, ok := m.assets[req.ID]; ok && a.Loaded {
		m.mu.Unlock()
		return a, nil
	}
	if fl, ok := m.inflight[req.ID]; ok {
		m.mu.Unlock()
		<-fl.done
		return fl.asset, fl.err
	}
	fl := &inflight{done: make(chan struct{})}
	m.inflight[req.ID] = fl
	m.total++
	m.mu.Unlock()

	a, err := m.fetch(req)

	m.mu.Lock()
	delete(m.inflight, req.ID)
	m.assets[req.ID] = a
	if err != nil {
		m.failed++
	} else {
		m.loaded++
	}
	m.mu.Unlock()

	fl.asset = a
	fl.err = err
	close(fl.done)
	return a, err
}

func (m *Manager) fetch(req Request) (*Asset, error) {
	a := &Asset{ID: req.ID, Type: req.Type, Path: req.Path}

	codec, ok := m.codecs[req.Type]
	if !ok {
		a.Err = fmt.Errorf("asset: no codec for type %q", req.Type)
		return a, a.Err
	}
	data, err := fs.ReadFile(m.fsys, req.Path)
	if err != nil {
		a.Err = fmt.Errorf("asset: read %s: %w", req.Path, err)
		return a, a.Err
	}
	payload, err := codec.Decode(req, data)
	if err != nil {
		a.Err = err
		return a, a.Err
	}
	a.Payload = payload
	a.Loaded = true
	return a, nil
}

// LoadBatch fans the requests out on the worker pool and returns the
// successfully loaded assets in request order. A failed asset is logged
// and excluded; it never fails the batch.
func (m *Manager) LoadBatch(reqs []Request) []*Asset {
	results := make([]*Asset, len(reqs))
	var wg sync.WaitGroup
	for i, req := range reqs {
		wg.Add(1)
		submit := func() {
			defer wg.Done()
			a, err := m.Load(req)
			if err != nil {
				log.Printf("asset: load %s: %v", req.ID, err)
				return
			}
			results[i] = a
		}
		if err := m.pool.Submit(submit); err != nil {
			// Pool rejected (released); fall back to inline.
			submit()
		}
	}
	wg.Wait()

	out := make([]*Asset, 0, len(reqs))
	for _, a := range results {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

// Get returns the cached asset, nil when absent or unresolved.
func (m *Manager) Get(id string) *Asset {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.assets[id]
}

// Progress reports batch statistics. Percentage counts resolved
// requests (success or failure) and is clamped to 100.
func (m *Manager) Progress() Progress {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := Progress{Total: m.total, Loaded: m.loaded, Failed: m.failed}
	if m.total > 0 {
		p.Percentage = float64(m.loaded+m.failed) / float64(m.total) * 100
	}
	if p.Percentage > 100 {
		p.Percentage = 100
	}
	return p
}

// Unload disposes the asset's payload and removes its record.
func (m *Manager) Unload(id string) {
	m.mu.Lock()
	a, ok := m.assets[id]
	if !ok {
		m.mu.Unlock()
		return
	}
	delete(m.assets, id)
	m.total--
	if a.Loaded {
		m.loaded--
	} else {
		m.failed--
	}
	m.mu.Unlock()

	if codec, ok := m.codecs[a.Type]; ok && a.Payload != nil {
		codec.Dispose(a.Payload)
	}
}

// UnloadAll disposes every asset and resets all counters.
func (m *Manager) UnloadAll() {
	m.mu.Lock()
	assets := m.assets
	m.assets = map[string]*Asset{}
	m.total, m.loaded, m.failed = 0, 0, 0
	m.mu.Unlock()

	for _, a := range assets {
		if codec, ok := m.codecs[a.Type]; ok && a.Payload != nil {
			codec.Dispose(a.Payload)
		}
	}
}

// Invalidate drops the cached asset for a path so the next Load re-reads
// it. Used by the hot-reload watcher.
func (m *Manager) Invalidate(path string) {
	m.mu.Lock()
	var ids []string
	for id, a := range m.assets {
		if a.Path == path {
			ids = append(ids, id)
		}
	}
	m.mu.Unlock()
	for _, id := range ids {
		m.Unload(id)
	}
}

// Close releases the worker pool.
func (m *Manager) Close() {
	m.pool.Release()
}
