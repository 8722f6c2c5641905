package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/quasilyte/gdata"
)

const pickupsKey = "pickups"

// Store is the subset of *gdata.Manager the local ledger needs.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Local records pickups with gdata on a single worker goroutine.
type Local struct {
	store Store

	queue   chan Pickup
	results chan Result
	cancel  context.CancelFunc
	done    chan struct{}

	mu        sync.RWMutex
	collected map[string]bool
	closed    bool
}

// OpenLocal opens the gdata store for appName and starts the worker.
func OpenLocal(appName string, queueSize int) (*Local, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open ledger store: %w", err)
	}
	return NewLocal(m, queueSize)
}

// NewLocal starts a ledger over store. Previously recorded pickups are loaded
// before the worker starts.
func NewLocal(store Store, queueSize int) (*Local, error) {
	if queueSize <= 0 {
		queueSize = 1
	}
	l := &Local{
		store:     store,
		queue:     make(chan Pickup, queueSize),
		results:   make(chan Result, queueSize),
		done:      make(chan struct{}),
		collected: make(map[string]bool),
	}

	ids, err := l.load()
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		l.collected[id] = true
	}

	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	go l.run(ctx)
	return l, nil
}

func (l *Local) Submit(p Pickup) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return false
	}
	select {
	case l.queue <- p:
		return true
	default:
		log.Printf("[ledger] queue full, dropping pickup %s", p.ItemID)
		return false
	}
}

func (l *Local) Drain() []Result {
	return drainChan(l.results)
}

func (l *Local) Collected(itemID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.collected[itemID]
}

// Close stops the worker and waits for it to exit. Queued pickups that were
// not processed yet are dropped.
func (l *Local) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	l.closed = true
	l.mu.Unlock()

	l.cancel()
	<-l.done
	return nil
}

func (l *Local) run(ctx context.Context) {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return
		case p := <-l.queue:
			res := Result{Pickup: p, Err: l.record(p)}
			if res.Err != nil {
				log.Printf("[ledger] pickup %s failed: %v", p.ItemID, res.Err)
			}
			select {
			case l.results <- res:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (l *Local) record(p Pickup) error {
	l.mu.RLock()
	already := l.collected[p.ItemID]
	ids := make([]string, 0, len(l.collected)+1)
	for id := range l.collected {
		ids = append(ids, id)
	}
	l.mu.RUnlock()

	if already {
		return ErrAlreadyCollected
	}

	ids = append(ids, p.ItemID)
	sort.Strings(ids)
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("serialize pickups: %w", err)
	}
	if err := l.store.SaveItem(pickupsKey, data); err != nil {
		return fmt.Errorf("save pickups: %w", err)
	}

	l.mu.Lock()
	l.collected[p.ItemID] = true
	l.mu.Unlock()
	return nil
}

func (l *Local) load() ([]string, error) {
	data, err := l.store.LoadItem(pickupsKey)
	if err != nil {
		log.Printf("Warning: Could not load pickups: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("parse pickups: %w", err)
	}
	return ids, nil
}
