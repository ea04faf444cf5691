package payment

import (
	"context"
	"strconv"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const defaultIdleTTL = time.Hour

// flow is one user's payment flow: its session and the poll driving it.
type flow struct {
	session *LinkSession

	mu     sync.Mutex
	cancel context.CancelFunc
}

func (f *flow) replaceCancel(cancel context.CancelFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.cancel()
	}
	f.cancel = cancel
}

func (f *flow) stop() {
	f.replaceCancel(nil)
}

// Registry hands every user their own LinkSession. Flows untouched for the
// idle TTL are evicted and their poll is cancelled.
type Registry struct {
	mu    sync.Mutex
	flows *gocache.Cache
}

func NewRegistry(idleTTL time.Duration) *Registry {
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}
	flows := gocache.New(idleTTL, idleTTL/2)
	flows.OnEvicted(func(_ string, v interface{}) {
		if f, ok := v.(*flow); ok {
			f.stop()
		}
	})
	return &Registry{flows: flows}
}

// Session returns the user's session, creating an idle one if needed.
func (r *Registry) Session(owner int) *LinkSession {
	return r.flow(owner).session
}

// Lookup returns the user's session without creating one.
func (r *Registry) Lookup(owner int) (*LinkSession, bool) {
	f, ok := r.lookup(owner)
	if !ok {
		return nil, false
	}
	return f.session, true
}

func (r *Registry) flow(owner int) *flow {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strconv.Itoa(owner)
	if v, ok := r.flows.Get(key); ok {
		f := v.(*flow)
		r.flows.SetDefault(key, f)
		return f
	}
	// expired entries the janitor has not reached yet must be evicted
	// through OnEvicted so their poll is cancelled before being replaced
	r.flows.DeleteExpired()
	f := &flow{session: NewLinkSession()}
	r.flows.SetDefault(key, f)
	return f
}

// touch restarts the idle TTL of a live flow without creating one.
func (r *Registry) touch(owner int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strconv.Itoa(owner)
	if v, ok := r.flows.Get(key); ok {
		r.flows.SetDefault(key, v)
	}
}

func (r *Registry) lookup(owner int) (*flow, bool) {
	v, ok := r.flows.Get(strconv.Itoa(owner))
	if !ok {
		return nil, false
	}
	return v.(*flow), true
}

// Len is the number of live flows.
func (r *Registry) Len() int {
	return r.flows.ItemCount()
}
