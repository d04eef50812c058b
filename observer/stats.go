package observer

import (
	"context"
	"sort"
	"sync"
)

// OpStats holds the counters of an operation
type OpStats struct {
	Op        string
	Succeeded uint32
	Failed    uint32
	LastError string
}

// Stats is an observer that counts the events per operation.
type Stats struct {
	lock  sync.Mutex
	stats map[string]*OpStats
}

func NewStats() *Stats {
	return &Stats{stats: map[string]*OpStats{}}
}

func (s *Stats) get(op string) *OpStats {
	st := s.stats[op]
	if st == nil {
		st = &OpStats{Op: op}
		s.stats[op] = st
	}
	return st
}

func (s *Stats) OnSuccess(ctx context.Context, op string, tags Tags) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.get(op).Succeeded++
}

func (s *Stats) OnError(ctx context.Context, op string, err error, tags Tags) {
	s.lock.Lock()
	defer s.lock.Unlock()
	st := s.get(op)
	st.Failed++
	st.LastError = err.Error()
}

// Get returns a copy of the counters for the operation
func (s *Stats) Get(op string) OpStats {
	s.lock.Lock()
	defer s.lock.Unlock()
	if st := s.stats[op]; st != nil {
		return *st
	}
	return OpStats{Op: op}
}

// All returns a copy of all counters, sorted by operation
func (s *Stats) All() []OpStats {
	s.lock.Lock()
	defer s.lock.Unlock()
	res := make([]OpStats, 0, len(s.stats))
	for _, st := range s.stats {
		res = append(res, *st)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Op < res[j].Op
	})
	return res
}
