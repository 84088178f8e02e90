package navigation

import "sync"

// MemoryHistory is an in-process History with back and forward.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []string
	idx     int
}

// NewMemoryHistory starts with a single entry at path.
func NewMemoryHistory(path string) *MemoryHistory {
	return &MemoryHistory{entries: []string{path}}
}

// Push drops any forward entries and appends path.
func (h *MemoryHistory) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.idx+1], path)
	h.idx++
}

func (h *MemoryHistory) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.idx]
}

// Back moves one entry back. It reports false at the first entry.
func (h *MemoryHistory) Back() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.idx == 0 {
		return false
	}
	h.idx--
	return true
}

// Forward moves one entry forward. It reports false at the last entry.
func (h *MemoryHistory) Forward() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.idx == len(h.entries)-1 {
		return false
	}
	h.idx++
	return true
}

// Entries returns a copy of the recorded paths.
func (h *MemoryHistory) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.entries...)
}
