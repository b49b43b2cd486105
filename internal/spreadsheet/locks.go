package spreadsheet

import "sync"

// keyedLocks hands out one mutex per key. EnsureSheet holds the lock
// for a (spreadsheetID, sheetName) pair across its check-and-create so
// concurrent callers in this process cannot both observe "absent" and
// create a duplicate. The remote service offers no conditional create,
// so callers in other processes still race; that window is documented
// behaviour.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the mutex for key and returns its unlock func.
func (k *keyedLocks) acquire(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
