package spreadsheet

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSheetConcurrentCreate(t *testing.T) {
	f := newFakeGoogle(t)
	c := newTestClient(t, f)

	// Ten concurrent callers race on the same absent name. The advisory
	// lock serialises check-and-create, so exactly one AddSheet goes out.
	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = c.EnsureSheet(context.Background(), "doc", "Contested")
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	created := 0
	for _, batch := range f.batchRequests {
		for _, req := range batch.Requests {
			if req.AddSheet != nil {
				created++
			}
		}
	}
	assert.Equal(t, 1, created)
}

func TestKeyedLocksIndependentKeys(t *testing.T) {
	locks := newKeyedLocks()

	unlockA := locks.acquire("a")
	// A held lock on one key must not block a different key.
	done := make(chan struct{})
	go func() {
		unlockB := locks.acquire("b")
		unlockB()
		close(done)
	}()
	<-done
	unlockA()
}
