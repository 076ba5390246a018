package datelock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockSerializesSameKey(t *testing.T) {
	km := New()

	const workers = 16
	var inside int
	var maxInside int
	var track sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("2025-01-06")
			defer unlock()

			track.Lock()
			inside++
			if inside > maxInside {
				maxInside = inside
			}
			track.Unlock()

			time.Sleep(time.Millisecond)

			track.Lock()
			inside--
			track.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInside, "critical section must never be shared")
}

func TestDifferentKeysDoNotBlock(t *testing.T) {
	km := New()

	unlockA := km.Lock("2025-01-06")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := km.Lock("2025-01-07")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key should not block")
	}
}

func TestEntriesAreReleased(t *testing.T) {
	km := New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("2025-01-06")
			unlock()
		}()
	}
	wg.Wait()

	km.mu.Lock()
	defer km.mu.Unlock()
	require.Empty(t, km.held)
}
