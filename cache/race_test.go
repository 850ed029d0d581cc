package cache

import (
	"math/rand"
	"runtime"
	"strconv"
	"sync"
	"testing"
	"time"
)

// A mixed workload of concurrent Set/Get/GetDefault/Contains on random
// keys against the LRU. Should pass under `-race` without reports.
func TestRace_LRU(t *testing.T) {
	c := NewLRU[string, []byte](Options[string, []byte]{Capacity: 4_096})

	workers := 4 * runtime.GOMAXPROCS(0)
	keyspace := 20_000
	deadline := time.Now().Add(2 * time.Second)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)*9973))
			for time.Now().Before(deadline) {
				k := "k:" + strconv.Itoa(r.Intn(keyspace))
				switch r.Intn(100) {
				case 0, 1, 2, 3, 4: // ~5% — Contains
					c.Contains(k)
				case 5, 6: // ~2% — Keys
					c.Keys()
				case 7: // ~1% — Clear
					c.Clear()
				case 8, 9: // ~2% — Grow
					c.Grow(4_096 + r.Intn(64))
				case 10, 11, 12, 13, 14, 15, 16, 17, 18, 19: // ~10% — Set
					c.Set(k, []byte("x"))
				default: // ~80% — lookups
					if r.Intn(2) == 0 {
						_, _ = c.Get(k)
					} else {
						c.GetDefault(k, nil)
					}
				}
			}
		}(w)
	}
	wg.Wait()

	if n := c.Len(); n > c.MaxSize() {
		t.Fatalf("len %d exceeds maxsize %d after the workload", n, c.MaxSize())
	}
}

// Same shape against the FIFO, with overwrites in the mix.
func TestRace_FIFO(t *testing.T) {
	c := NewFIFO[string, int](Options[string, int]{Capacity: 4_096})

	workers := 4 * runtime.GOMAXPROCS(0)
	keyspace := 20_000
	deadline := time.Now().Add(2 * time.Second)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)*7919))
			for time.Now().Before(deadline) {
				k := "k:" + strconv.Itoa(r.Intn(keyspace))
				switch r.Intn(100) {
				case 0, 1, 2, 3, 4: // ~5% — Contains
					c.Contains(k)
				case 5: // ~1% — Clear
					c.Clear()
				case 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20: // ~15% — Set
					c.Set(k, r.Int())
				default: // ~79% — lookups
					if r.Intn(2) == 0 {
						_, _ = c.Get(k)
					} else {
						c.GetDefault(k, -1)
					}
				}
			}
		}(w)
	}
	wg.Wait()

	if n := c.Len(); n > c.MaxSize() {
		t.Fatalf("len %d exceeds maxsize %d after the workload", n, c.MaxSize())
	}
}

// Concurrent distinct-key Sets: counters stay exact and the capacity
// invariant holds at every point observable afterwards.
func TestRace_CounterExactness(t *testing.T) {
	c := NewLRU[int, int](Options[int, int]{Capacity: 128})

	const (
		workers = 8
		perW    = 1_000
	)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perW; i++ {
				// Disjoint key ranges per worker: every Get is a miss.
				c.GetDefault(id*perW+i+1_000_000, -1)
			}
		}(w)
	}
	wg.Wait()

	if st := c.Stats(); st.Misses != workers*perW {
		t.Fatalf("misses = %d, want %d (atomic counters must not drop updates)",
			st.Misses, workers*perW)
	}
}
