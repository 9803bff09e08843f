package assistant

import (
	"fmt"
	"sync"
	"testing"

	"github.com/ecosmart/shop/internal/core"
)

func mentions(names ...string) []core.ProductMention {
	out := make([]core.ProductMention, len(names))
	for i, name := range names {
		out[i] = core.ProductMention{Name: name, Price: float64(i + 1)}
	}
	return out
}

func TestStore_GetCreatesEmptySession(t *testing.T) {
	s := NewStore()

	snap := s.Get("fresh")
	if len(snap.History) != 0 {
		t.Errorf("history = %d entries, want 0", len(snap.History))
	}
	if len(snap.Products) != 0 {
		t.Errorf("products = %d entries, want 0", len(snap.Products))
	}
}

func TestStore_AppendExchange(t *testing.T) {
	tests := []struct {
		name        string
		appends     int
		wantLen     int
		wantOldest  string
		wantNewest  string
	}{
		{name: "single", appends: 1, wantLen: 1, wantOldest: "q0", wantNewest: "q0"},
		{name: "under_bound", appends: 9, wantLen: 9, wantOldest: "q0", wantNewest: "q8"},
		{name: "at_bound", appends: 10, wantLen: 10, wantOldest: "q0", wantNewest: "q9"},
		{name: "over_bound_drops_oldest", appends: 13, wantLen: 10, wantOldest: "q3", wantNewest: "q12"},
		{name: "far_over_bound", appends: 50, wantLen: 10, wantOldest: "q40", wantNewest: "q49"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			for i := 0; i < tt.appends; i++ {
				got := s.AppendExchange("k", fmt.Sprintf("q%d", i), fmt.Sprintf("r%d", i))
				want := i + 1
				if want > maxHistory {
					want = maxHistory
				}
				if got != want {
					t.Fatalf("AppendExchange #%d returned length %d, want %d", i, got, want)
				}
			}

			snap := s.Get("k")
			if len(snap.History) != tt.wantLen {
				t.Fatalf("history length = %d, want %d", len(snap.History), tt.wantLen)
			}
			if snap.History[0].Query != tt.wantOldest {
				t.Errorf("oldest query = %q, want %q", snap.History[0].Query, tt.wantOldest)
			}
			if snap.History[len(snap.History)-1].Query != tt.wantNewest {
				t.Errorf("newest query = %q, want %q", snap.History[len(snap.History)-1].Query, tt.wantNewest)
			}
			for _, e := range snap.History {
				if e.Timestamp == "" {
					t.Error("exchange missing timestamp")
				}
			}
		})
	}
}

func TestStore_AppendProducts(t *testing.T) {
	tests := []struct {
		name       string
		batches    [][]core.ProductMention
		wantLen    int
		wantFirst  string
		wantLast   string
	}{
		{
			name:      "single_batch",
			batches:   [][]core.ProductMention{mentions("a", "b")},
			wantLen:   2,
			wantFirst: "a",
			wantLast:  "b",
		},
		{
			name:      "duplicates_accumulate",
			batches:   [][]core.ProductMention{mentions("a", "b"), mentions("a", "b")},
			wantLen:   4,
			wantFirst: "a",
			wantLast:  "b",
		},
		{
			name: "over_bound_drops_oldest",
			batches: [][]core.ProductMention{
				mentions("a", "b", "c", "d"),
				mentions("e", "f", "g", "h"),
				mentions("i", "j", "k", "l"),
			},
			wantLen:   10,
			wantFirst: "c",
			wantLast:  "l",
		},
		{
			name:    "empty_batch_is_noop",
			batches: [][]core.ProductMention{nil, {}},
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			for _, batch := range tt.batches {
				s.AppendProducts("k", batch)
			}

			snap := s.Get("k")
			if len(snap.Products) != tt.wantLen {
				t.Fatalf("products length = %d, want %d", len(snap.Products), tt.wantLen)
			}
			if tt.wantLen > 0 {
				if snap.Products[0].Name != tt.wantFirst {
					t.Errorf("first product = %q, want %q", snap.Products[0].Name, tt.wantFirst)
				}
				if snap.Products[tt.wantLen-1].Name != tt.wantLast {
					t.Errorf("last product = %q, want %q", snap.Products[tt.wantLen-1].Name, tt.wantLast)
				}
			}
		})
	}
}

func TestStore_SessionIsolation(t *testing.T) {
	s := NewStore()
	s.AppendExchange("alice", "q", "r")
	s.AppendProducts("alice", mentions("a"))

	snap := s.Get("bob")
	if len(snap.History) != 0 || len(snap.Products) != 0 {
		t.Error("sessions leaked state across keys")
	}
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	s := NewStore()
	s.AppendExchange("k", "q", "r")
	s.AppendProducts("k", mentions("a"))

	snap := s.Get("k")
	snap.History[0].Query = "mutated"
	snap.Products[0].Name = "mutated"

	fresh := s.Get("k")
	if fresh.History[0].Query != "q" {
		t.Error("mutating a snapshot leaked into the store")
	}
	if fresh.Products[0].Name != "a" {
		t.Error("mutating snapshot products leaked into the store")
	}
}

func TestStore_ConcurrentAppends(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup

	const workers = 8
	const iterations = 50

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			key := fmt.Sprintf("session-%d", w%4)
			for i := 0; i < iterations; i++ {
				s.AppendExchange(key, "q", "r")
				s.AppendProducts(key, mentions("p"))
				s.Get(key)
			}
		}(w)
	}
	wg.Wait()

	for w := 0; w < 4; w++ {
		snap := s.Get(fmt.Sprintf("session-%d", w))
		if len(snap.History) != maxHistory {
			t.Errorf("session-%d history = %d, want %d", w, len(snap.History), maxHistory)
		}
		if len(snap.Products) != maxProducts {
			t.Errorf("session-%d products = %d, want %d", w, len(snap.Products), maxProducts)
		}
	}
}
