package store_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/mcpack/mcpack/store"
	"github.com/mcpack/mcpack/store/storetest"
)

func TestMemory(t *testing.T) {
	storetest.Exercise(t, store.NewMemory())
}

// run with -race to look for synchronization problems
func TestMemoryConcurrent(t *testing.T) {
	s := store.NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				key := fmt.Sprintf("dir%d/file%d", n, j)
				w, _ := s.Create(key)
				w.Write([]byte(key))
				w.Close()
				r, err := s.Open(key)
				if err != nil {
					t.Error(err)
					return
				}
				r.Close()
				s.List(fmt.Sprintf("dir%d", n))
			}
		}(i)
	}
	wg.Wait()
}
