package mnemonic

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"testing"
)

var concurrentInputs = []string{
	"",
	validZero,
	validLegal,
	validZoo,
	badChecksum,
	"abandon abandon",
	strings.Replace(validLegal, "wave", "wav", 1),
	strings.Replace(validLegal, "sausage", "sausagesx", 1),
	"  LEGAL winner thank year wave sausage worth useful legal winner thank yellow ",
}

func TestValidateConcurrent(t *testing.T) {
	configs := []struct {
		workers             int
		iterationsPerWorker int
	}{
		{workers: 1, iterationsPerWorker: 200},
		{workers: 4, iterationsPerWorker: 50},
		{workers: 16, iterationsPerWorker: 20},
	}

	for _, config := range configs {
		t.Run(fmt.Sprintf("workers_%d_iter_%d", config.workers, config.iterationsPerWorker), func(t *testing.T) {
			runConcurrentValidation(t, config.workers, config.iterationsPerWorker)
		})
	}
}

func runConcurrentValidation(t *testing.T, workers, iterationsPerWorker int) {
	v := New(nil)

	expected := make([]Result, len(concurrentInputs))
	for i, in := range concurrentInputs {
		expected[i] = v.Validate(in)
	}

	baselineGoroutines := runtime.NumGoroutine()

	var wg sync.WaitGroup
	var mu sync.Mutex
	mismatches := 0

	for worker := 0; worker < workers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for iter := 0; iter < iterationsPerWorker; iter++ {
				for i, in := range concurrentInputs {
					if got := v.Validate(in); got != expected[i] {
						mu.Lock()
						mismatches++
						mu.Unlock()
					}
				}
			}
		}()
	}

	wg.Wait()

	goroutineDelta := runtime.NumGoroutine() - baselineGoroutines
	t.Logf("workers=%d iter_per_worker=%d total_ops=%d goroutine_delta=%d",
		workers, iterationsPerWorker, workers*iterationsPerWorker*len(concurrentInputs), goroutineDelta)

	if mismatches > 0 {
		t.Errorf("%d results differed from the sequential baseline", mismatches)
	}
	if goroutineDelta > 2 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}
