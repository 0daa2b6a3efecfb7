// Command fusedlru-bench runs reproducible micro-benchmarks against
// fusedlru.Cache outside `go test`, so results can be compared across
// machines without the testing package's harness overhead.
//
// It measures:
//  1. Put  - write-only workload, repeatedly filling and evicting
//  2. Get  - read-only workload after warm-up
//  3. Mixed - 90% Get / 10% Put, the steady-state shape of a real cache
//
// Results are printed as ns/op so they can be diffed run over run. This is
// a standalone flag-driven binary rather than a `go test -bench` suite
// since fusedlru has no concurrent workload to parallelize.
//
// Usage:
//
//	go run ./cmd/fusedlru-bench -size 10000 -ops 2000000 -keyspace 50000
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/kelvinstack/fusedlru"
)

func main() {
	var (
		cacheSize  = flag.Int("size", 10_000, "logical cache capacity")
		ops        = flag.Int("ops", 2_000_000, "number of operations per phase")
		keySpace   = flag.Int("keyspace", 50_000, "distinct keys drawn from")
		loadFactor = flag.Float64("loadfactor", 0.66, "hash table load factor")
		seed       = flag.Int64("seed", time.Now().UnixNano(), "PRNG seed")
	)
	flag.Parse()

	c, err := fusedlru.New(int32(*cacheSize), fusedlru.WithLoadFactor(float32(*loadFactor)))
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}

	rnd := rand.New(rand.NewSource(*seed))
	keys := make([]int32, *ops)
	for i := range keys {
		keys[i] = rnd.Int31n(int32(*keySpace))
	}

	runPhase("Put", *ops, func(i int) {
		c.Put(keys[i], int32(i))
	})

	// Warm the cache before the read-only phase so Get measures steady-state
	// hit/miss behavior rather than an empty table.
	for i, k := range keys {
		c.Put(k, int32(i))
	}
	runPhase("Get", *ops, func(i int) {
		c.Get(keys[i])
	})

	runPhase("Mixed(90%Get/10%Put)", *ops, func(i int) {
		if i%10 == 0 {
			c.Put(keys[i], int32(i))
		} else {
			c.Get(keys[i])
		}
	})
}

func runPhase(name string, n int, op func(i int)) {
	start := time.Now()
	for i := 0; i < n; i++ {
		op(i)
	}
	elapsed := time.Since(start)
	fmt.Printf("%-24s %10d ops  %12s  %8.1f ns/op\n",
		name, n, elapsed.Round(time.Millisecond), float64(elapsed.Nanoseconds())/float64(n))
}
