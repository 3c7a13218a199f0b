package routing

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/shgat/incidence"
)

// shardCount bounds how many goroutines buildCapabilityNeighbors splits
// the incidence matrix's rows across. Grounded on a
// bounded-concurrency errgroup pattern (one semaphore-sized worker pool
// per call, not one goroutine per row).
func shardCount(rows int) int {
	n := runtime.GOMAXPROCS(0)
	if n > rows {
		n = rows
	}
	if n < 1 {
		n = 1
	}

	return n
}

// buildCapabilityNeighbors derives the capability-capability "shares a
// tool" adjacency SHGAT's recursive term walks (spec §4.4's neighbors
// map). Two capabilities are neighbors iff their hyperedges both touch
// the same tool row. Row ranges are sharded across a bounded errgroup
// worker pool; each shard accumulates its own partial adjacency set, and
// the merge step is a deterministic sorted union so the result never
// depends on goroutine scheduling order.
func buildCapabilityNeighbors(ctx context.Context, inc *incidence.Matrix) map[string][]string {
	rows := inc.Rows()
	if rows == 0 {
		return map[string][]string{}
	}

	entries := inc.Entries()
	// Group entries by row without assuming a fixed shard boundary lands
	// mid-row: entries are already row-major sorted, so a single linear
	// scan can hand each worker a contiguous slice of entries.
	rowStart := make([]int, rows+1)
	ri := 0
	for idx, e := range entries {
		for ri < e.Row {
			rowStart[ri+1] = idx
			ri++
		}
	}
	for ri < rows {
		rowStart[ri+1] = len(entries)
		ri++
	}

	workers := shardCount(rows)
	chunk := (rows + workers - 1) / workers

	partials := make([]map[string]map[string]struct{}, workers)

	g, _ := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		rowFrom := w * chunk
		rowTo := rowFrom + chunk
		if rowTo > rows {
			rowTo = rows
		}
		if rowFrom >= rowTo {
			continue
		}

		g.Go(func() error {
			local := make(map[string]map[string]struct{})
			for row := rowFrom; row < rowTo; row++ {
				from, to := rowStart[row], rowStart[row+1]
				cols := entries[from:to]
				for i := range cols {
					a := inc.CapIDs[cols[i].Col]
					for j := range cols {
						if i == j {
							continue
						}
						b := inc.CapIDs[cols[j].Col]
						if local[a] == nil {
							local[a] = make(map[string]struct{})
						}
						local[a][b] = struct{}{}
					}
				}
			}
			partials[w] = local

			return nil
		})
	}
	_ = g.Wait() // workers never return an error; ctx cancellation is not fatal to adjacency building

	merged := make(map[string]map[string]struct{})
	for _, local := range partials {
		for a, bs := range local {
			if merged[a] == nil {
				merged[a] = make(map[string]struct{})
			}
			for b := range bs {
				merged[a][b] = struct{}{}
			}
		}
	}

	out := make(map[string][]string, len(merged))
	for a, bs := range merged {
		ids := make([]string, 0, len(bs))
		for b := range bs {
			ids = append(ids, b)
		}
		sort.Strings(ids)
		out[a] = ids
	}

	return out
}
