package components

import (
	"sort"
	"strconv"

	"github.com/flowbase/flowbase"
	"github.com/spf13/afero"
)

// StatementCountsFile is the merged per-entity statement count output.
const StatementCountsFile = "statement_counts.bz2"

// --------------------------------------------------------------------------------
// ResultAggregator
// --------------------------------------------------------------------------------

// ResultAggregator waits for exactly one result per worker, merges the
// per-entity counts by summation and writes the single merged counts file.
// Summation is commutative, so the merged counts do not depend on how
// batches were spread over the pool.
type ResultAggregator struct {
	InResult chan *WorkerResult

	fs      afero.Fs
	workers int
	counts  bool
}

// NewOsResultAggregator returns an initialized ResultAggregator writing to
// the OS file system.
func NewOsResultAggregator(workers int, counts bool) *ResultAggregator {
	return NewResultAggregator(afero.NewOsFs(), workers, counts)
}

// NewResultAggregator returns an initialized ResultAggregator writing to the
// afero file system provided as a parameter.
func NewResultAggregator(fileSystem afero.Fs, workers int, counts bool) *ResultAggregator {
	return &ResultAggregator{
		InResult: make(chan *WorkerResult, BUFSIZE),
		fs:       fileSystem,
		workers:  workers,
		counts:   counts,
	}
}

// Run runs the ResultAggregator process. It is the pipeline's final stage:
// it returns only after every worker has finalized its streams and handed
// over its result.
func (a *ResultAggregator) Run() {
	merged := make(map[string]uint64)

	for i := 0; i < a.workers; i++ {
		result := <-a.InResult
		flowbase.Debug.Printf("Got result from worker %s\n", result.Name)
		for id, count := range result.Counts {
			merged[id] += count
		}
	}

	if !a.counts {
		return
	}

	ids := make([]string, 0, len(merged))
	for id := range merged {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := newShardWriter(a.fs, StatementCountsFile)
	for _, id := range ids {
		out.WriteLine(id + " " + strconv.FormatUint(merged[id], 10))
	}
	out.Close()

	diag("%d entities", len(ids))
}
