package components

import (
	"log"

	"github.com/spf13/afero"
)

// --------------------------------------------------------------------------------
// Worker
// --------------------------------------------------------------------------------

// Worker consumes batches from the shared InBatch port and owns one output
// shard: a compressed statement file, optionally a compressed label file and
// an in-memory count map. Workers share no mutable state with each other;
// whichever worker is idle claims the next batch, so the grouping of lines
// into shard files is not reproducible between runs.
type Worker struct {
	InBatch   <-chan *WorkBatch
	OutResult chan<- *WorkerResult

	name   string
	fs     afero.Fs
	tables *ReferenceTables
	labels bool
	counts bool
}

// NewWorker returns an initialized Worker. The InBatch and OutResult ports
// are shared with the producer and the aggregator, so they are wired up by
// the caller rather than created here.
func NewWorker(name string, fileSystem afero.Fs, tables *ReferenceTables, labels bool, counts bool) *Worker {
	return &Worker{
		name:   name,
		fs:     fileSystem,
		tables: tables,
		labels: labels,
		counts: counts,
	}
}

// Run runs the Worker process. When InBatch closes, the worker finalizes its
// compressed streams and emits its result exactly once.
func (w *Worker) Run() {
	linesOut := newShardWriter(w.fs, w.name+".nt.bz2")

	var labelsOut *shardWriter
	if w.labels {
		labelsOut = newShardWriter(w.fs, "labels_"+w.name+".bz2")
	}

	var counts map[string]uint64
	if w.counts {
		counts = make(map[string]uint64)
	}

	for batch := range w.InBatch {
		for _, line := range batch.Lines {
			w.handle(linesOut, labelsOut, counts, batch.LineCount, line)
		}
		linesOut.Flush()
		if labelsOut != nil {
			labelsOut.Flush()
		}
	}

	diag("stopping worker %s", w.name)
	linesOut.Close()
	if labelsOut != nil {
		labelsOut.Close()
	}

	w.OutResult <- &WorkerResult{Name: w.name, Counts: counts}
}

// handle classifies one line. Accepted lines are written verbatim; label
// records are unescaped before emission. The number is the batch's line tag,
// used in fatal diagnostics only.
func (w *Worker) handle(linesOut *shardWriter, labelsOut *shardWriter, counts map[string]uint64, number uint64, line string) {
	statement, err := ParseStatement(number, line)
	if err != nil {
		log.Fatal(err)
	}

	if w.tables.Acceptable(statement) {
		linesOut.WriteLine(line)
	}

	if labelsOut != nil {
		if id, label, ok := w.tables.Label(statement); ok {
			unescaped, err := UnescapeLiteral(label)
			if err != nil {
				log.Fatal(err)
			}
			labelsOut.WriteLine(id + " " + unescaped)
		}
	}

	if counts != nil {
		if id, ok := CountsTowardStatements(statement); ok {
			counts[id]++
		}
	}
}
