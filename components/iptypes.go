package components

// --------------------------------------------------------------------------------
// WorkBatch
// --------------------------------------------------------------------------------

// WorkBatch is one batch of raw dump lines handed from the producer to
// whichever worker claims it. LineCount is the cumulative number of lines
// read from the source up to and including the batch's last line; it is used
// for diagnostics only, never for ordering.
type WorkBatch struct {
	Lines     []string
	LineCount uint64
}

func NewWorkBatch(lines []string, lineCount uint64) *WorkBatch {
	return &WorkBatch{
		Lines:     lines,
		LineCount: lineCount,
	}
}

// --------------------------------------------------------------------------------
// WorkerResult
// --------------------------------------------------------------------------------

// WorkerResult is what a worker emits once, on shutdown, after finalizing
// its output streams. Counts is nil when statement counting is disabled.
type WorkerResult struct {
	Name   string
	Counts map[string]uint64
}
