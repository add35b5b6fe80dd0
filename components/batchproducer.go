package components

import (
	"bufio"
	"log"

	"github.com/spf13/afero"
)

const (
	// BUFSIZE is the channel buffer of ordinary ports. The batch hand-off
	// port deliberately does not use it; see NewBatchProducer.
	BUFSIZE = 16

	// BatchSize is the number of lines handed to a worker at a time.
	BatchSize = 100

	progressInterval = 100000

	// maxLineBytes bounds a single dump line. Wikidata value literals can
	// run long, well past bufio.Scanner's default limit.
	maxLineBytes = 16 * 1024 * 1024
)

// --------------------------------------------------------------------------------
// BatchProducer
// --------------------------------------------------------------------------------

// BatchProducer reads dump files named on the InFilePath port one at a time,
// groups their lines into batches and hands them off on OutBatch. The line
// counter, the skip window and the interrupted state span the whole run, not
// a single file.
type BatchProducer struct {
	InFilePath chan string
	OutBatch   chan *WorkBatch

	fs      afero.Fs
	skip    uint64
	running *Flag

	total       uint64
	interrupted bool
}

// NewOsBatchProducer returns an initialized BatchProducer reading from the
// OS file system.
func NewOsBatchProducer(skip uint64, running *Flag) *BatchProducer {
	return NewBatchProducer(afero.NewOsFs(), skip, running)
}

// NewBatchProducer returns an initialized BatchProducer reading from the
// afero file system provided as a parameter. OutBatch is unbuffered: the
// hand-off is a rendezvous, so the producer blocks until a worker is free
// and can never run ahead of the pool by more than the batch being built.
func NewBatchProducer(fileSystem afero.Fs, skip uint64, running *Flag) *BatchProducer {
	return &BatchProducer{
		InFilePath: make(chan string, BUFSIZE),
		OutBatch:   make(chan *WorkBatch),
		fs:         fileSystem,
		skip:       skip,
		running:    running,
	}
}

// Run runs the BatchProducer process. Closing OutBatch when the path port
// drains is what tells the worker pool to shut down.
func (p *BatchProducer) Run() {
	defer close(p.OutBatch)

	if p.skip > 0 {
		diag("skipping %d", p.skip)
	}

	for path := range p.InFilePath {
		if p.interrupted {
			diag("skipping %s (interrupted)", path)
			continue
		}
		diag("processing %s", path)
		count := p.produce(path)
		diag("processed %s: %d", path, count)
	}
}

// produce streams one file into batches and returns how many of its lines
// were read.
func (p *BatchProducer) produce(path string) uint64 {
	stream, err := OpenDump(p.fs, path)
	if err != nil {
		log.Fatal(err)
	}
	defer stream.Close()

	sc := bufio.NewScanner(stream)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var fileCount uint64
	lines := make([]string, 0, BatchSize)

	for {
		if !p.running.IsSet() {
			diag("interrupted after %d", p.total)
			p.interrupted = true
			break
		}

		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				log.Fatal(err)
			}
			break
		}
		p.total++
		fileCount++

		skipped := p.total <= p.skip

		if !skipped {
			lines = append(lines, sc.Text())

			if len(lines) == BatchSize {
				p.OutBatch <- NewWorkBatch(lines, p.total)
				lines = make([]string, 0, BatchSize)
			}
		}

		if p.total%progressInterval == 0 {
			if skipped {
				diag("skipped %d", p.total)
			} else {
				diag("%d", p.total)
			}
		}
	}

	if len(lines) > 0 {
		p.OutBatch <- NewWorkBatch(lines, p.total)
	}

	return fileCount
}

// Interrupted reports whether the run was cancelled before all input was
// consumed. Valid once Run has returned.
func (p *BatchProducer) Interrupted() bool {
	return p.interrupted
}

// Total is the number of lines read over the whole run. Valid once Run has
// returned.
func (p *BatchProducer) Total() uint64 {
	return p.total
}
