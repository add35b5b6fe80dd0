package components

import (
	"bufio"
	"io"
	"log"

	"github.com/dsnet/compress/bzip2"
	"github.com/spf13/afero"
)

// --------------------------------------------------------------------------------
// shardWriter
// --------------------------------------------------------------------------------

// shardWriter writes lines into a bzip2-compressed file. Every output file
// of the run (statement shards, label files, merged counts) goes through
// one of these.
type shardWriter struct {
	file afero.File
	buf  *bufio.Writer
	bz   *bzip2.Writer
}

func newShardWriter(fileSystem afero.Fs, path string) *shardWriter {
	fh, err := fileSystem.Create(path)
	if err != nil {
		log.Fatalf("unable to create file %s: %v", path, err)
	}
	buf := bufio.NewWriter(fh)
	bz, err := bzip2.NewWriter(buf, &bzip2.WriterConfig{Level: bzip2.BestCompression})
	if err != nil {
		log.Fatalf("unable to open bzip2 stream to %s: %v", path, err)
	}
	return &shardWriter{file: fh, buf: buf, bz: bz}
}

// WriteLine writes one line plus its newline into the compressed stream.
func (w *shardWriter) WriteLine(line string) {
	if _, err := io.WriteString(w.bz, line); err != nil {
		log.Fatal(err)
	}
	if _, err := io.WriteString(w.bz, "\n"); err != nil {
		log.Fatal(err)
	}
}

// Flush pushes completed compressed blocks through the buffered layer to
// the file. The bzip2 encoder itself holds on to its current block until it
// is full or the stream is closed.
func (w *shardWriter) Flush() {
	if err := w.buf.Flush(); err != nil {
		log.Fatal(err)
	}
}

// Close finalizes the compressed stream and the file underneath it. Only
// after Close is the file a complete, readable bzip2 stream.
func (w *shardWriter) Close() {
	if err := w.bz.Close(); err != nil {
		log.Fatal(err)
	}
	if err := w.buf.Flush(); err != nil {
		log.Fatal(err)
	}
	if err := w.file.Close(); err != nil {
		log.Fatal(err)
	}
}
