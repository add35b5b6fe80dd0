package components

import (
	"io"
	str "strings"

	"github.com/cockroachdb/errors"
	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/pgzip"
	"github.com/spf13/afero"
)

// --------------------------------------------------------------------------------
// Dump stream opening
// --------------------------------------------------------------------------------

// OpenDump opens a dump file for line-by-line reading, decompressing bz2 and
// gz files by extension. Files with any other extension are read as-is.
func OpenDump(fileSystem afero.Fs, path string) (io.ReadCloser, error) {
	fh, err := fileSystem.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't open file %s", path)
	}

	switch {
	case str.HasSuffix(path, ".bz2"):
		decoder, err := bzip2.NewReader(fh, new(bzip2.ReaderConfig))
		if err != nil {
			fh.Close()
			return nil, errors.Wrapf(err, "can't read bzip2 stream %s", path)
		}
		return &dumpStream{reader: decoder, closers: []io.Closer{decoder, fh}}, nil
	case str.HasSuffix(path, ".gz"):
		decoder, err := pgzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, errors.Wrapf(err, "can't read gzip stream %s", path)
		}
		return &dumpStream{reader: decoder, closers: []io.Closer{decoder, fh}}, nil
	default:
		return fh, nil
	}
}

// dumpStream pairs a decompressing reader with the file underneath it so
// that Close releases both.
type dumpStream struct {
	reader  io.Reader
	closers []io.Closer
}

func (s *dumpStream) Read(p []byte) (int, error) {
	return s.reader.Read(p)
}

func (s *dumpStream) Close() error {
	var firstErr error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
