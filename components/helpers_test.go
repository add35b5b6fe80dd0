package components

import (
	"bufio"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// readBzLines decompresses a finalized bzip2 output file and returns its
// lines. It fails the test if the stream is truncated or unreadable, which
// is how the tests check that shutdown finalized every stream.
func readBzLines(t *testing.T, fs afero.Fs, path string) []string {
	t.Helper()

	fh, err := fs.Open(path)
	require.NoError(t, err)
	defer fh.Close()

	decoder, err := bzip2.NewReader(fh, new(bzip2.ReaderConfig))
	require.NoError(t, err)
	defer decoder.Close()

	var lines []string
	sc := bufio.NewScanner(decoder)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.NoError(t, sc.Err())
	return lines
}

func writeFile(t *testing.T, fs afero.Fs, path string, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
}
