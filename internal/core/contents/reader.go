// Package contents parses Debian Contents indices and ranks packages by the number of files they ship
//
// A Contents file is gzip-compressed text. Each well-formed line carries two whitespace-separated
// fields, a file path and a comma-separated list of qualified package names ([area/]name).
// Lines of any other shape are skipped without error, the archive format documents that
// such lines may appear.
package contents

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	perr "pkgstats/internal/platform/errors"

	"github.com/klauspost/compress/gzip"
)

const maxLineSize = 1 << 20

// Reader streams package-list fields from a gzip-compressed Contents file
type Reader struct {
	gz      *gzip.Reader
	br      *bufio.Reader
	err     error
	lines   int
	records int
	bytes   int64
}

// NewReader wraps r in a gzip decoder. A stream that does not start with a gzip header
// fails with a DecompressionError
func NewReader(r io.Reader) (*Reader, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, perr.Decompression(err, "contents: open gzip stream")
	}
	return &Reader{gz: gz, br: bufio.NewReaderSize(gz, maxLineSize)}, nil
}

// Next returns the package-list field of the next well-formed record; io.EOF when done.
// Malformed lines, including lines longer than the read buffer, are skipped
func (rd *Reader) Next() (string, error) {
	if rd.err != nil {
		return "", rd.err
	}
	for {
		line, err := rd.br.ReadSlice('\n')
		rd.bytes += int64(len(line))
		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			rd.lines++
			if err := rd.discardLine(); err != nil {
				return "", rd.fail(err)
			}
			continue
		case errors.Is(err, io.EOF):
			if len(line) == 0 {
				rd.err = io.EOF
				return "", io.EOF
			}
			// last line without a trailing newline, the next read reports EOF again
		case err != nil:
			return "", rd.fail(err)
		}

		rd.lines++
		if list, ok := packageField(line); ok {
			rd.records++
			return list, nil
		}
	}
}

// discardLine drops the rest of an over-long line
func (rd *Reader) discardLine() error {
	for {
		rest, err := rd.br.ReadSlice('\n')
		rd.bytes += int64(len(rest))
		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case err == nil, errors.Is(err, io.EOF):
			return nil
		default:
			return err
		}
	}
}

func (rd *Reader) fail(err error) error {
	rd.err = perr.Decompression(err, "contents: read gzip stream")
	return rd.err
}

// Close releases the gzip decoder. The underlying reader is owned by the caller
func (rd *Reader) Close() error {
	if rd.gz == nil {
		return nil
	}
	return rd.gz.Close()
}

// Stats returns lines seen, well-formed records returned and uncompressed bytes read so far
func (rd *Reader) Stats() (lines, records int, bytes int64) {
	return rd.lines, rd.records, rd.bytes
}

// packageField splits a line on runs of whitespace and returns field 1 when there are exactly two
func packageField(line []byte) (string, bool) {
	fields := bytes.Fields(line)
	if len(fields) != 2 {
		return "", false
	}
	return string(fields[1]), true
}
