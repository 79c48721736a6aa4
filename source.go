package tga

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// source is the readable, seekable byte stream a decoder consumes.
// Offsets are relative to the position of the reader when the source was created.
//
// When the underlying reader is an io.ReadSeeker the stream size is known and seeks
// are delegated. Any other reader (pipes, decompressors, image.Decode's buffered reader)
// is consumed forward-only, and forward seeks discard bytes.
type source struct {
	r    io.Reader
	rs   io.ReadSeeker // nil for forward-only streams.
	base int64         // Absolute offset of position 0 in rs.
	pos  int64         // Current position relative to base.
	size int64         // Stream length relative to base, -1 if unknown.
}

// newSource wraps r. A reader that implements io.Seeker but fails to seek
// (for example os.Stdin attached to a pipe) is treated as forward-only.
func newSource(r io.Reader) *source {
	s := &source{r: r, size: -1}

	rs, ok := r.(io.ReadSeeker)
	if !ok {
		return s
	}

	cur, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return s
	}

	end, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return s
	}

	if _, err := rs.Seek(cur, io.SeekStart); err != nil {
		return s
	}

	s.rs = rs
	s.base = cur
	s.size = end - cur

	return s
}

// remaining returns the number of unread bytes, or -1 if unknown.
func (s *source) remaining() int64 {
	if s.size < 0 {
		return -1
	}

	if s.pos >= s.size {
		return 0
	}

	return s.size - s.pos
}

// seek moves the cursor to the absolute offset abs.
func (s *source) seek(abs int64) error {
	if abs < 0 {
		return fmt.Errorf("%w: seek to negative offset %d", ErrMalformedHeader, abs)
	}

	if s.rs == nil {
		if abs < s.pos {
			return fmt.Errorf("%w: backward seek to %d on a forward-only stream", ErrMalformedHeader, abs)
		}

		return s.discard(abs - s.pos)
	}

	if abs > s.size {
		return fmt.Errorf("%w: seek to %d beyond end of stream (%d bytes)", ErrMalformedHeader, abs, s.size)
	}

	if _, err := s.rs.Seek(s.base+abs, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedHeader, err)
	}

	s.pos = abs

	return nil
}

// skip moves the cursor n bytes forward.
func (s *source) skip(n int64) error {
	return s.seek(s.pos + n)
}

func (s *source) discard(n int64) error {
	copied, err := io.CopyN(io.Discard, s.r, n)
	s.pos += copied
	if err != nil {
		if err == io.EOF {
			return fmt.Errorf("%w: seek beyond end of stream at %d", ErrMalformedHeader, s.pos)
		}

		return fmt.Errorf("%w: %w", ErrMalformedHeader, err)
	}

	return nil
}

// readFull reads exactly len(p) bytes. It returns io.ErrUnexpectedEOF or io.EOF
// like io.ReadFull when fewer bytes are available.
func (s *source) readFull(p []byte) error {
	n, err := io.ReadFull(s.r, p)
	s.pos += int64(n)

	return err
}

// readPayload reads exactly size bytes into a newly allocated buffer.
// A short stream is reported as ErrTruncatedData and no buffer is returned.
func (s *source) readPayload(size int64) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}

	if size > math.MaxInt {
		return nil, fmt.Errorf("%w: payload of %d bytes does not fit in memory", ErrUnsupportedFormat, size)
	}

	// Known size, reject before allocating.
	if rem := s.remaining(); rem >= 0 {
		if rem < size {
			return nil, fmt.Errorf("%w: need %d bytes, %d available", ErrTruncatedData, size, rem)
		}

		buf := make([]byte, size)
		if err := s.readFull(buf); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTruncatedData, err)
		}

		return buf, nil
	}

	// Unknown size, grow as data arrives so a short stream never forces the full allocation.
	var buf bytes.Buffer
	n, err := io.CopyN(&buf, s.r, size)
	s.pos += n
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: need %d bytes, %d available", ErrTruncatedData, size, n)
		}

		return nil, fmt.Errorf("%w: %w", ErrTruncatedData, err)
	}

	return buf.Bytes(), nil
}
