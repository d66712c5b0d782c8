package speech

import (
	"bytes"
	"errors"
	"io"
)

const chunkSize = 32 << 10

// ChunkStream yields audio chunks in arrival order. It is finite and can
// only be consumed once; Next returns io.EOF after the last chunk and on
// every call after that.
type ChunkStream struct {
	body io.ReadCloser
	buf  []byte
	done bool
	// err is a read failure that arrived with the last chunk.
	err error
}

func NewChunkStream(body io.ReadCloser) *ChunkStream {
	return &ChunkStream{body: body, buf: make([]byte, chunkSize)}
}

// Next returns the next chunk. The slice is only valid until the next call.
func (s *ChunkStream) Next() ([]byte, error) {
	if s.err != nil {
		err := s.err
		s.err = nil
		return nil, err
	}
	if s.done {
		return nil, io.EOF
	}
	for {
		n, err := s.body.Read(s.buf)
		if n > 0 {
			if err != nil {
				// hand out the data now, report the error on the following call
				if !errors.Is(err, io.EOF) {
					s.err = err
				}
				s.finish()
			}
			return s.buf[:n], nil
		}
		if err != nil {
			s.finish()
			return nil, err
		}
	}
}

func (s *ChunkStream) Close() error {
	if s.done {
		return nil
	}
	s.done = true
	return s.body.Close()
}

func (s *ChunkStream) finish() {
	_ = s.Close()
}

// Collect drains s into one buffer and closes it.
func Collect(s *ChunkStream) ([]byte, error) {
	defer s.Close()

	var out bytes.Buffer
	for {
		chunk, err := s.Next()
		if errors.Is(err, io.EOF) {
			return out.Bytes(), nil
		}
		if err != nil {
			return nil, err
		}
		out.Write(chunk)
	}
}
