package rest

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/veldtlabs/genlive/pkg/core/types"
)

// Stream iterates over the chunks of a streamGenerateContent response.
// It is not safe for concurrent use.
type Stream struct {
	reader   *bufio.Reader
	closer   io.Closer
	err      error
	finished bool
}

func newStream(body io.ReadCloser) *Stream {
	return &Stream{
		reader: bufio.NewReader(body),
		closer: body,
	}
}

// Next returns the next response chunk, or io.EOF when the stream is
// complete. Chunks that do not parse are skipped.
func (s *Stream) Next() (*types.GenerateResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.finished {
		return nil, io.EOF
	}

	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				s.finished = true
				return nil, io.EOF
			}
			s.err = err
			return nil, err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// SSE format: "data: <json>"
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		data := strings.TrimPrefix(line, "data: ")
		if data == "[DONE]" || data == "" {
			s.finished = true
			return nil, io.EOF
		}

		var chunk types.GenerateResponse
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			continue
		}
		return &chunk, nil
	}
}

// Close releases resources associated with the stream.
func (s *Stream) Close() error {
	return s.closer.Close()
}
