package game

import (
	"bufio"
	"context"
	"io"
)

// LineReader reads one line of player input.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

type lineResult struct {
	text string
	err  error
}

// StreamReader reads lines from an io.Reader in a background goroutine so
// that ReadLine can honor context cancellation.
type StreamReader struct {
	lines chan lineResult
}

// NewStreamReader starts scanning r.
func NewStreamReader(r io.Reader) *StreamReader {
	s := &StreamReader{lines: make(chan lineResult)}
	go s.scan(r)
	return s
}

func (s *StreamReader) scan(r io.Reader) {
	defer close(s.lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s.lines <- lineResult{text: scanner.Text()}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	s.lines <- lineResult{err: err}
}

// ReadLine implements LineReader.
func (s *StreamReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}

// ChanReader reads lines submitted on a channel. A closed channel reads as
// io.EOF.
type ChanReader struct {
	lines <-chan string
}

// NewChanReader wraps lines.
func NewChanReader(lines <-chan string) *ChanReader {
	return &ChanReader{lines: lines}
}

// ReadLine implements LineReader.
func (c *ChanReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

// LineTrigger stops the counter when the player submits a line.
type LineTrigger struct {
	Reader LineReader
}

// Wait implements turn.StopTrigger.
func (t LineTrigger) Wait(ctx context.Context) error {
	_, err := t.Reader.ReadLine(ctx)
	return err
}
