// ABOUTME: StdinBuffer reads raw bytes from an io.Reader and forwards each chunk to a sink.
// ABOUTME: Reads are cancellable through muesli/cancelreader so Start returns promptly on ctx.Done.

package input

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mauromedda/keyprobe/internal/log"
	"github.com/muesli/cancelreader"
)

const readBufSize = 256

// StdinBuffer reads from a reader and writes every chunk it receives to sink,
// typically a Pipeline.
type StdinBuffer struct {
	reader io.Reader
	sink   io.Writer
}

// NewStdinBuffer creates a StdinBuffer that reads from r and writes to sink.
func NewStdinBuffer(r io.Reader, sink io.Writer) *StdinBuffer {
	return &StdinBuffer{reader: r, sink: sink}
}

// Start reads until ctx is cancelled or the reader is exhausted. It blocks;
// EOF and cancellation return nil, other read or sink errors are returned.
func (b *StdinBuffer) Start(ctx context.Context) error {
	cr, err := cancelreader.NewReader(b.reader)
	if err != nil {
		// Regular files cannot be polled; read them without cancellation.
		log.Debug("input reader is not cancellable: %v", err)
		cr = uncancellable{b.reader}
	}
	defer cr.Close()

	errCh := make(chan error, 1)
	go func() {
		errCh <- b.readLoop(cr)
	}()

	select {
	case <-ctx.Done():
		if cr.Cancel() {
			<-errCh
		}
		return nil
	case err := <-errCh:
		return err
	}
}

// readLoop copies chunks from r to the sink until r fails.
func (b *StdinBuffer) readLoop(r io.Reader) error {
	tmp := make([]byte, readBufSize)
	for {
		n, err := r.Read(tmp)
		if n > 0 {
			if _, werr := b.sink.Write(tmp[:n]); werr != nil {
				return fmt.Errorf("forwarding input: %w", werr)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, cancelreader.ErrCanceled) {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}
	}
}

// uncancellable adapts a plain reader to cancelreader.CancelReader.
type uncancellable struct {
	io.Reader
}

func (uncancellable) Cancel() bool { return false }
func (uncancellable) Close() error { return nil }
