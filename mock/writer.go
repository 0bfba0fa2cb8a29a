package mock

import (
	"context"

	"github.com/fwojciec/readview"
)

var _ readview.OutputWriter = (*OutputWriter)(nil)

// OutputWriter is a mock implementation of readview.OutputWriter.
type OutputWriter struct {
	WriteOutputFn func(ctx context.Context, out *readview.Output) error
}

func (w *OutputWriter) WriteOutput(ctx context.Context, out *readview.Output) error {
	return w.WriteOutputFn(ctx, out)
}
