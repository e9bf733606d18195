package mimeb64

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelChunkLines is the number of output lines each goroutine of EncodeParallel encodes.
var parallelChunkLines = 1024

// EncodeParallel writes the same output as Encode, using up to workers goroutines.
// If workers <= 0, GOMAXPROCS is used.
//
// src is cut on whole-line boundaries so every chunk starts at column 0 and lands at a
// fixed offset in dst. EncodeParallel returns once every started goroutine has finished.
func EncodeParallel(ctx context.Context, dst, src []byte, workers int) error {
	n := EncodedLen(len(src))
	if len(dst) < n {
		return fmt.Errorf("[mimeb64] %w: need %d bytes, have %d", ErrShortBuffer, n, len(dst))
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	chunkBytes := parallelChunkLines * lineBytes
	chunkSize := parallelChunkLines * lineSize

	if err := ctx.Err(); err != nil {
		return err
	}

	if workers == 1 || len(src) <= chunkBytes {
		encode(dst, src)
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, p := 0, 0; i < len(src); i, p = i+chunkBytes, p+chunkSize {
		if gctx.Err() != nil {
			break
		}

		in := src[i:min(i+chunkBytes, len(src))]
		out := dst[p:min(p+chunkSize, n)]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			encode(out, in)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// Wait cancels gctx, only the parent tells whether the loop stopped early.
	return ctx.Err()
}
