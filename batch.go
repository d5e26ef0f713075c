package abiencode

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Batch encodes an ordered list of invocations.
type Batch struct {
	invocations []*Invocation
	cfg         *batchConfig
}

// NewBatch creates an empty Batch with the given options.
func NewBatch(opts ...BatchOption) *Batch {
	cfg := defaultBatchConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.encoder == nil {
		cfg.encoder = defaultEncoder
	}
	return &Batch{
		invocations: make([]*Invocation, 0, 8),
		cfg:         cfg,
	}
}

// Add appends inv and returns its index.
func (b *Batch) Add(inv *Invocation) int {
	b.invocations = append(b.invocations, inv)
	return len(b.invocations) - 1
}

// Len returns the number of invocations in the batch.
func (b *Batch) Len() int {
	return len(b.invocations)
}

// At returns the invocation at the given index, or nil.
func (b *Batch) At(i int) *Invocation {
	if i < 0 || i >= len(b.invocations) {
		return nil
	}
	return b.invocations[i]
}

// ForEach iterates over the invocations in order.
// Return false from fn to stop iteration.
func (b *Batch) ForEach(fn func(int, *Invocation) bool) {
	for i, inv := range b.invocations {
		if !fn(i, inv) {
			return
		}
	}
}

// Result is the encoding of one invocation.
type Result struct {
	Index int
	Name  string
	Data  []byte
}

// Hex returns the 0x-prefixed hex form of the encoding.
func (r Result) Hex() string {
	return defaultEncoder.formatHex(r.Data)
}

// Words returns the encoding split into 32-byte words.
func (r Result) Words() [][WordSize]byte {
	return Words(r.Data)
}

// Encode encodes every invocation, up to the configured concurrency at a
// time, and returns results in insertion order. If any invocation fails the
// remaining work is cancelled and, of the invocations that ran, the failure
// with the lowest index is returned as an *InvocationError.
func (b *Batch) Encode(ctx context.Context) ([]Result, error) {
	results := make([]Result, len(b.invocations))
	errs := make([]error, len(b.invocations))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.concurrency)

	for i, inv := range b.invocations {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := b.cfg.encoder.EncodeInvocation(inv)
			if err != nil {
				errs[i] = &InvocationError{Index: i, Name: inv.name, Err: err}
				return errs[i]
			}
			results[i] = Result{Index: i, Name: inv.name, Data: data}
			return nil
		})
	}

	werr := g.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if werr != nil {
		return nil, werr
	}
	return results, nil
}
