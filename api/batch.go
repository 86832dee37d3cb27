package api

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency caps the number of in-flight batch requests
const DefaultBatchConcurrency = 8

// BatchRequest is one entry of a Batch call
type BatchRequest struct {
	Method   string `json:"method" yaml:"method"`
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	Body     Value  `json:"body,omitempty" yaml:"body,omitempty"`
}

// BatchResult holds the outcome of the BatchRequest at the same index
type BatchResult struct {
	Request BatchRequest
	Value   Value
	Err     error
}

// Batch sends every request and waits for all of them. Results keep the
// order of requests; a failed request does not stop the others. onDone, if
// not nil, is called once per finished request from the worker goroutine.
func (c *Client) Batch(ctx context.Context, requests []BatchRequest, onDone func(BatchResult)) []BatchResult {
	results := make([]BatchResult, len(requests))

	var g errgroup.Group
	g.SetLimit(DefaultBatchConcurrency)

	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			value, err := c.Request(ctx, req.Method, req.Endpoint, req.Body)
			results[i] = BatchResult{Request: req, Value: value, Err: err}
			if onDone != nil {
				onDone(results[i])
			}
			return nil
		})
	}

	_ = g.Wait()
	return results
}
