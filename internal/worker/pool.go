// Package worker provides a worker pool for parallel FEN conversion.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/dwheaton/fencode/internal/fen"
)

// WorkItem represents one line of FEN text to be converted.
type WorkItem struct {
	Line   string
	Source string // Input source name for error reporting
	Index  int    // 1-based line number within the source
}

// ConvertResult represents the result of converting one line.
type ConvertResult struct {
	Source    string
	Index     int
	Record    fen.Record
	Canonical string // Canonical re-encoding of the placement field
	Err       error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ConvertResult

// Convert is the standard process function: it parses a FEN record (or a
// bare placement field) and re-encodes the placement canonically.
func Convert(item WorkItem) ConvertResult {
	res := ConvertResult{Source: item.Source, Index: item.Index}

	rec, err := fen.ParseRecord(item.Line)
	if err != nil {
		res.Err = err
		return res
	}

	res.Record = rec
	res.Canonical = fen.Encode(rec.Board)
	return res
}

// Pool manages a pool of workers for parallel line conversion.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ConvertResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool. processFunc is required; other
// settings have sensible defaults (1 worker, buffer size of 10).
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ConvertResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers
// are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading converted results.
func (p *Pool) Results() <-chan ConvertResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
