package vtcore

import (
	"sync"
	"time"
)

// chunkSize is the capacity of a freshly allocated chunk. Chosen to cover
// a typical PTY read (a handful of KB) without the pool handing out chunks
// so large that a trickle of single-byte writes wastes most of one.
const chunkSize = 4096

// chunk is one link of the incoming byte queue. Chunks are never
// individually garbage collected during steady-state operation: Feed pulls
// them from the pool and ProcessIncoming returns them once drained.
type chunk struct {
	buf []byte
}

// chunkPool is a free list of chunks, shared process-wide so that many
// terminals ingesting bursty PTY output don't each pay allocator overhead
// for their own pool. Safe for concurrent use.
type chunkPool struct {
	mu   sync.Mutex
	free []*chunk
}

var globalChunkPool = &chunkPool{}

// acquire returns a chunk with an empty, reusable buffer.
func (p *chunkPool) acquire() *chunk {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n := len(p.free); n > 0 {
		c := p.free[n-1]
		p.free = p.free[:n-1]
		c.buf = c.buf[:0]
		return c
	}
	return &chunk{buf: make([]byte, 0, chunkSize)}
}

// release returns a chunk to the pool for reuse.
func (p *chunkPool) release(c *chunk) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free = append(p.free, c)
}

// prune drops free chunks beyond keepN, letting the garbage collector
// reclaim memory after a burst subsides instead of holding it forever.
func (p *chunkPool) prune(keepN int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.free) > keepN {
		p.free = p.free[:keepN]
	}
}

// boundingBox tracks the smallest rectangle covering cells modified during
// the current processing pass, so a consumer can invalidate one region
// instead of the whole grid after a burst of output.
type boundingBox struct {
	valid         bool
	top, left     int
	bottom, right int
}

func (b *boundingBox) reset() {
	b.valid = false
}

// expand grows the box to include (row, col), or starts a new one if
// empty.
func (b *boundingBox) expand(row, col int) {
	if !b.valid {
		b.top, b.left, b.bottom, b.right = row, col, row, col
		b.valid = true
		return
	}
	if row < b.top {
		b.top = row
	}
	if row > b.bottom {
		b.bottom = row
	}
	if col < b.left {
		b.left = col
	}
	if col > b.right {
		b.right = col
	}
}

// boundingBoxSlack is the margin (in cells) a new cursor position may fall
// outside the accumulated box before the box is discarded and restarted,
// so one long-range cursor jump doesn't force a full-grid invalidation.
const boundingBoxSlack = 4

// noteCursorMove lets the accumulated box be discarded and restarted when
// the cursor jumps far outside it, per the spec's bounding-box policy.
func (b *boundingBox) noteCursorMove(row, col int) {
	if !b.valid {
		return
	}
	if row < b.top-boundingBoxSlack || row > b.bottom+boundingBoxSlack ||
		col < b.left-boundingBoxSlack || col > b.right+boundingBoxSlack {
		b.reset()
	}
}

// Feed appends bytes to the incoming queue without decoding or dispatching
// them. It never blocks and is safe to call from any goroutine that also
// serializes calls to ProcessIncoming; no sequence handler runs as a
// side effect of Feed itself.
func (t *Terminal) Feed(data []byte) {
	if len(data) == 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.recordingProvider.Record(data)

	for len(data) > 0 {
		if t.incomingTail == nil || len(t.incomingTail.buf) == cap(t.incomingTail.buf) {
			c := globalChunkPool.acquire()
			t.incomingChunks = append(t.incomingChunks, c)
			t.incomingTail = c
		}
		room := cap(t.incomingTail.buf) - len(t.incomingTail.buf)
		n := len(data)
		if n > room {
			n = room
		}
		t.incomingTail.buf = append(t.incomingTail.buf, data[:n]...)
		data = data[n:]
	}
}

// FeedAsync is equivalent to Feed: the pipeline already defers decoding to
// ProcessIncoming, so there is no separate "async" code path to schedule.
// It exists so callers written against a cooperative-scheduling surface
// (post bytes now, drain on the next tick) have a name that matches their
// mental model.
func (t *Terminal) FeedAsync(data []byte) {
	t.Feed(data)
}

// ProcessIncoming drains the queued chunks through the decoder, honoring a
// per-call byte budget so one terminal cannot starve others sharing the
// same scheduler tick. It returns the number of bytes actually processed;
// a return value less than the queued total means bytes remain queued for
// the next call.
func (t *Terminal) ProcessIncoming() int {
	t.mu.Lock()
	chunks := t.incomingChunks
	t.incomingChunks = nil
	t.incomingTail = nil
	budget := t.inputBudget()
	t.mu.Unlock()

	if len(chunks) == 0 {
		return 0
	}

	start := time.Now()
	processed := 0
	box := &t.dirtyBox

	for i, c := range chunks {
		data := c.buf
		if budget > 0 && processed+len(data) > budget {
			data = data[:budget-processed]
		}
		if len(data) > 0 {
			n, _ := t.decoder.Write(data)
			processed += n
			t.mu.Lock()
			box.noteCursorMove(t.cursor.Row, t.cursor.Col)
			for _, pos := range t.activeBuffer.DirtyCells() {
				box.expand(pos.Row, pos.Col)
			}
			t.mu.Unlock()
		}

		if len(data) < len(c.buf) {
			// Budget exhausted mid-chunk: requeue the remainder.
			remainder := globalChunkPool.acquire()
			remainder.buf = append(remainder.buf[:0], c.buf[len(data):]...)
			t.mu.Lock()
			t.incomingChunks = append([]*chunk{remainder}, append(t.incomingChunks, chunks[i+1:]...)...)
			t.mu.Unlock()
			globalChunkPool.release(c)
			break
		}
		globalChunkPool.release(c)
	}

	t.mu.Lock()
	t.lastProcessDuration = time.Since(start)
	t.adjustInputBudgetLocked()
	t.mu.Unlock()

	globalChunkPool.prune(64)
	return processed
}

// targetProcessDuration is the wall-clock time ProcessIncoming aims to
// stay under per call, giving the core a soft ~40Hz processing cadence
// even under heavy PTY output.
const targetProcessDuration = 25 * time.Millisecond

const (
	minInputBudget     = 4 * 1024
	maxInputBudgetCap  = 4 * 1024 * 1024
	defaultInputBudget = 256 * 1024
)

// inputBudget returns the current per-call byte budget. Caller must hold
// t.mu.
func (t *Terminal) inputBudget() int {
	if t.maxInputBytes <= 0 {
		return defaultInputBudget
	}
	return t.maxInputBytes
}

// adjustInputBudgetLocked nudges maxInputBytes toward keeping
// ProcessIncoming's wall time near targetProcessDuration: a pass that ran
// long shrinks the next budget, a pass well under target grows it. Caller
// must hold t.mu.
func (t *Terminal) adjustInputBudgetLocked() {
	current := t.inputBudget()
	if t.lastProcessDuration <= 0 {
		return
	}
	switch {
	case t.lastProcessDuration > targetProcessDuration*2:
		current /= 2
	case t.lastProcessDuration > targetProcessDuration:
		current = current * 9 / 10
	case t.lastProcessDuration < targetProcessDuration/2:
		current = current * 12 / 10
	}
	if current < minInputBudget {
		current = minInputBudget
	}
	if current > maxInputBudgetCap {
		current = maxInputBudgetCap
	}
	t.maxInputBytes = current
}

// SetMaxInputBytes overrides the adaptive per-call processing budget. A
// value <= 0 restores adaptive behavior from the default.
func (t *Terminal) SetMaxInputBytes(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.maxInputBytes = n
}

// DirtyBoundingBox returns the accumulated invalidation rectangle from the
// most recent ProcessIncoming pass(es) since the last ClearDirtyBoundingBox
// call, and whether anything has been recorded.
func (t *Terminal) DirtyBoundingBox() (top, left, bottom, right int, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dirtyBox.top, t.dirtyBox.left, t.dirtyBox.bottom, t.dirtyBox.right, t.dirtyBox.valid
}

// ClearDirtyBoundingBox resets the accumulated invalidation rectangle.
func (t *Terminal) ClearDirtyBoundingBox() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dirtyBox.reset()
}
