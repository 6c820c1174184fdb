package vtcore

import "testing"

func TestFeedThenProcessIncomingAppliesBytes(t *testing.T) {
	term := New(WithSize(5, 20))

	term.Feed([]byte("hello"))
	n := term.ProcessIncoming()

	if n != 5 {
		t.Errorf("expected 5 bytes processed, got %d", n)
	}
	if got := term.LineContent(0); got != "hello" {
		t.Errorf("expected %q, got %q", "hello", got)
	}
}

func TestFeedDoesNotProcessSynchronously(t *testing.T) {
	term := New(WithSize(5, 20))

	term.Feed([]byte("hello"))

	if got := term.LineContent(0); got != "" {
		t.Errorf("expected Feed alone to leave the grid untouched, got %q", got)
	}
}

func TestWriteIsSynchronousFeedAndProcess(t *testing.T) {
	term := New(WithSize(5, 20))

	n, err := term.Write([]byte("hi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 bytes written, got %d", n)
	}
	if got := term.LineContent(0); got != "hi" {
		t.Errorf("expected %q, got %q", "hi", got)
	}
}

func TestFeedAcrossMultipleChunksSpansChunkBoundary(t *testing.T) {
	term := New(WithSize(5, 20))

	big := make([]byte, chunkSize+10)
	for i := range big {
		big[i] = 'a'
	}

	term.Feed(big)
	n := term.ProcessIncoming()

	if n != len(big) {
		t.Errorf("expected %d bytes processed, got %d", len(big), n)
	}
}

func TestChunkPoolAcquireReleaseReuse(t *testing.T) {
	pool := &chunkPool{}

	c1 := pool.acquire()
	c1.buf = append(c1.buf, 'x')
	pool.release(c1)

	c2 := pool.acquire()
	if len(c2.buf) != 0 {
		t.Errorf("expected reused chunk to be reset to empty, got len %d", len(c2.buf))
	}
}

func TestChunkPoolPrune(t *testing.T) {
	pool := &chunkPool{}
	for i := 0; i < 10; i++ {
		pool.release(pool.acquire())
	}

	pool.prune(2)
	if len(pool.free) != 2 {
		t.Errorf("expected 2 free chunks after prune, got %d", len(pool.free))
	}
}

func TestBoundingBoxExpandAndSlack(t *testing.T) {
	var box boundingBox
	box.expand(2, 2)
	box.expand(3, 4)

	if box.top != 2 || box.left != 2 || box.bottom != 3 || box.right != 4 {
		t.Errorf("unexpected box bounds: %+v", box)
	}

	box.noteCursorMove(2, 3)
	if !box.valid {
		t.Error("expected box to survive a cursor move within slack")
	}

	box.noteCursorMove(50, 50)
	if box.valid {
		t.Error("expected box to reset on a far cursor jump")
	}
}

func TestDirtyBoundingBoxTracksWrites(t *testing.T) {
	term := New(WithSize(5, 20))
	term.ClearDirtyBoundingBox()

	term.WriteString("hi")

	_, _, _, _, ok := term.DirtyBoundingBox()
	if !ok {
		t.Error("expected dirty bounding box to be populated after a write")
	}
}
