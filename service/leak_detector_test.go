package service

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"mypool/domain"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLeakDetector_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "service.leak_detector.go: logger is required", func() {
		NewLeakDetector(nil)
	})
}

func TestLeakDetector_Snapshot(t *testing.T) {
	t.Run("reports_tracked_entries", func(t *testing.T) {
		d := NewLeakDetector(log.NewNopLogger())
		defer d.Close()

		conn := &stubConn{}
		entry := &domain.PoolEntry{ID: "e1", Route: routeTo("a"), Conn: conn}
		d.Track(entry, func(domain.LeakRef) {})

		refs := d.Snapshot()
		require.Len(t, refs, 1)
		assert.Equal(t, "e1", refs[0].ID)
		assert.Equal(t, routeTo("a"), refs[0].Route)
		assert.Same(t, conn, refs[0].Conn.(*stubConn))
		runtime.KeepAlive(entry)
	})

	t.Run("empty_after_untrack", func(t *testing.T) {
		d := NewLeakDetector(log.NewNopLogger())
		defer d.Close()

		entry := &domain.PoolEntry{ID: "e1", Route: routeTo("a"), Conn: &stubConn{}}
		d.Track(entry, func(domain.LeakRef) {})
		d.Untrack("e1")
		assert.Empty(t, d.Snapshot())
		runtime.KeepAlive(entry)
	})

	t.Run("untrack_unknown_id_is_noop", func(t *testing.T) {
		d := NewLeakDetector(log.NewNopLogger())
		defer d.Close()
		d.Untrack("nope")
		assert.Empty(t, d.Snapshot())
	})
}

func TestLeakDetector_Track(t *testing.T) {
	t.Run("fires_for_abandoned_entry", func(t *testing.T) {
		d := NewLeakDetector(log.NewNopLogger())
		defer d.Close()

		var fired atomic.Int32
		var got atomic.Value
		leak := func() {
			entry := &domain.PoolEntry{ID: "e1", Route: routeTo("a"), Conn: &stubConn{}}
			d.Track(entry, func(ref domain.LeakRef) {
				got.Store(ref)
				fired.Add(1)
			})
			// entry goes out of scope unreleased.
		}
		leak()

		require.Eventually(t, func() bool {
			runtime.GC()
			return fired.Load() == 1
		}, 5*time.Second, 50*time.Millisecond, "cleanup did not run after the entry became unreachable")

		ref := got.Load().(domain.LeakRef)
		assert.Equal(t, "e1", ref.ID)
		assert.Equal(t, routeTo("a"), ref.Route)
		assert.Empty(t, d.Snapshot(), "fired marker is removed from the pending set")
	})

	t.Run("does_not_fire_for_untracked_entry", func(t *testing.T) {
		d := NewLeakDetector(log.NewNopLogger())
		defer d.Close()

		var fired atomic.Int32
		leak := func() {
			entry := &domain.PoolEntry{ID: "e1", Route: routeTo("a"), Conn: &stubConn{}}
			d.Track(entry, func(domain.LeakRef) { fired.Add(1) })
			d.Untrack(entry.ID)
		}
		leak()

		for i := 0; i < 3; i++ {
			runtime.GC()
			time.Sleep(20 * time.Millisecond)
		}
		assert.Zero(t, fired.Load())
	})

	t.Run("noop_after_close", func(t *testing.T) {
		d := NewLeakDetector(log.NewNopLogger())
		d.Close()
		entry := &domain.PoolEntry{ID: "e1", Route: routeTo("a"), Conn: &stubConn{}}
		d.Track(entry, func(domain.LeakRef) { t.Error("tracked after close") })
		assert.Empty(t, d.Snapshot())
		runtime.KeepAlive(entry)
	})
}

func TestLeakDetector_Close(t *testing.T) {
	t.Run("stops_pending_markers", func(t *testing.T) {
		d := NewLeakDetector(log.NewNopLogger())
		var fired atomic.Int32
		leak := func() {
			entry := &domain.PoolEntry{ID: "e1", Route: routeTo("a"), Conn: &stubConn{}}
			d.Track(entry, func(domain.LeakRef) { fired.Add(1) })
		}
		leak()
		d.Close()

		for i := 0; i < 3; i++ {
			runtime.GC()
			time.Sleep(20 * time.Millisecond)
		}
		assert.Zero(t, fired.Load())
	})

	t.Run("idempotent", func(t *testing.T) {
		d := NewLeakDetector(log.NewNopLogger())
		d.Close()
		d.Close()
	})
}
