package interfaces

import "mypool/domain"

// LeakDetector recovers pooled connections abandoned by callers that never Release. Each
// leased entry is tracked with a weak-liveness marker tied to the caller-visible
// *domain.PoolEntry; when the caller drops all strong references without releasing, onLeak
// fires with the entry's detached LeakRef and the pool reclaims the connection. Explicit
// Release always untracks first, so the detector is a backstop, not the primary
// reclamation path.
//
// Called by service.poolManager (Track on grant, Untrack on release, Snapshot on shutdown).
//
//go:generate moq -stub -out mock/leak_detector.go -pkg mock . LeakDetector
type LeakDetector interface {
	// Track registers entry with the runtime's reclamation facility. onLeak runs at most once, from a runtime goroutine, when the entry becomes unreachable without a prior Untrack; it must not block.
	// Parameters: entry — the caller-visible lease handle; onLeak — reclamation callback receiving the entry's LeakRef.
	// Called from service.poolManager under its lock when a lease is granted.
	Track(entry *domain.PoolEntry, onLeak func(domain.LeakRef))

	// Untrack stops the marker for id and forgets it. No-op for unknown ids (already reclaimed or never tracked).
	// Called from service.poolManager.Release and from the reclamation path itself.
	Untrack(id string)

	// Snapshot returns the LeakRefs of all currently tracked (leased, unreleased) entries.
	// Called from service.poolManager.Shutdown to close in-flight connections.
	Snapshot() []domain.LeakRef

	// Close stops all markers and forgets them; further Track calls are ignored. Idempotent.
	// Called from service.poolManager.Shutdown.
	Close()
}
