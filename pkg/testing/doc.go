// Package testing provides framebuffer helpers for pixkit tests.
//
// # Snapshot Testing
//
// Capture a region of a buffer and compare it against a golden file:
//
//	snap := pixtest.Capture(fb, icon.Bounds())
//	snap.MatchesFile(t, "testdata/icon.snapshot.json")
//
// Update snapshots with:
//
//	PIXKIT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Write Tracking
//
// [Changes] lists every pixel that differs between two buffers, which is how
// tests check that a widget stayed inside its rectangle:
//
//	before := fb.Clone()
//	icon.Draw()
//	for _, p := range pixtest.Changes(before, fb) {
//	    if !p.In(icon.Bounds()) { ... }
//	}
package testing
