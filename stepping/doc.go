// Package stepping implements the bucket-frontier shortest-path engine:
// delta-stepping for a finite bucket width and radius-stepping for an
// unbounded one.
//
// The engine keeps a frontier of active vertices and an open distance window
// [lo, bound). Each phase relaxes every frontier vertex concurrently against
// a shared distance.Store; improved neighbors still inside the window form
// the next frontier, collected through a frontier.Builder and adopted only
// after the phase barrier. When a window drains, one O(V) rescan opens the
// next window that actually holds a vertex, so empty windows are skipped.
//
// Example:
//
//	g, _ := core.FromTriples([][3]int64{{0, 1, 2}, {1, 2, 3}})
//	eng, _ := stepping.New(g, 0)
//	if _, err := eng.Run(ctx, 4, 0); err != nil { ... }
//	dist := eng.Distances() // [0 2 5]
//
// Concurrency: a Run uses a workpool.Pool of the requested size; size 1 is
// strictly sequential. Results do not depend on the parallelism, only the
// relaxation counts do. Runs on one Engine are serialized.
package stepping
