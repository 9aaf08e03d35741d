// Package engine is the host-side model of the embedded media engine: the closed set of properties
// the player reads and writes, the tagged values exchanged with the engine, the events drained from
// its queue and the frame targets handed to its renderer.  It has no native dependencies; the libmpv
// binding lives in internal/mpv.
package engine
