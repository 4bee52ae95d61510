// Package framesource provides concrete vamrgb.FrameSource
// implementations.
//
// The composition core treats frame acquisition as an opaque read
// service; this package supplies three services behind that contract:
//
//   - Synthetic: a procedural video whose pixels are a pure function of
//     (t, x, y). Deterministic, allocation-only, useful for tests and
//     demos.
//   - Stills: an explicit list of keyframes with
//     nearest-at-or-before lookup. The unit-test workhorse.
//   - ImageSequence: a directory of still images interpreted as a
//     fixed-fps clip, decoded on demand.
//
// All three are safe for concurrent reads: Synthetic and Stills are
// immutable after construction, and ImageSequence performs stateless
// per-call decoding.
//
// Video codec decoding is out of scope; a caller bridging a real video
// container supplies its own FrameSource implementation.
package framesource
