// Package preserving decides which containers slow or halt food decay.
//
// The preserving table maps tile entity ids to a ratio between 0 (no effect)
// and 100 (decay halted). The icebox is preserving by default; operators can
// add their own containers or weaken the icebox through property sources.
//
// AttachCapabilities is the boundary the host engine calls when it constructs
// a tile entity: matching tiles get a Preserving attached.
package preserving
