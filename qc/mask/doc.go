// Package mask implements quality-control masks over sampled series.
//
// A [Mask] pairs the [Def] it was produced with and a [segment.Set] of bad
// sample ranges. Operations cover the whole mask life cycle: extracting the
// part of a mask that falls into a window ([Mask.Interval]) and shifting it
// back ([Mask.Offset]), combining masks ([Merge]), statistics over unmasked
// data ([Mask.Mean], [Mask.Demean]), and destructive repairs of the masked
// data ([Mask.Taper], [Mask.Fix], [FixSegments]).
//
// Masks are plain values owned by the caller. Offset, Add and Taper mutate
// in place; use [Mask.Copy] before sharing one.
package mask
