// Package bitrounding implements the core of a lossy floating-point
// compression preprocessor for scientific array data. For each Field (or
// each 2-D Slice of a higher-rank Field) it computes the number of
// significant mantissa bits (NSB) that preserve a configured fraction of
// the bitwise mutual-information content between neighboring samples,
// then rewrites the Field in place by clearing the discarded low bits
// with round-to-nearest, ties-away-from-zero rounding in unsigned
// bit-integer space.
//
// The rewritten Field remains a valid IEEE-754 binary32 array but
// compresses substantially better under a downstream lossless codec
// (deflate plus byte-shuffle, applied outside this package). Reading and
// writing the array from its container (NetCDF/HDF5 or otherwise) is
// not this package's concern: callers deliver a contiguous []float32
// buffer and get the same buffer back, mutated in place.
package bitrounding
