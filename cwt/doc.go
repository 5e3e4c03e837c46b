// Package cwt assembles continuous wavelet transform output into structured
// results: it deinterleaves the raw real/imaginary buffer, derives modulus and
// phase, generates the frequency and time axes that label the matrix rows and
// columns, resolves frequency ranges to row indices and resamples along time.
package cwt
