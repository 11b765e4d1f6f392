// Package outlier suppresses impulsive samples with a two-stage pipeline:
// a detector marks suspected outliers in a boolean mask, then an
// interpolator replaces only the marked samples.
//
// Three detectors are available (windowed MAD, global z-score, adaptive
// local threshold) and four interpolators (linear, windowed median,
// autoregressive, spline). The spline interpolator is a declared alias of
// the linear one; no cubic spline is implemented.
//
// The detection stage is exposed separately through
// [Filter.DetectOutliers] so callers can inspect the mask without
// committing to a replacement strategy.
package outlier
