// Package denoise defines the processing contract shared by the impulsive
// noise suppression filters and the robust-statistics helpers they build on.
//
// Each concrete filter lives in its own subpackage (median, morph, outlier,
// savgol, adaptive) and implements [Processor]: a Process method that returns
// a new signal of the same length without mutating its input, and a Name
// method whose label is unique per configuration and usable as a report key.
//
// Filters validate their parameters at construction and on every
// reconfiguration. Violations are reported by wrapping [ErrInvalidParameter];
// an invalid reconfiguration leaves the previous configuration untouched.
//
// Filter instances are not safe for concurrent use. This matters most for
// the adaptive filter, whose weight vector persists across Process calls.
package denoise
