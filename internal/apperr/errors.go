package apperr

import "errors"

// ErrGitNotFound is returned by the git runner when no git executable can be
// located. Extraction treats it as a degraded (zeroed) result, never fatal.
// Use errors.Is(err, apperr.ErrGitNotFound) to detect it uniformly.
var ErrGitNotFound = errors.New("git executable not found")

// ErrNoMarker is returned when no annotated marker tag is reachable from HEAD,
// including shallow clones whose truncated history hides the marker. The build
// number degrades to zero in that case.
var ErrNoMarker = errors.New("no annotated marker reachable")
