// Package apperr defines the two-kind error taxonomy used by the request
// handling path: BadRequest for caller-fixable input problems and Internal
// for everything else. The Handler function adapts the taxonomy to Fiber's
// error handling, so handlers simply return classified errors and the
// response rendering, status mapping and selective logging happen in one
// place. No retries happen anywhere; every failure is terminal for its
// request and reported exactly once.
package apperr
