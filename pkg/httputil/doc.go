// Package httputil provides HTTP infrastructure for the registry client.
//
// [Cache] stores registry responses in the filesystem (~/.cache/cargo-add/)
// with a configurable TTL, keyed by SHA-256 of the cache key, so repeated
// invocations don't hammer crates.io. [Retry] wraps requests with
// exponential backoff; only errors wrapped in [RetryableError] (network
// failures, 5xx responses) are retried.
package httputil
