// Package google provides shared plumbing for the Google APIs used by
// sheetctl: service construction, credential-to-token-source derivation,
// error classification, and per-service rate limiting.
package google
