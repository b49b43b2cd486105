// Package domain contains the core types shared across sheetctl:
// credentials, sheet payloads, permission grants, and the error
// taxonomy. It has no dependencies on adapters or the Google SDK.
package domain
