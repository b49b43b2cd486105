// Package connectors groups the vendor-specific plumbing sheetctl talks
// through. Only Google is wired today; the split mirrors the service
// boundary between the generic spreadsheet client and the SDKs beneath it.
package connectors
