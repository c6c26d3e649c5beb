// Package data holds the typed entities returned by the remote service
// and the codec that maps its wire shapes onto them.
package data

// Unique identifiers are globally unique hashes.
type UID = string

// Category identifiers are unsigned integers. They arrive over the wire
// as numeric strings and are parsed during decoding.
type CategoryID = uint32

// All monetary amounts are 64-bit floats, matching the wire format.
type Amount = float64

// Dates keep their original ISO 8601 string representation. Parsing is
// left to the caller.
type Date = string

// A user's financial institution identifier, e.g. "chase".
type Institution = string
