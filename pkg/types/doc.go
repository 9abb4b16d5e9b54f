// Package types defines the Clinic interface, entity types, and standard
// error values for the dental records store. It holds pure data and
// contracts; persistence lives in internal/sqlite.
package types
