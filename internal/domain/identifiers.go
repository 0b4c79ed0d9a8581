// Package domain contains the core data types for the Complete API.
// It has no dependencies on the storage or transport layers and is imported
// by every other internal package (repo, service, csvexport, handler).
package domain

import "strconv"

// Urn is the Unique Reference Number of a school or academy.
type Urn int

// String returns the URN in its decimal form.
func (u Urn) String() string { return strconv.Itoa(int(u)) }

// Ukprn is the UK Provider Reference Number of a trust or establishment.
type Ukprn int

// String returns the UKPRN in its decimal form.
func (u Ukprn) String() string { return strconv.Itoa(int(u)) }

// UkprnPtr returns a pointer to u. Convenient for optional UKPRN fields.
func UkprnPtr(u Ukprn) *Ukprn { return &u }

// UrnPtr returns a pointer to u. Convenient for optional URN fields.
func UrnPtr(u Urn) *Urn { return &u }
