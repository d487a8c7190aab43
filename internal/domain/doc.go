// Package domain models GRIB edition 1 parameter tables and the field
// descriptors resolved against them.
//
// # Parameter Tables
//
// A GRIB1 product definition section names its physical quantity only by an
// 8-bit number (octet 9). The meaning of that number depends on which
// "code table 2" the producer used, identified by three further octets:
//
//	octet 5   originating center      e.g. 98 = ECMWF, 78 = DWD, 7 = NCEP
//	octet 26  originating subcenter   0 when the center has none
//	octet 4   parameter table version e.g. 128, 170, 172 at ECMWF
//
// The same number means different things in different tables: code 130 is
// "Temperature" in ECMWF table 128 and 170, but is undefined in table 172.
// Lookups are therefore exact on all four values. There is no fallback to a
// WMO standard table, to subcenter 0, or to a neighbouring version; a miss
// is a miss.
//
// # Table Text
//
// Descriptions, units and abbreviations are carried byte-for-byte as the
// producing center published them. Units follow several conventions at once
// ("W/(m**2)", "W m**-2", "J m**-2 s", "kg/m2/s") and are never normalized.
// Blank abbreviations are real rows, distinct from a missing code.
//
// # Registry Lifecycle
//
// Tables are registered on a [Builder] during startup, either from the
// compiled-in sources ([RegisterEmbedded]) or from table files. [Builder.Build]
// rejects duplicate codes within a table and duplicate table keys rather than
// picking one. The resulting [Registry] has no mutation methods and is shared
// by all goroutines without locking.
//
// # ID Generation
//
// Resolved field IDs are deterministic SHA-256 hashes of
// table|code|level type|level|reference time|forecast hour|source|record,
// prefixed with the parameter abbreviation (or "p<code>" when the row has
// none). Replays of the same descriptor produce the same ID. See [generateID].
package domain
