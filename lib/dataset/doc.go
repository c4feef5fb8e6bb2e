// Package dataset holds the in-memory word list every serializer works on.
//
// A Dataset is an ordered sequence of Records, each with exactly
// FieldsPerRecord fields. The first record is the header (field labels),
// the remaining records are the data rows. A Dataset is created once by
// Load (or New / FromTable) and never mutated afterwards; callers must
// treat the slices returned by its accessors as read-only.
//
// The dictionary source format is line oriented: every field sits on its own
// line, FieldsPerRecord consecutive lines form one record. Lines are latin-1
// encoded and terminated by CRLF. Load decodes them to UTF-8 and trims
// trailing whitespace.
//
// Table is the typed intermediate form shared by the JSON and BSON
// serializers: the header plus the data rows, kept apart.
package dataset
