// Package serializer provides the output formats fmtsize compares. It defines
// a common interface and one implementation per format, all consuming the same
// immutable dataset.Dataset.
//
// Key Components:
//
//   - ISerializer: Core interface that all format implementations must satisfy.
//     Every implementation can decode its own output again, which is used for
//     the optional verification pass.
//
//   - csvSerializerImpl: One line per record, header first, minimal quoting and
//     CRLF line endings.
//
//   - jsonSerializerImpl: A single object with a "header" array and a "data"
//     array of arrays. Compact or indented with four spaces. Non-ASCII text is
//     written as UTF-8, not as \u escapes.
//
//   - bsonSerializerImpl: The same header/data document encoded as BSON.
//
//   - xmlSerializerImpl: An <export> root with a <header> element holding one <v>
//     per field and a <data> element holding one <l> per row. The tree is built
//     once and rendered either compact or indented with tabs. Fields with
//     characters outside the XML 1.0 Char production (most C0 control
//     characters) fail with ErrInvalidXMLChar.
//
// Thread Safety:
//
//	All serializer implementations are stateless and safe for concurrent use
//	across multiple goroutines without additional synchronization.
//
// Usage:
//
//	for _, s := range serializer.All() {
//	    data, err := s.Serialize(ds)
//	    // ... write data to output.<s.Name()> ...
//	}
package serializer
