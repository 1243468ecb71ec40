// Package mapfile converts a mapgraph.Store to and from its JSON document
// and reads/writes that document on disk.
//
// Format:
//
//	{
//	    "vertices": [[x, y], ...],
//	    "lines":    [[i, j], ...]
//	}
//
// The order of "vertices" defines the index space of "lines". There is no
// version field; whitespace is not significant.
//
// Decoding:
//
//   - ErrMissingField if "vertices" or "lines" is absent;
//   - ErrMalformedDocument for anything that is not an object of integer
//     pairs (checked against an embedded JSON schema);
//   - by default the graph itself is trusted as written. WithStrict() also
//     runs Store.Validate and reports violations as ErrMalformedDocument.
//
// File IO failures are *FileError values matching ErrIO and the underlying
// os error. A failed Load returns no store; a failed Save leaves the previous
// file in place.
package mapfile
