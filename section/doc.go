// Package section defines the fixed binary layout of the uncompressed log
// record header.
//
// Every uncompressed record starts with a 16-byte EntryHeader followed by a
// raw argument payload whose layout is selected by the header's FormatID.
// All multi-byte fields are little-endian. The compressed stream does not
// use this layout; the compressor collapses the header into a variable-width
// delta form (see the encoding package).
package section
