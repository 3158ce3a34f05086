package section

const (
	// HeaderSize is the byte size of the fixed uncompressed entry header.
	HeaderSize = 16

	// Field offsets within the entry header.
	TimestampOffset = 0
	FormatIDOffset  = 8
	EntrySizeOffset = 12
)
