// Package filters provides HWP stream decompression.
//
// HWP 5.0 documents flag compression once, in the FileHeader properties word.
// Every storage stream (DocInfo, BodyText sections, most BinData items) is
// then a raw deflate stream without a zlib wrapper.
//
//	data, err := filters.Decompress(raw, header.Compressed())
//
// Decompress never returns a partially inflated stream: either the whole
// payload inflates or the call fails with a [*DecompressionError].
// Uncompressed input is passed through without copying.
//
// DecompressLimit bounds the inflated size so a hostile stream cannot
// exhaust memory:
//
//	data, err := filters.DecompressLimit(raw, true, 64<<20)
package filters
