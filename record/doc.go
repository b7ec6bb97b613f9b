// Package record frames HWP record streams and rebuilds their nesting.
//
// A decompressed DocInfo or BodyText stream is a flat run of records. Each
// starts with a 32-bit little-endian header packing a 10-bit tag, a 10-bit
// level and a 12-bit size; a size of 0xFFF means the real size follows as a
// separate 32-bit word. Nesting is implied only by the level: a record
// belongs to the closest preceding record one level shallower.
//
//	tree, diags := record.Parse(data)
//	for _, root := range tree.Roots {
//	    r := tree.Node(root)
//	    fmt.Println(record.TagName(r.Tag), len(r.Children))
//	}
//
// Framing stops at the first truncated record or reserved tag and keeps the
// prefix; nesting errors demote the offending record to a root. Both are
// returned as diagnostics rather than failures.
package record
