package record

// Record is a frame placed in the record tree. Children index into the
// owning Tree's Records slice.
type Record struct {
	Tag      uint16
	Level    uint16
	Offset   int
	Payload  []byte
	Children []int
}

// Tree is an append-only arena of records rebuilt from the level field.
// Roots lists the top-level records in stream order.
type Tree struct {
	Records []Record
	Roots   []int
}

// Node returns the record at index i.
func (t *Tree) Node(i int) *Record {
	return &t.Records[i]
}

// Len returns the number of records in the tree.
func (t *Tree) Len() int {
	return len(t.Records)
}

// BuildTree attaches every frame to the most recent open record one level
// above it. A frame whose parent level is not open is kept as an extra root
// and reported with a MalformedNestingError; the rest of the stream still
// nests normally, including the demoted record's own children.
func BuildTree(frames []Frame) (*Tree, []error) {
	t := &Tree{Records: make([]Record, 0, len(frames))}
	var errs []error
	var stack []int

	for _, fr := range frames {
		idx := len(t.Records)
		t.Records = append(t.Records, Record{
			Tag:     fr.Tag,
			Level:   fr.Level,
			Offset:  fr.Offset,
			Payload: fr.Payload,
		})

		for len(stack) > 0 && t.Records[stack[len(stack)-1]].Level >= fr.Level {
			stack = stack[:len(stack)-1]
		}

		switch {
		case fr.Level == 0:
			t.Roots = append(t.Roots, idx)
		case len(stack) == 0:
			errs = append(errs, &MalformedNestingError{
				Offset: fr.Offset, Tag: fr.Tag, Level: fr.Level, ParentLevel: -1,
			})
			t.Roots = append(t.Roots, idx)
		default:
			parent := stack[len(stack)-1]
			if t.Records[parent].Level+1 == fr.Level {
				t.Records[parent].Children = append(t.Records[parent].Children, idx)
			} else {
				errs = append(errs, &MalformedNestingError{
					Offset: fr.Offset, Tag: fr.Tag, Level: fr.Level,
					ParentLevel: int(t.Records[parent].Level),
				})
				t.Roots = append(t.Roots, idx)
			}
		}

		stack = append(stack, idx)
	}

	return t, errs
}

// Parse frames buf and builds its tree. Framing and nesting problems are
// returned as diagnostics; the tree always holds everything that could be
// framed.
func Parse(buf []byte) (*Tree, []error) {
	frames, err := Frames(buf)
	tree, errs := BuildTree(frames)
	if err != nil {
		errs = append(errs, err)
	}
	return tree, errs
}
