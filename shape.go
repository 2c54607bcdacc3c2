package envdsl

// Entry is one named field of a Shape.
type Entry struct {
	Name string
	Node Node
}

// Shape is an ordered group of named fields. Declaration order drives
// traversal and therefore report order. Names should be unique within one
// Shape; on a duplicate the later field wins in the merged value while the
// outcomes of both are reported.
type Shape []Entry

// Field names a reader or nested shape.
func Field(name string, node Node) Entry {
	return Entry{Name: name, Node: node}
}

// Group builds a Shape from fields, in order.
func Group(fields ...Entry) Shape {
	return Shape(fields)
}

func (Shape) node() {}
