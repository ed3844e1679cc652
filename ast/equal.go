package ast

// SyntacticallyEqual compares two nodes by variant and payload, ignoring
// source ranges. It is used only by rewrite-rule matching (canon package),
// which must treat two occurrences of the same literal pattern as equal
// regardless of where in the source each occurrence came from.
func SyntacticallyEqual(a, b Node) bool {
	switch av := a.(type) {
	case *Tag:
		bv, ok := b.(*Tag)
		if !ok || av.Name != bv.Name {
			return false
		}
		if !nodesEqual(av.Parameters, bv.Parameters) {
			return false
		}
		return nodesEqual(av.Children, bv.Children)
	case *Enclosure:
		bv, ok := b.(*Enclosure)
		if !ok || av.Kind != bv.Kind {
			return false
		}
		return nodesEqual(av.Children, bv.Children)
	case *Ident:
		bv, ok := b.(*Ident)
		return ok && av.Name == bv.Name
	case *String:
		bv, ok := b.(*String)
		return ok && av.Text == bv.Text
	case *InvalidToken:
		bv, ok := b.(*InvalidToken)
		return ok && av.Text == bv.Text
	default:
		return false
	}
}

func nodesEqual(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !SyntacticallyEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
