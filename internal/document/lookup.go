package document

// Find resolves a display label to an object. A document root is
// searched two levels deep: its direct children, and one level inside
// each child that is itself a grouping. Any other container is searched
// one level only. The first exact match in native enumeration order
// wins. A miss is an expected, recoverable condition reported through
// ok, never an error.
func Find(root Container, label string) (Object, bool) {
	_, twoLevel := root.(*Document)
	for _, obj := range root.Children() {
		if obj.Label() == label {
			return obj, true
		}
		if !twoLevel {
			continue
		}
		if g, ok := obj.(Grouping); ok {
			for _, sub := range g.Children() {
				if sub.Label() == label {
					return sub, true
				}
			}
		}
	}
	return nil, false
}
