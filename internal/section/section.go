// Package section holds the output model: confirmed sections and the
// flat-to-nested hierarchy transforms.
package section

// Section is a confirmed node in the output structure. Level always
// equals the number of dot-separated components in Number. Children is
// populated only in nested mode.
type Section struct {
	Title    string     `json:"title"`
	Number   string     `json:"number"`
	Level    int        `json:"level"`
	Page     int        `json:"page"`
	Content  string     `json:"content"`
	Children []*Section `json:"children,omitempty"`
}

// Nest arranges a flat in-order section list into a tree using a stack
// of open sections. A node attaches to the deepest open section with a
// smaller level; level jumps greater than one attach to the nearest
// shallower ancestor, leaving the gap levels absent. Input sections
// are copied, not mutated.
func Nest(flat []*Section) []*Section {
	var root []*Section
	var stack []*Section
	for _, s := range flat {
		node := &Section{
			Title:   s.Title,
			Number:  s.Number,
			Level:   s.Level,
			Page:    s.Page,
			Content: s.Content,
		}
		for len(stack) > 0 && stack[len(stack)-1].Level >= node.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			top := stack[len(stack)-1]
			top.Children = append(top.Children, node)
		} else {
			root = append(root, node)
		}
		stack = append(stack, node)
	}
	return root
}

// Flatten is the depth-first inverse of Nest: it returns the in-order
// section list with children stripped.
func Flatten(nested []*Section) []*Section {
	var out []*Section
	var walk func(nodes []*Section)
	walk = func(nodes []*Section) {
		for _, n := range nodes {
			out = append(out, &Section{
				Title:   n.Title,
				Number:  n.Number,
				Level:   n.Level,
				Page:    n.Page,
				Content: n.Content,
			})
			walk(n.Children)
		}
	}
	walk(nested)
	return out
}
