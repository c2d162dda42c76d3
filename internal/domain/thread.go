package domain

import "sort"

// BuildCommentTree converts a flat, unordered comment collection into an
// ordered forest of threads. Comments referencing an unknown parent are
// promoted to the top level rather than dropped. Sibling groups are ordered
// ascending by CreatedAt with a stable sort.
//
// The input is not mutated; every node in the result is a copy.
func BuildCommentTree(comments []*Comment) []*Comment {
	index := make(map[string]*Comment, len(comments))
	for _, c := range comments {
		if c == nil || c.ID == "" {
			// cannot be indexed or referenced, skip
			continue
		}
		cp := *c
		cp.Replies = []*Comment{}
		// last write wins on duplicate ids
		index[cp.ID] = &cp
	}

	tree := make([]*Comment, 0, len(index))
	seen := make(map[string]bool, len(index))
	for _, c := range comments {
		if c == nil || c.ID == "" || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		node := index[c.ID]
		// a comment listing itself as parent would otherwise become its
		// own child; treat it as top-level
		if node.ParentID != nil && *node.ParentID != node.ID {
			if parent, ok := index[*node.ParentID]; ok {
				parent.Replies = append(parent.Replies, node)
				continue
			}
		}
		tree = append(tree, node)
	}

	for _, node := range index {
		sortByCreatedAt(node.Replies)
	}
	sortByCreatedAt(tree)

	return tree
}

// CollectSubtree returns the comment with id rootID plus every comment
// whose ParentID chain leads back to it, computed over the flat collection.
// An unknown rootID yields an empty result.
func CollectSubtree(comments []*Comment, rootID string) []*Comment {
	if rootID == "" {
		return nil
	}

	children := make(map[string][]*Comment, len(comments))
	var root *Comment
	for _, c := range comments {
		if c == nil || c.ID == "" {
			continue
		}
		if c.ID == rootID {
			root = c
		}
		if c.ParentID != nil && *c.ParentID != c.ID {
			children[*c.ParentID] = append(children[*c.ParentID], c)
		}
	}
	if root == nil {
		return nil
	}

	out := make([]*Comment, 0, len(comments))
	visited := make(map[string]bool, len(comments))
	stack := []*Comment{root}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[c.ID] {
			continue
		}
		visited[c.ID] = true
		out = append(out, c)
		stack = append(stack, children[c.ID]...)
	}
	return out
}

// FlattenComments walks a forest depth-first and returns the flat
// collection with Replies stripped, ready for persistence.
func FlattenComments(tree []*Comment) []*Comment {
	var out []*Comment
	var walk func(nodes []*Comment)
	walk = func(nodes []*Comment) {
		for _, n := range nodes {
			cp := *n
			cp.Replies = nil
			out = append(out, &cp)
			walk(n.Replies)
		}
	}
	walk(tree)
	return out
}

func sortByCreatedAt(comments []*Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
}
