package main

import (
	"sort"
	"strings"
)

// treeNode is a node in an ordered path tree.
type treeNode struct {
	children   map[string]*treeNode
	childOrder []string
}

// renderTree produces a pretty-printed tree of slash-separated paths below
// root. Paths are sorted first so the output is stable.
func renderTree(root string, paths []string) string {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	top := &treeNode{children: make(map[string]*treeNode)}

	for _, p := range sorted {
		trimmed := strings.Trim(p, "/")
		if trimmed == "" {
			continue
		}

		cur := top
		for _, seg := range strings.Split(trimmed, "/") {
			if _, exists := cur.children[seg]; !exists {
				cur.children[seg] = &treeNode{children: make(map[string]*treeNode)}
				cur.childOrder = append(cur.childOrder, seg)
			}
			cur = cur.children[seg]
		}
	}

	var sb strings.Builder
	sb.WriteString(strings.TrimRight(root, "/") + "/\n")
	writeTreeNodes(&sb, top, "")
	return strings.TrimRight(sb.String(), "\n")
}

func writeTreeNodes(sb *strings.Builder, node *treeNode, prefix string) {
	for i, name := range node.childOrder {
		child := node.children[name]
		isLast := i == len(node.childOrder)-1

		connector := "├── "
		childPrefix := prefix + "│   "
		if isLast {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		label := name
		if len(child.children) > 0 {
			label = name + "/"
		}
		sb.WriteString(prefix + connector + label + "\n")
		writeTreeNodes(sb, child, childPrefix)
	}
}
