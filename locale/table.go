// Package locale loads translation tables: nested trees of message format strings
// addressed by dot-joined key paths.
package locale

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidValue is returned when a table holds a value that is neither a sub-table nor
// a scalar, such as a list or a null.
var ErrInvalidValue = errors.New("invalid translation value")

type node struct {
	leaf     string
	isLeaf   bool
	children map[string]*node
}

// Table is an immutable translation tree. It is safe for concurrent reads.
type Table struct {
	root *node
	size int
}

// New builds a Table from a decoded tree. Sub-tables may be map[string]any or
// map[any]any; numbers and booleans are stored in their string form.
func New(tree map[string]any) (*Table, error) {
	t := &Table{}
	root, err := t.build(tree, "")
	if err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

func (t *Table) build(tree map[string]any, prefix string) (*node, error) {
	n := &node{children: make(map[string]*node, len(tree))}
	for k, v := range tree {
		path := joinPath(prefix, k)
		child, err := t.buildValue(v, path)
		if err != nil {
			return nil, err
		}
		n.children[k] = child
	}
	return n, nil
}

func (t *Table) buildValue(v any, path string) (*node, error) {
	switch val := v.(type) {
	case map[string]any:
		return t.build(val, path)
	case map[any]any:
		sub := make(map[string]any, len(val))
		for k, item := range val {
			sub[fmt.Sprint(k)] = item
		}
		return t.build(sub, path)
	}

	s, err := scalarString(v)
	if err != nil {
		return nil, fmt.Errorf("%w at %q: %v", ErrInvalidValue, path, err)
	}
	t.size++
	return &node{leaf: s, isLeaf: true}, nil
}

func scalarString(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case time.Time:
		return val.Format(time.RFC3339), nil
	case fmt.Stringer:
		return val.String(), nil
	case nil:
		return "", errors.New("null value")
	default:
		return "", fmt.Errorf("unsupported type %T", v)
	}
}

// Lookup resolves a dot-joined path to a leaf. A path that is absent, that passes
// through a leaf, or that ends on a sub-table is not found.
func (t *Table) Lookup(path string) (string, bool) {
	if t == nil || t.root == nil {
		return "", false
	}
	n := t.root
	for _, seg := range strings.Split(path, ".") {
		if n.isLeaf {
			return "", false
		}
		child, ok := n.children[seg]
		if !ok {
			return "", false
		}
		n = child
	}
	if !n.isLeaf {
		return "", false
	}
	return n.leaf, true
}

// Len returns the number of leaves.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Keys returns the path of every leaf, sorted.
func (t *Table) Keys() []string {
	keys := make([]string, 0, t.Len())
	t.walk(func(path, _ string) {
		keys = append(keys, path)
	})
	sort.Strings(keys)
	return keys
}

// Flatten returns every leaf keyed by its path.
func (t *Table) Flatten() map[string]string {
	flat := make(map[string]string, t.Len())
	t.walk(func(path, value string) {
		flat[path] = value
	})
	return flat
}

func (t *Table) walk(fn func(path, value string)) {
	if t == nil || t.root == nil {
		return
	}
	var visit func(n *node, prefix string)
	visit = func(n *node, prefix string) {
		if n.isLeaf {
			fn(prefix, n.leaf)
			return
		}
		for k, child := range n.children {
			visit(child, joinPath(prefix, k))
		}
	}
	visit(t.root, "")
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
