package traverse

import (
	"strconv"
	"strings"
)

// Cursor tracks the position of the node being visited as a list of path
// segments, outermost first.
type Cursor struct {
	path []string
}

// Enter pushes a path segment.
func (c *Cursor) Enter(segment string) {
	c.path = append(c.path, segment)
}

// Exit pops the innermost path segment. Exiting the root is a no-op.
func (c *Cursor) Exit() {
	if len(c.path) > 0 {
		c.path = c.path[:len(c.path)-1]
	}
}

// Depth is the number of segments entered.
func (c *Cursor) Depth() int { return len(c.path) }

// Path returns a copy of the current segments.
func (c *Cursor) Path() []string {
	return append([]string(nil), c.path...)
}

// String renders the position as "/modules/ledger/values/balance/...", or
// "/" at the root.
func (c *Cursor) String() string {
	if len(c.path) == 0 {
		return "/"
	}
	return "/" + strings.Join(c.path, "/")
}

// at runs f with segment entered.
func (c *Cursor) at(segment string, f func() error) error {
	c.Enter(segment)
	defer c.Exit()
	return f()
}

// each runs f over xs under segment/i. Empty lists are skipped.
func each[T any](c *Cursor, segment string, xs []T, f func(T) error) error {
	if len(xs) == 0 {
		return nil
	}
	return c.at(segment, func() error {
		for i, x := range xs {
			if err := c.at(strconv.Itoa(i), func() error { return f(x) }); err != nil {
				return err
			}
		}
		return nil
	})
}
