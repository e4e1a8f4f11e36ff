package order

import (
	"fmt"

	"github.com/beevik/etree"
)

// ContentTree returns the live document tree. The tree reads through to the
// builder's state; later builder calls are visible to the caller.
func (b *DocumentBuilder) ContentTree() *etree.Document {
	return b.doc
}

// Query returns a query handle bound to the live document tree.
func (b *DocumentBuilder) Query() *Query {
	return &Query{doc: b.doc}
}

// Query evaluates etree path expressions against a live document tree.
// Paths use the prefixed element names as written, e.g.
//
//	//ram:SpecifiedTradeSettlementHeaderMonetarySummation/ram:LineTotalAmount
type Query struct {
	doc *etree.Document
}

// Exists reports whether at least one element matches path.
func (q *Query) Exists(path string) bool {
	return q.doc.FindElement(path) != nil
}

// Count returns the number of elements matching path.
func (q *Query) Count(path string) int {
	return len(q.doc.FindElements(path))
}

// Text returns the text of the first element matching path.
func (q *Query) Text(path string) (string, error) {
	el := q.doc.FindElement(path)
	if el == nil {
		return "", fmt.Errorf("orderx: no element at %q", path)
	}
	return el.Text(), nil
}

// TextAt returns the text of the index-th element (0-based) matching path.
func (q *Query) TextAt(path string, index int) (string, error) {
	els := q.doc.FindElements(path)
	if index < 0 || index >= len(els) {
		return "", fmt.Errorf("orderx: no element at %q index %d (have %d)", path, index, len(els))
	}
	return els[index].Text(), nil
}

// Attr returns the value of attribute name on the first element matching
// path.
func (q *Query) Attr(path, name string) (string, error) {
	el := q.doc.FindElement(path)
	if el == nil {
		return "", fmt.Errorf("orderx: no element at %q", path)
	}
	attr := el.SelectAttr(name)
	if attr == nil {
		return "", fmt.Errorf("orderx: no attribute %q on element at %q", name, path)
	}
	return attr.Value, nil
}

// AttrAt returns the value of attribute name on the index-th element
// (0-based) matching path.
func (q *Query) AttrAt(path string, index int, name string) (string, error) {
	els := q.doc.FindElements(path)
	if index < 0 || index >= len(els) {
		return "", fmt.Errorf("orderx: no element at %q index %d (have %d)", path, index, len(els))
	}
	attr := els[index].SelectAttr(name)
	if attr == nil {
		return "", fmt.Errorf("orderx: no attribute %q on element at %q index %d", name, path, index)
	}
	return attr.Value, nil
}
