// File: services/extraction/parse.go
package extraction

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Node is one block of the model's markup reply. The tree is deliberately
// generic: normalization decides meaning, the parser only decides shape.
type Node struct {
	Tag      string
	Text     string
	Children []*Node
}

// First returns the first direct child with the given tag, or nil.
func (n *Node) First(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// All returns every direct child with the given tag. The result is always a
// slice: one matching child and many matching children are indistinguishable
// to callers, so downstream code never special-cases cardinality.
func (n *Node) All(tag string) []*Node {
	var matches []*Node
	for _, c := range n.Children {
		if c.Tag == tag {
			matches = append(matches, c)
		}
	}
	return matches
}

// IsText reports whether the node is a plain text leaf (no child blocks).
func (n *Node) IsText() bool {
	return len(n.Children) == 0
}

// ParseResponse parses the model's raw reply into a block tree. It tolerates
// code fences and prose around the document, missing end tags, and a reply
// that omits the <response> wrapper and emits the inner blocks as siblings.
// It performs no semantic validation. A reply with no markup content at all
// is a parse failure.
func ParseResponse(raw string) (*Node, error) {
	doc := extractDocument(raw)
	if doc == "" {
		return nil, errors.New("no markup content in response")
	}

	decoder := xml.NewDecoder(strings.NewReader(doc))
	// Non-strict mode invents end tags for unclosed blocks and passes
	// unknown entities through, which covers most of the malformed output
	// the model produces.
	decoder.Strict = false

	// Top-level elements collect under a synthetic root so that a reply of
	// sibling blocks and a reply wrapped in <response> parse identically.
	root := &Node{Tag: "response"}
	stack := []*Node{root}

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed markup: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child := &Node{Tag: t.Name.Local}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, child)
			stack = append(stack, child)
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 1 {
				top := stack[len(stack)-1]
				top.Text += string(t)
			}
			// Character data outside any block is surrounding prose.
		}
	}

	if len(root.Children) == 0 {
		return nil, errors.New("no markup content in response")
	}
	if len(root.Children) == 1 && root.Children[0].Tag == "response" {
		root = root.Children[0]
	}
	return root, nil
}

// extractDocument trims code fences and surrounding prose down to the markup
// document itself.
func extractDocument(raw string) string {
	s := strings.TrimSpace(raw)

	// Strip a markdown code fence if the model wrapped its output in one.
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "<")
	end := strings.LastIndex(s, ">")
	if start < 0 || end < start {
		return ""
	}
	return s[start : end+1]
}
