// Package csharp reads resource declarations and references from C# source using tree-sitter.
package csharp

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"
)

// cancelCheckInterval is the number of visited nodes between context checks.
const cancelCheckInterval = 1024

var typeDeclarations = map[string]bool{
	"class_declaration":         true,
	"struct_declaration":        true,
	"interface_declaration":     true,
	"record_declaration":        true,
	"record_struct_declaration": true,
	"enum_declaration":          true,
}

// parse returns the root of the syntax tree for src.
// tree-sitter recovers from syntax errors, so only cancellation fails.
func parse(ctx context.Context, src []byte) (*sitter.Node, error) {
	root, err := sitter.ParseCtx(ctx, src, csharp.GetLanguage())
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
	return root, nil
}

// walk visits n and its named descendants in source order.
// Children of a node are skipped when visit returns false.
func walk(ctx context.Context, n *sitter.Node, visit func(*sitter.Node) bool) error {
	stack := []*sitter.Node{n}
	for visited := 0; len(stack) > 0; visited++ {
		if visited%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == nil || !visit(cur) {
			continue
		}
		for i := int(cur.NamedChildCount()) - 1; i >= 0; i-- {
			stack = append(stack, cur.NamedChild(i))
		}
	}
	return nil
}

// modifiers returns the lower-cased modifier keywords of a declaration.
func modifiers(decl *sitter.Node, src []byte) map[string]bool {
	out := make(map[string]bool)
	for i := range int(decl.ChildCount()) {
		child := decl.Child(i)
		switch {
		case child.Type() == "modifier":
			out[strings.ToLower(child.Content(src))] = true
		case !child.IsNamed():
			out[child.Type()] = true
		}
	}
	return out
}

// isStringType reports whether a type node spells the string type.
func isStringType(typ *sitter.Node, src []byte) bool {
	if typ == nil {
		return false
	}
	name := strings.TrimPrefix(typ.Content(src), "global::")
	name = strings.TrimPrefix(name, "System.")
	return strings.EqualFold(name, "string")
}

// simpleName returns the identifier of a simple or generic name node.
func simpleName(n *sitter.Node, src []byte) string {
	switch n.Type() {
	case "identifier":
		return n.Content(src)
	case "generic_name":
		for i := range int(n.NamedChildCount()) {
			if c := n.NamedChild(i); c.Type() == "identifier" {
				return c.Content(src)
			}
		}
	}
	return ""
}

// fieldText returns the source text of a named field, or "" when it is absent.
func fieldText(n *sitter.Node, field string, src []byte) string {
	if c := n.ChildByFieldName(field); c != nil {
		return c.Content(src)
	}
	return ""
}
