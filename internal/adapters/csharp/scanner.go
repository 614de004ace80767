package csharp

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"go.trai.ch/resweep/internal/core/domain"
)

// Scanner implements ports.ReferenceScanner by collecting Receiver.Member expressions.
// Qualified accesses such as Properties.Strings.Greeting are not attributed to
// Strings.Greeting, and any Receiver.Member pair is counted whether or not it names
// a resource; the catalog drops unknown keys.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan parses text and counts member accesses whose receiver is a plain identifier.
func (s *Scanner) Scan(ctx context.Context, text []byte, _ []domain.ResourceKey) (domain.UsageSet, error) {
	root, err := parse(ctx, text)
	if err != nil {
		return nil, err
	}

	usages := domain.UsageSet{}
	err = walk(ctx, root, func(n *sitter.Node) bool {
		if n.Type() != "member_access_expression" {
			return true
		}
		receiver := n.ChildByFieldName("expression")
		member := n.ChildByFieldName("name")
		if receiver == nil || member == nil || receiver.Type() != "identifier" {
			return true
		}
		if name := simpleName(member, text); name != "" {
			usages.Add(domain.ResourceKey{ClassName: receiver.Content(text), Name: name}, 1)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return usages, nil
}
