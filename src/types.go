// Package mim implements an M17N-style Multilingual Input Method (MIM)
// document reader, loader, and conversion engine. A MIM document is an
// S-expression declaring key-sequence to action rules grouped into named
// maps, referenced by named states that form a small state machine. Given
// a document and an input string, Convert produces the committed text a
// user would have obtained by typing those keys through the method.
package mim

import "fmt"

// ElementKind tags the four shapes an Element can take.
type ElementKind int

const (
	KindList ElementKind = iota
	KindString
	KindInt
	KindSymbol
)

// Element is the tagged-union output of the Reader. Exactly one of the
// fields is meaningful, selected by Kind.
type Element struct {
	Kind   ElementKind
	List   []Element
	Str    string
	Int    int64
	Symbol string
}

func listOf(items ...Element) Element { return Element{Kind: KindList, List: items} }
func strOf(s string) Element          { return Element{Kind: KindString, Str: s} }
func intOf(n int64) Element           { return Element{Kind: KindInt, Int: n} }
func symOf(s string) Element          { return Element{Kind: KindSymbol, Symbol: s} }

// String renders an Element back to canonical MIM S-expression text.
// This is used by tests asserting the reader's round-trip property and
// is never on the conversion hot path.
func (e Element) String() string {
	switch e.Kind {
	case KindString:
		return fmt.Sprintf("%q", e.Str)
	case KindInt:
		return fmt.Sprintf("%d", e.Int)
	case KindSymbol:
		return e.Symbol
	case KindList:
		out := "("
		for i, child := range e.List {
			if i > 0 {
				out += " "
			}
			out += child.String()
		}
		return out + ")"
	default:
		return ""
	}
}

// Branch is a (map name, trailing actions) pair inside a State.
type Branch struct {
	MapName         string
	TrailingActions []Element
}

// State holds an ordered sequence of branches consulted in declaration
// order; the first branch whose map yields any match wins.
type State struct {
	Name     string
	Branches []Branch
}

// CompiledIM is the immutable, ready-to-run form of a parsed MIM document.
type CompiledIM struct {
	Lang        string
	Name        string
	Title       string
	Description string
	Maps        map[string]*KeyseqTable
	States      []State
}

// stateIndex returns the State with the given name, or false if absent.
func (c *CompiledIM) stateIndex(name string) (*State, bool) {
	for i := range c.States {
		if c.States[i].Name == name {
			return &c.States[i], true
		}
	}
	return nil, false
}

// initialStateName returns the name of the first declared state, or the
// "init" fallback literal when no states were declared.
func (c *CompiledIM) initialStateName() string {
	if len(c.States) > 0 {
		return c.States[0].Name
	}
	return "init"
}
