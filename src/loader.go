package mim

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Load walks the parsed top-level List and compiles it into a CompiledIM.
// Unrecognized top-level forms, malformed map/state definitions, and rules
// with no recognizable keyseq all degrade silently: the affected fragment
// simply contributes nothing to the compiled result.
func Load(doc Element, logger Logger) *CompiledIM {
	if logger == nil {
		logger = DiscardLogger{}
	}

	im := &CompiledIM{Maps: make(map[string]*KeyseqTable)}

	if doc.Kind != KindList {
		return im
	}

	var mapDefs []Element
	for _, section := range doc.List {
		if section.Kind != KindList || len(section.List) == 0 {
			continue
		}
		head := section.List[0]
		if head.Kind != KindSymbol {
			continue
		}
		rest := section.List[1:]
		switch head.Symbol {
		case "input-method":
			loadInputMethod(im, rest)
		case "title":
			loadTitle(im, rest)
		case "description":
			loadDescription(im, rest)
		case "map":
			mapDefs = append(mapDefs, rest...)
		case "state":
			loadStates(im, rest, logger)
		default:
			logger.DebugCat(CatLoad, "ignoring unrecognized top-level form %q", head.Symbol)
		}
	}

	im.Maps = compileMaps(mapDefs, logger)

	for _, st := range im.States {
		for _, br := range st.Branches {
			if _, ok := im.Maps[br.MapName]; !ok {
				logger.WarnCat(CatLoad, "state %q references undeclared map %q", st.Name, br.MapName)
			}
		}
	}

	return im
}

func loadInputMethod(im *CompiledIM, rest []Element) {
	if len(rest) > 0 && rest[0].Kind == KindSymbol {
		im.Lang = rest[0].Symbol
	}
	if len(rest) > 1 && rest[1].Kind == KindSymbol {
		im.Name = rest[1].Symbol
	}
}

func loadTitle(im *CompiledIM, rest []Element) {
	if len(rest) > 0 && rest[0].Kind == KindString {
		im.Title = rest[0].Str
	}
}

// loadDescription accepts either a direct string, or a list wrapping the
// string — e.g. `(description (_ "…"))`, where the list's second element
// is used when it is a string, and otherwise its first element.
func loadDescription(im *CompiledIM, rest []Element) {
	if len(rest) == 0 {
		return
	}
	switch rest[0].Kind {
	case KindList:
		if len(rest[0].List) > 1 && rest[0].List[1].Kind == KindString {
			im.Description = rest[0].List[1].Str
		} else if len(rest[0].List) > 0 && rest[0].List[0].Kind == KindString {
			im.Description = rest[0].List[0].Str
		}
	case KindString:
		im.Description = rest[0].Str
	}
}

func loadStates(im *CompiledIM, rest []Element, logger Logger) {
	for _, stateDef := range rest {
		if stateDef.Kind != KindList || len(stateDef.List) == 0 {
			logger.DebugCat(CatLoad, "skipping malformed state definition")
			continue
		}
		nameEl := stateDef.List[0]
		if nameEl.Kind != KindSymbol {
			logger.DebugCat(CatLoad, "skipping state definition with non-symbol name")
			continue
		}
		st := State{Name: nameEl.Symbol}
		for _, branchDef := range stateDef.List[1:] {
			if branchDef.Kind != KindList || len(branchDef.List) == 0 {
				logger.DebugCat(CatLoad, "skipping malformed branch in state %q", nameEl.Symbol)
				continue
			}
			mapNameEl := branchDef.List[0]
			if mapNameEl.Kind != KindSymbol {
				logger.DebugCat(CatLoad, "skipping branch with non-symbol map name in state %q", nameEl.Symbol)
				continue
			}
			st.Branches = append(st.Branches, Branch{
				MapName:         mapNameEl.Symbol,
				TrailingActions: branchDef.List[1:],
			})
		}
		im.States = append(im.States, st)
	}
}

// compileMaps compiles every MAPDEF into a KeyseqTable. Independent map
// forms have no shared state, so each is compiled on its own goroutine;
// the result is only assembled after all of them complete, preserving
// one-way construction (no partial map is ever visible to a caller).
func compileMaps(mapDefs []Element, logger Logger) map[string]*KeyseqTable {
	result := make(map[string]*KeyseqTable, len(mapDefs))
	if len(mapDefs) == 0 {
		return result
	}

	type compiled struct {
		name  string
		table *KeyseqTable
	}
	tables := make([]compiled, len(mapDefs))

	var g errgroup.Group
	for i, mapDef := range mapDefs {
		i, mapDef := i, mapDef
		g.Go(func() error {
			if mapDef.Kind != KindList || len(mapDef.List) == 0 {
				return nil
			}
			nameEl := mapDef.List[0]
			if nameEl.Kind != KindSymbol {
				return nil
			}
			tables[i] = compiled{name: nameEl.Symbol, table: compileOneMap(mapDef.List[1:], logger)}
			return nil
		})
	}
	_ = g.Wait() // compileOneMap never returns an error; Wait only awaits completion

	for _, c := range tables {
		if c.name == "" {
			continue
		}
		result[c.name] = c.table
	}
	return result
}

func compileOneMap(rules []Element, logger Logger) *KeyseqTable {
	var entries []keyseqEntry
	for _, rule := range rules {
		if rule.Kind != KindList || len(rule.List) == 0 {
			continue
		}
		keyBytes := elementToKeyseq(rule.List[0])
		if len(keyBytes) == 0 {
			logger.DebugCat(CatLoad, "skipping rule with empty keyseq")
			continue
		}
		actions := listOf(rule.List[1:]...)
		entries = append(entries, keyseqEntry{key: keyBytes, actions: actions})
	}
	return newKeyseqTable(entries)
}

// elementToKeyseq converts a rule's KEYSEQ element into the byte sequence
// used as a table key: strings and symbols contribute their UTF-8 bytes,
// integers contribute the decimal text of their value, and lists
// concatenate their children recursively.
func elementToKeyseq(e Element) []byte {
	switch e.Kind {
	case KindString:
		return []byte(e.Str)
	case KindSymbol:
		return []byte(e.Symbol)
	case KindInt:
		return []byte(fmt.Sprintf("%d", e.Int))
	case KindList:
		var sb strings.Builder
		for _, child := range e.List {
			sb.Write(elementToKeyseq(child))
		}
		return []byte(sb.String())
	default:
		return nil
	}
}
