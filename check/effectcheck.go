package check

import (
	"github.com/jalm-lang/jalmgo/diag"
	"github.com/jalm-lang/jalmgo/syntax"
)

// knownEffects is the set declared effect names are filtered against;
// anything else written inside a `!{...}` clause is silently ignored.
var knownEffects = map[string]bool{
	"io": true, "net": true, "fs": true, "time": true, "rand": true, "ffi": true,
}

// modulePrefixEffect maps a module identifier to the effect it implies:
// `http::` and `log::` fold into `net`/`io` respectively; everything
// else is name-for-name.
var modulePrefixEffect = map[string]string{
	"fs":   "fs",
	"net":  "net",
	"http": "net",
	"time": "time",
	"rand": "rand",
	"log":  "io",
	"ffi":  "ffi",
}

// CheckEffects walks every FnDecl under root, comparing the effects its
// body actually uses against the ones it declares in `!{...}`, and
// reports E1001 for every undeclared use.
//
// This scans the significant token stream rather than raw source text —
// an Ident token whose text is a known module name, directly followed by
// a `::` token — which only ever matches real code and can't land inside
// a LineComment, BlockComment, or StringLit token, since those are lexed
// as single opaque tokens rather than as Ident/ColonColon pairs. A raw
// substring scan would misfire inside comments and string literals;
// scanning tokens avoids that class of false positive entirely.
func CheckEffects(root *syntax.RedNode) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic
	for _, item := range root.Children() {
		if item.Kind() != syntax.FnDecl {
			continue
		}
		declared := declaredEffects(item)
		block, ok := item.FirstChild(syntax.Block)
		if !ok {
			continue
		}
		for _, use := range effectsUsedIn(block) {
			if !declared[use.effect] {
				d := diag.New(diag.CodeUndeclaredEffect, "undeclared effect", use.span)
				d.Required = diag.Str(use.effect)
				diagnostics = append(diagnostics, d)
			}
		}
	}
	diag.SortBySpan(diagnostics)
	return diagnostics
}

func declaredEffects(node *syntax.RedNode) map[string]bool {
	effects := make(map[string]bool)
	effectSet, ok := node.FirstChild(syntax.EffectSet)
	if !ok {
		return effects
	}
	for _, ident := range effectSet.ChildrenOf(syntax.IdentNode) {
		name, ok := findIdentIn(ident)
		if !ok {
			continue
		}
		if knownEffects[name] {
			effects[name] = true
		}
	}
	return effects
}

type effectUse struct {
	effect string
	span   syntax.Span
}

func effectsUsedIn(node *syntax.RedNode) []effectUse {
	var uses []effectUse
	tokens := significantTokens(node)
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Kind != syntax.Ident || tokens[i+1].Kind != syntax.ColonColon {
			continue
		}
		effect, ok := modulePrefixEffect[tokens[i].Text]
		if !ok {
			continue
		}
		uses = append(uses, effectUse{
			effect: effect,
			span:   syntax.Span{Start: tokens[i].Span.Start, End: tokens[i+1].Span.End},
		})
	}
	return uses
}

// significantTokens flattens a subtree into its non-trivia tokens, in
// document order, with absolute spans.
func significantTokens(node *syntax.RedNode) []syntax.RedToken {
	var out []syntax.RedToken
	var walk func(n *syntax.RedNode)
	walk = func(n *syntax.RedNode) {
		for _, el := range n.ChildrenWithTokens() {
			if el.IsToken() {
				if !el.Token.Kind.IsTrivia() {
					out = append(out, *el.Token)
				}
				continue
			}
			walk(el.Node)
		}
	}
	walk(node)
	return out
}
