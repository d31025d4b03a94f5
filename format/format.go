// Package format re-prints a parsed jalm syntax tree with canonical
// spacing: items separated by a blank line, two-space block indentation,
// normalized single-space punctuation, and precedence-aware
// parenthesization of binary expressions. It never touches a tree with
// parse errors — Format returns them back to the
// caller rather than risk silently dropping a token.
//
// Grounded on the general recursive tree-printer shape used across the
// pack's language tooling (jindo's printer.go), adapted from
// go/printer-style token-stream printing down to direct CST-walk
// printing, since a jalmgo formatter prints the tree itself rather than
// a lexer token stream.
package format

import (
	"strings"

	"github.com/jalm-lang/jalmgo/diag"
	"github.com/jalm-lang/jalmgo/syntax"
)

// errParseErrorsMessage is the message of each diag.CodeParseErrors
// diagnostic Format returns when asked to print input that didn't
// parse cleanly.
const errParseErrorsMessage = "cannot format input with parse errors"

// Format parses source and, if it parsed without error, returns its
// canonical textual form. If it did not, it returns the parse
// diagnostics and no output.
func Format(source string) (string, []diag.Diagnostic) {
	green, errs := syntax.Parse(source)
	if len(errs) > 0 {
		diags := make([]diag.Diagnostic, 0, len(errs))
		for _, e := range errs {
			diags = append(diags, diag.New(diag.CodeParseErrors, errParseErrorsMessage, e.Span))
		}
		return "", diags
	}
	root := syntax.NewRoot(green)
	p := &printer{}
	p.printRoot(root)
	return p.out.String(), nil
}

// printer accumulates formatted output with explicit indent tracking:
// write bytes and track a running indent counter, rather than building
// an intermediate doc tree.
type printer struct {
	out    strings.Builder
	indent int
}

func (p *printer) writeIndent() {
	p.out.WriteString(strings.Repeat("  ", p.indent))
}

// printRoot prints every top-level item, separated by a blank line.
// Anything that isn't one of the five item kinds (e.g. a recovered
// Error node) is skipped entirely, matching the original's root()
// filter — a malformed top-level token never reaches here anyway,
// since Format refuses input with parse errors.
func (p *printer) printRoot(root *syntax.RedNode) {
	first := true
	for _, item := range root.Children() {
		if !isItemKind(item.Kind()) {
			continue
		}
		if !first {
			p.out.WriteString("\n\n")
		}
		p.printItem(item)
		first = false
	}
}

func isItemKind(k syntax.SyntaxKind) bool {
	switch k {
	case syntax.ModuleDecl, syntax.UseDecl, syntax.FnDecl, syntax.StructDecl, syntax.EnumDecl:
		return true
	default:
		return false
	}
}

func (p *printer) printItem(node *syntax.RedNode) {
	switch node.Kind() {
	case syntax.ModuleDecl:
		p.printModuleDecl(node)
	case syntax.UseDecl:
		p.printUseDecl(node)
	case syntax.FnDecl:
		p.printFnDecl(node)
	case syntax.StructDecl:
		p.printStructDecl(node)
	case syntax.EnumDecl:
		p.printEnumDecl(node)
	}
}

func (p *printer) printModuleDecl(node *syntax.RedNode) {
	p.writeIndent()
	p.out.WriteString("mod ")
	if ident, ok := node.FirstChild(syntax.IdentNode); ok {
		p.out.WriteString(identText(ident))
	}
	p.out.WriteString(";")
}

func (p *printer) printUseDecl(node *syntax.RedNode) {
	p.writeIndent()
	p.out.WriteString("use ")
	if path, ok := node.FirstChild(syntax.UsePath); ok {
		p.out.WriteString(formatUsePath(path))
	}
	if alias, ok := findAsAlias(node); ok {
		p.out.WriteString(" as ")
		p.out.WriteString(alias)
	}
	p.out.WriteString(";")
}

// formatUsePath rebuilds a `a::b::c` path from its IdentNode children's
// own text, rather than the node's raw source text, so any trivia
// between segments (e.g. a stray comment) is dropped like everywhere
// else the formatter reprints.
func formatUsePath(node *syntax.RedNode) string {
	var b strings.Builder
	for i, ident := range node.ChildrenOf(syntax.IdentNode) {
		if i > 0 {
			b.WriteString("::")
		}
		b.WriteString(identText(ident))
	}
	return b.String()
}

// findAsAlias looks for `as NAME` trailing a use path: a KwAs token
// followed (skipping trivia) by an IdentNode child of node itself, not
// of the UsePath.
func findAsAlias(node *syntax.RedNode) (string, bool) {
	sawAs := false
	for _, el := range node.ChildrenWithTokens() {
		if el.IsToken() {
			if el.Token.Kind == syntax.KwAs {
				sawAs = true
			}
			continue
		}
		if sawAs && el.Node.Kind() == syntax.IdentNode {
			return identText(el.Node), true
		}
	}
	return "", false
}

func (p *printer) printStructDecl(node *syntax.RedNode) {
	p.writeIndent()
	if isPub(node) {
		p.out.WriteString("pub ")
	}
	p.out.WriteString("struct ")
	if ident, ok := node.FirstChild(syntax.IdentNode); ok {
		p.out.WriteString(identText(ident))
	}
	p.out.WriteString(" {")
	p.indent++
	for _, field := range node.ChildrenOf(syntax.StructField) {
		p.out.WriteString("\n")
		p.writeIndent()
		p.printField(field)
		p.out.WriteString(";")
	}
	p.indent--
	p.out.WriteString("\n")
	p.writeIndent()
	p.out.WriteString("}")
}

func (p *printer) printEnumDecl(node *syntax.RedNode) {
	p.writeIndent()
	if isPub(node) {
		p.out.WriteString("pub ")
	}
	p.out.WriteString("enum ")
	if ident, ok := node.FirstChild(syntax.IdentNode); ok {
		p.out.WriteString(identText(ident))
	}
	p.out.WriteString(" {")
	p.indent++
	for _, v := range node.ChildrenOf(syntax.EnumVariant) {
		p.out.WriteString("\n")
		p.writeIndent()
		if ident, ok := v.FirstChild(syntax.IdentNode); ok {
			p.out.WriteString(identText(ident))
		}
		types := v.ChildrenOf(syntax.Type)
		if len(types) > 0 {
			p.out.WriteString("(")
			for i, ty := range types {
				if i > 0 {
					p.out.WriteString(", ")
				}
				p.out.WriteString(typeText(ty))
			}
			p.out.WriteString(")")
		}
		p.out.WriteString(";")
	}
	p.indent--
	p.out.WriteString("\n")
	p.writeIndent()
	p.out.WriteString("}")
}

// printField prints `name: Type` inside a struct body.
func (p *printer) printField(node *syntax.RedNode) {
	if ident, ok := node.FirstChild(syntax.IdentNode); ok {
		p.out.WriteString(identText(ident))
	}
	p.out.WriteString(": ")
	if ty, ok := node.FirstChild(syntax.Type); ok {
		p.out.WriteString(typeText(ty))
	}
}

// printFnDecl prints `fn name(p: T, …) -> R !{e,…} { … }`, each section
// normalized to single spaces, omitting the return type and effect set
// when the declaration has neither.
func (p *printer) printFnDecl(node *syntax.RedNode) {
	p.writeIndent()
	isPub, isAsync := false, false
	for _, t := range node.DirectTokensIgnoringTrivia() {
		switch t.Kind {
		case syntax.KwPub:
			isPub = true
		case syntax.KwAsync:
			isAsync = true
		}
	}
	if isPub {
		p.out.WriteString("pub ")
	}
	if isAsync {
		p.out.WriteString("async ")
	}
	p.out.WriteString("fn ")
	if ident, ok := node.FirstChild(syntax.IdentNode); ok {
		p.out.WriteString(identText(ident))
	}
	p.out.WriteString("(")
	if params, ok := node.FirstChild(syntax.ParamList); ok {
		p.printParamList(params)
	}
	p.out.WriteString(")")

	if retText, ok := findReturnTypeText(node); ok {
		p.out.WriteString(" -> ")
		p.out.WriteString(retText)
	}
	if effects, ok := node.FirstChild(syntax.EffectSet); ok {
		p.out.WriteString(" !{")
		p.printEffectSet(effects)
		p.out.WriteString("}")
	}
	p.out.WriteString(" ")
	if block, ok := node.FirstChild(syntax.Block); ok {
		p.printBlock(block)
	}
}

func (p *printer) printParamList(node *syntax.RedNode) {
	params := node.ChildrenOf(syntax.Param)
	for i, param := range params {
		if i > 0 {
			p.out.WriteString(", ")
		}
		if ident, ok := param.FirstChild(syntax.IdentNode); ok {
			p.out.WriteString(identText(ident))
		}
		p.out.WriteString(": ")
		if ty, ok := param.FirstChild(syntax.Type); ok {
			p.out.WriteString(typeText(ty))
		}
	}
}

func (p *printer) printEffectSet(node *syntax.RedNode) {
	idents := node.ChildrenOf(syntax.IdentNode)
	for i, ident := range idents {
		if i > 0 {
			p.out.WriteString(", ")
		}
		p.out.WriteString(identText(ident))
	}
}

// printBlock prints `{ … }`, one statement per line with a trailing
// `;` where applicable; a bare tail expression (no semicolon) is
// printed without one.
func (p *printer) printBlock(node *syntax.RedNode) {
	p.out.WriteString("{")
	stmts, ok := node.FirstChild(syntax.StmtList)
	if !ok {
		p.out.WriteString("}")
		return
	}
	children := stmts.Children()
	if len(children) == 0 {
		p.out.WriteString("}")
		return
	}
	p.out.WriteString("\n")
	p.indent++
	for _, stmt := range children {
		p.writeIndent()
		p.printStmt(stmt)
		p.out.WriteString("\n")
	}
	p.indent--
	p.writeIndent()
	p.out.WriteString("}")
}

func (p *printer) printStmt(node *syntax.RedNode) {
	switch node.Kind() {
	case syntax.LetStmt:
		p.printLetStmt(node)
	case syntax.ReturnStmt:
		p.out.WriteString("return")
		if expr := firstExprChild(node); expr != nil {
			p.out.WriteString(" ")
			p.printExpr(expr, 0)
		}
		p.out.WriteString(";")
	case syntax.ExprStmt:
		if expr := firstExprChild(node); expr != nil {
			p.printExpr(expr, 0)
		}
		p.out.WriteString(";")
	default:
		// Bare tail expression: StmtList's last child when the block
		// ends without a trailing `;`.
		p.printExpr(node, 0)
	}
}

func (p *printer) printLetStmt(node *syntax.RedNode) {
	p.out.WriteString("let ")
	for _, t := range node.DirectTokensIgnoringTrivia() {
		if t.Kind == syntax.KwMut {
			p.out.WriteString("mut ")
			break
		}
	}
	if pattern, ok := node.FirstChild(syntax.Pattern); ok {
		p.out.WriteString(printPattern(pattern))
	}
	if ty, ok := node.FirstChild(syntax.Type); ok {
		p.out.WriteString(": ")
		p.out.WriteString(typeText(ty))
	}
	p.out.WriteString(" = ")
	if expr := firstExprChild(node); expr != nil {
		p.printExpr(expr, 0)
	}
	p.out.WriteString(";")
}

// printExpr prints node, parenthesizing it iff it is a binary
// expression whose own left binding power is lower than minBP: pass
// down the minimum binding power, parenthesize iff the child's left
// binding power is less than the passed minimum. This keeps the
// formatter's parenthesization decisions fixed-point with the parser.
func (p *printer) printExpr(node *syntax.RedNode, minBP int) {
	if node.Kind() == syntax.BinExpr {
		op, lhs, rhs, ok := binParts(node)
		if ok {
			lbp, rbp, _ := syntax.BinOpBindingPower(op)
			needsParen := lbp < minBP
			if needsParen {
				p.out.WriteString("(")
			}
			p.printExpr(lhs, lbp)
			p.out.WriteString(" ")
			p.out.WriteString(syntax.BinOpSymbol(op))
			p.out.WriteString(" ")
			p.printExpr(rhs, rbp)
			if needsParen {
				p.out.WriteString(")")
			}
			return
		}
	}
	p.printPrimaryLike(node)
}

// printPrimaryLike handles every expression kind that isn't a BinExpr.
// Anything not in this set (a stray node the grammar wouldn't actually
// place here) prints nothing, same as the original's catch-all arm —
// the formatter would rather omit an impossible case than guess at its
// text.
func (p *printer) printPrimaryLike(node *syntax.RedNode) {
	switch node.Kind() {
	case syntax.Block:
		p.printBlock(node)
	case syntax.IfExpr:
		p.printIfExpr(node)
	case syntax.MatchExpr:
		p.printMatchExpr(node)
	case syntax.ParenExpr:
		p.printParenExpr(node)
	case syntax.CallExpr:
		p.printCallExpr(node)
	case syntax.MemberExpr:
		p.printMemberExpr(node)
	case syntax.IdentNode:
		p.out.WriteString(identText(node))
	case syntax.LiteralNode:
		p.out.WriteString(literalText(node))
	}
}

// printParenExpr always re-wraps its inner expression in parens: an
// explicit ParenExpr node in the tree means the source wrote them, and
// the formatter preserves that rather than second-guessing necessity
// (precedence-driven parens are inserted only around an implicit
// BinExpr child, never removed from an explicit one).
func (p *printer) printParenExpr(node *syntax.RedNode) {
	p.out.WriteString("(")
	if kids := node.Children(); len(kids) > 0 {
		p.printExpr(kids[0], 0)
	}
	p.out.WriteString(")")
}

func (p *printer) printCallExpr(node *syntax.RedNode) {
	kids := node.Children()
	if len(kids) == 0 {
		return
	}
	p.printExpr(kids[0], 0)
	p.out.WriteString("(")
	for i, arg := range kids[1:] {
		if i > 0 {
			p.out.WriteString(", ")
		}
		p.printExpr(arg, 0)
	}
	p.out.WriteString(")")
}

func (p *printer) printMemberExpr(node *syntax.RedNode) {
	kids := node.Children()
	if len(kids) == 0 {
		return
	}
	p.printExpr(kids[0], 0)
	p.out.WriteString(".")
	if len(kids) > 1 {
		p.out.WriteString(identText(kids[1]))
	}
}

// printMatchExpr prints `match scrutinee { pattern => expr, … }`, each
// arm on its own line ending with `,` regardless of whether the
// source had a trailing comma on the last arm.
func (p *printer) printMatchExpr(node *syntax.RedNode) {
	kids := node.Children()
	p.out.WriteString("match ")
	if len(kids) > 0 {
		p.printExpr(kids[0], 0)
	}
	p.out.WriteString(" {")
	p.indent++
	for _, arm := range node.ChildrenOf(syntax.MatchArm) {
		p.out.WriteString("\n")
		p.writeIndent()
		if pattern, ok := arm.FirstChild(syntax.Pattern); ok {
			p.out.WriteString(printPattern(pattern))
		}
		p.out.WriteString(" => ")
		if expr := firstExprChild(arm); expr != nil {
			p.printExpr(expr, 0)
		}
		p.out.WriteString(",")
	}
	p.indent--
	p.out.WriteString("\n")
	p.writeIndent()
	p.out.WriteString("}")
}

func (p *printer) printIfExpr(node *syntax.RedNode) {
	kids := node.Children()
	p.out.WriteString("if ")
	if len(kids) > 0 {
		p.printExpr(kids[0], 0)
	}
	p.out.WriteString(" ")
	if len(kids) > 1 {
		p.printBlock(kids[1])
	}
	if len(kids) > 2 {
		p.out.WriteString(" else ")
		if kids[2].Kind() == syntax.IfExpr {
			p.printIfExpr(kids[2])
		} else {
			p.printBlock(kids[2])
		}
	}
}

func isPub(node *syntax.RedNode) bool {
	for _, t := range node.DirectTokensIgnoringTrivia() {
		if t.Kind == syntax.KwPub {
			return true
		}
	}
	return false
}

func identText(node *syntax.RedNode) string {
	if t, ok := node.FirstToken(syntax.Ident); ok {
		return t.Text
	}
	return node.Text()
}

// typeText renders a Type node as its trimmed source text, matching the
// original's type_node (which prints the node's raw text trimmed rather
// than reconstructing it token-by-token — jalm's v0 type grammar is
// just a name or a `::`-separated path, not worth re-deriving).
func typeText(node *syntax.RedNode) string {
	return strings.TrimSpace(node.Text())
}

func literalText(node *syntax.RedNode) string {
	for _, t := range node.DirectTokensIgnoringTrivia() {
		if t.Kind.IsLiteral() {
			return t.Text
		}
	}
	return ""
}

// printPattern renders a Pattern node: an underscore token, a literal,
// or an identifier, in that priority order, matching parsePattern's
// three possible shapes.
func printPattern(node *syntax.RedNode) string {
	for _, t := range node.DirectTokensIgnoringTrivia() {
		if t.Kind == syntax.Underscore {
			return t.Text
		}
	}
	if lit, ok := node.FirstChild(syntax.LiteralNode); ok {
		return literalText(lit)
	}
	if ident, ok := node.FirstChild(syntax.IdentNode); ok {
		return identText(ident)
	}
	return ""
}

func firstExprChild(node *syntax.RedNode) *syntax.RedNode {
	for _, c := range node.Children() {
		if isExprKind(c.Kind()) {
			return c
		}
	}
	return nil
}

func isExprKind(k syntax.SyntaxKind) bool {
	switch k {
	case syntax.BinExpr, syntax.CallExpr, syntax.MemberExpr, syntax.IfExpr,
		syntax.MatchExpr, syntax.IdentNode, syntax.LiteralNode, syntax.ParenExpr, syntax.Block:
		return true
	default:
		return false
	}
}

func binParts(node *syntax.RedNode) (op syntax.SyntaxKind, lhs, rhs *syntax.RedNode, ok bool) {
	kids := node.Children()
	if len(kids) < 2 {
		return 0, nil, nil, false
	}
	for _, t := range node.DirectTokensIgnoringTrivia() {
		if _, _, isBin := syntax.BinOpBindingPower(t.Kind); isBin {
			return t.Kind, kids[0], kids[1], true
		}
	}
	return 0, nil, nil, false
}

func findReturnTypeText(node *syntax.RedNode) (string, bool) {
	seenArrow := false
	for _, el := range node.ChildrenWithTokens() {
		if el.IsToken() {
			if el.Token.Kind == syntax.Arrow {
				seenArrow = true
			}
			continue
		}
		if seenArrow && el.Node.Kind() == syntax.Type {
			return typeText(el.Node), true
		}
	}
	return "", false
}
