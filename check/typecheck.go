package check

import (
	"github.com/jalm-lang/jalmgo/diag"
	"github.com/jalm-lang/jalmgo/syntax"
)

// exprKinds is the set of node kinds check_expr knows how to type, used
// to distinguish "the tail expression" from ordinary statements while
// walking a StmtList, and to find "the expression operand" among a
// node's direct children without caring which syntactic position it's in.
//
// Grounded on jalm_typecheck's is_expr_kind (original_source).
func isExprKind(k syntax.SyntaxKind) bool {
	switch k {
	case syntax.BinExpr, syntax.CallExpr, syntax.MemberExpr, syntax.IfExpr,
		syntax.MatchExpr, syntax.IdentNode, syntax.LiteralNode, syntax.ParenExpr, syntax.Block:
		return true
	default:
		return false
	}
}

// Checker is a two-pass-per-function type checker: pass one resolves the
// declared signature and binds parameters, pass two walks the body once,
// computing and checking types bottom-up. It never mutates the tree and
// produces an independent diagnostics list per run.
//
// Grounded on jalm_typecheck::Checker (original_source) — the dispatch-
// by-kind recursive tree walk is carried over essentially verbatim,
// retargeted from rowan's SyntaxNode to syntax.RedNode.
type Checker struct {
	scopes        *scopeStack
	currentReturn Type
	diagnostics   []diag.Diagnostic
}

// NewChecker creates an empty checker.
func NewChecker() *Checker {
	return &Checker{scopes: newScopeStack(), currentReturn: Unit}
}

// Check runs the checker over every FnDecl directly under root and
// returns the accumulated, span-ordered diagnostics.
func Check(root *syntax.RedNode) []diag.Diagnostic {
	c := NewChecker()
	for _, item := range root.Children() {
		if item.Kind() == syntax.FnDecl {
			c.checkFn(item)
		}
	}
	diag.SortBySpan(c.diagnostics)
	return c.diagnostics
}

func (c *Checker) checkFn(node *syntax.RedNode) {
	ret, hasRet := findReturnType(node)
	if !hasRet {
		ret = Unit
	}
	saved := c.currentReturn
	c.currentReturn = ret
	c.scopes = newScopeStack()

	if params, ok := node.FirstChild(syntax.ParamList); ok {
		for _, param := range params.ChildrenOf(syntax.Param) {
			name, hasName := findIdentIn(param)
			ty, hasType := findTypeIn(param)
			if hasName && hasType {
				c.scopes.insert(name, ty)
			}
		}
	}

	if block, ok := node.FirstChild(syntax.Block); ok {
		bodyTy := c.checkBlock(block)
		expected := c.currentReturn
		if !bodyTy.Equal(Error) && !Compatible(expected, bodyTy) {
			c.typeMismatch(block, expected, bodyTy, diag.CodeReturnMismatch)
		}
	}

	c.currentReturn = saved
}

// checkBlock types every statement in the block's StmtList; the last
// child is treated as the block's tail expression — and contributes the
// block's type — iff it is an expression-kind node that isn't itself an
// ExprStmt (i.e. it has no trailing `;`). A block whose last statement is
// a `return` has type Unknown: its end is never reached, and checkReturn
// has already checked the returned value against the return type.
func (c *Checker) checkBlock(node *syntax.RedNode) Type {
	last := Unit
	stmts, ok := node.FirstChild(syntax.StmtList)
	if !ok {
		return last
	}
	items := stmts.Children()
	for i, stmt := range items {
		if i+1 == len(items) && isExprKind(stmt.Kind()) && stmt.Kind() != syntax.ExprStmt {
			last = c.checkExpr(stmt)
		} else {
			c.checkStmt(stmt)
		}
	}
	if n := len(items); n > 0 && items[n-1].Kind() == syntax.ReturnStmt {
		last = Unknown
	}
	return last
}

func (c *Checker) checkStmt(node *syntax.RedNode) {
	switch node.Kind() {
	case syntax.LetStmt:
		c.checkLet(node)
	case syntax.ReturnStmt:
		c.checkReturn(node)
	case syntax.ExprStmt:
		for _, child := range node.Children() {
			if isExprKind(child.Kind()) {
				c.checkExpr(child)
				break
			}
		}
	default:
		if isExprKind(node.Kind()) {
			c.checkExpr(node)
		}
	}
}

func (c *Checker) checkLet(node *syntax.RedNode) {
	var name string
	var hasName bool
	if pat, ok := node.FirstChild(syntax.Pattern); ok {
		name, hasName = findIdentIn(pat)
	}
	var annot Type
	hasAnnot := false
	if tyNode, ok := node.FirstChild(syntax.Type); ok {
		annot = typeFromNode(tyNode)
		hasAnnot = true
	}
	exprTy := Unknown
	if expr, ok := findExprAfterToken(node, syntax.Eq); ok {
		exprTy = c.checkExpr(expr)
	}
	if !hasName {
		return
	}
	if hasAnnot {
		if !exprTy.Equal(Error) && !Compatible(annot, exprTy) {
			c.typeMismatch(node, annot, exprTy, diag.CodeTypeMismatch)
		}
		c.scopes.insert(name, annot)
	} else {
		c.scopes.insert(name, exprTy)
	}
}

func (c *Checker) checkReturn(node *syntax.RedNode) {
	exprTy := Unit
	for _, child := range node.Children() {
		if isExprKind(child.Kind()) {
			exprTy = c.checkExpr(child)
			break
		}
	}
	expected := c.currentReturn
	if !exprTy.Equal(Error) && !Compatible(expected, exprTy) {
		c.typeMismatch(node, expected, exprTy, diag.CodeReturnMismatch)
	}
}

func (c *Checker) checkExpr(node *syntax.RedNode) Type {
	switch node.Kind() {
	case syntax.IdentNode:
		name, ok := findIdentIn(node)
		if !ok {
			return Unknown
		}
		if ty, found := c.scopes.lookup(name); found {
			return ty
		}
		c.report(node, diag.CodeUndefinedVariable, "undefined variable", nil, diag.Str(name))
		return Error
	case syntax.LiteralNode:
		return literalType(node)
	case syntax.BinExpr:
		return c.checkBinExpr(node)
	case syntax.CallExpr, syntax.MemberExpr:
		return Unknown
	case syntax.IfExpr:
		return c.checkIfExpr(node)
	case syntax.MatchExpr:
		return c.checkMatchExpr(node)
	case syntax.Block:
		return c.checkBlock(node)
	case syntax.ParenExpr:
		for _, child := range node.Children() {
			if isExprKind(child.Kind()) {
				return c.checkExpr(child)
			}
		}
		return Unknown
	default:
		return Unknown
	}
}

func (c *Checker) checkIfExpr(node *syntax.RedNode) Type {
	kids := node.Children()
	var cond, thenBlock, elseBlock *syntax.RedNode
	if len(kids) > 0 {
		cond = kids[0]
	}
	if len(kids) > 1 {
		thenBlock = kids[1]
	}
	if len(kids) > 2 {
		elseBlock = kids[2]
	}
	if cond != nil {
		condTy := c.checkExpr(cond)
		if !condTy.Equal(Bool) && !condTy.Equal(Error) {
			c.typeMismatch(cond, Bool, condTy, diag.CodeNonBoolCondition)
		}
	}
	thenTy := Unit
	if thenBlock != nil {
		thenTy = c.checkExpr(thenBlock)
	}
	elseTy := Unit
	if elseBlock != nil {
		elseTy = c.checkExpr(elseBlock)
	}
	if !thenTy.Equal(Error) && !elseTy.Equal(Error) && !Compatible(thenTy, elseTy) {
		c.typeMismatch(node, thenTy, elseTy, diag.CodeIfBranchMismatch)
		return Error
	}
	return thenTy
}

func (c *Checker) checkMatchExpr(node *syntax.RedNode) Type {
	kids := node.Children()
	if len(kids) > 0 {
		c.checkExpr(kids[0])
	}
	var armType Type
	haveArmType := false
	for _, arm := range node.ChildrenOf(syntax.MatchArm) {
		var exprChild *syntax.RedNode
		for _, child := range arm.Children() {
			if isExprKind(child.Kind()) {
				exprChild = child
				break
			}
		}
		if exprChild == nil {
			continue
		}
		ty := c.checkExpr(exprChild)
		if haveArmType {
			if !armType.Equal(Error) && !ty.Equal(Error) && !Compatible(armType, ty) {
				c.typeMismatch(arm, armType, ty, diag.CodeMatchArmMismatch)
				return Error
			}
		} else {
			armType = ty
			haveArmType = true
		}
	}
	if !haveArmType {
		return Unit
	}
	return armType
}

func (c *Checker) checkBinExpr(node *syntax.RedNode) Type {
	opKind, left, right, ok := binParts(node)
	if !ok {
		return Unknown
	}
	l := c.checkExpr(left)
	r := c.checkExpr(right)
	if l.Equal(Error) || r.Equal(Error) {
		return Error
	}
	switch opKind {
	case syntax.Plus, syntax.Minus, syntax.Star, syntax.Slash, syntax.Percent:
		if l.IsNumeric() && Compatible(l, r) {
			return l
		}
		c.typeMismatch(node, l, r, diag.CodeTypeMismatch)
		return Error
	case syntax.EqEq, syntax.Neq:
		if Compatible(l, r) {
			return Bool
		}
		c.typeMismatch(node, l, r, diag.CodeTypeMismatch)
		return Error
	case syntax.Lt, syntax.LtEq, syntax.Gt, syntax.GtEq:
		if l.IsNumeric() && Compatible(l, r) {
			return Bool
		}
		c.typeMismatch(node, l, r, diag.CodeTypeMismatch)
		return Error
	case syntax.AndAnd, syntax.OrOr:
		if l.Equal(Bool) && r.Equal(Bool) {
			return Bool
		}
		c.typeMismatch(node, Bool, l, diag.CodeTypeMismatch)
		return Error
	default:
		return Unknown
	}
}

func (c *Checker) report(node *syntax.RedNode, code diag.Code, message string, expected, actual *string) {
	d := diag.New(code, message, node.Span())
	d.Expected = expected
	d.Actual = actual
	c.diagnostics = append(c.diagnostics, d)
}

func (c *Checker) typeMismatch(node *syntax.RedNode, expected, actual Type, code diag.Code) {
	c.report(node, code, "type mismatch", diag.Str(expected.Name()), diag.Str(actual.Name()))
}

// --- tree-scanning helpers, grounded on jalm_typecheck's free functions ---

func findReturnType(node *syntax.RedNode) (Type, bool) {
	seenArrow := false
	for _, el := range node.ChildrenWithTokens() {
		if el.IsToken() {
			if el.Token.Kind == syntax.Arrow {
				seenArrow = true
			}
			continue
		}
		if seenArrow && el.Node.Kind() == syntax.Type {
			return typeFromNode(el.Node), true
		}
	}
	return Type{}, false
}

// findIdentIn recursively searches node for the first direct Ident
// token; failing that, it descends into sub-nodes in order. This mirrors
// a pattern's or parameter's "find the name" query without needing to
// know in advance how deep the identifier sits (a bare IdentNode vs. a
// Pattern wrapping one).
func findIdentIn(node *syntax.RedNode) (string, bool) {
	if tok, ok := node.FirstToken(syntax.Ident); ok {
		return tok.Text, true
	}
	for _, child := range node.Children() {
		if name, ok := findIdentIn(child); ok {
			return name, true
		}
	}
	return "", false
}

func findTypeIn(node *syntax.RedNode) (Type, bool) {
	tyNode, ok := node.FirstChild(syntax.Type)
	if !ok {
		return Type{}, false
	}
	return typeFromNode(tyNode), true
}

func typeFromNode(node *syntax.RedNode) Type {
	return TypeFromPath(node.Text())
}

func literalType(node *syntax.RedNode) Type {
	for _, el := range node.ChildrenWithTokens() {
		if el.IsToken() {
			return LiteralType(el.Token.Kind)
		}
	}
	return Unknown
}

// binParts extracts a BinExpr's left operand, operator kind, and right
// operand. The operand nodes come from Children() (first two node
// children); the operator comes from a separate scan over
// ChildrenWithTokens for the first token in the known binary-operator
// set, since it sits positionally between the two operand nodes rather
// than being discoverable by index alone.
func binParts(node *syntax.RedNode) (opKind syntax.SyntaxKind, left, right *syntax.RedNode, ok bool) {
	kids := node.Children()
	if len(kids) < 2 {
		return 0, nil, nil, false
	}
	left, right = kids[0], kids[1]
	for _, el := range node.ChildrenWithTokens() {
		if !el.IsToken() {
			continue
		}
		if syntax.BinaryOpSet.Contains(el.Token.Kind) {
			return el.Token.Kind, left, right, true
		}
	}
	return 0, nil, nil, false
}

func findExprAfterToken(node *syntax.RedNode, tokenKind syntax.SyntaxKind) (*syntax.RedNode, bool) {
	seen := false
	for _, el := range node.ChildrenWithTokens() {
		if el.IsToken() {
			if el.Token.Kind == tokenKind {
				seen = true
			}
			continue
		}
		if seen && isExprKind(el.Node.Kind()) {
			return el.Node, true
		}
	}
	return nil, false
}
