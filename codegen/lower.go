package codegen

import (
	"strconv"

	"github.com/jalm-lang/jalmgo/syntax"
)

// CollectFunctions lowers every FnDecl directly under root into a FnDef,
// skipping any it can't even assign a name to (this mirrors
// lower_fn's total function: a function whose name is somehow
// unparseable simply doesn't appear in the IR, rather than panicking).
//
// Grounded on jalm_codegen::collect_functions/lower_fn (original_source).
func CollectFunctions(root *syntax.RedNode) []*FnDef {
	var out []*FnDef
	for _, node := range root.ChildrenOf(syntax.FnDecl) {
		if f := lowerFn(node); f != nil {
			out = append(out, f)
		}
	}
	return out
}

func lowerFn(node *syntax.RedNode) *FnDef {
	nameNode, ok := node.FirstChild(syntax.IdentNode)
	if !ok {
		return nil
	}
	name, ok := findIdentText(nameNode)
	if !ok {
		return nil
	}

	var params []Local
	if paramList, ok := node.FirstChild(syntax.ParamList); ok {
		params = lowerParams(paramList)
	}

	var ret *ValType
	if retText, ok := findReturnTypeText(node); ok {
		if ty, ok := mapType(retText); ok {
			ret = &ty
		}
	}

	var locals []Local
	var body []Stmt
	if block, ok := node.FirstChild(syntax.Block); ok {
		locals, body = lowerBlock(block)
	}

	return &FnDef{Name: name, Params: params, Locals: locals, Body: body, Ret: ret}
}

func lowerParams(node *syntax.RedNode) []Local {
	var out []Local
	for _, param := range node.ChildrenOf(syntax.Param) {
		nameNode, hasName := param.FirstChild(syntax.IdentNode)
		tyNode, hasType := param.FirstChild(syntax.Type)
		if !hasName || !hasType {
			continue
		}
		name, ok := findIdentText(nameNode)
		if !ok {
			continue
		}
		ty, ok := mapType(tyNode.Text())
		if !ok {
			continue
		}
		out = append(out, Local{Name: name, Type: ty})
	}
	return out
}

// lowerBlock lowers a Block's StmtList into IR statements, collecting
// every `let`-introduced local along the way in declaration order (the
// code generator numbers locals params-first, then lets in order, and
// this is the pass that establishes that order).
func lowerBlock(node *syntax.RedNode) (locals []Local, out []Stmt) {
	stmts, ok := node.FirstChild(syntax.StmtList)
	if !ok {
		return nil, nil
	}
	for _, stmt := range stmts.Children() {
		switch stmt.Kind() {
		case syntax.LetStmt:
			nameNode, hasName := stmt.FirstChild(syntax.Pattern)
			if !hasName {
				continue
			}
			name, ok := findIdentText(nameNode)
			if !ok {
				continue
			}
			exprNode := firstExprChild(stmt)
			if exprNode == nil {
				continue
			}
			expr, ok := lowerExpr(exprNode)
			if !ok {
				continue
			}
			ty := ValI64
			if tyNode, ok := stmt.FirstChild(syntax.Type); ok {
				if mapped, ok := mapType(tyNode.Text()); ok {
					ty = mapped
				}
			}
			locals = append(locals, Local{Name: name, Type: ty})
			out = append(out, LetStmt{Name: name, Expr: expr})
		case syntax.ReturnStmt:
			if exprNode := firstExprChild(stmt); exprNode != nil {
				if expr, ok := lowerExpr(exprNode); ok {
					out = append(out, ReturnStmt{Expr: expr})
				}
			}
		case syntax.IfExpr:
			if s := lowerIf(stmt); s != nil {
				out = append(out, s)
			}
		case syntax.ExprStmt:
			if exprNode := firstExprChild(stmt); exprNode != nil {
				if expr, ok := lowerExpr(exprNode); ok {
					out = append(out, ExprStmt{Expr: expr})
				}
			}
		}
	}
	return locals, out
}

func lowerIf(node *syntax.RedNode) Stmt {
	kids := node.Children()
	if len(kids) == 0 {
		return nil
	}
	cond, ok := lowerExpr(kids[0])
	if !ok {
		return nil
	}
	if len(kids) < 2 {
		return nil
	}
	_, thenBody := lowerBlock(kids[1])
	var elseBody []Stmt
	if len(kids) > 2 {
		elseNode := kids[2]
		if elseNode.Kind() == syntax.IfExpr {
			if nested := lowerIf(elseNode); nested != nil {
				elseBody = []Stmt{nested}
			}
		} else {
			_, elseBody = lowerBlock(elseNode)
		}
	}
	return IfStmt{Cond: cond, Then: thenBody, Else: elseBody}
}

func lowerExpr(node *syntax.RedNode) (Expr, bool) {
	switch node.Kind() {
	case syntax.LiteralNode:
		for _, el := range node.ChildrenWithTokens() {
			if !el.IsToken() {
				continue
			}
			switch el.Token.Kind {
			case syntax.IntLit:
				v, err := strconv.ParseInt(el.Token.Text, 10, 64)
				if err != nil {
					return nil, false
				}
				return IntExpr{Value: v}, true
			case syntax.KwTrue:
				return BoolExpr{Value: true}, true
			case syntax.KwFalse:
				return BoolExpr{Value: false}, true
			default:
				return nil, false
			}
		}
		return nil, false
	case syntax.IdentNode:
		name, ok := findIdentText(node)
		if !ok {
			return nil, false
		}
		return IdentExpr{Name: name}, true
	case syntax.BinExpr:
		kids := node.Children()
		if len(kids) < 2 {
			return nil, false
		}
		lhs, ok := lowerExpr(kids[0])
		if !ok {
			return nil, false
		}
		rhs, ok := lowerExpr(kids[1])
		if !ok {
			return nil, false
		}
		var opKind syntax.SyntaxKind
		found := false
		for _, el := range node.ChildrenWithTokens() {
			if el.IsToken() && isBinOpToken(el.Token.Kind) {
				opKind = el.Token.Kind
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
		op, ok := mapBinOp(opKind)
		if !ok {
			return nil, false
		}
		return BinOpExpr{Op: op, Lhs: lhs, Rhs: rhs}, true
	case syntax.CallExpr:
		kids := node.Children()
		if len(kids) == 0 {
			return nil, false
		}
		name, ok := findIdentText(kids[0])
		if !ok {
			return nil, false
		}
		var args []Expr
		for _, arg := range kids[1:] {
			if expr, ok := lowerExpr(arg); ok {
				args = append(args, expr)
			}
		}
		return CallExpr{Name: name, Args: args}, true
	case syntax.ParenExpr:
		if inner := firstExprChild(node); inner != nil {
			return lowerExpr(inner)
		}
		return nil, false
	default:
		return nil, false
	}
}

func firstExprChild(node *syntax.RedNode) *syntax.RedNode {
	for _, child := range node.Children() {
		if isExprKind(child.Kind()) {
			return child
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

func isBinOpToken(k syntax.SyntaxKind) bool {
	switch k {
	case syntax.Plus, syntax.Minus, syntax.Star, syntax.Slash,
		syntax.EqEq, syntax.Neq, syntax.Lt, syntax.LtEq, syntax.Gt, syntax.GtEq:
		return true
	default:
		return false
	}
}

func mapBinOp(k syntax.SyntaxKind) (BinOp, bool) {
	switch k {
	case syntax.Plus:
		return OpAdd, true
	case syntax.Minus:
		return OpSub, true
	case syntax.Star:
		return OpMul, true
	case syntax.Slash:
		return OpDiv, true
	case syntax.EqEq:
		return OpEq, true
	case syntax.Neq:
		return OpNe, true
	case syntax.Lt:
		return OpLt, true
	case syntax.LtEq:
		return OpLe, true
	case syntax.Gt:
		return OpGt, true
	case syntax.GtEq:
		return OpGe, true
	default:
		return 0, false
	}
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
			return el.Node.Text(), true
		}
	}
	return "", false
}

func mapType(text string) (ValType, bool) {
	switch text {
	case "i64":
		return ValI64, true
	case "i32", "bool":
		return ValI32, true
	default:
		return 0, false
	}
}

// findIdentText depth-first searches the entire subtree (not just direct
// children) for the first Ident token, mirroring the original's
// descendants_with_tokens() scan.
func findIdentText(node *syntax.RedNode) (string, bool) {
	for _, el := range node.ChildrenWithTokens() {
		if el.IsToken() {
			if el.Token.Kind == syntax.Ident {
				return el.Token.Text, true
			}
			continue
		}
		if name, ok := findIdentText(el.Node); ok {
			return name, true
		}
	}
	return "", false
}
