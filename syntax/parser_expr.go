package syntax

import "fmt"

// infixBindingPower returns the (left, right) binding power of kind if
// it is a binary operator. All operators are left-associative
// (l_bp < r_bp), which is what lets a chain like
// `a - b - c` parse as `(a - b) - c` instead of `a - (b - c)`: after
// consuming the first `-`, the recursive call uses r_bp as its min_bp,
// and the second `-` is rejected there (its own l_bp is not >= r_bp of
// the first) and instead picked up by the outer loop.
func infixBindingPower(kind SyntaxKind) (lbp, rbp int, ok bool) {
	return BinOpBindingPower(kind)
}

// parseBlock parses `{ StmtList }`. The stmt list itself collects
// let/return/expr-statements, stopping at the first expression with no
// trailing `;` (the block's tail expression) or at the closing brace.
func (p *Parser) parseBlock() CompletedMarker {
	leave, ok := p.enterDepth()
	defer leave()
	if !ok {
		return p.tooDeep()
	}

	m := p.Start()
	p.expect(LBrace)
	stmts := p.Start()
	for !p.atKind(RBrace) && !p.atEof() {
		if p.atKind(KwLet) {
			p.parseLetStmt()
			continue
		}
		if p.atKind(KwReturn) {
			p.parseReturnStmt()
			continue
		}

		expr := p.parseExprBP(0)
		if p.atKind(Semi) {
			s := p.Precede(expr)
			p.bump()
			p.Complete(s, ExprStmt)
			continue
		}

		// Bare expression with no trailing `;`: the block's tail
		// expression. Leave it unwrapped as StmtList's last child and
		// stop consuming statements.
		break
	}
	p.Complete(stmts, StmtList)
	p.expect(RBrace)
	return p.Complete(m, Block)
}

func (p *Parser) parseLetStmt() {
	m := p.Start()
	p.expect(KwLet)
	if p.atKind(KwMut) {
		p.bump()
	}
	p.parsePattern()
	if p.atKind(Colon) {
		p.bump()
		p.parseType()
	}
	p.expect(Eq)
	p.parseExprBP(0)
	p.expect(Semi)
	p.Complete(m, LetStmt)
}

func (p *Parser) parseReturnStmt() {
	m := p.Start()
	p.expect(KwReturn)
	if !p.atKind(Semi) {
		p.parseExprBP(0)
	}
	p.expect(Semi)
	p.Complete(m, ReturnStmt)
}

func (p *Parser) parsePattern() {
	m := p.Start()
	switch {
	case p.atKind(Ident):
		p.parseIdent()
	case p.current().IsLiteral():
		p.parseLiteral()
	case p.atKind(Underscore):
		p.bump()
	default:
		p.eatTrivia()
		p.events.Error(fmt.Sprintf("expected pattern, found %s", describeToken(p.at(0))))
		if !p.atEof() {
			p.bump()
		}
	}
	p.Complete(m, Pattern)
}

// parseExprBP is the Pratt core: parse a primary/postfix expression, then
// repeatedly fold in binary operators whose left binding power is at
// least minBP, using precede() to retroactively wrap the left-hand side
// in a BinExpr once the operator is seen.
func (p *Parser) parseExprBP(minBP int) CompletedMarker {
	leave, ok := p.enterDepth()
	defer leave()
	if !ok {
		return p.tooDeep()
	}

	lhs := p.parsePostfix()

	for {
		lbp, rbp, ok := infixBindingPower(p.current())
		if !ok || lbp < minBP {
			break
		}
		m := p.Precede(lhs)
		p.bump()
		p.parseExprBP(rbp)
		lhs = p.Complete(m, BinExpr)
	}
	return lhs
}

// parsePostfix handles call `(args)` and member `.NAME` suffixes applied
// to a primary expression, left-to-right (so `a.b(c).d` builds up as
// nested MemberExpr/CallExpr wrapping innermost-first).
func (p *Parser) parsePostfix() CompletedMarker {
	lhs := p.parsePrimary()
	for {
		if p.atKind(LParen) {
			m := p.Precede(lhs)
			p.bump()
			if !p.atKind(RParen) {
				for {
					p.parseExprBP(0)
					if p.atKind(Comma) {
						p.bump()
						if p.atKind(RParen) {
							break
						}
					} else {
						break
					}
				}
			}
			p.expect(RParen)
			lhs = p.Complete(m, CallExpr)
			continue
		}
		if p.atKind(Dot) {
			m := p.Precede(lhs)
			p.bump()
			p.parseIdent()
			lhs = p.Complete(m, MemberExpr)
			continue
		}
		break
	}
	return lhs
}

func (p *Parser) parsePrimary() CompletedMarker {
	switch {
	case p.atKind(LBrace):
		return p.parseBlock()
	case p.atKind(KwIf):
		return p.parseIfExpr()
	case p.atKind(KwMatch):
		return p.parseMatchExpr()
	case p.atKind(Ident):
		return p.parseIdent()
	case p.current().IsLiteral():
		return p.parseLiteral()
	case p.atKind(LParen):
		m := p.Start()
		p.bump()
		p.parseExprBP(0)
		p.expect(RParen)
		return p.Complete(m, ParenExpr)
	default:
		m := p.Start()
		p.eatTrivia()
		p.events.Error(fmt.Sprintf("expected expression, found %s", describeToken(p.at(0))))
		if !p.atEof() {
			p.bump()
		}
		return p.Complete(m, Error)
	}
}

func (p *Parser) parseIfExpr() CompletedMarker {
	leave, ok := p.enterDepth()
	defer leave()
	if !ok {
		return p.tooDeep()
	}

	m := p.Start()
	p.expect(KwIf)
	p.parseExprBP(0)
	p.parseBlock()
	if p.atKind(KwElse) {
		p.bump()
		if p.atKind(KwIf) {
			p.parseIfExpr()
		} else {
			p.parseBlock()
		}
	}
	return p.Complete(m, IfExpr)
}

func (p *Parser) parseMatchExpr() CompletedMarker {
	leave, ok := p.enterDepth()
	defer leave()
	if !ok {
		return p.tooDeep()
	}

	m := p.Start()
	p.expect(KwMatch)
	p.parseExprBP(0)
	p.expect(LBrace)
	for !p.atKind(RBrace) && !p.atEof() {
		arm := p.Start()
		p.parsePattern()
		p.expect(FatArrow)
		p.parseExprBP(0)
		if p.atKind(Comma) {
			p.bump()
		} else {
			p.eatTrivia()
			p.events.Error("expected ',' after match arm")
		}
		p.Complete(arm, MatchArm)
	}
	p.expect(RBrace)
	return p.Complete(m, MatchExpr)
}

func (p *Parser) parseIdent() CompletedMarker {
	m := p.Start()
	if p.atKind(Ident) {
		p.bump()
	} else {
		p.eatTrivia()
		p.events.Error(fmt.Sprintf("expected identifier, found %s", describeToken(p.at(0))))
		if !p.atEof() {
			p.bump()
		}
	}
	return p.Complete(m, IdentNode)
}

func (p *Parser) parseLiteral() CompletedMarker {
	m := p.Start()
	if p.current().IsLiteral() {
		p.bump()
	} else {
		p.eatTrivia()
		p.events.Error(fmt.Sprintf("expected literal, found %s", describeToken(p.at(0))))
		if !p.atEof() {
			p.bump()
		}
	}
	return p.Complete(m, LiteralNode)
}
