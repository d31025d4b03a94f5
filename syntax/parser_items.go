package syntax

// parseItem recognizes one top-level item: ModuleDecl, UseDecl, FnDecl
// (optionally `pub`/`async`), StructDecl, EnumDecl. Any other starting
// token becomes an Error node wrapping one consumed token.
//
// Grounded on the original jalmt parser's parse_root dispatch
// (jalm_parser/src/lib.rs) and translated into the event-based marker
// protocol instead of direct event-vector mutation.
func (p *Parser) parseItem() {
	switch {
	case p.atKind(KwMod):
		p.parseModuleDecl()
	case p.atKind(KwUse):
		p.parseUseDecl()
	case p.atKind(KwPub):
		switch p.nthKind(1) {
		case KwFn, KwAsync:
			p.parseFnDecl()
		case KwStruct:
			p.parseStructDecl()
		case KwEnum:
			p.parseEnumDecl()
		default:
			p.errorAndRecover("expected 'fn', 'struct', or 'enum' after 'pub'")
		}
	case p.atKind(KwAsync), p.atKind(KwFn):
		p.parseFnDecl()
	case p.atKind(KwStruct):
		p.parseStructDecl()
	case p.atKind(KwEnum):
		p.parseEnumDecl()
	default:
		p.errorAndRecover("expected item")
	}
}

// nthKind peeks the kind of the n-th significant token ahead (0 is the
// current one), skipping trivia. Unlike the original's raw-index nth,
// this always skips trivia, which avoids misreading lookahead like
// `pub /* x */ fn` as something other than KwFn.
func (p *Parser) nthKind(n int) SyntaxKind {
	return p.at(n).Kind
}

func (p *Parser) parseModuleDecl() {
	m := p.Start()
	p.expect(KwMod)
	p.parseIdent()
	p.expect(Semi)
	p.Complete(m, ModuleDecl)
}

func (p *Parser) parseUseDecl() {
	m := p.Start()
	p.expect(KwUse)
	p.parseUsePath()
	if p.atKind(KwAs) {
		p.bump()
		p.parseIdent()
	}
	p.expect(Semi)
	p.Complete(m, UseDecl)
}

func (p *Parser) parseUsePath() {
	m := p.Start()
	p.parseIdent()
	for p.atKind(ColonColon) {
		p.bump()
		p.parseIdent()
	}
	p.Complete(m, UsePath)
}

func (p *Parser) parseFnDecl() {
	m := p.Start()
	if p.atKind(KwPub) {
		p.bump()
	}
	if p.atKind(KwAsync) {
		p.bump()
	}
	p.expect(KwFn)
	p.parseIdent()
	p.expect(LParen)
	params := p.Start()
	if !p.atKind(RParen) {
		for {
			p.parseParam()
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
	p.Complete(params, ParamList)
	if p.atKind(Arrow) {
		p.bump()
		p.parseType()
	}
	if p.atKind(Bang) {
		p.parseEffectSet()
	}
	p.parseBlock()
	p.Complete(m, FnDecl)
}

func (p *Parser) parseParam() {
	m := p.Start()
	if p.atKind(KwMut) {
		p.bump()
	}
	p.parseIdent()
	p.expect(Colon)
	p.parseType()
	p.Complete(m, Param)
}

func (p *Parser) parseType() {
	m := p.Start()
	if p.atKind(Ident) {
		p.bump()
		for p.atKind(ColonColon) {
			p.bump()
			p.expectIdentToken()
		}
	} else {
		p.eatTrivia()
		p.events.Error("expected type")
		if !p.atEof() {
			p.bump()
		}
	}
	p.Complete(m, Type)
}

// expectIdentToken consumes one Ident token as a bare token (not wrapped
// in its own IdentNode), used for the `::`-separated segments of a
// dotted type path after the first.
func (p *Parser) expectIdentToken() {
	if p.atKind(Ident) {
		p.bump()
		return
	}
	p.errorAndRecover("expected identifier")
}

func (p *Parser) parseEffectSet() {
	m := p.Start()
	if p.atKind(Bang) {
		p.bump()
	} else {
		p.errorAndRecover("expected '!'")
	}
	p.expect(LBrace)
	if !p.atKind(RBrace) {
		for {
			p.parseIdent()
			if p.atKind(Comma) {
				p.bump()
				if p.atKind(RBrace) {
					break
				}
			} else {
				break
			}
		}
	}
	p.expect(RBrace)
	p.Complete(m, EffectSet)
}

func (p *Parser) parseStructDecl() {
	m := p.Start()
	if p.atKind(KwPub) {
		p.bump()
	}
	p.expect(KwStruct)
	p.parseIdent()
	p.expect(LBrace)
	for !p.atKind(RBrace) && !p.atEof() {
		f := p.Start()
		p.parseIdent()
		p.expect(Colon)
		p.parseType()
		p.expect(Semi)
		p.Complete(f, StructField)
	}
	p.expect(RBrace)
	p.Complete(m, StructDecl)
}

func (p *Parser) parseEnumDecl() {
	m := p.Start()
	if p.atKind(KwPub) {
		p.bump()
	}
	p.expect(KwEnum)
	p.parseIdent()
	p.expect(LBrace)
	for !p.atKind(RBrace) && !p.atEof() {
		v := p.Start()
		p.parseIdent()
		if p.atKind(LParen) {
			p.bump()
			if !p.atKind(RParen) {
				for {
					p.parseType()
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
		}
		p.expect(Semi)
		p.Complete(v, EnumVariant)
	}
	p.expect(RBrace)
	p.Complete(m, EnumDecl)
}
