package syntax

// Parse consumes a token stream and builds a validated Pattern.
//
// The pass is a single left-to-right walk with one token of lookahead: a
// repeat suffix fuses into the literal or wildcard term directly before it,
// a bracket group becomes a rest term, and the pattern invariants (rest last
// and unique, binding names distinct) are enforced here so the engine never
// re-validates at match time. The empty token stream parses to the empty
// Pattern, which matches only zero-length input.
//
// Example:
//
//	toks, _ := syntax.Tokenize(`"GET " path`)
//	pat, err := syntax.Parse(toks)
func Parse(toks []Token) (*Pattern, error) {
	pat := &Pattern{}
	bound := make(map[string]bool)
	restSeen := false

	bind := func(name string, pos int) error {
		if bound[name] {
			return &ParseError{Kind: DuplicateBinding, Pos: pos}
		}
		bound[name] = true
		return nil
	}

	i := 0
	for i < len(toks) {
		tok := toks[i]

		if restSeen {
			if tok.Kind == TokenOpenBracket {
				return nil, &ParseError{Kind: MultipleRest, Pos: tok.Pos}
			}
			return nil, &ParseError{Kind: RestNotLast, Pos: tok.Pos}
		}

		switch tok.Kind {
		case TokenLiteralChar, TokenLiteralString:
			term := Term{Kind: TermLiteral, Bytes: tok.Bytes, Repeat: 1, Pos: tok.Pos}
			i++
			if i < len(toks) && toks[i].Kind == TokenRepeat {
				term.Repeat = toks[i].Count
				i++
			}
			pat.Terms = append(pat.Terms, term)

		case TokenWildcard:
			term := Term{Kind: TermWildcard, Repeat: 1, Pos: tok.Pos}
			i++
			if i < len(toks) && toks[i].Kind == TokenRepeat {
				term.Repeat = toks[i].Count
				i++
			}
			pat.Terms = append(pat.Terms, term)

		case TokenIdentifier:
			if err := bind(tok.Name, tok.Pos); err != nil {
				return nil, err
			}
			term := Term{Kind: TermWildcard, Binding: tok.Name, Repeat: 1, Pos: tok.Pos}
			i++
			if i < len(toks) && toks[i].Kind == TokenRepeat {
				term.Repeat = toks[i].Count
				i++
			}
			pat.Terms = append(pat.Terms, term)

		case TokenOpenBracket:
			// A bracket group is exactly [ _ ] or [ name ].
			if i+2 >= len(toks) || toks[i+2].Kind != TokenCloseBracket {
				return nil, &ParseError{Kind: BracketMismatch, Pos: tok.Pos}
			}
			inner := toks[i+1]
			term := Term{Kind: TermRest, Pos: tok.Pos}
			switch inner.Kind {
			case TokenWildcard:
			case TokenIdentifier:
				if err := bind(inner.Name, inner.Pos); err != nil {
					return nil, err
				}
				term.Binding = inner.Name
			default:
				return nil, &ParseError{Kind: BracketMismatch, Pos: inner.Pos}
			}
			pat.Terms = append(pat.Terms, term)
			restSeen = true
			i += 3

		case TokenCloseBracket:
			return nil, &ParseError{Kind: BracketMismatch, Pos: tok.Pos}

		default:
			// A repeat suffix with nothing to fuse to, or any token kind the
			// lexer may grow in the future.
			return nil, &ParseError{Kind: UnexpectedToken, Pos: tok.Pos}
		}
	}

	return pat, nil
}
