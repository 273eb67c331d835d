// Package dsl implements the textual language-description format of
// spec.md §6: a grammar file declares a language name, file extension,
// sort definitions, and construct definitions (name, arity, optional key,
// optional sort). Example:
//
//	#name jsonish;
//	#extension json;
//
//	sort value;
//
//	hole: texty value;
//	true: texty value key 't';
//	null: texty value;
//	list: listy(value) value key 'l';
//	pair: fixed(value, value) value;
//
// The lexer is a maleeni-compiled DFA (lexspec.go), driven by a small
// recursive-descent parser, following the shape of spec/lexer.go +
// spec/parser.go in the teacher repo but trimmed to this format's much
// smaller grammar: no BNF alternatives, no precedence/associativity
// directives, no lexer modes.
package dsl

import (
	"fmt"
	"io"

	"github.com/synless-editor/synless/lang"
	"github.com/synless-editor/synless/synlesserr"
)

type parser struct {
	lex  *lexer
	tok  *token
	errs []error
}

// Load parses a language-description document from src into a
// *lang.Grammar. The grammar is not added to any lang.Registry.
func Load(src io.Reader) (*lang.Grammar, error) {
	lx, err := newLexer(src)
	if err != nil {
		return nil, synlesserr.New(synlesserr.KindLanguage, err)
	}
	p := &parser{lex: lx}
	if err := p.advance(); err != nil {
		return nil, synlesserr.New(synlesserr.KindLanguage, err)
	}
	g, err := p.parseGrammar()
	if err != nil {
		return nil, err
	}
	if len(p.errs) > 0 {
		return nil, synlesserr.Aggregate(synlesserr.KindLanguage, p.errs...)
	}
	return g, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expect(kind string) (*token, error) {
	if p.tok.kind != kind {
		return nil, synlesserr.AtRow(synlesserr.KindLanguage, p.tok.row,
			fmt.Errorf("expected %v, found %v", kind, p.tok))
	}
	t := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *parser) parseGrammar() (*lang.Grammar, error) {
	name, err := p.parseDirective("name")
	if err != nil {
		return nil, err
	}
	ext, err := p.parseDirective("extension")
	if err != nil {
		return nil, err
	}

	g := lang.NewGrammar(name, ext)

	for p.tok.kind == "kw_sort" {
		if err := p.parseSortDecl(g); err != nil {
			return nil, err
		}
	}
	for p.tok.kind == "identifier" {
		if err := p.parseConstructDecl(g); err != nil {
			return nil, err
		}
	}
	if p.tok.kind != "eof" {
		return nil, synlesserr.AtRow(synlesserr.KindLanguage, p.tok.row,
			fmt.Errorf("unexpected token %v", p.tok))
	}
	// By convention, a construct named "hole" is the grammar's placeholder
	// construct (spec.md §3); languages without one simply can't auto-fill
	// fixed slots.
	if _, err := g.LookupConstruct("hole"); err == nil {
		_ = g.SetHoleConstruct("hole")
	}
	return g, nil
}

func (p *parser) parseDirective(name string) (string, error) {
	d, err := p.expect("directive")
	if err != nil {
		return "", err
	}
	if d.text != "#"+name {
		return "", synlesserr.AtRow(synlesserr.KindLanguage, d.row,
			fmt.Errorf("expected #%v, found %v", name, d.text))
	}
	var value string
	switch p.tok.kind {
	case "identifier":
		value = p.tok.text
		if err := p.advance(); err != nil {
			return "", err
		}
	case "string_literal":
		value = unquote(p.tok.text)
		if err := p.advance(); err != nil {
			return "", err
		}
	default:
		return "", synlesserr.AtRow(synlesserr.KindLanguage, p.tok.row,
			fmt.Errorf("expected a value for #%v, found %v", name, p.tok))
	}
	if _, err := p.expect("semicolon"); err != nil {
		return "", err
	}
	return value, nil
}

func (p *parser) parseSortDecl(g *lang.Grammar) error {
	row := p.tok.row
	if _, err := p.expect("kw_sort"); err != nil {
		return err
	}
	id, err := p.expect("identifier")
	if err != nil {
		return err
	}
	if _, err := p.expect("semicolon"); err != nil {
		return err
	}
	if err := g.DefineSort(id.text); err != nil {
		p.errs = append(p.errs, synlesserr.AtRow(synlesserr.KindLanguage, row, err))
	}
	return nil
}

func (p *parser) parseConstructDecl(g *lang.Grammar) error {
	row := p.tok.row
	name, err := p.expect("identifier")
	if err != nil {
		return err
	}
	if _, err := p.expect("colon"); err != nil {
		return err
	}

	arity, err := p.parseArity()
	if err != nil {
		return err
	}

	sortID, err := p.expect("identifier")
	var sort lang.Sort
	if err == nil {
		sort = lang.NamedSort(sortID.text)
	} else if p.tok.kind == "kw_any" {
		sort = lang.AnySort
		if err := p.advance(); err != nil {
			return err
		}
		err = nil
	} else if p.tok.kind == "kw_key" || p.tok.kind == "semicolon" {
		sort = lang.AnySort
		err = nil
	}
	if err != nil {
		return err
	}

	var key rune
	if p.tok.kind == "kw_key" {
		if err := p.advance(); err != nil {
			return err
		}
		c, err := p.expect("char_literal")
		if err != nil {
			return err
		}
		key = []rune(c.text)[1]
	}

	if _, err := p.expect("semicolon"); err != nil {
		return err
	}

	if err := g.DefineConstruct(&lang.Construct{Name: name.text, Arity: arity, Sort: sort, Key: key}); err != nil {
		p.errs = append(p.errs, synlesserr.AtRow(synlesserr.KindLanguage, row, err))
	}
	return nil
}

func (p *parser) parseArity() (lang.Arity, error) {
	switch p.tok.kind {
	case "kw_texty":
		if err := p.advance(); err != nil {
			return lang.Arity{}, err
		}
		return lang.TextyArity(), nil
	case "kw_listy":
		if err := p.advance(); err != nil {
			return lang.Arity{}, err
		}
		if _, err := p.expect("lparen"); err != nil {
			return lang.Arity{}, err
		}
		elem, err := p.parseSortRef()
		if err != nil {
			return lang.Arity{}, err
		}
		if _, err := p.expect("rparen"); err != nil {
			return lang.Arity{}, err
		}
		return lang.ListyArity(elem), nil
	case "kw_fixed":
		if err := p.advance(); err != nil {
			return lang.Arity{}, err
		}
		if _, err := p.expect("lparen"); err != nil {
			return lang.Arity{}, err
		}
		var slots []lang.Sort
		if p.tok.kind != "rparen" {
			for {
				s, err := p.parseSortRef()
				if err != nil {
					return lang.Arity{}, err
				}
				slots = append(slots, s)
				if p.tok.kind != "comma" {
					break
				}
				if err := p.advance(); err != nil {
					return lang.Arity{}, err
				}
			}
		}
		if _, err := p.expect("rparen"); err != nil {
			return lang.Arity{}, err
		}
		return lang.FixedArity(slots...), nil
	default:
		return lang.Arity{}, synlesserr.AtRow(synlesserr.KindLanguage, p.tok.row,
			fmt.Errorf("expected texty, listy, or fixed, found %v", p.tok))
	}
}

func (p *parser) parseSortRef() (lang.Sort, error) {
	if p.tok.kind == "kw_any" {
		if err := p.advance(); err != nil {
			return lang.Sort{}, err
		}
		return lang.AnySort, nil
	}
	id, err := p.expect("identifier")
	if err != nil {
		return lang.Sort{}, err
	}
	return lang.NamedSort(id.text), nil
}

func unquote(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}
