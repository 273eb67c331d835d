package dsl

import (
	mlcompiler "github.com/nihei9/maleeni/compiler"
	mlspec "github.com/nihei9/maleeni/spec"
)

// The textual language-description format (spec.md §6) is lexed with the
// same stack the teacher uses to lex its own grammar DSL: a maleeni
// LexSpec compiled once into a DFA, then driven token-by-token. This
// mirrors grammar/grammar.go's genLexSpec, trimmed to the much smaller
// token set this format needs (no BNF alternatives, no precedence
// directives, no lexer modes).
var compiledLexSpec *mlspec.CompiledLexSpec

func init() {
	spec := &mlspec.LexSpec{
		Entries: []*mlspec.LexEntry{
			{Kind: mlspec.LexKindName("white_space"), Pattern: mlspec.LexPattern("[ \t\r\n]+")},
			{Kind: mlspec.LexKindName("line_comment"), Pattern: mlspec.LexPattern("//[^\n]*")},
			{Kind: mlspec.LexKindName("kw_sort"), Pattern: mlspec.LexPattern(`sort`)},
			{Kind: mlspec.LexKindName("kw_fixed"), Pattern: mlspec.LexPattern(`fixed`)},
			{Kind: mlspec.LexKindName("kw_listy"), Pattern: mlspec.LexPattern(`listy`)},
			{Kind: mlspec.LexKindName("kw_texty"), Pattern: mlspec.LexPattern(`texty`)},
			{Kind: mlspec.LexKindName("kw_key"), Pattern: mlspec.LexPattern(`key`)},
			{Kind: mlspec.LexKindName("kw_any"), Pattern: mlspec.LexPattern(`Any`)},
			{Kind: mlspec.LexKindName("directive"), Pattern: mlspec.LexPattern(`#[A-Za-z_]+`)},
			{Kind: mlspec.LexKindName("identifier"), Pattern: mlspec.LexPattern(`[A-Za-z_][A-Za-z0-9_]*`)},
			{Kind: mlspec.LexKindName("char_literal"), Pattern: mlspec.LexPattern(`'[^']'`)},
			{Kind: mlspec.LexKindName("string_literal"), Pattern: mlspec.LexPattern(`"[^"]*"`)},
			{Kind: mlspec.LexKindName("colon"), Pattern: mlspec.LexPattern(`:`)},
			{Kind: mlspec.LexKindName("semicolon"), Pattern: mlspec.LexPattern(`;`)},
			{Kind: mlspec.LexKindName("comma"), Pattern: mlspec.LexPattern(`,`)},
			{Kind: mlspec.LexKindName("lparen"), Pattern: mlspec.LexPattern(`\(`)},
			{Kind: mlspec.LexKindName("rparen"), Pattern: mlspec.LexPattern(`\)`)},
		},
	}

	compiled, err, cErrs := mlcompiler.Compile(spec, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
	if err != nil || len(cErrs) > 0 {
		panic("lang/dsl: invalid built-in lexical specification: " + err.Error())
	}
	compiledLexSpec = compiled
}
