/*
Package cmdscan tokenizes command lines for the container sandbox. It is a thin
adapter over lexmachine.

A command line consists of a keyword, followed by arguments. Arguments are
integers, identifiers or double-quoted strings. Everything from a '#' to the
end of the line is a comment.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cmdscan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'simbase.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("simbase.scanner")
}

// Kind is the category of a token.
type Kind int

// Token kinds
const (
	EOF Kind = iota
	Keyword
	Int
	Ident
	String
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Keyword:
		return "keyword"
	case Int:
		return "int"
	case Ident:
		return "ident"
	case String:
		return "string"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Keywords are the command names of the sandbox.
var Keywords = []string{
	"add", "del", "get", "set", "has", "list", "tree",
	"count", "clear", "check", "min", "max", "help", "quit",
}

// Token is a scanned token. Value holds an int64 for Int tokens and the
// unquoted text for all others.
type Token struct {
	Kind   Kind
	Lexeme string
	Value  interface{}
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("<%s %q @%d>", t.Kind, t.Lexeme, t.Column)
}

// Scanner splits command lines into tokens. A Scanner holds a compiled DFA and
// may be re-used for any number of lines.
type Scanner struct {
	lexer    *lexmachine.Lexer
	keywords map[string]bool
	Error    func(error) // error handler, defaults to tracing
}

// New creates a scanner. It returns an error if compiling the DFA failed.
func New() (*Scanner, error) {
	s := &Scanner{
		lexer:    lexmachine.NewLexer(),
		keywords: make(map[string]bool, len(Keywords)),
		Error:    logError,
	}
	for _, kw := range Keywords {
		s.keywords[kw] = true
	}
	s.lexer.Add([]byte(`#[^\n]*`), skip)
	s.lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
	s.lexer.Add([]byte(`\"[^"]*\"`), makeToken(String))
	s.lexer.Add([]byte(`\-?[0-9]+`), makeToken(Int))
	s.lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_|\-|\.)*`), s.identOrKeyword)
	if err := s.lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return s, nil
}

// Default error reporting function
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// Tokens splits line into tokens. The EOF token is not included. On input that
// no rule matches, the error handler is called and scanning is aborted with an
// error.
func (s *Scanner) Tokens(line string) ([]Token, error) {
	sc, err := s.lexer.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var tokens []Token
	for tok, err, eof := sc.Next(); !eof; tok, err, eof = sc.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				err = fmt.Errorf("unexpected input at column %d: %q", ui.StartColumn, string(ui.Text))
			}
			s.Error(err)
			return nil, err
		}
		token := tok.(*lexmachine.Token)
		t := Token{
			Kind:   Kind(token.Type),
			Lexeme: string(token.Lexeme),
			Value:  token.Value,
			Column: token.StartColumn,
		}
		tracer().Debugf("token %v", t)
		tokens = append(tokens, t)
	}
	return tokens, nil
}

// ---------------------------------------------------------------------------

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(kind Kind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		lexeme := string(m.Bytes)
		var value interface{} = lexeme
		switch kind {
		case Int:
			n, err := strconv.ParseInt(lexeme, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("integer out of range: %s", lexeme)
			}
			value = n
		case String:
			value = strings.Trim(lexeme, `"`)
		}
		return s.Token(int(kind), value, m), nil
	}
}

func (s *Scanner) identOrKeyword(sc *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	lexeme := string(m.Bytes)
	if s.keywords[strings.ToLower(lexeme)] {
		return sc.Token(int(Keyword), strings.ToLower(lexeme), m), nil
	}
	return sc.Token(int(Ident), lexeme, m), nil
}
