package parser

import (
	"fmt"

	"github.com/leengari/toyengine/internal/parser/lexer"
)

// isIdentifierOrKeyword checks if a token can be used as a name.
// Quoted strings are accepted so names may collide with keywords.
func isIdentifierOrKeyword(t lexer.TokenType) bool {
	return t == lexer.IDENTIFIER || t == lexer.STRING || t == lexer.DATE
}

// isFSCommand checks if a token starts a filesystem command
func isFSCommand(t lexer.TokenType) bool {
	_, ok := fsArities[t]
	return ok
}

// fsArities holds the min and max argument count of each filesystem command
var fsArities = map[lexer.TokenType][2]int{
	lexer.PWD:   {0, 0},
	lexer.LS:    {0, 1},
	lexer.CD:    {1, 1},
	lexer.MKDIR: {1, 1},
	lexer.TOUCH: {1, 2},
	lexer.CAT:   {1, 1},
	lexer.DU:    {0, 1},
	lexer.RM:    {1, 1},
	lexer.TREE:  {0, 1},
}

func fsArity(t lexer.TokenType) (int, int) {
	a := fsArities[t]
	return a[0], a[1]
}

func arityText(lo, hi int) string {
	switch {
	case lo == hi && lo == 0:
		return "no arguments"
	case lo == hi && lo == 1:
		return "1 argument"
	case lo == hi:
		return fmt.Sprintf("%d arguments", lo)
	default:
		return fmt.Sprintf("%d to %d arguments", lo, hi)
	}
}
