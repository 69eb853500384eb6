package lexer

import (
	"testing"
)

func TestNextToken(t *testing.T) {
	input := `SELECT * FROM users WHERE id = 1;
INSERT INTO items VALUES ('it''s', -1.23, TRUE, NULL, DATE '2024-01-02');
cd ../docs/a.txt`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{SELECT, "SELECT"},
		{ASTERISK, "*"},
		{FROM, "FROM"},
		{IDENTIFIER, "users"},
		{WHERE, "WHERE"},
		{IDENTIFIER, "id"},
		{EQUALS, "="},
		{NUMBER, "1"},
		{SEMICOLON, ";"},
		{INSERT, "INSERT"},
		{INTO, "INTO"},
		{IDENTIFIER, "items"},
		{VALUES, "VALUES"},
		{PAREN_OPEN, "("},
		{STRING, "it's"},
		{COMMA, ","},
		{NUMBER, "-1.23"},
		{COMMA, ","},
		{TRUE, "TRUE"},
		{COMMA, ","},
		{NULL, "NULL"},
		{COMMA, ","},
		{DATE, "DATE"},
		{STRING, "2024-01-02"},
		{PAREN_CLOSE, ")"},
		{SEMICOLON, ";"},
		{CD, "cd"},
		{IDENTIFIER, "../docs/a.txt"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	tokens, err := Tokenize("ls\n  pwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[1].Line != 2 || tokens[1].Column != 3 {
		t.Errorf("expected pwd at 2:3, got %d:%d", tokens[1].Line, tokens[1].Column)
	}
}

func TestTokenizeErrors(t *testing.T) {
	for _, input := range []string{"SELECT 'open", "ls #", "a ! b"} {
		if _, err := Tokenize(input); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}

func TestDigitLeadingNames(t *testing.T) {
	tests := []struct {
		input           string
		expectedType    TokenType
		expectedLiteral string
	}{
		{"2024.txt", IDENTIFIER, "2024.txt"},
		{"2024/notes", IDENTIFIER, "2024/notes"},
		{"1.5.bak", IDENTIFIER, "1.5.bak"},
		{"7days", IDENTIFIER, "7days"},
		{"3-2-1", IDENTIFIER, "3-2-1"},
		{"../2024", IDENTIFIER, "../2024"},
		{"2024", NUMBER, "2024"},
		{"-12.5", NUMBER, "-12.5"},
	}

	for _, tt := range tests {
		tok := New(tt.input).NextToken()
		if tok.Type != tt.expectedType || tok.Literal != tt.expectedLiteral {
			t.Errorf("%q: expected %s %q, got %s %q",
				tt.input, tt.expectedType, tt.expectedLiteral, tok.Type, tok.Literal)
		}
	}

	toks, err := Tokenize("VALUES (1)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[2].Type != NUMBER || toks[3].Type != PAREN_CLOSE {
		t.Errorf("number before ) must stay a NUMBER, got %v", toks)
	}
}
