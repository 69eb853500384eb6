package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/leengari/toyengine/internal/parser/ast"
	"github.com/leengari/toyengine/internal/parser/lexer"
)

const dateLayout = "2006-01-02"

type Parser struct {
	tokens  []lexer.Token
	curPos  int
	curTok  lexer.Token
	peekTok lexer.Token
}

func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens, curPos: 0}
	// Read two tokens to set curTok and peekTok
	p.nextToken()
	p.nextToken()
	return p
}

// ParseString tokenizes and parses a single statement
func ParseString(input string) (ast.Statement, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return New(tokens).Parse()
}

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	if p.curPos < len(p.tokens) {
		p.peekTok = p.tokens[p.curPos]
		p.curPos++
	} else {
		p.peekTok = lexer.Token{Type: lexer.EOF}
	}
}

func (p *Parser) Parse() (ast.Statement, error) {
	var (
		stmt ast.Statement
		err  error
	)

	switch p.curTok.Type {
	case lexer.CREATE:
		stmt, err = p.parseCreate()
	case lexer.INSERT:
		stmt, err = p.parseInsert()
	case lexer.UPDATE:
		stmt, err = p.parseUpdate()
	case lexer.DELETE:
		stmt, err = p.parseDelete()
	case lexer.SELECT:
		stmt, err = p.parseSelect()
	case lexer.REINDEX:
		stmt, err = p.parseReindex()
	case lexer.LOOKUP:
		stmt, err = p.parseLookup()
	case lexer.SHOW:
		p.nextToken()
		if err = p.expect(lexer.TABLES); err == nil {
			stmt = &ast.ShowTablesStatement{}
		}
	default:
		if isFSCommand(p.curTok.Type) {
			stmt, err = p.parseFS()
		} else {
			err = fmt.Errorf("unexpected token %q at start of statement", p.curTok.Literal)
		}
	}
	if err != nil {
		return nil, err
	}

	// Semicolon (Optional)
	if p.curTok.Type == lexer.SEMICOLON {
		p.nextToken()
	}
	if p.curTok.Type != lexer.EOF {
		return nil, fmt.Errorf("unexpected %q after %s statement", p.curTok.Literal, stmt.TokenLiteral())
	}
	return stmt, nil
}

func (p *Parser) parseCreate() (ast.Statement, error) {
	// CREATE
	p.nextToken()

	switch p.curTok.Type {
	case lexer.TABLE:
		p.nextToken()
		return p.parseCreateTable()
	case lexer.INDEX:
		p.nextToken()
		if err := p.expect(lexer.ON); err != nil {
			return nil, err
		}
		table, col, err := p.parseTableColumn()
		if err != nil {
			return nil, err
		}
		return &ast.CreateIndexStatement{TableName: table, Column: col}, nil
	default:
		return nil, fmt.Errorf("expected TABLE or INDEX after CREATE, got %s", p.curTok.Literal)
	}
}

func (p *Parser) parseCreateTable() (*ast.CreateTableStatement, error) {
	stmt := &ast.CreateTableStatement{}

	name, err := p.parseIdentifier("table name")
	if err != nil {
		return nil, err
	}
	stmt.TableName = name

	if err := p.expect(lexer.PAREN_OPEN); err != nil {
		return nil, err
	}

	for {
		def, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		stmt.Columns = append(stmt.Columns, def)

		if p.curTok.Type != lexer.COMMA {
			break
		}
		p.nextToken()
	}

	if err := p.expect(lexer.PAREN_CLOSE); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseColumnDef() (*ast.ColumnDef, error) {
	name, err := p.parseIdentifier("column name")
	if err != nil {
		return nil, err
	}
	def := &ast.ColumnDef{Name: name}

	// DATE is a keyword but also a type name
	if p.curTok.Type != lexer.IDENTIFIER && p.curTok.Type != lexer.DATE {
		return nil, fmt.Errorf("expected type for column %s, got %s", name.Value, p.curTok.Literal)
	}
	def.Type = strings.ToUpper(p.curTok.Literal)
	p.nextToken()

	for {
		switch p.curTok.Type {
		case lexer.PRIMARY:
			p.nextToken()
			if err := p.expect(lexer.KEY); err != nil {
				return nil, err
			}
			def.PrimaryKey = true
		case lexer.NOT:
			p.nextToken()
			if err := p.expect(lexer.NULL); err != nil {
				return nil, err
			}
			def.NotNull = true
		default:
			return def, nil
		}
	}
}

func (p *Parser) parseInsert() (*ast.InsertStatement, error) {
	stmt := &ast.InsertStatement{}

	// INSERT
	p.nextToken()

	// INTO
	if err := p.expect(lexer.INTO); err != nil {
		return nil, err
	}

	name, err := p.parseIdentifier("table name")
	if err != nil {
		return nil, err
	}
	stmt.TableName = name

	// VALUES
	if err := p.expect(lexer.VALUES); err != nil {
		return nil, err
	}

	// (
	if err := p.expect(lexer.PAREN_OPEN); err != nil {
		return nil, err
	}

	// Parse Values List
	values, err := p.parseLiteralList()
	if err != nil {
		return nil, err
	}
	stmt.Values = values

	if err := p.expect(lexer.PAREN_CLOSE); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseUpdate() (*ast.UpdateStatement, error) {
	stmt := &ast.UpdateStatement{}

	// UPDATE
	p.nextToken()

	name, err := p.parseIdentifier("table name")
	if err != nil {
		return nil, err
	}
	stmt.TableName = name

	if err := p.expect(lexer.SET); err != nil {
		return nil, err
	}
	if stmt.Set, err = p.parseCondition(); err != nil {
		return nil, err
	}

	if err := p.expect(lexer.WHERE); err != nil {
		return nil, err
	}
	if stmt.Where, err = p.parseCondition(); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseDelete() (*ast.DeleteStatement, error) {
	stmt := &ast.DeleteStatement{}

	// DELETE
	p.nextToken()

	if err := p.expect(lexer.FROM); err != nil {
		return nil, err
	}

	name, err := p.parseIdentifier("table name")
	if err != nil {
		return nil, err
	}
	stmt.TableName = name

	if err := p.expect(lexer.WHERE); err != nil {
		return nil, err
	}
	if stmt.Where, err = p.parseCondition(); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseSelect() (*ast.SelectStatement, error) {
	stmt := &ast.SelectStatement{}

	// SELECT
	p.nextToken()

	// Fields
	fields, err := p.parseIdentifierList()
	if err != nil {
		return nil, err
	}
	stmt.Fields = fields

	// FROM
	if err := p.expect(lexer.FROM); err != nil {
		return nil, err
	}

	// Table Name
	name, err := p.parseIdentifier("table name")
	if err != nil {
		return nil, err
	}
	stmt.TableName = name

	// WHERE (Optional)
	if p.curTok.Type == lexer.WHERE {
		p.nextToken()
		if stmt.Where, err = p.parseCondition(); err != nil {
			return nil, err
		}
	}

	return stmt, nil
}

func (p *Parser) parseReindex() (*ast.ReindexStatement, error) {
	// REINDEX
	p.nextToken()

	table, col, err := p.parseTableColumn()
	if err != nil {
		return nil, err
	}
	return &ast.ReindexStatement{TableName: table, Column: col}, nil
}

func (p *Parser) parseLookup() (*ast.LookupStatement, error) {
	// LOOKUP
	p.nextToken()

	table, col, err := p.parseTableColumn()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.EQUALS); err != nil {
		return nil, err
	}
	value, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	return &ast.LookupStatement{TableName: table, Column: col, Value: value}, nil
}

// parseFS reads a filesystem command and its bare-word or quoted arguments
func (p *Parser) parseFS() (*ast.FSStatement, error) {
	cmd := p.curTok.Type
	stmt := &ast.FSStatement{Command: strings.ToUpper(p.curTok.Literal)}
	p.nextToken()

	for p.curTok.Type != lexer.EOF && p.curTok.Type != lexer.SEMICOLON {
		stmt.Args = append(stmt.Args, p.curTok.Literal)
		p.nextToken()
	}

	lo, hi := fsArity(cmd)
	if len(stmt.Args) < lo || len(stmt.Args) > hi {
		return nil, fmt.Errorf("%s takes %s, got %d", stmt.Command, arityText(lo, hi), len(stmt.Args))
	}
	return stmt, nil
}

// parseTableColumn reads "table (column)"
func (p *Parser) parseTableColumn() (*ast.Identifier, *ast.Identifier, error) {
	table, err := p.parseIdentifier("table name")
	if err != nil {
		return nil, nil, err
	}
	if err := p.expect(lexer.PAREN_OPEN); err != nil {
		return nil, nil, err
	}
	col, err := p.parseIdentifier("column name")
	if err != nil {
		return nil, nil, err
	}
	if err := p.expect(lexer.PAREN_CLOSE); err != nil {
		return nil, nil, err
	}
	return table, col, nil
}

func (p *Parser) parseIdentifierList() ([]*ast.Identifier, error) {
	var identifiers []*ast.Identifier

	// Handle *
	if p.curTok.Type == lexer.ASTERISK {
		identifiers = append(identifiers, &ast.Identifier{TokenLiteralValue: "*", Value: "*"})
		p.nextToken()
		return identifiers, nil
	}

	for {
		ident, err := p.parseIdentifier("column name")
		if err != nil {
			return nil, err
		}
		identifiers = append(identifiers, ident)

		if p.curTok.Type != lexer.COMMA {
			return identifiers, nil
		}
		p.nextToken()
	}
}

func (p *Parser) parseLiteralList() ([]*ast.Literal, error) {
	var list []*ast.Literal

	// Empty list: ()
	if p.curTok.Type == lexer.PAREN_CLOSE {
		return list, nil
	}

	for {
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		list = append(list, lit)

		if p.curTok.Type != lexer.COMMA {
			return list, nil
		}
		p.nextToken()
	}
}

// parseCondition reads "column = value"
func (p *Parser) parseCondition() (*ast.Condition, error) {
	col, err := p.parseIdentifier("column name")
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.EQUALS); err != nil {
		return nil, err
	}
	value, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	return &ast.Condition{Column: col, Value: value}, nil
}

func (p *Parser) parseIdentifier(what string) (*ast.Identifier, error) {
	if !isIdentifierOrKeyword(p.curTok.Type) {
		return nil, fmt.Errorf("expected %s, got %q", what, p.curTok.Literal)
	}
	ident := &ast.Identifier{TokenLiteralValue: p.curTok.Literal, Value: p.curTok.Literal}
	p.nextToken()
	return ident, nil
}

func (p *Parser) parseLiteral() (*ast.Literal, error) {
	tok := p.curTok
	switch tok.Type {
	case lexer.STRING:
		p.nextToken()
		return &ast.Literal{TokenLiteralValue: tok.Literal, Value: tok.Literal}, nil
	case lexer.NUMBER:
		p.nextToken()
		// Try int
		if i, err := strconv.ParseInt(tok.Literal, 10, 64); err == nil {
			return &ast.Literal{TokenLiteralValue: tok.Literal, Value: i}, nil
		}
		// Try float
		if f, err := strconv.ParseFloat(tok.Literal, 64); err == nil {
			return &ast.Literal{TokenLiteralValue: tok.Literal, Value: f}, nil
		}
		return nil, fmt.Errorf("invalid number: %s", tok.Literal)
	case lexer.TRUE:
		p.nextToken()
		return &ast.Literal{TokenLiteralValue: "TRUE", Value: true}, nil
	case lexer.FALSE:
		p.nextToken()
		return &ast.Literal{TokenLiteralValue: "FALSE", Value: false}, nil
	case lexer.NULL:
		p.nextToken()
		return &ast.Literal{TokenLiteralValue: "NULL", Value: nil}, nil
	case lexer.DATE:
		p.nextToken()
		if p.curTok.Type != lexer.STRING {
			return nil, fmt.Errorf("expected date string after DATE, got %q", p.curTok.Literal)
		}
		d, err := time.Parse(dateLayout, p.curTok.Literal)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: want YYYY-MM-DD", p.curTok.Literal)
		}
		lit := &ast.Literal{TokenLiteralValue: p.curTok.Literal, Value: d}
		p.nextToken()
		return lit, nil
	default:
		return nil, fmt.Errorf("unexpected token in value position: %q", tok.Literal)
	}
}

func (p *Parser) expect(t lexer.TokenType) error {
	if p.curTok.Type != t {
		got := p.curTok.Literal
		if p.curTok.Type == lexer.EOF {
			got = "end of input"
		}
		return fmt.Errorf("expected %s, got %s", t, got)
	}
	p.nextToken()
	return nil
}
