package sv

// Lexer scans SystemVerilog source and produces a flat token stream.
// It only distinguishes the classes the lint rules care about (whitespace,
// comments, string literals, identifiers, macro references, numbers); it does
// not attempt to parse the grammar.
type Lexer struct {
	input    string
	position int
	tokens   []Token
}

// NewLexer returns a new Lexer over the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		tokens: make([]Token, 0),
	}
}

// Tokenize processes the entire input and produces the list of tokens.
// Tokens are contiguous: every byte of the input belongs to exactly one token.
func (l *Lexer) Tokenize() []Token {
	for l.position < len(l.input) {
		currentPos := l.position
		switch c := l.input[l.position]; {
		case isWhitespace(c):
			l.lexWhitespace(currentPos)

		case c == '/' && l.peek(1) == '/':
			l.lexLineComment(currentPos)

		case c == '/' && l.peek(1) == '*':
			l.lexBlockComment(currentPos)

		case c == '"':
			l.lexString(currentPos)

		case c == '`':
			l.lexMacro(currentPos)

		case c == '\\':
			// escaped identifier: backslash up to the next whitespace
			l.lexEscapedIdent(currentPos)

		case isIdentStart(c):
			l.lexIdent(currentPos)

		case isDigit(c):
			l.lexNumber(currentPos)

		default:
			l.addToken(KindSymbol, string(c), currentPos)
			l.position++
		}
	}
	return l.tokens
}

// peek returns the byte n positions ahead, or 0 at end of input.
func (l *Lexer) peek(n int) byte {
	if l.position+n >= len(l.input) {
		return 0
	}
	return l.input[l.position+n]
}

// lexWhitespace scans consecutive whitespace and produces one token.
// Newlines are part of the run; line bookkeeping happens in File, not here.
func (l *Lexer) lexWhitespace(startPos int) {
	for l.position < len(l.input) && isWhitespace(l.input[l.position]) {
		l.position++
	}
	l.addToken(KindWhitespace, l.input[startPos:l.position], startPos)
}

// lexLineComment scans a // comment up to (not including) the newline.
func (l *Lexer) lexLineComment(startPos int) {
	for l.position < len(l.input) && l.input[l.position] != '\n' {
		l.position++
	}
	l.addToken(KindComment, l.input[startPos:l.position], startPos)
}

// lexBlockComment scans a /* */ comment. An unterminated comment runs to the
// end of input.
func (l *Lexer) lexBlockComment(startPos int) {
	l.position += 2 // consume "/*"
	for l.position < len(l.input) {
		if l.input[l.position] == '*' && l.peek(1) == '/' {
			l.position += 2
			break
		}
		l.position++
	}
	l.addToken(KindComment, l.input[startPos:l.position], startPos)
}

// lexString scans a double-quoted string literal with backslash escapes.
// An unterminated string runs to the end of the line.
func (l *Lexer) lexString(startPos int) {
	l.position++ // consume opening quote
	for l.position < len(l.input) {
		c := l.input[l.position]
		if c == '\\' && l.position+1 < len(l.input) {
			l.position += 2
			continue
		}
		if c == '"' {
			l.position++
			break
		}
		if c == '\n' {
			break
		}
		l.position++
	}
	l.addToken(KindString, l.input[startPos:l.position], startPos)
}

// lexMacro scans a backtick followed by a directive or macro name,
// e.g. `define, `include, `MY_MACRO. A bare backtick is a symbol.
func (l *Lexer) lexMacro(startPos int) {
	l.position++ // consume backtick
	if l.position >= len(l.input) || !isIdentStart(l.input[l.position]) {
		l.addToken(KindSymbol, "`", startPos)
		return
	}
	for l.position < len(l.input) && isIdentPart(l.input[l.position]) {
		l.position++
	}
	l.addToken(KindMacro, l.input[startPos:l.position], startPos)
}

// lexEscapedIdent scans a \escaped identifier, terminated by whitespace.
func (l *Lexer) lexEscapedIdent(startPos int) {
	l.position++
	for l.position < len(l.input) && !isWhitespace(l.input[l.position]) {
		l.position++
	}
	l.addToken(KindIdent, l.input[startPos:l.position], startPos)
}

func (l *Lexer) lexIdent(startPos int) {
	for l.position < len(l.input) && isIdentPart(l.input[l.position]) {
		l.position++
	}
	l.addToken(KindIdent, l.input[startPos:l.position], startPos)
}

// lexNumber scans integer and based literals (4'b1010, 32'hDEAD_BEEF, 1.5).
// The scan is deliberately loose; rules never inspect number internals.
func (l *Lexer) lexNumber(startPos int) {
	for l.position < len(l.input) {
		c := l.input[l.position]
		if isIdentPart(c) || c == '\'' || c == '.' {
			l.position++
			continue
		}
		break
	}
	l.addToken(KindNumber, l.input[startPos:l.position], startPos)
}

func (l *Lexer) addToken(kind TokenKind, text string, pos int) {
	l.tokens = append(l.tokens, Token{
		Kind:   kind,
		Text:   text,
		Offset: pos,
	})
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == '\v'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '$'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
