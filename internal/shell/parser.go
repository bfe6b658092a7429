package shell

import (
	"errors"
	"strings"
	"unicode"

	"github.com/GriffinCanCode/fileshell/internal/shared/types"
)

var ErrUnclosedQuote = errors.New("unclosed quote")

type parseState int

const (
	stateOutside parseState = iota
	stateSingleQuote
	stateDoubleQuote
)

// Parse splits a line into an invocation. Tokens are separated by
// whitespace; single or double quotes keep spaces inside one token. There
// is no escape character, so backslashes in paths are literal. A blank
// line yields an invocation with an empty name.
func Parse(line string) (types.Invocation, error) {
	var (
		fields  []string
		token   strings.Builder
		started bool
		state   = stateOutside
	)

	flush := func() {
		if started {
			fields = append(fields, token.String())
			token.Reset()
			started = false
		}
	}

	for _, ch := range line {
		switch state {
		case stateOutside:
			switch {
			case unicode.IsSpace(ch):
				flush()
			case ch == '\'':
				state, started = stateSingleQuote, true
			case ch == '"':
				state, started = stateDoubleQuote, true
			default:
				token.WriteRune(ch)
				started = true
			}
		case stateSingleQuote:
			if ch == '\'' {
				state = stateOutside
			} else {
				token.WriteRune(ch)
			}
		case stateDoubleQuote:
			if ch == '"' {
				state = stateOutside
			} else {
				token.WriteRune(ch)
			}
		}
	}

	if state != stateOutside {
		return types.Invocation{}, types.Wrap(types.KindInvalidInput, "parse", "", ErrUnclosedQuote)
	}
	flush()

	if len(fields) == 0 {
		return types.Invocation{Args: []string{}}, nil
	}
	return types.Invocation{Name: fields[0], Args: fields[1:]}, nil
}
