package args

import "strings"

// Parse lexes a submitted line into positional tokens and flags.
//
// The line splits on spaces outside double quotes. A quoted span is one
// literal token including its spaces; an unterminated quote consumes the
// rest of the line without error. An unquoted token starting with "--" is a
// flag: "--name=value" maps name to value, a bare "--name" maps name to the
// literal "true". Everything else is positional, in encounter order.
//
// Malformed input is never rejected; tokenization is best effort.
func Parse(line string) Args {
	a := Args{flags: make(map[string]string)}

	var token strings.Builder
	inQuotes := false
	startQuoted := false

	flush := func() {
		if token.Len() > 0 {
			a.addToken(token.String(), startQuoted)
			token.Reset()
		}
		startQuoted = false
	}

	for _, r := range line {
		switch {
		case r == '"':
			if !inQuotes && token.Len() == 0 {
				startQuoted = true
			}
			inQuotes = !inQuotes
		case r == ' ' && !inQuotes:
			flush()
		default:
			token.WriteRune(r)
		}
	}
	flush()

	return a
}

// addToken classifies a lexed token. Quoted tokens are always positional so
// a quoted "--literal" is not mistaken for a flag.
func (a *Args) addToken(token string, quoted bool) {
	if quoted || !strings.HasPrefix(token, "--") {
		a.positional = append(a.positional, token)
		return
	}

	body := token[2:]
	if body == "" {
		// A bare "--" carries no flag name; treat it as positional.
		a.positional = append(a.positional, token)
		return
	}

	if name, value, ok := strings.Cut(body, "="); ok {
		a.flags[name] = value
	} else {
		a.flags[body] = "true"
	}
}
