// Package args lexes submitted command lines into positional arguments and
// --name[=value] flags.
//
// The grammar is deliberately forgiving: quotes group spaces, an unterminated
// quote swallows the rest of the line, and malformed flags are taken as
// written. Handlers validate their own arguments.
package args
