// Package masses reads module mass lists: newline-delimited base-10 integers,
// one module per line. Windows and classic Mac line endings are accepted and
// blank lines are ignored.
package masses
