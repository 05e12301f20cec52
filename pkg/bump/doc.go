// Package bump locates a semantic version assignment inside a text
// configuration file and rewrites it in place according to a requested
// bump level.
//
// The file is treated as opaque text. Only the matched version substring
// changes; every other byte is preserved exactly.
package bump
