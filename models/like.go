package models

import "strings"

// Patterns built here use '!' as the escape character, so every LIKE they
// feed must carry ESCAPE '!'.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// EscapeLike quotes the LIKE wildcards in s.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern is a LIKE pattern matching s literally anywhere.
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}
