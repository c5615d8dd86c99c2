// Package jsonpointer converts between JSON Pointer strings and the token
// slices the validation engine pushes onto its path stacks.
package jsonpointer

import "strings"

// Split decomposes a JSON Pointer string into its tokens, dropping the
// leading empty element produced by the "/" separator. "" and "/" both
// split to an empty, root-referencing slice.
//
// This mirrors how the JDDF reference test corpus delivers instance_path
// and schema_path: as JSON Pointer strings that must be split on "/" with
// the leading empty element dropped.
func Split(pointer string) []string {
	if pointer == "" || pointer == "/" {
		return []string{}
	}

	tokens := strings.Split(pointer, "/")
	return tokens[1:]
}

// Join composes a token slice back into a JSON Pointer string. An empty
// slice joins to "" (the root reference), not "/".
func Join(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}

	return "/" + strings.Join(tokens, "/")
}
