// Package parser implements the declaration-file conversion core: code page
// translation, record segmentation, field extraction, declaration assembly
// and organization grouping.
package parser

import "strings"

// Split splits decoded file text into the header block and the record blocks
// that follow it, cutting on every literal occurrence of separator.
//
// The separator is matched as an exact literal, never as a pattern, so the
// periods inside marker text cannot match arbitrary characters. If the
// separator does not occur, the whole text is returned as the header with
// zero records; callers must tolerate an empty record list.
func Split(text, separator string) (header string, records []string) {
	parts := strings.Split(text, separator)
	return parts[0], parts[1:]
}
