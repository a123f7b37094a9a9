// Package extract finds translatable messages in mustache templates.
//
// A message is any text enclosed in a {{#_}}...{{/_}} section on a single
// line. Messages spanning lines are not found.
package extract

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
)

// Func is the keyword reported for every extracted message.
const Func = "_"

var sectionRE = regexp.MustCompile(`\{\{#_\}\}(.+)\{\{/_\}\}`)

// Message is one translatable string found in a template.
type Message struct {
	// Line is the zero-based line number the message was found on.
	Line    int
	Func    string
	Text    string
	Comment string
}

// Messages scans r and returns every message in the order found.
func Messages(r io.Reader) ([]Message, error) {
	var msgs []Message
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for line := 0; s.Scan(); line++ {
		for _, m := range sectionRE.FindAllStringSubmatch(s.Text(), -1) {
			msgs = append(msgs, Message{Line: line, Func: Func, Text: m[1]})
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	return msgs, nil
}
