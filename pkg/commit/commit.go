package commit

import (
	"fmt"
	"strings"
)

type Message struct {
	Type          string
	Scope         string
	Breaking      bool
	CommitMessage string
}

// ToString converts the Message struct into a string representation.
func (m Message) ToString() string {
	var out string
	if m.Type != "" {
		if strings.HasSuffix(m.Type, "!") {
			m.Type = m.Type[:len(m.Type)-1]
			m.Breaking = true
		}
		m.Type = strings.TrimSpace(m.Type)
		out += m.Type
		if m.Scope != "" {
			if strings.HasSuffix(m.Scope, "!") {
				m.Scope = m.Scope[:len(m.Scope)-1]
				m.Breaking = true
			}
			m.Scope = strings.TrimSpace(m.Scope)
			out += fmt.Sprintf("(%s)", m.Scope)
		}
		if m.Breaking {
			out += "!"
		}
		out += ": "
	}
	m.CommitMessage = strings.TrimSpace(m.CommitMessage)
	out += m.CommitMessage
	return out
}
