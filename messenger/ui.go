package messenger

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jwaiton/nexus/config"
	"github.com/jwaiton/nexus/exception"
)

var log = config.NamedLogger("messenger")

// UI routes command lines to the messengers owning their directory.
// Several messengers may share a directory as long as their command names
// are distinct.
type UI struct {
	messengers map[string][]*Messenger
}

// NewUI creates an empty dispatcher.
func NewUI() *UI {
	return &UI{messengers: map[string][]*Messenger{}}
}

// Register adds a messenger.
func (u *UI) Register(m *Messenger) error {
	siblings := u.messengers[m.Directory()]
	for _, other := range siblings {
		if other == m {
			return fmt.Errorf("messenger %s already registered", m.Directory())
		}
		for name := range m.commands {
			if _, clash := other.commands[name]; clash {
				return fmt.Errorf("command %s%s already registered", m.Directory(), name)
			}
		}
	}
	u.messengers[m.Directory()] = append(siblings, m)
	return nil
}

// Messengers returns the registered messengers sorted by directory, in
// registration order within a directory.
func (u *UI) Messengers() []*Messenger {
	dirs := make([]string, 0, len(u.messengers))
	for dir := range u.messengers {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	result := []*Messenger{}
	for _, dir := range dirs {
		result = append(result, u.messengers[dir]...)
	}
	return result
}

// Describe lists every registered command, by directory and name.
func (u *UI) Describe() []Description {
	descriptions := []Description{}
	for _, m := range u.Messengers() {
		for _, c := range m.Commands() {
			descriptions = append(descriptions, c.Describe())
		}
	}
	return descriptions
}

// Apply executes one command line.
func (u *UI) Apply(line string) error {
	path, _ := splitLine(line)
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return exception.New(origin, "Apply()", exception.ErrUnknownCommand, "command %q must be an absolute path", path)
	}
	for _, m := range u.messengers[path[:idx+1]] {
		if _, ok := m.commands[path[idx+1:]]; ok {
			log.Debugf("Apply %s", strings.TrimSpace(line))
			return m.Apply(line)
		}
	}
	return exception.New(origin, "Apply()", exception.ErrUnknownCommand, "command %s not found", path)
}

// Execute runs a macro: one command per line, blank lines and lines
// starting with # are skipped. It stops at the first failing command.
func (u *UI) Execute(macro io.Reader) error {
	scanner := bufio.NewScanner(macro)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := u.Apply(line); err != nil {
			return fmt.Errorf("macro line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}
