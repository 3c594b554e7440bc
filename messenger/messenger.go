// Package messenger registers run-time tunable properties under a command
// directory and applies command lines such as
//
//	/Geometry/Next100/pressure 10 bar
//
// to the bound variables.
package messenger

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jwaiton/nexus/exception"
	"github.com/jwaiton/nexus/geometry"
)

const origin = "[Messenger]"

// Messenger owns the commands of one directory.
type Messenger struct {
	directory string
	guidance  string
	commands  map[string]*Command
}

// New creates a messenger for directory, which is normalized to start and
// end with a slash.
func New(directory, guidance string) *Messenger {
	if !strings.HasPrefix(directory, "/") {
		directory = "/" + directory
	}
	if !strings.HasSuffix(directory, "/") {
		directory += "/"
	}
	return &Messenger{
		directory: directory,
		guidance:  guidance,
		commands:  map[string]*Command{},
	}
}

// Directory returns the command directory, e.g. "/Geometry/Next100/".
func (m *Messenger) Directory() string { return m.directory }

// Guidance returns the directory description.
func (m *Messenger) Guidance() string { return m.guidance }

// DeclareProperty binds a command to target, which must be one of *float64,
// *int, *bool, *string or *geometry.Point. Declaring a name twice or an
// unsupported target panics.
func (m *Messenger) DeclareProperty(name string, target interface{}, guidance string) *Command {
	switch target.(type) {
	case *float64, *int, *bool, *string, *geometry.Point:
	default:
		panic(fmt.Sprintf("messenger %s: unsupported property type %T for %s", m.directory, target, name))
	}
	if _, exists := m.commands[name]; exists {
		panic(fmt.Sprintf("messenger %s: command %s declared twice", m.directory, name))
	}
	cmd := &Command{
		Name:      name,
		Guidance:  guidance,
		target:    target,
		paramName: name,
		directory: m.directory,
	}
	m.commands[name] = cmd
	return cmd
}

// DeclarePropertyWithUnit binds a command whose value is read in unit when
// the command line gives none.
func (m *Messenger) DeclarePropertyWithUnit(name, unit string, target interface{}, guidance string) *Command {
	return m.DeclareProperty(name, target, guidance).SetDefaultUnit(unit)
}

// Command returns a declared command.
func (m *Messenger) Command(name string) (*Command, bool) {
	cmd, ok := m.commands[name]
	return cmd, ok
}

// Commands returns the declared commands sorted by name.
func (m *Messenger) Commands() []*Command {
	result := make([]*Command, 0, len(m.commands))
	for _, c := range m.commands {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Apply executes a command line. The command may be given by its full path
// or by its name relative to the directory.
func (m *Messenger) Apply(line string) error {
	path, args := splitLine(line)
	name := strings.TrimPrefix(path, m.directory)
	if strings.Contains(name, "/") {
		return exception.New(origin, "Apply()", exception.ErrUnknownCommand,
			"command %s not found in %s", path, m.directory)
	}
	cmd, ok := m.commands[name]
	if !ok {
		return exception.New(origin, "Apply()", exception.ErrUnknownCommand,
			"command %s not found in %s", path, m.directory)
	}
	return cmd.Apply(args)
}

func splitLine(line string) (string, string) {
	line = strings.TrimSpace(line)
	fields := strings.SplitN(line, " ", 2)
	if len(fields) == 1 {
		return fields[0], ""
	}
	return fields[0], strings.TrimSpace(fields[1])
}
