package commands

import (
	"log"
	"strings"
)

// Commands is the named command registry the host binds editor operations
// into (save, jumps, toggles). Lookup is by longest matching prefix so
// abbreviated invocations like "w" hit "write".
type Command func() error

type Commands struct {
	log      *log.Logger
	commands map[string]Command
}

func NewCommands(logger *log.Logger) *Commands {
	return &Commands{log: logger, commands: make(map[string]Command)}
}

func (c *Commands) Register(name string, command Command) {
	c.commands[name] = command
}

// Exec runs the command whose name has the longest prefix match with the
// given invocation. Unknown commands are logged, not errors.
func (c *Commands) Exec(invocation string) error {
	if cmd, name := c.findByLongestPrefix(invocation); cmd != nil {
		if err := cmd(); err != nil {
			c.log.Printf("command %s failed: %v", name, err)
			return err
		}
		return nil
	}
	c.log.Printf("command %s not found", invocation)
	return nil
}

func (c *Commands) findByLongestPrefix(prefix string) (Command, string) {
	longest := -1
	var found Command
	var foundName string
	for name, cmd := range c.commands {
		if strings.HasPrefix(name, prefix) && len(name) > longest {
			longest = len(name)
			found = cmd
			foundName = name
		}
	}
	return found, foundName
}
