package command

import "strings"

// Command identifies one of the supported transforms.
type Command int

const (
	Lowercase Command = iota + 1
	Uppercase
	NoSpaces
	Slugify
	Reverse
	Alternating
	CSVFile
)

type definition struct {
	cmd         Command
	name        string
	description string
}

// definitions is ordered as the commands are listed to the user.
var definitions = []definition{
	{Lowercase, "lowercase", "Convert text to lowercase"},
	{Uppercase, "uppercase", "Convert text to uppercase"},
	{NoSpaces, "no-spaces", "Remove all spaces from text"},
	{Slugify, "slugify", "Convert text to URL-friendly format"},
	{Reverse, "reverse", "Reverse the text"},
	{Alternating, "alternating", "Alternate between upper and lowercase"},
	{CSVFile, "csv-file", "Read and format CSV from file"},
}

// All returns every command in display order.
func All() []Command {
	all := make([]Command, len(definitions))
	for i, def := range definitions {
		all[i] = def.cmd
	}

	return all
}

// Lookup finds the command named token, ignoring case.
func Lookup(token string) (Command, bool) {
	for _, def := range definitions {
		if strings.EqualFold(def.name, token) {
			return def.cmd, true
		}
	}

	return 0, false
}

func (c Command) definition() (definition, bool) {
	for _, def := range definitions {
		if def.cmd == c {
			return def, true
		}
	}

	return definition{}, false
}

// String returns the identifier typed by the user.
func (c Command) String() string {
	def, ok := c.definition()
	if !ok {
		return "unknown"
	}

	return def.name
}

// Description returns a one-line summary of the transform.
func (c Command) Description() string {
	def, _ := c.definition()

	return def.description
}

// Valid reports whether c is one of the known commands.
func (c Command) Valid() bool {
	_, ok := c.definition()

	return ok
}
