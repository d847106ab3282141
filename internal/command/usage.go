package command

import (
	"fmt"
	"io"
)

// WriteUsage prints the available commands and the line protocol.
func WriteUsage(wrt io.Writer) error {
	_, err := fmt.Fprintln(wrt, "Available commands:")
	if err != nil {
		return err
	}

	for _, cmd := range All() {
		_, err = fmt.Fprintf(wrt, "  %-11s - %s\n", cmd, cmd.Description())
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprint(wrt, "\nUsage:\n  <command> <text>\n  csv-file <path/to/file.csv>\n\nType 'quit' to exit\n\n")

	return err
}
