package main

import (
	"os"
	"strings"

	"github.com/askiada/go-textpipe/cmd/textpipe/root"
)

type exitCoder interface {
	ExitCode() int
}

func main() {
	err := root.Execute(os.Args[1:])
	if err == nil {
		return
	}

	// Diagnostics already printed by the command leave the message empty.
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg != "" {
		_, _ = os.Stderr.WriteString(msg + "\n")
	}

	code := 1
	if ec, ok := err.(exitCoder); ok { //nolint:errorlint // exit codes are never wrapped
		if c := ec.ExitCode(); c != 0 {
			code = c
		}
	}

	os.Exit(code)
}
