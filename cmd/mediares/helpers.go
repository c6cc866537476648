package main

import "fmt"

// usageError marks failures caused by how the command was invoked rather
// than by resolution itself. main maps it to exit code 2.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
