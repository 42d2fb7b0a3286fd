package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"todo/internal/exitcode"
)

// ErrTaskIDRequired indicates no task id was provided.
var ErrTaskIDRequired = errors.New("task id required")

// ParseTaskID parses the task id from args.
//
// Parsing rules:
// 1. No args → ErrTaskIDRequired
// 2. More than one arg → error: unexpected argument: <arg>
// 3. Optional leading '#', then all digits → the id
// 4. Otherwise → error: invalid task id: <arg>
//
// Range checks (id > 0) are left to the service.
func ParseTaskID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskIDRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}

	digits := strings.TrimPrefix(args[0], "#")
	if !isAllDigits(digits) {
		return 0, fmt.Errorf("invalid task id: %s", args[0])
	}
	id, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("invalid task id: %s", args[0])
	}
	return id, nil
}

// taskIDArg parses the task id for a command, printing any parse error.
// ok is false when the command should exit with code.
func taskIDArg(args []string, errOut io.Writer) (id, code int, ok bool) {
	id, err := ParseTaskID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return 0, exitcode.UserError, false
	}
	return id, exitcode.Success, true
}

// isAllDigits returns true if s consists only of digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
