package commands

import (
	"fmt"
	"strings"

	"github.com/mkalita/daygrid/internal/model"
)

type Type string

const (
	TypeAdd   Type = "add"
	TypePlan  Type = "plan"
	TypeGoto  Type = "goto"
	TypeToday Type = "today"
	TypeMark  Type = "mark"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Title string
}

type PlanArgs struct {
	Title string
}

type GotoArgs struct {
	DateKey string
}

type MarkArgs struct {
	Value bool
}

type Command struct {
	Type Type
	Raw  string
	Add  *AddArgs
	Plan *PlanArgs
	Goto *GotoArgs
	Mark *MarkArgs
}

// Parse turns palette input into a typed command. A leading slash is
// tolerated so "/add Run" and "add Run" behave the same.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseTitled(TypeAdd, input, args)
	case TypePlan:
		return parseTitled(TypePlan, input, args)
	case TypeGoto:
		return parseGoto(input, args)
	case TypeToday:
		return Command{Type: TypeToday, Raw: input}, nil
	case TypeMark:
		return parseMark(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseTitled(kind Type, raw string, args []string) (Command, error) {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a title", kind)}
	}
	cmd := Command{Type: kind, Raw: raw}
	if kind == TypeAdd {
		cmd.Add = &AddArgs{Title: title}
	} else {
		cmd.Plan = &PlanArgs{Title: title}
	}
	return cmd, nil
}

func parseGoto(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goto requires a YYYY-MM-DD date"}
	}
	if _, err := model.ParseDateKey(args[0]); err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("goto: %q is not a YYYY-MM-DD date", args[0])}
	}
	return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{DateKey: args[0]}}, nil
}

func parseMark(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "mark requires done or clear"}
	}
	switch strings.ToLower(args[0]) {
	case "done":
		return Command{Type: TypeMark, Raw: raw, Mark: &MarkArgs{Value: true}}, nil
	case "clear":
		return Command{Type: TypeMark, Raw: raw, Mark: &MarkArgs{Value: false}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("mark: unknown argument %q", args[0])}
	}
}
