package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add   func(AddArgs) (Result, error)
	Plan  func(PlanArgs) (Result, error)
	Goto  func(GotoArgs) (Result, error)
	Today func() (Result, error)
	Mark  func(MarkArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypePlan:
		if handlers.Plan == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "plan handler not configured"}
		}
		return handlers.Plan(*cmd.Plan)
	case TypeGoto:
		if handlers.Goto == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "goto handler not configured"}
		}
		return handlers.Goto(*cmd.Goto)
	case TypeToday:
		if handlers.Today == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "today handler not configured"}
		}
		return handlers.Today()
	case TypeMark:
		if handlers.Mark == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "mark handler not configured"}
		}
		return handlers.Mark(*cmd.Mark)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
