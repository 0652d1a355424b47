package operator

import "fmt"

type OperatorError struct {
	Kind    string
	Message string
}

func (e OperatorError) Error() string {
	return fmt.Sprintf("operator error (%v): %v", e.Kind, e.Message)
}

func canceled(op string) error {
	return OperatorError{Kind: "Canceled", Message: fmt.Sprintf("%s: context canceled", op)}
}
