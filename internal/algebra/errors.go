package algebra

import "fmt"

type AlgebraError struct {
	Kind    string
	Message string
}

func (e AlgebraError) Error() string {
	return fmt.Sprintf("algebra error (%v): %v", e.Kind, e.Message)
}
