package term

import "fmt"

type TermError struct {
	Kind    string
	Message string
}

func (e TermError) Error() string {
	return fmt.Sprintf("term error (%v): %v", e.Kind, e.Message)
}

func malformedVariable(name string) error {
	return TermError{
		Kind:    "MalformedVariable",
		Message: fmt.Sprintf("variable %q must start with ? or $ and carry no datatype/lang", name),
	}
}
