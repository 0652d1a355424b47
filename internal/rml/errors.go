package rml

import "fmt"

type TranslationError struct {
	Kind    string
	Message string
}

func (e TranslationError) Error() string {
	return fmt.Sprintf("rml translation error (%v): %v", e.Kind, e.Message)
}

func malformedTemplate(template, detail string) error {
	return TranslationError{
		Kind:    "MalformedTemplate",
		Message: fmt.Sprintf("%q: %s", template, detail),
	}
}
