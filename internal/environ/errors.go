package environ

import "fmt"

// UnsetVariableError is returned when a requested variable is absent and
// unset variables are configured to be fatal.
type UnsetVariableError struct {
	Name string
}

func (e *UnsetVariableError) Error() string {
	return fmt.Sprintf("environment variable %s is unset", e.Name)
}

// UndecodableValueError is returned when a variable's value is not valid
// UTF-8. KeyUnreadable is set when the variable name is not valid UTF-8 either,
// in which case Name is not shown.
type UndecodableValueError struct {
	Name          string
	KeyUnreadable bool
}

func (e *UndecodableValueError) Error() string {
	if e.KeyUnreadable {
		return "could not read value of an environment variable whose key is unreadable too"
	}
	return fmt.Sprintf("could not read value of environment variable %s: value is not valid UTF-8", e.Name)
}
