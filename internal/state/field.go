package state

// Field is a form value that remembers whether it has been edited. Errors for
// a field are only reported once it is Set, so a pristine form shows none.
type Field struct {
	Value string
	Set   bool
}

func (f Field) With(value string) Field {
	return Field{Value: value, Set: true}
}
