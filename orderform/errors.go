package orderform

import "strings"

// Errors maps a field name to its message. Nested fields (addresses, line
// items) hold another Errors value instead of a string.
type Errors map[string]interface{}

// Add records msg at a dotted path such as "shippingAddress.pinCode". The
// first message recorded for a path wins.
func (e Errors) Add(path, msg string) {
	head, rest, nested := strings.Cut(path, ".")
	if !nested {
		if _, exists := e[head]; !exists {
			e[head] = msg
		}
		return
	}
	child, ok := e[head].(Errors)
	if !ok {
		if _, exists := e[head]; exists {
			return
		}
		child = Errors{}
		e[head] = child
	}
	child.Add(rest, msg)
}

// Get returns the message at path, or "" when there is none.
func (e Errors) Get(path string) string {
	head, rest, nested := strings.Cut(path, ".")
	v, ok := e[head]
	if !ok {
		return ""
	}
	if !nested {
		msg, _ := v.(string)
		return msg
	}
	child, ok := v.(Errors)
	if !ok {
		return ""
	}
	return child.Get(rest)
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

// Clone deep-copies the error tree.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		if child, ok := v.(Errors); ok {
			out[k] = child.Clone()
			continue
		}
		out[k] = v
	}
	return out
}
