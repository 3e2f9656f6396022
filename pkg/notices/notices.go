package notices

// List accumulates the ordered, request-scoped status messages that are
// rendered alongside a response. Order matters: callers rely on the messages
// coming back in the order they were added.
type List []string

// New returns an empty list. It's non-nil so that an empty list serializes to
// a JSON array instead of null.
func New() List {
	return List{}
}

// Add appends a message to the list.
func (l *List) Add(msg string) {
	*l = append(*l, msg)
}
