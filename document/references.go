package document

// References holds a stream's external links.
type References struct {
	Community     string
	Documentation string
	Tracker       string
}

// IsZero reports whether no reference URL has been set.
func (r References) IsZero() bool {
	return r.Community == "" && r.Documentation == "" && r.Tracker == ""
}

// Equal reports structural equality.
func (r References) Equal(other References) bool { return r == other }
