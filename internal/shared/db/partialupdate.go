package db

// PartialUpdate collects optional column assignments for an UPDATE statement.
// Columns are only included when explicitly set, so callers never concatenate
// identifier strings to build conditional update lists.
type PartialUpdate struct {
	assignments map[string]interface{}
}

// NewPartialUpdate creates an empty update set.
func NewPartialUpdate() *PartialUpdate {
	return &PartialUpdate{assignments: make(map[string]interface{})}
}

// Set adds a column assignment.
func (u *PartialUpdate) Set(column string, value interface{}) *PartialUpdate {
	u.assignments[column] = value
	return u
}

// SetIf adds a column assignment only when cond is true.
func (u *PartialUpdate) SetIf(cond bool, column string, value interface{}) *PartialUpdate {
	if cond {
		u.assignments[column] = value
	}
	return u
}

// IsEmpty reports whether no columns were set.
func (u *PartialUpdate) IsEmpty() bool {
	return len(u.assignments) == 0
}

// Len returns the number of set columns.
func (u *PartialUpdate) Len() int {
	return len(u.assignments)
}

// Assignments returns the column map in the shape gorm's Updates expects.
func (u *PartialUpdate) Assignments() map[string]interface{} {
	return u.assignments
}
