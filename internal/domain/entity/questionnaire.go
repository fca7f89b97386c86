package entity

// Section groups questions. Sections are traversed in ascending ID order.
type Section struct {
	ID   int64
	Name string
}

// Question belongs to exactly one section. Within a section questions are traversed in ascending ID order.
type Question struct {
	ID        int64
	SectionID int64
	Prompt    string
}

// Option is one allowed answer to a question.
type Option struct {
	ID         int64
	QuestionID int64
	Text       string
}

// Precedes reports whether q comes strictly before other in canonical traversal order.
func (q *Question) Precedes(other *Question) bool {
	if q.SectionID != other.SectionID {
		return q.SectionID < other.SectionID
	}

	return q.ID < other.ID
}

// BelongsTo reports whether the option is one of the answers of question q.
func (o *Option) BelongsTo(q *Question) bool {
	return o != nil && q != nil && o.QuestionID == q.ID
}
