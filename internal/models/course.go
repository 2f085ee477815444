package models

// Lesson is embedded in a course document. Lessons have no identity of their
// own and no collection; order defines the display sequence.
type Lesson struct {
	Title   string `json:"title" bson:"title" validate:"required"`
	Content string `json:"content" bson:"content" validate:"required"`
	Order   int    `json:"order" bson:"order"`
}

// Course describes one course in the "course" collection. The slug is the
// external identifier used for lookups; a unique index on it is created at
// startup. Like Roadmap, the type carries no _id field.
type Course struct {
	Language    string   `json:"language" bson:"language" validate:"required"`
	Title       string   `json:"title" bson:"title" validate:"required"`
	Slug        string   `json:"slug" bson:"slug" validate:"required"`
	Description string   `json:"description" bson:"description" validate:"required"`
	Level       string   `json:"level" bson:"level"`
	Duration    *string  `json:"duration" bson:"duration,omitempty"`
	Lessons     []Lesson `json:"lessons" bson:"lessons" validate:"dive"`
}

// ApplyDefaults fills optional fields after decoding and before validation.
func (c *Course) ApplyDefaults() {
	if c.Level == "" {
		c.Level = DefaultLevel
	}
	if c.Lessons == nil {
		c.Lessons = []Lesson{}
	}
	for i := range c.Lessons {
		if c.Lessons[i].Order == 0 {
			c.Lessons[i].Order = 1
		}
	}
}
