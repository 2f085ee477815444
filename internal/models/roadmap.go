package models

// DefaultLevel is applied when a client omits the level field.
const DefaultLevel = "beginner"

// Roadmap describes a learning path for one programming language. Documents
// live in the "roadmap" collection. The store-assigned _id is deliberately
// absent from this type so it can never appear in an API response.
type Roadmap struct {
	Language    string   `json:"language" bson:"language" validate:"required"`
	Title       string   `json:"title" bson:"title" validate:"required"`
	Description string   `json:"description" bson:"description" validate:"required"`
	Level       string   `json:"level" bson:"level"`
	Steps       []string `json:"steps" bson:"steps"`
}

// ApplyDefaults fills optional fields after decoding and before validation.
// Steps is normalized to an empty slice so it serializes as [] rather than null.
func (r *Roadmap) ApplyDefaults() {
	if r.Level == "" {
		r.Level = DefaultLevel
	}
	if r.Steps == nil {
		r.Steps = []string{}
	}
}
