package models

// User is part of the schema surface for the "user" collection. No route
// exposes it today.
type User struct {
	Name     string `json:"name" bson:"name" validate:"required"`
	Email    string `json:"email" bson:"email" validate:"required,email"`
	Address  string `json:"address" bson:"address" validate:"required"`
	Age      *int   `json:"age" bson:"age,omitempty" validate:"omitempty,gte=0,lte=120"`
	IsActive *bool  `json:"is_active" bson:"is_active"`
}

func (u *User) ApplyDefaults() {
	if u.IsActive == nil {
		active := true
		u.IsActive = &active
	}
}
