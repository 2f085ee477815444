package utils

// Application Constants
const (
	AppName    = "Nazar Blog API"
	AppVersion = "1.0.0"

	// Collection names are fixed literals, never derived.
	CollectionRoadmap = "roadmap"
	CollectionCourse  = "course"

	// Diagnostics
	MaxDiagnosticCollections = 10
	MaxDiagnosticErrorLength = 50
)
