package seed

import "nazarblog/internal/models"

func sampleRoadmaps() []models.Roadmap {
	return []models.Roadmap{
		{
			Language:    "Python",
			Title:       "Python Developer Roadmap",
			Description: "A clear path from basics to building real-world Python apps.",
			Level:       models.DefaultLevel,
			Steps: []string{
				"Learn syntax, variables, and control flow",
				"Work with data structures (lists, dicts, sets)",
				"Functions, modules, and packages",
				"OOP basics",
				"Virtual environments & package management",
				"Build small CLI and web projects (FastAPI)",
			},
		},
		{
			Language:    "JavaScript",
			Title:       "JavaScript Developer Roadmap",
			Description: "From fundamentals to modern web apps.",
			Level:       models.DefaultLevel,
			Steps: []string{
				"JS fundamentals & DOM",
				"ES6+ features",
				"Async programming",
				"Tooling (npm, bundlers)",
				"React basics",
				"Build a full-stack app",
			},
		},
	}
}

func sampleCourses() []models.Course {
	pyDuration := "6 hours"
	jsDuration := "5 hours"

	return []models.Course{
		{
			Language:    "Python",
			Title:       "Python for Beginners",
			Slug:        "python-for-beginners",
			Description: "Start your Python journey with hands-on lessons.",
			Level:       models.DefaultLevel,
			Duration:    &pyDuration,
			Lessons: []models.Lesson{
				{Title: "Introduction to Python", Content: "History, install, hello world", Order: 1},
				{Title: "Variables and Types", Content: "Numbers, strings, lists, dicts", Order: 2},
				{Title: "Control Flow", Content: "if/else, loops", Order: 3},
				{Title: "Functions", Content: "Defining and using functions", Order: 4},
			},
		},
		{
			Language:    "JavaScript",
			Title:       "Modern JavaScript",
			Slug:        "modern-javascript",
			Description: "ES6+ features and building interactive pages.",
			Level:       models.DefaultLevel,
			Duration:    &jsDuration,
			Lessons: []models.Lesson{
				{Title: "JS Fundamentals", Content: "Variables, types, operators", Order: 1},
				{Title: "Functions & Scope", Content: "Function types, closures", Order: 2},
				{Title: "Async JS", Content: "Promises, async/await", Order: 3},
				{Title: "DOM", Content: "Selecting and manipulating elements", Order: 4},
			},
		},
	}
}
