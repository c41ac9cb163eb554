package community

// Fixture content shipped with the application. IDs double as store keys.

var fixtureChallenges = []Challenge{
	{
		ID:           "plastic-free-week",
		Type:         typeChallenge,
		Name:         "Plastic-Free Week",
		Description:  "Avoid single-use plastics for one week",
		DurationDays: 7,
		Participants: 156,
		Impact:       "234kg plastic avoided",
	},
	{
		ID:           "zero-waste-month",
		Type:         typeChallenge,
		Name:         "Zero Waste Month",
		Description:  "Minimize waste generation for 30 days",
		DurationDays: 30,
		Participants: 89,
		Impact:       "445kg waste reduced",
	},
	{
		ID:           "recycling-champion",
		Type:         typeChallenge,
		Name:         "Recycling Champion",
		Description:  "Achieve 90% recycling rate this month",
		DurationDays: 30,
		Participants: 203,
		Impact:       "567kg materials recycled",
	},
}

var fixtureLeaderboard = []LeaderboardEntry{
	{ID: "leader-sarah-m", Type: typeLeaderboard, Name: "Sarah M.", Points: 2450, WasteDiverted: "45kg", StreakDays: 15},
	{ID: "leader-john-k", Type: typeLeaderboard, Name: "John K.", Points: 2380, WasteDiverted: "42kg", StreakDays: 12},
	{ID: "leader-amina-l", Type: typeLeaderboard, Name: "Amina L.", Points: 2290, WasteDiverted: "38kg", StreakDays: 18},
	{ID: "leader-david-r", Type: typeLeaderboard, Name: "David R.", Points: 2150, WasteDiverted: "35kg", StreakDays: 8},
	{ID: "leader-grace-w", Type: typeLeaderboard, Name: "Grace W.", Points: 2080, WasteDiverted: "33kg", StreakDays: 21},
}

var fixtureEvents = []Event{
	{
		ID:           "cleanup-2024-11-15",
		Type:         typeEvent,
		Name:         "Community Park Cleanup",
		Date:         "2024-11-15",
		Location:     "Central Park, Nairobi",
		Participants: 45,
		Description:  "Join us for a community cleanup event",
	},
	{
		ID:           "recycling-drive-2024-11-20",
		Type:         typeEvent,
		Name:         "Electronic Waste Recycling Drive",
		Date:         "2024-11-20",
		Location:     "City Hall, Nairobi",
		Participants: 120,
		Description:  "Safely dispose of electronic waste",
	},
}

var fixtureArticles = []Article{
	{
		ID:       "article-plastic-recycling",
		Type:     typeArticle,
		Title:    "The Journey of Plastic Recycling",
		Content:  "Learn how plastic waste is transformed into new products through the recycling process.",
		Kind:     "article",
		ReadTime: "5 min",
	},
	{
		ID:       "article-composting-basics",
		Type:     typeArticle,
		Title:    "Composting Basics for Beginners",
		Content:  "Start composting at home with these simple steps and reduce your organic waste.",
		Kind:     "guide",
		ReadTime: "8 min",
	},
	{
		ID:       "article-carbon-footprint",
		Type:     typeArticle,
		Title:    "Understanding Carbon Footprint",
		Content:  "How your waste management choices impact the environment and climate change.",
		Kind:     "educational",
		ReadTime: "6 min",
	},
}
