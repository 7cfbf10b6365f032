package dto

// StudentDashboardResponse is the payload backing the student dashboard view
type StudentDashboardResponse struct {
	Stats              StudentStats          `json:"stats"`
	RecentAchievements []AchievementResponse `json:"recentAchievements"`
	UpcomingEvents     []EventResponse       `json:"upcomingEvents"`
	Portfolio          *PortfolioResponse    `json:"portfolio"`
}

// StudentStats are the headline numbers on the student dashboard
type StudentStats struct {
	TotalAchievements    int `json:"totalAchievements"`
	VerifiedAchievements int `json:"verifiedAchievements"`
	TotalPoints          int `json:"totalPoints"`
	UpcomingEvents       int `json:"upcomingEvents"`
}

// FacultyDashboardResponse is the payload backing the faculty dashboard view
type FacultyDashboardResponse struct {
	Stats               FacultyStats          `json:"stats"`
	PendingAchievements []AchievementResponse `json:"pendingAchievements"`
	MyEvents            []EventResponse       `json:"myEvents"`
	Students            []UserResponse        `json:"students"`
}

// FacultyStats are the headline numbers on the faculty dashboard
type FacultyStats struct {
	PendingVerifications int `json:"pendingVerifications"`
	MyEvents             int `json:"myEvents"`
	ActiveStudents       int `json:"activeStudents"`
	VerificationsDone    int `json:"verificationsDone"`
}

// AdminDashboardResponse is the payload backing the admin analytics view
type AdminDashboardResponse struct {
	Stats              AdminStats     `json:"stats"`
	CategoryBreakdown  map[string]int `json:"categoryBreakdown"`
	StatusDistribution map[string]int `json:"statusDistribution"`
}

// AdminStats are the aggregate counts on the admin dashboard
type AdminStats struct {
	TotalStudents        int `json:"totalStudents"`
	TotalFaculty         int `json:"totalFaculty"`
	TotalAchievements    int `json:"totalAchievements"`
	TotalEvents          int `json:"totalEvents"`
	PendingVerifications int `json:"pendingVerifications"`
}
