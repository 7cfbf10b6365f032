package models

// Role defines the user role type
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// VerificationStatus is the tri-state verification label used by both users
// and achievements. For achievements, pending is the only non-terminal state.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// IsDecision reports whether s is a value a verifier may apply to a pending
// achievement.
func (s VerificationStatus) IsDecision() bool {
	return s == VerificationVerified || s == VerificationRejected
}

// AchievementCategory classifies an achievement
type AchievementCategory string

const (
	CategoryAcademic        AchievementCategory = "academic"
	CategoryExtracurricular AchievementCategory = "extracurricular"
	CategorySports          AchievementCategory = "sports"
	CategoryResearch        AchievementCategory = "research"
	CategoryVolunteer       AchievementCategory = "volunteer"
	CategoryCertification   AchievementCategory = "certification"
)

// AchievementCategories lists every valid category
var AchievementCategories = []AchievementCategory{
	CategoryAcademic,
	CategoryExtracurricular,
	CategorySports,
	CategoryResearch,
	CategoryVolunteer,
	CategoryCertification,
}

// IsValid reports whether c is a known category
func (c AchievementCategory) IsValid() bool {
	for _, v := range AchievementCategories {
		if c == v {
			return true
		}
	}
	return false
}

// EventStatus defines the event lifecycle state
type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventPublished EventStatus = "published"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

// ParticipationStatus defines the state of a student's event participation
type ParticipationStatus string

const (
	ParticipationRegistered ParticipationStatus = "registered"
	ParticipationAttended   ParticipationStatus = "attended"
	ParticipationCompleted  ParticipationStatus = "completed"
	ParticipationNoShow     ParticipationStatus = "no_show"
)
