package models

import (
	"time"
)

// Wildcard values used by the course-link fallback lookup. A row with
// category "Default" covers every category of its plan; a row with both
// plan and category "Default" covers everything.
const (
	DefaultPlan     = "Default"
	DefaultCategory = "Default"
)

// CourseLink maps a (plan_type, category) pair to the pair of URLs shown
// on the student dashboard. (plan_type, category) is not enforced unique
// by the schema; lookups take the first match.
type CourseLink struct {
	ID               string `json:"id" gorm:"primaryKey;size:36"`
	PlanType         string `json:"plan_type" gorm:"not null;size:50;index:idx_course_links_plan_category,priority:1"`
	Category         string `json:"category" gorm:"not null;size:100;index:idx_course_links_plan_category,priority:2"`
	MaterialsLink    string `json:"materials_link" gorm:"size:500"`
	LiveSessionsLink string `json:"live_sessions_link" gorm:"size:500"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CourseLink) TableName() string {
	return "course_links"
}

// Admin marks an email address as having access to the admin panel.
// Rows are provisioned out of band; this service only reads them.
type Admin struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
}

func (Admin) TableName() string {
	return "admins"
}
