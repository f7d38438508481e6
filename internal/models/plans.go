package models

type PlanType string

const (
	PlanFreshmanPlus  PlanType = "freshman-plus"
	PlanFreshmanExam  PlanType = "freshman-exam"
	PlanUAT           PlanType = "uat"
	PlanSTUExam       PlanType = "stu-exam"
	PlanCOCExam       PlanType = "coc-exam"
	PlanGATExam       PlanType = "gat-exam"
	PlanRemedial      PlanType = "remedial"
	PlanEntranceESSLC PlanType = "entrance-esslc"
)

// planOrder fixes the order plans are presented in on the registration form.
var planOrder = []PlanType{
	PlanFreshmanPlus,
	PlanFreshmanExam,
	PlanUAT,
	PlanSTUExam,
	PlanCOCExam,
	PlanGATExam,
	PlanRemedial,
	PlanEntranceESSLC,
}

var planCategories = map[PlanType][]string{
	PlanFreshmanPlus:  {"Semester 1", "Semester 2", "Both Semesters"},
	PlanFreshmanExam:  {"Semester 1", "Semester 2", "Both Semesters"},
	PlanUAT:           {"UAT Exam Prep"},
	PlanSTUExam:       {"STU Exam Prep"},
	PlanCOCExam:       {"Software Engineering", "Architecture", "Medicine"},
	PlanGATExam:       {"GAT Exam Prep"},
	PlanRemedial:      {"Remedial Prep"},
	PlanEntranceESSLC: {"ESSLC Exam Prep"},
}

// CategoriesFor returns the ordered category labels valid for a plan type.
// Unknown plan types yield an empty slice.
func CategoriesFor(plan PlanType) []string {
	categories, ok := planCategories[plan]
	if !ok {
		return nil
	}
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// Plans returns all known plan types in presentation order.
func Plans() []PlanType {
	out := make([]PlanType, len(planOrder))
	copy(out, planOrder)
	return out
}
