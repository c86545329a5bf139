package contract

// PlanItemType tags which candidate stream produced a plan item.
type PlanItemType string

const (
	PlanItemEvent   PlanItemType = "event"
	PlanItemGrade   PlanItemType = "grade"
	PlanItemRoadmap PlanItemType = "roadmap"
)

// PlanItem is one ranked action in the today plan.
type PlanItem struct {
	ID       string
	Title    string
	Detail   string
	Priority float64
	Type     PlanItemType
}
