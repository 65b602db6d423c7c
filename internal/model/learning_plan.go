package model

type LearningPlan struct {
	ID     string             `json:"id"`
	Title  string             `json:"title"`
	Goal   string             `json:"goal"`
	Skills []string           `json:"skills"`
	Image  string             `json:"image,omitempty"`
	Steps  []LearningPlanStep `json:"steps"`
}

type LearningPlanStep struct {
	Topic     string `json:"topic"`
	Resources string `json:"resources"`
	Timeline  string `json:"timeline"`
}
