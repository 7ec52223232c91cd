package entity

// HealthQuestion is an atomic questionnaire item. GroupOrder, GroupType and
// GroupLabel identify the group it belongs to; QuestionOrder positions it
// within the group.
type HealthQuestion struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	AnswerType    string   `json:"answer_type"`
	Choices       []Option `json:"choices,omitempty"`
	Required      bool     `json:"required"`
	GroupOrder    int      `json:"group_order"`
	GroupType     string   `json:"group_type"`
	GroupLabel    string   `json:"group_label"`
	QuestionOrder int      `json:"question_order"`
}

// QuestionGroup aggregates questions sharing the same
// (group_order, group_type, group_label) triple.
type QuestionGroup struct {
	GroupOrder int              `json:"group_order"`
	GroupType  string           `json:"group_type"`
	GroupLabel string           `json:"group_label"`
	Questions  []HealthQuestion `json:"question"`
}

// QuestionAnswer is a submitted answer, kept alongside the registration.
type QuestionAnswer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}
