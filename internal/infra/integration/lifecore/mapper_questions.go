package lifecore

import (
	"fmt"
	"sort"

	"github.com/xavierca1/insura-microsite/internal/entity"
)

func MapHealthQuestions(data any) []entity.HealthQuestion {
	records := ensureArray(data)
	out := make([]entity.HealthQuestion, 0, len(records))
	for _, rec := range records {
		out = append(out, entity.HealthQuestion{
			ID:            toString(field(rec, "question_id")),
			Text:          toString(field(rec, "question_text")),
			AnswerType:    toString(field(rec, "answer_type")),
			Choices:       MapOptionList(field(rec, "choices"), "code", "name"),
			Required:      toString(field(rec, "required_flag")) == "Y",
			GroupOrder:    int(toNumber(field(rec, "group_order"))),
			GroupType:     toString(field(rec, "group_type")),
			GroupLabel:    toString(field(rec, "group_label")),
			QuestionOrder: int(toNumber(field(rec, "question_order"))),
		})
	}
	return out
}

// MapHealthQuestionGroups groups the flat question list by the
// (group_order, group_type, group_label) triple. Questions are sorted by
// question_order within a group and groups by group_order; both sorts are
// stable, so equal keys keep first-appearance order. Two groups with the
// same order but different type or label stay distinct.
func MapHealthQuestionGroups(data any) []entity.QuestionGroup {
	questions := MapHealthQuestions(data)

	index := make(map[string]int)
	groups := make([]entity.QuestionGroup, 0)
	for _, q := range questions {
		key := fmt.Sprintf("%d-%s-%s", q.GroupOrder, q.GroupType, q.GroupLabel)
		i, ok := index[key]
		if !ok {
			groups = append(groups, entity.QuestionGroup{
				GroupOrder: q.GroupOrder,
				GroupType:  q.GroupType,
				GroupLabel: q.GroupLabel,
			})
			i = len(groups) - 1
			index[key] = i
		}
		groups[i].Questions = append(groups[i].Questions, q)
	}

	for i := range groups {
		qs := groups[i].Questions
		sort.SliceStable(qs, func(a, b int) bool {
			return qs[a].QuestionOrder < qs[b].QuestionOrder
		})
	}
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].GroupOrder < groups[b].GroupOrder
	})
	return groups
}
