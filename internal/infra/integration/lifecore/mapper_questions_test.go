package lifecore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHealthQuestionsCoercion(t *testing.T) {
	data := decode(t, `[
		{
			"question_id": 7,
			"question_text": "Apakah Anda merokok?",
			"answer_type": "CHOICE",
			"required_flag": "Y",
			"group_order": "1",
			"group_type": "LIFESTYLE",
			"group_label": "Gaya Hidup",
			"question_order": 2,
			"choices": [{"code": "Y", "name": "Ya"}, {"code": "N", "name": "Tidak"}]
		},
		{"question_id": "Q8", "required_flag": "N"}
	]`)

	questions := MapHealthQuestions(data)
	require.Len(t, questions, 2)

	assert.Equal(t, "7", questions[0].ID)
	assert.True(t, questions[0].Required)
	assert.Equal(t, 1, questions[0].GroupOrder)
	assert.Equal(t, 2, questions[0].QuestionOrder)
	require.Len(t, questions[0].Choices, 2)
	assert.Equal(t, "Ya", questions[0].Choices[0].Name)

	assert.Equal(t, "Q8", questions[1].ID)
	assert.False(t, questions[1].Required)
	assert.Empty(t, questions[1].Choices)
}

func TestMapHealthQuestionGroupsEmpty(t *testing.T) {
	assert.Empty(t, MapHealthQuestionGroups(nil))
	assert.Empty(t, MapHealthQuestionGroups(decode(t, `[]`)))
}

func TestMapHealthQuestionGroupsOrdering(t *testing.T) {
	data := decode(t, `[
		{"question_id": "A", "group_order": 2, "group_type": "MEDICAL", "group_label": "Riwayat Medis", "question_order": 1},
		{"question_id": "B", "group_order": 1, "group_type": "LIFESTYLE", "group_label": "Gaya Hidup", "question_order": 2},
		{"question_id": "C", "group_order": 1, "group_type": "LIFESTYLE", "group_label": "Gaya Hidup", "question_order": 1}
	]`)

	groups := MapHealthQuestionGroups(data)
	require.Len(t, groups, 2)

	assert.Equal(t, 1, groups[0].GroupOrder)
	require.Len(t, groups[0].Questions, 2)
	assert.Equal(t, "C", groups[0].Questions[0].ID)
	assert.Equal(t, "B", groups[0].Questions[1].ID)

	assert.Equal(t, 2, groups[1].GroupOrder)
	assert.Equal(t, "A", groups[1].Questions[0].ID)
}

func TestMapHealthQuestionGroupsSameOrderDifferentTypeStayDistinct(t *testing.T) {
	data := decode(t, `[
		{"question_id": "A", "group_order": 1, "group_type": "MEDICAL", "group_label": "X", "question_order": 1},
		{"question_id": "B", "group_order": 1, "group_type": "LIFESTYLE", "group_label": "X", "question_order": 1},
		{"question_id": "C", "group_order": 1, "group_type": "MEDICAL", "group_label": "X", "question_order": 2}
	]`)

	groups := MapHealthQuestionGroups(data)
	require.Len(t, groups, 2)

	// same order: stable sort keeps first-appearance order (MEDICAL first)
	assert.Equal(t, "MEDICAL", groups[0].GroupType)
	require.Len(t, groups[0].Questions, 2)
	assert.Equal(t, "A", groups[0].Questions[0].ID)
	assert.Equal(t, "C", groups[0].Questions[1].ID)

	assert.Equal(t, "LIFESTYLE", groups[1].GroupType)
	require.Len(t, groups[1].Questions, 1)
}

func TestMapHealthQuestionGroupsTiedQuestionOrderKeepsInputOrder(t *testing.T) {
	data := decode(t, `[
		{"question_id": "first", "group_order": 1, "group_type": "G", "group_label": "L", "question_order": 3},
		{"question_id": "second", "group_order": 1, "group_type": "G", "group_label": "L", "question_order": 3}
	]`)

	groups := MapHealthQuestionGroups(data)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Questions, 2)
	assert.Equal(t, "first", groups[0].Questions[0].ID)
	assert.Equal(t, "second", groups[0].Questions[1].ID)
}
