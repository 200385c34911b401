package dto

import "github.com/google/uuid"

type FieldDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	Icon         *string   `json:"icon,omitempty"`
	Color        *string   `json:"color,omitempty"`
	DisplayOrder int       `json:"display_order"`
}

type SubjectDTO struct {
	ID           uuid.UUID `json:"id"`
	FieldID      uuid.UUID `json:"field_id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	Icon         *string   `json:"icon,omitempty"`
	DisplayOrder int       `json:"display_order"`
}

type TopicDTO struct {
	ID           uuid.UUID `json:"id"`
	SubjectID    uuid.UUID `json:"subject_id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	StudyNotes   *string   `json:"study_notes,omitempty"`
	DisplayOrder int       `json:"display_order"`
}

// PracticeQuestionDTO is a question served for free practice. The correct
// option stays hidden until the answer is checked.
type PracticeQuestionDTO struct {
	ID           uuid.UUID `json:"id"`
	TopicID      uuid.UUID `json:"topic_id"`
	QuestionText string    `json:"question_text"`
	OptionA      string    `json:"option_a"`
	OptionB      string    `json:"option_b"`
	OptionC      string    `json:"option_c"`
	OptionD      string    `json:"option_d"`
	Difficulty   string    `json:"difficulty"`
}
