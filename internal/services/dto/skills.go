package dto

// ReplaceSkillsRequest requires an array-shaped skills field. A missing or
// null value fails `required` (400); a non-array value fails JSON binding
// (also 400).
type ReplaceSkillsRequest struct {
	Skills *[]string `json:"skills" validate:"required"`
}

type AddSkillRequest struct {
	Skill string `json:"skill" validate:"required"`
}
