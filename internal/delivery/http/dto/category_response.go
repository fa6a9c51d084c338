package dto

// CategorySkill is the child view embedded in a category: the skill
// without its category back-reference, so the payload cannot recurse.
type CategorySkill struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryResponse struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	Skills []CategorySkill `json:"skills"`
}
