package dto

// SkillResponse identifies the owning category by id only; the full
// category object is never embedded here.
type SkillResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  int64  `json:"categoryId"`
}
