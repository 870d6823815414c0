package models

// Category groups entries in the vault. EntryCount is maintained by the
// server on entry create and delete.
type Category struct {
	ID         string `json:"id"`
	UserID     int64  `json:"user_id"`
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	Color      string `json:"color,omitempty"`
	EntryCount int    `json:"entry_count"`
}

// DefaultCategories are seeded for users who have no categories yet.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Email", Icon: "Mail"},
		{Name: "Social", Icon: "Users"},
		{Name: "Banking", Icon: "CreditCard"},
		{Name: "Work", Icon: "Briefcase"},
		{Name: "Personal", Icon: "User"},
	}
}
