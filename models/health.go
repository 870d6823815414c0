package models

// HealthReport summarises the strength, reuse and age of vault passwords.
type HealthReport struct {
	// Score is an integer in [0, 100]. Higher is healthier.
	Score int `json:"score"`

	// WeakPasswords lists entries whose strength is below the weak threshold.
	WeakPasswords []Entry `json:"weak_passwords"`

	// ReusedPasswords lists every password shared by more than one entry.
	ReusedPasswords []ReusedGroup `json:"reused_passwords"`

	// OldPasswords lists entries not updated within the age threshold.
	OldPasswords []Entry `json:"old_passwords"`

	TotalPasswords  int `json:"total_passwords"`
	StrongPasswords int `json:"strong_passwords"`
}

// ReusedGroup is a set of entries sharing the exact same password.
type ReusedGroup struct {
	Password string  `json:"password"`
	Entries  []Entry `json:"entries"`
}

// ReusedEntriesCount returns the number of entries across all reuse groups.
func (r HealthReport) ReusedEntriesCount() int {
	n := 0
	for _, g := range r.ReusedPasswords {
		n += len(g.Entries)
	}
	return n
}
