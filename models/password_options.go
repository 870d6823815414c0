package models

// PasswordOptions configures random password generation.
type PasswordOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultPasswordOptions returns a 16 character policy with every class enabled.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}
