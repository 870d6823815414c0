package service

import "sync"

// Identity is the logged-in account shared by the client services.
type Identity struct {
	mu     sync.RWMutex
	userID int64
	email  string
}

func (i *Identity) Set(userID int64, email string) {
	i.mu.Lock()
	i.userID, i.email = userID, email
	i.mu.Unlock()
}

func (i *Identity) Clear() {
	i.Set(0, "")
}

// UserID returns the current user or ErrNotAuthenticated.
func (i *Identity) UserID() (int64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if i.userID <= 0 {
		return 0, ErrNotAuthenticated
	}
	return i.userID, nil
}

func (i *Identity) Email() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.email
}
