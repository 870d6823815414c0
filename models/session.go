package models

import "time"

// LocalSession is the authenticated session cached by the client between
// runs. It never contains the vault passcode.
type LocalSession struct {
	UserID  int64
	Email   string
	Token   string
	SavedAt time.Time
}
