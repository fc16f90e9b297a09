package service

import "time"

// Clock abstracts the current time.
type Clock interface {
	Now() time.Time
}
