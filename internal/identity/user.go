// Package identity provides the signed-in learner and what their role may do.
package identity

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Email       string    `yaml:"email"`
	Role        Role      `yaml:"role"`
	JoinedAt    time.Time `yaml:"joined_at"`
	Streak      int       `yaml:"streak"`
	TotalPoints int       `yaml:"total_points"`
	Rank        int       `yaml:"rank"`
}

// Initials is the avatar text: the first letter of the first two words of the name.
func (u User) Initials() string {
	var initials []rune
	start := true
	for _, r := range u.Name {
		if r == ' ' {
			start = true
			continue
		}
		if start {
			initials = append(initials, r)
			start = false
			if len(initials) == 2 {
				break
			}
		}
	}
	return string(initials)
}
