package identity

import "strings"

// Action is something a role may be allowed to do.
type Action string

const (
	ActionViewDashboard      Action = "dashboard:view"
	ActionReadEditorial      Action = "editorial:read"
	ActionTakeQuiz           Action = "quiz:take"
	ActionPracticeVocabulary Action = "vocabulary:practice"
	ActionViewCalendar       Action = "calendar:view"
	ActionViewLeaderboard    Action = "leaderboard:view"
	ActionViewAdminPanel     Action = "admin:view"
	ActionManageEditorials   Action = "admin:editorials"
	ActionManageUsers        Action = "admin:users"
	ActionModerateContent    Action = "admin:moderate"
	ActionViewAnalytics      Action = "admin:analytics"
)

// RoleCapabilities maps roles to the actions they may perform.
// A pattern ending in * grants every action with that prefix.
var RoleCapabilities = map[Role][]string{
	RoleStudent: {
		string(ActionViewDashboard),
		string(ActionReadEditorial),
		string(ActionTakeQuiz),
		string(ActionPracticeVocabulary),
		string(ActionViewCalendar),
		string(ActionViewLeaderboard),
	},
	RoleAdmin: {"*"},
}

// Can reports whether user may perform action. A nil user may do nothing.
func Can(user *User, action Action) bool {
	if user == nil {
		return false
	}
	for _, pattern := range RoleCapabilities[user.Role] {
		if matchAction(pattern, action) {
			return true
		}
	}
	return false
}

// Any reports whether user may perform at least one of actions.
func Any(user *User, actions ...Action) bool {
	for _, action := range actions {
		if Can(user, action) {
			return true
		}
	}
	return false
}

func matchAction(pattern string, action Action) bool {
	if pattern == "*" || pattern == string(action) {
		return true
	}
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(string(action), strings.TrimSuffix(pattern, "*"))
	}
	return false
}
