// Package content holds the read-only records supplied by the content source:
// editorials with their vocabulary and quizzes, calendar events and gamification data.
package content

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Category string

const (
	CategoryPolitics      Category = "politics"
	CategoryEconomy       Category = "economy"
	CategoryEnvironment   Category = "environment"
	CategorySocial        Category = "social"
	CategoryInternational Category = "international"
)

type EventType string

const (
	EventTypeEditorial EventType = "editorial"
	EventTypeQuiz      EventType = "quiz"
	EventTypeDeadline  EventType = "deadline"
	EventTypeExam      EventType = "exam"
)

type EventStatus string

const (
	EventStatusCompleted EventStatus = "completed"
	EventStatusAttempted EventStatus = "attempted"
	EventStatusMissed    EventStatus = "missed"
	EventStatusUpcoming  EventStatus = "upcoming"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Question is a multiple choice item. CorrectAnswer indexes Options.
type Question struct {
	ID            string   `yaml:"id" validate:"required"`
	Prompt        string   `yaml:"question" validate:"required"`
	Options       []string `yaml:"options" validate:"min=2,dive,required"`
	CorrectAnswer int      `yaml:"correct_answer" validate:"gte=0"`
	Explanation   string   `yaml:"explanation,omitempty"`
}

// ItemID returns the question ID.
func (q Question) ItemID() string {
	return q.ID
}

// OptionCount returns the number of options offered for the question.
func (q Question) OptionCount() int {
	return len(q.Options)
}

// VocabularyWord is a vocabulary card attached to an editorial.
type VocabularyWord struct {
	ID               string     `yaml:"id" validate:"required"`
	Word             string     `yaml:"word" validate:"required"`
	Meaning          string     `yaml:"meaning" validate:"required"`
	SecondaryMeaning string     `yaml:"secondary_meaning,omitempty"`
	Pronunciation    string     `yaml:"pronunciation,omitempty"`
	Example          string     `yaml:"example,omitempty"`
	Difficulty       Difficulty `yaml:"difficulty" validate:"oneof=easy medium hard"`
	Category         string     `yaml:"category,omitempty"`
}

// ItemID returns the word ID.
func (w VocabularyWord) ItemID() string {
	return w.ID
}

type Quiz struct {
	ID          string     `yaml:"id" validate:"required"`
	EditorialID string     `yaml:"editorial_id"`
	Questions   []Question `yaml:"questions" validate:"dive"`
}

type Editorial struct {
	ID         string           `yaml:"id" validate:"required"`
	Title      string           `yaml:"title" validate:"required"`
	Date       Date             `yaml:"date"`
	Content    string           `yaml:"content" validate:"required"`
	Summary    string           `yaml:"summary,omitempty"`
	Category   Category         `yaml:"category" validate:"oneof=politics economy environment social international"`
	ReadTime   int              `yaml:"read_time" validate:"gte=0"`
	Vocabulary []VocabularyWord `yaml:"vocabulary" validate:"dive"`
	Quiz       Quiz             `yaml:"quiz"`
	Completed  bool             `yaml:"completed,omitempty"`
	Score      *int             `yaml:"score,omitempty"`
}

type CalendarEvent struct {
	ID     string      `yaml:"id" validate:"required"`
	Date   Date        `yaml:"date"`
	Type   EventType   `yaml:"type" validate:"oneof=editorial quiz deadline exam"`
	Title  string      `yaml:"title" validate:"required"`
	Status EventStatus `yaml:"status" validate:"oneof=completed attempted missed upcoming"`
	Score  *int        `yaml:"score,omitempty"`
}

type StudyStreak struct {
	Current       int  `yaml:"current_streak" validate:"gte=0"`
	Longest       int  `yaml:"longest_streak" validate:"gte=0"`
	LastStudyDate Date `yaml:"last_study_date"`
}

type Badge struct {
	ID          string `yaml:"id" validate:"required"`
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description,omitempty"`
	Icon        string `yaml:"icon,omitempty"`
	Rarity      Rarity `yaml:"rarity" validate:"oneof=common rare epic legendary"`
	UnlockedAt  *Date  `yaml:"unlocked_at,omitempty"`
}

type LeaderboardEntry struct {
	ID           string  `yaml:"id" validate:"required"`
	Name         string  `yaml:"name" validate:"required"`
	TotalPoints  int     `yaml:"total_points" validate:"gte=0"`
	Rank         int     `yaml:"rank" validate:"gte=0"`
	WeeklyPoints int     `yaml:"weekly_points" validate:"gte=0"`
	Streak       int     `yaml:"streak" validate:"gte=0"`
	Level        int     `yaml:"level" validate:"gte=0"`
	Badges       []Badge `yaml:"badges,omitempty" validate:"dive"`
}

type Achievement struct {
	ID          string `yaml:"id" validate:"required"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description,omitempty"`
	Points      int    `yaml:"points" validate:"gte=0"`
	Badge       *Badge `yaml:"badge,omitempty"`
	Progress    int    `yaml:"progress" validate:"gte=0"`
	Target      int    `yaml:"target" validate:"gt=0"`
	Completed   bool   `yaml:"completed"`
}

// Dataset is everything a content source provides.
type Dataset struct {
	Editorials     []Editorial     `validate:"dive"`
	CalendarEvents []CalendarEvent `validate:"dive"`
	StudyStreak    StudyStreak
	Leaderboard    []LeaderboardEntry `validate:"dive"`
	Achievements   []Achievement      `validate:"dive"`
	Moderation     []ModerationReport `validate:"dive"`
}
