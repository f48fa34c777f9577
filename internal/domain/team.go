package domain

import "time"

// TeamLeader представляет денормализованный снимок данных лидера команды.
// Это не живая ссылка на профиль: снимок фиксируется при создании команды.
type TeamLeader struct {
	Name       string `json:"name"`
	Avatar     string `json:"avatar,omitempty"`
	University string `json:"university"`
	Major      string `json:"major"`
}

// Team представляет проектную команду
type Team struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Idea           string     `json:"idea"`
	Leader         TeamLeader `json:"leader"`
	LeaderID       string     `json:"leaderId,omitempty"`
	Members        int        `json:"members"`
	MaxMembers     int        `json:"maxMembers"`
	RequiredSkills []string   `json:"requiredSkills"`
	CurrentSkills  []string   `json:"currentSkills"`
	Category       string     `json:"category"`
	Stage          string     `json:"stage"`
	Commitment     string     `json:"commitment,omitempty"`
	Duration       string     `json:"duration,omitempty"`
	Featured       bool       `json:"featured,omitempty"`
	Tags           []string   `json:"tags"`
	MemberIDs      []string   `json:"memberIds"`
	MemberNames    []string   `json:"memberNames"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// IsFull возвращает true если достигнут лимит участников команды
func (t *Team) IsFull() bool {
	return t.Members >= t.MaxMembers
}

// HasMember проверяет, состоит ли пользователь в команде (участник или лидер)
func (t *Team) HasMember(userID string) bool {
	if t.LeaderID != "" && t.LeaderID == userID {
		return true
	}
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
