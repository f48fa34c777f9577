package domain

// TeamRecommendation связывает команду с оценкой модели и обоснованием
type TeamRecommendation struct {
	Team      *Team   `json:"team"`
	Score     float64 `json:"score"`
	Reasoning string  `json:"reasoning"`
}

// TeammateMatch связывает пользователя с оценкой совместимости.
// Результат живет только в рамках одного запроса и никогда не сохраняется.
type TeammateMatch struct {
	User            *User    `json:"user"`
	MatchScore      float64  `json:"matchScore"`
	CommonInterests []string `json:"commonInterests"`
	Reasoning       string   `json:"reasoning"`
}

// MatchResult представляет полный ответ AI-анализа идеи проекта
type MatchResult struct {
	ProjectAnalysis    string               `json:"projectAnalysis"`
	RecommendedTeams   []TeamRecommendation `json:"recommendedTeams"`
	SuggestedTeammates []TeammateMatch      `json:"suggestedTeammates"`
}
