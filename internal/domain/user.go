package domain

import "time"

// User представляет профиль студента
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Avatar       string    `json:"avatar,omitempty"`
	University   string    `json:"university"`
	Major        string    `json:"major"`
	Year         string    `json:"year"`
	Skills       []string  `json:"skills"`
	Experience   string    `json:"experience"`
	Projects     int       `json:"projects"`
	Rating       float64   `json:"rating"`
	Bio          string    `json:"bio"`
	Availability string    `json:"availability"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserUpdate описывает частичное обновление профиля.
// Нулевые указатели означают "поле не менять".
type UserUpdate struct {
	Name         *string  `json:"name,omitempty"`
	Avatar       *string  `json:"avatar,omitempty"`
	University   *string  `json:"university,omitempty"`
	Major        *string  `json:"major,omitempty"`
	Year         *string  `json:"year,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	Experience   *string  `json:"experience,omitempty"`
	Projects     *int     `json:"projects,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	Bio          *string  `json:"bio,omitempty"`
	Availability *string  `json:"availability,omitempty"`
}
