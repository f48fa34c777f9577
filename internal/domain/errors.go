package domain

import "errors"

// Доменные ошибки сервиса
var (
	// ErrEventFull возвращается при попытке записаться на заполненное мероприятие
	ErrEventFull = errors.New("event is full")

	// ErrTeamFull возвращается при попытке вступить в заполненную команду
	ErrTeamFull = errors.New("team is full")

	// ErrAlreadyJoined возвращается при повторной попытке вступления
	ErrAlreadyJoined = errors.New("already joined")

	// ErrEmptyIdea возвращается когда описание идеи пустое
	ErrEmptyIdea = errors.New("idea description is empty")

	// ErrNotFound возвращается когда ресурс не найден
	ErrNotFound = errors.New("resource not found")

	// ErrEventNotFound возвращается когда мероприятие не найдено
	ErrEventNotFound = errors.New("event not found")

	// ErrTeamNotFound возвращается когда команда не найдена
	ErrTeamNotFound = errors.New("team not found")

	// ErrUserNotFound возвращается когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrUnauthorized возвращается при неудачной аутентификации
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken возвращается когда JWT токен невалиден
	ErrInvalidToken = errors.New("invalid token")
)

// ErrorCode представляет стабильные коды ошибок API
type ErrorCode string

// Коды ошибок API
const (
	CodeEventFull     ErrorCode = "EVENT_FULL"     // Мероприятие заполнено
	CodeTeamFull      ErrorCode = "TEAM_FULL"      // Команда заполнена
	CodeAlreadyJoined ErrorCode = "ALREADY_JOINED" // Пользователь уже участник
	CodeEmptyIdea     ErrorCode = "EMPTY_IDEA"     // Пустое описание идеи
	CodeNotFound      ErrorCode = "NOT_FOUND"      // Ресурс не найден
)

// MapErrorToCode преобразует доменные ошибки в коды ошибок API
func MapErrorToCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrEventFull):
		return CodeEventFull
	case errors.Is(err, ErrTeamFull):
		return CodeTeamFull
	case errors.Is(err, ErrAlreadyJoined):
		return CodeAlreadyJoined
	case errors.Is(err, ErrEmptyIdea):
		return CodeEmptyIdea
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrEventNotFound),
		errors.Is(err, ErrTeamNotFound), errors.Is(err, ErrUserNotFound):
		return CodeNotFound
	default:
		return CodeNotFound
	}
}
