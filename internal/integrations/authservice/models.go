package authservice

// ModeratorCheck ответ AuthService на проверку прав модератора
type ModeratorCheck struct {
	UserID      int64 `json:"user_id"`
	FacilityID  int64 `json:"facility_id"`
	IsModerator bool  `json:"is_moderator"`
}

// ErrorResponse модель ошибки от AuthService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
