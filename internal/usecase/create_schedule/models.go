package create_schedule

import (
	"time"

	"github.com/m04kA/FMS-BookingService/pkg/types"
)

// SlotInput модель слота в запросе на создание расписания
type SlotInput struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	EndTime   types.TimeString // Время окончания слота (например, "11:00")
	Capacity  int              // Максимальное число одновременных бронирований
}

// Request модель запроса на создание расписания
type Request struct {
	Name  string      // Название расписания
	Slots []SlotInput // Слоты расписания
}

// SlotResponse модель слота в ответе
type SlotResponse struct {
	ID        int64            // ID слота
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время окончания
	Capacity  int              // Вместимость
}

// Response модель ответа с созданным расписанием
type Response struct {
	ID        int64          // ID созданного расписания
	Name      string         // Название
	Slots     []SlotResponse // Слоты, отсортированные по времени начала
	CreatedAt time.Time      // Время создания
	UpdatedAt time.Time      // Время обновления
}
