package request_booking

import (
	"time"

	"github.com/m04kA/FMS-BookingService/pkg/types"
)

// Request модель запроса на бронирование слота
type Request struct {
	UserID      int64     // ID пользователя-заявителя
	FacilityID  int64     // ID объекта
	SlotID      int64     // ID слота в расписании объекта
	Date        time.Time // Дата бронирования (без времени)
	Description *string   // Назначение бронирования (опционально)
}

// Response модель ответа с созданной заявкой на бронирование
type Response struct {
	ID          int64            // ID созданного бронирования
	UserID      int64            // ID пользователя
	FacilityID  int64            // ID объекта
	ScheduleID  int64            // ID расписания на момент бронирования
	SlotID      int64            // ID слота
	BookingDate time.Time        // Дата бронирования
	StartTime   types.TimeString // Время начала слота
	EndTime     types.TimeString // Время окончания слота
	Status      string           // Статус (всегда pending при создании)
	Description *string          // Назначение
	CreatedAt   time.Time        // Время создания
	UpdatedAt   time.Time        // Время обновления
}
