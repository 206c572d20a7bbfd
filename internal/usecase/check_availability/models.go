package check_availability

import (
	"time"

	"github.com/m04kA/FMS-BookingService/pkg/types"
)

// Request модель запроса на проверку доступности слотов
type Request struct {
	FacilityID int64     // ID объекта
	Date       time.Time // Дата, на которую проверяется доступность
	SlotID     *int64    // Опциональный фильтр по конкретному слоту
}

// AvailableSlot модель доступности одного слота на дату
type AvailableSlot struct {
	SlotID            int64            // ID слота
	StartTime         types.TimeString // Время начала
	EndTime           types.TimeString // Время окончания
	Capacity          int              // Вместимость слота
	CapacityRemaining int              // Остаток вместимости на дату
	Available         bool             // Остались ли свободные места
}

// Response модель ответа с доступностью слотов объекта на дату
type Response struct {
	FacilityID int64           // ID объекта
	Date       time.Time       // Дата
	Slots      []AvailableSlot // Слоты в порядке времени начала
}
