package domain

// Trainee é um estagiário cadastrado em um mês
type Trainee struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Active            bool   `json:"active"`
	MonthlyScheduleID int    `json:"monthly_schedule_id"`
	CreatedAt         string `json:"created_at"`
}

// TraineeInput é o corpo de criação e atualização de estagiário
type TraineeInput struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// TraineeAvailability é a disponibilidade de um estagiário em um turno
type TraineeAvailability struct {
	ID                int     `json:"id"`
	TraineeID         int     `json:"trainee_id"`
	MonthlyScheduleID int     `json:"monthly_schedule_id"`
	Date              string  `json:"date"`
	Shift             Shift   `json:"shift"`
	Available         bool    `json:"available"`
	Reason            *string `json:"reason,omitempty"`
}

// AvailabilityInput é um item do envio em lote de disponibilidade
type AvailabilityInput struct {
	Date      string  `json:"date"`
	Shift     Shift   `json:"shift"`
	Available bool    `json:"available"`
	Reason    *string `json:"reason,omitempty"`
}
