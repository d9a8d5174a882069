// Package domain contém as estruturas de dados trocadas com a API de escalas
package domain

// Shift é o turno de um dia de escala
type Shift string

const (
	ShiftManha    Shift = "manha"
	ShiftTarde    Shift = "tarde"
	ShiftPernoite Shift = "pernoite"
)

// Shifts lista os turnos na ordem em que aparecem no dia
var Shifts = []Shift{ShiftManha, ShiftTarde, ShiftPernoite}

// Label retorna o nome do turno para exibição
func (s Shift) Label() string {
	switch s {
	case ShiftManha:
		return "Manhã"
	case ShiftTarde:
		return "Tarde"
	case ShiftPernoite:
		return "Pernoite"
	default:
		return string(s)
	}
}

// IsValid indica se o turno é conhecido pela API
func (s Shift) IsValid() bool {
	for _, known := range Shifts {
		if s == known {
			return true
		}
	}
	return false
}

// MonthlySchedule é o contexto de escala de um mês
type MonthlySchedule struct {
	ID        int    `json:"id"`
	Month     string `json:"month"` // Formato YYYY-MM
	CreatedAt string `json:"created_at"`
}

// TraineeAssignment é a alocação de um estagiário em um turno
type TraineeAssignment struct {
	ID                int      `json:"id"`
	TraineeID         int      `json:"trainee_id"`
	MonthlyScheduleID int      `json:"monthly_schedule_id"`
	Date              string   `json:"date"` // Formato YYYY-MM-DD
	Shift             Shift    `json:"shift"`
	Trainee           *Trainee `json:"trainee,omitempty"`
}

// InstructorCapacity é o total de instrutores disponíveis em um turno
type InstructorCapacity struct {
	ID                int    `json:"id"`
	MonthlyScheduleID int    `json:"monthly_schedule_id"`
	Date              string `json:"date"`
	Shift             Shift  `json:"shift"`
	TotalInstructors  int    `json:"total_instructors"`
}

// ShiftDefinition é a definição de turno usada na agregação da capacidade
type ShiftDefinition struct {
	ID               int    `json:"id"`
	Simbolo          string `json:"simbolo"`
	Nome             string `json:"nome"`
	Inicio           string `json:"inicio"`
	Fim              string `json:"fim"`
	Etapa            int    `json:"etapa"`
	Complementar     int    `json:"complementar"`
	TurnoPrincipalID *int   `json:"turno_pricipal_id"`
	TurnoNoturno     int    `json:"turno_noturno"`
	Duracao          int    `json:"duracao"`
}

// ShiftTotal é o total de instrutores de um turno em um dia
type ShiftTotal struct {
	Turno int `json:"turno"`
	Total int `json:"total"`
}

// DailyAvailability é uma linha do arquivo de capacidade de instrutores
type DailyAvailability struct {
	Data      string       `json:"data"` // Formato YYYY-MM-DD
	SomaTotal []ShiftTotal `json:"soma_total"`
}
