package domain

// MessageResponse é a resposta simples das operações de importação e geração
type MessageResponse struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

// TraineeListImport é o resultado da importação de nomes de estagiários
type TraineeListImport struct {
	Status        string   `json:"status"`
	Imported      int      `json:"imported"`
	ImportedNames []string `json:"imported_names"`
	Errors        []string `json:"errors"`
}

// TraineeTextImport é o resultado da importação do texto de indisponibilidades
type TraineeTextImport struct {
	Status           string   `json:"status"`
	ImportedEntries  int      `json:"imported_entries"`
	TraineesAffected []string `json:"trainees_affected"`
}
