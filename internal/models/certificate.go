package models

// Certificate is computed on demand from the attendance ledger; it is never
// stored.
type Certificate struct {
	User       CertificateUser `json:"user"`
	Talks      []AttendedTalk  `json:"talks"`
	TotalHours float64         `json:"total_hours"`
	IssuedAt   string          `json:"issued_at"`
	Message    string          `json:"message"`
}

type CertificateUser struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	CPF        *string `json:"cpf,omitempty"`
	Enrollment *string `json:"enrollment,omitempty"`
}

type AttendedTalk struct {
	Title     string `json:"title"`
	Location  string `json:"location"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Speaker   string `json:"speaker"`
}
