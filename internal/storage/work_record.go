package storage

import "time"

type WorkRecord struct {
	ID                  int64      `json:"id"`
	WorkType            string     `json:"work_type"`
	InspectionDate      time.Time  `json:"inspection_date"`
	Findings            *string    `json:"findings"`
	DocumentNo          string     `json:"document_no"`
	InstallationFactory *string    `json:"installation_factory"`
	ChecklistJSON       string     `json:"checklist"`
	Equipment           *Equipment `json:"equipment"`
	User                *User      `json:"user"`
}

type Equipment struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Model    *string  `json:"model"`
	SerialNo *string  `json:"serial_no"`
	Location *string  `json:"location"`
	Company  *Company `json:"company"`
	Project  *Project `json:"project"`
}

type Company struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

type Project struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	Amount    *int64     `json:"amount"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}
