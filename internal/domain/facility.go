package domain

// FacilityRecord is a contact at a facility shown on the listing screen.
type FacilityRecord struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	JobTitle      string `json:"jobTitle"`
	Company       string `json:"company"`
	Location      string `json:"location"`
	Emails        bool   `json:"emails"`
	PhoneNumbers  bool   `json:"phoneNumbers"`
	Enriched      bool   `json:"enriched"`
	Verified      bool   `json:"verified"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	FacilityType  string `json:"facilityType"`
	EmployeeCount string `json:"employeeCount"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
