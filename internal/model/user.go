package model

// Role — роль учётной записи.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User — учётная запись. Создание и роли управляются вне этого сервиса.
type User struct {
	UserID      string `json:"userId"`
	CompanyName string `json:"companyName"`
	StoreName   string `json:"storeName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        Role   `json:"role,omitempty"`
}
