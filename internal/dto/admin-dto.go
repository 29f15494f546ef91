package dto

type Admin struct {
	AdminID       uint64    `json:"adminId"`
	Name          string    `json:"name"`
	ContactNumber *string   `json:"contactNumber"`
	Username      string    `json:"username"`
	Type          AdminType `json:"type"`
	IsActive      bool      `json:"isActive"`
}

// SUPERADMIN создаёт только обычных админов.
type CreateAdminDTO struct {
	Name          string    `json:"name" validate:"required,max=100"`
	ContactNumber string    `json:"contactNumber,omitempty" validate:"omitempty,max=30"`
	Username      string    `json:"username" validate:"required,min=3,max=50"`
	Password      string    `json:"password" validate:"required,min=6"`
	Type          AdminType `json:"type" validate:"required,eq=ADMIN"`
}
