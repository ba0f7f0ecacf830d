package models

// RegisterRequest is the body of POST /api/users.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest is the body of PATCH /api/users/current.
// Both fields are optional; nil means "leave unchanged".
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// ContactRequest is the body of contact create and update.
// Update is a full overwrite: absent optional fields become empty.
type ContactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// AddressRequest is the body of address create and update.
type AddressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}
