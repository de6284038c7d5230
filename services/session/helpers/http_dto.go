package helpers

// Request/Response DTOs
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email   string `json:"email" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Role    string `json:"role"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	BankAccount *string `json:"bank_account"`
	Language    *string `json:"language"`
}

type LanguageRequest struct {
	Code string `json:"code" binding:"required"`
}

type UserResponse struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	JoinedAt string `json:"joined_at"`
}
