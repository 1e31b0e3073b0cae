package dto

type UpdateUserRequest struct {
	FullName           string `json:"full_name"`
	CurrentPassword    string `json:"current_password"`
	NewPassword        string `json:"new_password"`
	ConfirmNewPassword string `json:"confirm_new_password"`
}

type UserResponse struct {
	Response
	User Identity `json:"user"`
}
