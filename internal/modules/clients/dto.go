package clients

type RegisterClientRequest struct {
	RUT      string `json:"rut" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Birthday string `json:"birthday" binding:"required"` // YYYY-MM-DD
}
