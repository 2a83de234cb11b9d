package appointment

import "time"

const DefaultMessage = "No message provided."

// Appointment is a submitted consultation request.
type Appointment struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type Request struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Email   string `form:"email" json:"email" binding:"required"`
	Phone   string `form:"phone" json:"phone" binding:"required"`
	Date    string `form:"date" json:"date" binding:"required"`
	Message string `form:"message" json:"message"`
}
