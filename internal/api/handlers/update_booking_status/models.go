package update_booking_status

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status            string  `json:"statut"`
	ProfessionalNotes *string `json:"notes_professionnel,omitempty"`
}
