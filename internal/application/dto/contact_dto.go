package dto

// CreateContactRequest entrada del formulario de nuevo contacto.
type CreateContactRequest struct {
	Title      string `form:"title"`
	FirstName  string `form:"firstname"`
	LastName   string `form:"lastname"`
	Email      string `form:"email"`
	Telephone  string `form:"telephone"`
	Company    string `form:"company"`
	Type       string `form:"type"`
	AssignedTo string `form:"assigned_to"` // id del usuario; viene como string del form
}

// ContactActionRequest entrada de POST /contact-actions (form-encoded).
type ContactActionRequest struct {
	Action    string `form:"action"`
	ContactID string `form:"contact_id"`
	NewType   string `form:"new_type"`
}

// AddNoteRequest entrada de POST /notes (form-encoded).
type AddNoteRequest struct {
	ContactID string `form:"contact_id"`
	Comment   string `form:"comment"`
}

// ContactRowView fila del listado del dashboard, lista para renderizar.
type ContactRowView struct {
	ID          int64
	DisplayName string // title + firstname + lastname, sin espacios sobrantes
	Email       string
	Company     string
	Type        string
	Assignee    string // nombre del asignado o "Unassigned"
	Unassigned  bool
}

// NoteView nota renderizable con autor y fecha formateada.
type NoteView struct {
	Comment   string
	CreatedAt string
	Author    string
}

// ContactDetailView vista de detalle de un contacto.
type ContactDetailView struct {
	ID           int64
	DisplayName  string
	Email        string
	Telephone    string
	Company      string
	Type         string
	Assignee     string // nombre o "Unassigned"
	CreatorName  string
	CreatedAt    string
	UpdatedAt    string
	ToggleLabel  string // etiqueta del botón de cambio de tipo
	ToggleTarget string // tipo destino del botón
	Notes        []NoteView
}

// AssignResponse respuesta JSON de action=assign.
type AssignResponse struct {
	Success    bool   `json:"success"`
	UpdatedAt  string `json:"updated_at"`
	AssignedTo string `json:"assigned_to"`
}

// ToggleTypeResponse respuesta JSON de action=toggle_type, con la precomputación
// del siguiente toggle para que el cliente actualice el botón sin recargar.
type ToggleTypeResponse struct {
	Success     bool   `json:"success"`
	Type        string `json:"type"`
	UpdatedAt   string `json:"updated_at"`
	NextLabel   string `json:"next_label"`
	NextNewType string `json:"next_newType"`
}

// AddNoteResponse respuesta JSON de POST /notes.
type AddNoteResponse struct {
	Success   bool   `json:"success"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
	UserName  string `json:"user_name"`
}
