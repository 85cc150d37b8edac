package entity

import (
	"strings"
	"time"
)

// Tipos válidos para Contact.
const (
	TypeSalesLead = "Sales Lead"
	TypeSupport   = "Support"
)

// ValidContactType indica si t es uno de los dos valores permitidos.
func ValidContactType(t string) bool {
	return t == TypeSalesLead || t == TypeSupport
}

// Contact representa un registro CRM: lead de ventas o caso de soporte.
type Contact struct {
	ID         int64
	Title      string
	FirstName  string
	LastName   string
	Email      string
	Telephone  string
	Company    string
	Type       string // Sales Lead, Support
	AssignedTo *int64 // nil = sin asignar
	CreatedBy  int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DisplayName nombre completo con título, sin espacios sobrantes cuando falta el título.
func (c *Contact) DisplayName() string {
	return strings.TrimSpace(c.Title + " " + c.FirstName + " " + c.LastName)
}

// NextToggle devuelve la etiqueta y el tipo destino del botón de cambio de tipo
// según el tipo actual: Sales Lead ofrece pasar a Support; cualquier otro valor
// ofrece pasar a Sales Lead.
func NextToggle(currentType string) (label, target string) {
	if currentType == TypeSalesLead {
		return "Switch to Support", TypeSupport
	}
	return "Switch to Sales Lead", TypeSalesLead
}
