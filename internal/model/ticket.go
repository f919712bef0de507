package model

// Ticket types as issued by the upstream ticketing service.
const (
	TicketTypeGuest     = "G"
	TicketTypeMaster    = "M"
	TicketTypeVolunteer = "V"
	TicketTypeOrganizer = "O"
	TicketTypeFamily    = "S"
	TicketTypeFriends   = "F"
	TicketTypeReduced   = "L"
	TicketTypeCrew      = "C"
)

// Ticket is one issued event ticket.
type Ticket struct {
	ID         int    `json:"id"`
	TicketID   string `json:"ticket_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Comment    string `json:"comment"`
	TicketType string `json:"ticket_type"`
	Active     bool   `json:"active"`
	IsUsed     bool   `json:"is_used"`
	Language   string `json:"language"`
	SendEmail  bool   `json:"send_email"`
	SendTG     bool   `json:"send_tg"`

	CreatedAt string  `json:"created_at"`
	DeletedAt *string `json:"deleted_at"`
}

// Deleted reports whether the ticket is soft-deleted upstream.
func (t *Ticket) Deleted() bool { return t.DeletedAt != nil }

// CanDelete reports whether the delete action may be offered.
func (t *Ticket) CanDelete() bool { return !t.Deleted() }

// TicketList is the paginated envelope returned by the ticket list endpoint.
type TicketList struct {
	Items []Ticket `json:"items"`
	Count int      `json:"count"`
}
