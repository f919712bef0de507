package upstream

import (
	"context"
	"fmt"
	"net/http"

	"festadmin/internal/model"
)

// TicketPayload is the JSON body for ticket create/update.
type TicketPayload struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	Comment    string `json:"comment"`
	TicketType string `json:"ticket_type" validate:"required,oneof=G M V O S F L C"`
	Active     bool   `json:"active"`
	IsUsed     bool   `json:"is_used"`
	Language   string `json:"language" validate:"required,oneof=ru ro en"`
	SendEmail  bool   `json:"send_email"`
	SendTG     bool   `json:"send_tg"`
}

// ListTickets fetches a page of tickets. Unlike the other list endpoints
// this one is truly paginated: the envelope carries the total count.
func (c *Client) ListTickets(ctx context.Context, q Query) (*model.TicketList, error) {
	var page model.TicketList
	if err := c.getJSON(ctx, "/tickets/list", q.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateTicket issues a new ticket via POST /tickets/add.
func (c *Client) CreateTicket(ctx context.Context, payload TicketPayload) (*model.Ticket, error) {
	var t model.Ticket
	if err := c.sendJSON(ctx, http.MethodPost, "/tickets/add", payload, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTicket replaces a ticket's fields.
func (c *Client) UpdateTicket(ctx context.Context, id int, payload TicketPayload) (*model.Ticket, error) {
	var t model.Ticket
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/tickets/%d", id), payload, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTicket soft-deletes a ticket.
func (c *Client) DeleteTicket(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tickets/%d", id), nil, nil, "", nil)
}
