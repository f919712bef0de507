package handler

import (
	"context"

	"festadmin/internal/list"
	"festadmin/internal/model"
	"festadmin/internal/upstream"
)

// Controllers groups the one-per-entity list controllers shared by the
// HTML pages and the JSON API.
type Controllers struct {
	Volunteers *list.Controller[model.Volunteer]
	Masters    *list.Controller[model.Master]
	Tickets    *list.Controller[model.Ticket]
}

// NewControllers wires each controller to its upstream list call. The flat
// endpoints report len(items) as the total; tickets use the server count.
func NewControllers(client *upstream.Client, locale func() string) *Controllers {
	return &Controllers{
		Volunteers: list.NewController(func(ctx context.Context, q upstream.Query) ([]model.Volunteer, int, error) {
			items, err := client.ListVolunteers(ctx, q)
			return items, len(items), err
		}, locale),
		Masters: list.NewController(func(ctx context.Context, q upstream.Query) ([]model.Master, int, error) {
			items, err := client.ListMasters(ctx, q)
			return items, len(items), err
		}, locale),
		Tickets: list.NewController(func(ctx context.Context, q upstream.Query) ([]model.Ticket, int, error) {
			page, err := client.ListTickets(ctx, q)
			if err != nil {
				return nil, 0, err
			}
			return page.Items, page.Count, nil
		}, locale),
	}
}
