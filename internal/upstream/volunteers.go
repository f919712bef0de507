package upstream

import (
	"context"

	"festadmin/internal/model"
)

// ListVolunteers fetches a page of volunteer applications. The endpoint
// returns a flat array; pagination over it is a client concern.
func (c *Client) ListVolunteers(ctx context.Context, q Query) ([]model.Volunteer, error) {
	var items []model.Volunteer
	if err := c.getJSON(ctx, "/volunteers/list", q.Values(), &items); err != nil {
		return nil, err
	}
	return items, nil
}
