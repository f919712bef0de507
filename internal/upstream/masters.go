package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"festadmin/internal/apierr"
	"festadmin/internal/model"
)

// File is one attachment forwarded to the upstream on master create/update.
type File struct {
	Name    string
	Content io.Reader
}

// ListMasters fetches a page of master applications (flat array).
func (c *Client) ListMasters(ctx context.Context, q Query) ([]model.Master, error) {
	var items []model.Master
	if err := c.getJSON(ctx, "/masters/list", q.Values(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetMaster fetches one master by id.
func (c *Client) GetMaster(ctx context.Context, id int) (*model.Master, error) {
	var m model.Master
	if err := c.getJSON(ctx, fmt.Sprintf("/masters/%d", id), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateMaster submits a new master as multipart form data.
func (c *Client) CreateMaster(ctx context.Context, fields url.Values, files []File) (*model.Master, error) {
	var m model.Master
	if err := c.sendMultipart(ctx, http.MethodPost, "/masters/create", fields, files, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMaster replaces a master's fields, multipart like create.
func (c *Client) UpdateMaster(ctx context.Context, id int, fields url.Values, files []File) (*model.Master, error) {
	var m model.Master
	if err := c.sendMultipart(ctx, http.MethodPut, fmt.Sprintf("/masters/%d", id), fields, files, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteMaster soft-deletes a master. The row keeps coming back in lists
// with deleted_at set; the client never assumes hard removal.
func (c *Client) DeleteMaster(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/masters/%d", id), nil, nil, "", nil)
}

// sendMultipart encodes fields and files as multipart/form-data. The body is
// buffered; attachments on this form are small enough that streaming is not
// worth the plumbing.
func (c *Client) sendMultipart(ctx context.Context, method, path string, fields url.Values, files []File, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, vals := range fields {
		for _, val := range vals {
			if err := w.WriteField(key, val); err != nil {
				return apierr.Transport(err)
			}
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile("files", f.Name)
		if err != nil {
			return apierr.Transport(err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return apierr.Transport(err)
		}
	}
	if err := w.Close(); err != nil {
		return apierr.Transport(err)
	}
	return c.do(ctx, method, path, nil, &buf, w.FormDataContentType(), out)
}
