package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// MenuType distinguishes directories, navigable menus and buttons.
type MenuType int

const (
	MenuDirectory MenuType = 0
	MenuPage      MenuType = 1
	MenuButton    MenuType = 2
)

// Menu is one menu record. Permission holds the token guarding it, if any.
type Menu struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Path       *string    `json:"path,omitempty"`
	Component  *string    `json:"component,omitempty"`
	Redirect   *string    `json:"redirect,omitempty"`
	ParentID   int64      `json:"parent_id"`
	Type       MenuType   `json:"type"`
	Permission *string    `json:"permission,omitempty"`
	Icon       *string    `json:"icon,omitempty"`
	Sort       int        `json:"sort"`
	Status     bool       `json:"status"`
	IsVisible  bool       `json:"isVisible"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// MenuNode is a Menu with its enabled children, as returned by /menu/all.
type MenuNode struct {
	Menu
	Children []MenuNode `json:"children,omitempty"`
}

// MenuPayload is the body of menu create and update.
type MenuPayload struct {
	Name       string   `json:"name"`
	Path       *string  `json:"path,omitempty"`
	Component  *string  `json:"component,omitempty"`
	Redirect   *string  `json:"redirect,omitempty"`
	ParentID   int64    `json:"parent_id"`
	Type       MenuType `json:"type"`
	Permission *string  `json:"permission,omitempty"`
	Icon       *string  `json:"icon,omitempty"`
	Sort       int      `json:"sort"`
	Status     bool     `json:"status"`
	IsVisible  bool     `json:"isVisible"`
}

// MenuFilter narrows the menu list. Zero fields are not sent.
type MenuFilter struct {
	Name   string
	Status *bool
	Type   *MenuType
}

func (f MenuFilter) Values() url.Values {
	v := url.Values{}
	if f.Name != "" {
		v.Set("name", f.Name)
	}
	if f.Status != nil {
		v.Set("status", strconv.FormatBool(*f.Status))
	}
	if f.Type != nil {
		v.Set("type", strconv.Itoa(int(*f.Type)))
	}
	return v
}

// MenuAPI wraps /menu/all and the /system/menu endpoints.
type MenuAPI struct {
	r Requester
}

// All issues GET /menu/all.
func (a *MenuAPI) All(ctx context.Context) ([]MenuNode, error) {
	var out []MenuNode
	err := a.r.Do(ctx, &Request{Method: http.MethodGet, Path: "/menu/all"}, &out)
	return out, err
}

// List issues GET /system/menu/list.
func (a *MenuAPI) List(ctx context.Context, filter MenuFilter) ([]Menu, error) {
	var out []Menu
	err := a.r.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   "/system/menu/list",
		Query:  query(filter.Values()),
	}, &out)
	return out, err
}

// Create issues POST /system/menu.
func (a *MenuAPI) Create(ctx context.Context, payload MenuPayload) (*Menu, error) {
	var out Menu
	if err := a.r.Do(ctx, &Request{Method: http.MethodPost, Path: "/system/menu", Body: payload}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update issues PUT /system/menu/{id}.
func (a *MenuAPI) Update(ctx context.Context, id int64, payload MenuPayload) (*Menu, error) {
	var out Menu
	err := a.r.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   "/system/menu/" + strconv.FormatInt(id, 10),
		Body:   payload,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete issues DELETE /system/menu with {"ids": [...]}.
func (a *MenuAPI) Delete(ctx context.Context, ids []int64) error {
	return a.r.Do(ctx, &Request{Method: http.MethodDelete, Path: "/system/menu", Body: idList(ids)}, nil)
}
