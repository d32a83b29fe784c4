package depts_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/admin-console/internal/depts"
	"github.com/JaimeStill/admin-console/pkg/openapi"
	"github.com/JaimeStill/admin-console/pkg/routes"
)

type stubSystem struct {
	err     error
	deleted []int64
	updated int64
	filters depts.Filters
}

func (s *stubSystem) List(_ context.Context, f depts.Filters) ([]depts.Dept, error) {
	s.filters = f
	return []depts.Dept{{ID: 1, Name: "HQ"}}, s.err
}

func (s *stubSystem) Create(_ context.Context, cmd depts.Command) (*depts.Dept, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &depts.Dept{ID: 9, Name: cmd.Name, ParentID: cmd.ParentID}, nil
}

func (s *stubSystem) Update(_ context.Context, id int64, cmd depts.Command) (*depts.Dept, error) {
	s.updated = id
	if s.err != nil {
		return nil, s.err
	}
	return &depts.Dept{ID: id, Name: cmd.Name}, nil
}

func (s *stubSystem) Delete(_ context.Context, ids []int64) error {
	s.deleted = ids
	return s.err
}

func serve(sys depts.System) *http.ServeMux {
	mux := http.NewServeMux()
	h := depts.NewHandler(sys, discardLogger())
	routes.Register(mux, "/api", openapi.NewSpec("test", "0"), h.Routes())
	return mux
}

func do(mux http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	var env map[string]any
	json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		err        error
		wantStatus int
	}{
		{"list", "GET", "/system/dept/list?name=H", "", nil, http.StatusOK},
		{"create", "POST", "/system/dept", `{"name":"Ops","parent_id":1,"status":true}`, nil, http.StatusCreated},
		{"create missing name", "POST", "/system/dept", `{"parent_id":1}`, nil, http.StatusBadRequest},
		{"create bad email", "POST", "/system/dept", `{"name":"Ops","email":"nope"}`, nil, http.StatusBadRequest},
		{"create unknown field", "POST", "/system/dept", `{"name":"Ops","color":"red"}`, nil, http.StatusBadRequest},
		{"create duplicate", "POST", "/system/dept", `{"name":"HQ"}`, depts.ErrDuplicate, http.StatusConflict},
		{"update", "PUT", "/system/dept/4", `{"name":"Eng"}`, nil, http.StatusOK},
		{"update bad id", "PUT", "/system/dept/x", `{"name":"Eng"}`, nil, http.StatusBadRequest},
		{"update cycle", "PUT", "/system/dept/4", `{"name":"Eng","parent_id":4}`, depts.ErrInvalidParent, http.StatusBadRequest},
		{"update missing", "PUT", "/system/dept/4", `{"name":"Eng"}`, depts.ErrNotFound, http.StatusNotFound},
		{"delete", "DELETE", "/system/dept", `{"ids":[3,4]}`, nil, http.StatusOK},
		{"delete empty", "DELETE", "/system/dept", `{"ids":[]}`, nil, http.StatusBadRequest},
		{"delete with children", "DELETE", "/system/dept", `{"ids":[1]}`, depts.ErrHasChildren, http.StatusConflict},
		{"list failure", "GET", "/system/dept/list", "", fmt.Errorf("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := &stubSystem{err: tt.err}
			w, env := do(serve(sys), tt.method, tt.path, tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body)
			}
			wantCode := float64(0)
			if tt.wantStatus >= 400 {
				wantCode = float64(tt.wantStatus)
			}
			if env["code"] != wantCode {
				t.Errorf("envelope code = %v, want %v", env["code"], wantCode)
			}
		})
	}
}

func TestHandler_Arguments(t *testing.T) {
	sys := &stubSystem{}
	mux := serve(sys)

	do(mux, "GET", "/system/dept/list?name=eng&status=false", "")
	if sys.filters.Name == nil || *sys.filters.Name != "eng" || sys.filters.Status == nil || *sys.filters.Status {
		t.Errorf("filters = %+v", sys.filters)
	}

	do(mux, "PUT", "/system/dept/12", `{"name":"Eng"}`)
	if sys.updated != 12 {
		t.Errorf("updated id = %d", sys.updated)
	}

	do(mux, "DELETE", "/system/dept", `{"ids":[5,6]}`)
	if len(sys.deleted) != 2 || sys.deleted[0] != 5 || sys.deleted[1] != 6 {
		t.Errorf("deleted = %v", sys.deleted)
	}
}
