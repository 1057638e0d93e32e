package api

import (
	"context"
	"errors"
	"testing"

	"github.com/PSchristopher/phoenix-admin/client/internal/types"
)

func TestListUsers_Path(t *testing.T) {
	t.Parallel()
	r := &stubRequester{body: `{"success":true,"data":[{"id":"u1","first_name":"Ana","last_name":"Lee","email":"ana@example.com"}],"pagination":{"page":1,"perPage":10,"total":1,"totalPages":1}}`}
	page, err := ListUsers(context.Background(), r, types.UserFilter{Search: "ana", Status: "active", Page: 1, PerPage: 10})
	if err != nil || len(page.Data) != 1 || page.Data[0].Email != "ana@example.com" {
		t.Fatalf("ListUsers: page=%+v err=%v", page, err)
	}
	if p := r.last().path; p != "/user?page=1&perPage=10&search=ana&status=active" {
		t.Fatalf("unexpected path %s", p)
	}
}

func TestGetCustomer(t *testing.T) {
	t.Parallel()
	r := &stubRequester{body: `{"id":"c1","name":"Ana Lee","primaryPhone":"+91 99999"}`}
	c, err := GetCustomer(context.Background(), r, "c1")
	if err != nil || c.Name != "Ana Lee" || c.PrimaryPhone != "+91 99999" {
		t.Fatalf("GetCustomer: c=%+v err=%v", c, err)
	}
	if p := r.last().path; p != "/admin/customer/c1" {
		t.Fatalf("unexpected path %s", p)
	}
}

func TestBulkUsers(t *testing.T) {
	t.Parallel()
	r := &stubRequester{body: `{"success":true}`}
	if err := BulkDeleteUsers(context.Background(), r, []string{"u1"}); err != nil {
		t.Fatalf("bulk delete: %v", err)
	}
	if c := r.last(); c.method != "DELETE" || c.path != "/admin/users/bulk" || bodyJSON(c.body) != `{"userIds":["u1"]}` {
		t.Fatalf("bulk delete call: %+v", c)
	}
	if err := BulkUpdateUserStatus(context.Background(), r, []string{"u1", "u2"}, types.UserInactive); err != nil {
		t.Fatalf("bulk status: %v", err)
	}
	if c := r.last(); c.method != "PUT" || bodyJSON(c.body) != `{"userIds":["u1","u2"],"status":"inactive"}` {
		t.Fatalf("bulk status call: %+v", c)
	}
	if err := BulkUpdateUserStatus(context.Background(), r, []string{"u1"}, "banned"); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()
	top := &stubRequester{body: `{"token":"abc123","admin":{"id":"a1","email":"ops@example.com"}}`}
	out, err := Login(context.Background(), top, types.LoginRequest{Email: "ops@example.com", Password: "pw"})
	if err != nil || out.Token != "abc123" || out.Admin == nil || out.Admin.ID != "a1" {
		t.Fatalf("top-level token: out=%+v err=%v", out, err)
	}
	if c := top.last(); c.surface != "public" || c.method != "POST" || c.path != "/admin/login" {
		t.Fatalf("login must use the public surface: %+v", c)
	}

	nested := &stubRequester{body: `{"success":true,"data":{"token":"xyz"}}`}
	out, err = Login(context.Background(), nested, types.LoginRequest{Email: "ops@example.com", Password: "pw"})
	if err != nil || out.Token != "xyz" {
		t.Fatalf("nested token: out=%+v err=%v", out, err)
	}

	none := &stubRequester{body: `{"success":true}`}
	if _, err := Login(context.Background(), none, types.LoginRequest{Email: "ops@example.com", Password: "pw"}); !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}

	if _, err := Login(context.Background(), none, types.LoginRequest{Email: "ops@example.com"}); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
