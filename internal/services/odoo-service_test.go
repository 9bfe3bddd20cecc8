package services

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"odooclient/entity"
	"odooclient/internal/config"

	"golang.org/x/time/rate"
)

func init() {
	// Keep tests fast regardless of the default limiter settings.
	SetLimiter(rate.NewLimiter(rate.Inf, 0))
}

type fakeOdoo struct {
	t        *testing.T
	authUID  interface{} // float64 uid or false
	handlers map[string]func(req entity.RpcRequest) (interface{}, *entity.RpcError)
	calls    []string
}

func (f *fakeOdoo) server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jsonrpc" {
			f.t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}

		body, _ := io.ReadAll(r.Body)
		var req entity.RpcRequest
		if err := json.Unmarshal(body, &req); err != nil {
			f.t.Fatalf("bad request body: %v", err)
		}

		key := req.Params.Service + "." + req.Params.Method
		f.calls = append(f.calls, key)

		var result interface{}
		var rpcErr *entity.RpcError

		switch key {
		case "common.authenticate":
			result = f.authUID
		default:
			handler, ok := f.handlers[key]
			if !ok {
				f.t.Fatalf("unexpected rpc call %s", key)
			}
			result, rpcErr = handler(req)
		}

		resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func newTestService(t *testing.T, fake *fakeOdoo) (*OdooService, *httptest.Server) {
	t.Helper()
	srv := fake.server()
	t.Cleanup(srv.Close)

	conf := &config.Config{}
	conf.Odoo.Url = srv.URL
	conf.Odoo.Db = "testdb"
	conf.Odoo.Username = "tester"
	conf.Odoo.Password = "secret"
	conf.Odoo.Timeout = 5

	client, err := NewJsonRpcClient(conf, slog.Default())
	if err != nil {
		t.Fatalf("NewJsonRpcClient() error = %v", err)
	}
	return NewOdooServiceWithClient(client, slog.Default()), srv
}

func TestAuthenticate_Success(t *testing.T) {
	fake := &fakeOdoo{t: t, authUID: float64(7)}
	svc, _ := newTestService(t, fake)

	uid, err := svc.Authenticate()
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if uid != 7 {
		t.Errorf("uid = %d, want 7", uid)
	}
}

func TestAuthenticate_BadCredentials(t *testing.T) {
	fake := &fakeOdoo{t: t, authUID: false}
	svc, _ := newTestService(t, fake)

	if _, err := svc.Authenticate(); err == nil {
		t.Error("Authenticate() with false result should fail")
	}
}

func TestCreate_ReturnsRemoteID(t *testing.T) {
	fake := &fakeOdoo{
		t:       t,
		authUID: float64(7),
		handlers: map[string]func(entity.RpcRequest) (interface{}, *entity.RpcError){
			"object.execute_kw": func(req entity.RpcRequest) (interface{}, *entity.RpcError) {
				if model := req.Params.Args[3]; model != "res.partner" {
					t.Errorf("model = %v, want res.partner", model)
				}
				if method := req.Params.Args[4]; method != "create" {
					t.Errorf("method = %v, want create", method)
				}
				return float64(42), nil
			},
		},
	}
	svc, _ := newTestService(t, fake)

	id, err := svc.Create("res.partner", map[string]interface{}{"name": "Acme"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id != 42 {
		t.Errorf("id = %d, want 42", id)
	}

	// Lazy auth: the object call must be preceded by authenticate.
	if len(fake.calls) != 2 || fake.calls[0] != "common.authenticate" {
		t.Errorf("calls = %v, want authenticate before execute_kw", fake.calls)
	}
}

func TestCreate_ServerError(t *testing.T) {
	fake := &fakeOdoo{
		t:       t,
		authUID: float64(7),
		handlers: map[string]func(entity.RpcRequest) (interface{}, *entity.RpcError){
			"object.execute_kw": func(entity.RpcRequest) (interface{}, *entity.RpcError) {
				return nil, &entity.RpcError{
					Code:    200,
					Message: "Odoo Server Error",
					Data:    entity.RpcErrorData{Name: "ValidationError", Message: "Invalid field 'bogus'"},
				}
			},
		},
	}
	svc, _ := newTestService(t, fake)

	_, err := svc.Create("res.partner", map[string]interface{}{"bogus": 1})
	if err == nil {
		t.Fatal("Create() should surface server error")
	}
	if want := "Invalid field 'bogus'"; !strings.Contains(err.Error(), want) {
		t.Errorf("error = %q, want it to contain %q", err.Error(), want)
	}
}

func TestSearchRead(t *testing.T) {
	fake := &fakeOdoo{
		t:       t,
		authUID: float64(7),
		handlers: map[string]func(entity.RpcRequest) (interface{}, *entity.RpcError){
			"object.execute_kw": func(req entity.RpcRequest) (interface{}, *entity.RpcError) {
				if len(req.Params.Args) != 7 {
					t.Errorf("args length = %d, want 7 (kwargs present)", len(req.Params.Args))
				}
				return []interface{}{
					map[string]interface{}{"id": float64(1), "name": "INV/001"},
					map[string]interface{}{"id": float64(2), "name": "INV/002"},
				}, nil
			},
		},
	}
	svc, _ := newTestService(t, fake)

	records, err := svc.SearchRead("account.move", nil, []string{"id", "name"}, 10)
	if err != nil {
		t.Fatalf("SearchRead() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[1]["name"] != "INV/002" {
		t.Errorf("second record name = %v, want INV/002", records[1]["name"])
	}
}

func TestInvoke(t *testing.T) {
	var gotArgs []interface{}
	fake := &fakeOdoo{
		t:       t,
		authUID: float64(7),
		handlers: map[string]func(entity.RpcRequest) (interface{}, *entity.RpcError){
			"object.execute_kw": func(req entity.RpcRequest) (interface{}, *entity.RpcError) {
				gotArgs = req.Params.Args
				return true, nil
			},
		},
	}
	svc, _ := newTestService(t, fake)

	if err := svc.Invoke("account.move", "action_post", 5); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if gotArgs[4] != "action_post" {
		t.Errorf("method = %v, want action_post", gotArgs[4])
	}
}

func TestVersion(t *testing.T) {
	fake := &fakeOdoo{t: t, authUID: false}
	fake.handlers = map[string]func(entity.RpcRequest) (interface{}, *entity.RpcError){
		"common.version": func(entity.RpcRequest) (interface{}, *entity.RpcError) {
			return map[string]interface{}{"server_version": "17.0"}, nil
		},
	}
	svc, _ := newTestService(t, fake)

	version, err := svc.Version()
	if err != nil {
		t.Fatalf("Version() error = %v", err)
	}
	if version != "17.0" {
		t.Errorf("version = %q, want 17.0", version)
	}
}

func TestToInt64(t *testing.T) {
	tests := []struct {
		name   string
		input  interface{}
		want   int64
		wantOk bool
	}{
		{"float64", float64(12), 12, true},
		{"int64", int64(12), 12, true},
		{"int", 12, 12, true},
		{"string", "12", 0, false},
		{"bool", false, 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toInt64(tt.input)
			if got != tt.want || ok != tt.wantOk {
				t.Errorf("toInt64(%v) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}
