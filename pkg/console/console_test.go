package console

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

type apiRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *apiRecorder) record(req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, req.Method+" "+req.URL.Path)
}

func (r *apiRecorder) count(call string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

func adminUser() *User {
	return &User{ID: "u1", Username: "admin", Role: "admin"}
}

func employeeUser(perms Permissions) *User {
	return &User{ID: "u2", Username: "jdoe", Role: "employee", EmployeeID: "e1", Permissions: perms}
}

// newAdminAPI serves a minimal admin backend: login as admin, one employee on
// the list, empty attendance and leave, zero-valued settings.
func newAdminAPI(t *testing.T, rec *apiRecorder) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		writeJSON(t, w, map[string]any{"token": "tok-admin", "user": adminUser()})
	})
	mux.HandleFunc("/api/employees", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, []Employee{{ID: "e1", Name: "Jane Doe", Email: "jane@corp.test", Role: "Engineer", Department: "Platform", Status: "Active"}})
		case http.MethodPost:
			var e Employee
			_ = json.NewDecoder(r.Body).Decode(&e)
			e.ID = "e-new"
			w.WriteHeader(http.StatusCreated)
			writeJSON(t, w, e)
		case http.MethodPut:
			var e Employee
			_ = json.NewDecoder(r.Body).Decode(&e)
			e.ID = r.URL.Query().Get("id")
			writeJSON(t, w, e)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})
	mux.HandleFunc("GET /api/attendance", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		writeJSON(t, w, []AttendanceEntry{})
	})
	mux.HandleFunc("GET /api/leave", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		writeJSON(t, w, []LeaveRequest{})
	})
	mux.HandleFunc("GET /api/settings", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		writeJSON(t, w, CompanySettings{})
	})
	return httptest.NewServer(mux)
}

func loginAdmin(t *testing.T, con *Console) {
	t.Helper()
	if err := con.Login(context.Background(), "admin", "admin123", LoginModeAdmin); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func TestLoginAdminLandsOnDashboard(t *testing.T) {
	rec := &apiRecorder{}
	srv := newAdminAPI(t, rec)
	defer srv.Close()

	store := NewMemoryStore()
	con := New(srv.URL, store, zerolog.Nop())
	loginAdmin(t, con)

	if got := con.ActiveView(); got != ViewDashboard {
		t.Fatalf("active view = %q, want %q", got, ViewDashboard)
	}
	session := con.Session()
	if session == nil || session.Role != RoleAdmin {
		t.Fatalf("session = %+v, want admin session", session)
	}
	if !session.Permissions.AttendanceView || !session.Permissions.LeaveApply || !session.Permissions.ProfileView {
		t.Fatalf("admin session missing implicit permissions: %+v", session.Permissions)
	}
	if store.Token() != "tok-admin" {
		t.Fatalf("token = %q, want persisted", store.Token())
	}
	if got := len(con.Employees()); got != 1 {
		t.Fatalf("employees cached = %d, want 1", got)
	}
}

func TestLoginSurvivesFailedInitialLoad(t *testing.T) {
	rec := &apiRecorder{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		writeJSON(t, w, map[string]any{"token": "tok-admin", "user": adminUser()})
	})
	mux.HandleFunc("GET /api/employees", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		writeJSON(t, w, []Employee{{ID: "e1", Name: "Jane Doe"}})
	})
	mux.HandleFunc("GET /api/attendance", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		writeJSON(t, w, []AttendanceEntry{})
	})
	mux.HandleFunc("GET /api/leave", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		writeJSON(t, w, []LeaveRequest{})
	})
	mux.HandleFunc("GET /api/settings", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		http.Error(w, `{"error": "settings unavailable"}`, http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := NewMemoryStore()
	con := New(srv.URL, store, zerolog.Nop())
	if err := con.Login(context.Background(), "admin", "admin123", LoginModeAdmin); err != nil {
		t.Fatalf("login = %v, want nil despite the failed data batch", err)
	}

	session := con.Session()
	if session == nil || session.Role != RoleAdmin {
		t.Fatalf("session = %+v, want admin session", session)
	}
	if store.Token() != "tok-admin" {
		t.Fatalf("token = %q, want persisted", store.Token())
	}
	if got := con.ActiveView(); got != ViewDashboard {
		t.Fatalf("active view = %q, want %q", got, ViewDashboard)
	}
	// The batch is all or nothing, so the sibling loads are dropped too.
	if got := len(con.Employees()); got != 0 {
		t.Fatalf("employees cached = %d, want 0 after a failed batch", got)
	}

	// An explicit refresh against the same backend fails loudly.
	if err := con.Refresh(context.Background()); err == nil {
		t.Fatal("explicit refresh should report the failing resource")
	}
}

func TestLoginValidatesBeforeNetwork(t *testing.T) {
	rec := &apiRecorder{}
	srv := newAdminAPI(t, rec)
	defer srv.Close()

	con := New(srv.URL, NewMemoryStore(), zerolog.Nop())
	cases := []struct{ username, password string }{
		{"", "secret"},
		{"   ", "secret"},
		{"admin", ""},
	}
	for _, tc := range cases {
		err := con.Login(context.Background(), tc.username, tc.password, LoginModeAdmin)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("Login(%q, %q) error = %v, want ErrValidation", tc.username, tc.password, err)
		}
	}
	if n := rec.count("POST /api/auth/login"); n != 0 {
		t.Fatalf("login requests issued = %d, want 0", n)
	}
}

func TestNavigateStaysInsidePartition(t *testing.T) {
	rec := &apiRecorder{}
	srv := newAdminAPI(t, rec)
	defer srv.Close()

	con := New(srv.URL, NewMemoryStore(), zerolog.Nop())
	loginAdmin(t, con)

	if err := con.Navigate(ViewSettings); err != nil {
		t.Fatalf("navigate to settings: %v", err)
	}
	if err := con.Navigate(ViewEmployeeProfile); !errors.Is(err, ErrValidation) {
		t.Fatalf("navigate to employee view error = %v, want ErrValidation", err)
	}
	if got := con.ActiveView(); got != ViewSettings {
		t.Fatalf("active view after rejected navigation = %q, want %q", got, ViewSettings)
	}
	if err := con.Navigate(ViewKey("payroll")); !errors.Is(err, ErrValidation) {
		t.Fatalf("navigate to unknown view error = %v, want ErrValidation", err)
	}
}

func newEmployeeAPI(t *testing.T, rec *apiRecorder, perms Permissions) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		writeJSON(t, w, map[string]any{"token": "tok-emp", "user": employeeUser(perms)})
	})
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		writeJSON(t, w, map[string]any{"user": employeeUser(perms)})
	})
	mux.HandleFunc("GET /api/employee/me", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		writeJSON(t, w, Employee{ID: "e1", Name: "Jane Doe", Department: "Platform"})
	})
	mux.HandleFunc("GET /api/employee/attendance", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		writeJSON(t, w, []AttendanceEntry{{ID: "a1", EmployeeID: "e1", Date: "2026-08-27", Status: "Present"}})
	})
	mux.HandleFunc("/api/employee/leave", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, []LeaveRequest{})
		case http.MethodPost:
			var req LeaveRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			req.ID = "l-new"
			req.EmployeeID = "e1"
			req.Status = "Pending"
			w.WriteHeader(http.StatusCreated)
			writeJSON(t, w, req)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})
	return httptest.NewServer(mux)
}

func TestEmployeeViewsFollowPermissions(t *testing.T) {
	cases := []struct {
		name    string
		perms   Permissions
		views   []ViewKey
		landing ViewKey
	}{
		{
			name:  "all flags",
			perms: Permissions{AttendanceView: true, LeaveApply: true, ProfileView: true},
			views: []ViewKey{
				ViewEmployeeDashboard, ViewEmployeeAttendance, ViewEmployeeLeave, ViewEmployeeProfile,
			},
			landing: ViewEmployeeDashboard,
		},
		{
			name:    "leave only",
			perms:   Permissions{LeaveApply: true},
			views:   []ViewKey{ViewEmployeeDashboard, ViewEmployeeLeave},
			landing: ViewEmployeeDashboard,
		},
		{
			name:    "all revoked",
			perms:   Permissions{},
			views:   []ViewKey{ViewEmployeeDashboard},
			landing: ViewEmployeeDashboard,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &apiRecorder{}
			srv := newEmployeeAPI(t, rec, tc.perms)
			defer srv.Close()

			con := New(srv.URL, NewMemoryStore(), zerolog.Nop())
			if err := con.Login(context.Background(), "jdoe", "secret1", LoginModeEmployee); err != nil {
				t.Fatalf("login: %v", err)
			}

			views := con.Views()
			if len(views) != len(tc.views) {
				t.Fatalf("views = %v, want %v", views, tc.views)
			}
			for i := range views {
				if views[i] != tc.views[i] {
					t.Fatalf("views = %v, want %v", views, tc.views)
				}
			}
			if got := con.ActiveView(); got != tc.landing {
				t.Fatalf("landing view = %q, want %q", got, tc.landing)
			}
		})
	}
}

func TestEmployeeLoaderSkipsRevokedResources(t *testing.T) {
	rec := &apiRecorder{}
	srv := newEmployeeAPI(t, rec, Permissions{ProfileView: true, LeaveApply: true})
	defer srv.Close()

	con := New(srv.URL, NewMemoryStore(), zerolog.Nop())
	if err := con.Login(context.Background(), "jdoe", "secret1", LoginModeEmployee); err != nil {
		t.Fatalf("login: %v", err)
	}

	if n := rec.count("GET /api/employee/attendance"); n != 0 {
		t.Fatalf("attendance reads issued = %d, want 0", n)
	}
	if n := rec.count("GET /api/employee/me"); n != 1 {
		t.Fatalf("profile reads issued = %d, want 1", n)
	}
	if got := con.MyAttendance(); len(got) != 0 {
		t.Fatalf("attendance cache = %v, want empty", got)
	}
	if con.Profile() == nil {
		t.Fatal("profile cache empty, want loaded")
	}
}

func TestUnauthorizedTearsDownSession(t *testing.T) {
	rec := &apiRecorder{}
	var mu sync.Mutex
	expired := false
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"token": "tok-admin", "user": adminUser()})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		mu.Lock()
		rejected := expired
		mu.Unlock()
		if rejected {
			w.WriteHeader(http.StatusUnauthorized)
			writeJSON(t, w, map[string]string{"error": "token is revoked"})
			return
		}
		if strings.HasPrefix(r.URL.Path, "/api/settings") {
			writeJSON(t, w, CompanySettings{})
			return
		}
		writeJSON(t, w, []any{})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := NewMemoryStore()
	con := New(srv.URL, store, zerolog.Nop())
	loginAdmin(t, con)

	mu.Lock()
	expired = true
	mu.Unlock()
	if err := con.Refresh(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("refresh error = %v, want ErrUnauthorized", err)
	}
	if con.Session() != nil {
		t.Fatal("session survived a 401")
	}
	if store.Token() != "" {
		t.Fatalf("token = %q, want cleared", store.Token())
	}
	if got := con.ActiveView(); got != ViewUnauthenticated {
		t.Fatalf("active view = %q, want %q", got, ViewUnauthenticated)
	}
	if got := con.Employees(); len(got) != 0 {
		t.Fatalf("employee cache = %v, want cleared", got)
	}
}

func TestCreateEmployeeRejectsShortPasswordBeforeNetwork(t *testing.T) {
	rec := &apiRecorder{}
	srv := newAdminAPI(t, rec)
	defer srv.Close()

	con := New(srv.URL, NewMemoryStore(), zerolog.Nop())
	loginAdmin(t, con)

	input := EmployeeInput{Name: "New Hire", Email: "new@corp.test", Role: "Analyst", Department: "Finance"}

	_, err := con.CreateEmployee(context.Background(), input, "nhire", "12345")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("short password error = %v, want ErrValidation", err)
	}
	if n := rec.count("POST /api/employees"); n != 0 {
		t.Fatalf("create requests issued = %d, want 0", n)
	}

	created, err := con.CreateEmployee(context.Background(), input, "nhire", "123456")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "e-new" {
		t.Fatalf("created id = %q, want e-new", created.ID)
	}
	if n := rec.count("POST /api/employees"); n != 1 {
		t.Fatalf("create requests issued = %d, want 1", n)
	}
	if got := len(con.Employees()); got != 2 {
		t.Fatalf("employee cache size = %d, want 2", got)
	}
}

func TestUpdateEmployeePatchesCacheWithoutRefetch(t *testing.T) {
	rec := &apiRecorder{}
	srv := newAdminAPI(t, rec)
	defer srv.Close()

	con := New(srv.URL, NewMemoryStore(), zerolog.Nop())
	loginAdmin(t, con)

	updated, err := con.UpdateEmployee(context.Background(), "e1", EmployeeInput{
		Name:       "Jane Doe",
		Email:      "jane@corp.test",
		Role:       "Engineer",
		Department: "Infrastructure",
		Status:     "Active",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Department != "Infrastructure" {
		t.Fatalf("updated department = %q", updated.Department)
	}

	employees := con.Employees()
	if len(employees) != 1 || employees[0].Department != "Infrastructure" {
		t.Fatalf("cache after update = %+v, want patched in place", employees)
	}
	if n := rec.count("GET /api/employees"); n != 1 {
		t.Fatalf("list fetches = %d, want only the initial batch load", n)
	}
}

func TestDeleteEmployeePrunesRelatedCaches(t *testing.T) {
	rec := &apiRecorder{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"token": "tok-admin", "user": adminUser()})
	})
	mux.HandleFunc("/api/employees", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, []Employee{{ID: "e1", Name: "Jane Doe"}, {ID: "e2", Name: "John Roe"}})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})
	mux.HandleFunc("GET /api/attendance", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []AttendanceEntry{{ID: "a1", EmployeeID: "e1"}, {ID: "a2", EmployeeID: "e2"}})
	})
	mux.HandleFunc("GET /api/leave", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []LeaveRequest{{ID: "l1", EmployeeID: "e1"}})
	})
	mux.HandleFunc("GET /api/settings", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, CompanySettings{})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	con := New(srv.URL, NewMemoryStore(), zerolog.Nop())
	loginAdmin(t, con)

	if err := con.DeleteEmployee(context.Background(), "e1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if employees := con.Employees(); len(employees) != 1 || employees[0].ID != "e2" {
		t.Fatalf("employee cache = %+v", employees)
	}
	if attendance := con.Attendance(); len(attendance) != 1 || attendance[0].EmployeeID != "e2" {
		t.Fatalf("attendance cache = %+v", attendance)
	}
	if leave := con.LeaveRequests(); len(leave) != 0 {
		t.Fatalf("leave cache = %+v, want empty", leave)
	}
}

func TestLateRefreshDiscardedAfterLogout(t *testing.T) {
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"token": "tok-admin", "user": adminUser()})
	})
	served := false
	var mu sync.Mutex
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		blocked := served
		mu.Unlock()
		if blocked {
			<-release
		}
		if strings.HasPrefix(r.URL.Path, "/api/settings") {
			writeJSON(t, w, CompanySettings{})
			return
		}
		if strings.HasPrefix(r.URL.Path, "/api/employees") {
			writeJSON(t, w, []Employee{{ID: "e1", Name: "Jane Doe"}})
			return
		}
		writeJSON(t, w, []any{})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	con := New(srv.URL, NewMemoryStore(), zerolog.Nop())
	loginAdmin(t, con)
	mu.Lock()
	served = true
	mu.Unlock()

	done := make(chan error, 1)
	go func() { done <- con.Refresh(context.Background()) }()

	if err := con.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	close(release)

	if err := <-done; err != nil {
		t.Fatalf("late refresh error = %v, want nil for a discarded batch", err)
	}
	if got := con.Employees(); len(got) != 0 {
		t.Fatalf("employee cache after logout = %+v, want empty", got)
	}
	if con.Session() != nil {
		t.Fatal("session resurrected by late refresh")
	}
}

func TestChangePasswordLogsOut(t *testing.T) {
	rec := &apiRecorder{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"token": "tok-admin", "user": adminUser()})
	})
	mux.HandleFunc("POST /api/auth/change-password", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/settings") {
			writeJSON(t, w, CompanySettings{})
			return
		}
		writeJSON(t, w, []any{})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := NewMemoryStore()
	con := New(srv.URL, store, zerolog.Nop())
	loginAdmin(t, con)

	if err := con.ChangePassword(context.Background(), "admin123", "secret99", "secret99"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if con.Session() != nil {
		t.Fatal("session survived password change")
	}
	if store.Token() != "" {
		t.Fatalf("token = %q, want cleared", store.Token())
	}

	// Mismatched confirmation never reaches the network.
	err := con.ChangePassword(context.Background(), "secret99", "secret00", "different")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("mismatch error = %v, want ErrValidation", err)
	}
	if n := rec.count("POST /api/auth/change-password"); n != 1 {
		t.Fatalf("change-password requests = %d, want 1", n)
	}
}

func TestUnknownRoleDegradesToMinimalSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"token": "tok-x",
			"user":  map[string]any{"id": "u9", "username": "odd", "role": "manager"},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	con := New(srv.URL, NewMemoryStore(), zerolog.Nop())
	err := con.Login(context.Background(), "odd", "secret1", LoginModeEmployee)
	if !errors.Is(err, ErrProfileResolution) {
		t.Fatalf("login error = %v, want ErrProfileResolution", err)
	}

	session := con.Session()
	if session == nil {
		t.Fatal("no session despite degraded resolution")
	}
	if session.Role != RoleEmployee {
		t.Fatalf("degraded role = %q, want employee", session.Role)
	}
	if session.Permissions != (Permissions{}) {
		t.Fatalf("degraded permissions = %+v, want none", session.Permissions)
	}
	if con.Warning() == "" {
		t.Fatal("expected a session warning")
	}
	if got := con.ActiveView(); got != ViewEmployeeDashboard {
		t.Fatalf("landing view = %q, want %q", got, ViewEmployeeDashboard)
	}
}

func TestResumeWithoutTokenIsUnauthorized(t *testing.T) {
	con := New("http://127.0.0.1:0", NewMemoryStore(), zerolog.Nop())
	if err := con.Resume(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("resume error = %v, want ErrUnauthorized", err)
	}
}

func TestResumeRebuildsEmployeeSession(t *testing.T) {
	rec := &apiRecorder{}
	perms := Permissions{ProfileView: true}
	srv := newEmployeeAPI(t, rec, perms)
	defer srv.Close()

	store := NewMemoryStore()
	_ = store.SetToken("tok-emp")
	_ = store.SetLoginMode(LoginModeEmployee)

	con := New(srv.URL, store, zerolog.Nop())
	if err := con.Resume(context.Background()); err != nil {
		t.Fatalf("resume: %v", err)
	}

	session := con.Session()
	if session == nil || session.Role != RoleEmployee || session.EmployeeID != "e1" {
		t.Fatalf("session = %+v", session)
	}
	if got := con.ActiveView(); got != ViewEmployeeDashboard {
		t.Fatalf("active view = %q, want %q", got, ViewEmployeeDashboard)
	}
	if con.LoginModeHint() != LoginModeEmployee {
		t.Fatalf("login mode hint = %q", con.LoginModeHint())
	}
}

func TestApplyLeaveValidatesWindow(t *testing.T) {
	rec := &apiRecorder{}
	srv := newEmployeeAPI(t, rec, Permissions{LeaveApply: true})
	defer srv.Close()

	con := New(srv.URL, NewMemoryStore(), zerolog.Nop())
	if err := con.Login(context.Background(), "jdoe", "secret1", LoginModeEmployee); err != nil {
		t.Fatalf("login: %v", err)
	}

	cases := []struct{ start, end, reason string }{
		{"not-a-date", "2026-09-02", "vacation"},
		{"2026-09-01", "2026-08-20", "vacation"},
		{"2026-09-01", "2026-09-02", "  "},
	}
	for _, tc := range cases {
		if _, err := con.ApplyLeave(context.Background(), tc.start, tc.end, tc.reason); !errors.Is(err, ErrValidation) {
			t.Fatalf("ApplyLeave(%q, %q, %q) error = %v, want ErrValidation", tc.start, tc.end, tc.reason, err)
		}
	}
	if n := rec.count("POST /api/employee/leave"); n != 0 {
		t.Fatalf("leave requests issued = %d, want 0", n)
	}

	created, err := con.ApplyLeave(context.Background(), "2026-09-01", "2026-09-02", "vacation")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if created.Status != "Pending" {
		t.Fatalf("status = %q, want Pending", created.Status)
	}
	if got := con.MyLeave(); len(got) != 1 {
		t.Fatalf("leave cache = %+v, want one entry", got)
	}
}

func TestRequestErrorCarriesServerMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"token": "tok-admin", "user": adminUser()})
	})
	mux.HandleFunc("POST /api/employees", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		writeJSON(t, w, map[string]string{"error": "username already taken"})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/settings") {
			writeJSON(t, w, CompanySettings{})
			return
		}
		writeJSON(t, w, []any{})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	con := New(srv.URL, NewMemoryStore(), zerolog.Nop())
	loginAdmin(t, con)

	_, err := con.CreateEmployee(context.Background(), EmployeeInput{
		Name: "New Hire", Email: "new@corp.test", Role: "Analyst", Department: "Finance",
	}, "taken", "123456")

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %v, want *RequestError", err)
	}
	if reqErr.StatusCode != http.StatusConflict || reqErr.Message != "username already taken" {
		t.Fatalf("request error = %+v", reqErr)
	}
}
