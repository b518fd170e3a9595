// Package console is the session and navigation core behind the HR console.
// It owns the authenticated client, resolves persisted credentials into typed
// sessions, keeps the active view inside the role's partition, and caches the
// domain data each role works with.
package console

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const minPasswordLen = 6

// Console coordinates session state, navigation, and cached domain data. All
// exported methods are safe for concurrent use. The internal mutex is never
// held across a network call; instead every load captures the session epoch
// before going out and applies its results only if the epoch is unchanged, so
// a response that arrives after a logout or re-login is discarded whole.
type Console struct {
	client *Client
	store  CredentialStore
	logger zerolog.Logger

	mu      sync.Mutex
	epoch   uint64
	session *Session
	active  ViewKey
	warning string

	employees     []Employee
	attendance    []AttendanceEntry
	leaveRequests []LeaveRequest
	settings      CompanySettings
	profile       *Employee
	myAttendance  []AttendanceEntry
	myLeave       []LeaveRequest
}

// New builds a Console talking to the API at baseURL, persisting credentials
// in store.
func New(baseURL string, store CredentialStore, logger zerolog.Logger) *Console {
	con := &Console{store: store, logger: logger, active: ViewUnauthenticated}
	con.client = NewClient(baseURL, store, con.invalidate)
	return con
}

// invalidate is the 401 hook: the credential is already rejected server-side,
// so drop everything locally. Data loads in flight see the epoch bump and
// discard their results.
func (con *Console) invalidate() {
	_ = con.store.ClearToken()
	con.mu.Lock()
	defer con.mu.Unlock()
	con.reset()
	con.logger.Warn().Msg("credential rejected, session cleared")
}

// reset clears session, view, and caches. Callers hold con.mu.
func (con *Console) reset() {
	con.epoch++
	con.session = nil
	con.active = ViewUnauthenticated
	con.warning = ""
	con.employees = nil
	con.attendance = nil
	con.leaveRequests = nil
	con.settings = CompanySettings{}
	con.profile = nil
	con.myAttendance = nil
	con.myLeave = nil
}

// install adopts user as the current session and lands on the role's default
// view. The login-mode hint only ever picks which form the user saw; the
// server-asserted role decides the partition.
func (con *Console) install(user *User) error {
	session, warnErr := newSession(user)

	con.mu.Lock()
	con.reset()
	con.session = session
	con.active = defaultView(session)
	if warnErr != nil {
		con.warning = warnErr.Error()
	}
	con.mu.Unlock()

	if warnErr != nil {
		con.logger.Warn().Err(warnErr).Str("username", user.Username).Msg("session degraded")
	} else {
		con.logger.Info().Str("username", session.Username).Str("role", string(session.Role)).Msg("session established")
	}
	return warnErr
}

// Login exchanges credentials for a session and loads the role's data. mode
// is the portal the user signed in through; it is persisted as a hint for the
// next login form and never consulted for authorization. A non-nil error
// wrapping ErrProfileResolution still leaves a usable (degraded) session.
func (con *Console) Login(ctx context.Context, username, password, mode string) error {
	if strings.TrimSpace(username) == "" {
		return validationError("username is required")
	}
	if password == "" {
		return validationError("password is required")
	}
	if mode != LoginModeAdmin && mode != LoginModeEmployee {
		mode = LoginModeEmployee
	}

	var resp struct {
		Token string `json:"token"`
		User  *User  `json:"user"`
	}
	payload := map[string]string{"username": username, "password": password}
	if err := con.client.Do(ctx, http.MethodPost, "/api/auth/login", payload, &resp); err != nil {
		return err
	}
	if resp.Token == "" || resp.User == nil {
		return &RequestError{StatusCode: http.StatusOK, Message: "malformed login response"}
	}

	if err := con.store.SetToken(resp.Token); err != nil {
		return err
	}
	_ = con.store.SetLoginMode(mode)

	warnErr := con.install(resp.User)
	con.backgroundRefresh(ctx)
	return warnErr
}

// Resume rebuilds a session from the persisted credential, the cold-start
// path. Without a stored token it reports ErrUnauthorized immediately; with a
// stale one the backend's 401 tears the credential down and the same error
// surfaces.
func (con *Console) Resume(ctx context.Context) error {
	if con.store.Token() == "" {
		return ErrUnauthorized
	}

	var resp struct {
		User *User `json:"user"`
	}
	if err := con.client.Do(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return err
	}
	if resp.User == nil {
		return &RequestError{StatusCode: http.StatusOK, Message: "malformed identity response"}
	}

	warnErr := con.install(resp.User)
	con.backgroundRefresh(ctx)
	return warnErr
}

// backgroundRefresh runs the data batch that follows a session transition.
// The session is already valid and persisted at this point, so a failed
// batch leaves the caches empty but is not the caller's problem. A 401 has
// already torn the session down through the client hook, which is all the
// handling it needs.
func (con *Console) backgroundRefresh(ctx context.Context) {
	if err := con.Refresh(ctx); err != nil {
		con.logger.Warn().Err(err).Msg("initial data load failed")
	}
}

// Logout drops the credential and all session state. The login-mode hint
// survives so the next login form opens where the user left.
func (con *Console) Logout() error {
	err := con.store.ClearToken()
	con.mu.Lock()
	con.reset()
	con.mu.Unlock()
	con.logger.Info().Msg("logged out")
	return err
}

// Refresh reloads the data set for the current role as one batch: every
// resource lands or none does. Results racing a logout or a newer login are
// discarded.
func (con *Console) Refresh(ctx context.Context) error {
	con.mu.Lock()
	session := con.session
	epoch := con.epoch
	con.mu.Unlock()
	if session == nil {
		return ErrUnauthorized
	}

	if session.Role == RoleAdmin {
		snap, err := loadAdmin(ctx, con.client)
		if err != nil {
			return err
		}
		con.mu.Lock()
		defer con.mu.Unlock()
		if con.epoch != epoch {
			con.logger.Debug().Msg("stale data batch discarded")
			return nil
		}
		con.employees = snap.Employees
		con.attendance = snap.Attendance
		con.leaveRequests = snap.LeaveRequests
		con.settings = snap.Settings
		return nil
	}

	snap, err := loadEmployee(ctx, con.client, session.Permissions)
	if err != nil {
		return err
	}
	con.mu.Lock()
	defer con.mu.Unlock()
	if con.epoch != epoch {
		con.logger.Debug().Msg("stale data batch discarded")
		return nil
	}
	con.profile = snap.Profile
	con.myAttendance = snap.MyAttendance
	con.myLeave = snap.MyLeave
	return nil
}

// Navigate switches the active view. Keys outside the session's partition,
// or hidden by a revoked permission flag, are rejected and the active view
// stays put.
func (con *Console) Navigate(key ViewKey) error {
	con.mu.Lock()
	defer con.mu.Unlock()
	if !viewAllowed(con.session, key) {
		return validationError("view %q is not available", key)
	}
	con.active = key
	return nil
}

// ActiveView returns the current view key.
func (con *Console) ActiveView() ViewKey {
	con.mu.Lock()
	defer con.mu.Unlock()
	return con.active
}

// Views returns the navigable view keys for the current session.
func (con *Console) Views() []ViewKey {
	con.mu.Lock()
	defer con.mu.Unlock()
	return visibleViews(con.session)
}

// Session returns a copy of the current session, or nil when logged out.
func (con *Console) Session() *Session {
	con.mu.Lock()
	defer con.mu.Unlock()
	if con.session == nil {
		return nil
	}
	s := *con.session
	return &s
}

// Warning returns the non-fatal session warning, if any. A degraded profile
// resolution sets it; a clean login clears it.
func (con *Console) Warning() string {
	con.mu.Lock()
	defer con.mu.Unlock()
	return con.warning
}

// LoginModeHint returns the persisted login-form hint.
func (con *Console) LoginModeHint() string {
	mode := con.store.LoginMode()
	if mode != LoginModeAdmin && mode != LoginModeEmployee {
		return LoginModeEmployee
	}
	return mode
}

// --- administrator data and mutations ---

// Employees returns the cached employee list.
func (con *Console) Employees() []Employee {
	con.mu.Lock()
	defer con.mu.Unlock()
	out := make([]Employee, len(con.employees))
	copy(out, con.employees)
	return out
}

// Attendance returns the cached attendance log.
func (con *Console) Attendance() []AttendanceEntry {
	con.mu.Lock()
	defer con.mu.Unlock()
	out := make([]AttendanceEntry, len(con.attendance))
	copy(out, con.attendance)
	return out
}

// LeaveRequests returns the cached leave requests.
func (con *Console) LeaveRequests() []LeaveRequest {
	con.mu.Lock()
	defer con.mu.Unlock()
	out := make([]LeaveRequest, len(con.leaveRequests))
	copy(out, con.leaveRequests)
	return out
}

// Settings returns the cached company settings.
func (con *Console) Settings() CompanySettings {
	con.mu.Lock()
	defer con.mu.Unlock()
	return con.settings
}

// EmployeeInput carries the fields an admin edits on an employee record.
// Role is the free-text job title.
type EmployeeInput struct {
	Name        string
	Email       string
	Role        string
	Department  string
	Status      string
	Permissions Permissions
}

func (in EmployeeInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return validationError("name is required")
	}
	if !strings.Contains(in.Email, "@") {
		return validationError("a valid email is required")
	}
	if strings.TrimSpace(in.Role) == "" {
		return validationError("role is required")
	}
	if strings.TrimSpace(in.Department) == "" {
		return validationError("department is required")
	}
	return nil
}

type employeePayload struct {
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        string      `json:"role"`
	Department  string      `json:"department"`
	Status      string      `json:"status,omitempty"`
	Username    string      `json:"username,omitempty"`
	Password    string      `json:"password,omitempty"`
	Permissions Permissions `json:"permissions"`
}

// CreateEmployee onboards an employee together with their portal account.
// The provisional password must satisfy the same minimum the backend
// enforces; short ones are rejected before any request is made.
func (con *Console) CreateEmployee(ctx context.Context, in EmployeeInput, username, password string) (*Employee, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(username) == "" {
		return nil, validationError("username is required")
	}
	if len(password) < minPasswordLen {
		return nil, validationError("password must be at least %d characters", minPasswordLen)
	}

	epoch := con.currentEpoch()
	var created Employee
	payload := employeePayload{
		Name:        in.Name,
		Email:       in.Email,
		Role:        in.Role,
		Department:  in.Department,
		Status:      in.Status,
		Username:    username,
		Password:    password,
		Permissions: in.Permissions,
	}
	if err := con.client.Do(ctx, http.MethodPost, "/api/employees", payload, &created); err != nil {
		return nil, err
	}

	con.applyIfCurrent(epoch, func() {
		con.employees = append([]Employee{created}, con.employees...)
	})
	return &created, nil
}

// UpdateEmployee edits an employee record and patches the cache in place;
// no re-fetch of the full list happens.
func (con *Console) UpdateEmployee(ctx context.Context, id string, in EmployeeInput) (*Employee, error) {
	if id == "" {
		return nil, validationError("employee id is required")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Status) == "" {
		return nil, validationError("status is required")
	}

	epoch := con.currentEpoch()
	var updated Employee
	payload := employeePayload{
		Name:        in.Name,
		Email:       in.Email,
		Role:        in.Role,
		Department:  in.Department,
		Status:      in.Status,
		Permissions: in.Permissions,
	}
	if err := con.client.Do(ctx, http.MethodPut, "/api/employees?id="+url.QueryEscape(id), payload, &updated); err != nil {
		return nil, err
	}

	con.applyIfCurrent(epoch, func() {
		for i := range con.employees {
			if con.employees[i].ID == updated.ID {
				con.employees[i] = updated
				break
			}
		}
	})
	return &updated, nil
}

// DeleteEmployee removes an employee, their portal account, and every cached
// record that referenced them.
func (con *Console) DeleteEmployee(ctx context.Context, id string) error {
	if id == "" {
		return validationError("employee id is required")
	}

	epoch := con.currentEpoch()
	if err := con.client.Do(ctx, http.MethodDelete, "/api/employees?id="+url.QueryEscape(id), nil, nil); err != nil {
		return err
	}

	con.applyIfCurrent(epoch, func() {
		con.employees = deleteByID(con.employees, func(e Employee) bool { return e.ID == id })
		con.attendance = deleteByID(con.attendance, func(a AttendanceEntry) bool { return a.EmployeeID == id })
		con.leaveRequests = deleteByID(con.leaveRequests, func(l LeaveRequest) bool { return l.EmployeeID == id })
	})
	return nil
}

// AttendanceInput carries one attendance mutation.
type AttendanceInput struct {
	EmployeeID string
	Date       string
	Status     string
}

func (in AttendanceInput) validate() error {
	if in.EmployeeID == "" {
		return validationError("employee is required")
	}
	if err := validDate(in.Date); err != nil {
		return err
	}
	switch in.Status {
	case "Present", "Remote", "Absent":
		return nil
	}
	return validationError("status must be Present, Remote or Absent")
}

type attendancePayload struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// CreateAttendance records a presence entry.
func (con *Console) CreateAttendance(ctx context.Context, in AttendanceInput) (*AttendanceEntry, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	epoch := con.currentEpoch()
	var created AttendanceEntry
	payload := attendancePayload{EmployeeID: in.EmployeeID, Date: in.Date, Status: in.Status}
	if err := con.client.Do(ctx, http.MethodPost, "/api/attendance", payload, &created); err != nil {
		return nil, err
	}

	con.applyIfCurrent(epoch, func() {
		con.attendance = append([]AttendanceEntry{created}, con.attendance...)
	})
	return &created, nil
}

// UpdateAttendance edits a presence entry.
func (con *Console) UpdateAttendance(ctx context.Context, id string, in AttendanceInput) (*AttendanceEntry, error) {
	if id == "" {
		return nil, validationError("entry id is required")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	epoch := con.currentEpoch()
	var updated AttendanceEntry
	payload := attendancePayload{EmployeeID: in.EmployeeID, Date: in.Date, Status: in.Status}
	if err := con.client.Do(ctx, http.MethodPut, "/api/attendance?id="+url.QueryEscape(id), payload, &updated); err != nil {
		return nil, err
	}

	con.applyIfCurrent(epoch, func() {
		for i := range con.attendance {
			if con.attendance[i].ID == updated.ID {
				con.attendance[i] = updated
				break
			}
		}
	})
	return &updated, nil
}

// DeleteAttendance removes a presence entry.
func (con *Console) DeleteAttendance(ctx context.Context, id string) error {
	if id == "" {
		return validationError("entry id is required")
	}

	epoch := con.currentEpoch()
	if err := con.client.Do(ctx, http.MethodDelete, "/api/attendance?id="+url.QueryEscape(id), nil, nil); err != nil {
		return err
	}

	con.applyIfCurrent(epoch, func() {
		con.attendance = deleteByID(con.attendance, func(a AttendanceEntry) bool { return a.ID == id })
	})
	return nil
}

// LeaveInput carries one admin-side leave mutation.
type LeaveInput struct {
	EmployeeID string
	StartDate  string
	EndDate    string
	Reason     string
	Status     string
}

func (in LeaveInput) validate() error {
	if in.EmployeeID == "" {
		return validationError("employee is required")
	}
	return validLeaveWindow(in.StartDate, in.EndDate, in.Reason)
}

type leavePayload struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
	Status     string `json:"status,omitempty"`
}

// CreateLeave files a leave request on an employee's behalf.
func (con *Console) CreateLeave(ctx context.Context, in LeaveInput) (*LeaveRequest, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	epoch := con.currentEpoch()
	var created LeaveRequest
	payload := leavePayload{
		EmployeeID: in.EmployeeID,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Reason:     in.Reason,
		Status:     in.Status,
	}
	if err := con.client.Do(ctx, http.MethodPost, "/api/leave", payload, &created); err != nil {
		return nil, err
	}

	con.applyIfCurrent(epoch, func() {
		con.leaveRequests = append([]LeaveRequest{created}, con.leaveRequests...)
	})
	return &created, nil
}

// UpdateLeave edits a leave request, typically to approve or reject it.
func (con *Console) UpdateLeave(ctx context.Context, id string, in LeaveInput) (*LeaveRequest, error) {
	if id == "" {
		return nil, validationError("request id is required")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	epoch := con.currentEpoch()
	var updated LeaveRequest
	payload := leavePayload{
		EmployeeID: in.EmployeeID,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Reason:     in.Reason,
		Status:     in.Status,
	}
	if err := con.client.Do(ctx, http.MethodPut, "/api/leave?id="+url.QueryEscape(id), payload, &updated); err != nil {
		return nil, err
	}

	con.applyIfCurrent(epoch, func() {
		for i := range con.leaveRequests {
			if con.leaveRequests[i].ID == updated.ID {
				con.leaveRequests[i] = updated
				break
			}
		}
	})
	return &updated, nil
}

// DeleteLeave removes a leave request.
func (con *Console) DeleteLeave(ctx context.Context, id string) error {
	if id == "" {
		return validationError("request id is required")
	}

	epoch := con.currentEpoch()
	if err := con.client.Do(ctx, http.MethodDelete, "/api/leave?id="+url.QueryEscape(id), nil, nil); err != nil {
		return err
	}

	con.applyIfCurrent(epoch, func() {
		con.leaveRequests = deleteByID(con.leaveRequests, func(l LeaveRequest) bool { return l.ID == id })
	})
	return nil
}

// UpdateSettings replaces the company settings document.
func (con *Console) UpdateSettings(ctx context.Context, settings CompanySettings) (*CompanySettings, error) {
	epoch := con.currentEpoch()
	var updated CompanySettings
	if err := con.client.Do(ctx, http.MethodPut, "/api/settings", settings, &updated); err != nil {
		return nil, err
	}

	con.applyIfCurrent(epoch, func() {
		con.settings = updated
	})
	return &updated, nil
}

// --- employee portal data and mutations ---

// Profile returns the cached own-employee record, nil when not loaded.
func (con *Console) Profile() *Employee {
	con.mu.Lock()
	defer con.mu.Unlock()
	if con.profile == nil {
		return nil
	}
	p := *con.profile
	return &p
}

// MyAttendance returns the cached own attendance entries.
func (con *Console) MyAttendance() []AttendanceEntry {
	con.mu.Lock()
	defer con.mu.Unlock()
	out := make([]AttendanceEntry, len(con.myAttendance))
	copy(out, con.myAttendance)
	return out
}

// MyLeave returns the cached own leave requests.
func (con *Console) MyLeave() []LeaveRequest {
	con.mu.Lock()
	defer con.mu.Unlock()
	out := make([]LeaveRequest, len(con.myLeave))
	copy(out, con.myLeave)
	return out
}

// ApplyLeave files a leave request for the logged-in employee. Authorization
// stays with the backend; a revoked flag surfaces as a request failure.
func (con *Console) ApplyLeave(ctx context.Context, startDate, endDate, reason string) (*LeaveRequest, error) {
	if err := validLeaveWindow(startDate, endDate, reason); err != nil {
		return nil, err
	}

	epoch := con.currentEpoch()
	var created LeaveRequest
	payload := map[string]string{
		"start_date": startDate,
		"end_date":   endDate,
		"reason":     reason,
	}
	if err := con.client.Do(ctx, http.MethodPost, "/api/employee/leave", payload, &created); err != nil {
		return nil, err
	}

	con.applyIfCurrent(epoch, func() {
		con.myLeave = append([]LeaveRequest{created}, con.myLeave...)
	})
	return &created, nil
}

// CancelLeave withdraws the caller's own pending request.
func (con *Console) CancelLeave(ctx context.Context, id string) error {
	if id == "" {
		return validationError("request id is required")
	}

	epoch := con.currentEpoch()
	if err := con.client.Do(ctx, http.MethodDelete, "/api/employee/leave?id="+url.QueryEscape(id), nil, nil); err != nil {
		return err
	}

	con.applyIfCurrent(epoch, func() {
		con.myLeave = deleteByID(con.myLeave, func(l LeaveRequest) bool { return l.ID == id })
	})
	return nil
}

// ChangePassword rotates the caller's password. The backend revokes every
// outstanding token on success, so the local session is torn down too and the
// user has to log in again.
func (con *Console) ChangePassword(ctx context.Context, current, next, confirm string) error {
	if current == "" {
		return validationError("current password is required")
	}
	if len(next) < minPasswordLen {
		return validationError("password must be at least %d characters", minPasswordLen)
	}
	if next != confirm {
		return validationError("passwords do not match")
	}

	payload := map[string]string{"currentPassword": current, "newPassword": next}
	if err := con.client.Do(ctx, http.MethodPost, "/api/auth/change-password", payload, nil); err != nil {
		return err
	}
	return con.Logout()
}

// --- helpers ---

func (con *Console) currentEpoch() uint64 {
	con.mu.Lock()
	defer con.mu.Unlock()
	return con.epoch
}

// applyIfCurrent runs fn under the lock only when the session epoch still
// matches the one captured before the network call.
func (con *Console) applyIfCurrent(epoch uint64, fn func()) {
	con.mu.Lock()
	defer con.mu.Unlock()
	if con.epoch == epoch {
		fn()
	}
}

func deleteByID[T any](items []T, match func(T) bool) []T {
	out := items[:0]
	for _, item := range items {
		if !match(item) {
			out = append(out, item)
		}
	}
	return out
}

func validDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return validationError("date must be YYYY-MM-DD")
	}
	return nil
}

func validLeaveWindow(start, end, reason string) error {
	startT, err := time.Parse("2006-01-02", start)
	if err != nil {
		return validationError("start date must be YYYY-MM-DD")
	}
	endT, err := time.Parse("2006-01-02", end)
	if err != nil {
		return validationError("end date must be YYYY-MM-DD")
	}
	if endT.Before(startT) {
		return validationError("end date is before start date")
	}
	if strings.TrimSpace(reason) == "" {
		return validationError("reason is required")
	}
	return nil
}
