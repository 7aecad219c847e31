package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"koala/internal/app/server"
	"koala/internal/platform/config"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   any             `json:"error"`
}

// chdirRepoRoot walks up to the module root so server.New finds the
// migrations directory the same way the deployed binary does.
func chdirRepoRoot(t *testing.T) {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			if err := os.Chdir(dir); err != nil {
				t.Fatalf("chdir: %v", err)
			}
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("module root not found")
		}
		dir = parent
	}
}

func startApp(t *testing.T) (*server.App, *httptest.Server) {
	t.Helper()
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	chdirRepoRoot(t)

	cfg := config.Config{
		DatabaseURL:         dbURL,
		JWTSecret:           "test-secret",
		AdminPassword:       "test-admin",
		Environment:         "test",
		BreakDeductionHours: 1.0,
		BreakThresholdHours: 5.0,
		DefaultOTRate:       1.25,
		DefaultHolidayRate:  2.0,
		TrackerHourlyRate:   300.0,
		MaxBodyBytes:        1048576,
		RateLimitPerMinute:  1000,
		RunMigrations:       true,
		RunSeed:             true,
	}

	app, err := server.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	t.Cleanup(app.Close)

	ts := httptest.NewServer(app.Router)
	t.Cleanup(ts.Close)
	return app, ts
}

func doJSON(t *testing.T, client *http.Client, method, url, token string, payload any) (*http.Response, envelope) {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode envelope: %v", method, url, err)
	}
	return resp, env
}

func unlockAdmin(t *testing.T, client *http.Client, baseURL string) string {
	t.Helper()
	resp, env := doJSON(t, client, http.MethodPost, baseURL+"/api/v1/admin/unlock", "", map[string]string{"password": "test-admin"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unlock: expected 200, got %d", resp.StatusCode)
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unlock: decode data: %v", err)
	}
	return data.Token
}

func TestPayrollJourney(t *testing.T) {
	_, ts := startApp(t)
	client := ts.Client()
	token := unlockAdmin(t, client, ts.URL)

	// Register an employee on the standard rate card.
	resp, env := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/employees", token, map[string]any{
		"name":      fmt.Sprintf("Journey Worker %d", os.Getpid()),
		"position":  "Attendant",
		"startDate": "2025-01-15",
		"status":    "Regular",
		"dailyRate": 800.0,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create employee: expected 201, got %d (%v)", resp.StatusCode, env.Error)
	}
	var emp struct {
		EmployeeID string  `json:"employeeId"`
		HourlyRate float64 `json:"hourlyRate"`
	}
	if err := json.Unmarshal(env.Data, &emp); err != nil {
		t.Fatalf("decode employee: %v", err)
	}
	if emp.HourlyRate != 100 {
		t.Fatalf("expected hourly rate 800/8=100, got %v", emp.HourlyRate)
	}

	// A standard nine-hour shift: eight regular, no overtime.
	resp, env = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/dtr", token, map[string]any{
		"date":       "2026-03-02",
		"employeeId": emp.EmployeeID,
		"timeIn":     "08:00",
		"timeOut":    "17:00",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("log entry: expected 201, got %d (%v)", resp.StatusCode, env.Error)
	}
	var entry struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		RegHours float64 `json:"regHours"`
		OTHours  float64 `json:"otHours"`
	}
	if err := json.Unmarshal(env.Data, &entry); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if entry.RegHours != 8 || entry.OTHours != 0 {
		t.Fatalf("expected 8/0 hours, got %v/%v", entry.RegHours, entry.OTHours)
	}

	// Editing the clock pair keeps the row's identity fields and
	// recomputes the derived hours.
	resp, env = doJSON(t, client, http.MethodPut, ts.URL+"/api/v1/dtr/"+entry.ID, token, map[string]any{
		"date":    "2026-03-02",
		"timeIn":  "08:00",
		"timeOut": "18:00",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update entry: expected 200, got %d (%v)", resp.StatusCode, env.Error)
	}
	var updated struct {
		EmployeeID string  `json:"employeeId"`
		Name       string  `json:"name"`
		RegHours   float64 `json:"regHours"`
		OTHours    float64 `json:"otHours"`
	}
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("decode updated entry: %v", err)
	}
	if updated.EmployeeID != emp.EmployeeID || updated.Name != entry.Name {
		t.Fatalf("update lost identity fields: %+v", updated)
	}
	if updated.RegHours != 8 || updated.OTHours != 1 {
		t.Fatalf("expected 8/1 hours after edit, got %v/%v", updated.RegHours, updated.OTHours)
	}

	// Put the row back so the summary math below is unchanged.
	resp, env = doJSON(t, client, http.MethodPut, ts.URL+"/api/v1/dtr/"+entry.ID, token, map[string]any{
		"date":    "2026-03-02",
		"timeIn":  "08:00",
		"timeOut": "17:00",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("restore entry: expected 200, got %d (%v)", resp.StatusCode, env.Error)
	}

	// Same employee, same date: rejected as a duplicate.
	resp, _ = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/dtr", token, map[string]any{
		"date":       "2026-03-02",
		"employeeId": emp.EmployeeID,
		"timeIn":     "09:00",
		"timeOut":    "18:00",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate entry: expected 409, got %d", resp.StatusCode)
	}

	// A long holiday shift: 12h raw, 11h after break, 8 reg + 3 OT.
	resp, env = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/dtr", token, map[string]any{
		"date":       "2026-03-03",
		"employeeId": emp.EmployeeID,
		"timeIn":     "08:00",
		"timeOut":    "20:00",
		"isHoliday":  true,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("holiday entry: expected 201, got %d (%v)", resp.StatusCode, env.Error)
	}

	// Summary over the period: 800 + (800 + 375 + 800) = 2775.
	resp, env = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/payroll/summary?start=2026-03-01&end=2026-03-15", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("summary: expected 200, got %d", resp.StatusCode)
	}
	var result struct {
		Rows []struct {
			EmployeeID    string  `json:"employeeId"`
			TotalRegHours float64 `json:"totalRegHours"`
			TotalOTHours  float64 `json:"totalOtHours"`
			GrandTotal    float64 `json:"grandTotal"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	found := false
	for _, row := range result.Rows {
		if row.EmployeeID != emp.EmployeeID {
			continue
		}
		found = true
		if row.TotalRegHours != 16 || row.TotalOTHours != 3 {
			t.Fatalf("expected 16/3 hours, got %v/%v", row.TotalRegHours, row.TotalOTHours)
		}
		if row.GrandTotal != 2775 {
			t.Fatalf("expected grand total 2775, got %v", row.GrandTotal)
		}
	}
	if !found {
		t.Fatalf("employee %s missing from summary", emp.EmployeeID)
	}

	// An empty period is a 200 with no rows, not an error.
	resp, env = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/payroll/summary?start=1999-01-01&end=1999-01-15", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("empty summary: expected 200, got %d", resp.StatusCode)
	}
}

func TestAdminGateJourney(t *testing.T) {
	_, ts := startApp(t)
	client := ts.Client()

	// Employee creation is admin-gated.
	resp, _ := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/employees", "", map[string]any{
		"name":      "No Auth",
		"startDate": "2025-01-01",
		"status":    "Regular",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}

	// Wrong password does not unlock.
	resp, _ = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/admin/unlock", "", map[string]string{"password": "wrong"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", resp.StatusCode)
	}
}

func TestOrdersJourney(t *testing.T) {
	_, ts := startApp(t)
	client := ts.Client()

	resp, env := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/orders", "", map[string]any{
		"customer":    "Journey Customer",
		"tier":        "Tier 2",
		"loads":       2,
		"paymentType": "GCash",
		"paid":        true,
		"supplies": []map[string]any{
			{"kind": "Detergent", "brand": "Surf", "price": 12.0},
		},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create order: expected 201, got %d (%v)", resp.StatusCode, env.Error)
	}
	var order struct {
		OrderID    string  `json:"orderId"`
		Amount     float64 `json:"amount"`
		WorkStatus string  `json:"workStatus"`
	}
	if err := json.Unmarshal(env.Data, &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if order.Amount != 312 {
		t.Fatalf("expected amount 2*150+12=312, got %v", order.Amount)
	}
	if order.WorkStatus != "WIP" {
		t.Fatalf("expected new order WIP, got %s", order.WorkStatus)
	}

	resp, _ = doJSON(t, client, http.MethodPut, ts.URL+"/api/v1/orders/"+order.OrderID+"/status", "", map[string]any{
		"paymentType":   "GCash",
		"paymentStatus": "Paid",
		"workStatus":    "Ready",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status: expected 200, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/orders/dashboard", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard: expected 200, got %d", resp.StatusCode)
	}
}

func doCSV(t *testing.T, client *http.Client, url, token, body string) (*http.Response, envelope) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "text/csv")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("POST %s: decode envelope: %v", url, err)
	}
	return resp, env
}

func TestDTRImportJourney(t *testing.T) {
	_, ts := startApp(t)
	client := ts.Client()
	token := unlockAdmin(t, client, ts.URL)

	resp, env := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/employees", token, map[string]any{
		"name":      fmt.Sprintf("Import Worker %d", os.Getpid()),
		"position":  "Attendant",
		"startDate": "2025-02-01",
		"status":    "Regular",
		"dailyRate": 800.0,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create employee: expected 201, got %d (%v)", resp.StatusCode, env.Error)
	}
	var emp struct {
		EmployeeID string `json:"employeeId"`
	}
	if err := json.Unmarshal(env.Data, &emp); err != nil {
		t.Fatalf("decode employee: %v", err)
	}

	// One clean row, then a duplicate of it, a garbage clock, and an
	// employee that was never registered.
	csvBody := "Date,Employee_ID,Time_In,Time_Out,Is_Holiday,Notes\n" +
		"2026-04-06," + emp.EmployeeID + ",08:00,17:00,false,\n" +
		"2026-04-06," + emp.EmployeeID + ",09:00,18:00,false,\n" +
		"2026-04-07," + emp.EmployeeID + ",25:99,17:00,false,\n" +
		"2026-04-07,EMP-99999,08:00,17:00,false,\n"

	resp, env = doCSV(t, client, ts.URL+"/api/v1/dtr/import", token, csvBody)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("import: expected 200, got %d (%v)", resp.StatusCode, env.Error)
	}

	var report struct {
		Inserted int `json:"inserted"`
		Errors   []struct {
			Line   int    `json:"line"`
			Reason string `json:"reason"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(env.Data, &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Inserted != 1 {
		t.Fatalf("expected 1 inserted row, got %d", report.Inserted)
	}
	if len(report.Errors) != 3 {
		t.Fatalf("expected 3 row errors, got %d: %+v", len(report.Errors), report.Errors)
	}

	wantReasons := map[int]string{
		3: "duplicate entry for employee and date",
		4: "invalid clock value",
		5: "unknown employee",
	}
	for _, rowErr := range report.Errors {
		want, ok := wantReasons[rowErr.Line]
		if !ok {
			t.Fatalf("unexpected error line %d: %+v", rowErr.Line, rowErr)
		}
		if rowErr.Reason != want {
			t.Fatalf("line %d: expected reason %q, got %q", rowErr.Line, want, rowErr.Reason)
		}
	}

	// The import stays behind the admin gate.
	resp, _ = doCSV(t, client, ts.URL+"/api/v1/dtr/import", "", csvBody)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous import: expected 401, got %d", resp.StatusCode)
	}
}
