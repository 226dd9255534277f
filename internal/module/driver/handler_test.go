package driver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jakpabi/churchbase/internal/domain"
)

// setupDriverAPI wires the driver module against an in-memory database.
func setupDriverAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&domain.Driver{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	repo, err := NewRepository(db)
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}

	r := gin.New()
	api := r.Group("/api/v1")
	NewModule(NewHandler(NewService(repo))).RegisterRoutes(api)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type driverEnvelope struct {
	Code int           `json:"code"`
	Data domain.Driver `json:"data"`
}

type driverListEnvelope struct {
	Code int             `json:"code"`
	Data []domain.Driver `json:"data"`
}

func createDriver(t *testing.T, r *gin.Engine, body string) domain.Driver {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/drivers", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create driver: status = %d; body: %s", w.Code, w.Body.String())
	}
	var env driverEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal create response: %v", err)
	}
	return env.Data
}

func listDrivers(t *testing.T, r *gin.Engine, query string) []domain.Driver {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, "/api/v1/drivers"+query, "")
	if w.Code != http.StatusOK {
		t.Fatalf("list drivers: status = %d; body: %s", w.Code, w.Body.String())
	}
	var env driverListEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal list response: %v", err)
	}
	return env.Data
}

func TestDriverCreate(t *testing.T) {
	r := setupDriverAPI(t)

	d := createDriver(t, r, `{"full_name":"Kwame Asante","license_number":"DL-1001","vehicle_number":"GR-2024-11"}`)
	if d.ID == uuid.Nil {
		t.Error("expected generated id")
	}
	if d.LicenseNumber != "DL-1001" {
		t.Errorf("license_number = %q; want DL-1001", d.LicenseNumber)
	}
}

func TestDriverCreate_DuplicateLicense(t *testing.T) {
	r := setupDriverAPI(t)

	createDriver(t, r, `{"full_name":"Kwame Asante","license_number":"DL-1001"}`)
	w := doJSON(t, r, http.MethodPost, "/api/v1/drivers",
		`{"full_name":"Other Driver","license_number":"DL-1001"}`)
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d; want %d; body: %s", w.Code, http.StatusConflict, w.Body.String())
	}
}

func TestDriverGetByLicense(t *testing.T) {
	r := setupDriverAPI(t)
	d := createDriver(t, r, `{"full_name":"Kwame Asante","license_number":"DL-1001"}`)

	w := doJSON(t, r, http.MethodGet, "/api/v1/drivers/by-license/DL-1001", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", w.Code, w.Body.String())
	}
	var env driverEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Data.ID != d.ID {
		t.Errorf("id = %s; want %s", env.Data.ID, d.ID)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/drivers/by-license/DL-9999", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown license: status = %d; want 404", w.Code)
	}
}

func TestDriverList_Paged(t *testing.T) {
	r := setupDriverAPI(t)
	for i := 1; i <= 5; i++ {
		createDriver(t, r, fmt.Sprintf(`{"full_name":"Driver %d","license_number":"DL-%d"}`, i, i))
	}

	drivers := listDrivers(t, r, "?skip=1&limit=2&order_by=license_number&order_direction=asc")
	if len(drivers) != 2 {
		t.Fatalf("len = %d; want 2", len(drivers))
	}
	if drivers[0].LicenseNumber != "DL-2" || drivers[1].LicenseNumber != "DL-3" {
		t.Errorf("page = %s,%s; want DL-2,DL-3", drivers[0].LicenseNumber, drivers[1].LicenseNumber)
	}
}

func TestDriverList_MalformedSkip(t *testing.T) {
	r := setupDriverAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/drivers?skip=abc", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want %d", w.Code, http.StatusBadRequest)
	}
}

func TestDriverList_UnknownOrderField(t *testing.T) {
	r := setupDriverAPI(t)
	createDriver(t, r, `{"full_name":"Kwame Asante","license_number":"DL-1001"}`)

	w := doJSON(t, r, http.MethodGet, "/api/v1/drivers?order_by=no_such_column", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want %d; body: %s", w.Code, http.StatusBadRequest, w.Body.String())
	}
}

func TestDriverList_EqualityFilter(t *testing.T) {
	r := setupDriverAPI(t)
	createDriver(t, r, `{"full_name":"Kwame Asante","license_number":"DL-1001","vehicle_number":"GR-2024-11"}`)
	createDriver(t, r, `{"full_name":"Abena Owusu","license_number":"DL-1002","vehicle_number":"GR-2024-12"}`)

	drivers := listDrivers(t, r, "?vehicle_number=GR-2024-12")
	if len(drivers) != 1 {
		t.Fatalf("len = %d; want 1", len(drivers))
	}
	if drivers[0].FullName != "Abena Owusu" {
		t.Errorf("driver = %q; want Abena Owusu", drivers[0].FullName)
	}
}

func TestDriverList_NameSearch(t *testing.T) {
	r := setupDriverAPI(t)
	createDriver(t, r, `{"full_name":"Kwame Asante","license_number":"DL-1001"}`)
	createDriver(t, r, `{"full_name":"Abena Owusu","license_number":"DL-1002"}`)
	createDriver(t, r, `{"full_name":"Kwame Mensah","license_number":"DL-1003"}`)

	drivers := listDrivers(t, r, "?name=kwame&order_by=license_number")
	if len(drivers) != 2 {
		t.Fatalf("len = %d; want 2", len(drivers))
	}
	for _, d := range drivers {
		if !strings.Contains(strings.ToLower(d.FullName), "kwame") {
			t.Errorf("unexpected driver %q in search result", d.FullName)
		}
	}
}

func TestDriverSoftDeleteHidesFromList(t *testing.T) {
	r := setupDriverAPI(t)
	d := createDriver(t, r, `{"full_name":"Kwame Asante","license_number":"DL-1001"}`)
	createDriver(t, r, `{"full_name":"Abena Owusu","license_number":"DL-1002"}`)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/drivers/"+d.ID.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d; body: %s", w.Code, w.Body.String())
	}

	drivers := listDrivers(t, r, "")
	if len(drivers) != 1 {
		t.Fatalf("len = %d; want 1 after soft delete", len(drivers))
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/drivers/"+d.ID.String()+"/reactivate", "")
	if w.Code != http.StatusOK {
		t.Fatalf("reactivate status = %d; body: %s", w.Code, w.Body.String())
	}
	drivers = listDrivers(t, r, "")
	if len(drivers) != 2 {
		t.Errorf("len = %d; want 2 after reactivate", len(drivers))
	}
}

func TestDriverBulkDelete(t *testing.T) {
	r := setupDriverAPI(t)
	d1 := createDriver(t, r, `{"full_name":"Kwame Asante","license_number":"DL-1001"}`)
	d2 := createDriver(t, r, `{"full_name":"Abena Owusu","license_number":"DL-1002"}`)

	body := fmt.Sprintf(`{"ids":["%s","%s"]}`, d1.ID, d2.ID)
	w := doJSON(t, r, http.MethodPost, "/api/v1/drivers/bulk-delete", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", w.Code, w.Body.String())
	}

	var env struct {
		Data BulkDeleteResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Data.Deleted != 2 {
		t.Errorf("deleted = %d; want 2", env.Data.Deleted)
	}
	if drivers := listDrivers(t, r, ""); len(drivers) != 0 {
		t.Errorf("len = %d; want 0 after bulk delete", len(drivers))
	}
}
