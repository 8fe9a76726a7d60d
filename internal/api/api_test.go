package api

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/matryer/is"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"tourmap/internal/api/controllers"
	"tourmap/internal/config"
	"tourmap/internal/infra/infratest"
	"tourmap/internal/models/db_models"
	"tourmap/internal/repositories"
	"tourmap/internal/services"
	"tourmap/pkg/media"
	"tourmap/pkg/middleware"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testServer struct {
	t         *testing.T
	db        *gorm.DB
	router    *gin.Engine
	mediaRoot string
}

func newTestServer(t *testing.T, trustForwarded bool) *testServer {
	t.Helper()

	db := infratest.NewDB(t)
	cfg := &config.Config{
		Server: config.ServerConfig{APIPrefix: "/api", AllowedOrigins: []string{"*"}},
		Media: config.MediaConfig{
			Root:                  t.TempDir(),
			URLPrefix:             "/media/",
			MaxUploadMB:           1,
			TrustForwardedHeaders: trustForwarded,
		},
	}

	uploader := services.NewUploader(media.NewLocalStorage(cfg.Media.Root), cfg.Media.MaxUploadBytes())
	linking := media.NewLinking(cfg.Media.URLPrefix, cfg.Media.TrustForwardedHeaders)

	categoryRepo := repositories.NewCategoryRepository(db)
	spotService := services.NewSpotService(
		repositories.NewSpotRepository(db),
		repositories.NewSpotImageRepository(db),
		categoryRepo,
		uploader,
	)

	ctrl := NewControllers(
		controllers.NewSpotsController(spotService, linking),
		controllers.NewRoutesController(services.NewRouteService(repositories.NewRouteRepository(db))),
		controllers.NewCategoriesController(services.NewCategoryService(categoryRepo, uploader), linking),
		controllers.NewHealthController(db),
	)

	reg := prometheus.NewRegistry()
	router := ProvideRouter(cfg, db, middleware.NewMetrics(reg, reg), ctrl)

	return &testServer{t: t, db: db, router: router, mediaRoot: cfg.Media.Root}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) json(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	return s.do(req)
}

func (s *testServer) upload(method, path string, fields map[string]string, fileField, fileName string, content []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, fileName)
		if err != nil {
			s.t.Fatal(err)
		}
		_, _ = fw.Write(content)
	}
	_ = mw.Close()

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return s.do(req)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json %q: %v", w.Body.String(), err)
	}
	return body
}

func fieldErrors(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	errs, _ := decode(t, w)["errors"].(map[string]any)
	return errs
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestCreateAndGetCategory(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	w := s.json(http.MethodPost, "/api/categories/", `{"name": "Beach"}`)
	is.Equal(w.Code, http.StatusCreated)
	is.Equal(w.Body.String(), `{"id":1,"name":"Beach","icon_url":null}`)

	w = s.json(http.MethodGet, "/api/categories/1/", "")
	is.Equal(w.Code, http.StatusOK)
	is.Equal(w.Body.String(), `{"id":1,"name":"Beach","icon_url":null}`)
}

func TestDuplicateCategoryNameIsRejected(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	is.Equal(s.json(http.MethodPost, "/api/categories/", `{"name": "Beach"}`).Code, http.StatusCreated)

	w := s.json(http.MethodPost, "/api/categories/", `{"name": "Beach"}`)
	is.Equal(w.Code, http.StatusBadRequest)
	is.Equal(fieldErrors(t, w)["name"], []any{"category with this name already exists."})

	w = s.json(http.MethodGet, "/api/categories/", "")
	is.Equal(w.Code, http.StatusOK)
	is.Equal(w.Body.String(), `[{"id":1,"name":"Beach","icon_url":null}]`)
}

func TestRenamingCategoryToItsOwnNameIsAllowed(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	s.json(http.MethodPost, "/api/categories/", `{"name": "Beach"}`)
	s.json(http.MethodPost, "/api/categories/", `{"name": "Museum"}`)

	w := s.json(http.MethodPut, "/api/categories/1/", `{"name": "Beach"}`)
	is.Equal(w.Code, http.StatusOK)

	w = s.json(http.MethodPatch, "/api/categories/1/", `{"name": "Museum"}`)
	is.Equal(w.Code, http.StatusBadRequest)
	is.True(fieldErrors(t, w)["name"] != nil)
}

func TestDeletingCategoryKeepsItsSpots(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	s.json(http.MethodPost, "/api/categories/", `{"name": "Beach"}`)
	w := s.json(http.MethodPost, "/api/spots/", `{"name":"Cove","lat":1.5,"lng":2.5,"description":"Sandy","category_id":1}`)
	is.Equal(w.Code, http.StatusCreated)
	is.Equal(decode(t, w)["category"].(map[string]any)["name"], "Beach")

	w = s.json(http.MethodDelete, "/api/categories/1/", "")
	is.Equal(w.Code, http.StatusNoContent)
	is.Equal(w.Body.Len(), 0)

	w = s.json(http.MethodGet, "/api/spots/1/", "")
	is.Equal(w.Code, http.StatusOK)
	body := decode(t, w)
	is.Equal(body["name"], "Cove")
	is.Equal(body["category"], nil)

	var spot db_models.Spot
	is.NoErr(s.db.First(&spot, 1).Error)
	is.Equal(spot.CategoryID, nil)
}

func TestDeletingSpotDeletesItsImages(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	s.json(http.MethodPost, "/api/spots/", `{"name":"Cove","lat":1,"lng":2,"description":"Sandy"}`)

	w := s.upload(http.MethodPost, "/api/spots/1/images/", map[string]string{"caption": "Sunset"}, "image", "sunset.png", pngBytes(t))
	is.Equal(w.Code, http.StatusCreated)
	is.Equal(decode(t, w)["caption"], "Sunset")

	w = s.upload(http.MethodPost, "/api/spots/1/images/", nil, "image", "noon.png", pngBytes(t))
	is.Equal(w.Code, http.StatusCreated)
	is.Equal(decode(t, w)["caption"], nil)

	w = s.json(http.MethodGet, "/api/spots/1/", "")
	images := decode(t, w)["images"].([]any)
	is.Equal(len(images), 2)
	is.Equal(images[0].(map[string]any)["image_url"], "http://example.com/media/spot_images/sunset.png")

	is.Equal(s.json(http.MethodDelete, "/api/spots/1/", "").Code, http.StatusNoContent)

	var count int64
	is.NoErr(s.db.Model(&db_models.SpotImage{}).Count(&count).Error)
	is.Equal(count, int64(0))

	is.Equal(s.json(http.MethodGet, "/api/spots/1/", "").Code, http.StatusNotFound)
}

func TestSpotImageLifecycle(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	s.json(http.MethodPost, "/api/spots/", `{"name":"Cove","lat":1,"lng":2,"description":"Sandy"}`)
	s.upload(http.MethodPost, "/api/spots/1/images/", nil, "image", "a.png", pngBytes(t))

	w := s.json(http.MethodGet, "/api/spots/1/images/", "")
	is.Equal(w.Code, http.StatusOK)
	is.True(strings.Contains(w.Body.String(), `"image_url":"http://example.com/media/spot_images/a.png"`))

	_, err := os.Stat(filepath.Join(s.mediaRoot, "spot_images", "a.png"))
	is.NoErr(err)

	is.Equal(s.json(http.MethodDelete, "/api/spots/1/images/1/", "").Code, http.StatusNoContent)
	is.Equal(s.json(http.MethodDelete, "/api/spots/1/images/1/", "").Code, http.StatusNotFound)
	is.Equal(s.json(http.MethodGet, "/api/spots/1/images/", "").Body.String(), `[]`)
}

func TestCreateSpotWithoutLatFails(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	w := s.json(http.MethodPost, "/api/spots/", `{"name":"Cove","lng":2,"description":"Sandy"}`)
	is.Equal(w.Code, http.StatusBadRequest)

	errs := fieldErrors(t, w)
	is.Equal(errs["lat"], []any{"This field is required."})
	is.Equal(len(errs), 1)
}

func TestCreateSpotWithEmptyBodyListsRequiredFields(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	w := s.json(http.MethodPost, "/api/spots/", "")
	is.Equal(w.Code, http.StatusBadRequest)

	errs := fieldErrors(t, w)
	for _, field := range []string{"name", "lat", "lng", "description"} {
		is.Equal(errs[field], []any{"This field is required."})
	}
}

func TestSpotFieldTypeErrors(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	w := s.json(http.MethodPost, "/api/spots/", `{"name":"Cove","lat":"abc","lng":2,"description":"Sandy"}`)
	is.Equal(w.Code, http.StatusBadRequest)
	is.Equal(fieldErrors(t, w)["lat"], []any{"A valid number is required."})

	w = s.json(http.MethodPost, "/api/spots/", `{"name":"   ","lat":1,"lng":2,"description":"Sandy"}`)
	is.Equal(w.Code, http.StatusBadRequest)
	is.Equal(fieldErrors(t, w)["name"], []any{"This field may not be blank."})

	w = s.json(http.MethodPost, "/api/spots/", `{"name":`)
	is.Equal(w.Code, http.StatusBadRequest)
	is.True(fieldErrors(t, w)["non_field_errors"] != nil)
}

func TestSpotRoundTrip(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	w := s.json(http.MethodPost, "/api/spots/", `{"name":"Old Town","lat":48.1371,"lng":11.5754,"description":"Historic centre"}`)
	is.Equal(w.Code, http.StatusCreated)

	w = s.json(http.MethodGet, "/api/spots/1/", "")
	is.Equal(w.Code, http.StatusOK)
	is.Equal(w.Body.String(), `{"id":1,"name":"Old Town","lat":48.1371,"lng":11.5754,"description":"Historic centre","category":null,"images":[]}`)
}

func TestPatchSpotKeepsOtherFields(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	s.json(http.MethodPost, "/api/spots/", `{"name":"Cove","lat":1.5,"lng":2.5,"description":"Sandy"}`)

	w := s.json(http.MethodPatch, "/api/spots/1/", `{"name": "x"}`)
	is.Equal(w.Code, http.StatusOK)

	body := decode(t, w)
	is.Equal(body["name"], "x")
	is.Equal(body["lat"], 1.5)
	is.Equal(body["lng"], 2.5)
	is.Equal(body["description"], "Sandy")
}

func TestPatchSpotRejectsNullOnRequiredFields(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	s.json(http.MethodPost, "/api/spots/", `{"name":"Cove","lat":1.5,"lng":2.5,"description":"Sandy"}`)

	w := s.json(http.MethodPatch, "/api/spots/1/", `{"lat":null}`)
	is.Equal(w.Code, http.StatusBadRequest)
	is.Equal(fieldErrors(t, w)["lat"], []any{"This field may not be null."})

	w = s.json(http.MethodPatch, "/api/spots/1/", `{"name":null,"lng":null,"description":null,"category_id":null}`)
	is.Equal(w.Code, http.StatusBadRequest)
	errs := fieldErrors(t, w)
	is.Equal(len(errs), 3)
	is.Equal(errs["name"], []any{"This field may not be null."})
	is.Equal(errs["lng"], []any{"This field may not be null."})
	is.Equal(errs["description"], []any{"This field may not be null."})

	w = s.json(http.MethodPut, "/api/spots/1/", `{"name":"Cove","lat":null,"lng":2.5,"description":"Sandy"}`)
	is.Equal(w.Code, http.StatusBadRequest)
	is.Equal(fieldErrors(t, w)["lat"], []any{"This field may not be null."})

	body := decode(t, s.json(http.MethodGet, "/api/spots/1/", ""))
	is.Equal(body["lat"], 1.5)
	is.Equal(body["name"], "Cove")
}

func TestNullNamesAreRejected(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	s.json(http.MethodPost, "/api/routes/", `{"name":"Trail A","coordinates":[[1,2]]}`)
	s.json(http.MethodPost, "/api/categories/", `{"name":"Beaches"}`)

	w := s.json(http.MethodPatch, "/api/routes/1/", `{"name":null}`)
	is.Equal(w.Code, http.StatusBadRequest)
	is.Equal(fieldErrors(t, w)["name"], []any{"This field may not be null."})

	w = s.json(http.MethodPatch, "/api/categories/1/", `{"name":null}`)
	is.Equal(w.Code, http.StatusBadRequest)
	is.Equal(fieldErrors(t, w)["name"], []any{"This field may not be null."})

	w = s.json(http.MethodPatch, "/api/categories/1/", `{"icon":null}`)
	is.Equal(w.Code, http.StatusOK)
	is.Equal(decode(t, w)["name"], "Beaches")
}

func TestPutSpotRequiresAllFields(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	s.json(http.MethodPost, "/api/spots/", `{"name":"Cove","lat":1.5,"lng":2.5,"description":"Sandy"}`)

	w := s.json(http.MethodPut, "/api/spots/1/", `{"name":"Cove","lat":1.5,"lng":2.5}`)
	is.Equal(w.Code, http.StatusBadRequest)
	is.Equal(fieldErrors(t, w)["description"], []any{"This field is required."})

	w = s.json(http.MethodPut, "/api/spots/1/", `{"name":"Bay","lat":0,"lng":0,"description":"Rocky"}`)
	is.Equal(w.Code, http.StatusOK)
	is.Equal(decode(t, w)["lat"], 0.0)
}

func TestSpotCategoryAssignment(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	w := s.json(http.MethodPost, "/api/spots/", `{"name":"Cove","lat":1,"lng":2,"description":"Sandy","category_id":42}`)
	is.Equal(w.Code, http.StatusBadRequest)
	is.Equal(fieldErrors(t, w)["category_id"], []any{`Invalid pk "42" - object does not exist.`})

	var count int64
	is.NoErr(s.db.Model(&db_models.Spot{}).Count(&count).Error)
	is.Equal(count, int64(0))

	s.json(http.MethodPost, "/api/categories/", `{"name":"Beach"}`)
	s.json(http.MethodPost, "/api/spots/", `{"name":"Cove","lat":1,"lng":2,"description":"Sandy"}`)

	w = s.json(http.MethodPatch, "/api/spots/1/", `{"category_id":1}`)
	is.Equal(w.Code, http.StatusOK)
	is.Equal(decode(t, w)["category"].(map[string]any)["id"], 1.0)

	w = s.json(http.MethodPatch, "/api/spots/1/", `{"category_id":null}`)
	is.Equal(w.Code, http.StatusOK)
	is.Equal(decode(t, w)["category"], nil)

	w = s.json(http.MethodPatch, "/api/spots/1/", `{"category_id":"one"}`)
	is.Equal(w.Code, http.StatusBadRequest)
	is.Equal(fieldErrors(t, w)["category_id"], []any{"A valid integer is required."})
}

func TestUploadingNonImageFails(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	s.json(http.MethodPost, "/api/spots/", `{"name":"Cove","lat":1,"lng":2,"description":"Sandy"}`)

	w := s.upload(http.MethodPost, "/api/spots/1/images/", nil, "image", "notes.txt", []byte("just some text"))
	is.Equal(w.Code, http.StatusBadRequest)
	is.True(fieldErrors(t, w)["image"] != nil)

	w = s.upload(http.MethodPost, "/api/spots/1/images/", map[string]string{"caption": "x"}, "", "", nil)
	is.Equal(w.Code, http.StatusBadRequest)
	is.Equal(fieldErrors(t, w)["image"], []any{"No file was submitted."})

	w = s.upload(http.MethodPost, "/api/spots/9/images/", nil, "image", "a.png", pngBytes(t))
	is.Equal(w.Code, http.StatusNotFound)
}

func TestOversizedUploadIsRejected(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	s.json(http.MethodPost, "/api/spots/", `{"name":"Cove","lat":1,"lng":2,"description":"Sandy"}`)

	big := bytes.Repeat([]byte{0}, 3<<20)
	w := s.upload(http.MethodPost, "/api/spots/1/images/", nil, "image", "big.png", big)
	is.Equal(w.Code, http.StatusRequestEntityTooLarge)

	w = s.upload(http.MethodPost, "/api/categories/", map[string]string{"name": "Beaches"}, "icon", "big.png", big)
	is.Equal(w.Code, http.StatusRequestEntityTooLarge)

	is.Equal(s.json(http.MethodGet, "/api/spots/1/images/", "").Body.String(), `[]`)
	is.Equal(s.json(http.MethodGet, "/api/categories/", "").Body.String(), `[]`)
}

func TestUnknownIDsAreNotFound(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	for _, path := range []string{"/api/spots/7/", "/api/routes/7/", "/api/categories/7/", "/api/spots/abc/", "/api/routes/-1/"} {
		is.Equal(s.json(http.MethodGet, path, "").Code, http.StatusNotFound)
		is.Equal(s.json(http.MethodDelete, path, "").Code, http.StatusNotFound)
	}

	is.Equal(s.json(http.MethodPatch, "/api/spots/7/", `{"name":"x"}`).Code, http.StatusNotFound)
	is.Equal(s.json(http.MethodGet, "/api/nothing/", "").Code, http.StatusNotFound)
}

func TestCategoryIconURLs(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	w := s.upload(http.MethodPost, "/api/categories/", map[string]string{"name": "Beach"}, "icon", "beach icon.png", pngBytes(t))
	is.Equal(w.Code, http.StatusCreated)

	w = s.json(http.MethodGet, "/api/categories/", "")
	is.Equal(w.Code, http.StatusOK)

	var list []map[string]any
	is.NoErr(json.Unmarshal(w.Body.Bytes(), &list))
	is.Equal(len(list), 1)
	is.Equal(list[0]["icon_url"], "http://example.com/media/category_icons/beach_icon.png")

	w = s.do(httptest.NewRequest(http.MethodGet, "/media/category_icons/beach_icon.png", nil))
	is.Equal(w.Code, http.StatusOK)

	req := httptest.NewRequest(http.MethodGet, "/api/categories/1/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	is.Equal(decode(t, s.do(req))["icon_url"], "http://example.com/media/category_icons/beach_icon.png")

	w = s.upload(http.MethodPatch, "/api/categories/1/", map[string]string{"icon": ""}, "", "", nil)
	is.Equal(w.Code, http.StatusOK)
	is.Equal(decode(t, w)["icon_url"], nil)
}

func TestForwardedHeadersWhenTrusted(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, true)

	s.upload(http.MethodPost, "/api/categories/", map[string]string{"name": "Beach"}, "icon", "b.png", pngBytes(t))

	req := httptest.NewRequest(http.MethodGet, "/api/categories/1/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	req.Header.Set("X-Forwarded-Host", "maps.example.org")
	is.Equal(decode(t, s.do(req))["icon_url"], "https://maps.example.org/media/category_icons/b.png")
}

func TestCategoryIconMustBeAnImage(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	w := s.upload(http.MethodPost, "/api/categories/", map[string]string{"name": "Beach"}, "icon", "b.png", []byte("not a png"))
	is.Equal(w.Code, http.StatusBadRequest)
	is.True(fieldErrors(t, w)["icon"] != nil)

	w = s.json(http.MethodPost, "/api/categories/", `{"name":"Beach","icon":"b.png"}`)
	is.Equal(w.Code, http.StatusBadRequest)
	is.True(fieldErrors(t, w)["icon"] != nil)

	is.Equal(s.json(http.MethodGet, "/api/categories/", "").Body.String(), `[]`)
}

func TestRouteCoordinatesAreEchoedVerbatim(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	w := s.json(http.MethodPost, "/api/routes/", `{"name":"Trail A","coordinates":[[1.0,2.0],[1.1,2.1]]}`)
	is.Equal(w.Code, http.StatusCreated)
	is.Equal(w.Body.String(), `{"id":1,"name":"Trail A","coordinates":[[1.0,2.0],[1.1,2.1]]}`)

	w = s.json(http.MethodGet, "/api/routes/1/", "")
	is.Equal(w.Code, http.StatusOK)
	is.Equal(w.Body.String(), `{"id":1,"name":"Trail A","coordinates":[[1.0,2.0],[1.1,2.1]]}`)
}

func TestRouteCoordinatesValidation(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	w := s.json(http.MethodPost, "/api/routes/", `{"name":"Trail A"}`)
	is.Equal(w.Code, http.StatusBadRequest)
	is.Equal(fieldErrors(t, w)["coordinates"], []any{"This field is required."})

	w = s.json(http.MethodPost, "/api/routes/", `{"name":"Trail A","coordinates":null}`)
	is.Equal(w.Code, http.StatusBadRequest)
	is.Equal(fieldErrors(t, w)["coordinates"], []any{"This field may not be null."})

	w = s.json(http.MethodPost, "/api/routes/", `{"name":"Loose","coordinates":{"a":1}}`)
	is.Equal(w.Code, http.StatusCreated)
	is.Equal(w.Body.String(), `{"id":1,"name":"Loose","coordinates":{"a":1}}`)

	w = s.json(http.MethodPatch, "/api/routes/1/", `{"name":"Renamed"}`)
	is.Equal(w.Code, http.StatusOK)
	is.Equal(w.Body.String(), `{"id":1,"name":"Renamed","coordinates":{"a":1}}`)

	is.Equal(s.json(http.MethodDelete, "/api/routes/1/", "").Code, http.StatusNoContent)
	is.Equal(s.json(http.MethodGet, "/api/routes/", "").Body.String(), `[]`)
}

func TestAmbientEndpoints(t *testing.T) {
	is := is.New(t)
	s := newTestServer(t, false)

	is.Equal(s.json(http.MethodGet, "/healthz", "").Code, http.StatusOK)

	s.json(http.MethodGet, "/api/spots/", "")
	w := s.json(http.MethodGet, "/metrics", "")
	is.Equal(w.Code, http.StatusOK)
	is.True(strings.Contains(w.Body.String(), "tourmap_http_requests_total"))

	req := httptest.NewRequest(http.MethodOptions, "/api/spots/", nil)
	req.Header.Set("Origin", "http://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = s.do(req)
	is.Equal(w.Code, http.StatusNoContent)
	is.Equal(w.Header().Get("Access-Control-Allow-Origin"), "*")

	w = s.json(http.MethodGet, "/api/spots/", "")
	is.True(w.Header().Get(middleware.TraceIDHeader) != "")
}
