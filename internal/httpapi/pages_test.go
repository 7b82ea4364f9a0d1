package httpapi

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"priced/pkg/types"
)

func getPage(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestIndexPage_NoModel(t *testing.T) {
	r := NewMux(&mockService{}, &mockRegistry{})
	w := getPage(t, r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "no model loaded") {
		t.Fatalf("expected no-model banner, body=%s", w.Body.String())
	}
}

func TestIndexPage_WithModel(t *testing.T) {
	svc := &mockService{info: &types.ModelInfo{ModelPath: "saved_models/m.json", ModelType: "LinearRegression"}}
	r := NewMux(svc, &mockRegistry{})
	w := getPage(t, r, "/")
	if !strings.Contains(w.Body.String(), "saved_models/m.json") {
		t.Fatalf("expected model path on page, body=%s", w.Body.String())
	}
}

func TestLoadModelPage_ListsArtifacts(t *testing.T) {
	reg := &mockRegistry{models: []types.ModelFile{{Filename: "a.json", Size: 42, Modified: "2026-08-29 10:00:00"}}}
	r := NewMux(&mockService{}, reg)
	w := getPage(t, r, "/load_model")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "a.json") {
		t.Fatalf("artifact missing from page, body=%s", w.Body.String())
	}
}

func TestPredictPage_PostRendersResult(t *testing.T) {
	svc := &mockService{
		info: &types.ModelInfo{ModelPath: "m.json"},
		result: &types.PredictionResult{
			PredictedPrice: 390000,
			FormattedPrice: "$390,000.00",
			Confidence:     "High",
			Inputs:         types.PredictionInputs{SquareFootage: 2000, Bedrooms: 3, TotalBathrooms: 2},
		},
	}
	r := NewMux(svc, &mockRegistry{})
	w := postForm(t, r, "/predict", url.Values{
		"square_footage":  {"2000"},
		"bedrooms":        {"3"},
		"total_bathrooms": {"2"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "$390,000.00") {
		t.Fatalf("result missing from page, body=%s", w.Body.String())
	}
}

func TestPredictPage_PostInvalidNumbersFlashes(t *testing.T) {
	r := NewMux(&mockService{}, &mockRegistry{})
	w := postForm(t, r, "/predict", url.Values{
		"square_footage":  {"abc"},
		"bedrooms":        {"3"},
		"total_bathrooms": {"2"},
	})
	if !strings.Contains(w.Body.String(), "Please enter valid numbers") {
		t.Fatalf("flash missing, body=%s", w.Body.String())
	}
}

func TestPredictPage_PostServiceErrorFlashes(t *testing.T) {
	svc := &mockService{predErr: mockHTTPError{msg: "all values must be positive numbers", code: http.StatusBadRequest}}
	r := NewMux(svc, &mockRegistry{})
	w := postForm(t, r, "/predict", url.Values{
		"square_footage":  {"-5"},
		"bedrooms":        {"3"},
		"total_bathrooms": {"2"},
	})
	if !strings.Contains(w.Body.String(), "all values must be positive") {
		t.Fatalf("flash missing, body=%s", w.Body.String())
	}
}

func TestModelInfoPage_ShowsStats(t *testing.T) {
	r2 := 0.87
	svc := &mockService{
		info: &types.ModelInfo{ModelPath: "m.json", Features: []string{"Square_Footage", "Bedrooms", "Total_Bathrooms"}, R2Score: &r2},
		metadata: &types.ModelMetadata{FeatureRanges: map[string]types.FeatureStats{
			"Square_Footage": {Min: 500, Max: 6000, Mean: 2000, Std: 500},
		}},
	}
	r := NewMux(svc, &mockRegistry{})
	w := getPage(t, r, "/model_info")
	body := w.Body.String()
	if !strings.Contains(body, "Square_Footage") || !strings.Contains(body, "2000") {
		t.Fatalf("stats missing from page, body=%s", body)
	}
}

func TestUnknownPathRenders404Page(t *testing.T) {
	r := NewMux(&mockService{}, &mockRegistry{})
	w := getPage(t, r, "/definitely-not-a-page")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Page not found") {
		t.Fatalf("error page missing, body=%s", w.Body.String())
	}
}
