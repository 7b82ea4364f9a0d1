package httpapi

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"priced/pkg/types"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = func() map[string]*template.Template {
	pages := []string{"index.html", "load_model.html", "predict.html", "model_info.html", "error.html"}
	out := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		out[p] = template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/"+p))
	}
	return out
}()

// pageData is the view model shared by all HTML pages.
type pageData struct {
	Title         string
	ModelLoaded   bool
	ModelInfo     *types.ModelInfo
	ModelMetadata *types.ModelMetadata
	Models        []types.ModelFile
	Result        *types.PredictionResult
	Flash         string
	ErrorCode     int
	ErrorMessage  string
}

// mountPages registers the server-rendered HTML surface.
func mountPages(r chi.Router, svc Service, reg Registry) {
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		renderPage(w, http.StatusOK, "index.html", pageData{
			Title:       "Home",
			ModelLoaded: svc.Ready(),
			ModelInfo:   svc.Info(),
		})
	})

	r.Get("/load_model", func(w http.ResponseWriter, req *http.Request) {
		renderPage(w, http.StatusOK, "load_model.html", pageData{
			Title:       "Load Model",
			ModelLoaded: svc.Ready(),
			ModelInfo:   svc.Info(),
			Models:      reg.Models(),
		})
	})

	r.Get("/predict", func(w http.ResponseWriter, req *http.Request) {
		renderPage(w, http.StatusOK, "predict.html", pageData{
			Title:       "Predict",
			ModelLoaded: svc.Ready(),
			ModelInfo:   svc.Info(),
		})
	})

	r.Post("/predict", func(w http.ResponseWriter, req *http.Request) {
		data := pageData{
			Title:       "Predict",
			ModelLoaded: svc.Ready(),
			ModelInfo:   svc.Info(),
		}
		sqft, err1 := strconv.ParseFloat(req.FormValue("square_footage"), 64)
		beds, err2 := strconv.ParseFloat(req.FormValue("bedrooms"), 64)
		baths, err3 := strconv.ParseFloat(req.FormValue("total_bathrooms"), 64)
		if err1 != nil || err2 != nil || err3 != nil {
			data.Flash = "Please enter valid numbers for all fields."
			renderPage(w, http.StatusOK, "predict.html", data)
			return
		}
		result, err := svc.Predict(sqft, beds, baths)
		if err != nil {
			data.Flash = "Error: " + err.Error()
			renderPage(w, http.StatusOK, "predict.html", data)
			return
		}
		ObservePrediction(result.Confidence)
		data.Result = result
		renderPage(w, http.StatusOK, "predict.html", data)
	})

	r.Get("/model_info", func(w http.ResponseWriter, req *http.Request) {
		renderPage(w, http.StatusOK, "model_info.html", pageData{
			Title:         "Model Info",
			ModelLoaded:   svc.Ready(),
			ModelInfo:     svc.Info(),
			ModelMetadata: svc.Metadata(),
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		renderPage(w, http.StatusNotFound, "error.html", pageData{
			Title:        "Error",
			ErrorCode:    http.StatusNotFound,
			ErrorMessage: "Page not found",
		})
	})
}

// renderPage executes the template into a buffer first so a render failure
// never produces a half-written 200 response.
func renderPage(w http.ResponseWriter, status int, page string, data pageData) {
	tpl, ok := pageTemplates[page]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
