package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"cineavis/internal/handlers"
	"cineavis/internal/middleware"
	"cineavis/internal/models"
	"cineavis/internal/router"
	"cineavis/internal/services"
	"cineavis/internal/store"
)

func newTestApp(t *testing.T, apiURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	os.Setenv("MOVIE_API_URL", apiURL)

	r := gin.New()
	r.Use(sessions.Sessions("cineavis_session", cookie.NewStore([]byte("test-secret"))))
	r.HTMLRender = router.LoadTemplates("../../web/templates")
	r.Use(middleware.Visitor())

	movieHandler := handlers.NewMovieHandler(services.NewMovieFetcher(), store.NewCommentStore())
	router.RegisterRoutes(r, movieHandler)
	return r
}

// client replays the session cookie across requests, like a browser would.
type client struct {
	app     *gin.Engine
	cookies []*http.Cookie
}

func (cl *client) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range cl.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	cl.app.ServeHTTP(w, req)
	cl.cookies = append(cl.cookies, w.Result().Cookies()...)
	return w
}

func movieServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Movie{
			{
				PosterPath:    "/x.jpg",
				OriginalTitle: "Test Movie",
				ReleaseDate:   "2020-01-15",
				Overview:      "Un film de test.",
				VoteAverage:   7.5,
				VoteCount:     100,
			},
		})
	}))
}

func validForm() string {
	form := url.Values{}
	form.Set("comment", "Great film")
	form.Set("note", "4")
	form.Set("accept_conditions", "on")
	return form.Encode()
}

func TestShowRendersMovieCard(t *testing.T) {
	server := movieServer(t)
	defer server.Close()
	cl := &client{app: newTestApp(t, server.URL)}

	w := cl.do("GET", "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Test Movie", "/x.jpg", "7.5", "100", "15/01/2020", "Un film de test."} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected the page to contain %q", want)
		}
	}
	if !strings.Contains(body, "Aucun commentaire pour le moment") {
		t.Error("Expected the empty-list placeholder")
	}
}

func TestShowFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}))
	defer server.Close()
	cl := &client{app: newTestApp(t, server.URL)}

	w := cl.do("GET", "/", "")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("Expected 502, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "500") || !strings.Contains(body, "Internal error") {
		t.Errorf("Expected the banner to embed status and body, got %s", body)
	}
	if strings.Count(body, "banner-error") != 1 {
		t.Errorf("Expected exactly one error banner")
	}
	if strings.Contains(body, "movie-card") {
		t.Error("Expected the movie card to be suppressed on failure")
	}
}

func TestCreateComment(t *testing.T) {
	server := movieServer(t)
	defer server.Close()
	cl := &client{app: newTestApp(t, server.URL)}

	cl.do("GET", "/", "")
	w := cl.do("POST", "/commentaires", validForm())
	if w.Code != http.StatusFound {
		t.Fatalf("Expected a redirect, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/film" {
		t.Fatalf("Expected a redirect to /film, got %q", loc)
	}

	w = cl.do("GET", "/film", "")
	body := w.Body.String()
	if !strings.Contains(body, "Great film") {
		t.Error("Expected the new comment in the list")
	}
	if !strings.Contains(body, "★★★★☆") {
		t.Error("Expected a four-star rating in the list")
	}
	// The form is pristine again after a successful submission.
	if !strings.Contains(body, "></textarea>") {
		t.Error("Expected the textarea to be cleared")
	}
	if strings.Contains(body, "selected") {
		t.Error("Expected the note selector to be reset")
	}
	// Still the same movie, no refetch side effects visible.
	if !strings.Contains(body, "Test Movie") {
		t.Error("Expected the active movie to survive the submission")
	}
}

func TestCreateCommentRejectedWithoutConsent(t *testing.T) {
	server := movieServer(t)
	defer server.Close()
	cl := &client{app: newTestApp(t, server.URL)}

	cl.do("GET", "/", "")

	form := url.Values{}
	form.Set("comment", "Great film")
	form.Set("note", "4")
	w := cl.do("POST", "/commentaires", form.Encode())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Vous devez accepter les conditions générales.") {
		t.Error("Expected the consent error under the checkbox")
	}
	for _, other := range []string{"Veuillez renseigner", "La note"} {
		if strings.Contains(body, other) {
			t.Errorf("Expected no error on the other fields, found %q", other)
		}
	}
	if !strings.Contains(body, "Aucun commentaire pour le moment") {
		t.Error("Expected the comment list to be unchanged")
	}
	// Submitted values stay in place for correction.
	if !strings.Contains(body, ">Great film</textarea>") {
		t.Error("Expected the comment text to stay in the form")
	}
}

func TestDeleteComment(t *testing.T) {
	server := movieServer(t)
	defer server.Close()
	cl := &client{app: newTestApp(t, server.URL)}

	cl.do("GET", "/", "")
	cl.do("POST", "/commentaires", validForm())

	w := cl.do("GET", "/film", "")
	re := regexp.MustCompile(`/commentaires/(\d+)/supprimer`)
	match := re.FindString(w.Body.String())
	if match == "" {
		t.Fatal("Expected a delete action in the rendered list")
	}

	w = cl.do("POST", match, "")
	if w.Code != http.StatusFound {
		t.Fatalf("Expected a redirect after delete, got %d", w.Code)
	}

	w = cl.do("GET", "/film", "")
	if !strings.Contains(w.Body.String(), "Aucun commentaire pour le moment") {
		t.Error("Expected the list to be empty after delete")
	}
}

func TestPostWithoutActiveMovieRedirectsHome(t *testing.T) {
	server := movieServer(t)
	defer server.Close()
	cl := &client{app: newTestApp(t, server.URL)}

	w := cl.do("POST", "/commentaires", validForm())
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/" {
		t.Errorf("Expected a redirect to /, got %d %q", w.Code, w.Header().Get("Location"))
	}
}
