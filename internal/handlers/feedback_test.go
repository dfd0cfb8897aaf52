package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kanestar/greener/internal/models"
	"github.com/Kanestar/greener/internal/service"
)

func TestFeedbackHandlers(t *testing.T) {
	fb := &mockFeedback{
		listResp:   []models.Feedback{{ID: 2, Username: "Mike Chen"}, {ID: 1, Username: "Sarah Johnson"}},
		createResp: models.Feedback{ID: 3, Username: "Alex Rivera", Message: "More benches please"},
		likeResp:   models.Feedback{ID: 1, Likes: 13},
	}
	r := newTestRouter(&service.Service{Feedback: fb})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/feedback", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list status=%d", w.Code)
	}
	var list []models.Feedback
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || len(list) != 2 {
		t.Fatalf("unexpected list: %s (err=%v)", w.Body.String(), err)
	}

	body := bytes.NewBufferString(`{"parkId":1,"username":"Alex Rivera","message":"More benches please"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", body)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status=%d body=%s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/feedback/1/like", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("like status=%d", w.Code)
	}
	var liked models.Feedback
	if err := json.Unmarshal(w.Body.Bytes(), &liked); err != nil || liked.Likes != 13 {
		t.Fatalf("unexpected like body: %s (err=%v)", w.Body.String(), err)
	}
}

func TestLikeFeedback_MissingIs404(t *testing.T) {
	fb := &mockFeedback{likeErr: service.ErrFeedbackNotFound}
	r := newTestRouter(&service.Service{Feedback: fb})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/feedback/9/like", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
