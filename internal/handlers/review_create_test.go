package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/JarodCode/gamevault/internal/jwt"
	"github.com/JarodCode/gamevault/internal/middlewares"
	"github.com/JarodCode/gamevault/internal/models"
	"github.com/JarodCode/gamevault/internal/services"
)

// authedRouter mounts a handler behind the auth middleware with a tokener
// that always resolves to the given claims.
func authedRouter(ctrl *gomock.Controller, method, pattern string, claims *jwt.Claims, handler http.HandlerFunc) chi.Router {
	tokener := middlewares.NewMockTokener(ctrl)
	tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil).AnyTimes()
	tokener.EXPECT().VerifyToken(gomock.Any(), "token").Return(claims, nil).AnyTimes()

	r := chi.NewRouter()
	r.With(middlewares.AuthMiddleware(tokener)).Method(method, pattern, handler)
	return r
}

func TestReviewCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := &jwt.Claims{UserID: "u1", Username: "alice"}

	tests := []struct {
		name          string
		reqBody       ReviewRequest
		mockSetup     func(m *MockReviewUpserter)
		expectedCode  int
		expectedError string
	}{
		{
			name:    "created",
			reqBody: ReviewRequest{Rating: 5, Content: "great"},
			mockSetup: func(m *MockReviewUpserter) {
				m.EXPECT().
					UpsertReview(gomock.Any(), "42", "u1", 5.0, "great").
					Return(&models.Review{ID: "r1", GameID: "42", UserID: "u1", Rating: 5}, true, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:    "updated",
			reqBody: ReviewRequest{Rating: 3, Content: "revised"},
			mockSetup: func(m *MockReviewUpserter) {
				m.EXPECT().
					UpsertReview(gomock.Any(), "42", "u1", 3.0, "revised").
					Return(&models.Review{ID: "r1", GameID: "42", UserID: "u1", Rating: 3}, false, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "invalid rating",
			reqBody: ReviewRequest{Rating: 9, Content: "x"},
			mockSetup: func(m *MockReviewUpserter) {
				m.EXPECT().
					UpsertReview(gomock.Any(), "42", "u1", 9.0, "x").
					Return(nil, false, services.ErrInvalidReview)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Rating must be between 1 and 5 and content must not be empty",
		},
		{
			name:    "user vanished",
			reqBody: ReviewRequest{Rating: 4, Content: "fine"},
			mockSetup: func(m *MockReviewUpserter) {
				m.EXPECT().
					UpsertReview(gomock.Any(), "42", "u1", 4.0, "fine").
					Return(nil, false, services.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "User not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockReviewUpserter(ctrl)
			tt.mockSetup(mockSvc)

			router := authedRouter(ctrl, http.MethodPost, "/api/games/{id}/reviews",
				claims, NewReviewCreateHandler(mockSvc))

			bodyBytes, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPost, "/api/games/42/reviews", bytes.NewBuffer(bodyBytes))
			req.Header.Set("Authorization", "Bearer token")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var review models.Review
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &review))
			assert.Equal(t, "r1", review.ID)
			assert.Equal(t, "42", review.GameID)
		})
	}
}

func TestReviewCreateHandler_NoClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Handler hit directly, without the auth middleware in front.
	handler := NewReviewCreateHandler(NewMockReviewUpserter(ctrl))

	bodyBytes, _ := json.Marshal(ReviewRequest{Rating: 5, Content: "great"})
	req := httptest.NewRequest(http.MethodPost, "/api/games/42/reviews", bytes.NewBuffer(bodyBytes))
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
