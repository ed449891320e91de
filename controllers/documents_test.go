package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	middlewares "reclaimme/middleware"
	"reclaimme/models"
	"reclaimme/utils"
)

type fakeGenerator struct {
	docs    *models.GeneratedDocuments
	err     error
	calls   int
	lastReq models.ScamReport
}

func (f *fakeGenerator) Generate(_ context.Context, report models.ScamReport) (*models.GeneratedDocuments, error) {
	f.calls++
	f.lastReq = report
	return f.docs, f.err
}

func validReportBody() map[string]interface{} {
	return map[string]interface{}{
		"name":          "Jane Doe",
		"phone":         "+1234567890",
		"email":         "jane.doe@example.com",
		"address":       "123 Main St, Anytown, USA",
		"scamType":      "Rental Scam",
		"dateTime":      "2024-05-15T14:30",
		"description":   "Paid a deposit for an apartment that did not exist.",
		"amount":        "NGN 250,000",
		"paymentMethod": "Bank Transfer",
		"beneficiary":   "Account: 0123456789, Bank: FakeBank Inc",
	}
}

func setupRouter(t *testing.T, gen *fakeGenerator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	InitDocuments(gen, zaptest.NewLogger(t))

	r := gin.New()
	r.Use(middlewares.RequestID())
	r.POST("/generate-documents/", GenerateDocuments)
	return r
}

func postJSON(r http.Handler, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(http.MethodPost, "/generate-documents/", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middlewares.RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGenerateDocuments_Success(t *testing.T) {
	gen := &fakeGenerator{docs: &models.GeneratedDocuments{
		PoliceReportDraft:  "To the [Police Station Name and Address]",
		BankComplaintEmail: "Subject: Fraudulent Transaction Report",
		NextStepsChecklist: "1. Report the listing to the platform",
	}}
	r := setupRouter(t, gen)

	w := postJSON(r, validReportBody())

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]string{
		"police_report_draft":  "To the [Police Station Name and Address]",
		"bank_complaint_email": "Subject: Fraudulent Transaction Report",
		"next_steps_checklist": "1. Report the listing to the platform",
	}, resp)

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "Jane Doe", gen.lastReq.Name)
	assert.Equal(t, "Rental Scam", gen.lastReq.ScamType)
	assert.Equal(t, "NGN 250,000", gen.lastReq.Amount)
	assert.Equal(t, "Account: 0123456789, Bank: FakeBank Inc", gen.lastReq.Beneficiary)
}

func TestGenerateDocuments_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(body map[string]interface{})
		missing []string
	}{
		{
			name:    "scam type absent",
			mutate:  func(b map[string]interface{}) { delete(b, "scamType") },
			missing: []string{"scamType"},
		},
		{
			name:    "beneficiary null",
			mutate:  func(b map[string]interface{}) { b["beneficiary"] = nil },
			missing: []string{"beneficiary"},
		},
		{
			name: "several absent",
			mutate: func(b map[string]interface{}) {
				delete(b, "name")
				delete(b, "paymentMethod")
			},
			missing: []string{"name", "paymentMethod"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{}
			r := setupRouter(t, gen)
			body := validReportBody()
			tt.mutate(body)

			w := postJSON(r, body)

			require.Equal(t, http.StatusUnprocessableEntity, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, string(utils.ErrCodeReportValidationFailed), resp.Code)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.Status)
			assert.Equal(t, "req-123", resp.RequestID)

			var fields []string
			for _, fe := range resp.Errors {
				fields = append(fields, fe.Field)
				assert.Equal(t, "field required", fe.Message)
			}
			assert.ElementsMatch(t, tt.missing, fields)
			assert.Equal(t, 0, gen.calls)
		})
	}
}

func TestGenerateDocuments_EmptyFieldsAccepted(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(body map[string]interface{})
		check  func(t *testing.T, report models.ScamReport)
	}{
		{
			name:   "beneficiary unknown",
			mutate: func(b map[string]interface{}) { b["beneficiary"] = "" },
			check: func(t *testing.T, report models.ScamReport) {
				assert.Equal(t, "", report.Beneficiary)
				assert.Equal(t, "Bank Transfer", report.PaymentMethod)
			},
		},
		{
			name: "every field empty",
			mutate: func(b map[string]interface{}) {
				for k := range b {
					b[k] = ""
				}
			},
			check: func(t *testing.T, report models.ScamReport) {
				assert.Equal(t, models.ScamReport{}, report)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{docs: &models.GeneratedDocuments{
				PoliceReportDraft:  "police",
				BankComplaintEmail: "bank",
				NextStepsChecklist: "steps",
			}}
			r := setupRouter(t, gen)
			body := validReportBody()
			tt.mutate(body)

			w := postJSON(r, body)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, 1, gen.calls)
			tt.check(t, gen.lastReq)
		})
	}
}

func TestGenerateDocuments_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"name": "Jane"`},
		{"empty body", ``},
		{"wrong type", `{"name": 42}`},
		{"array", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{}
			r := setupRouter(t, gen)

			w := postJSON(r, tt.body)

			require.Equal(t, http.StatusUnprocessableEntity, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, string(utils.ErrCodeInvalidRequestBody), resp.Code)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.Status)
			assert.Equal(t, 0, gen.calls)
		})
	}
}

func TestGenerateDocuments_GeneratorErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   utils.ErrorCode
		wantDetail string
	}{
		{
			name:       "reply not json",
			err:        utils.NewAIResponseNotJSONError(errors.New("invalid character 'H'")),
			wantCode:   utils.ErrCodeAIResponseNotJSON,
			wantDetail: "Failed to parse AI response as JSON. The AI might not have followed the JSON output instruction.",
		},
		{
			name:       "reply missing fields",
			err:        utils.NewAIResponseMissingFieldsError("(root): Must validate at least one schema (anyOf)"),
			wantCode:   utils.ErrCodeAIResponseMissingFields,
			wantDetail: "AI response did not contain all required document fields.",
		},
		{
			name:       "unclassified error",
			err:        errors.New("connection reset by peer"),
			wantCode:   utils.ErrCodeAICallFailed,
			wantDetail: "An unexpected error occurred while generating documents: connection reset by peer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{err: tt.err}
			r := setupRouter(t, gen)

			w := postJSON(r, validReportBody())

			require.Equal(t, http.StatusInternalServerError, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, string(tt.wantCode), resp.Code)
			assert.Equal(t, tt.wantDetail, resp.Detail)
			assert.Equal(t, http.StatusInternalServerError, resp.Status)
			assert.Equal(t, "req-123", resp.RequestID)
			assert.Empty(t, resp.Errors)
		})
	}
}
