// Package handler exposes the extractor over HTTP JSON.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/anvh/quickspend/internal/domain/common"
	"github.com/anvh/quickspend/internal/domain/parse"
	"github.com/anvh/quickspend/internal/domain/parse/service"
	"github.com/anvh/quickspend/pkg/config"
)

const maxBodyBytes int64 = 1 << 20 // 1 MiB

// ParseHandler serves the parse endpoints.
type ParseHandler struct {
	svc      *service.ParseService
	defaults config.ParserConfig
	logger   *slog.Logger
}

// NewParseHandler creates a parse handler.
func NewParseHandler(svc *service.ParseService, defaults config.ParserConfig, logger *slog.Logger) *ParseHandler {
	return &ParseHandler{svc: svc, defaults: defaults, logger: logger}
}

type parseRequest struct {
	Text      string `json:"text"`
	InputMode string `json:"input_mode"`
	Language  string `json:"language"`
	Currency  string `json:"currency"`
	Type      string `json:"type"`
}

type batchRequest struct {
	Lines     []string `json:"lines"`
	InputMode string   `json:"input_mode"`
	Language  string   `json:"language"`
	Currency  string   `json:"currency"`
	Type      string   `json:"type"`
}

// transactionResponse is the record plus the identity this layer assigns;
// the extractor itself produces an identity-free record.
type transactionResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	*parse.ParsedTransaction
}

type batchItemResponse struct {
	Index       int                  `json:"index"`
	Transaction *transactionResponse `json:"transaction,omitempty"`
	Error       *errorResponse       `json:"error,omitempty"`
}

type batchResponse struct {
	Results []batchItemResponse `json:"results"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Parse handles POST /v1/parse.
func (h *ParseHandler) Parse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "use POST")
		return
	}

	var req parseRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "EMPTY_TEXT", "text is required")
		return
	}

	opts, err := h.buildOptions(req.InputMode, req.Language, req.Currency, req.Type)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	tx, err := h.svc.Parse(r.Context(), req.Text, opts)
	if err != nil {
		var noAmount *parse.NoAmountError
		if errors.As(err, &noAmount) {
			writeError(w, http.StatusUnprocessableEntity, "NO_AMOUNT_FOUND", noAmount.Message())
			return
		}
		h.logger.Error("parse failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, newTransactionResponse(tx))
}

// ParseBatch handles POST /v1/parse/batch.
func (h *ParseHandler) ParseBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "use POST")
		return
	}

	var req batchRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if len(req.Lines) == 0 {
		writeError(w, http.StatusBadRequest, "EMPTY_BATCH", "lines is required")
		return
	}

	opts, err := h.buildOptions(req.InputMode, req.Language, req.Currency, req.Type)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	results, err := h.svc.ParseBatch(r.Context(), req.Lines, opts)
	if err != nil {
		h.logger.Error("batch parse failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
		return
	}

	resp := batchResponse{Results: make([]batchItemResponse, 0, len(results))}
	for _, res := range results {
		item := batchItemResponse{Index: res.Index}
		if res.Err != nil {
			var noAmount *parse.NoAmountError
			msg := res.Err.Error()
			if errors.As(res.Err, &noAmount) {
				msg = noAmount.Message()
			}
			item.Error = &errorResponse{Code: "NO_AMOUNT_FOUND", Message: msg}
		} else {
			item.Transaction = newTransactionResponse(res.Tx)
		}
		resp.Results = append(resp.Results, item)
	}

	writeJSON(w, http.StatusOK, resp)
}

// buildOptions validates enum fields and applies the configured defaults.
func (h *ParseHandler) buildOptions(mode, lang, currency, txType string) (parse.Options, error) {
	opts := parse.Options{InputMode: mode}
	if opts.InputMode == "" {
		opts.InputMode = "text"
	}

	switch lang {
	case "":
		opts.Language = parse.Language(h.defaults.DefaultLanguage)
	case "en", "vi":
		opts.Language = parse.Language(lang)
	default:
		return opts, fmt.Errorf("%w: %q", common.ErrUnsupportedLanguage, lang)
	}

	switch currency {
	case "":
		opts.FallbackCurrency = parse.Currency(h.defaults.DefaultCurrency)
	case "USD", "VND":
		opts.FallbackCurrency = parse.Currency(currency)
	default:
		return opts, fmt.Errorf("%w: %q", common.ErrUnsupportedCurrency, currency)
	}

	switch txType {
	case "":
	case "income":
		opts.PreferredType = parse.TypeIncome
	case "expense":
		opts.PreferredType = parse.TypeExpense
	default:
		return opts, fmt.Errorf("%w: %q", common.ErrUnsupportedType, txType)
	}

	return opts, nil
}

func newTransactionResponse(tx *parse.ParsedTransaction) *transactionResponse {
	return &transactionResponse{
		ID:                uuid.NewString(),
		CreatedAt:         time.Now().UTC(),
		ParsedTransaction: tx,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
