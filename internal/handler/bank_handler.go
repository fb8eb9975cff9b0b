package handler

import (
	"net/http"

	"currency-ledger/internal/currency"
	"currency-ledger/internal/money"
	"currency-ledger/internal/service"
)

type BankHandler struct {
	bankService     *service.BankService
	defaultCurrency currency.Code
}

func NewBankHandler(bankService *service.BankService, defaultCurrency currency.Code) *BankHandler {
	return &BankHandler{
		bankService:     bankService,
		defaultCurrency: defaultCurrency,
	}
}

type TotalDepositsResponse struct {
	Currency string      `json:"currency"`
	Total    money.Money `json:"total"`
}

// TotalDeposits reports the sum of all unblocked balances converted into the
// requested currency (?currency=XXX).
func (h *BankHandler) TotalDeposits(w http.ResponseWriter, r *http.Request) {
	code := currency.Code(r.URL.Query().Get("currency"))
	if code == "" {
		code = h.defaultCurrency
	}

	total, err := h.bankService.TotalDeposits(code)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TotalDepositsResponse{
		Currency: code.String(),
		Total:    total,
	})
}
