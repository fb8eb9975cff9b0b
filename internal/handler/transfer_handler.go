package handler

import (
	"encoding/json"
	"net/http"

	"currency-ledger/internal/errors"
	"currency-ledger/internal/money"
	"currency-ledger/internal/service"
)

type TransferHandler struct {
	bankService *service.BankService
}

func NewTransferHandler(bankService *service.BankService) *TransferHandler {
	return &TransferHandler{
		bankService: bankService,
	}
}

type TransferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

type TransferResponse struct {
	TransferID string      `json:"transfer_id"`
	From       string      `json:"from"`
	To         string      `json:"to"`
	Amount     money.Money `json:"amount"`
	Credited   money.Money `json:"credited"`
	Currency   string      `json:"currency"`
}

func (h *TransferHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidArgument, "invalid request body").WithDetails(err.Error()))
		return
	}

	amount, err := money.FromString(req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	receipt, err := h.bankService.Transfer(&service.TransferRequest{
		From:   req.From,
		To:     req.To,
		Amount: amount,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, TransferResponse{
		TransferID: receipt.ID.String(),
		From:       receipt.From,
		To:         receipt.To,
		Amount:     receipt.Amount,
		Credited:   receipt.Credited,
		Currency:   receipt.Currency.String(),
	})
}
