package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"currency-ledger/internal/currency"
	"currency-ledger/internal/errors"
	"currency-ledger/internal/money"
	"currency-ledger/internal/service"
)

type AccountHandler struct {
	bankService *service.BankService
}

func NewAccountHandler(bankService *service.BankService) *AccountHandler {
	return &AccountHandler{
		bankService: bankService,
	}
}

type CreateAccountRequest struct {
	Owner          string `json:"owner"`
	InitialBalance string `json:"initial_balance"`
	Currency       string `json:"currency"`
}

type AmountRequest struct {
	Amount string `json:"amount"`
}

type BalanceResponse struct {
	Owner    string      `json:"owner"`
	Balance  money.Money `json:"balance"`
	Currency string      `json:"currency"`
}

type WithdrawResponse struct {
	Owner     string      `json:"owner"`
	Withdrawn money.Money `json:"withdrawn"`
	Balance   money.Money `json:"balance"`
	Currency  string      `json:"currency"`
}

type ConvertRequest struct {
	Currency string `json:"currency"`
}

func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidArgument, "invalid request body").WithDetails(err.Error()))
		return
	}

	initialBalance := money.Zero
	if req.InitialBalance != "" {
		var err error
		initialBalance, err = money.FromString(req.InitialBalance)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	statement, err := h.bankService.CreateAccount(req.Owner, initialBalance, currency.Code(req.Currency))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, statement)
}

func (h *AccountHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	owner := mux.Vars(r)["owner"]

	statement, err := h.bankService.GetStatement(owner)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statement)
}

func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	owner := mux.Vars(r)["owner"]

	amount, ok := decodeAmount(w, r)
	if !ok {
		return
	}

	balance, err := h.bankService.Deposit(owner, amount)
	if err != nil {
		writeError(w, err)
		return
	}

	statement, err := h.bankService.GetStatement(owner)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, BalanceResponse{
		Owner:    owner,
		Balance:  balance,
		Currency: statement.Currency.String(),
	})
}

func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	owner := mux.Vars(r)["owner"]

	amount, ok := decodeAmount(w, r)
	if !ok {
		return
	}

	withdrawn, err := h.bankService.Withdraw(owner, amount)
	if err != nil {
		writeError(w, err)
		return
	}

	statement, err := h.bankService.GetStatement(owner)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, WithdrawResponse{
		Owner:     owner,
		Withdrawn: withdrawn,
		Balance:   statement.Balance,
		Currency:  statement.Currency.String(),
	})
}

func (h *AccountHandler) ConvertBalance(w http.ResponseWriter, r *http.Request) {
	owner := mux.Vars(r)["owner"]

	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidArgument, "invalid request body").WithDetails(err.Error()))
		return
	}

	statement, err := h.bankService.ConvertBalance(owner, currency.Code(req.Currency))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statement)
}

func (h *AccountHandler) Block(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, true)
}

func (h *AccountHandler) Unblock(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, false)
}

func (h *AccountHandler) setBlocked(w http.ResponseWriter, r *http.Request, blocked bool) {
	owner := mux.Vars(r)["owner"]

	statement, err := h.bankService.SetBlocked(owner, blocked)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statement)
}

func decodeAmount(w http.ResponseWriter, r *http.Request) (money.Money, bool) {
	var req AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidArgument, "invalid request body").WithDetails(err.Error()))
		return money.Zero, false
	}

	amount, err := money.FromString(req.Amount)
	if err != nil {
		writeError(w, err)
		return money.Zero, false
	}
	return amount, true
}
