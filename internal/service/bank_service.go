package service

import (
	"log/slog"

	"github.com/google/uuid"

	"currency-ledger/internal/currency"
	"currency-ledger/internal/domain"
	"currency-ledger/internal/money"
)

// BankService exposes the in-memory bank to the transport layer. It owns the
// converter used for transfers, balance conversion and reporting, and issues
// receipt ids for transfers.
type BankService struct {
	bank      *domain.Bank
	converter *currency.Converter
	logger    *slog.Logger
}

func NewBankService(bank *domain.Bank, converter *currency.Converter, logger *slog.Logger) *BankService {
	if converter == nil {
		converter = currency.NewConverter(nil)
	}
	return &BankService{
		bank:      bank,
		converter: converter,
		logger:    logger,
	}
}

func (s *BankService) CreateAccount(owner string, initialBalance money.Money, code currency.Code) (domain.Statement, error) {
	s.logger.Info("Creating account",
		"owner", owner,
		"initial_balance", initialBalance,
		"currency", code)

	account, err := s.bank.CreateAccount(owner, initialBalance, code)
	if err != nil {
		s.logger.Error("Account creation failed", "owner", owner, "error", err)
		return domain.Statement{}, err
	}
	return account.Statement(), nil
}

func (s *BankService) GetStatement(owner string) (domain.Statement, error) {
	account, err := s.bank.Account(owner)
	if err != nil {
		return domain.Statement{}, err
	}
	return account.Statement(), nil
}

func (s *BankService) Deposit(owner string, amount money.Money) (money.Money, error) {
	s.logger.Info("Processing deposit", "owner", owner, "amount", amount)

	account, err := s.bank.Account(owner)
	if err != nil {
		return money.Zero, err
	}
	balance, err := account.Deposit(amount)
	if err != nil {
		s.logger.Error("Deposit failed", "owner", owner, "error", err)
		return money.Zero, err
	}
	return balance, nil
}

func (s *BankService) Withdraw(owner string, amount money.Money) (money.Money, error) {
	s.logger.Info("Processing withdrawal", "owner", owner, "amount", amount)

	account, err := s.bank.Account(owner)
	if err != nil {
		return money.Zero, err
	}
	withdrawn, err := account.Withdraw(amount)
	if err != nil {
		s.logger.Error("Withdrawal failed", "owner", owner, "error", err)
		return money.Zero, err
	}
	return withdrawn, nil
}

func (s *BankService) ConvertBalance(owner string, target currency.Code) (domain.Statement, error) {
	s.logger.Info("Converting balance", "owner", owner, "target_currency", target)

	account, err := s.bank.Account(owner)
	if err != nil {
		return domain.Statement{}, err
	}
	if _, err := account.ConvertTo(target, s.converter); err != nil {
		s.logger.Error("Balance conversion failed", "owner", owner, "error", err)
		return domain.Statement{}, err
	}
	return account.Statement(), nil
}

func (s *BankService) SetBlocked(owner string, blocked bool) (domain.Statement, error) {
	account, err := s.bank.Account(owner)
	if err != nil {
		return domain.Statement{}, err
	}
	if blocked {
		account.Block()
	} else {
		account.Unblock()
	}
	s.logger.Info("Account block flag changed", "owner", owner, "blocked", blocked)
	return account.Statement(), nil
}

type TransferRequest struct {
	From   string
	To     string
	Amount money.Money
}

// TransferReceipt records a completed transfer. Credited is the amount the
// target received in its own currency.
type TransferReceipt struct {
	ID       uuid.UUID
	From     string
	To       string
	Amount   money.Money
	Credited money.Money
	Currency currency.Code
}

func (s *BankService) Transfer(req *TransferRequest) (*TransferReceipt, error) {
	s.logger.Info("Processing transfer",
		"from", req.From,
		"to", req.To,
		"amount", req.Amount)

	source, err := s.bank.Account(req.From)
	if err != nil {
		return nil, err
	}
	target, err := s.bank.Account(req.To)
	if err != nil {
		return nil, err
	}

	credited, err := source.Transfer(target, req.Amount, s.converter)
	if err != nil {
		s.logger.Error("Transfer failed", "from", req.From, "to", req.To, "error", err)
		return nil, err
	}

	receipt := &TransferReceipt{
		ID:       uuid.New(),
		From:     req.From,
		To:       req.To,
		Amount:   req.Amount,
		Credited: credited,
		Currency: target.Currency(),
	}
	s.logger.Info("Transfer completed", "receipt_id", receipt.ID, "credited", credited)
	return receipt, nil
}

func (s *BankService) TotalDeposits(code currency.Code) (money.Money, error) {
	return s.bank.TotalDeposits(code, s.converter)
}
