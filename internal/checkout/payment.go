package checkout

import (
	"context"
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Mpictdev01/adventure-hub/internal/domain"
	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
	"github.com/Mpictdev01/adventure-hub/internal/pricing"
	"github.com/Mpictdev01/adventure-hub/internal/utils"
)

// PaymentState is the position inside step 4.
type PaymentState string

const (
	StateSelectMethod         PaymentState = "select-method"
	StateSelectBank           PaymentState = "select-bank"
	StateTransferInstructions PaymentState = "transfer-instructions"
	StateUploadProof          PaymentState = "upload-proof"
	StateCompleted            PaymentState = "completed"
)

type PaymentMethod string

const (
	MethodBankTransfer PaymentMethod = "bank"
	MethodEWallet      PaymentMethod = "ewallet"
	MethodVirtualAcct  PaymentMethod = "va"
)

// PaymentOption is a listed method; only bank transfer is enabled.
type PaymentOption struct {
	Method  PaymentMethod
	Label   string
	Enabled bool
}

func PaymentMethods() []PaymentOption {
	return []PaymentOption{
		{Method: MethodBankTransfer, Label: "Bank Transfer", Enabled: true},
		{Method: MethodEWallet, Label: "E-Wallet"},
		{Method: MethodVirtualAcct, Label: "Virtual Account"},
	}
}

// MaxProofSize is the largest accepted proof image.
const MaxProofSize = 5 << 20

// ProofFile is a proof image held locally until submit.
type ProofFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// PreviewURL is the local data: URL used when the upload fails.
func (f ProofFile) PreviewURL() string {
	return "data:" + f.ContentType + ";base64," + base64.StdEncoding.EncodeToString(f.Data)
}

// PaymentDeps are the remote collaborators of step 4.
type PaymentDeps struct {
	Banks     BankAccountSource
	Uploader  Uploader
	Submitter *Submitter
}

// TransferInstructions is what the customer needs to make the transfer.
type TransferInstructions struct {
	Amount        int64
	AmountText    string
	BankName      string
	AccountNumber string
	AccountName   string
	Reference     string
}

// Payment drives the step 4 sub-state-machine.
type Payment struct {
	wizard *Wizard
	deps   PaymentDeps

	mu       sync.Mutex
	state    PaymentState
	banks    []models.BankAccount
	bank     *models.BankAccount
	proof    *ProofFile
	inFlight bool
}

// StartPayment enters step 4 and assigns the client correlation id on first
// entry.
func (w *Wizard) StartPayment(deps PaymentDeps) (*Payment, error) {
	if _, err := w.Enter(StepPayment); err != nil {
		return nil, err
	}
	if w.store.Get().BookingID == "" {
		w.store.Update(WithBookingID(NewCorrelationID(w.now())))
	}
	return &Payment{wizard: w, deps: deps, state: StateSelectMethod}, nil
}

// NewCorrelationID is the client-side reference shown on the instructions.
func NewCorrelationID(now time.Time) string {
	return "ADVHUB" + strconv.FormatInt(now.UnixMilli(), 10)
}

func (p *Payment) State() PaymentState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Payment) SelectMethod(m PaymentMethod) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StateSelectMethod {
		return ErrInvalidPaymentState
	}
	if m != MethodBankTransfer {
		return ErrMethodUnavailable
	}
	p.state = StateSelectBank
	return nil
}

// LoadBankAccounts fetches and keeps only the active accounts.
func (p *Payment) LoadBankAccounts(ctx context.Context) ([]models.BankAccount, error) {
	accounts, err := p.deps.Banks.ActiveBankAccounts(ctx)
	if err != nil {
		return nil, TransientError{Op: "load bank accounts", Err: err}
	}
	active := make([]models.BankAccount, 0, len(accounts))
	for _, a := range accounts {
		if a.IsActive {
			active = append(active, a)
		}
	}
	p.mu.Lock()
	p.banks = active
	p.mu.Unlock()
	return append([]models.BankAccount(nil), active...), nil
}

// SelectBank picks a loaded account and folds its name into paymentMethod.
func (p *Payment) SelectBank(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StateSelectBank {
		return ErrInvalidPaymentState
	}
	for i := range p.banks {
		if p.banks[i].ID == id {
			b := p.banks[i]
			p.bank = &b
			p.state = StateTransferInstructions
			p.wizard.store.Update(WithPaymentMethod("Bank Transfer - " + b.BankName))
			return nil
		}
	}
	return domain.ValidationError{Field: "bank", Msg: "please select a destination bank"}
}

// Instructions shows the exact review total and destination account.
func (p *Payment) Instructions() (TransferInstructions, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bank == nil || (p.state != StateTransferInstructions && p.state != StateUploadProof) {
		return TransferInstructions{}, ErrInvalidPaymentState
	}
	d := p.wizard.store.Get()
	total := pricing.NewBreakdown(d.PricePerPax, d.ParticipantCount).Total
	return TransferInstructions{
		Amount:        total,
		AmountText:    utils.FormatRupiah(total),
		BankName:      p.bank.BankName,
		AccountNumber: p.bank.AccountNumber,
		AccountName:   p.bank.AccountName,
		Reference:     d.BookingID,
	}, nil
}

// ConfirmTransferred is the explicit "I've transferred" action.
func (p *Payment) ConfirmTransferred() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StateTransferInstructions {
		return ErrInvalidPaymentState
	}
	p.state = StateUploadProof
	return nil
}

// AttachProof holds one image, replacing any previous one.
func (p *Payment) AttachProof(f ProofFile) error {
	if len(f.Data) == 0 {
		return domain.ValidationError{Field: "file", Msg: "proof of payment is empty"}
	}
	if len(f.Data) > MaxProofSize {
		return domain.ValidationError{Field: "file", Msg: "proof of payment must be 5MB or smaller"}
	}
	if strings.TrimSpace(f.ContentType) == "" {
		f.ContentType = http.DetectContentType(f.Data)
	}
	if !strings.HasPrefix(f.ContentType, "image/") {
		return domain.ValidationError{Field: "file", Msg: "proof of payment must be an image"}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StateUploadProof {
		return ErrInvalidPaymentState
	}
	if p.inFlight {
		return ErrSubmissionInFlight
	}
	p.proof = &f
	return nil
}

func (p *Payment) RemoveProof() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.inFlight {
		p.proof = nil
	}
}

// CanSubmit is false without a proof or while a submission is running.
func (p *Payment) CanSubmit() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == StateUploadProof && p.proof != nil && !p.inFlight
}

// Submit uploads the proof (falling back to its preview URL) and creates the
// booking. On failure the flow stays in upload-proof for a retry.
func (p *Payment) Submit(ctx context.Context) (Confirmation, error) {
	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return Confirmation{}, ErrSubmissionInFlight
	}
	if p.state != StateUploadProof || p.proof == nil {
		p.mu.Unlock()
		return Confirmation{}, ErrSubmitDisabled
	}
	p.inFlight = true
	proof := *p.proof
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.inFlight = false
		p.mu.Unlock()
	}()

	proofURL := p.upload(ctx, proof)
	outcome := PaymentOutcome{
		ProofURL:      proofURL,
		PaymentMethod: p.wizard.store.Get().PaymentMethod,
	}
	conf, err := p.deps.Submitter.Submit(ctx, outcome)
	if err != nil {
		return Confirmation{}, err
	}

	p.mu.Lock()
	p.state = StateCompleted
	p.proof = nil
	p.mu.Unlock()
	return conf, nil
}

func (p *Payment) upload(ctx context.Context, proof ProofFile) string {
	if p.deps.Uploader == nil {
		return proof.PreviewURL()
	}
	url, err := p.deps.Uploader.Upload(ctx, proof)
	if err != nil || strings.TrimSpace(url) == "" {
		msg := "empty url"
		if err != nil {
			msg = err.Error()
		}
		utils.LogEvent("", "checkout", "upload_proof", "upload failed, using local preview: "+msg)
		return proof.PreviewURL()
	}
	return url
}

// Back moves one payment state backwards. It reports true when the customer
// leaves the payment step for the review page.
func (p *Payment) Back() (PaymentState, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch p.state {
	case StateUploadProof:
		p.state = StateTransferInstructions
	case StateTransferInstructions:
		p.state = StateSelectBank
		p.bank = nil
	case StateSelectBank:
		p.state = StateSelectMethod
	case StateSelectMethod:
		return p.state, true
	}
	return p.state, false
}
