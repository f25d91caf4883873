package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/phrazzld/accounts-api/internal/api/shared"
	"github.com/phrazzld/accounts-api/internal/domain"
	"github.com/phrazzld/accounts-api/internal/platform/logger"
	"github.com/phrazzld/accounts-api/internal/store"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountStore store.AccountStore
	logger       *slog.Logger
	now          func() time.Time
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountStore store.AccountStore, logger *slog.Logger) *AccountHandler {
	if accountStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("accountStore cannot be nil for AccountHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AccountHandler")
	}

	return &AccountHandler{
		accountStore: accountStore,
		logger:       logger.With(slog.String("component", "account_handler")),
		now:          time.Now,
	}
}

// CreateAccount handles POST /accounts requests.
// It stores the account described by the JSON body and returns it with a
// Location header pointing at the new resource.
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if err := requireJSON(r); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	doc, err := decodeDocument(w, r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	account, err := domain.NewAccountFromDocument(doc, h.now())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.accountStore.Create(r.Context(), account); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("account created", slog.Int64("account_id", account.ID))

	w.Header().Set("Location", resourceURL(r, accountPath(account.ID)))
	shared.RespondWithJSON(w, r, http.StatusCreated, account.Serialize())
}

// ListAccounts handles GET /accounts requests.
// The response is a JSON array ordered by account ID; it is empty, never
// null, when no accounts exist.
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	accounts, err := h.accountStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	docs := make([]domain.Document, 0, len(accounts))
	for _, account := range accounts {
		docs = append(docs, account.Serialize())
	}

	log.Debug("listed accounts", slog.Int("count", len(docs)))
	shared.RespondWithJSON(w, r, http.StatusOK, docs)
}

// GetAccount handles GET /accounts/{id} requests.
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, accountIDParam)
	if err != nil {
		h.handleAccountError(w, r, err)
		return
	}

	account, err := h.accountStore.GetByID(r.Context(), id)
	if err != nil {
		h.handleAccountError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, account.Serialize())
}

// UpdateAccount handles PUT /accounts/{id} requests.
//
// The body replaces every client-editable field. The ID never changes and
// date_joined keeps its stored value unless the body supplies one. A missing
// account is reported before any problem with the body.
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if err := requireJSON(r); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	id, err := getPathID(r, accountIDParam)
	if err != nil {
		h.handleAccountError(w, r, err)
		return
	}

	// Read the body before the row is locked; a decode failure is only
	// reported once the account is known to exist.
	doc, decodeErr := decodeDocument(w, r)

	account, err := h.accountStore.Modify(r.Context(), id, func(account *domain.Account) error {
		if decodeErr != nil {
			return decodeErr
		}
		if err := account.Deserialize(doc); err != nil {
			return err
		}
		return account.Validate()
	})
	if err != nil {
		h.handleAccountError(w, r, err)
		return
	}

	log.Info("account updated", slog.Int64("account_id", account.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, account.Serialize())
}

// DeleteAccount handles DELETE /accounts/{id} requests.
// Deleting an account that does not exist still succeeds with 204.
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, accountIDParam)
	if err != nil {
		// No account can carry a non-integer ID, so there is nothing to delete.
		log.Debug("delete of non-integer account id ignored", slog.String("error", err.Error()))
		shared.RespondWithNoContent(w)
		return
	}

	if err := h.accountStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("account deleted", slog.Int64("account_id", id))
	shared.RespondWithNoContent(w)
}

// handleAccountError reports err, naming the requested ID when the account
// does not exist.
func (h *AccountHandler) handleAccountError(w http.ResponseWriter, r *http.Request, err error) {
	message := ""
	if errors.Is(err, store.ErrNotFound) {
		message = accountNotFoundMessage(r)
	}
	HandleAPIError(w, r, err, message)
}

func accountPath(id int64) string {
	return accountsPath + "/" + strconv.FormatInt(id, 10)
}
