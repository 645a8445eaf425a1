package repository

import (
	"context"
	"strconv"

	"github.com/supabase-community/supabase-go"

	"beaverly/internal/model"
)

// AccountRepository maps Telegram identities to backend user ids.
type AccountRepository struct {
	col *Collection[model.Account]
}

func NewAccountRepository(client *supabase.Client) *AccountRepository {
	return &AccountRepository{
		col: NewCollection[model.Account](client, "accounts", "", ""),
	}
}

// FindByTelegramID returns the account for a Telegram identity, or nil
// when none exists yet.
func (r *AccountRepository) FindByTelegramID(ctx context.Context, telegramID int64) (*model.Account, error) {
	accounts, err := r.col.ListBy(ctx, "telegram_id", strconv.FormatInt(telegramID, 10))
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, nil
	}
	return &accounts[0], nil
}

func (r *AccountRepository) Insert(ctx context.Context, account model.Account) (model.Account, error) {
	return r.col.Insert(ctx, account)
}
