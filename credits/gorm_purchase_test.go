package credits

import (
	"context"
	"regexp"
	"testing"

	"funfans-backend/models"
	"funfans-backend/store"
	"funfans-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureReads serves the purchase reads from memory so the sqlmock
// expectations only cover the write path.
type fixtureReads struct {
	store.Store
	buyer    models.User
	item     models.ContentItem
	settings models.PlatformSettings
}

func (f fixtureReads) InTx(ctx context.Context, fn func(tx store.Store) error) error {
	return f.Store.InTx(ctx, func(tx store.Store) error {
		f.Store = tx
		return fn(f)
	})
}

func (f fixtureReads) GetUser(context.Context, string) (*models.User, error) {
	u := f.buyer
	return &u, nil
}

func (f fixtureReads) GetContent(context.Context, string) (*models.ContentItem, error) {
	item := f.item
	return &item, nil
}

func (f fixtureReads) GetSettings(context.Context) (*models.PlatformSettings, error) {
	settings := f.settings
	return &settings, nil
}

func (f fixtureReads) IsUnlocked(context.Context, string, string) (bool, error) {
	return false, nil
}

func gormPurchaseSetup(t *testing.T) (*Service, *recordingPublisher, sqlmock.Sqlmock, func()) {
	t.Helper()
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	reads := fixtureReads{
		Store:    store.NewGormStore(gormDB),
		buyer:    models.User{ID: "buyer-1", Balance: 500},
		item:     models.ContentItem{ID: "item-1", CreatorID: "creator-1", Title: "Beach", Price: 200},
		settings: models.DefaultSettings(),
	}
	pub := &recordingPublisher{}
	return NewService(reads, pub), pub, mock, cleanup
}

func expectDebitAndLedger(mock sqlmock.Sqlmock) {
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET "balance"=balance + $1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id","balance" FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow("buyer-1", 300))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "transactions"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`(?s)INSERT INTO creator_earnings .* ON CONFLICT \(creator_id\) DO UPDATE SET earned = creator_earnings\.earned \+ EXCLUDED\.earned`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "creator_earnings"`)).
		WillReturnRows(sqlmock.NewRows([]string{"creator_id", "earned"}).AddRow("creator-1", "100"))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "creator_transactions"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

func TestGormPurchase_DuplicateUnlockRollsBack(t *testing.T) {
	svc, pub, mock, cleanup := gormPurchaseSetup(t)
	defer cleanup()

	mock.ExpectBegin()
	expectDebitAndLedger(mock)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "unlocks"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	receipt, err := svc.Purchase(context.Background(), "buyer-1", "item-1")
	assert.ErrorIs(t, err, ErrAlreadyUnlocked)
	assert.Nil(t, receipt)
	// A COMMIT would be an unexpected call and leave the rollback unmet.
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, []string{EventPurchaseRejected}, pub.types())
}

func TestGormPurchase_CommitsOnce(t *testing.T) {
	svc, pub, mock, cleanup := gormPurchaseSetup(t)
	defer cleanup()

	mock.ExpectBegin()
	expectDebitAndLedger(mock)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "unlocks"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	receipt, err := svc.Purchase(context.Background(), "buyer-1", "item-1")
	require.NoError(t, err)
	assert.Equal(t, int64(300), receipt.Balance)
	assert.Equal(t, "100", receipt.Earnings.String())
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, []string{EventPurchaseCommitted}, pub.types())
}

func TestGormPurchase_OverdraftRollsBackBeforeLedger(t *testing.T) {
	svc, _, mock, cleanup := gormPurchaseSetup(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET "balance"=balance + $1`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id","balance" FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow("buyer-1", 150))
	mock.ExpectRollback()

	_, err := svc.Purchase(context.Background(), "buyer-1", "item-1")
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	require.NoError(t, mock.ExpectationsWereMet())
}
