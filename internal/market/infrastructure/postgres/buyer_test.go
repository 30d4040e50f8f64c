package postgres

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	mocks "github.com/kalandadze/GwentMarketplace/gen/mocks/logging"
	"github.com/kalandadze/GwentMarketplace/internal/market/domain"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/database"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardBuyer_Buy(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name         string
		buyerEmail   string
		templateName string
		copyNumber   int

		expectedErr error

		prepareFn func(t *testing.T, ctrl *gomock.Controller, mock pgxmock.PgxConnIface, logger *mocks.MockLogger)
	}

	tests := []testCase{
		{
			name:         "successful purchase of listed card",
			buyerEmail:   "buyer@gwent.one",
			templateName: "Keira Metz",
			copyNumber:   1,
			prepareFn: func(t *testing.T, ctrl *gomock.Controller, mock pgxmock.PgxConnIface, logger *mocks.MockLogger) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				// lock instance; listed cards sit in escrow with no owner
				instanceRows := pgxmock.NewRows([]string{"id", "owner_id", "rarity"}).
					AddRow(int64(10), (*int64)(nil), domain.RarityEpic)
				mock.ExpectQuery("SELECT").
					WithArgs("Keira Metz", 1).
					WillReturnRows(instanceRows)
				// lock listing
				listingRows := pgxmock.NewRows([]string{"id", "seller_id", "price"}).
					AddRow(int64(5), int64(2), int64(4000))
				mock.ExpectQuery("SELECT").
					WithArgs("Keira Metz", 1).
					WillReturnRows(listingRows)
				// lock buyer and seller in one ordered statement
				userRows := pgxmock.NewRows([]string{"id", "email", "balance"}).
					AddRow(int64(1), "buyer@gwent.one", int64(5000)).
					AddRow(int64(2), "seller@gwent.one", int64(100))
				mock.ExpectQuery("SELECT").
					WithArgs("buyer@gwent.one", int64(2)).
					WillReturnRows(userRows)
				// debit buyer
				mock.ExpectExec("UPDATE").
					WithArgs(int64(4000), int64(1)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				// credit seller
				mock.ExpectExec("UPDATE").
					WithArgs(int64(4000), int64(2)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				// delete listing
				mock.ExpectExec("DELETE").
					WithArgs(int64(5)).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				// hand card to buyer
				mock.ExpectExec("UPDATE").
					WithArgs(int64(1), int64(10)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
				// Rollback will be called in defer after commit
				mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)
			},
			expectedErr: nil,
		},
		{
			name:         "successful purchase from system pool",
			buyerEmail:   "buyer@gwent.one",
			templateName: "Foglet",
			copyNumber:   3,
			prepareFn: func(t *testing.T, ctrl *gomock.Controller, mock pgxmock.PgxConnIface, logger *mocks.MockLogger) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				instanceRows := pgxmock.NewRows([]string{"id", "owner_id", "rarity"}).
					AddRow(int64(11), (*int64)(nil), domain.RarityCommon)
				mock.ExpectQuery("SELECT").
					WithArgs("Foglet", 3).
					WillReturnRows(instanceRows)
				// no listing, so this copy sells at base price
				mock.ExpectQuery("SELECT").
					WithArgs("Foglet", 3).
					WillReturnRows(pgxmock.NewRows([]string{"id", "seller_id", "price"}))
				userRows := pgxmock.NewRows([]string{"id", "email", "balance"}).
					AddRow(int64(1), "buyer@gwent.one", int64(600))
				mock.ExpectQuery("SELECT").
					WithArgs("buyer@gwent.one").
					WillReturnRows(userRows)
				mock.ExpectExec("UPDATE").
					WithArgs(int64(500), int64(1)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec("UPDATE").
					WithArgs(int64(1), int64(11)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
				mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)
			},
			expectedErr: nil,
		},
		{
			name:         "instance does not exist",
			buyerEmail:   "buyer@gwent.one",
			templateName: "Foglet",
			copyNumber:   99,
			prepareFn: func(t *testing.T, ctrl *gomock.Controller, mock pgxmock.PgxConnIface, logger *mocks.MockLogger) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectQuery("SELECT").
					WithArgs("Foglet", 99).
					WillReturnRows(pgxmock.NewRows([]string{"id", "owner_id", "rarity"}))
				mock.ExpectRollback()
			},
			expectedErr: &domain.CardNotForSaleError{},
		},
		{
			name:         "owned card without a listing is not for sale",
			buyerEmail:   "buyer@gwent.one",
			templateName: "Foglet",
			copyNumber:   3,
			prepareFn: func(t *testing.T, ctrl *gomock.Controller, mock pgxmock.PgxConnIface, logger *mocks.MockLogger) {
				t.Helper()
				ownerID := int64(9)
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				instanceRows := pgxmock.NewRows([]string{"id", "owner_id", "rarity"}).
					AddRow(int64(11), &ownerID, domain.RarityCommon)
				mock.ExpectQuery("SELECT").
					WithArgs("Foglet", 3).
					WillReturnRows(instanceRows)
				mock.ExpectQuery("SELECT").
					WithArgs("Foglet", 3).
					WillReturnRows(pgxmock.NewRows([]string{"id", "seller_id", "price"}))
				mock.ExpectRollback()
			},
			expectedErr: &domain.CardNotForSaleError{},
		},
		{
			name:         "insufficient balance for listed card",
			buyerEmail:   "buyer@gwent.one",
			templateName: "Keira Metz",
			copyNumber:   1,
			prepareFn: func(t *testing.T, ctrl *gomock.Controller, mock pgxmock.PgxConnIface, logger *mocks.MockLogger) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				instanceRows := pgxmock.NewRows([]string{"id", "owner_id", "rarity"}).
					AddRow(int64(10), (*int64)(nil), domain.RarityEpic)
				mock.ExpectQuery("SELECT").
					WithArgs("Keira Metz", 1).
					WillReturnRows(instanceRows)
				listingRows := pgxmock.NewRows([]string{"id", "seller_id", "price"}).
					AddRow(int64(5), int64(2), int64(4000))
				mock.ExpectQuery("SELECT").
					WithArgs("Keira Metz", 1).
					WillReturnRows(listingRows)
				userRows := pgxmock.NewRows([]string{"id", "email", "balance"}).
					AddRow(int64(1), "buyer@gwent.one", int64(100)).
					AddRow(int64(2), "seller@gwent.one", int64(100))
				mock.ExpectQuery("SELECT").
					WithArgs("buyer@gwent.one", int64(2)).
					WillReturnRows(userRows)
				mock.ExpectRollback()
			},
			expectedErr: &domain.InsufficientBalanceError{},
		},
		{
			name:         "insufficient balance for pool card",
			buyerEmail:   "buyer@gwent.one",
			templateName: "Foglet",
			copyNumber:   3,
			prepareFn: func(t *testing.T, ctrl *gomock.Controller, mock pgxmock.PgxConnIface, logger *mocks.MockLogger) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				instanceRows := pgxmock.NewRows([]string{"id", "owner_id", "rarity"}).
					AddRow(int64(11), (*int64)(nil), domain.RarityCommon)
				mock.ExpectQuery("SELECT").
					WithArgs("Foglet", 3).
					WillReturnRows(instanceRows)
				mock.ExpectQuery("SELECT").
					WithArgs("Foglet", 3).
					WillReturnRows(pgxmock.NewRows([]string{"id", "seller_id", "price"}))
				userRows := pgxmock.NewRows([]string{"id", "email", "balance"}).
					AddRow(int64(1), "buyer@gwent.one", int64(499))
				mock.ExpectQuery("SELECT").
					WithArgs("buyer@gwent.one").
					WillReturnRows(userRows)
				mock.ExpectRollback()
			},
			expectedErr: &domain.InsufficientBalanceError{},
		},
		{
			name:         "buyer not found",
			buyerEmail:   "ghost@gwent.one",
			templateName: "Foglet",
			copyNumber:   3,
			prepareFn: func(t *testing.T, ctrl *gomock.Controller, mock pgxmock.PgxConnIface, logger *mocks.MockLogger) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				instanceRows := pgxmock.NewRows([]string{"id", "owner_id", "rarity"}).
					AddRow(int64(11), (*int64)(nil), domain.RarityCommon)
				mock.ExpectQuery("SELECT").
					WithArgs("Foglet", 3).
					WillReturnRows(instanceRows)
				mock.ExpectQuery("SELECT").
					WithArgs("Foglet", 3).
					WillReturnRows(pgxmock.NewRows([]string{"id", "seller_id", "price"}))
				mock.ExpectQuery("SELECT").
					WithArgs("ghost@gwent.one").
					WillReturnRows(pgxmock.NewRows([]string{"id", "email", "balance"}))
				mock.ExpectRollback()
			},
			expectedErr: &domain.UserNotFoundError{},
		},
		{
			name:         "pool card with unknown rarity",
			buyerEmail:   "buyer@gwent.one",
			templateName: "Foglet",
			copyNumber:   3,
			prepareFn: func(t *testing.T, ctrl *gomock.Controller, mock pgxmock.PgxConnIface, logger *mocks.MockLogger) {
				t.Helper()
				logger.EXPECT().Error(gomock.Any(), gomock.Any())
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				instanceRows := pgxmock.NewRows([]string{"id", "owner_id", "rarity"}).
					AddRow(int64(11), (*int64)(nil), domain.Rarity("Mythic"))
				mock.ExpectQuery("SELECT").
					WithArgs("Foglet", 3).
					WillReturnRows(instanceRows)
				mock.ExpectQuery("SELECT").
					WithArgs("Foglet", 3).
					WillReturnRows(pgxmock.NewRows([]string{"id", "seller_id", "price"}))
				mock.ExpectRollback()
			},
			expectedErr: &domain.UnknownRarityError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			logger := mocks.NewMockLogger(ctrl)
			tt.prepareFn(t, ctrl, mock, logger)

			buyer := NewCardBuyer(database.NewDelegateTxManager(mock), logger)
			err = buyer.Buy(t.Context(), tt.buyerEmail, tt.templateName, tt.copyNumber)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDebitBalance(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		userID int64
		amount int64

		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:   "successful debit",
			userID: 1,
			amount: 500,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE").
					WithArgs(int64(500), int64(1)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectedErr: nil,
		},
		{
			name:   "guard rejects overdraft",
			userID: 1,
			amount: 500,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE").
					WithArgs(int64(500), int64(1)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: &domain.InsufficientBalanceError{},
		},
		{
			name:   "database error",
			userID: 1,
			amount: 500,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE").
					WithArgs(int64(500), int64(1)).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			err = debitBalance(t.Context(), mock, tt.userID, tt.amount)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
