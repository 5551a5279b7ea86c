package respond

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"funfans-backend/credits"
	"funfans-backend/media"
	"funfans-backend/payments"
	"funfans-backend/store"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("load user: %w", store.ErrNotFound), http.StatusNotFound},
		{credits.ErrItemUnavailable, http.StatusNotFound},
		{store.ErrAlreadyExists, http.StatusConflict},
		{credits.ErrAlreadyUnlocked, http.StatusConflict},
		{credits.ErrPurchaseInFlight, http.StatusConflict},
		{credits.ErrInsufficientBalance, http.StatusPaymentRequired},
		{credits.ErrInvalidAmount, http.StatusBadRequest},
		{payments.ErrInvalidSignature, http.StatusBadRequest},
		{credits.ErrOwnItem, http.StatusForbidden},
		{payments.ErrDisabled, http.StatusServiceUnavailable},
		{media.ErrStorageDisabled, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Status(tt.err), tt.err.Error())
	}
}
