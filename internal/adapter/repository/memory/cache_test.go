package memory

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/payengine/internal/domain"
	"github.com/iho/payengine/internal/usecase/mocks"
)

func TestCachedStore_ReadThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	base := mocks.NewMockTransactionStore(ctrl)

	cached, err := NewCachedStore(base, 4, nil)
	require.NoError(t, err)

	tx := depositTx(16)

	// Store passes through and primes the cache, so the following Access
	// must not reach the base store at all.
	base.EXPECT().Store(tx)
	cached.Store(tx)

	record, state, ok := cached.Access(16)
	require.True(t, ok)
	assert.Equal(t, tx, record)
	assert.Equal(t, domain.StateCommitted, state)

	// A cold id falls through to the base store exactly once, then is cached.
	other := depositTx(17)
	base.EXPECT().Access(uint32(17)).Return(other, domain.StateDisputed, true)

	record, state, ok = cached.Access(17)
	require.True(t, ok)
	assert.Equal(t, other, record)
	assert.Equal(t, domain.StateDisputed, state)

	_, state, ok = cached.Access(17)
	require.True(t, ok)
	assert.Equal(t, domain.StateDisputed, state)
}

func TestCachedStore_UpdateWritesBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	base := mocks.NewMockTransactionStore(ctrl)

	cached, err := NewCachedStore(base, 4, nil)
	require.NoError(t, err)

	tx := depositTx(16)
	base.EXPECT().Store(tx)
	cached.Store(tx)

	base.EXPECT().Update(uint32(16), domain.StateDisputed).Return(tx, nil)
	record, err := cached.Update(16, domain.StateDisputed)
	require.NoError(t, err)
	assert.Equal(t, tx, record)

	// The cached state must reflect the committed transition without asking
	// the base store again.
	_, state, ok := cached.Access(16)
	require.True(t, ok)
	assert.Equal(t, domain.StateDisputed, state)
}

func TestCachedStore_FailedUpdateLeavesCacheAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	base := mocks.NewMockTransactionStore(ctrl)

	cached, err := NewCachedStore(base, 4, nil)
	require.NoError(t, err)

	tx := depositTx(16)
	base.EXPECT().Store(tx)
	cached.Store(tx)

	base.EXPECT().Update(uint32(16), domain.StateResolved).
		Return(domain.Transaction{}, &domain.WrongStateError{Current: domain.StateCommitted})

	_, err = cached.Update(16, domain.StateResolved)
	var wrongState *domain.WrongStateError
	require.ErrorAs(t, err, &wrongState)

	_, state, ok := cached.Access(16)
	require.True(t, ok)
	assert.Equal(t, domain.StateCommitted, state)
}

// A tiny cache in front of the store must not change any operation outcome
// compared to the bare store, whatever the access pattern.
func TestCachedStore_TransparentAgainstBareStore(t *testing.T) {
	bare := NewStore()
	cached, err := NewCachedStore(NewStore(), 2, nil)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(11))
	states := []domain.TxState{
		domain.StateCommitted,
		domain.StateDisputed,
		domain.StateResolved,
		domain.StateChargedBack,
		domain.StateChargedBackFinal,
	}

	for i := 0; i < 20000; i++ {
		id := uint32(rng.Intn(16))

		switch rng.Intn(3) {
		case 0:
			tx := domain.Transaction{
				ID:       id,
				ClientID: uint16(rng.Intn(4)),
				Kind:     domain.TxKind(rng.Intn(2)),
				Amount:   domain.NewAmount(uint64(rng.Intn(100)), 0),
			}
			bare.Store(tx)
			cached.Store(tx)
		case 1:
			bareRecord, bareState, bareOK := bare.Access(id)
			cachedRecord, cachedState, cachedOK := cached.Access(id)
			require.Equal(t, bareOK, cachedOK, "access presence diverged for id %d", id)
			require.Equal(t, bareRecord, cachedRecord)
			require.Equal(t, bareState, cachedState)
		case 2:
			state := states[rng.Intn(len(states))]
			bareRecord, bareErr := bare.Update(id, state)
			cachedRecord, cachedErr := cached.Update(id, state)
			require.Equal(t, bareErr, cachedErr, "update outcome diverged for id %d -> %s", id, state)
			require.Equal(t, bareRecord, cachedRecord)
		}
	}
}
