package domain_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
)

func poolParams() domain.PoolParams {
	return domain.PoolParams{
		OwnerName: "Alice",
		Length:    10,
		Width:     5,
		Depth:     2,
		Type:      "chlorine",
	}
}

func TestNewPool_ComputesVolumeByDefault(t *testing.T) {
	p, err := domain.NewPool(poolParams())

	require.NoError(t, err)
	assert.Empty(t, p.ID, "ID is assigned by the store, not the constructor")
	assert.Equal(t, 100.0, p.WaterVolume)
	assert.Equal(t, 100.0, p.CalculateVolume())
	assert.NotNil(t, p.Logbook)
	assert.Empty(t, p.Logbook)
}

func TestNewPool_ExplicitVolumeIsKept(t *testing.T) {
	params := poolParams()
	vol := 87.5
	params.WaterVolume = &vol

	p, err := domain.NewPool(params)

	require.NoError(t, err)
	assert.Equal(t, 87.5, p.WaterVolume)
	assert.Equal(t, 100.0, p.CalculateVolume(), "CalculateVolume ignores the stored volume")
}

func TestCalculateVolume_Property(t *testing.T) {
	for _, dims := range [][3]float64{
		{1, 1, 1},
		{0.5, 2, 4},
		{25, 12.5, 1.8},
		{1e-3, 1e3, 7},
	} {
		params := poolParams()
		params.Length, params.Width, params.Depth = dims[0], dims[1], dims[2]

		p, err := domain.NewPool(params)

		require.NoError(t, err)
		assert.Equal(t, dims[0]*dims[1]*dims[2], p.CalculateVolume(), "dims %v", dims)
	}
}

func TestNewPool_RejectsNonPositiveDimensions(t *testing.T) {
	bad := []float64{0, -1, -0.0001, math.NaN(), math.Inf(1)}

	for _, field := range []string{"length", "width", "depth"} {
		for _, v := range bad {
			t.Run(fmt.Sprintf("%s=%v", field, v), func(t *testing.T) {
				params := poolParams()
				switch field {
				case "length":
					params.Length = v
				case "width":
					params.Width = v
				case "depth":
					params.Depth = v
				}

				_, err := domain.NewPool(params)

				require.ErrorIs(t, err, domain.ErrValidation)
				assert.Contains(t, err.Error(), field)
			})
		}
	}
}

func TestNewPool_RequiredFields(t *testing.T) {
	params := poolParams()
	params.OwnerName = "   "
	_, err := domain.NewPool(params)
	assert.ErrorIs(t, err, domain.ErrValidation)

	params = poolParams()
	params.Type = ""
	_, err = domain.NewPool(params)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewPool_NegativeVolumeRejected(t *testing.T) {
	params := poolParams()
	vol := -3.0
	params.WaterVolume = &vol

	_, err := domain.NewPool(params)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewPool_InitialLogbookDuplicateIDs(t *testing.T) {
	id := uuid.NewString()
	params := poolParams()
	params.Logbook = []domain.LogParams{
		{ID: id, Date: "2024-01-01", PHLevel: 7.4, ChlorineLevel: 2},
		{ID: id, Date: "2024-01-02", PHLevel: 7.5, ChlorineLevel: 2},
	}

	_, err := domain.NewPool(params)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPool_LogMaintenanceAndSchedule(t *testing.T) {
	p, err := domain.NewPool(poolParams())
	require.NoError(t, err)

	log, err := domain.NewPoolLog(domain.LogParams{Date: "2024-01-01", PHLevel: 7.5, ChlorineLevel: 2})
	require.NoError(t, err)

	p.LogMaintenance(log)
	p.ScheduleMaintenance("2024-02-01")

	require.Len(t, p.Logbook, 1)
	assert.Equal(t, log, p.Logbook[0])
	assert.Equal(t, "2024-02-01", p.NextMaintenance)

	found, ok := p.FindLog(log.ID)
	assert.True(t, ok)
	assert.Equal(t, log, found)
}

func TestNewPoolLog_GeneratesID(t *testing.T) {
	a, err := domain.NewPoolLog(domain.LogParams{Date: "2024-01-01", PHLevel: 7.5, ChlorineLevel: 2})
	require.NoError(t, err)
	b, err := domain.NewPoolLog(domain.LogParams{Date: "2024-01-01", PHLevel: 7.5, ChlorineLevel: 2})
	require.NoError(t, err)

	_, parseErr := uuid.Parse(a.ID)
	assert.NoError(t, parseErr)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewPoolLog_CanonicalizesSuppliedID(t *testing.T) {
	id := uuid.New()

	log, err := domain.NewPoolLog(domain.LogParams{
		ID:   "{" + id.String() + "}",
		Date: "2024-01-01",
	})

	require.NoError(t, err)
	assert.Equal(t, id.String(), log.ID)
}

func TestNewPoolLog_Rejects(t *testing.T) {
	_, err := domain.NewPoolLog(domain.LogParams{ID: "not-a-uuid", Date: "2024-01-01"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = domain.NewPoolLog(domain.LogParams{Date: " "})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewPoolLog_ReadingsAreNotRangeChecked(t *testing.T) {
	log, err := domain.NewPoolLog(domain.LogParams{Date: "2024-01-01", PHLevel: 15, ChlorineLevel: -1})

	require.NoError(t, err)
	assert.Equal(t, 15.0, log.PHLevel)
	assert.Equal(t, -1.0, log.ChlorineLevel)
}

func TestCanonicalLogID(t *testing.T) {
	id := uuid.New()

	assert.Equal(t, id.String(), domain.CanonicalLogID(" "+id.String()+" "))
	assert.Equal(t, id.String(), domain.CanonicalLogID("urn:uuid:"+id.String()))
	assert.Equal(t, "abc", domain.CanonicalLogID("abc"))
}
