package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromFloat_RoundsToCents(t *testing.T) {
	a, err := FromFloat(12.99)
	require.NoError(t, err)
	require.Equal(t, int64(1299), a.Cents())

	sum := a.Times(2) + MustFromFloat(4.50)
	require.Equal(t, "$30.48", sum.String())
}

func TestFromFloat_RejectsNegative(t *testing.T) {
	_, err := FromFloat(-0.01)
	require.ErrorIs(t, err, ErrNegative)
}

func TestAmount_JSON(t *testing.T) {
	raw, err := json.Marshal(struct {
		Price Amount `json:"price"`
	}{Price: MustFromFloat(16.5)})
	require.NoError(t, err)
	require.JSONEq(t, `{"price":16.50}`, string(raw))

	var decoded struct {
		Price Amount `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price":3.5}`), &decoded))
	require.Equal(t, Amount(350), decoded.Price)
}
