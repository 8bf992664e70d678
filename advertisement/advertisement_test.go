package advertisement_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nsolovey/distvec/advertisement"
	"github.com/nsolovey/distvec/node"
)

func TestNewCopiesPayload(t *testing.T) {
	payload := map[node.NodeID]node.LinkCost{"B": 5}
	ad := advertisement.New("A", "B", 5, payload)

	payload["B"] = 999
	require.Equal(t, node.LinkCost(5), ad.Payload["B"], "mutating the source payload must not affect the advertisement")
}

func TestElapseAndDelivered(t *testing.T) {
	ad := advertisement.New("A", "B", 5, nil)
	require.False(t, ad.Delivered())

	ad.Elapse(5)
	require.True(t, ad.Delivered())
}

func TestDeliveredWithinEpsilon(t *testing.T) {
	ad := advertisement.New("A", "B", 1, nil)
	ad.Elapse(0.5)
	ad.Elapse(0.5 - 1e-12)
	require.True(t, ad.Delivered())
}

func TestProgressInRange(t *testing.T) {
	ad := advertisement.New("A", "B", 5, nil)
	require.Equal(t, 0.0, ad.Progress(5))

	ad.Elapse(2.5)
	require.InDelta(t, 0.5, ad.Progress(5), 1e-9)

	ad.Elapse(2.5)
	require.Equal(t, 1.0, ad.Progress(5))
}
