package activityfeed

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gabapcia/txledger/internal/activity"
	transporthttp "github.com/gabapcia/txledger/internal/pkg/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchActivity(t *testing.T) {
	t.Run("successful fetch decodes the transaction list", func(t *testing.T) {
		// Setup
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/activity", r.URL.Path)
			assert.Equal(t, "0xwallet", r.URL.Query().Get("address"))
			assert.Equal(t, "1", r.URL.Query().Get("chainId"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"transactions": [
					{
						"label": "SEND",
						"hash": "0xtx1",
						"chainId": 1,
						"from": "0xwallet",
						"status": "CONFIRMED",
						"transfers": [
							{
								"direction": "send",
								"asset": {"chainId": 1, "address": "0x6B175474E89094C44Da98b954EedeAC495271d0F", "symbol": "DAI", "decimals": 18},
								"amountRaw": "1000000000000000000",
								"recipient": "0xrecipient"
							}
						]
					}
				]
			}`))
		}))
		defer server.Close()

		feed := NewClient(transporthttp.NewClient(), server.URL)

		// Execute
		records, err := feed.FetchActivity(t.Context(), "0xwallet", 1)

		// Assert
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, activity.LabelSend, records[0].Label)
		assert.Equal(t, "0xtx1", records[0].Hash)
		assert.Equal(t, activity.RawStatusConfirmed, records[0].Status)
		require.Len(t, records[0].Transfers, 1)
		assert.Equal(t, "1000000000000000000", records[0].Transfers[0].AmountRaw)
	})

	t.Run("empty feed returns no records", func(t *testing.T) {
		// Setup
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"transactions": []}`))
		}))
		defer server.Close()

		feed := NewClient(transporthttp.NewClient(), server.URL)

		// Execute
		records, err := feed.FetchActivity(t.Context(), "0xwallet", 1)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("non-200 status fails", func(t *testing.T) {
		// Setup
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		feed := NewClient(transporthttp.NewClient(), server.URL)

		// Execute
		_, err := feed.FetchActivity(t.Context(), "0xwallet", 1)

		// Assert
		require.ErrorIs(t, err, ErrUnexpectedStatus)
	})
}
