package services

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"realestate-stats/models"
	"realestate-stats/storage"
	"realestate-stats/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLoggerTo(io.Discard, io.Discard) }

const testHeader = "brokered_by,status,price,bed,bath,acre_lot,street,city,state,zip_code,house_size,prev_sold_date\n"

// row builds a data line in testHeader order.
func row(price, bed, bath, state, houseSize string) string {
	return strings.Join([]string{"101", "for_sale", price, bed, bath, "0.1", "1 Main St", "Town", state, "00601", houseSize, ""}, ",") + "\n"
}

func loadString(t *testing.T, data string, classifier Classifier) (*models.Collection, *LoadStats) {
	t.Helper()
	ld := NewLoader(newTestLogger(), classifier)
	coll, stats, err := ld.Load(storage.NewReader(strings.NewReader(data), ','))
	require.NoError(t, err)
	return coll, stats
}

func prices(ls []*models.Listing) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.Price()
	}
	return out
}
