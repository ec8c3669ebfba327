package metrics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-insights/models"
)

func TestTopClientsTruncatesToTwenty(t *testing.T) {
	e := engineAt(fridayEvening)
	var rows []models.Row
	for i := 0; i < 25; i++ {
		rows = append(rows, visit("01/02/2024 10:00:00",
			fmt.Sprintf("Client %02d", i),
			fmt.Sprintf("90000000%02d", i),
			fmt.Sprintf("%d", (i+1)*100), "Riya"))
	}
	f := clientFrame(t, e, rows...)

	top, err := e.TopClientsSpendVisits(f)
	require.NoError(t, err)
	require.Len(t, top, ClientListSize)
	assert.Equal(t, "Client 24", top[0].Name)
	assertDecimal(t, "2500", top[0].TotalSpent.Decimal)
	assert.Equal(t, "Client 05", top[19].Name)

	least, err := e.LeastClientsSpendVisits(f)
	require.NoError(t, err)
	require.Len(t, least, ClientListSize)
	assert.Equal(t, "Client 00", least[0].Name)
	assert.Equal(t, "Client 19", least[19].Name)
}

func TestLeastClientsSkipUnbilledCustomers(t *testing.T) {
	e := engineAt(fridayEvening)
	f := clientFrame(t, e,
		visit("01/02/2024 10:00:00", "Ghost", "9000000001", "", "Riya"),
		visit("01/02/2024 11:00:00", "Asha", "9000000002", "50", "Riya"),
		visit("01/02/2024 12:00:00", "Ben", "9000000003", "abc", "Riya"),
		visit("01/02/2024 13:00:00", "Walk-in", "", "10", "Riya"),
	)

	least, err := e.LeastClientsSpendVisits(f)
	require.NoError(t, err)
	require.Len(t, least, 1)
	assert.Equal(t, "Asha", least[0].Name)
	assert.True(t, least[0].TotalSpent.Valid)
}

func TestClientSpendTiesKeepFirstSeenOrder(t *testing.T) {
	e := engineAt(fridayEvening)
	f := clientFrame(t, e,
		visit("01/02/2024 10:00:00", "Asha", "9000000001", "100", "Riya"),
		visit("02/02/2024 10:00:00", "Ben", "9000000002", "100", "Riya"),
		visit("03/02/2024 10:00:00", "Cleo", "9000000003", "40", "Riya"),
		visit("04/02/2024 10:00:00", "Cleo", "9000000003", "60", "Riya"),
	)

	top, err := e.TopClientsSpendVisits(f)
	require.NoError(t, err)
	names := []string{top[0].Name, top[1].Name, top[2].Name}
	assert.Equal(t, []string{"Asha", "Ben", "Cleo"}, names)
	assert.Equal(t, 2, top[2].Visits)
}

func TestClientNameIsFirstNonBlank(t *testing.T) {
	e := engineAt(fridayEvening)
	f := clientFrame(t, e,
		visit("01/02/2024 10:00:00", " ", "9000000001", "100", "Riya"),
		visit("02/02/2024 10:00:00", "Asha", "+91 90000-00001", "100", "Riya"),
		visit("03/02/2024 10:00:00", "Asha K", "9000000001", "100", "Riya"),
	)

	top, err := e.TopClientsSpendVisits(f)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Asha", top[0].Name)
	assert.Equal(t, 3, top[0].Visits)
}

func TestSpendVsVisits(t *testing.T) {
	e := engineAt(fridayEvening)
	f := clientFrame(t, e,
		visit("01/02/2024 10:00:00", "Asha", "9000000001", "100", "Riya"),
		visit("02/02/2024 10:00:00", "Asha", "9000000001", "100", "Riya"),
		visit("03/02/2024 10:00:00", "Asha", "9000000001", "33.33", "Riya"),
		visit("04/02/2024 10:00:00", "Ghost", "9000000002", "", "Riya"),
		visit("05/02/2024 10:00:00", "Ben", "9000000003", "500", "Riya"),
	)

	out, err := e.SpendVsVisits(f)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "Ben", out[0].Name)
	assertDecimal(t, "500", out[0].AvgSpendPerVisit.Decimal)

	assert.Equal(t, "Asha", out[1].Name)
	assert.Equal(t, 3, out[1].Visits)
	assertDecimal(t, "233.33", out[1].TotalSpent.Decimal)
	assertDecimal(t, "77.78", out[1].AvgSpendPerVisit.Decimal)

	assert.Equal(t, "Ghost", out[2].Name)
	assert.False(t, out[2].TotalSpent.Valid)
	assert.False(t, out[2].AvgSpendPerVisit.Valid)
}

func TestLegacyClientListsAreKeyedByName(t *testing.T) {
	e := engineAt(fridayEvening)
	f := clientFrame(t, e,
		visit("01/02/2024 10:00:00", "Asha", "9000000001", "100", "Riya"),
		visit("02/02/2024 10:00:00", "Asha", "9000000009", "300", "Riya"),
		visit("03/02/2024 10:00:00", "Ben", "9000000002", "250", "Riya"),
	)

	visits, err := e.TopClientsByVisits(f)
	require.NoError(t, err)
	assert.Equal(t, []ClientVisits{{Name: "Asha", Visits: 2}, {Name: "Ben", Visits: 1}}, visits)

	spenders, err := e.TopSpenders(f)
	require.NoError(t, err)
	require.Len(t, spenders, 2)
	assert.Equal(t, "Asha", spenders[0].Name)
	assertDecimal(t, "400", spenders[0].TotalSpent)
	assert.Equal(t, "Ben", spenders[1].Name)
}

func TestTopSpendersTruncatesToTen(t *testing.T) {
	e := engineAt(fridayEvening)
	var rows []models.Row
	for i := 0; i < 12; i++ {
		rows = append(rows, visit("01/02/2024 10:00:00", fmt.Sprintf("C%d", i), "", fmt.Sprintf("%d", i+1), "Riya"))
	}
	spenders, err := e.TopSpenders(clientFrame(t, e, rows...))
	require.NoError(t, err)
	assert.Len(t, spenders, SpenderListSize)
	assert.Equal(t, "C11", spenders[0].Name)
}
