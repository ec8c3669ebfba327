package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTablePadsRows(t *testing.T) {
	tbl := NewTable(ProductSale, []string{ColProductName, ColSoldBy}, []Row{
		{ColProductName: "Serum"},
		{ColProductName: "Oil", ColSoldBy: "Riya", "Extra": "dropped"},
	})

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, Row{ColProductName: "Serum", ColSoldBy: ""}, tbl.Rows[0])
	assert.NotContains(t, tbl.Rows[1], "Extra")
	assert.Equal(t, "Riya", tbl.Get(1, ColSoldBy))
	assert.Equal(t, "", tbl.Get(5, ColSoldBy))
}

func TestTableCloneIsDeep(t *testing.T) {
	tbl := NewTable(ClientData, []string{ColName}, []Row{{ColName: "Asha"}})
	cp := tbl.Clone()
	cp.Rows[0][ColName] = "Changed"
	cp.Columns[0] = "Other"

	assert.Equal(t, "Asha", tbl.Rows[0][ColName])
	assert.Equal(t, ColName, tbl.Columns[0])
}

func TestNilTableIsEmpty(t *testing.T) {
	var tbl *Table
	assert.True(t, tbl.Empty())
	assert.False(t, tbl.HasColumn(ColName))
	assert.Nil(t, tbl.Clone())
}

func TestMirrorRowsUseSheetHeaders(t *testing.T) {
	row := ServiceVisit{Name: "Asha", HairCut: "Yes", DeTan: "Yes"}.ToRow()
	for _, c := range ServiceVisitColumns {
		assert.Contains(t, row, c)
	}
	assert.Equal(t, "Yes", row["Hair Cut"])
	assert.Equal(t, "Yes", row["De-tan"])

	sale := ProductSaleRecord{Date: "01-Mar-2024", SoldBy: "Riya"}.ToRow()
	for _, c := range ProductSaleColumns {
		assert.Contains(t, sale, c)
	}
}
