package models

// ProductSaleRecord is one row of the "Product Sale" sheet as mirrored into
// Postgres.
type ProductSaleRecord struct {
	Timestamp   string `gorm:"column:Timestamp"`
	Date        string `gorm:"column:Date"`
	ProductName string `gorm:"column:Product Name"`
	BillAmount  string `gorm:"column:Bill Amount"`
	SoldBy      string `gorm:"column:Sold by"`
}

func (ProductSaleRecord) TableName() string { return "product_sale" }

var ProductSaleColumns = []string{
	ColTimestamp, ColDate, ColProductName, ColBillAmount, ColSoldBy,
}

func (p ProductSaleRecord) ToRow() Row {
	return Row{
		ColTimestamp:   p.Timestamp,
		ColDate:        p.Date,
		ColProductName: p.ProductName,
		ColBillAmount:  p.BillAmount,
		ColSoldBy:      p.SoldBy,
	}
}
