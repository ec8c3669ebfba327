package models

// Logical dataset names, matching the worksheet titles of the bills workbook.
const (
	ClientData  = "Client Data"
	ProductSale = "Product Sale"
)

// Raw column headers.
const (
	ColTimestamp     = "Timestamp"
	ColDate          = "Date"
	ColName          = "Name"
	ColPhoneNumber   = "Phone Number"
	ColBillAmount    = "Bill Amount"
	ColServiceDoneBy = "Service done by"
	ColProductName   = "Product Name"
	ColSoldBy        = "Sold by"
)

// ServiceColumns are the per-service flag columns of a client visit, in the
// order the dashboard lists them.
var ServiceColumns = []string{
	"Waxing",
	"Facial",
	"De-tan",
	"Pedicure",
	"Manicure",
	"Bleaching",
	"Wash",
	"Massage",
	"Threading",
	"Hair Cut",
}

// Datasets lists every dataset the dashboard knows how to read.
var Datasets = []string{ClientData, ProductSale}
