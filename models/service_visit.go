package models

// ServiceVisit is one row of the "Client Data" sheet as mirrored into
// Postgres. Every column is kept as text, exactly as the sheet shows it.
type ServiceVisit struct {
	Timestamp     string `gorm:"column:Timestamp"`
	Name          string `gorm:"column:Name"`
	PhoneNumber   string `gorm:"column:Phone Number"`
	BillAmount    string `gorm:"column:Bill Amount"`
	ServiceDoneBy string `gorm:"column:Service done by"`

	Waxing    string `gorm:"column:Waxing"`
	Facial    string `gorm:"column:Facial"`
	DeTan     string `gorm:"column:De-tan"`
	Pedicure  string `gorm:"column:Pedicure"`
	Manicure  string `gorm:"column:Manicure"`
	Bleaching string `gorm:"column:Bleaching"`
	Wash      string `gorm:"column:Wash"`
	Massage   string `gorm:"column:Massage"`
	Threading string `gorm:"column:Threading"`
	HairCut   string `gorm:"column:Hair Cut"`
}

func (ServiceVisit) TableName() string { return "client_data" }

// ServiceVisitColumns is the header order of the mirrored sheet.
var ServiceVisitColumns = append([]string{
	ColTimestamp, ColName, ColPhoneNumber, ColBillAmount, ColServiceDoneBy,
}, ServiceColumns...)

func (v ServiceVisit) ToRow() Row {
	return Row{
		ColTimestamp:     v.Timestamp,
		ColName:          v.Name,
		ColPhoneNumber:   v.PhoneNumber,
		ColBillAmount:    v.BillAmount,
		ColServiceDoneBy: v.ServiceDoneBy,
		"Waxing":         v.Waxing,
		"Facial":         v.Facial,
		"De-tan":         v.DeTan,
		"Pedicure":       v.Pedicure,
		"Manicure":       v.Manicure,
		"Bleaching":      v.Bleaching,
		"Wash":           v.Wash,
		"Massage":        v.Massage,
		"Threading":      v.Threading,
		"Hair Cut":       v.HairCut,
	}
}
