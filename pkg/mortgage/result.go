package mortgage

import (
	"strconv"

	"github.com/jfcarrier/mortgage-compare/pkg/constants"
	"github.com/jfcarrier/mortgage-compare/pkg/mathutil"
)

// Result is the flattened, report-ready record of one property's
// calculation. Key names and units are the contract consumed by the CSV
// writer and report generator: currency in dollars, rates as percentages.
// They must not change.
type Result struct {
	Description            string
	Address                string
	Link                   string
	Bedrooms               int
	Bathrooms              int
	Area                   float64
	YearBuilt              int
	PropertyValue          float64
	DownPayment            float64
	LoanAmount             float64
	InterestRate           float64
	YearsOfLoan            int
	MonthlyMortgagePayment float64
	MonthlyInterest        float64
	YearlyInterest         float64
	TotalInterest          float64
	CondoFees              float64
	TotalMonthlyCosts      float64
	LandTransferTaxRate    float64 // percentage
	LandTransferTax        float64
	NotaryCost             float64
	InspectionCost         float64
	TotalOneTimeCosts      float64
	CashToClose            float64
	PropertyTaxRate        float64 // percentage
	YearlyPropertyTax      float64
	MonthlyPropertyTax     float64
	SchoolTaxRate          float64 // percentage
	YearlySchoolTax        float64
	MonthlySchoolTax       float64
	YearlyHomeInsurance    float64
	MonthlyHomeInsurance   float64
	TotalYearlyCosts       float64
	PricePerSqft           float64
	MonthlySalary          float64
	MonthlyDebtPayment     float64
	GDSRatio               float64
	TDSRatio               float64
}

// Canonical record key names.
const (
	KeyDescription            = "Description"
	KeyAddress                = "Address"
	KeyLink                   = "Link"
	KeyBedrooms               = "Bedrooms"
	KeyBathrooms              = "Bathrooms"
	KeyArea                   = "Area"
	KeyYearBuilt              = "Year_Built"
	KeyPropertyValue          = "Property_Value"
	KeyDownPayment            = "Down_Payment"
	KeyLoanAmount             = "Loan_Amount"
	KeyInterestRate           = "Interest_Rate"
	KeyYearsOfLoan            = "Years_of_Loan"
	KeyMonthlyMortgagePayment = "Monthly_Mortgage_Payment"
	KeyMonthlyInterest        = "Monthly_Interest"
	KeyYearlyInterest         = "Yearly_Interest"
	KeyTotalInterest          = "Total_Interest"
	KeyCondoFees              = "Condo_Fees"
	KeyTotalMonthlyCosts      = "Total_Monthly_Costs"
	KeyLandTransferTaxRate    = "Land_Transfer_Tax_Rate"
	KeyLandTransferTax        = "Land_Transfer_Tax"
	KeyNotaryCost             = "Notary_Cost"
	KeyInspectionCost         = "Inspection_Cost"
	KeyTotalOneTimeCosts      = "Total_One_Time_Costs"
	KeyCashToClose            = "Cash_to_Close"
	KeyPropertyTaxRate        = "Property_Tax_Rate"
	KeyYearlyPropertyTax      = "Yearly_Property_Tax"
	KeyMonthlyPropertyTax     = "Monthly_Property_Tax"
	KeySchoolTaxRate          = "School_Tax_Rate"
	KeyYearlySchoolTax        = "Yearly_School_Tax"
	KeyMonthlySchoolTax       = "Monthly_School_Tax"
	KeyYearlyHomeInsurance    = "Yearly_Home_Insurance"
	KeyMonthlyHomeInsurance   = "Monthly_Home_Insurance"
	KeyTotalYearlyCosts       = "Total_Yearly_Costs"
	KeyPricePerSqft           = "Price_Per_Sqft"
	KeyMonthlySalary          = "Monthly_Salary"
	KeyMonthlyDebtPayment     = "Monthly_Debt_Payment"
	KeyGDSRatio               = "GDS_Ratio"
	KeyTDSRatio               = "TDS_Ratio"
)

// Header returns the record key names in canonical column order.
func Header() []string {
	return []string{
		KeyDescription,
		KeyAddress,
		KeyLink,
		KeyBedrooms,
		KeyBathrooms,
		KeyArea,
		KeyYearBuilt,
		KeyPropertyValue,
		KeyDownPayment,
		KeyLoanAmount,
		KeyInterestRate,
		KeyYearsOfLoan,
		KeyMonthlyMortgagePayment,
		KeyMonthlyInterest,
		KeyYearlyInterest,
		KeyTotalInterest,
		KeyCondoFees,
		KeyTotalMonthlyCosts,
		KeyLandTransferTaxRate,
		KeyLandTransferTax,
		KeyNotaryCost,
		KeyInspectionCost,
		KeyTotalOneTimeCosts,
		KeyCashToClose,
		KeyPropertyTaxRate,
		KeyYearlyPropertyTax,
		KeyMonthlyPropertyTax,
		KeySchoolTaxRate,
		KeyYearlySchoolTax,
		KeyMonthlySchoolTax,
		KeyYearlyHomeInsurance,
		KeyMonthlyHomeInsurance,
		KeyTotalYearlyCosts,
		KeyPricePerSqft,
		KeyMonthlySalary,
		KeyMonthlyDebtPayment,
		KeyGDSRatio,
		KeyTDSRatio,
	}
}

// Flatten merges the calculation with its inputs into the flat Result
// record. The land transfer tax rate is converted from a decimal fraction
// back to a percentage here, matching the record's units.
func (m CalculatedMortgage) Flatten(listing Listing, property PropertyTerms, loan LoanTerms, costs ClosingCosts) Result {
	return Result{
		Description:            listing.Description,
		Address:                listing.Address,
		Link:                   listing.Link,
		Bedrooms:               listing.Bedrooms,
		Bathrooms:              listing.Bathrooms,
		Area:                   property.AreaSqft,
		YearBuilt:              listing.YearBuilt,
		PropertyValue:          property.Value,
		DownPayment:            loan.DownPayment,
		LoanAmount:             m.LoanAmount,
		InterestRate:           loan.InterestRate,
		YearsOfLoan:            loan.Years,
		MonthlyMortgagePayment: m.MonthlyPayment,
		MonthlyInterest:        m.MonthlyInterest,
		YearlyInterest:         m.YearlyInterest,
		TotalInterest:          m.TotalInterest,
		CondoFees:              property.CondoFees,
		TotalMonthlyCosts:      m.TotalMonthlyCosts,
		LandTransferTaxRate:    mathutil.RoundRate(m.LandTransferTaxRate * constants.PercentageMultiplier),
		LandTransferTax:        m.LandTransferTax,
		NotaryCost:             costs.NotaryCost,
		InspectionCost:         costs.InspectionCost,
		TotalOneTimeCosts:      m.TotalOneTimeCosts,
		CashToClose:            m.CashToClose,
		PropertyTaxRate:        property.PropertyTaxRate,
		YearlyPropertyTax:      m.YearlyPropertyTax,
		MonthlyPropertyTax:     m.MonthlyPropertyTax,
		SchoolTaxRate:          property.SchoolTaxRate,
		YearlySchoolTax:        m.YearlySchoolTax,
		MonthlySchoolTax:       m.MonthlySchoolTax,
		YearlyHomeInsurance:    m.YearlyHomeInsurance,
		MonthlyHomeInsurance:   m.MonthlyHomeInsurance,
		TotalYearlyCosts:       m.TotalYearlyCosts,
		PricePerSqft:           m.PricePerSqft,
		MonthlySalary:          loan.MonthlySalary,
		MonthlyDebtPayment:     loan.MonthlyDebtPayment,
		GDSRatio:               m.GDSRatio,
		TDSRatio:               m.TDSRatio,
	}
}

// Row returns the record's values as strings, aligned with Header.
func (r Result) Row() []string {
	return []string{
		r.Description,
		r.Address,
		r.Link,
		strconv.Itoa(r.Bedrooms),
		strconv.Itoa(r.Bathrooms),
		formatNumber(r.Area),
		strconv.Itoa(r.YearBuilt),
		formatNumber(r.PropertyValue),
		formatNumber(r.DownPayment),
		formatNumber(r.LoanAmount),
		formatNumber(r.InterestRate),
		strconv.Itoa(r.YearsOfLoan),
		formatNumber(r.MonthlyMortgagePayment),
		formatNumber(r.MonthlyInterest),
		formatNumber(r.YearlyInterest),
		formatNumber(r.TotalInterest),
		formatNumber(r.CondoFees),
		formatNumber(r.TotalMonthlyCosts),
		formatNumber(r.LandTransferTaxRate),
		formatNumber(r.LandTransferTax),
		formatNumber(r.NotaryCost),
		formatNumber(r.InspectionCost),
		formatNumber(r.TotalOneTimeCosts),
		formatNumber(r.CashToClose),
		formatNumber(r.PropertyTaxRate),
		formatNumber(r.YearlyPropertyTax),
		formatNumber(r.MonthlyPropertyTax),
		formatNumber(r.SchoolTaxRate),
		formatNumber(r.YearlySchoolTax),
		formatNumber(r.MonthlySchoolTax),
		formatNumber(r.YearlyHomeInsurance),
		formatNumber(r.MonthlyHomeInsurance),
		formatNumber(r.TotalYearlyCosts),
		formatNumber(r.PricePerSqft),
		formatNumber(r.MonthlySalary),
		formatNumber(r.MonthlyDebtPayment),
		formatNumber(r.GDSRatio),
		formatNumber(r.TDSRatio),
	}
}

// Record returns the record as a key-to-value map with the Header keys.
func (r Result) Record() map[string]string {
	header := Header()
	row := r.Row()
	record := make(map[string]string, len(header))
	for i, key := range header {
		record[key] = row[i]
	}
	return record
}

// formatNumber renders a float with the shortest representation that
// round-trips, so 1400.61 stays "1400.61" and 125.00 becomes "125".
func formatNumber(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}
