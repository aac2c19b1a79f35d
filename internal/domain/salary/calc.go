package salary

import (
	"reflect"

	"github.com/shopspring/decimal"

	"backoffice/internal/platform/money"
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
	three   = decimal.NewFromInt(3)
	half    = decimal.RequireFromString("0.5")

	franchise        = decimal.RequireFromString(franchisePerHour)
	employerOffset   = decimal.RequireFromString(healthEmployerOffset)
	employeeOffset   = decimal.RequireFromString(healthEmployeeOffset)
	encashable       = decimal.RequireFromString(encashableShare)
	maxET            = decimal.NewFromInt(maxETShare)
	weeks            = decimal.NewFromInt(weeksPerYear)
	pct              = money.Percent
	sum              = money.Sum
	decimalType      = reflect.TypeOf(decimal.Decimal{})
	incomeTaxColumns = [2]int{columnIncomeTax, columnIncomeTaxDiscount}
	specialColumns   = [2]int{columnSpecialRate, columnSpecialRateDiscount}
)

// Calculate expands one worker-period into its employer cost and net salary
// lines. Every line depends only on the input and on lines computed before
// it. Intermediate values are exact; the result is rounded to cents.
func Calculate(in Input, tables Tables) (Calculation, error) {
	var r Result

	hours := sum(in.HoursPerWeek, in.ExtraHoursDiscountRate1, in.ExtraHoursDiscountRate2)
	totalHours := sum(hours, in.ExtraHoursRate1, in.ExtraHoursRate2)

	// salary
	r.SalaryInEURCostPrice = in.HourlyRate.Mul(hours)
	r.SalaryInEURNetSalary = r.SalaryInEURCostPrice
	r.AdditionETCostsCostPrice = pct(in.ETCosts.Mul(hours), in.AdditionETCosts)
	r.AdditionETCostsNetSalary = r.AdditionETCostsCostPrice
	r.BasicSalaryCostPrice = r.SalaryInEURCostPrice.Add(r.AdditionETCostsCostPrice)
	r.BasicSalaryNetSalary = r.SalaryInEURNetSalary.Add(r.AdditionETCostsNetSalary)
	r.BasicSalaryDeductionETCostPrice = r.AdditionETCostsCostPrice.Neg()
	r.BasicSalaryDeductionETNetSalary = r.BasicSalaryDeductionETCostPrice
	r.InterimSalaryCostPrice = r.BasicSalaryCostPrice.Add(r.BasicSalaryDeductionETCostPrice)
	r.InterimSalaryNetSalary = r.BasicSalaryNetSalary.Add(r.BasicSalaryDeductionETNetSalary)
	r.InterimSalaryAdjustmentCostPrice = pct(r.InterimSalaryCostPrice, in.InterimSalaryAdjustment)
	r.InterimSalaryAdjustmentNetSalary = r.InterimSalaryAdjustmentCostPrice
	r.FinalSalaryCostPrice = r.InterimSalaryCostPrice.Add(r.InterimSalaryAdjustmentCostPrice)
	r.FinalSalaryNetSalary = r.InterimSalaryNetSalary.Add(r.InterimSalaryAdjustmentNetSalary)

	if hours.IsPositive() {
		r.SalaryPerCAOPerHour = r.BasicSalaryCostPrice.Div(hours)
	}
	if err := checkETShare(in.ETCosts.Mul(in.AdditionETCosts), r.SalaryPerCAOPerHour); err != nil {
		return Calculation{}, err
	}

	// reserves
	r.ReservedMandatoryHolidaysInDaysCostPrice = pct(r.FinalSalaryCostPrice, in.ReservedMandatoryHolidaysInDays)
	r.PayoutExtraHolidaysCostPrice = pct(r.FinalSalaryCostPrice, in.PayoutExtraHolidays)
	if in.PayReservesWeekly {
		r.PayoutExtraHolidaysNetSalary = r.PayoutExtraHolidaysCostPrice
	}
	r.ReservedPublicHolidaysCostPrice = pct(r.FinalSalaryCostPrice, in.ReservedPublicHolidays)
	r.ReservedOthersCostPrice = pct(r.FinalSalaryCostPrice, in.ReservedOthers)
	r.ReservedADVCostPrice = pct(r.InterimSalaryCostPrice, in.ReservedADV)
	r.ReservedADVNetSalary = r.ReservedADVCostPrice
	r.ReservedHolidayAllowanceCostPrice = pct(
		sum(r.InterimSalaryCostPrice, r.ReservedMandatoryHolidaysInDaysCostPrice, r.PayoutExtraHolidaysCostPrice),
		in.ReservedHolidayAllowance,
	)
	if in.PayReservesWeekly {
		r.ReservedHolidayAllowanceNetSalary = r.ReservedHolidayAllowanceCostPrice
	}
	r.TotalPaidOutReservesNetSalary = sum(r.PayoutExtraHolidaysNetSalary, r.ReservedADVNetSalary, r.ReservedHolidayAllowanceNetSalary)
	r.TotalGrossPeriodicSalaryNetSalary = r.FinalSalaryNetSalary.Add(r.TotalPaidOutReservesNetSalary)

	// insurances and pension
	gross := r.TotalGrossPeriodicSalaryNetSalary
	r.SupplementaryHealthInsuranceCostPrice = pct(gross, in.SupplementaryHealthInsurance.Sub(employerOffset))
	r.SupplementaryHealthInsuranceNetSalary = pct(gross, in.SupplementaryHealthInsurance.Sub(employeeOffset)).Neg()

	if in.StippPension && in.StippPensionType == PensionBasic {
		r.PensionPremiumBasicCostPrice = pct(
			sum(r.TotalPaidOutReservesNetSalary, r.InterimSalaryAdjustmentNetSalary, r.BasicSalaryNetSalary),
			in.PensionPremiumBasic,
		)
	}
	withheld := sum(
		r.ReservedMandatoryHolidaysInDaysCostPrice.Sub(r.ReservedMandatoryHolidaysInDaysNetSalary),
		r.ReservedPublicHolidaysCostPrice.Sub(r.ReservedPublicHolidaysNetSalary),
		r.ReservedOthersCostPrice.Sub(r.ReservedOthersNetSalary),
		r.ReservedHolidayAllowanceCostPrice.Sub(r.ReservedHolidayAllowanceNetSalary),
		r.PayoutExtraHolidaysCostPrice.Sub(r.PayoutExtraHolidaysNetSalary),
		r.ReservedADVCostPrice.Sub(r.ReservedADVNetSalary),
	)
	r.PensionBasisCostPrice = pct(withheld, in.PensionBasis)
	if in.StippPension && in.StippPensionType == PensionPlus {
		r.PensionPremiumPlusCostPrice = pensionPlus(in, r)
		r.PensionPremiumPlusNetSalary = r.PensionPremiumPlusCostPrice.Div(two).Neg()
	}

	r.IllnessInsuranceCostPrice = pct(gross, in.IllnessInsurance)
	r.PaidWhileOnBenchCostPrice = pct(gross, in.PaidWhileOnBench)
	r.TransitionCompensationCostPrice = pct(r.FinalSalaryNetSalary.Add(r.ReservedHolidayAllowanceCostPrice), in.TransitionCompensation)

	// overtime and discount tiers
	perHour := r.SalaryPerCAOPerHour
	r.OvertimeRate1 = in.ExtraHoursRate1Percentage
	r.OvertimeRate1CostPrice = pct(in.ExtraHoursRate1.Mul(perHour), r.OvertimeRate1)
	r.OvertimeRate1NetSalary = r.OvertimeRate1CostPrice
	r.OvertimeRate2 = in.ExtraHoursRate2Percentage
	r.OvertimeRate2CostPrice = pct(in.ExtraHoursRate2.Mul(perHour), r.OvertimeRate2)
	r.OvertimeRate2NetSalary = r.OvertimeRate2CostPrice
	r.Rate1Adjustment = in.ExtraHoursDiscountRate1Percentage
	r.Rate1AdjustmentCostPrice = pct(in.ExtraHoursDiscountRate1.Mul(perHour), r.Rate1Adjustment)
	r.Rate1AdjustmentNetSalary = r.Rate1AdjustmentCostPrice
	r.Rate2Adjustment = in.ExtraHoursDiscountRate2Percentage
	r.Rate2AdjustmentCostPrice = pct(in.ExtraHoursDiscountRate2.Mul(perHour), r.Rate2Adjustment)
	r.Rate2AdjustmentNetSalary = r.Rate2AdjustmentCostPrice

	r.EncashExtraHolidaysNetSalary = pct(r.PayoutExtraHolidaysCostPrice, in.EncashExtraHolidays)
	r.EncashExtraHolidaysCostPrice = r.EncashExtraHolidaysNetSalary
	r.EncashOtherOvertime = r.BasicSalaryCostPrice.Mul(encashable).Sub(r.AdditionETCostsCostPrice)

	// social security premiums
	r.FundamentalSVPremiumNetSalary = sum(
		r.TotalGrossPeriodicSalaryNetSalary,
		r.SupplementaryHealthInsuranceNetSalary,
		r.PensionPremiumPlusNetSalary,
		r.PensionBasisNetSalary,
		r.PensionPremiumBasicNetSalary,
		r.IllnessInsuranceNetSalary,
		r.PaidWhileOnBenchNetSalary,
		r.TransitionCompensationNetSalary,
		r.OvertimeRate1NetSalary,
		r.OvertimeRate2NetSalary,
		r.Rate1AdjustmentNetSalary,
		r.Rate2AdjustmentNetSalary,
		r.EncashExtraHolidaysNetSalary,
		r.EncashCompensationHoursNetSalary,
	)
	base := r.FundamentalSVPremiumNetSalary
	r.AWFPremiumCostPrice = pct(base, in.AWFPremium)
	r.WGAPremiumCostPrice = pct(base, in.WGAPremium)
	r.ZWPremiumCostPrice = pct(base, in.ZWPremium)
	r.WIAPremiumCostPrice = pct(base, in.WIAPremium)
	r.CrecheReserveCostPrice = pct(base, in.CrecheReserve)
	r.ZVWPremiumCostPrice = pct(base, in.ZVWPremium)
	r.SustainabilityPremiumCostPrice = pct(base, in.SustainabilityPremium)
	r.SFUPremiumCostPrice = pct(base, in.SFUPremium)
	r.TotalSVPremiumCostPrice = pct(withheld, in.TotalSVPremium)

	r.TaxableGrossSalaryNetSalary = sum(
		base,
		r.AWFPremiumNetSalary,
		r.WGAPremiumNetSalary,
		r.ZWPremiumNetSalary,
		r.WIAPremiumNetSalary,
		r.CrecheReserveNetSalary,
		r.ZVWPremiumNetSalary,
		r.SustainabilityPremiumNetSalary,
		r.SFUPremiumNetSalary,
	)

	// income tax
	column := 0
	if in.AdjustSalaryDiscount {
		column = 1
	}
	if tax, ok := tables.PayrollTax.Lookup(r.TaxableGrossSalaryNetSalary, incomeTaxColumns[column]); ok {
		r.IncomeTaxNetSalary = tax.Neg()
	}
	annual := in.HourlyRate.Mul(in.HoursPerWeek).Mul(weeks)
	if rate, ok := tables.PayrollTaxBT.Lookup(annual, specialColumns[column]); ok {
		r.IncomeTaxBT = rate
	}
	r.IncomeTaxBTNetSalary = pct(sum(
		r.OvertimeRate1NetSalary,
		r.OvertimeRate2NetSalary,
		r.Rate1AdjustmentNetSalary,
		r.Rate2AdjustmentNetSalary,
		r.EncashCompensationHoursNetSalary,
	), r.IncomeTaxBT).Neg()
	r.NetSalaryPrePayoutNetSalary = sum(r.TaxableGrossSalaryNetSalary, r.IncomeTaxNetSalary, r.IncomeTaxBTNetSalary)

	r.HiwayCostsCostPrice = pct(r.FinalSalaryNetSalary, in.HiwayCosts)

	// net allowances and deductions
	r.BusinessTravelCompensationNetSalary = in.BusinessTravelCompensation
	r.BusinessTravelCompensationCostPrice = r.BusinessTravelCompensationNetSalary
	r.EmployeeContributionWGAPremium = half.Mul(in.WGAPremium)
	r.EmployeeContributionWGAPremiumNetSalary = pct(base, r.EmployeeContributionWGAPremium).Neg()
	r.EmployeeContributionWGAPremiumCostPrice = r.EmployeeContributionWGAPremiumNetSalary
	r.OtherAllowancesNetSalary = in.OtherAllowances
	r.OtherAllowancesCostPrice = r.OtherAllowancesNetSalary
	r.CostOfLivingAllowanceNetSalary = in.CostOfLivingAllowance
	r.CostOfLivingAllowanceCostPrice = r.CostOfLivingAllowanceNetSalary
	r.OtherTravelCompensationNetSalary = in.OtherTravelCompensation
	r.OtherTravelCompensationCostPrice = r.OtherTravelCompensationNetSalary
	r.HousingAllowanceNetSalary = in.HousingAllowance
	r.HousingAllowanceCostPrice = r.HousingAllowanceNetSalary
	if in.ReserveHousingCosts {
		r.RetainedHousingAllowanceNetSalary = r.HousingAllowanceNetSalary.Neg()
	}
	r.RetainedHousingAllowanceCostPrice = r.RetainedHousingAllowanceNetSalary
	r.RetainedHealthInsuranceNetSalary = in.RetainedHealthInsurance
	r.RetainedHealthInsuranceCostPrice = r.RetainedHealthInsuranceNetSalary

	r.NetSalaryPayoutNetSalary = sum(
		r.NetSalaryPrePayoutNetSalary,
		r.BusinessTravelCompensationNetSalary,
		r.EmployeeContributionWGAPremiumNetSalary,
		r.OtherAllowancesNetSalary,
		r.CostOfLivingAllowanceNetSalary,
		r.OtherTravelCompensationNetSalary,
		r.HousingAllowanceNetSalary,
		r.RetainedHousingAllowanceNetSalary,
		r.RetainedHealthInsuranceNetSalary,
	)

	// employer totals
	r.CostsHealthInsuranceCostPrice = r.RetainedHealthInsuranceNetSalary
	r.CostsHousingCostPrice = r.HousingAllowanceNetSalary
	r.TotalEmployeeCostsCostPrice = sum(
		r.FinalSalaryCostPrice,
		r.ReservedMandatoryHolidaysInDaysCostPrice,
		r.PayoutExtraHolidaysCostPrice,
		r.ReservedPublicHolidaysCostPrice,
		r.ReservedOthersCostPrice,
		r.ReservedADVCostPrice,
		r.ReservedHolidayAllowanceCostPrice,
		r.SupplementaryHealthInsuranceCostPrice,
		r.PensionPremiumBasicCostPrice,
		r.PensionBasisCostPrice,
		r.PensionPremiumPlusCostPrice,
		r.IllnessInsuranceCostPrice,
		r.PaidWhileOnBenchCostPrice,
		r.TransitionCompensationCostPrice,
		r.OvertimeRate1CostPrice,
		r.OvertimeRate2CostPrice,
		r.Rate1AdjustmentCostPrice,
		r.Rate2AdjustmentCostPrice,
		r.EncashExtraHolidaysCostPrice,
		r.EncashCompensationHoursCostPrice,
		r.AWFPremiumCostPrice,
		r.WGAPremiumCostPrice,
		r.ZWPremiumCostPrice,
		r.WIAPremiumCostPrice,
		r.CrecheReserveCostPrice,
		r.ZVWPremiumCostPrice,
		r.SustainabilityPremiumCostPrice,
		r.SFUPremiumCostPrice,
		r.TotalSVPremiumCostPrice,
		r.HiwayCostsCostPrice,
		r.BusinessTravelCompensationCostPrice,
		r.EmployeeContributionWGAPremiumCostPrice,
		r.OtherAllowancesCostPrice,
		r.CostOfLivingAllowanceCostPrice,
		r.OtherTravelCompensationCostPrice,
		r.HousingAllowanceCostPrice,
		r.RetainedHousingAllowanceCostPrice,
		r.RetainedHealthInsuranceCostPrice,
		r.CostsHealthInsuranceCostPrice,
		r.CostsHousingCostPrice,
	)

	if paid := sum(hours, in.ExtraHoursRate1, in.ExtraHoursRate2); paid.IsPositive() {
		r.EmployeeCostPerHourCostPrice = r.TotalEmployeeCostsCostPrice.Div(paid)
	}
	if r.BasicSalaryCostPrice.IsPositive() {
		r.EmployeeCostFactorCostPrice = r.TotalEmployeeCostsCostPrice.Div(r.BasicSalaryCostPrice)
	}
	r.EmploymentRateCostPrice = in.EmploymentRate
	r.BrokerageFeeCostPrice = r.EmploymentRateCostPrice.Sub(r.EmployeeCostPerHourCostPrice)
	if in.EncashExtraHolidays.IsPositive() {
		r.RequiredETCostsCostPrice = r.BasicSalaryDeductionETCostPrice.Add(r.EncashExtraHolidaysNetSalary).
			Div(in.EncashExtraHolidays).Mul(hundred).Neg().
			Sub(r.EncashCompensationHoursNetSalary)
	} else {
		r.RequiredETCostsCostPrice = r.EncashCompensationHoursNetSalary.Neg()
	}

	r.ResponsibilityETCosts = sum(r.CostOfLivingAllowanceNetSalary, r.OtherTravelCompensationNetSalary, r.HousingAllowanceNetSalary)
	r.OvertimeRateNetSalary = r.OvertimeRate1NetSalary.Add(r.OvertimeRate2NetSalary)
	r.ETOther = sum(r.BusinessTravelCompensationNetSalary, r.OtherAllowancesNetSalary, r.OtherTravelCompensationNetSalary)
	r.SumIncomeTaxNetSalary = r.IncomeTaxNetSalary.Add(r.IncomeTaxBTNetSalary)

	revenue := in.EmploymentRate.Mul(totalHours)
	r.EmploymentCosts = r.TotalEmployeeCostsCostPrice.Add(in.BrokerageFee.Mul(totalHours))
	r.Profit = revenue.Sub(r.EmploymentCosts)
	if revenue.IsPositive() {
		r.ProfitPercentage = r.Profit.Mul(hundred).Div(revenue)
	}

	roundAll(&r)
	return Calculation{Input: in, Result: r}, nil
}

// checkETShare rejects an ET exchange above the allowed share of the CAO
// hourly rate. Without an hourly rate any positive exchange is too much.
func checkETShare(exchange, perHour decimal.Decimal) error {
	if perHour.IsZero() {
		if exchange.IsPositive() {
			return ErrETCostsExceeded
		}
		return nil
	}
	if exchange.Div(perHour).GreaterThan(maxET) {
		return ErrETCostsExceeded
	}
	return nil
}

// pensionPlus is the employer part of the PLUS premium: two thirds of the
// premium over the pensionable salary above the hourly franchise.
func pensionPlus(in Input, r Result) decimal.Decimal {
	franchiseHours := in.HoursPerWeek
	if r.SalaryPerCAOPerHour.IsPositive() {
		paidLeave := sum(r.ReservedMandatoryHolidaysInDaysNetSalary, r.PayoutExtraHolidaysNetSalary, r.ReservedPublicHolidaysNetSalary)
		franchiseHours = franchiseHours.Add(paidLeave.Div(r.SalaryPerCAOPerHour))
	}
	pensionable := sum(r.BasicSalaryNetSalary, r.TotalPaidOutReservesNetSalary, r.InterimSalaryAdjustmentNetSalary).
		Sub(franchiseHours.Mul(franchise))
	return pct(pensionable, in.PensionPremiumPlus).Div(three).Mul(two)
}

// roundAll rounds every money field of r to cents.
func roundAll(r *Result) {
	v := reflect.ValueOf(r).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Type() == decimalType {
			f.Set(reflect.ValueOf(money.Round(f.Interface().(decimal.Decimal))))
		}
	}
}
