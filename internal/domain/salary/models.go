package salary

import "github.com/shopspring/decimal"

// Input is one worker-period. The first group of fields comes from the
// CAO template, the second from the worker's contract. Percentages are
// whole numbers (8 means 8%).
type Input struct {
	ReserveHousingCosts             bool            `json:"reserve_housing_costs_boo"`
	AdditionETCosts                 decimal.Decimal `json:"addition_et_costs"`
	InterimSalaryAdjustment         decimal.Decimal `json:"interim_salary_adjustment"`
	ReservedMandatoryHolidaysInDays decimal.Decimal `json:"reserved_mandatory_holidays_in_days"`
	PayoutExtraHolidays             decimal.Decimal `json:"payout_extra_holidays"`
	ReservedPublicHolidays          decimal.Decimal `json:"reserved_public_holidays"`
	ReservedOthers                  decimal.Decimal `json:"reserved_others"`
	ReservedADV                     decimal.Decimal `json:"reserved_adv"`
	ReservedHolidayAllowance        decimal.Decimal `json:"reserved_holiday_allowance"`
	SupplementaryHealthInsurance    decimal.Decimal `json:"supplementry_healthinsurance"`
	PensionPremiumBasic             decimal.Decimal `json:"pension_premium_basic"`
	PensionBasis                    decimal.Decimal `json:"pension_basis"`
	PensionPremiumPlus              decimal.Decimal `json:"pension_premium_plus"`
	IllnessInsurance                decimal.Decimal `json:"illness_insurance"`
	PaidWhileOnBench                decimal.Decimal `json:"paid_while_on_bench"`
	TransitionCompensation          decimal.Decimal `json:"transition_compensation"`
	EncashExtraHolidays             decimal.Decimal `json:"encash_extra_holidays"`
	AWFPremium                      decimal.Decimal `json:"awf_sv_premium"`
	WGAPremium                      decimal.Decimal `json:"wga_sv_premium"`
	ZWPremium                       decimal.Decimal `json:"zw_sv_premium"`
	WIAPremium                      decimal.Decimal `json:"wia_sv_premium"`
	ZVWPremium                      decimal.Decimal `json:"zvw_sv_premium"`
	SFUPremium                      decimal.Decimal `json:"sfu_sv_premium"`
	CrecheReserve                   decimal.Decimal `json:"creche_reserve"`
	TotalSVPremium                  decimal.Decimal `json:"total_sv_premium"`
	SustainabilityPremium           decimal.Decimal `json:"sustainability_premium"`
	RetainedHealthInsurance         decimal.Decimal `json:"retained_health_insurance"`
	HiwayCosts                      decimal.Decimal `json:"hiway_costs"`
	CostOfLivingAllowance           decimal.Decimal `json:"cost_of_living_allowance"`

	HoursPerWeek                      decimal.Decimal `json:"hours_per_week"`
	HourlyRate                        decimal.Decimal `json:"hourly_rate"`
	EmploymentRate                    decimal.Decimal `json:"employment_rate"`
	HousingAllowance                  decimal.Decimal `json:"housing_allowance"`
	BusinessTravelCompensation        decimal.Decimal `json:"business_travel_compensation"`
	OtherAllowances                   decimal.Decimal `json:"other_allowances"`
	ETCosts                           decimal.Decimal `json:"et_costs"`
	OtherTravelCompensation           decimal.Decimal `json:"other_travel_compensation"`
	ExtraHoursRate1                   decimal.Decimal `json:"extra_hours_rate1"`
	ExtraHoursRate2                   decimal.Decimal `json:"extra_hours_rate2"`
	ExtraHoursDiscountRate1           decimal.Decimal `json:"extra_hours_discount_rate1"`
	ExtraHoursDiscountRate2           decimal.Decimal `json:"extra_hours_discount_rate2"`
	ExtraHoursRate1Percentage         decimal.Decimal `json:"extra_hours_rate1_percentage"`
	ExtraHoursRate2Percentage         decimal.Decimal `json:"extra_hours_rate2_percentage"`
	ExtraHoursDiscountRate1Percentage decimal.Decimal `json:"extra_hours_discount_rate1_percentage"`
	ExtraHoursDiscountRate2Percentage decimal.Decimal `json:"extra_hours_discount_rate2_percentage"`
	StippPension                      bool            `json:"stipp_pension_boo"`
	StippPensionType                  PensionType     `json:"stipp_pension_type"`
	AdjustSalaryDiscount              bool            `json:"adjust_salary_discount_boo"`
	PayReservesWeekly                 bool            `json:"pay_reserves_weekly_boo"`
	BrokerageFee                      decimal.Decimal `json:"brokerage_fee"`
}

// Result holds the derived employer cost and net salary lines. CostPrice
// fields are what the employer pays, NetSalary fields what reaches the
// worker's payslip. Lines that only exist on one side are kept as zero on
// the other so reports can print both columns.
type Result struct {
	SalaryInEURCostPrice                     decimal.Decimal `json:"salary_in_eur_costprice"`
	SalaryInEURNetSalary                     decimal.Decimal `json:"salary_in_eur_netsalary"`
	AdditionETCostsCostPrice                 decimal.Decimal `json:"addition_et_costs_costprice"`
	AdditionETCostsNetSalary                 decimal.Decimal `json:"addition_et_costs_netsalary"`
	BasicSalaryCostPrice                     decimal.Decimal `json:"basic_salary_costprice"`
	BasicSalaryNetSalary                     decimal.Decimal `json:"basic_salary_netsalary"`
	BasicSalaryDeductionETCostPrice          decimal.Decimal `json:"basic_salary_deduction_et_costprice"`
	BasicSalaryDeductionETNetSalary          decimal.Decimal `json:"basic_salary_deduction_et_netsalary"`
	InterimSalaryCostPrice                   decimal.Decimal `json:"interim_salary_costprice"`
	InterimSalaryNetSalary                   decimal.Decimal `json:"interim_salary_netsalary"`
	InterimSalaryAdjustmentCostPrice         decimal.Decimal `json:"interim_salary_adjustment_costprice"`
	InterimSalaryAdjustmentNetSalary         decimal.Decimal `json:"interim_salary_adjustment_netsalary"`
	FinalSalaryCostPrice                     decimal.Decimal `json:"final_salary_costprice"`
	FinalSalaryNetSalary                     decimal.Decimal `json:"final_salary_netsalary"`
	SalaryPerCAOPerHour                      decimal.Decimal `json:"salary_per_cao_per_hour"`
	ReservedMandatoryHolidaysInDaysCostPrice decimal.Decimal `json:"reserved_mandatory_holidays_in_days_costprice"`
	ReservedMandatoryHolidaysInDaysNetSalary decimal.Decimal `json:"reserved_mandatory_holidays_in_days_netsalary"`
	PayoutExtraHolidaysCostPrice             decimal.Decimal `json:"payout_extra_holidays_costprice"`
	PayoutExtraHolidaysNetSalary             decimal.Decimal `json:"payout_extra_holidays_netsalary"`
	ReservedPublicHolidaysCostPrice          decimal.Decimal `json:"reserved_public_holidays_costprice"`
	ReservedPublicHolidaysNetSalary          decimal.Decimal `json:"reserved_public_holidays_netsalary"`
	ReservedOthersCostPrice                  decimal.Decimal `json:"reserved_others_costprice"`
	ReservedOthersNetSalary                  decimal.Decimal `json:"reserved_others_netsalary"`
	ReservedADVCostPrice                     decimal.Decimal `json:"reserved_adv_costprice"`
	ReservedADVNetSalary                     decimal.Decimal `json:"reserved_adv_netsalary"`
	ReservedHolidayAllowanceCostPrice        decimal.Decimal `json:"reserved_holiday_allowance_costprice"`
	ReservedHolidayAllowanceNetSalary        decimal.Decimal `json:"reserved_holiday_allowance_netsalary"`
	TotalPaidOutReservesNetSalary            decimal.Decimal `json:"total_paidout_reserves_netsalary"`
	TotalGrossPeriodicSalaryNetSalary        decimal.Decimal `json:"total_gross_periodic_salary_netsalary"`
	SupplementaryHealthInsuranceCostPrice    decimal.Decimal `json:"supplementry_healthinsurance_costprice"`
	SupplementaryHealthInsuranceNetSalary    decimal.Decimal `json:"supplementry_healthinsurance_netsalary"`
	PensionPremiumBasicCostPrice             decimal.Decimal `json:"pension_premium_basic_costprice"`
	PensionPremiumBasicNetSalary             decimal.Decimal `json:"pension_premium_basic_netsalary"`
	PensionBasisCostPrice                    decimal.Decimal `json:"pension_basis_costprice"`
	PensionBasisNetSalary                    decimal.Decimal `json:"pension_basis_netsalary"`
	PensionPremiumPlusCostPrice              decimal.Decimal `json:"pension_premium_plus_costprice"`
	PensionPremiumPlusNetSalary              decimal.Decimal `json:"pension_premium_plus_netsalary"`
	IllnessInsuranceCostPrice                decimal.Decimal `json:"illness_insurance_costprice"`
	IllnessInsuranceNetSalary                decimal.Decimal `json:"illness_insurance_netsalary"`
	PaidWhileOnBenchCostPrice                decimal.Decimal `json:"paid_while_on_bench_costprice"`
	PaidWhileOnBenchNetSalary                decimal.Decimal `json:"paid_while_on_bench_netsalary"`
	TransitionCompensationCostPrice          decimal.Decimal `json:"transition_compensation_costprice"`
	TransitionCompensationNetSalary          decimal.Decimal `json:"transition_compensation_netsalary"`
	OvertimeRate1                            decimal.Decimal `json:"overtime_rate1"`
	OvertimeRate1CostPrice                   decimal.Decimal `json:"overtime_rate1_costprice"`
	OvertimeRate1NetSalary                   decimal.Decimal `json:"overtime_rate1_netsalary"`
	OvertimeRate2                            decimal.Decimal `json:"overtime_rate2"`
	OvertimeRate2CostPrice                   decimal.Decimal `json:"overtime_rate2_costprice"`
	OvertimeRate2NetSalary                   decimal.Decimal `json:"overtime_rate2_netsalary"`
	Rate1Adjustment                          decimal.Decimal `json:"rate_1_adjustment"`
	Rate1AdjustmentCostPrice                 decimal.Decimal `json:"rate_1_adjustment_costprice"`
	Rate1AdjustmentNetSalary                 decimal.Decimal `json:"rate_1_adjustment_netsalary"`
	Rate2Adjustment                          decimal.Decimal `json:"rate_2_adjustment"`
	Rate2AdjustmentCostPrice                 decimal.Decimal `json:"rate_2_adjustment_costprice"`
	Rate2AdjustmentNetSalary                 decimal.Decimal `json:"rate_2_adjustment_netsalary"`
	EncashExtraHolidaysCostPrice             decimal.Decimal `json:"encash_extra_holidays_costprice"`
	EncashExtraHolidaysNetSalary             decimal.Decimal `json:"encash_extra_holidays_netsalary"`
	EncashCompensationHoursCostPrice         decimal.Decimal `json:"encash_compensation_hours_costprice"`
	EncashCompensationHoursNetSalary         decimal.Decimal `json:"encash_compensation_hours_netsalary"`
	EncashOtherOvertime                      decimal.Decimal `json:"encash_other_overtime"`
	FundamentalSVPremiumNetSalary            decimal.Decimal `json:"fundamental_sv_premium_netsalary"`
	AWFPremiumCostPrice                      decimal.Decimal `json:"awf_sv_premium_costprice"`
	AWFPremiumNetSalary                      decimal.Decimal `json:"awf_sv_premium_netsalary"`
	WGAPremiumCostPrice                      decimal.Decimal `json:"wga_sv_premium_costprice"`
	WGAPremiumNetSalary                      decimal.Decimal `json:"wga_sv_premium_netsalary"`
	ZWPremiumCostPrice                       decimal.Decimal `json:"zw_sv_premium_costprice"`
	ZWPremiumNetSalary                       decimal.Decimal `json:"zw_sv_premium_netsalary"`
	WIAPremiumCostPrice                      decimal.Decimal `json:"wia_sv_premium_costprice"`
	WIAPremiumNetSalary                      decimal.Decimal `json:"wia_sv_premium_netsalary"`
	CrecheReserveCostPrice                   decimal.Decimal `json:"creche_reserve_costprice"`
	CrecheReserveNetSalary                   decimal.Decimal `json:"creche_reserve_netsalary"`
	ZVWPremiumCostPrice                      decimal.Decimal `json:"zvw_sv_premium_costprice"`
	ZVWPremiumNetSalary                      decimal.Decimal `json:"zvw_sv_premium_netsalary"`
	SustainabilityPremiumCostPrice           decimal.Decimal `json:"sustainability_premium_costprice"`
	SustainabilityPremiumNetSalary           decimal.Decimal `json:"sustainability_premium_netsalary"`
	SFUPremiumCostPrice                      decimal.Decimal `json:"sfu_sv_premium_costprice"`
	SFUPremiumNetSalary                      decimal.Decimal `json:"sfu_sv_premium_netsalary"`
	TotalSVPremiumCostPrice                  decimal.Decimal `json:"total_sv_premium_costprice"`
	TaxableGrossSalaryNetSalary              decimal.Decimal `json:"taxable_gross_salary_netsalary"`
	IncomeTaxNetSalary                       decimal.Decimal `json:"income_tax_netsalary"`
	IncomeTaxBT                              decimal.Decimal `json:"income_tax_bt"`
	IncomeTaxBTNetSalary                     decimal.Decimal `json:"income_tax_bt_netsalary"`
	NetSalaryPrePayoutNetSalary              decimal.Decimal `json:"net_salary_prepayout_netsalary"`
	HiwayCostsCostPrice                      decimal.Decimal `json:"hiway_costs_costprice"`
	BusinessTravelCompensationCostPrice      decimal.Decimal `json:"business_travel_compensation_costprice"`
	BusinessTravelCompensationNetSalary      decimal.Decimal `json:"business_travel_compensation_netsalary"`
	EmployeeContributionWGAPremium           decimal.Decimal `json:"employee_contribution_wga_preimum"`
	EmployeeContributionWGAPremiumCostPrice  decimal.Decimal `json:"employee_contribution_wga_preimum_costprice"`
	EmployeeContributionWGAPremiumNetSalary  decimal.Decimal `json:"employee_contribution_wga_preimum_netsalary"`
	OtherAllowancesCostPrice                 decimal.Decimal `json:"other_allowances_costprice"`
	OtherAllowancesNetSalary                 decimal.Decimal `json:"other_allowances_netsalary"`
	CostOfLivingAllowanceCostPrice           decimal.Decimal `json:"cost_of_living_allowance_costprice"`
	CostOfLivingAllowanceNetSalary           decimal.Decimal `json:"cost_of_living_allowance_netsalary"`
	OtherTravelCompensationCostPrice         decimal.Decimal `json:"other_travel_compensation_costprice"`
	OtherTravelCompensationNetSalary         decimal.Decimal `json:"other_travel_compensation_netsalary"`
	HousingAllowanceCostPrice                decimal.Decimal `json:"housing_allowance_costprice"`
	HousingAllowanceNetSalary                decimal.Decimal `json:"housing_allowance_netsalary"`
	RetainedHousingAllowanceCostPrice        decimal.Decimal `json:"retained_housing_allowance_costprice"`
	RetainedHousingAllowanceNetSalary        decimal.Decimal `json:"retained_housing_allowance_netsalary"`
	RetainedHealthInsuranceCostPrice         decimal.Decimal `json:"retained_health_insurance_costprice"`
	RetainedHealthInsuranceNetSalary         decimal.Decimal `json:"retained_health_insurance_netsalary"`
	NetSalaryPayoutNetSalary                 decimal.Decimal `json:"net_salary_payout_netsalary"`
	CostsHealthInsuranceCostPrice            decimal.Decimal `json:"costs_health_insurance_costprice"`
	CostsHousingCostPrice                    decimal.Decimal `json:"costs_housing_costprice"`
	TotalEmployeeCostsCostPrice              decimal.Decimal `json:"total_employee_costs_costprice"`
	EmployeeCostPerHourCostPrice             decimal.Decimal `json:"employee_cost_per_hour_costprice"`
	EmployeeCostFactorCostPrice              decimal.Decimal `json:"employee_cost_factor_costprice"`
	EmploymentRateCostPrice                  decimal.Decimal `json:"employment_rate_costprice"`
	BrokerageFeeCostPrice                    decimal.Decimal `json:"brokerage_fee_costprice"`
	RequiredETCostsCostPrice                 decimal.Decimal `json:"required_ET_costs_costprice"`
	ResponsibilityETCosts                    decimal.Decimal `json:"responsibility_ET_costs"`
	OvertimeRateNetSalary                    decimal.Decimal `json:"overtime_rate_netsalary"`
	ETOther                                  decimal.Decimal `json:"et_overige"`
	SumIncomeTaxNetSalary                    decimal.Decimal `json:"sum_income_tax_netsalary"`
	EmploymentCosts                          decimal.Decimal `json:"employment_costs"`
	Profit                                   decimal.Decimal `json:"profit"`
	ProfitPercentage                         decimal.Decimal `json:"profit_percentage"`
}

// Calculation is the flat record handed to reports: the input followed by
// every derived line.
type Calculation struct {
	Input
	Result
}
