package patterns

// =============================================================================
// SCAM-ARCHETYPE SIGNATURES
// Each category is a signature for one scam script. pkg/convo checks a fixed
// ordered list of these to detect when the counterparty switches scripts
// mid-conversation (style switching).
// =============================================================================

func (r *Registry) registerArchetypePatterns() {
	// Account-block / bank fraud script
	r.register("bank_fraud_block", `(?i)\baccount\b.*\b(blocked?|suspended?|frozen?|compromised)\b`, CategoryArchBankFraud,
		"account blocked threat")
	r.register("bank_fraud_security", `(?i)\b(bank|security)\s*(department|team|alert)\b`, CategoryArchBankFraud,
		"bank security department claim")

	// Authority / digital-arrest script
	r.register("arrest_digital", `(?i)\bdigital\s*arrest\b`, CategoryArchDigitalArrest, "digital arrest claim")
	r.register("arrest_threat", `(?i)\b(under\s*arrest|warrant|arrested?)\b`, CategoryArchDigitalArrest, "arrest threat")
	r.register("arrest_agency", `(?i)\b(cbi|police|cyber\s*crime|narcotics)\b`, CategoryArchDigitalArrest, "agency name")

	// Prize / lottery script
	r.register("lottery_win", `(?i)\b(won|winner|lottery|prize|lucky\s*draw)\b`, CategoryArchLottery, "prize claim")
	r.register("lottery_congrats", `(?i)\bcongratulations?\b`, CategoryArchLottery, "congratulations opener")

	// Identity-document request script
	r.register("identity_docs", `(?i)\b(aadhaar|uidai|pan\s*card)\b`, CategoryArchIdentity, "identity document request")

	// SIM-deactivation script
	r.register("sim_swap", `(?i)\bsim\b.*\b(deactivat|block|swap|reissue)`, CategoryArchSIMSwap, "SIM deactivation threat")

	// Parcel / customs script
	r.register("courier_parcel", `(?i)\b(parcel|courier|customs|package)\b`, CategoryArchCourier, "parcel/customs claim")

	// Investment / crypto script
	r.register("investment_pitch", `(?i)\b(crypto|bitcoin|invest(ment)?|trading|guaranteed\s*returns?)\b`, CategoryArchInvestment,
		"investment pitch")

	// Loan-offer script
	r.register("loan_offer", `(?i)\b(pre.?approved|loan|emi)\b`, CategoryArchLoan, "loan offer")

	// Refund-claim script
	r.register("refund_claim", `(?i)\b(refund|cashback|chargeback)\b`, CategoryArchRefund, "refund claim")

	// KYC-update script
	r.register("kyc_update", `(?i)\bkyc\b`, CategoryArchKYC, "KYC update demand")
}
