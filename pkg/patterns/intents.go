package patterns

// =============================================================================
// SCAMMER-INTENT PATTERN GROUPS
// One category per intent. A single match within a group is enough to claim
// the intent for a message; pkg/convo walks the groups in priority order.
// =============================================================================

func (r *Registry) registerIntentPatterns() {
	// One-time password requests
	r.register("otp_word", `(?i)\botp\b`, CategoryIntentOTP, "OTP keyword")
	r.register("otp_long_form", `(?i)\bone.?time.?password\b`, CategoryIntentOTP, "one-time password")
	r.register("otp_verification_code", `(?i)\bverification.?code\b`, CategoryIntentOTP, "verification code")
	r.register("otp_code_sent", `(?i)\bcode.?sent\b`, CategoryIntentOTP, "code sent")
	r.register("otp_sms_code", `(?i)\bsms.?code\b`, CategoryIntentOTP, "SMS code")
	r.register("otp_share_digits", `(?i)\b\d{4,6}\b.*share|share.*\b\d{4,6}\b`, CategoryIntentOTP, "share a 4-6 digit code")

	// Bank account number requests
	r.register("account_number", `(?i)\baccount\s*(number|no\.?|#)?\b`, CategoryIntentAccount, "account number")
	r.register("account_bank", `(?i)\bbank\s*account\b`, CategoryIntentAccount, "bank account")
	r.register("account_details", `(?i)\baccount\s*details\b`, CategoryIntentAccount, "account details")
	r.register("account_savings", `(?i)\bsavings\s*account\b`, CategoryIntentAccount, "savings account")

	// Payment-handle requests
	r.register("handle_upi", `(?i)\bupi\b`, CategoryIntentPaymentHandle, "payment handle keyword")
	r.register("handle_token_shape", `(?i)\b\w+@\w+\b`, CategoryIntentPaymentHandle, "handle-shaped token")
	r.register("handle_wallet_apps", `(?i)\bpay\s*tm\b|\bgoogle\s*pay\b|\bphone\s*pe\b|\bbhim\b`, CategoryIntentPaymentHandle, "wallet app name")

	// Money-transfer requests
	r.register("transfer_word", `(?i)\btransfer\b`, CategoryIntentTransfer, "transfer keyword")
	r.register("transfer_send", `(?i)\bsend\s*(money|amount|rs|₹)\b`, CategoryIntentTransfer, "send money")
	r.register("transfer_pay", `(?i)\bpay\s*(rs|₹|amount)\b`, CategoryIntentTransfer, "pay amount")
	r.register("transfer_deposit", `(?i)\bdeposit\b`, CategoryIntentTransfer, "deposit")
	r.register("transfer_fee", `(?i)\bprocessing\s*fee\b`, CategoryIntentTransfer, "processing fee")

	// Link-click requests
	r.register("link_click", `(?i)\bclick\b|\blink\b|\burl\b`, CategoryIntentLink, "click/link keywords")
	r.register("link_url", `(?i)https?://`, CategoryIntentLink, "URL present")
	r.register("link_shorteners", `(?i)\bbit\.ly\b|\btinyurl\b`, CategoryIntentLink, "shortener domain")
	r.register("link_open_site", `(?i)\bopen\b.*\bwebsite\b`, CategoryIntentLink, "open website")

	// App-install requests
	r.register("app_install", `(?i)\binstall\b|\bdownload\b`, CategoryIntentApp, "install/download")
	r.register("app_word", `(?i)\bapp\b|\bapk\b`, CategoryIntentApp, "app keyword")
	r.register("app_remote_tools", `(?i)\banydesk\b|\bteamviewer\b|\bquick\s*support\b`, CategoryIntentApp, "remote access tools")

	// Personal-information requests
	r.register("personal_identity_doc", `(?i)\baadhaar\b|\bpan\b`, CategoryIntentPersonalInfo, "identity document")
	r.register("personal_address", `(?i)\baddress\b`, CategoryIntentPersonalInfo, "address")
	r.register("personal_dob", `(?i)\bdate\s*of\s*birth\b|\bdob\b`, CategoryIntentPersonalInfo, "date of birth")
	r.register("personal_family", `(?i)\bfather.?s?\s*name\b|\bmother.?s?\s*name\b`, CategoryIntentPersonalInfo, "family names")

	// Card-detail requests
	r.register("card_number", `(?i)\bcard\s*(number|no\.?)?\b`, CategoryIntentCardDetails, "card number")
	r.register("card_cvv_expiry", `(?i)\bcvv\b|\bexpiry\b`, CategoryIntentCardDetails, "CVV/expiry")
	r.register("card_kind", `(?i)\bdebit\s*card\b|\bcredit\s*card\b`, CategoryIntentCardDetails, "card kind")
	r.register("card_pin", `(?i)\batm\s*pin\b`, CategoryIntentCardDetails, "ATM PIN")

	// Fear tactics
	r.register("fear_arrest", `(?i)\barrested?\b|\bwarrant\b|\bjail\b`, CategoryIntentFear, "arrest threats")
	r.register("fear_block", `(?i)\bblocked?\b|\bsuspended?\b|\bseized?\b`, CategoryIntentFear, "account threats")
	r.register("fear_authority", `(?i)\bpolice\b|\bcbi\b|\bcourt\b`, CategoryIntentFear, "authority names")
	r.register("fear_legal", `(?i)\billegal\b|\bfraud\b|\bfir\b`, CategoryIntentFear, "legal threats")

	// Urgency pressure
	r.register("urgency_words", `(?i)\burgent\b|\bimmediately\b|\bnow\b|\btoday\b`, CategoryIntentUrgency, "urgency words")
	r.register("urgency_deadline", `(?i)\b\d+\s*(hour|minute|min)s?\b`, CategoryIntentUrgency, "time deadline")
	r.register("urgency_expiry", `(?i)\bexpires?\b|\blast\s*chance\b`, CategoryIntentUrgency, "expiry pressure")

	// Greetings
	r.register("greeting_opening", `(?i)^(hello|hi|namaste|dear|sir|madam|customer)\b`, CategoryIntentGreeting, "conversation opener")
}
