package catalog

// FAQ is one curated question and answer surfaced on the help panel.
type FAQ struct {
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQs returns the curated KRA frequently asked questions.
func FAQs() []FAQ {
	return []FAQ{
		{
			Category: "PIN Registration",
			Question: "How do I register for a KRA PIN?",
			Answer:   "Visit the iTax portal at itax.kra.go.ke, click on 'New PIN Registration', select your taxpayer type (Individual/Non-Individual), fill in your personal/business details, upload required documents (ID/Passport), and submit. You'll receive your PIN certificate via email within 24-48 hours.",
		},
		{
			Category: "PIN Registration",
			Question: "What documents are required for KRA PIN registration?",
			Answer:   "For individuals: National ID or Passport. For businesses: Certificate of Incorporation, CR12 form, Directors' IDs/Passports, and KRA PINs of all directors. Foreign nationals need a valid passport and work permit.",
		},
		{
			Category: "iTax",
			Question: "How do I reset my iTax password?",
			Answer:   "Go to itax.kra.go.ke, click 'Forgot Password', enter your KRA PIN, answer security questions or use OTP sent to your registered email/phone. Create a new password following the requirements (8+ characters, uppercase, lowercase, number, special character).",
		},
		{
			Category: "iTax",
			Question: "How do I file my annual tax returns?",
			Answer:   "Log into iTax, go to Returns > File Returns > Income Tax - Resident Individual. Complete the return form with income details, deductions, and tax credits. Submit before June 30th each year to avoid penalties of KES 2,000 per month for individuals.",
		},
		{
			Category: "VAT",
			Question: "Who is required to register for VAT?",
			Answer:   "Businesses with annual taxable turnover exceeding KES 5 million must register for VAT. Registration is done through iTax. VAT returns are filed monthly by the 20th of the following month.",
		},
		{
			Category: "VAT",
			Question: "What is the current VAT rate in Kenya?",
			Answer:   "Standard VAT rate is 16%. Some goods are zero-rated (exports, basic foodstuffs) or exempt (unprocessed agricultural products, financial services). Digital services provided by non-residents are taxed at 16%.",
		},
		{
			Category: "eTIMS",
			Question: "What is eTIMS and who needs to use it?",
			Answer:   "Electronic Tax Invoice Management System (eTIMS) is mandatory for all VAT-registered taxpayers. It validates tax invoices in real-time. Businesses must integrate their systems or use the KRA eTIMS app/web portal to generate compliant invoices.",
		},
		{
			Category: "eTIMS",
			Question: "How do I set up eTIMS for my business?",
			Answer:   "Apply through iTax for eTIMS onboarding, receive your Control Unit (CU) credentials, integrate with your accounting system or use the eTIMS Trader app. All invoices must have a QR code and unique invoice number from KRA.",
		},
		{
			Category: "PAYE",
			Question: "How do I file PAYE returns?",
			Answer:   "Log into iTax, go to Returns > File Returns > PAYE. Download the PAYE template, fill in employee details and tax deductions, upload the completed file, and submit by the 9th of every month. Late filing attracts 25% penalty on tax due.",
		},
		{
			Category: "Compliance",
			Question: "What are the penalties for late tax filing?",
			Answer:   "Individual Income Tax: KES 2,000/month. Company Income Tax: 5% of tax due or KES 20,000, whichever is higher. VAT: 5% of tax due or KES 10,000. PAYE: 25% of tax due. Interest of 1% per month also applies on unpaid taxes.",
		},
		{
			Category: "Compliance",
			Question: "How do I apply for a Tax Compliance Certificate (TCC)?",
			Answer:   "Log into iTax, go to Applications > Apply for TCC. Ensure all returns are filed and taxes paid. The system verifies compliance automatically. If approved, download your TCC valid for 12 months. Processing takes 1-7 days.",
		},
		{
			Category: "Payments",
			Question: "How do I make tax payments?",
			Answer:   "Generate a Payment Registration Number (PRN) on iTax, then pay via M-Pesa (Paybill 572572), bank transfer, or at any KRA-authorized bank. Keep the payment receipt for records. Payments reflect within 24-48 hours on iTax.",
		},
	}
}
