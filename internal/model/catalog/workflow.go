package catalog

// Link points a workflow step to an external KRA portal.
type Link struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

// Step is one stage of a guided workflow.
type Step struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tips        []string `json:"tips"`
	Link        *Link    `json:"link,omitempty"`
}

// Workflow is a guided multi-step walkthrough of a KRA procedure.
type Workflow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Steps       []Step `json:"steps"`
}

// FindWorkflow looks up a workflow by id.
func FindWorkflow(id string) (Workflow, bool) {
	for _, wf := range Workflows() {
		if wf.ID == id {
			return wf, true
		}
	}
	return Workflow{}, false
}

// Workflows returns the guided KRA procedures.
func Workflows() []Workflow {
	return []Workflow{
		{
			ID:          "pin-registration",
			Title:       "KRA PIN Registration",
			Description: "Step-by-step guide to register for a KRA Personal Identification Number",
			Steps: []Step{
				{
					Title:       "Access iTax Portal",
					Description: "Visit the official KRA iTax portal at itax.kra.go.ke. Click on 'New PIN Registration' on the homepage.",
					Tips: []string{
						"Use a modern browser (Chrome, Firefox, Edge)",
						"Ensure you have a stable internet connection",
						"Have your documents ready before starting",
					},
					Link: &Link{URL: "https://itax.kra.go.ke", Label: "Go to iTax Portal"},
				},
				{
					Title:       "Select Taxpayer Type",
					Description: "Choose your taxpayer category: Individual (Resident/Non-Resident), Company, Partnership, or other entity types.",
					Tips: []string{
						"Individuals select 'Individual - Resident' for Kenyan citizens",
						"Foreign nationals select 'Individual - Non-Resident'",
						"Businesses select appropriate entity type",
					},
				},
				{
					Title:       "Fill Personal Details",
					Description: "Enter your personal information including full names (as per ID), date of birth, gender, nationality, and ID number.",
					Tips: []string{
						"Names must match exactly as on your ID document",
						"Double-check ID number for accuracy",
						"Use your primary phone number",
					},
				},
				{
					Title:       "Enter Contact Information",
					Description: "Provide your email address, mobile phone number, postal address, and physical address details.",
					Tips: []string{
						"Use an active email you can access",
						"Phone number must be able to receive SMS",
						"Physical address should be current residence",
					},
				},
				{
					Title:       "Upload Documents",
					Description: "Upload scanned copies of required documents: National ID/Passport, Passport photo, and proof of address if required.",
					Tips: []string{
						"Documents should be clear and legible",
						"File size usually limited to 2MB",
						"Accepted formats: PDF, JPG, PNG",
					},
				},
				{
					Title:       "Review and Submit",
					Description: "Review all entered information for accuracy, then submit your application. You'll receive a confirmation via email/SMS.",
					Tips: []string{
						"Save or print the acknowledgment receipt",
						"PIN is usually generated instantly for individuals",
						"Download and save your PIN certificate",
					},
				},
			},
		},
		{
			ID:          "vat-filing",
			Title:       "VAT Return Filing",
			Description: "Guide to filing your monthly VAT returns on iTax",
			Steps: []Step{
				{
					Title:       "Log into iTax",
					Description: "Access itax.kra.go.ke and log in using your KRA PIN and password. Navigate to 'Returns' menu.",
					Tips: []string{
						"Reset password if forgotten via 'Forgot Password'",
						"Ensure your iTax profile is up to date",
						"VAT returns are due by 20th of following month",
					},
					Link: &Link{URL: "https://itax.kra.go.ke", Label: "Login to iTax"},
				},
				{
					Title:       "Select VAT Return",
					Description: "From the Returns menu, select 'File Returns' then choose 'VAT' from the tax obligation list.",
					Tips: []string{
						"Ensure VAT obligation is registered on your PIN",
						"Select correct return period (month/year)",
						"Check for any pending returns first",
					},
				},
				{
					Title:       "Enter Sales Information",
					Description: "Fill in total sales/turnover for the period, including zero-rated and exempt supplies. Enter output VAT collected.",
					Tips: []string{
						"Standard VAT rate is 16%",
						"Zero-rated supplies are taxed at 0%",
						"Exempt supplies are not subject to VAT",
					},
				},
				{
					Title:       "Enter Purchases Information",
					Description: "Enter your purchases with VAT (input tax), imports, and any exempt purchases for the period.",
					Tips: []string{
						"Only claim VAT on tax invoices with VAT numbers",
						"Import VAT from customs declarations",
						"Keep all supporting documents for 5 years",
					},
				},
				{
					Title:       "Calculate and Verify",
					Description: "System calculates net VAT (Output - Input). If positive, you owe KRA. If negative, you have a credit.",
					Tips: []string{
						"Verify calculations before submission",
						"VAT credit can be carried forward",
						"Refunds require separate application",
					},
				},
				{
					Title:       "Submit and Pay",
					Description: "Submit the return and generate a payment slip if VAT is payable. Pay via M-Pesa, bank, or e-slip.",
					Tips: []string{
						"Download and save acknowledgment receipt",
						"Payment due by 20th of month following period",
						"Late filing attracts penalties (Ksh 10,000 or 5%)",
					},
				},
			},
		},
		{
			ID:          "etims-setup",
			Title:       "eTIMS Invoice Generation",
			Description: "How to set up and use eTIMS for electronic tax invoicing",
			Steps: []Step{
				{
					Title:       "Register for eTIMS",
					Description: "Log into iTax and navigate to eTIMS registration. Complete the online registration form for your business.",
					Tips: []string{
						"VAT registered businesses must use eTIMS",
						"Have business details and turnover ready",
						"Choose between eTIMS Lite, Online, or Integrated",
					},
					Link: &Link{URL: "https://itax.kra.go.ke", Label: "Access iTax"},
				},
				{
					Title:       "Choose eTIMS Solution",
					Description: "Select appropriate eTIMS solution: eTIMS Lite (mobile app), eTIMS Online (web portal), or eTIMS Integrated (API).",
					Tips: []string{
						"eTIMS Lite: Best for small businesses, mobile-based",
						"eTIMS Online: Web-based, no integration needed",
						"eTIMS Integrated: For businesses with existing systems",
					},
				},
				{
					Title:       "Download/Access eTIMS",
					Description: "For eTIMS Lite, download the app from Play Store/App Store. For Online, access via etims.kra.go.ke.",
					Tips: []string{
						"Use official KRA app only",
						"Ensure device has internet connectivity",
						"Keep login credentials secure",
					},
					Link: &Link{URL: "https://etims.kra.go.ke", Label: "eTIMS Online Portal"},
				},
				{
					Title:       "Configure Business Details",
					Description: "Set up your business information including name, PIN, branch details, and invoice preferences.",
					Tips: []string{
						"Add all business locations/branches",
						"Set up item codes and descriptions",
						"Configure tax rates correctly",
					},
				},
				{
					Title:       "Create Invoice",
					Description: "Generate invoices by entering customer details, items/services, quantities, and prices. System calculates VAT automatically.",
					Tips: []string{
						"Customer PIN required for B2B transactions",
						"Invoice auto-transmitted to KRA",
						"Each invoice gets unique eTIMS number",
					},
				},
				{
					Title:       "Manage and Report",
					Description: "View transmitted invoices, generate reports, and reconcile with VAT returns. Handle credit notes if needed.",
					Tips: []string{
						"Regularly check transmission status",
						"Credit notes for returns/corrections",
						"Reports help with VAT filing",
					},
				},
			},
		},
		{
			ID:          "paye-filing",
			Title:       "PAYE Returns Filing",
			Description: "Guide to filing Pay As You Earn (PAYE) returns for employers",
			Steps: []Step{
				{
					Title:       "Prepare Payroll Data",
					Description: "Gather monthly payroll information including employee details, gross pay, deductions, and PAYE calculated.",
					Tips: []string{
						"Use current PAYE tax bands",
						"Include all taxable benefits",
						"Deduct NHIF, NSSF, and housing levy",
					},
				},
				{
					Title:       "Access P10 Form",
					Description: "Log into iTax, go to Returns > File Returns > PAYE. Select the return period and download P10 template.",
					Tips: []string{
						"P10 is the monthly PAYE return form",
						"Template available in Excel format",
						"One row per employee",
					},
					Link: &Link{URL: "https://itax.kra.go.ke", Label: "Access iTax"},
				},
				{
					Title:       "Fill Employee Details",
					Description: "Complete the P10 template with each employee's PIN, names, gross pay, taxable pay, and PAYE deducted.",
					Tips: []string{
						"Employee PIN is mandatory",
						"Ensure calculations are accurate",
						"Include all allowances in gross pay",
					},
				},
				{
					Title:       "Upload and Validate",
					Description: "Upload the completed P10 file to iTax. System validates data and shows any errors to correct.",
					Tips: []string{
						"Fix all validation errors before proceeding",
						"Common errors: wrong PIN format, calculation mismatches",
						"Re-upload corrected file if needed",
					},
				},
				{
					Title:       "Submit Return",
					Description: "After successful validation, submit the return. Generate payment slip for total PAYE amount.",
					Tips: []string{
						"Due by 9th of following month",
						"Late filing penalty: Ksh 25,000 or 25%",
						"Keep acknowledgment receipt",
					},
				},
				{
					Title:       "Make Payment",
					Description: "Pay total PAYE via M-Pesa (Paybill 572572), bank transfer, or e-slip. Quote the payment registration number.",
					Tips: []string{
						"Payment also due by 9th",
						"Interest charged on late payment",
						"Verify payment reflects on iTax",
					},
				},
			},
		},
		{
			ID:          "company-registration",
			Title:       "Company Tax Registration",
			Description: "Register your company for KRA obligations after incorporation",
			Steps: []Step{
				{
					Title:       "Complete Company Incorporation",
					Description: "Ensure your company is registered with the Registrar of Companies (eCitizen BRS portal) before KRA registration.",
					Tips: []string{
						"Have Certificate of Incorporation ready",
						"CR12 form showing directors",
						"Company PIN applications need director PINs",
					},
					Link: &Link{URL: "https://brs.ecitizen.go.ke", Label: "BRS Portal"},
				},
				{
					Title:       "Director PIN Registration",
					Description: "All company directors must have individual KRA PINs. Register personal PINs first if not already done.",
					Tips: []string{
						"At least one director PIN required",
						"Use personal registration process",
						"PIN should be in active status",
					},
				},
				{
					Title:       "Company PIN Application",
					Description: "On iTax, select 'New PIN Registration' > 'Non-Individual'. Choose 'Company' and fill in company details.",
					Tips: []string{
						"Use exact company name from certificate",
						"Registration number from CR document",
						"Main business activity/sector",
					},
					Link: &Link{URL: "https://itax.kra.go.ke", Label: "iTax Portal"},
				},
				{
					Title:       "Upload Company Documents",
					Description: "Upload: Certificate of Incorporation, CR12, ID copies of directors, KRA PIN copies of directors.",
					Tips: []string{
						"Clear, legible scanned copies",
						"CR12 should be recent (within 6 months)",
						"All pages of multi-page documents",
					},
				},
				{
					Title:       "Register Tax Obligations",
					Description: "Select applicable tax obligations: Income Tax, VAT (if turnover >Ksh 5M), PAYE (if have employees), etc.",
					Tips: []string{
						"Income Tax is mandatory for all companies",
						"VAT mandatory if turnover exceeds threshold",
						"PAYE if you employ staff",
					},
				},
				{
					Title:       "Complete and Download PIN",
					Description: "Submit application, await approval. Once approved, download Company PIN certificate from iTax.",
					Tips: []string{
						"May take 1-3 working days for approval",
						"Check iTax for status updates",
						"PIN certificate needed for bank accounts",
					},
				},
			},
		},
		{
			ID:          "import-clearance",
			Title:       "Import Tax Clearance",
			Description: "Guide to clearing imported goods through Kenya Revenue Authority customs",
			Steps: []Step{
				{
					Title:       "Obtain Import Documents",
					Description: "Gather required documents from supplier: Commercial Invoice, Packing List, Bill of Lading/Airway Bill.",
					Tips: []string{
						"Ensure documents are original or certified",
						"Invoice should show item values in detail",
						"HS codes help with classification",
					},
				},
				{
					Title:       "Register on iCMS",
					Description: "Access KRA's Integrated Customs Management System (iCMS) portal. Register as an importer if first time.",
					Tips: []string{
						"Need valid KRA PIN to register",
						"Can appoint customs agent to clear",
						"Agents handle most clearances",
					},
					Link: &Link{URL: "https://icms.kra.go.ke", Label: "iCMS Portal"},
				},
				{
					Title:       "Lodge Import Declaration",
					Description: "Submit Import Declaration Form (IDF) or Entry on iCMS with goods description, values, and origin.",
					Tips: []string{
						"Accurate HS code classification important",
						"Declare correct values (CIF basis)",
						"Wrong declaration = penalties",
					},
				},
				{
					Title:       "Assessment and Duties",
					Description: "KRA assesses duties payable: Import Duty, VAT (16%), IDF fee (2.25%), Railway Development Levy (2%), etc.",
					Tips: []string{
						"Import duty varies by product (0-25%)",
						"Some goods exempt or zero-rated",
						"Check EAC Tariff for rates",
					},
				},
				{
					Title:       "Make Payment",
					Description: "Pay assessed duties and taxes through approved banks or electronic payment. Get customs receipt.",
					Tips: []string{
						"Payment must be cleared before release",
						"Keep all receipts for records",
						"Can pay via iTax linked to iCMS",
					},
				},
				{
					Title:       "Clear and Collect Goods",
					Description: "After payment confirmation, customs releases goods. Collect from port/airport with release order.",
					Tips: []string{
						"May face verification/scanning",
						"Keep clearance documents safe",
						"Claim input VAT on VAT return",
					},
				},
			},
		},
	}
}
