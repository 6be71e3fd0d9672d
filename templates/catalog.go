package templates

// Receipt type options of the driver template. The value selects
// one of two visually distinct sub-layouts at render time.
const (
	DriverReceiptSalary  = "Salary Receipt"
	DriverReceiptPhonePe = "PhonePe Payment"
)

var catalogOrder = []string{"driver", "playo", "petrol", "airtel"}

var catalog = map[string]*Template{

	"driver": {
		ID:          "driver",
		Name:        "Driver Salary Receipt",
		Icon:        "🚗",
		Description: "Driver salary declaration & receipt",
		Color:       "#374151",
		Fields: []Field{
			{ID: "receiptType", Label: "Receipt Type", Type: FieldSelect, Options: []string{DriverReceiptSalary, DriverReceiptPhonePe}, Default: DriverReceiptSalary},
			// common
			{ID: "driverName", Label: "Driver/Recipient Name", Type: FieldText, ProfileKey: "driverName"},
			{ID: "salaryAmount", Label: "Amount (₹)", Type: FieldCurrency, Default: "25000"},
			// salary receipt sub-layout
			{ID: "employeeName", Label: "Employee Name (You)", Type: FieldText, ProfileKey: "fullName", ShowWhen: Visibility{DependsOn: "receiptType", Equals: DriverReceiptSalary}},
			{ID: "month", Label: "For Month", Type: FieldPeriod, ShowWhen: Visibility{DependsOn: "receiptType", Equals: DriverReceiptSalary}},
			{ID: "receiptDate", Label: "Receipt Date", Type: FieldDate, ShowWhen: Visibility{DependsOn: "receiptType", Equals: DriverReceiptSalary}},
			{ID: "vehicleNumber", Label: "Vehicle Number", Type: FieldText, ProfileKey: "vehicleNumber", ShowWhen: Visibility{DependsOn: "receiptType", Equals: DriverReceiptSalary}},
			{ID: "showSignature", Label: "Show Signature Line", Type: FieldToggle, Default: "true", ShowWhen: Visibility{DependsOn: "receiptType", Equals: DriverReceiptSalary}},
			// payment-app sub-layout
			{ID: "recipientPhone", Label: "Recipient Phone", Type: FieldText, Default: "+919176657929", ShowWhen: Visibility{DependsOn: "receiptType", Equals: DriverReceiptPhonePe}},
			{ID: "transactionId", Label: "Transaction ID", Type: FieldText, Generate: GenPhonePeTxnID, ShowWhen: Visibility{DependsOn: "receiptType", Equals: DriverReceiptPhonePe}},
			{ID: "utr", Label: "UTR Number", Type: FieldText, Generate: GenUTRNumber, ShowWhen: Visibility{DependsOn: "receiptType", Equals: DriverReceiptPhonePe}},
			{ID: "bankAccount", Label: "Bank Account (masked)", Type: FieldText, Default: "XXXXXX8331", ShowWhen: Visibility{DependsOn: "receiptType", Equals: DriverReceiptPhonePe}},
			{ID: "bankName", Label: "Bank Name", Type: FieldText, Default: "ICICI", ShowWhen: Visibility{DependsOn: "receiptType", Equals: DriverReceiptPhonePe}},
			{ID: "paymentDateTime", Label: "Payment Date & Time", Type: FieldText, Default: "10:12 am on 10 Apr 2025", ShowWhen: Visibility{DependsOn: "receiptType", Equals: DriverReceiptPhonePe}},
		},
	},

	"playo": {
		ID:          "playo",
		Name:        "Playo Sports Booking",
		Icon:        "⚽",
		Description: "Sports facility booking confirmation",
		Color:       "#10B981",
		Fields: []Field{
			{ID: "customerName", Label: "Your Name", Type: FieldText, ProfileKey: "fullName"},
			{ID: "sportType", Label: "Sport", Type: FieldSelect, Options: []string{"Football", "Badminton", "Tennis", "Cricket", "Basketball", "Swimming"}},
			{ID: "venueName", Label: "Venue Name", Type: FieldText, Default: "Stamford Bridge"},
			{ID: "venueCity", Label: "City", Type: FieldText, Default: "Bengaluru"},
			{ID: "bookingId", Label: "Booking ID", Type: FieldText, Generate: GenPlayoBookingID},
			{ID: "court", Label: "Court/Turf", Type: FieldText, Default: "7 a side Turf-1"},
			{ID: "slotTime", Label: "Slot Time", Type: FieldText, Default: "8:00 PM - 9:00 PM"},
			{ID: "slotDate", Label: "Slot Date", Type: FieldDate},
			{ID: "courtPrice", Label: "Court Price (₹)", Type: FieldCurrency, Default: "2456.64"},
			{ID: "convenienceFee", Label: "Convenience Fee (₹)", Type: FieldCurrency, Default: "56.64"},
			{ID: "discount", Label: "Discount (₹)", Type: FieldCurrency, Default: "0"},
			{ID: "totalAmount", Label: "Total Amount (₹)", Type: FieldCurrency, Default: "2456.64"},
			{ID: "advancePaid", Label: "Advance Paid (₹)", Type: FieldCurrency, Default: "2456.64"},
			{ID: "payableAtVenue", Label: "Payable at Venue (₹)", Type: FieldCurrency, Default: "0"},
			{ID: "bookingDate", Label: "Booked On (Date)", Type: FieldDate},
			{ID: "bookingTime", Label: "Booked On (Time)", Type: FieldText, Default: "18:25 PM"},
		},
	},

	"petrol": {
		ID:          "petrol",
		Name:        "Shell Petrol Bill",
		Icon:        "⛽",
		Description: "Shell fuel station receipt",
		Color:       "#FBBF24",
		Fields: []Field{
			{ID: "transactionDate", Label: "Transaction Date", Type: FieldDate},
			{ID: "transactionTime", Label: "Transaction Time", Type: FieldText, Default: "12:32"},
			{ID: "location", Label: "Location", Type: FieldText, Default: "HSR LAYOUT"},
			{ID: "transactionId", Label: "Transaction ID", Type: FieldText, Generate: GenShellTxnID},
			{ID: "fuelCode", Label: "Fuel Code", Type: FieldText, Default: "02"},
			{ID: "fuelType", Label: "Fuel Type", Type: FieldSelect, Options: []string{"V-PowerUNL", "FuelSave UNL", "FuelSave Diesel", "V-Power Diesel"}},
			{ID: "quantity", Label: "Quantity (Litres)", Type: FieldNumber, Default: "42"},
			{ID: "ratePerLitre", Label: "Rate per Litre (₹)", Type: FieldCurrency, Default: "129.39"},
			{ID: "discount", Label: "Discount (₹)", Type: FieldCurrency, Default: "150"},
			{ID: "discountText", Label: "Discount Description", Type: FieldText, Default: "Get ₹150/- off on fueling petrol above ₹5000"},
			{ID: "totalAmount", Label: "Total Amount (₹)", Type: FieldCurrency},
			{ID: "pointsEarned", Label: "Points Earned", Type: FieldNumber, Default: "215"},
			{ID: "bonusPoints", Label: "Bonus Points", Type: FieldNumber, Default: "860"},
		},
	},

	"airtel": {
		ID:          "airtel",
		Name:        "Airtel Broadband Receipt",
		Icon:        "🌐",
		Description: "Airtel payment receipt",
		Color:       "#E50914",
		Fields: []Field{
			{ID: "customerName", Label: "Customer Name", Type: FieldText, ProfileKey: "fullName"},
			{ID: "customerNumber", Label: "Customer Number", Type: FieldText},
			{ID: "receiptNo", Label: "Receipt No", Type: FieldText, Generate: GenAirtelReceiptNo},
			{ID: "orderNumber", Label: "Order Number", Type: FieldText, Generate: GenAirtelOrderNo},
			{ID: "lineOfBusiness", Label: "Line of Business", Type: FieldText, Default: "Broadband + Mobile"},
			{ID: "paymentType", Label: "Payment Type", Type: FieldText, Default: "Bill Payment"},
			{ID: "paymentDate", Label: "Payment Date", Type: FieldDate},
			{ID: "paymentTime", Label: "Payment Time", Type: FieldText, Default: "09:24 AM"},
			{ID: "paymentMode", Label: "Payment Mode", Type: FieldSelect, Options: []string{"CREDIT_CARD", "DEBIT_CARD", "UPI", "NET_BANKING"}},
			{ID: "fixedLineNumber", Label: "Fixed Line Number", Type: FieldText, Default: "08041724476"},
			{ID: "paidAmount", Label: "Paid Amount (₹)", Type: FieldCurrency, Default: "6133.64"},
		},
	},
}
