package models

import "fmt"

// PhoneNumberColumn is the name of the unpivoted phone column in the output.
const PhoneNumberColumn = "Phone_Number"

// DefaultOutputPrefix is prepended to the input file name when no output path is given.
const DefaultOutputPrefix = "Formatted_"

const phoneColumnCount = 10

var keepColumns = [...]string{
	"Input_Property_Address", "Input_Property_City", "Input_Property_State", "Input_Property_Zip",
	"Email1", "Email2", "Email3",
	"OWNER_FIRST_NAME", "OWNER_LAST_NAME",
	"Mailing_Zip", "Mailing_State", "Mailing_City", "Mailing_Address",
	"EQUITY_PERCENT", "EQUITY",
	"Data_Mailing_Address", "Data_Mailing_City", "Data_Mailing_State", "Data_Mailing_Zip",
}

// DefaultKeepColumns returns a fresh copy of the identity/contact columns carried into every output row.
func DefaultKeepColumns() []string {
	out := make([]string, len(keepColumns))
	copy(out, keepColumns[:])
	return out
}

// DefaultPhoneColumns returns Phone1_Number through Phone10_Number.
func DefaultPhoneColumns() []string {
	out := make([]string, 0, phoneColumnCount)
	for i := 1; i <= phoneColumnCount; i++ {
		out = append(out, fmt.Sprintf("Phone%d_Number", i))
	}
	return out
}
