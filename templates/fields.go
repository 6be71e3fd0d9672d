package templates

import "fmt"

// FieldType - closed set of input kinds a field descriptor can declare.
type FieldType int

const (
	FieldText FieldType = iota
	FieldTextarea
	FieldNumber
	FieldCurrency
	FieldDate
	FieldPeriod
	FieldSelect
	FieldToggle
)

var fieldTypeNames = map[FieldType]string{
	FieldText:     "text",
	FieldTextarea: "textarea",
	FieldNumber:   "number",
	FieldCurrency: "currency",
	FieldDate:     "date",
	FieldPeriod:   "period",
	FieldSelect:   "select",
	FieldToggle:   "toggle",
}

func (t FieldType) String() string {
	name, ok := fieldTypeNames[t]
	if !ok {
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
	return name
}

func (t FieldType) MarshalText() ([]byte, error) {
	name, ok := fieldTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("unknown field type: %d", int(t))
	}
	return []byte(name), nil
}

// GeneratorID - closed set of auto-generation rules.
// Mapped to generator funcs via a static table in the genvals package,
// instead of dispatching on raw strings.
type GeneratorID int

const (
	GenNone GeneratorID = iota
	GenBillNumber
	GenAccountNumber
	GenPlayoBookingID
	GenShellTxnID
	GenAirtelReceiptNo
	GenAirtelOrderNo
	GenPhonePeTxnID
	GenUTRNumber
)

var generatorNames = map[GeneratorID]string{
	GenBillNumber:      "billNumber",
	GenAccountNumber:   "accountNumber",
	GenPlayoBookingID:  "playoBookingId",
	GenShellTxnID:      "shellTxnId",
	GenAirtelReceiptNo: "airtelReceiptNo",
	GenAirtelOrderNo:   "airtelOrderNo",
	GenPhonePeTxnID:    "phonePeTxnId",
	GenUTRNumber:       "utrNumber",
}

func (g GeneratorID) String() string {
	name, ok := generatorNames[g]
	if !ok {
		return ""
	}
	return name
}

func (g GeneratorID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// Visibility - either "always visible" (zero value) or
// "visible iff sibling field DependsOn currently equals Equals".
type Visibility struct {
	DependsOn string `json:"depends_on,omitempty"`
	Equals    string `json:"equals,omitempty"`
}

func (v Visibility) Always() bool {
	return v.DependsOn == ""
}

// Field - static descriptor of one form input.
type Field struct {
	ID         string      `json:"id"`
	Label      string      `json:"label"`
	Type       FieldType   `json:"type"`
	Options    []string    `json:"options,omitempty"` // FieldSelect only
	Default    string      `json:"default,omitempty"`
	ProfileKey string      `json:"profile_key,omitempty"`
	Generate   GeneratorID `json:"generate,omitempty"`
	ShowWhen   Visibility  `json:"show_when,omitzero"`
}
