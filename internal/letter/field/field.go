// internal/letter/field/field.go
package field

import "strings"

// Name identifies one entry of the closed form-field vocabulary.
type Name string

// The full vocabulary of fields a letter template may reference. The set is
// closed: templates referencing anything outside it are a configuration bug
// and are rejected by the catalog consistency check at startup.
const (
	// Sender identity
	SenderName    Name = "senderName"
	FatherName    Name = "fatherName"
	SenderStreet  Name = "senderStreet"
	SenderCity    Name = "senderCity"
	SenderState   Name = "senderState"
	SenderPincode Name = "senderPincode"
	Phone         Name = "phone"
	Email         Name = "email"
	Date          Name = "date"

	// Recipient identity
	RecipientTitle   Name = "recipientTitle"
	RecipientStreet  Name = "recipientStreet"
	RecipientCity    Name = "recipientCity"
	RecipientState   Name = "recipientState"
	RecipientPincode Name = "recipientPincode"
	Subject          Name = "subject"

	// Banking
	AccountNumber     Name = "accountNumber"
	CifNumber         Name = "cifNumber"
	BankName          Name = "bankName"
	BranchName        Name = "branchName"
	IfscCode          Name = "ifscCode"
	AtmCardLastDigits Name = "atmCardLastDigits"
	ChequeLeaves      Name = "chequeLeaves"

	// Police / incident
	PoliceStation      Name = "policeStation"
	MobileModel        Name = "mobileModel"
	ImeiNumber         Name = "imeiNumber"
	SimNumber          Name = "simNumber"
	VehicleType        Name = "vehicleType"
	VehicleBrand       Name = "vehicleBrand"
	RegistrationNumber Name = "registrationNumber"
	ChassisNumber      Name = "chassisNumber"
	EngineNumber       Name = "engineNumber"
	IncidentDate       Name = "incidentDate"
	IncidentTime       Name = "incidentTime"
	IncidentLocation   Name = "incidentLocation"
	IncidentDetails    Name = "incidentDetails"

	// Government / utility
	Department     Name = "department"
	Tehsil         Name = "tehsil"
	District       Name = "district"
	AnnualIncome   Name = "annualIncome"
	Purpose        Name = "purpose"
	ConsumerNumber Name = "consumerNumber"
	AadharNumber   Name = "aadharNumber"
	RationCard     Name = "rationCardNumber"

	// Education
	ClassName     Name = "className"
	Section       Name = "section"
	RollNumber    Name = "rollNumber"
	SchoolName    Name = "schoolName"
	PrincipalName Name = "principalName"
	LeaveReason   Name = "leaveReason"
	LeaveFromDate Name = "leaveFromDate"
	LeaveToDate   Name = "leaveToDate"

	// Employment
	Designation       Name = "designation"
	EmployeeID        Name = "employeeId"
	ManagerName       Name = "managerName"
	CompanyName       Name = "companyName"
	LastWorkingDate   Name = "lastWorkingDate"
	ResignationReason Name = "resignationReason"

	// Free text
	CustomBody Name = "customBody"
)

var vocabulary = map[Name]struct{}{
	SenderName: {}, FatherName: {}, SenderStreet: {}, SenderCity: {},
	SenderState: {}, SenderPincode: {}, Phone: {}, Email: {}, Date: {},
	RecipientTitle: {}, RecipientStreet: {}, RecipientCity: {},
	RecipientState: {}, RecipientPincode: {}, Subject: {},
	AccountNumber: {}, CifNumber: {}, BankName: {}, BranchName: {},
	IfscCode: {}, AtmCardLastDigits: {}, ChequeLeaves: {},
	PoliceStation: {}, MobileModel: {}, ImeiNumber: {}, SimNumber: {},
	VehicleType: {}, VehicleBrand: {}, RegistrationNumber: {},
	ChassisNumber: {}, EngineNumber: {}, IncidentDate: {}, IncidentTime: {},
	IncidentLocation: {}, IncidentDetails: {},
	Department: {}, Tehsil: {}, District: {}, AnnualIncome: {}, Purpose: {},
	ConsumerNumber: {}, AadharNumber: {}, RationCard: {},
	ClassName: {}, Section: {}, RollNumber: {}, SchoolName: {},
	PrincipalName: {}, LeaveReason: {}, LeaveFromDate: {}, LeaveToDate: {},
	Designation: {}, EmployeeID: {}, ManagerName: {}, CompanyName: {},
	LastWorkingDate: {}, ResignationReason: {},
	CustomBody: {},
}

// Known reports whether name belongs to the field vocabulary.
func Known(name Name) bool {
	_, ok := vocabulary[name]
	return ok
}

// Values holds the current form state. Unset fields are empty strings, never
// absent keys; Get normalizes the distinction away for readers.
type Values map[Name]string

// Get returns the value for name, treating a missing key as unset.
func (v Values) Get(name Name) string {
	return v[name]
}

// IsSet reports whether name carries a non-blank value.
func (v Values) IsSet(name Name) bool {
	return strings.TrimSpace(v[name]) != ""
}

// Clone returns an independent copy of the value map.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
