package domain

import (
	"strings"
	"time"
)

const birthDateLayout = "2006-01-02"

type Address struct {
	Name    string `json:"name,omitempty"`
	Street  string `json:"street,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty" validate:"omitempty,len=2"`
}

// CompanyInfo is required for B2B customers of the guaranteed payment types.
type CompanyInfo struct {
	RegistrationType         string `json:"registrationType,omitempty"`
	CommercialRegisterNumber string `json:"commercialRegisterNumber,omitempty"`
	Function                 string `json:"function,omitempty"`
	CommercialSector         string `json:"commercialSector,omitempty"`
}

// Customer mirrors the gateway's customer resource. CustomerID is the
// merchant's own reference and can be used in place of ID for fetching.
type Customer struct {
	Entity
	CustomerID      string       `json:"customerId,omitempty"`
	Firstname       string       `json:"firstname,omitempty"`
	Lastname        string       `json:"lastname,omitempty"`
	Salutation      Salutation   `json:"salutation,omitempty" validate:"omitempty,oneof=mr mrs unknown"`
	BirthDate       string       `json:"birthDate,omitempty"`
	Company         string       `json:"company,omitempty"`
	Email           string       `json:"email,omitempty" validate:"omitempty,email"`
	Phone           string       `json:"phone,omitempty"`
	Mobile          string       `json:"mobile,omitempty"`
	BillingAddress  *Address     `json:"billingAddress,omitempty"`
	ShippingAddress *Address     `json:"shippingAddress,omitempty"`
	CompanyInfo     *CompanyInfo `json:"companyInfo,omitempty"`
}

func NewCustomer(firstname, lastname string) *Customer {
	return &Customer{
		Firstname:  firstname,
		Lastname:   lastname,
		Salutation: SalutationUnknown,
	}
}

// NewB2BCustomer creates a customer representing a company.
func NewB2BCustomer(company string, info CompanyInfo) *Customer {
	return &Customer{
		Company:     company,
		CompanyInfo: &info,
		Salutation:  SalutationUnknown,
	}
}

func (c *Customer) URI(appendID bool) string {
	return resourceURI("customers", c.ID, appendID)
}

// SetBirthDate stores t in the gateway's date format.
func (c *Customer) SetBirthDate(t time.Time) {
	c.BirthDate = t.Format(birthDateLayout)
}

// BirthDateTime parses the stored birth date, returning the zero time when unset.
func (c *Customer) BirthDateTime() (time.Time, error) {
	if c.BirthDate == "" {
		return time.Time{}, nil
	}
	return time.Parse(birthDateLayout, c.BirthDate)
}

func (c *Customer) FullName() string {
	return strings.TrimSpace(c.Firstname + " " + c.Lastname)
}
