package models

// Address is a postal address owned by exactly one contact.
// It is reachable only through the chain user → contact → address;
// both links are checked on every operation.
type Address struct {
	AddressID  int64  `json:"id"`
	ContactID  int64  `json:"-"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// TableName returns the name of the database table
// associated with the Address model.
func (a Address) TableName() string {
	return "addresses"
}
