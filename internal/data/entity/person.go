package entity

type Person struct {
	Base
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	IsClient  bool   `db:"is_client"`
	// IsDiscountHolder marks buyers who always pay the reduced price on the
	// direct sale path, independent of the wizard's per-line ticket types.
	IsDiscountHolder bool `db:"is_discount_holder"`
}

func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}
