package jsonpatch

type Address struct {
	City string
	Zip  string
}

type Customer struct {
	Name    string
	Email   string `json:"email"`
	States  []string
	Address *Address
}

type SimpleObject struct {
	Name         string
	IntegerValue int
	IntegerList  []int
	USStates     map[string]string
	Customers    []Customer
	Owner        *Customer
	Backup       *Customer
	Tags         [2]string
	Any          any

	secret string
}

func newSimpleObject() *SimpleObject {
	return &SimpleObject{
		Name:         "A",
		IntegerValue: 5,
		IntegerList:  []int{1, 2, 3},
		USStates:     map[string]string{"WA": "Washington"},
		Customers: []Customer{
			{Name: "Ann", States: []string{"WA"}, Address: &Address{City: "Seattle"}},
		},
		Owner: &Customer{Name: "Bob", States: []string{"OR"}, Address: &Address{City: "Portland"}},
		Tags:  [2]string{"x", "y"},
	}
}
