package strmatch_test

import (
	"fmt"

	"go.dw1.io/strmatch"
)

type StringType string

const (
	Phone  StringType = "Phone"
	Email  StringType = "Email"
	Others StringType = "Others"
)

func ExampleSet_Match() {
	kind := strmatch.New(strmatch.Then(Others),
		strmatch.When(`(\d{4})-(\d{2})-(\d{2})`, strmatch.Then(Phone)),
		strmatch.When(`^([a-zA-Z0-9._%-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6})*$`, strmatch.Then(Email)),
	)

	fmt.Println(kind.Match("example@example.com"))
	fmt.Println(kind.Match("not-an-email"))
	fmt.Println(kind.Match("2024-01-01"))
	// Output:
	// Email
	// Others
	// Phone
}

func ExampleMatch() {
	result := strmatch.Match("example@example.com",
		func() int { return 5 },
		// Phone
		strmatch.When(`(\d{4})-(\d{2})-(\d{2})`, func() int {
			return 1 + 2
		}),
		// Email
		strmatch.When(`^([a-zA-Z0-9._%-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6})*$`, func() int {
			return 3 + 4
		}),
	)

	fmt.Println(result)
	// Output: 7
}

func ExampleWithEager() {
	defer func() {
		fmt.Println("recovered:", recover() != nil)
	}()

	strmatch.NewWithOptions(strmatch.Then(""),
		[]strmatch.Rule[string]{strmatch.When(`(unclosed`, strmatch.Then("never"))},
		strmatch.WithEager(),
	)
	// Output: recovered: true
}
