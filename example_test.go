package newstr_test

import (
	"fmt"

	"newstr"
)

func Example() {
	fmt.Println(newstr.IsValid[newstr.Checked[identifierRule]](""))
	fmt.Println(newstr.IsValid[newstr.Checked[identifierRule]]("hi!"))
	fmt.Println(newstr.IsValid[newstr.Checked[identifierRule]]("hello world"))
	fmt.Println(newstr.IsValid[newstr.Checked[identifierRule]]("9.99"))

	id, err := newstr.New[newstr.Checked[identifierRule]]("hello_world")
	fmt.Println(id, err)

	_, err = newstr.New[newstr.Checked[identifierRule]]("hi!")
	fmt.Println(err)
	// Output:
	// false
	// false
	// false
	// false
	// hello_world <nil>
	// newstr: invalid value "hi!" for type Identifier
}

func ExampleNew_parse() {
	kw, _ := newstr.New[keyword]("  SELECT ")
	fmt.Println(kw)
	// Output: select
}
