package colorphrase_test

import (
	"fmt"

	"github.com/arthur-debert/colorphrase/pkg/colorphrase"
	"github.com/arthur-debert/colorphrase/pkg/errors"
)

func ExampleFrom() {
	text, err := colorphrase.From("I'm<Chinese>,I love <China>").
		WithSeparator("<>").
		Format()
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(text.Text)
	for _, r := range text.Ranges {
		fmt.Printf("%s [%d, %d) %s\n", r.Kind, r.Start, r.End, r.Color)
	}
	// Output:
	// I'mChinese,I love China
	// outer [0, 3) 0xFF666666
	// inner [3, 10) 0xFFE6454A
	// outer [10, 18) 0xFF666666
	// inner [18, 23) 0xFFE6454A
}

func ExamplePhrase_Format_escape() {
	text := colorphrase.From("use {{name}} for {names}").MustFormat()
	fmt.Println(text.Text)
	// Output:
	// use {name}} for names
}

func ExamplePhrase_Format_error() {
	_, err := colorphrase.From("a{b").Format()
	offset, _ := errors.Offset(err)
	fmt.Println(errors.GetErrorCode(err), offset)
	// Output:
	// MALFORMED_PATTERN 1
}

func ExampleStyledText_Runs() {
	text := colorphrase.From("say {hi}!").MustFormat()
	for _, run := range text.Runs() {
		fmt.Printf("%q %s\n", run.Text, run.Kind)
	}
	// Output:
	// "say " outer
	// "hi" inner
	// "!" outer
}
