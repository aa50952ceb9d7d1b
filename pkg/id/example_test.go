package id_test

import (
	"errors"
	"fmt"

	"github.com/getmockd/sortid/pkg/id"
)

func ExampleFromParts() {
	v := id.FromParts(1234567890123, [10]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	fmt.Println(v.Timestamp())
	// Output: 1234567890123
}

func ExampleParse() {
	v, err := id.Parse("01arz3ndektsv4rrffq69g5fav")
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	fmt.Println(v.Time().Format("2006-01-02T15:04:05.000Z07:00"))
	// Output:
	// 01ARZ3NDEKTSV4RRFFQ69G5FAV
	// 2016-07-30T23:54:10.259Z
}

func ExampleParse_errors() {
	_, err := id.Parse("TOOSHORT")
	fmt.Println(errors.Is(err, id.ErrInvalidLength))
	_, err = id.Parse("01ARZ3NDEKTSV4RRFFQ69G5F@V")
	fmt.Println(errors.Is(err, id.ErrInvalidCharacter))
	// Output:
	// true
	// true
}

func ExampleGenerator() {
	g := id.NewGenerator(id.WithClock(id.FixedClock(0)))
	v := g.New()
	fmt.Println(len(v.String()), v.String()[:10])
	// Output: 26 0000000000
}
