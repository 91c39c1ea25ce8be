package folio_test

import (
	"fmt"
	"os"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/folio"
)

// ExampleNew shows embedding the client and reading a slice.
func ExampleNew() {
	dir, _ := os.MkdirTemp("", "folio-example")
	defer os.RemoveAll(dir)

	c, err := folio.New(folio.Config{
		APIURL:     "https://api.example.com",
		SessionDir: dir,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer c.Close()

	fmt.Println(c.Store().Auth().State().Status)
	// Output: Anonymous
}

// Example_subscriber logs every applied action.
func Example_subscriber() {
	dir, _ := os.MkdirTemp("", "folio-example")
	defer os.RemoveAll(dir)

	c, err := folio.New(folio.Config{APIURL: "https://api.example.com", SessionDir: dir},
		folio.WithSubscriber(func(a folio.Action, s folio.State) {
			fmt.Println(a.Type, s.Skills.Error == "")
		}))
	if err != nil {
		return
	}
	defer c.Close()

	c.Store().Skills().ClearError()
	// Output: skills/error/cleared true
}
