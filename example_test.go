package jfill_test

import (
	"fmt"
	"log"

	"github.com/creachadair/jfill"
)

func Example() {
	title := jfill.NewString()
	tags := jfill.NewList(jfill.NewString)
	doc := jfill.NewStruct(
		jfill.Field{Key: "title", Node: title},
		jfill.Field{Key: "tags", Node: tags},
	)

	title.OnAppend(func(chunk string) { fmt.Printf("title += %q\n", chunk) })
	title.OnComplete(func(text string) { fmt.Printf("title done: %q\n", text) })
	tags.OnAppend(func(tag *jfill.String) { fmt.Printf("new tag: %q\n", tag.Value()) })
	tags.OnComplete(func(list []*jfill.String) { fmt.Printf("%d tags\n", len(list)) })
	doc.OnComplete(func(fields map[string]any) {
		fmt.Printf("document done: title=%q\n", fields["title"])
	})

	// Fragments as they might arrive from a token stream.
	err := jfill.NewParser(doc).Run(func(p *jfill.Parser) error {
		for _, fragment := range []string{
			`{"title": "Stream`,
			`ing JSON", "ta`,
			`gs": ["go`,
			`", "json"]}`,
		} {
			if err := p.Push(fragment); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Run: %v", err)
	}
	// Output:
	// title += "Stream"
	// title += "ing JSON"
	// title done: "Streaming JSON"
	// new tag: "go"
	// new tag: "json"
	// 2 tags
	// document done: title="Streaming JSON"
}

func ExampleFill() {
	enabled := jfill.NewAtomic[bool]()
	retries := jfill.NewAtomic[int]()
	cfg := jfill.NewStruct(
		jfill.Field{Key: "enabled", Node: enabled},
		jfill.Field{Key: "retries", Node: retries},
	)

	err := jfill.Fill(cfg, []byte(`{
	   "enabled": true, // comments are fine here
	   "retries": 3,
	}`))
	if err != nil {
		log.Fatalf("Fill: %v", err)
	}
	fmt.Println(enabled.Value(), retries.Value())
	// Output:
	// true 3
}
