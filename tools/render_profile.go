//go:build ignore

// render_profile renders a saved directory response to HTML without a
// network call:
//
//	go run tools/render_profile.go response.json out.html
package main

import (
	"fmt"
	"os"

	"notary-profile/internal/domain"
	"notary-profile/internal/model"
	"notary-profile/internal/usecase"
	"notary-profile/templates"
)

func main() {
	in, out := "directory_response.json", "profile.html"
	if len(os.Args) > 1 {
		in = os.Args[1]
	}
	if len(os.Args) > 2 {
		out = os.Args[2]
	}

	b, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read response: %v\n", err)
		os.Exit(2)
	}
	raw, err := model.DecodeRaw(b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		os.Exit(2)
	}

	state := domain.ViewState{Status: domain.StatusEmpty}
	if !raw.IsEmpty() {
		p := usecase.Normalize(raw)
		state = domain.ViewState{Status: domain.StatusLoaded, Profile: &p}
	}

	html, err := templates.RenderString(state, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}
	if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", out)
}
