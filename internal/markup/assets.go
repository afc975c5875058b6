package markup

import (
	"embed"
	"fmt"
)

//go:embed assets/*
var assetFS embed.FS

func asset(name string) string {
	b, err := assetFS.ReadFile("assets/" + name)
	if err != nil {
		panic(fmt.Sprintf("markup: missing embedded asset %s: %v", name, err))
	}
	return string(b)
}
