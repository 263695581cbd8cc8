package main

import (
	"os"

	"github.com/ytget/ytgrab/internal/app"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	os.Exit(app.Main(version))
}
